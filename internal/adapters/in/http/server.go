package http

import (
	"errors"
	"net/http"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/partner"
	"dispatch/internal/generated/servers"
	"dispatch/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler       commands.CreateOrderCommandHandler
	acceptOrderHandler       commands.AcceptOrderCommandHandler
	advanceOrderHandler      commands.AdvanceOrderCommandHandler
	rateOrderHandler         commands.RateOrderCommandHandler
	registerPartnerHandler   commands.RegisterPartnerCommandHandler
	approvePartnerHandler    commands.ApprovePartnerCommandHandler
	removePartnerHandler     commands.RemovePartnerCommandHandler
	setPartnerAreaHandler    commands.SetPartnerAreaCommandHandler
	setPartnerOnlineHandler  commands.SetPartnerOnlineCommandHandler
	createAreaHandler        commands.CreateAreaCommandHandler
	setAreaChargeHandler     commands.SetAreaChargeCommandHandler
	setCommissionRateHandler commands.SetCommissionRateCommandHandler

	// Query handlers
	getAvailableOrdersHandler queries.GetAvailableOrdersQueryHandler
	getPartnerBoardHandler    queries.GetPartnerBoardQueryHandler
	getCustomerOrdersHandler  queries.GetCustomerOrdersQueryHandler
	getAreasHandler           queries.GetAreasQueryHandler
	getPlatformStatsHandler   queries.GetPlatformStatsQueryHandler
}

// ServerOptions bundles the use case handlers the server dispatches to.
type ServerOptions struct {
	CreateOrderHandler       commands.CreateOrderCommandHandler
	AcceptOrderHandler       commands.AcceptOrderCommandHandler
	AdvanceOrderHandler      commands.AdvanceOrderCommandHandler
	RateOrderHandler         commands.RateOrderCommandHandler
	RegisterPartnerHandler   commands.RegisterPartnerCommandHandler
	ApprovePartnerHandler    commands.ApprovePartnerCommandHandler
	RemovePartnerHandler     commands.RemovePartnerCommandHandler
	SetPartnerAreaHandler    commands.SetPartnerAreaCommandHandler
	SetPartnerOnlineHandler  commands.SetPartnerOnlineCommandHandler
	CreateAreaHandler        commands.CreateAreaCommandHandler
	SetAreaChargeHandler     commands.SetAreaChargeCommandHandler
	SetCommissionRateHandler commands.SetCommissionRateCommandHandler

	GetAvailableOrdersHandler queries.GetAvailableOrdersQueryHandler
	GetPartnerBoardHandler    queries.GetPartnerBoardQueryHandler
	GetCustomerOrdersHandler  queries.GetCustomerOrdersQueryHandler
	GetAreasHandler           queries.GetAreasQueryHandler
	GetPlatformStatsHandler   queries.GetPlatformStatsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(opts ServerOptions) *Server {
	return &Server{
		createOrderHandler:       opts.CreateOrderHandler,
		acceptOrderHandler:       opts.AcceptOrderHandler,
		advanceOrderHandler:      opts.AdvanceOrderHandler,
		rateOrderHandler:         opts.RateOrderHandler,
		registerPartnerHandler:   opts.RegisterPartnerHandler,
		approvePartnerHandler:    opts.ApprovePartnerHandler,
		removePartnerHandler:     opts.RemovePartnerHandler,
		setPartnerAreaHandler:    opts.SetPartnerAreaHandler,
		setPartnerOnlineHandler:  opts.SetPartnerOnlineHandler,
		createAreaHandler:        opts.CreateAreaHandler,
		setAreaChargeHandler:     opts.SetAreaChargeHandler,
		setCommissionRateHandler: opts.SetCommissionRateHandler,

		getAvailableOrdersHandler: opts.GetAvailableOrdersHandler,
		getPartnerBoardHandler:    opts.GetPartnerBoardHandler,
		getCustomerOrdersHandler:  opts.GetCustomerOrdersHandler,
		getAreasHandler:           opts.GetAreasHandler,
		getPlatformStatsHandler:   opts.GetPlatformStatsHandler,
	}
}

// domainError maps a use case error to the HTTP status it represents.
// Lifecycle conflicts are 409, ownership violations 403, unknown ids 404.
func domainError(ctx echo.Context, err error) error {
	var status int
	switch {
	case errors.Is(err, commands.ErrNoRouteAvailable):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, commands.ErrPartnerAlreadyActive),
		errors.Is(err, order.ErrOrderNotPending),
		errors.Is(err, order.ErrInvalidTransition),
		errors.Is(err, order.ErrOrderNotCompleted):
		status = http.StatusConflict
	case errors.Is(err, order.ErrNotOrderOwner),
		errors.Is(err, partner.ErrPartnerNotApproved):
		status = http.StatusForbidden
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
	default:
		status = http.StatusInternalServerError
	}

	return ctx.JSON(status, servers.Error{
		Code:    status,
		Message: err.Error(),
	})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// CreateOrder handles POST /api/v1/orders - creates a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var newOrder servers.NewOrder
	if err := ctx.Bind(&newOrder); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID := kernel.NewUUID()

	customerID, err := kernel.UUIDFromBytes(newOrder.CustomerId[:])
	if err != nil {
		return domainError(ctx, err)
	}
	pickupAreaID, err := kernel.UUIDFromBytes(newOrder.PickupAreaId[:])
	if err != nil {
		return domainError(ctx, err)
	}
	dropAreaID, err := kernel.UUIDFromBytes(newOrder.DropAreaId[:])
	if err != nil {
		return domainError(ctx, err)
	}

	cmd, err := commands.NewCreateOrderCommand(orderID, customerID,
		pickupAreaID, dropAreaID, newOrder.PickupAddress, newOrder.DropAddress)
	if err != nil {
		return domainError(ctx, err)
	}

	if handleErr := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, servers.CreatedResource{Id: orderID.Bytes()})
}

// AcceptOrder handles POST /api/v1/orders/{orderId}/accept.
func (s *Server) AcceptOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	var request servers.AcceptOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	partnerID, err := kernel.UUIDFromBytes(request.PartnerId[:])
	if err != nil {
		return domainError(ctx, err)
	}
	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return domainError(ctx, err)
	}

	cmd, err := commands.NewAcceptOrderCommand(partnerID, orderID)
	if err != nil {
		return domainError(ctx, err)
	}

	if handleErr := s.acceptOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AdvanceOrder handles POST /api/v1/orders/{orderId}/advance.
func (s *Server) AdvanceOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	var request servers.AdvanceOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	transition, err := order.ParseTransition(string(request.Transition))
	if err != nil {
		return domainError(ctx, err)
	}
	partnerID, err := kernel.UUIDFromBytes(request.PartnerId[:])
	if err != nil {
		return domainError(ctx, err)
	}
	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return domainError(ctx, err)
	}

	cmd, err := commands.NewAdvanceOrderCommand(partnerID, orderID, transition)
	if err != nil {
		return domainError(ctx, err)
	}

	if handleErr := s.advanceOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RateOrder handles POST /api/v1/orders/{orderId}/rating.
func (s *Server) RateOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	var request servers.RateOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	customerID, err := kernel.UUIDFromBytes(request.CustomerId[:])
	if err != nil {
		return domainError(ctx, err)
	}
	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return domainError(ctx, err)
	}

	comment := ""
	if request.Comment != nil {
		comment = *request.Comment
	}

	cmd, err := commands.NewRateOrderCommand(customerID, orderID, request.Score, comment)
	if err != nil {
		return domainError(ctx, err)
	}

	if handleErr := s.rateOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RegisterPartner handles POST /api/v1/partners.
func (s *Server) RegisterPartner(ctx echo.Context) error {
	var newPartner servers.NewPartner
	if err := ctx.Bind(&newPartner); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	partnerID := kernel.NewUUID()

	cmd, err := commands.NewRegisterPartnerCommand(partnerID, newPartner.Name)
	if err != nil {
		return domainError(ctx, err)
	}

	if handleErr := s.registerPartnerHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, servers.CreatedResource{Id: partnerID.Bytes()})
}

// ApprovePartner handles POST /api/v1/partners/{partnerId}/approve.
func (s *Server) ApprovePartner(ctx echo.Context, partnerId openapi_types.UUID) error {
	partnerID, err := kernel.UUIDFromBytes(partnerId[:])
	if err != nil {
		return domainError(ctx, err)
	}

	cmd, err := commands.NewApprovePartnerCommand(partnerID)
	if err != nil {
		return domainError(ctx, err)
	}

	if handleErr := s.approvePartnerHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RemovePartner handles DELETE /api/v1/partners/{partnerId}.
func (s *Server) RemovePartner(ctx echo.Context, partnerId openapi_types.UUID) error {
	partnerID, err := kernel.UUIDFromBytes(partnerId[:])
	if err != nil {
		return domainError(ctx, err)
	}

	cmd, err := commands.NewRemovePartnerCommand(partnerID)
	if err != nil {
		return domainError(ctx, err)
	}

	if handleErr := s.removePartnerHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SetPartnerArea handles PUT /api/v1/partners/{partnerId}/area.
func (s *Server) SetPartnerArea(ctx echo.Context, partnerId openapi_types.UUID) error {
	var request servers.SetPartnerAreaRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	partnerID, err := kernel.UUIDFromBytes(partnerId[:])
	if err != nil {
		return domainError(ctx, err)
	}
	areaID, err := kernel.UUIDFromBytes(request.AreaId[:])
	if err != nil {
		return domainError(ctx, err)
	}

	cmd, err := commands.NewSetPartnerAreaCommand(partnerID, areaID)
	if err != nil {
		return domainError(ctx, err)
	}

	if handleErr := s.setPartnerAreaHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SetPartnerOnline handles PUT /api/v1/partners/{partnerId}/online.
func (s *Server) SetPartnerOnline(ctx echo.Context, partnerId openapi_types.UUID) error {
	var request servers.SetPartnerOnlineRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	partnerID, err := kernel.UUIDFromBytes(partnerId[:])
	if err != nil {
		return domainError(ctx, err)
	}

	cmd, err := commands.NewSetPartnerOnlineCommand(partnerID, request.Online)
	if err != nil {
		return domainError(ctx, err)
	}

	if handleErr := s.setPartnerOnlineHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateArea handles POST /api/v1/areas.
func (s *Server) CreateArea(ctx echo.Context) error {
	var newArea servers.NewArea
	if err := ctx.Bind(&newArea); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	areaID := kernel.NewUUID()

	cmd, err := commands.NewCreateAreaCommand(areaID, newArea.Name)
	if err != nil {
		return domainError(ctx, err)
	}

	if handleErr := s.createAreaHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, servers.CreatedResource{Id: areaID.Bytes()})
}

// SetAreaCharge handles PUT /api/v1/charges.
func (s *Server) SetAreaCharge(ctx echo.Context) error {
	var request servers.AreaCharge
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	fromAreaID, err := kernel.UUIDFromBytes(request.FromAreaId[:])
	if err != nil {
		return domainError(ctx, err)
	}
	toAreaID, err := kernel.UUIDFromBytes(request.ToAreaId[:])
	if err != nil {
		return domainError(ctx, err)
	}
	amount, err := kernel.NewMoney(request.Amount)
	if err != nil {
		return domainError(ctx, err)
	}

	cmd, err := commands.NewSetAreaChargeCommand(fromAreaID, toAreaID, amount)
	if err != nil {
		return domainError(ctx, err)
	}

	if handleErr := s.setAreaChargeHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SetCommissionRate handles PUT /api/v1/settings/commission.
func (s *Server) SetCommissionRate(ctx echo.Context) error {
	var request servers.CommissionRate
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewSetCommissionRateCommand(request.Percent)
	if err != nil {
		return domainError(ctx, err)
	}

	if handleErr := s.setCommissionRateHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetPartnerFeed handles GET /api/v1/partners/{partnerId}/feed.
func (s *Server) GetPartnerFeed(ctx echo.Context, partnerId openapi_types.UUID) error {
	partnerID, err := kernel.UUIDFromBytes(partnerId[:])
	if err != nil {
		return domainError(ctx, err)
	}

	query, err := queries.NewGetAvailableOrdersQuery(partnerID)
	if err != nil {
		return domainError(ctx, err)
	}

	feed, err := s.getAvailableOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	response := make([]servers.AvailableOrder, len(feed))
	for i, item := range feed {
		response[i] = servers.AvailableOrder{
			Id:            item.ID.Bytes(),
			PickupAreaId:  item.PickupAreaID.Bytes(),
			DropAreaId:    item.DropAreaID.Bytes(),
			PickupAddress: item.PickupAddress,
			DropAddress:   item.DropAddress,
			Amount:        item.Amount,
			CreatedAt:     item.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetPartnerBoard handles GET /api/v1/partners/{partnerId}/board.
func (s *Server) GetPartnerBoard(ctx echo.Context, partnerId openapi_types.UUID) error {
	partnerID, err := kernel.UUIDFromBytes(partnerId[:])
	if err != nil {
		return domainError(ctx, err)
	}

	query, err := queries.NewGetPartnerBoardQuery(partnerID)
	if err != nil {
		return domainError(ctx, err)
	}

	board, err := s.getPartnerBoardHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	response := make([]servers.BoardOrder, len(board))
	for i, item := range board {
		response[i] = servers.BoardOrder{
			Id:            item.ID.Bytes(),
			Status:        item.Status,
			PickupAddress: item.PickupAddress,
			DropAddress:   item.DropAddress,
			Amount:        item.Amount,
			Commission:    item.Commission,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetCustomerOrders handles GET /api/v1/customers/{customerId}/orders.
func (s *Server) GetCustomerOrders(ctx echo.Context, customerId openapi_types.UUID) error {
	customerID, err := kernel.UUIDFromBytes(customerId[:])
	if err != nil {
		return domainError(ctx, err)
	}

	query, err := queries.NewGetCustomerOrdersQuery(customerID)
	if err != nil {
		return domainError(ctx, err)
	}

	orders, err := s.getCustomerOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	response := make([]servers.CustomerOrder, len(orders))
	for i, item := range orders {
		customerOrder := servers.CustomerOrder{
			Id:            item.ID.Bytes(),
			Status:        item.Status,
			PickupAddress: item.PickupAddress,
			DropAddress:   item.DropAddress,
			Amount:        item.Amount,
			RatingScore:   item.RatingScore,
			CreatedAt:     item.CreatedAt,
		}
		if item.PartnerID != nil {
			assigned := item.PartnerID.Bytes()
			customerOrder.PartnerId = &assigned
		}
		response[i] = customerOrder
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetAreas handles GET /api/v1/areas.
func (s *Server) GetAreas(ctx echo.Context) error {
	areas, err := s.getAreasHandler.Handle(ctx.Request().Context(), queries.NewGetAreasQuery())
	if err != nil {
		return domainError(ctx, err)
	}

	response := make([]servers.Area, len(areas))
	for i, item := range areas {
		response[i] = servers.Area{
			Id:   item.ID.Bytes(),
			Name: item.Name,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetPlatformStats handles GET /api/v1/stats.
func (s *Server) GetPlatformStats(ctx echo.Context) error {
	stats, err := s.getPlatformStatsHandler.Handle(ctx.Request().Context(), queries.NewGetPlatformStatsQuery())
	if err != nil {
		return domainError(ctx, err)
	}

	ratings := make([]servers.PartnerRating, len(stats.PartnerRatings))
	for i, item := range stats.PartnerRatings {
		ratings[i] = servers.PartnerRating{
			PartnerId:     item.PartnerID.Bytes(),
			Name:          item.Name,
			AverageRating: item.AverageRating,
			RatedOrders:   item.RatedOrders,
		}
	}

	return ctx.JSON(http.StatusOK, servers.PlatformStats{
		TotalOrders:      stats.TotalOrders,
		CompletedOrders:  stats.CompletedOrders,
		CommissionEarned: stats.CommissionEarned,
		PartnerRatings:   ratings,
	})
}
