// Package http exposes the application use cases as a JSON API. Handlers
// translate requests into commands and queries, and application errors
// into HTTP status codes.
package http

import (
	"net/http"

	"milkround/internal/core/application/usecases/commands"
	"milkround/internal/core/application/usecases/queries"
	"milkround/internal/core/domain/model/kernel"
	"milkround/internal/core/domain/model/order"
	"milkround/internal/pkg/auth"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	registerAccountHandler   commands.RegisterAccountCommandHandler
	placeOrderHandler        commands.PlaceOrderCommandHandler
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler
	submitReviewHandler      commands.SubmitReviewCommandHandler

	// Query handlers
	authenticateHandler   queries.AuthenticateAccountQueryHandler
	customerOrdersHandler queries.GetCustomerOrdersQueryHandler
	ordersForDateHandler  queries.GetOrdersForDateQueryHandler
	pendingOrdersHandler  queries.GetPendingOrdersQueryHandler
	allOrdersHandler      queries.GetAllOrdersQueryHandler
	loyaltyHandler        queries.GetLoyaltyStatisticsQueryHandler
	reviewsHandler        queries.GetReviewsQueryHandler

	tokens auth.TokenIssuer
}

// NewServer creates an HTTP server with the required command and query
// handlers.
func NewServer(
	registerAccountHandler commands.RegisterAccountCommandHandler,
	placeOrderHandler commands.PlaceOrderCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	submitReviewHandler commands.SubmitReviewCommandHandler,
	authenticateHandler queries.AuthenticateAccountQueryHandler,
	customerOrdersHandler queries.GetCustomerOrdersQueryHandler,
	ordersForDateHandler queries.GetOrdersForDateQueryHandler,
	pendingOrdersHandler queries.GetPendingOrdersQueryHandler,
	allOrdersHandler queries.GetAllOrdersQueryHandler,
	loyaltyHandler queries.GetLoyaltyStatisticsQueryHandler,
	reviewsHandler queries.GetReviewsQueryHandler,
	tokens auth.TokenIssuer,
) *Server {
	return &Server{
		registerAccountHandler:   registerAccountHandler,
		placeOrderHandler:        placeOrderHandler,
		updateOrderStatusHandler: updateOrderStatusHandler,
		submitReviewHandler:      submitReviewHandler,
		authenticateHandler:      authenticateHandler,
		customerOrdersHandler:    customerOrdersHandler,
		ordersForDateHandler:     ordersForDateHandler,
		pendingOrdersHandler:     pendingOrdersHandler,
		allOrdersHandler:         allOrdersHandler,
		loyaltyHandler:           loyaltyHandler,
		reviewsHandler:           reviewsHandler,
		tokens:                   tokens,
	}
}

// RegisterRoutes attaches every route to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.POST("/auth/register", s.RegisterAccount)
	api.POST("/auth/login", s.Login)
	api.GET("/reviews", s.GetReviews)

	authed := api.Group("", s.requireAuth)
	authed.POST("/orders", s.PlaceOrder)
	authed.GET("/orders", s.GetMyOrders)
	authed.GET("/orders/loyalty", s.GetLoyaltyStatistics)
	authed.PATCH("/orders/:orderID/status", s.UpdateOrderStatus)
	authed.POST("/reviews", s.SubmitReview)

	admin := api.Group("/admin", s.requireAuth, s.requireAdmin)
	admin.GET("/orders", s.GetAllOrders)
	admin.GET("/orders/pending", s.GetPendingOrders)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// RegisterAccount handles POST /api/v1/auth/register.
func (s *Server) RegisterAccount(ctx echo.Context) error {
	var request registerRequest
	if err := ctx.Bind(&request); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	accountID := kernel.NewUUID()

	cmd, err := commands.NewRegisterAccountCommand(accountID, request.Name, request.Email,
		request.Phone, request.Hall, request.Room, request.Password)
	if err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	if err := s.registerAccountHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, idResponse{ID: accountID.String()})
}

// Login handles POST /api/v1/auth/login.
func (s *Server) Login(ctx echo.Context) error {
	var request loginRequest
	if err := ctx.Bind(&request); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	query, err := queries.NewAuthenticateAccountQuery(request.Email, request.Password)
	if err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	identity, err := s.authenticateHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		// Invalid credentials are a 401 here, not a 403
		return respondUnauthorized(ctx, "invalid email or password")
	}

	token, err := s.tokens.Issue(identity.AccountID, identity.Name, identity.Role)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, loginResponse{
		Token: token,
		Account: accountResponse{
			ID:    identity.AccountID.String(),
			Name:  identity.Name,
			Email: identity.Email,
			Role:  identity.Role.String(),
		},
	})
}

// PlaceOrder handles POST /api/v1/orders.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	claims := claimsFrom(ctx)

	customerID, err := claims.ParsedAccountID()
	if err != nil {
		return respondUnauthorized(ctx, "invalid token subject")
	}

	var request placeOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	deliveryDate, err := kernel.DateFromString(request.DeliveryDate)
	if err != nil {
		return respondBadRequest(ctx, "delivery_date must be formatted as YYYY-MM-DD")
	}

	orderID := kernel.NewUUID()

	cmd, err := commands.NewPlaceOrderCommand(orderID, customerID, request.Quantity,
		deliveryDate, request.Notes)
	if err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	if err := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, idResponse{ID: orderID.String()})
}

// GetMyOrders handles GET /api/v1/orders.
func (s *Server) GetMyOrders(ctx echo.Context) error {
	claims := claimsFrom(ctx)

	customerID, err := claims.ParsedAccountID()
	if err != nil {
		return respondUnauthorized(ctx, "invalid token subject")
	}

	query, err := queries.NewGetCustomerOrdersQuery(customerID)
	if err != nil {
		return respondError(ctx, err)
	}

	views, err := s.customerOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponses(views))
}

// UpdateOrderStatus handles PATCH /api/v1/orders/:orderID/status. Admins
// may apply any valid transition; customers may only cancel their own
// orders.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	claims := claimsFrom(ctx)

	actorID, err := claims.ParsedAccountID()
	if err != nil {
		return respondUnauthorized(ctx, "invalid token subject")
	}

	actorRole, err := claims.ParsedRole()
	if err != nil {
		return respondUnauthorized(ctx, "invalid token role")
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return respondBadRequest(ctx, "invalid order id")
	}

	var request updateOrderStatusRequest
	if err := ctx.Bind(&request); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	target, err := order.StatusFromString(request.Status)
	if err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, target, actorID, actorRole)
	if err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	if err := s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetLoyaltyStatistics handles GET /api/v1/orders/loyalty.
func (s *Server) GetLoyaltyStatistics(ctx echo.Context) error {
	claims := claimsFrom(ctx)

	customerID, err := claims.ParsedAccountID()
	if err != nil {
		return respondUnauthorized(ctx, "invalid token subject")
	}

	query, err := queries.NewGetLoyaltyStatisticsQuery(customerID)
	if err != nil {
		return respondError(ctx, err)
	}

	statistics, err := s.loyaltyHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, loyaltyResponse{
		BottleCount:   statistics.BottleCount,
		CurrentStreak: statistics.CurrentStreak,
	})
}

// SubmitReview handles POST /api/v1/reviews.
func (s *Server) SubmitReview(ctx echo.Context) error {
	claims := claimsFrom(ctx)

	customerID, err := claims.ParsedAccountID()
	if err != nil {
		return respondUnauthorized(ctx, "invalid token subject")
	}

	var request submitReviewRequest
	if err := ctx.Bind(&request); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	reviewID := kernel.NewUUID()

	cmd, err := commands.NewSubmitReviewCommand(reviewID, customerID, request.Rating, request.Comment)
	if err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	if err := s.submitReviewHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, idResponse{ID: reviewID.String()})
}

// GetReviews handles GET /api/v1/reviews.
func (s *Server) GetReviews(ctx echo.Context) error {
	views, err := s.reviewsHandler.Handle(ctx.Request().Context(), queries.NewGetReviewsQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]reviewResponse, len(views))
	for i, view := range views {
		response[i] = reviewResponse{
			ID:           view.ID.String(),
			CustomerID:   view.CustomerID.String(),
			CustomerName: view.CustomerName,
			Rating:       view.Rating,
			Comment:      view.Comment,
			CreatedAt:    view.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetAllOrders handles GET /api/v1/admin/orders. An optional ?date=
// parameter narrows the list to one delivery date, ordered by hall and
// room for the delivery run.
func (s *Server) GetAllOrders(ctx echo.Context) error {
	if rawDate := ctx.QueryParam("date"); rawDate != "" {
		date, err := kernel.DateFromString(rawDate)
		if err != nil {
			return respondBadRequest(ctx, "date must be formatted as YYYY-MM-DD")
		}

		query, err := queries.NewGetOrdersForDateQuery(date)
		if err != nil {
			return respondError(ctx, err)
		}

		views, err := s.ordersForDateHandler.Handle(ctx.Request().Context(), query)
		if err != nil {
			return respondError(ctx, err)
		}

		return ctx.JSON(http.StatusOK, toOrderResponses(views))
	}

	views, err := s.allOrdersHandler.Handle(ctx.Request().Context(), queries.NewGetAllOrdersQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponses(views))
}

// GetPendingOrders handles GET /api/v1/admin/orders/pending.
func (s *Server) GetPendingOrders(ctx echo.Context) error {
	views, err := s.pendingOrdersHandler.Handle(ctx.Request().Context(), queries.NewGetPendingOrdersQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponses(views))
}

func toOrderResponses(views []queries.OrderView) []orderResponse {
	response := make([]orderResponse, len(views))
	for i, view := range views {
		response[i] = orderResponse{
			ID:           view.ID.String(),
			CustomerID:   view.CustomerID.String(),
			CustomerName: view.CustomerName,
			Phone:        view.Phone,
			Hall:         view.Hall,
			Room:         view.Room,
			Quantity:     view.Quantity,
			TotalPrice:   view.TotalPrice,
			DeliveryDate: view.DeliveryDate.String(),
			Status:       view.Status.String(),
			Notes:        view.Notes,
			CreatedAt:    view.CreatedAt,
		}
	}

	return response
}
