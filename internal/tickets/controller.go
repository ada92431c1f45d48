package tickets

import (
	"errors"
	"net/http"
	"strconv"

	"cinebook/internal/catalog"
	"cinebook/internal/locks"
	"cinebook/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

// Reserve handles POST /api/v1/tickets/reserve
func (c *Controller) Reserve(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		response.Error(ctx, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req ReserveTicketRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.ValidationError(ctx, err.Error())
		return
	}

	ticket, err := c.service.Reserve(ctx.Request.Context(), userID, req)
	if err != nil {
		c.respondError(ctx, err, "Failed to reserve seat")
		return
	}

	response.Success(ctx, http.StatusCreated, "Seat held successfully", ticket.ToResponse())
}

// BeginPayment handles POST /api/v1/tickets/:id/payment
func (c *Controller) BeginPayment(ctx *gin.Context) {
	userID, ticketID, ok := c.ticketParams(ctx)
	if !ok {
		return
	}

	ticket, payment, err := c.service.BeginPayment(ctx.Request.Context(), userID, ticketID)
	if err != nil {
		c.respondError(ctx, err, "Failed to begin payment")
		return
	}

	response.Success(ctx, http.StatusOK, "Payment opened successfully", BeginPaymentResponse{
		Ticket:  ticket.ToResponse(),
		Payment: payment,
	})
}

// Confirm handles POST /api/v1/tickets/:id/confirm
func (c *Controller) Confirm(ctx *gin.Context) {
	userID, ticketID, ok := c.ticketParams(ctx)
	if !ok {
		return
	}

	ticket, err := c.service.Confirm(ctx.Request.Context(), userID, ticketID)
	if err != nil {
		c.respondError(ctx, err, "Failed to confirm ticket")
		return
	}

	response.Success(ctx, http.StatusOK, "Ticket confirmed successfully", ticket.ToResponse())
}

// Cancel handles POST /api/v1/tickets/:id/cancel
func (c *Controller) Cancel(ctx *gin.Context) {
	userID, ticketID, ok := c.ticketParams(ctx)
	if !ok {
		return
	}

	ticket, err := c.service.Cancel(ctx.Request.Context(), userID, ticketID)
	if err != nil {
		c.respondError(ctx, err, "Failed to cancel ticket")
		return
	}

	response.Success(ctx, http.StatusOK, "Ticket cancelled successfully", ticket.ToResponse())
}

// GetTicket handles GET /api/v1/tickets/:id
func (c *Controller) GetTicket(ctx *gin.Context) {
	userID, ticketID, ok := c.ticketParams(ctx)
	if !ok {
		return
	}

	ticket, err := c.service.GetTicket(ctx.Request.Context(), userID, ticketID)
	if err != nil {
		c.respondError(ctx, err, "Failed to get ticket")
		return
	}

	response.Success(ctx, http.StatusOK, "Ticket retrieved successfully", ticket.ToResponse())
}

// GetUserTickets handles GET /api/v1/tickets
func (c *Controller) GetUserTickets(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		response.Error(ctx, http.StatusUnauthorized, "Authentication required")
		return
	}

	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(ctx.DefaultQuery("offset", "0"))

	list, err := c.service.GetUserTickets(ctx.Request.Context(), userID, limit, offset)
	if err != nil {
		response.Error(ctx, http.StatusInternalServerError, "Failed to list tickets")
		return
	}

	resp := make([]TicketResponse, 0, len(list))
	for i := range list {
		resp = append(resp, list[i].ToResponse())
	}

	response.Success(ctx, http.StatusOK, "Tickets retrieved successfully", resp)
}

// respondError maps service errors onto HTTP statuses
func (c *Controller) respondError(ctx *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, catalog.ErrShowNotFound):
		response.Error(ctx, http.StatusNotFound, "Show not found")
	case errors.Is(err, ErrTicketNotFound):
		response.Error(ctx, http.StatusNotFound, "Ticket not found")
	case errors.Is(err, ErrNotOwner):
		response.Error(ctx, http.StatusForbidden, "Ticket belongs to another user")
	case errors.Is(err, ErrInvalidSeat):
		response.Error(ctx, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrShowStarted):
		response.Error(ctx, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, ErrSeatContended):
		response.Error(ctx, http.StatusConflict, err.Error())
	case errors.Is(err, ErrHoldExpired):
		response.Error(ctx, http.StatusGone, err.Error())
	case errors.Is(err, ErrAlreadyConfirmed):
		response.Error(ctx, http.StatusConflict, err.Error())
	case errors.Is(err, ErrInvalidTransition):
		response.Error(ctx, http.StatusConflict, err.Error())
	case errors.Is(err, ErrPaymentNotConfirmed):
		response.Error(ctx, http.StatusPaymentRequired, err.Error())
	case errors.Is(err, ErrPaymentFailed):
		response.Error(ctx, http.StatusPaymentRequired, err.Error())
	case errors.Is(err, locks.ErrStoreUnavailable):
		response.Error(ctx, http.StatusServiceUnavailable, "Seat locking is temporarily unavailable")
	default:
		response.Error(ctx, http.StatusInternalServerError, fallback)
	}
}

// ticketParams extracts the authenticated user and the :id path parameter
func (c *Controller) ticketParams(ctx *gin.Context) (uuid.UUID, uuid.UUID, bool) {
	userID, ok := currentUserID(ctx)
	if !ok {
		response.Error(ctx, http.StatusUnauthorized, "Authentication required")
		return uuid.Nil, uuid.Nil, false
	}

	ticketID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.Error(ctx, http.StatusBadRequest, "Invalid ticket ID")
		return uuid.Nil, uuid.Nil, false
	}

	return userID, ticketID, true
}

func currentUserID(ctx *gin.Context) (uuid.UUID, bool) {
	raw, exists := ctx.Get("user_id")
	if !exists {
		return uuid.Nil, false
	}
	str, ok := raw.(string)
	if !ok {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(str)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
