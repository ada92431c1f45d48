package payments

import (
	"errors"
	"net/http"

	"cinebook/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
)

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

// Settle handles POST /api/v1/payments/:reference/settle
func (c *Controller) Settle(ctx *gin.Context) {
	var req SettlePaymentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.ValidationError(ctx, err.Error())
		return
	}

	payment, err := c.service.Settle(ctx.Request.Context(), ctx.Param("reference"), req.Outcome)
	if err != nil {
		switch {
		case errors.Is(err, ErrPaymentNotFound):
			response.Error(ctx, http.StatusNotFound, "Payment not found")
		case errors.Is(err, ErrAlreadySettled):
			response.Error(ctx, http.StatusConflict, "Payment already settled")
		case errors.Is(err, ErrInvalidOutcome):
			response.Error(ctx, http.StatusBadRequest, err.Error())
		default:
			response.Error(ctx, http.StatusInternalServerError, "Failed to settle payment")
		}
		return
	}

	response.Success(ctx, http.StatusOK, "Payment settled successfully", payment)
}

// GetPayment handles GET /api/v1/payments/:reference
func (c *Controller) GetPayment(ctx *gin.Context) {
	payment, err := c.service.GetByReference(ctx.Request.Context(), ctx.Param("reference"))
	if err != nil {
		if errors.Is(err, ErrPaymentNotFound) {
			response.Error(ctx, http.StatusNotFound, "Payment not found")
			return
		}
		response.Error(ctx, http.StatusInternalServerError, "Failed to get payment")
		return
	}

	response.Success(ctx, http.StatusOK, "Payment retrieved successfully", payment)
}
