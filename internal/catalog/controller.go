package catalog

import (
	"errors"
	"net/http"
	"strconv"

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

// CreateShow handles POST /api/v1/shows
func (c *Controller) CreateShow(ctx *gin.Context) {
	var req CreateShowRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.ValidationError(ctx, err.Error())
		return
	}

	show, err := c.service.CreateShow(ctx.Request.Context(), req)
	if err != nil {
		response.Error(ctx, http.StatusInternalServerError, "Failed to create show")
		return
	}

	response.Success(ctx, http.StatusCreated, "Show created successfully", show)
}

// GetShow handles GET /api/v1/shows/:id
func (c *Controller) GetShow(ctx *gin.Context) {
	showID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.Error(ctx, http.StatusBadRequest, "Invalid show ID")
		return
	}

	show, err := c.service.GetShow(ctx.Request.Context(), showID)
	if err != nil {
		if errors.Is(err, ErrShowNotFound) {
			response.Error(ctx, http.StatusNotFound, "Show not found")
			return
		}
		response.Error(ctx, http.StatusInternalServerError, "Failed to get show")
		return
	}

	response.Success(ctx, http.StatusOK, "Show retrieved successfully", show)
}

// ListShows handles GET /api/v1/shows
func (c *Controller) ListShows(ctx *gin.Context) {
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(ctx.DefaultQuery("offset", "0"))

	shows, err := c.service.ListShows(ctx.Request.Context(), limit, offset)
	if err != nil {
		response.Error(ctx, http.StatusInternalServerError, "Failed to list shows")
		return
	}

	response.Success(ctx, http.StatusOK, "Shows retrieved successfully", shows)
}
