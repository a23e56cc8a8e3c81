package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/jengzang/movr-go/internal/models"
	"github.com/jengzang/movr-go/internal/movement"
	"github.com/jengzang/movr-go/internal/service"
	"github.com/jengzang/movr-go/pkg/response"
)

// MobilityHandler handles HTTP requests for trace analysis
type MobilityHandler struct {
	service *service.MobilityService
}

// NewMobilityHandler creates a new mobility handler
func NewMobilityHandler(service *service.MobilityService) *MobilityHandler {
	return &MobilityHandler{service: service}
}

// CompressSessions handles POST /api/v1/sessions
func (h *MobilityHandler) CompressSessions(c *gin.Context) {
	var req models.SessionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body", err)
		return
	}

	resp, err := h.service.Sessions(req)
	if err != nil {
		h.fail(c, "Failed to compress sessions", err)
		return
	}

	response.Success(c, resp)
}

// AggregateFlows handles POST /api/v1/flows
func (h *MobilityHandler) AggregateFlows(c *gin.Context) {
	var req models.FlowsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body", err)
		return
	}

	resp, err := h.service.Flows(req)
	if err != nil {
		h.fail(c, "Failed to aggregate flows", err)
		return
	}

	response.Success(c, resp)
}

// RadiusOfGyration handles POST /api/v1/gyration
func (h *MobilityHandler) RadiusOfGyration(c *gin.Context) {
	var req models.GyrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body", err)
		return
	}

	resp, err := h.service.Gyration(req)
	if err != nil {
		h.fail(c, "Failed to compute radius of gyration", err)
		return
	}

	response.Success(c, resp)
}

// Profile handles POST /api/v1/profile
func (h *MobilityHandler) Profile(c *gin.Context) {
	var req models.ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body", err)
		return
	}

	resp, err := h.service.Profile(req)
	if err != nil {
		h.fail(c, "Failed to profile trace", err)
		return
	}

	response.Success(c, resp)
}

func (h *MobilityHandler) fail(c *gin.Context, message string, err error) {
	if isInputError(err) {
		response.BadRequest(c, message, err)
		return
	}
	response.InternalError(c, message, err)
}

func isInputError(err error) bool {
	for _, target := range []error{
		movement.ErrShapeMismatch,
		movement.ErrEmptyInput,
		movement.ErrInvalidWeight,
		movement.ErrInvalidThreshold,
		movement.ErrUndefinedCentroid,
		service.ErrTooManyPoints,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
