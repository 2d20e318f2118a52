package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tutorhub/tutorhub-api/internal/service"
	appErrors "github.com/tutorhub/tutorhub-api/pkg/errors"
	"github.com/tutorhub/tutorhub-api/pkg/response"
)

// InquiryHandler wires the inquiry workflow to HTTP routes.
type InquiryHandler struct {
	inquiries *service.InquiryService
}

// NewInquiryHandler constructs an InquiryHandler.
func NewInquiryHandler(inquiries *service.InquiryService) *InquiryHandler {
	return &InquiryHandler{inquiries: inquiries}
}

// Create godoc
// @Summary Submit a general tutoring inquiry
// @Tags Requests
// @Accept json
// @Produce json
// @Param payload body service.CreateInquiryRequest true "Inquiry submission"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope "Validation failure with field messages"
// @Failure 404 {object} response.Envelope "Unknown goal"
// @Router /requests [post]
func (h *InquiryHandler) Create(c *gin.Context) {
	var req service.CreateInquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid inquiry payload"))
		return
	}

	request, err := h.inquiries.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, request)
}
