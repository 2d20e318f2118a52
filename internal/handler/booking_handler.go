package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tutorhub/tutorhub-api/internal/service"
	appErrors "github.com/tutorhub/tutorhub-api/pkg/errors"
	"github.com/tutorhub/tutorhub-api/pkg/response"
)

// BookingHandler wires the booking workflow to HTTP routes.
type BookingHandler struct {
	bookings *service.BookingService
}

// NewBookingHandler constructs a BookingHandler.
func NewBookingHandler(bookings *service.BookingService) *BookingHandler {
	return &BookingHandler{bookings: bookings}
}

// Create godoc
// @Summary Book a trial lesson
// @Tags Bookings
// @Accept json
// @Produce json
// @Param payload body service.CreateBookingRequest true "Booking submission"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope "Validation failure with field messages"
// @Failure 404 {object} response.Envelope "Unknown teacher"
// @Failure 409 {object} response.Envelope "Slot already booked"
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	var req service.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid booking payload"))
		return
	}

	booking, err := h.bookings.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, booking)
}
