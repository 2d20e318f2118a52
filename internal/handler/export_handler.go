package handler

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tutorhub/tutorhub-api/internal/service"
	"github.com/tutorhub/tutorhub-api/pkg/export"
	"github.com/tutorhub/tutorhub-api/pkg/response"
)

// ExportHandler serves admin downloads of the booking and inquiry logs.
type ExportHandler struct {
	exports *service.ExportService
}

// NewExportHandler constructs an ExportHandler.
func NewExportHandler(exports *service.ExportService) *ExportHandler {
	return &ExportHandler{exports: exports}
}

// Bookings godoc
// @Summary Export the booking log
// @Tags Admin
// @Produce text/csv
// @Produce application/pdf
// @Param format query string false "Output format (csv/pdf)"
// @Success 200 {file} file
// @Router /admin/bookings/export [get]
func (h *ExportHandler) Bookings(c *gin.Context) {
	format := exportFormat(c)
	payload, contentType, err := h.exports.Bookings(c.Request.Context(), format)
	if err != nil {
		response.Error(c, err)
		return
	}
	serveDownload(c, payload, contentType, "bookings", format)
}

// Requests godoc
// @Summary Export the inquiry log
// @Tags Admin
// @Produce text/csv
// @Produce application/pdf
// @Param format query string false "Output format (csv/pdf)"
// @Success 200 {file} file
// @Router /admin/requests/export [get]
func (h *ExportHandler) Requests(c *gin.Context) {
	format := exportFormat(c)
	payload, contentType, err := h.exports.Requests(c.Request.Context(), format)
	if err != nil {
		response.Error(c, err)
		return
	}
	serveDownload(c, payload, contentType, "requests", format)
}

func exportFormat(c *gin.Context) string {
	format := strings.ToLower(strings.TrimSpace(c.DefaultQuery("format", export.FormatCSV)))
	return format
}

func serveDownload(c *gin.Context, payload []byte, contentType, prefix, format string) {
	filename := fmt.Sprintf("%s-%s.%s", prefix, time.Now().UTC().Format("20060102-150405"), format)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, contentType, payload)
}
