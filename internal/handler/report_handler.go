package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/late-comers-api/internal/service"
	"github.com/noah-isme/late-comers-api/pkg/response"
)

type reportService interface {
	Daily(ctx context.Context, format string) (*service.ReportFile, error)
}

// ReportHandler serves downloadable daily reports.
type ReportHandler struct {
	service reportService
}

// NewReportHandler creates a new handler.
func NewReportHandler(svc reportService) *ReportHandler {
	return &ReportHandler{service: svc}
}

// Daily godoc
// @Summary Download today's report
// @Description Renders today's late records as CSV or PDF
// @Tags Reports
// @Produce octet-stream
// @Security BearerAuth
// @Param format query string false "csv or pdf" default(csv)
// @Success 200 {file} file
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /reports/daily [get]
func (h *ReportHandler) Daily(c *gin.Context) {
	file, err := h.service.Daily(c.Request.Context(), c.DefaultQuery("format", "csv"))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+file.Filename+`"`)
	c.Data(http.StatusOK, file.ContentType, file.Body)
}
