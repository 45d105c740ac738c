package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/late-comers-api/internal/models"
	appErrors "github.com/noah-isme/late-comers-api/pkg/errors"
	"github.com/noah-isme/late-comers-api/pkg/response"
)

type recordService interface {
	Add(ctx context.Context, req models.AddRecordRequest) (*models.LateRecord, error)
	ByRegdNumber(ctx context.Context, regdNumber string) (*models.StudentRecords, error)
	List(ctx context.Context, department, section string, date *time.Time) ([]models.LateRecord, error)
	DepartmentToday(ctx context.Context, department string) ([]models.LateRecord, error)
	Delete(ctx context.Context, id string) error
	DailyStatistics(ctx context.Context) ([]models.DepartmentCount, error)
}

// RecordHandler wires HTTP endpoints to the record service.
type RecordHandler struct {
	service recordService
}

// NewRecordHandler creates a new handler.
func NewRecordHandler(svc recordService) *RecordHandler {
	return &RecordHandler{service: svc}
}

// dateFilterLayout is the expected format of the ?date= query parameter.
const dateFilterLayout = "2006-01-02"

// Add godoc
// @Summary Log a late arrival
// @Description Stores one late record per student per day
// @Tags Records
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body models.AddRecordRequest true "Record payload"
// @Success 201 {object} models.LateRecord
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /students [post]
func (h *RecordHandler) Add(c *gin.Context) {
	var req models.AddRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "all fields are required"))
		return
	}

	record, err := h.service.Add(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, record)
}

// ByRegdNumber godoc
// @Summary Get a student's records
// @Description Returns a student's history, most recent first
// @Tags Records
// @Produce json
// @Param regdNumber path string true "Registration number"
// @Success 200 {object} models.StudentRecords
// @Failure 404 {object} map[string]string
// @Router /students/{regdNumber} [get]
func (h *RecordHandler) ByRegdNumber(c *gin.Context) {
	result, err := h.service.ByRegdNumber(c.Request.Context(), c.Param("regdNumber"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, result)
}

// List godoc
// @Summary List late records
// @Description Lists records filtered by department, section and/or date
// @Tags Records
// @Produce json
// @Security BearerAuth
// @Param department query string false "Department"
// @Param section query string false "Section"
// @Param date query string false "Date (YYYY-MM-DD)"
// @Success 200 {array} models.LateRecord
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /students [get]
func (h *RecordHandler) List(c *gin.Context) {
	var date *time.Time
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.ParseInLocation(dateFilterLayout, raw, time.Local)
		if err != nil {
			response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid date filter"))
			return
		}
		date = &parsed
	}

	records, err := h.service.List(c.Request.Context(), c.Query("department"), c.Query("section"), date)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, records)
}

// DepartmentToday godoc
// @Summary Today's records for a department
// @Description Returns today's records for one department ordered by arrival time
// @Tags Records
// @Produce json
// @Security BearerAuth
// @Param department path string true "Department"
// @Success 200 {array} models.LateRecord
// @Failure 401 {object} map[string]string
// @Router /department/{department} [get]
func (h *RecordHandler) DepartmentToday(c *gin.Context) {
	records, err := h.service.DepartmentToday(c.Request.Context(), c.Param("department"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, records)
}

// Delete godoc
// @Summary Delete a record
// @Description Permanently removes a late record
// @Tags Records
// @Produce json
// @Security BearerAuth
// @Param id path string true "Record id"
// @Success 200 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /students/{id} [delete]
func (h *RecordHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}

	response.Message(c, http.StatusOK, "record deleted successfully")
}

// Statistics godoc
// @Summary Today's statistics
// @Description Per-department counts of today's late arrivals
// @Tags Records
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.DepartmentCount
// @Failure 401 {object} map[string]string
// @Router /statistics [get]
func (h *RecordHandler) Statistics(c *gin.Context) {
	counts, err := h.service.DailyStatistics(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, counts)
}
