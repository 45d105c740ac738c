package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/late-comers-api/internal/models"
	appErrors "github.com/noah-isme/late-comers-api/pkg/errors"
)

type fakeRecordSrv struct {
	addResp    *models.LateRecord
	addErr     error
	student    *models.StudentRecords
	studentErr error
	records    []models.LateRecord
	listErr    error
	listDept   string
	listSect   string
	listDate   *time.Time
	deleteErr  error
	deletedID  string
	counts     []models.DepartmentCount
	countsErr  error
}

func (f *fakeRecordSrv) Add(_ context.Context, req models.AddRecordRequest) (*models.LateRecord, error) {
	return f.addResp, f.addErr
}

func (f *fakeRecordSrv) ByRegdNumber(_ context.Context, regdNumber string) (*models.StudentRecords, error) {
	return f.student, f.studentErr
}

func (f *fakeRecordSrv) List(_ context.Context, department, section string, date *time.Time) ([]models.LateRecord, error) {
	f.listDept = department
	f.listSect = section
	f.listDate = date
	return f.records, f.listErr
}

func (f *fakeRecordSrv) DepartmentToday(_ context.Context, department string) ([]models.LateRecord, error) {
	f.listDept = department
	return f.records, f.listErr
}

func (f *fakeRecordSrv) Delete(_ context.Context, id string) error {
	f.deletedID = id
	return f.deleteErr
}

func (f *fakeRecordSrv) DailyStatistics(context.Context) ([]models.DepartmentCount, error) {
	return f.counts, f.countsErr
}

func TestRecordHandlerAdd(t *testing.T) {
	gin.SetMode(gin.TestMode)
	srv := &fakeRecordSrv{addResp: &models.LateRecord{ID: "r1", RegdNumber: "21A91A0501", Name: "Ravi", Department: models.DepartmentCSE, Section: models.SectionA, Time: "9:45 AM", Reason: "bus delay"}}
	handler := NewRecordHandler(srv)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodPost, "/students", strings.NewReader(`{"regdNumber":"21A91A0501","name":"Ravi","department":"CSE","section":"A","time":"9:45 AM","reason":"bus delay"}`))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.Add(c)

	assert.Equal(t, http.StatusCreated, rec.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "21A91A0501", body["regdNumber"])
}

func TestRecordHandlerAddMalformedBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewRecordHandler(&fakeRecordSrv{})

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodPost, "/students", strings.NewReader("{broken"))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.Add(c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "all fields are required", body["message"])
}

func TestRecordHandlerAddDuplicate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewRecordHandler(&fakeRecordSrv{addErr: appErrors.ErrDuplicateRecord})

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodPost, "/students", strings.NewReader(`{"regdNumber":"21A91A0501","name":"Ravi","department":"CSE","section":"A","time":"9:45 AM","reason":"bus delay"}`))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.Add(c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "record already exists for this student today", body["message"])
}

func TestRecordHandlerByRegdNumber(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewRecordHandler(&fakeRecordSrv{student: &models.StudentRecords{
		Student: models.StudentInfo{RegdNumber: "21A91A0501", Name: "Ravi", Department: models.DepartmentCSE, Section: models.SectionA},
		Records: []models.LateRecord{{ID: "r1", RegdNumber: "21A91A0501"}},
	}})

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/students/21A91A0501", nil)
	c.Params = gin.Params{{Key: "regdNumber", Value: "21A91A0501"}}

	handler.ByRegdNumber(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Student models.StudentInfo  `json:"student"`
		Records []models.LateRecord `json:"records"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Ravi", body.Student.Name)
	assert.Len(t, body.Records, 1)
}

func TestRecordHandlerByRegdNumberNotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewRecordHandler(&fakeRecordSrv{studentErr: appErrors.Clone(appErrors.ErrNotFound, "no records found for this registration number")})

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/students/unknown", nil)
	c.Params = gin.Params{{Key: "regdNumber", Value: "unknown"}}

	handler.ByRegdNumber(c)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "no records found for this registration number", body["message"])
}

func TestRecordHandlerListPassesFilters(t *testing.T) {
	gin.SetMode(gin.TestMode)
	srv := &fakeRecordSrv{records: []models.LateRecord{}}
	handler := NewRecordHandler(srv)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/students?department=CSE&section=A&date=2026-08-29", nil)

	handler.List(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "CSE", srv.listDept)
	assert.Equal(t, "A", srv.listSect)
	require.NotNil(t, srv.listDate)
	assert.Equal(t, time.Date(2026, 8, 29, 0, 0, 0, 0, time.Local), *srv.listDate)
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
}

func TestRecordHandlerListInvalidDate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewRecordHandler(&fakeRecordSrv{})

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/students?date=29-08-2026", nil)

	handler.List(c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "invalid date filter", body["message"])
}

func TestRecordHandlerDepartmentToday(t *testing.T) {
	gin.SetMode(gin.TestMode)
	srv := &fakeRecordSrv{records: []models.LateRecord{{ID: "r1", Department: models.DepartmentECE}}}
	handler := NewRecordHandler(srv)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/department/ECE", nil)
	c.Params = gin.Params{{Key: "department", Value: "ECE"}}

	handler.DepartmentToday(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ECE", srv.listDept)
}

func TestRecordHandlerDelete(t *testing.T) {
	gin.SetMode(gin.TestMode)
	srv := &fakeRecordSrv{}
	handler := NewRecordHandler(srv)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodDelete, "/students/r1", nil)
	c.Params = gin.Params{{Key: "id", Value: "r1"}}

	handler.Delete(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "r1", srv.deletedID)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "record deleted successfully", body["message"])
}

func TestRecordHandlerDeleteNotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewRecordHandler(&fakeRecordSrv{deleteErr: appErrors.Clone(appErrors.ErrNotFound, "record not found")})

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodDelete, "/students/missing", nil)
	c.Params = gin.Params{{Key: "id", Value: "missing"}}

	handler.Delete(c)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRecordHandlerStatisticsShape(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewRecordHandler(&fakeRecordSrv{counts: []models.DepartmentCount{
		{Department: models.DepartmentCSE, Count: 3},
		{Department: models.DepartmentIT, Count: 1},
	}})

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/statistics", nil)

	handler.Statistics(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	var body []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body, 2)
	assert.Equal(t, "CSE", body[0]["_id"])
	assert.Equal(t, float64(3), body[0]["count"])
}
