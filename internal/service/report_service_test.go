package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/late-comers-api/internal/models"
	appErrors "github.com/noah-isme/late-comers-api/pkg/errors"
	"github.com/noah-isme/late-comers-api/pkg/export"
)

type fakeReportLister struct {
	records []models.LateRecord
	filter  models.RecordFilter
}

func (f *fakeReportLister) List(ctx context.Context, filter models.RecordFilter) ([]models.LateRecord, error) {
	f.filter = filter
	return f.records, nil
}

func newTestReportService(lister *fakeReportLister) *ReportService {
	return NewReportService(lister, export.NewCSVExporter(), export.NewPDFExporter(), zap.NewNop())
}

func TestReportServiceDailyCSV(t *testing.T) {
	lister := &fakeReportLister{records: []models.LateRecord{
		{ID: "r1", RegdNumber: "21A91A0501", Name: "Ravi", Department: models.DepartmentCSE, Section: models.SectionA, Time: "9:45 AM", Reason: "bus delay", Date: time.Now()},
	}}
	svc := newTestReportService(lister)

	file, err := svc.Daily(context.Background(), "csv")
	require.NoError(t, err)
	assert.Equal(t, "text/csv", file.ContentType)
	assert.True(t, strings.HasSuffix(file.Filename, ".csv"))

	body := string(file.Body)
	assert.Contains(t, body, "Regd Number,Name,Department,Section,Time,Reason,Date")
	assert.Contains(t, body, "21A91A0501")
	assert.Contains(t, body, "bus delay")

	// Today only.
	require.NotNil(t, lister.filter.DateFrom)
	require.NotNil(t, lister.filter.DateTo)
	assert.Equal(t, lister.filter.DateFrom.AddDate(0, 0, 1), *lister.filter.DateTo)
}

func TestReportServiceDailyPDF(t *testing.T) {
	lister := &fakeReportLister{records: []models.LateRecord{
		{ID: "r1", RegdNumber: "21A91A0501", Name: "Ravi", Department: models.DepartmentCSE, Section: models.SectionA, Time: "9:45 AM", Reason: "bus delay", Date: time.Now()},
	}}
	svc := newTestReportService(lister)

	file, err := svc.Daily(context.Background(), "pdf")
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", file.ContentType)
	assert.True(t, strings.HasSuffix(file.Filename, ".pdf"))
	assert.NotEmpty(t, file.Body)
}

func TestReportServiceDailyUnsupportedFormat(t *testing.T) {
	svc := newTestReportService(&fakeReportLister{})

	_, err := svc.Daily(context.Background(), "xlsx")
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
}
