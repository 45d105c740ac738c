package service

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/late-comers-api/internal/models"
	appErrors "github.com/noah-isme/late-comers-api/pkg/errors"
	"github.com/noah-isme/late-comers-api/pkg/export"
)

type reportRecordLister interface {
	List(ctx context.Context, filter models.RecordFilter) ([]models.LateRecord, error)
}

// ReportFile is a rendered report ready to be served as a download.
type ReportFile struct {
	Filename    string
	ContentType string
	Body        []byte
}

// ReportService renders today's late records as downloadable files.
type ReportService struct {
	repo   reportRecordLister
	csv    *export.CSVExporter
	pdf    *export.PDFExporter
	logger *zap.Logger
}

// NewReportService constructs a ReportService.
func NewReportService(repo reportRecordLister, csv *export.CSVExporter, pdf *export.PDFExporter, logger *zap.Logger) *ReportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReportService{repo: repo, csv: csv, pdf: pdf, logger: logger}
}

var reportHeaders = []string{"Regd Number", "Name", "Department", "Section", "Time", "Reason", "Date"}

// Daily renders today's records in the requested format ("csv" or "pdf").
func (s *ReportService) Daily(ctx context.Context, format string) (*ReportFile, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	if format != "csv" && format != "pdf" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "unsupported report format")
	}

	from, to := dayWindow(time.Now())
	records, err := s.repo.List(ctx, models.RecordFilter{DateFrom: &from, DateTo: &to})
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "error generating report")
	}

	dataset := export.Dataset{Headers: reportHeaders, Rows: make([]map[string]string, 0, len(records))}
	for _, record := range records {
		dataset.Rows = append(dataset.Rows, map[string]string{
			"Regd Number": record.RegdNumber,
			"Name":        record.Name,
			"Department":  string(record.Department),
			"Section":     string(record.Section),
			"Time":        record.Time,
			"Reason":      record.Reason,
			"Date":        record.Date.Format(time.RFC3339),
		})
	}

	day := from.Format("2006-01-02")
	switch format {
	case "pdf":
		body, err := s.pdf.Render(dataset, "Late arrivals "+day)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "error generating report")
		}
		return &ReportFile{Filename: "late-arrivals-" + day + ".pdf", ContentType: "application/pdf", Body: body}, nil
	default:
		body, err := s.csv.Render(dataset)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "error generating report")
		}
		return &ReportFile{Filename: "late-arrivals-" + day + ".csv", ContentType: "text/csv", Body: body}, nil
	}
}
