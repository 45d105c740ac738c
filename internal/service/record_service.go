package service

import (
	"context"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/late-comers-api/internal/models"
	appErrors "github.com/noah-isme/late-comers-api/pkg/errors"
)

type recordRepository interface {
	Insert(ctx context.Context, record *models.LateRecord) error
	ExistsForDay(ctx context.Context, regdNumber string, from, to time.Time) (bool, error)
	ListByRegdNumber(ctx context.Context, regdNumber string) ([]models.LateRecord, error)
	List(ctx context.Context, filter models.RecordFilter) ([]models.LateRecord, error)
	ListByDepartmentForDay(ctx context.Context, department string, from, to time.Time) ([]models.LateRecord, error)
	Delete(ctx context.Context, id string) (bool, error)
	CountByDepartment(ctx context.Context, from, to time.Time) ([]models.DepartmentCount, error)
}

type statsCache interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	DeleteByPattern(ctx context.Context, pattern string) error
}

const statsCachePrefix = "stats:daily:"

// RecordService enforces the one-record-per-student-per-day invariant and
// serves filtered reads and daily aggregates.
type RecordService struct {
	repo      recordRepository
	cache     statsCache
	metrics   *MetricsService
	validator *validator.Validate
	logger    *zap.Logger
	statsTTL  time.Duration
}

// NewRecordService constructs a RecordService. cache and metrics may be nil;
// the statistics path then always hits the repository.
func NewRecordService(repo recordRepository, cache statsCache, metrics *MetricsService, validate *validator.Validate, logger *zap.Logger, statsTTL time.Duration) *RecordService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	if statsTTL <= 0 {
		statsTTL = time.Minute
	}
	return &RecordService{repo: repo, cache: cache, metrics: metrics, validator: validate, logger: logger, statsTTL: statsTTL}
}

// Add stores a late record for today. At most one record per student per
// calendar day: a pre-insert check gives the friendly failure, and the
// storage-level unique index closes the check-then-insert race.
func (s *RecordService) Add(ctx context.Context, req models.AddRecordRequest) (*models.LateRecord, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "all fields are required")
	}

	now := time.Now()
	from, to := dayWindow(now)

	exists, err := s.repo.ExistsForDay(ctx, req.RegdNumber, from, to)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "error adding student record")
	}
	if exists {
		return nil, appErrors.Clone(appErrors.ErrDuplicateRecord, "")
	}

	record := &models.LateRecord{
		RegdNumber: req.RegdNumber,
		Name:       req.Name,
		Department: models.Department(req.Department),
		Section:    models.Section(req.Section),
		Time:       req.Time,
		Reason:     req.Reason,
		Date:       now,
	}

	if err := s.repo.Insert(ctx, record); err != nil {
		if errors.Is(err, appErrors.ErrDuplicateRecord) {
			return nil, appErrors.Clone(appErrors.ErrDuplicateRecord, "")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "error adding student record")
	}

	s.invalidateStats(ctx)
	return record, nil
}

// ByRegdNumber returns a student's full history, most recent first, with
// the student info taken from the most recent record.
func (s *RecordService) ByRegdNumber(ctx context.Context, regdNumber string) (*models.StudentRecords, error) {
	records, err := s.repo.ListByRegdNumber(ctx, regdNumber)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "error fetching student records")
	}
	if len(records) == 0 {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "no records found for this registration number")
	}

	latest := records[0]
	return &models.StudentRecords{
		Student: models.StudentInfo{
			RegdNumber: latest.RegdNumber,
			Name:       latest.Name,
			Department: latest.Department,
			Section:    latest.Section,
		},
		Records: records,
	}, nil
}

// List returns records matching the optional department/section/date
// filters, most recent first.
func (s *RecordService) List(ctx context.Context, department, section string, date *time.Time) ([]models.LateRecord, error) {
	filter := models.RecordFilter{Department: department, Section: section}
	if date != nil {
		from, to := dayWindow(*date)
		filter.DateFrom = &from
		filter.DateTo = &to
	}

	records, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "error fetching records")
	}
	if records == nil {
		records = []models.LateRecord{}
	}
	return records, nil
}

// DepartmentToday returns today's records for one department ordered by the
// free-form time field (lexical order; the field's format is not validated).
func (s *RecordService) DepartmentToday(ctx context.Context, department string) ([]models.LateRecord, error) {
	from, to := dayWindow(time.Now())
	records, err := s.repo.ListByDepartmentForDay(ctx, department, from, to)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "error fetching department records")
	}
	if records == nil {
		records = []models.LateRecord{}
	}
	return records, nil
}

// Delete permanently removes a record. Any authenticated teacher may delete
// any record; there is no per-section ownership.
func (s *RecordService) Delete(ctx context.Context, id string) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "error deleting record")
	}
	if !deleted {
		return appErrors.Clone(appErrors.ErrNotFound, "record not found")
	}

	s.invalidateStats(ctx)
	return nil
}

// DailyStatistics returns today's per-department counts. Departments with no
// records today are absent. Served from cache when fresh.
func (s *RecordService) DailyStatistics(ctx context.Context) ([]models.DepartmentCount, error) {
	from, to := dayWindow(time.Now())
	key := statsCachePrefix + from.Format("2006-01-02")

	if s.cache != nil {
		var cached []models.DepartmentCount
		start := time.Now()
		err := s.cache.Get(ctx, key, &cached)
		s.metrics.RecordCacheOperation(err == nil, time.Since(start))
		if err == nil {
			return cached, nil
		}
		if !errors.Is(err, appErrors.ErrCacheMiss) {
			s.logger.Warn("statistics cache read failed", zap.Error(err))
		}
	}

	counts, err := s.repo.CountByDepartment(ctx, from, to)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "error fetching statistics")
	}
	if counts == nil {
		counts = []models.DepartmentCount{}
	}

	if s.cache != nil {
		start := time.Now()
		if err := s.cache.Set(ctx, key, counts, s.statsTTL); err != nil {
			s.logger.Warn("statistics cache write failed", zap.Error(err))
		}
		s.metrics.ObserveCacheWrite(time.Since(start))
	}

	return counts, nil
}

func (s *RecordService) invalidateStats(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.DeleteByPattern(ctx, statsCachePrefix+"*"); err != nil {
		s.logger.Warn("statistics cache invalidation failed", zap.Error(err))
	}
}

// dayWindow returns the half-open local calendar-day window containing t.
func dayWindow(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return start, start.AddDate(0, 0, 1)
}
