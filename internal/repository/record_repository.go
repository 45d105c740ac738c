package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/noah-isme/late-comers-api/internal/models"
	appErrors "github.com/noah-isme/late-comers-api/pkg/errors"
)

// RecordRepository handles persistence for late-arrival records.
type RecordRepository struct {
	db *sqlx.DB
}

// NewRecordRepository constructs the repository.
func NewRecordRepository(db *sqlx.DB) *RecordRepository {
	return &RecordRepository{db: db}
}

const recordColumns = `id, regd_number, name, department, section, time, reason, date`

// Insert stores a new late record. The late_records table carries a unique
// index on (regd_number, calendar day); a violation comes back as
// appErrors.ErrDuplicateRecord so concurrent same-day inserts fail
// deterministically even when both passed the pre-insert check.
func (r *RecordRepository) Insert(ctx context.Context, record *models.LateRecord) error {
	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	if record.Date.IsZero() {
		record.Date = time.Now()
	}

	const query = `INSERT INTO late_records (id, regd_number, name, department, section, time, reason, date)
		VALUES (:id, :regd_number, :name, :department, :section, :time, :reason, :date)`
	if _, err := r.db.NamedExecContext(ctx, query, record); err != nil {
		if isUniqueViolation(err) {
			return appErrors.ErrDuplicateRecord
		}
		return fmt.Errorf("insert late record: %w", err)
	}
	return nil
}

// ExistsForDay reports whether the student already has a record with a date
// inside the half-open [from, to) window.
func (r *RecordRepository) ExistsForDay(ctx context.Context, regdNumber string, from, to time.Time) (bool, error) {
	const query = `SELECT 1 FROM late_records WHERE regd_number = $1 AND date >= $2 AND date < $3 LIMIT 1`
	var exists int
	if err := r.db.GetContext(ctx, &exists, query, regdNumber, from, to); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("check record for day: %w", err)
	}
	return true, nil
}

// ListByRegdNumber returns the student's full history, most recent first.
func (r *RecordRepository) ListByRegdNumber(ctx context.Context, regdNumber string) ([]models.LateRecord, error) {
	query := fmt.Sprintf(`SELECT %s FROM late_records WHERE regd_number = $1 ORDER BY date DESC`, recordColumns)
	var records []models.LateRecord
	if err := r.db.SelectContext(ctx, &records, query, regdNumber); err != nil {
		return nil, fmt.Errorf("list records by regd_number: %w", err)
	}
	return records, nil
}

// List returns records matching the filter, most recent first.
func (r *RecordRepository) List(ctx context.Context, filter models.RecordFilter) ([]models.LateRecord, error) {
	where := []string{"1=1"}
	args := []interface{}{}

	if filter.Department != "" {
		where = append(where, fmt.Sprintf("department = $%d", len(args)+1))
		args = append(args, filter.Department)
	}
	if filter.Section != "" {
		where = append(where, fmt.Sprintf("section = $%d", len(args)+1))
		args = append(args, filter.Section)
	}
	if filter.DateFrom != nil {
		where = append(where, fmt.Sprintf("date >= $%d", len(args)+1))
		args = append(args, *filter.DateFrom)
	}
	if filter.DateTo != nil {
		where = append(where, fmt.Sprintf("date < $%d", len(args)+1))
		args = append(args, *filter.DateTo)
	}

	query := fmt.Sprintf(`SELECT %s FROM late_records WHERE %s ORDER BY date DESC`, recordColumns, strings.Join(where, " AND "))
	var records []models.LateRecord
	if err := r.db.SelectContext(ctx, &records, query, args...); err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	return records, nil
}

// ListByDepartmentForDay returns a department's records inside [from, to),
// ordered by the free-form time field ascending. The column is text, so the
// ordering is lexical.
func (r *RecordRepository) ListByDepartmentForDay(ctx context.Context, department string, from, to time.Time) ([]models.LateRecord, error) {
	query := fmt.Sprintf(`SELECT %s FROM late_records WHERE department = $1 AND date >= $2 AND date < $3 ORDER BY time ASC`, recordColumns)
	var records []models.LateRecord
	if err := r.db.SelectContext(ctx, &records, query, department, from, to); err != nil {
		return nil, fmt.Errorf("list department records: %w", err)
	}
	return records, nil
}

// Delete removes a record by id and reports whether a row was deleted.
func (r *RecordRepository) Delete(ctx context.Context, id string) (bool, error) {
	const query = `DELETE FROM late_records WHERE id = $1`
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("delete record: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete record rows affected: %w", err)
	}
	return affected > 0, nil
}

// CountByDepartment groups records inside [from, to) by department.
// Departments without records are absent from the result.
func (r *RecordRepository) CountByDepartment(ctx context.Context, from, to time.Time) ([]models.DepartmentCount, error) {
	const query = `SELECT department, COUNT(*) AS count FROM late_records WHERE date >= $1 AND date < $2 GROUP BY department ORDER BY department`
	var counts []models.DepartmentCount
	if err := r.db.SelectContext(ctx, &counts, query, from, to); err != nil {
		return nil, fmt.Errorf("count records by department: %w", err)
	}
	return counts, nil
}

// isUniqueViolation reports whether err is a Postgres unique-constraint
// violation (error code 23505).
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
