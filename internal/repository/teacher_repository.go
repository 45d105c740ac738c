package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/late-comers-api/internal/models"
)

// TeacherRepository manages persistence for teacher accounts.
type TeacherRepository struct {
	db *sqlx.DB
}

// NewTeacherRepository constructs a TeacherRepository.
func NewTeacherRepository(db *sqlx.DB) *TeacherRepository {
	return &TeacherRepository{db: db}
}

// FindByTeacherID fetches a teacher by their login identifier.
// Returns sql.ErrNoRows untouched so callers can branch on absence.
func (r *TeacherRepository) FindByTeacherID(ctx context.Context, teacherID string) (*models.Teacher, error) {
	const query = `SELECT id, teacher_id, password_hash, section, created_at FROM teachers WHERE teacher_id = $1 LIMIT 1`
	var teacher models.Teacher
	if err := r.db.GetContext(ctx, &teacher, query, teacherID); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find teacher by teacher_id: %w", err)
	}
	return &teacher, nil
}

// ExistsByTeacherID checks whether an account with the login id exists.
func (r *TeacherRepository) ExistsByTeacherID(ctx context.Context, teacherID string) (bool, error) {
	const query = `SELECT 1 FROM teachers WHERE teacher_id = $1 LIMIT 1`
	var exists int
	if err := r.db.GetContext(ctx, &exists, query, teacherID); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("check teacher exists: %w", err)
	}
	return true, nil
}

// Create inserts a new teacher account.
func (r *TeacherRepository) Create(ctx context.Context, teacher *models.Teacher) error {
	if teacher.ID == "" {
		teacher.ID = uuid.NewString()
	}
	if teacher.CreatedAt.IsZero() {
		teacher.CreatedAt = time.Now().UTC()
	}

	const query = `INSERT INTO teachers (id, teacher_id, password_hash, section, created_at)
		VALUES (:id, :teacher_id, :password_hash, :section, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, teacher); err != nil {
		return fmt.Errorf("create teacher: %w", err)
	}
	return nil
}
