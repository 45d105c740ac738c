package models

import "time"

// Section identifies the class section a teacher is responsible for.
type Section string

const (
	SectionA Section = "A"
	SectionB Section = "B"
	SectionC Section = "C"
	SectionD Section = "D"
)

// Valid reports whether the section is one of the known values.
func (s Section) Valid() bool {
	switch s {
	case SectionA, SectionB, SectionC, SectionD:
		return true
	}
	return false
}

// Teacher represents a staff login account scoped to one section.
type Teacher struct {
	ID           string    `db:"id" json:"id"`
	TeacherID    string    `db:"teacher_id" json:"teacherId"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Section      Section   `db:"section" json:"section"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
}
