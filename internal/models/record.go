package models

import "time"

// Department enumerates the academic departments students belong to.
type Department string

const (
	DepartmentCSE   Department = "CSE"
	DepartmentECE   Department = "ECE"
	DepartmentEEE   Department = "EEE"
	DepartmentMECH  Department = "MECH"
	DepartmentCIVIL Department = "CIVIL"
	DepartmentIT    Department = "IT"
)

// Valid reports whether the department is one of the known values.
func (d Department) Valid() bool {
	switch d {
	case DepartmentCSE, DepartmentECE, DepartmentEEE, DepartmentMECH, DepartmentCIVIL, DepartmentIT:
		return true
	}
	return false
}

// LateRecord is one student's late-arrival entry for one day. The student
// attributes are denormalised onto the record; the record is the unit of
// truth, there is no separate student profile.
type LateRecord struct {
	ID         string     `db:"id" json:"id"`
	RegdNumber string     `db:"regd_number" json:"regdNumber"`
	Name       string     `db:"name" json:"name"`
	Department Department `db:"department" json:"department"`
	Section    Section    `db:"section" json:"section"`
	Time       string     `db:"time" json:"time"`
	Reason     string     `db:"reason" json:"reason"`
	Date       time.Time  `db:"date" json:"date"`
}

// RecordFilter captures the conjunctive filters for listing records.
// A nil/empty field imposes no constraint. DateFrom/DateTo bound a
// half-open [from, to) window.
type RecordFilter struct {
	Department string
	Section    string
	DateFrom   *time.Time
	DateTo     *time.Time
}

// AddRecordRequest is the payload for logging a late arrival.
type AddRecordRequest struct {
	RegdNumber string `json:"regdNumber" validate:"required"`
	Name       string `json:"name" validate:"required"`
	Department string `json:"department" validate:"required,oneof=CSE ECE EEE MECH CIVIL IT"`
	Section    string `json:"section" validate:"required,oneof=A B C D"`
	Time       string `json:"time" validate:"required"`
	Reason     string `json:"reason" validate:"required"`
}

// StudentInfo describes a student as of their most recent record.
type StudentInfo struct {
	RegdNumber string     `json:"regdNumber"`
	Name       string     `json:"name"`
	Department Department `json:"department"`
	Section    Section    `json:"section"`
}

// StudentRecords bundles a student's info with their full history.
type StudentRecords struct {
	Student StudentInfo  `json:"student"`
	Records []LateRecord `json:"records"`
}

// DepartmentCount is one row of the daily statistics. The "_id" key matches
// the aggregation output the existing frontend consumes.
type DepartmentCount struct {
	Department Department `db:"department" json:"_id"`
	Count      int        `db:"count" json:"count"`
}
