package model

import "time"

// Attendance status values.
const (
	AttendancePresent = "Present"
	AttendanceAbsent  = "Absent"
	AttendanceHalf    = "Half"
	AttendanceLeave   = "Leave"
)

// Attendance is one clock-in/out record (table attendance).
// At most one record exists per (user, date); the unique constraint in the
// schema is the guarantee, the service-level check is the fast path.
type Attendance struct {
	ID        string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID    string    `gorm:"type:uuid;not null;uniqueIndex:uq_attendance_user_date" json:"userId"`
	Date      string    `gorm:"type:varchar(10);not null;uniqueIndex:uq_attendance_user_date" json:"date"` // YYYY-MM-DD
	InTime    string    `gorm:"type:varchar(5);not null"                       json:"inTime"`  // HH:MM
	OutTime   *string   `gorm:"type:varchar(5)"                                json:"outTime"` // nil until clock-out
	Status    string    `gorm:"type:varchar(10);not null"                      json:"status"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"createdAt"`
}

// TableName sets the table name.
func (Attendance) TableName() string { return "attendance" }

// ClockedOut reports whether the record is terminal for its day.
func (a *Attendance) ClockedOut() bool { return a.OutTime != nil }
