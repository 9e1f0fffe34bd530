package model

import "time"

// Leave types.
const (
	LeaveAnnual = "Annual"
	LeaveSick   = "Sick"
	LeaveCasual = "Casual"
)

// Leave status lifecycle: Pending → Approved | Rejected | Cancelled.
// All three outcomes are terminal.
const (
	LeavePending   = "Pending"
	LeaveApproved  = "Approved"
	LeaveRejected  = "Rejected"
	LeaveCancelled = "Cancelled"
)

// TerminalLeaveStatus reports whether s is a valid transition target out of
// Pending. Pending itself is never a target.
func TerminalLeaveStatus(s string) bool {
	return s == LeaveApproved || s == LeaveRejected || s == LeaveCancelled
}

// Leave is one leave request (table leaves).
type Leave struct {
	ID        string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID    string    `gorm:"type:uuid;not null;index"                       json:"userId"`
	Type      string    `gorm:"type:varchar(10);not null"                      json:"type"`
	StartDate string    `gorm:"type:varchar(10);not null"                      json:"startDate"` // YYYY-MM-DD
	EndDate   string    `gorm:"type:varchar(10);not null"                      json:"endDate"`   // YYYY-MM-DD
	Reason    string    `gorm:"type:text;not null"                             json:"reason"`
	Status    string    `gorm:"type:varchar(10);not null"                      json:"status"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"createdAt"`
}

// TableName sets the table name.
func (Leave) TableName() string { return "leaves" }
