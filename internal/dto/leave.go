package dto

// ApplyLeaveRequest creates a leave request. Any caller-supplied status is
// ignored; the server always creates leaves Pending.
type ApplyLeaveRequest struct {
	Type      string `json:"type"      binding:"required,oneof=Annual Sick Casual"`
	StartDate string `json:"startDate" binding:"required,datetime=2006-01-02"`
	EndDate   string `json:"endDate"   binding:"required,datetime=2006-01-02"`
	Reason    string `json:"reason"    binding:"required,max=1000"`
}

// UpdateLeaveStatusRequest transitions a Pending leave. Target values
// outside Approved/Rejected/Cancelled are rejected by the service with a
// validation error rather than by binding, so the message matches the
// terminal-state conflict path.
type UpdateLeaveStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
