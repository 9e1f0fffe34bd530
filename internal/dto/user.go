package dto

import "orbit-hrms/backend/internal/model"

// CreateUserRequest creates an employee record. Password is optional; a
// random temporary password is generated when absent. LoginID is always
// derived server-side and cannot be supplied.
type CreateUserRequest struct {
	Name          string     `json:"name"          binding:"required,min=2,max=100"`
	Email         string     `json:"email"         binding:"required,email"`
	Password      string     `json:"password"      binding:"omitempty,min=8"`
	Role          model.Role `json:"role"          binding:"required,oneof=admin hr payroll employee"`
	Department    string     `json:"department"    binding:"required,max=100"`
	Mobile        *string    `json:"mobile"        binding:"omitempty,max=30"`
	Company       *string    `json:"company"       binding:"omitempty,max=100"`
	Manager       *string    `json:"manager"       binding:"omitempty,max=100"`
	Location      *string    `json:"location"      binding:"omitempty,max=100"`
	YearOfJoining int        `json:"yearOfJoining" binding:"required,min=1900,max=2200"`
	BasicSalary   int        `json:"basicSalary"   binding:"min=0"`
	HRA           int        `json:"hra"           binding:"min=0"`
	OtherEarnings int        `json:"otherEarnings" binding:"min=0"`
	AnnualLeave   *int       `json:"annualLeave"   binding:"omitempty,min=0"`
	SickLeave     *int       `json:"sickLeave"     binding:"omitempty,min=0"`
}

// UpdateUserRequest patches an employee record. Only non-nil fields are
// applied; a non-nil Password is rehashed.
type UpdateUserRequest struct {
	Name          *string     `json:"name"          binding:"omitempty,min=2,max=100"`
	Email         *string     `json:"email"         binding:"omitempty,email"`
	Password      *string     `json:"password"      binding:"omitempty,min=8"`
	Role          *model.Role `json:"role"          binding:"omitempty,oneof=admin hr payroll employee"`
	Department    *string     `json:"department"    binding:"omitempty,max=100"`
	Mobile        *string     `json:"mobile"        binding:"omitempty,max=30"`
	Company       *string     `json:"company"       binding:"omitempty,max=100"`
	Manager       *string     `json:"manager"       binding:"omitempty,max=100"`
	Location      *string     `json:"location"      binding:"omitempty,max=100"`
	YearOfJoining *int        `json:"yearOfJoining" binding:"omitempty,min=1900,max=2200"`
	BasicSalary   *int        `json:"basicSalary"   binding:"omitempty,min=0"`
	HRA           *int        `json:"hra"           binding:"omitempty,min=0"`
	OtherEarnings *int        `json:"otherEarnings" binding:"omitempty,min=0"`
	AnnualLeave   *int        `json:"annualLeave"   binding:"omitempty,min=0"`
	SickLeave     *int        `json:"sickLeave"     binding:"omitempty,min=0"`
}

// LeaveBalanceRequest is the HR leave-allocation patch for
// PATCH /api/users/:id/leaves.
type LeaveBalanceRequest struct {
	AnnualLeave *int `json:"annualLeave" binding:"omitempty,min=0"`
	SickLeave   *int `json:"sickLeave"   binding:"omitempty,min=0"`
}

// UserResponse is a user record with the password stripped. All other
// fields are visible to admin/hr/payroll callers and to the user themself.
type UserResponse struct {
	ID            string     `json:"id"`
	LoginID       string     `json:"loginId"`
	Name          string     `json:"name"`
	Email         string     `json:"email"`
	Role          model.Role `json:"role"`
	Department    string     `json:"department"`
	Mobile        *string    `json:"mobile,omitempty"`
	Company       *string    `json:"company,omitempty"`
	Manager       *string    `json:"manager,omitempty"`
	Location      *string    `json:"location,omitempty"`
	YearOfJoining int        `json:"yearOfJoining"`
	BasicSalary   int        `json:"basicSalary"`
	HRA           int        `json:"hra"`
	OtherEarnings int        `json:"otherEarnings"`
	AnnualLeave   int        `json:"annualLeave"`
	SickLeave     int        `json:"sickLeave"`
	CreatedAt     string     `json:"createdAt"`
}

// DirectoryEntry is the directory view for employee-role callers:
// compensation components and leave balances are redacted entirely, not
// zeroed, so the fields never appear in the JSON.
type DirectoryEntry struct {
	ID            string     `json:"id"`
	LoginID       string     `json:"loginId"`
	Name          string     `json:"name"`
	Email         string     `json:"email"`
	Role          model.Role `json:"role"`
	Department    string     `json:"department"`
	Mobile        *string    `json:"mobile,omitempty"`
	Company       *string    `json:"company,omitempty"`
	Manager       *string    `json:"manager,omitempty"`
	Location      *string    `json:"location,omitempty"`
	YearOfJoining int        `json:"yearOfJoining"`
	CreatedAt     string     `json:"createdAt"`
}

// NewUserResponse strips the password hash from a user record.
func NewUserResponse(u *model.User) *UserResponse {
	return &UserResponse{
		ID:            u.ID,
		LoginID:       u.LoginID,
		Name:          u.Name,
		Email:         u.Email,
		Role:          u.Role,
		Department:    u.Department,
		Mobile:        u.Mobile,
		Company:       u.Company,
		Manager:       u.Manager,
		Location:      u.Location,
		YearOfJoining: u.YearOfJoining,
		BasicSalary:   u.BasicSalary,
		HRA:           u.HRA,
		OtherEarnings: u.OtherEarnings,
		AnnualLeave:   u.AnnualLeave,
		SickLeave:     u.SickLeave,
		CreatedAt:     u.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
	}
}

// NewDirectoryEntry redacts compensation and leave balances from a user
// record.
func NewDirectoryEntry(u *model.User) *DirectoryEntry {
	return &DirectoryEntry{
		ID:            u.ID,
		LoginID:       u.LoginID,
		Name:          u.Name,
		Email:         u.Email,
		Role:          u.Role,
		Department:    u.Department,
		Mobile:        u.Mobile,
		Company:       u.Company,
		Manager:       u.Manager,
		Location:      u.Location,
		YearOfJoining: u.YearOfJoining,
		CreatedAt:     u.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
	}
}
