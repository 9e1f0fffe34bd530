package model

// Role determines which operations a user may perform and which fields of
// other users they may see. The set is closed; every route declares the
// roles it allows.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleHR       Role = "hr"
	RolePayroll  Role = "payroll"
	RoleEmployee Role = "employee"
)

// Valid reports whether r is one of the four known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleHR, RolePayroll, RoleEmployee:
		return true
	}
	return false
}

// SeesAllRecords reports whether the role may read other users' attendance,
// leave, and directory compensation data. Employees see only their own.
func (r Role) SeesAllRecords() bool {
	return r != RoleEmployee
}
