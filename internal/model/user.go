package model

import "time"

// User is an employee record (table users).
// PasswordHash never leaves the server; responses are built from DTOs and
// the json:"-" tag is a second line of defense.
type User struct {
	ID            string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	LoginID       string    `gorm:"type:varchar(20);not null;uniqueIndex"          json:"loginId"`
	Name          string    `gorm:"type:varchar(100);not null"                     json:"name"`
	Email         string    `gorm:"type:varchar(255);not null;uniqueIndex"         json:"email"`
	PasswordHash  string    `gorm:"type:varchar(255);not null"                     json:"-"`
	Role          Role      `gorm:"type:varchar(20);not null"                      json:"role"`
	Department    string    `gorm:"type:varchar(100);not null"                     json:"department"`
	Mobile        *string   `gorm:"type:varchar(30)"                               json:"mobile,omitempty"`
	Company       *string   `gorm:"type:varchar(100)"                              json:"company,omitempty"`
	Manager       *string   `gorm:"type:varchar(100)"                              json:"manager,omitempty"`
	Location      *string   `gorm:"type:varchar(100)"                              json:"location,omitempty"`
	YearOfJoining int       `gorm:"not null"                                       json:"yearOfJoining"`
	BasicSalary   int       `gorm:"not null"                                       json:"basicSalary"`
	HRA           int       `gorm:"not null"                                       json:"hra"`
	OtherEarnings int       `gorm:"not null"                                       json:"otherEarnings"`
	AnnualLeave   int       `gorm:"not null;default:12"                            json:"annualLeave"`
	SickLeave     int       `gorm:"not null;default:6"                             json:"sickLeave"`
	CreatedAt     time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"createdAt"`
}

// TableName sets the table name.
func (User) TableName() string { return "users" }
