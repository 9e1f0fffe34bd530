package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// PayrollSettings is the single global payroll parameter row, table
// payroll_settings. The boolean primary key pins it to one row; the row is
// seeded by migration so reads never create it.
type PayrollSettings struct {
	Singleton       bool            `gorm:"primaryKey;default:true"            json:"-"`
	PFPercent       decimal.Decimal `gorm:"type:numeric(5,2);not null"         json:"pfPercent"`
	ProfessionalTax int             `gorm:"not null"                           json:"professionalTax"`
	UpdatedAt       time.Time       `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updatedAt"`
}

// TableName sets the table name.
func (PayrollSettings) TableName() string { return "payroll_settings" }
