package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// PayrunItem is one user's line in a payrun snapshot. Amounts are monthly
// integer currency units; deductions and net are rounded per item, never at
// the aggregate.
type PayrunItem struct {
	UserID     string `json:"userId"`
	Gross      int64  `json:"gross"`
	Deductions int64  `json:"deductions"`
	Net        int64  `json:"net"`
}

// PayrunItems maps to a JSONB column, implementing the GORM
// Scanner/Valuer pair.
type PayrunItems []PayrunItem

// Scan decodes the JSONB payload.
func (p *PayrunItems) Scan(src interface{}) error {
	if src == nil {
		*p = nil
		return nil
	}
	var b []byte
	switch v := src.(type) {
	case []byte:
		b = v
	case string:
		b = []byte(v)
	default:
		return fmt.Errorf("PayrunItems.Scan: unsupported type %T", src)
	}
	return json.Unmarshal(b, p)
}

// Value encodes the items as JSON.
func (p PayrunItems) Value() (driver.Value, error) {
	if p == nil {
		return "[]", nil
	}
	b, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Payrun is an immutable monthly payroll snapshot (table payruns).
// One snapshot exists per month; regeneration is rejected, never replaced.
type Payrun struct {
	ID           string      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Month        string      `gorm:"type:varchar(7);not null;uniqueIndex"           json:"month"` // YYYY-MM
	GeneratedBy  *string     `gorm:"type:uuid"                                      json:"generatedBy,omitempty"`
	TotalPayroll int64       `gorm:"not null"                                       json:"totalPayroll"`
	Items        PayrunItems `gorm:"type:jsonb;not null"                            json:"items"`
	CreatedAt    time.Time   `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"createdAt"`
}

// TableName sets the table name.
func (Payrun) TableName() string { return "payruns" }
