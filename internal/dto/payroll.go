package dto

import "orbit-hrms/backend/internal/model"

// GeneratePayrunRequest asks for a payroll snapshot of one month.
type GeneratePayrunRequest struct {
	Month string `json:"month" binding:"required,datetime=2006-01"`
}

// PayslipResponse is one payrun filtered down to the calling user's item,
// the shape returned by GET /api/payruns/me.
type PayslipResponse struct {
	ID    string           `json:"id"`
	Month string           `json:"month"`
	Item  model.PayrunItem `json:"item"`
}
