package dto

// UpdateSettingsRequest patches the global payroll parameters. PFPercent
// arrives as a string ("12", "12.5") and is parsed as a decimal by the
// service.
type UpdateSettingsRequest struct {
	PFPercent       *string `json:"pfPercent"       binding:"omitempty,max=8"`
	ProfessionalTax *int    `json:"professionalTax" binding:"omitempty,min=0"`
}
