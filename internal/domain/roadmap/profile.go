package roadmap

import "time"

type EducationLevel string

const (
	EducationSHS         EducationLevel = "SHS"
	EducationSHSGraduate EducationLevel = "SHS_GRADUATE"
	EducationUniversity  EducationLevel = "UNIVERSITY"
	EducationOther       EducationLevel = "OTHER"
)

type FinancialStatus string

const (
	FinancialLow      FinancialStatus = "LOW"
	FinancialModerate FinancialStatus = "MODERATE"
	FinancialHigh     FinancialStatus = "HIGH"
)

// UserProfile is the requester snapshot handed to the roadmap pipeline.
type UserProfile struct {
	ID              string          `json:"id,omitempty"`
	Email           string          `json:"email" validate:"omitempty,email"`
	EducationLevel  EducationLevel  `json:"educationLevel" validate:"required,oneof=SHS SHS_GRADUATE UNIVERSITY OTHER"`
	FinancialStatus FinancialStatus `json:"financialStatus" validate:"required,oneof=LOW MODERATE HIGH"`
	Skills          []string        `json:"skills"`
	Location        string          `json:"location"`
	CreatedAt       *time.Time      `json:"createdAt,omitempty"`
}
