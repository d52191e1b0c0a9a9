package propagate_template

import (
	propagateTemplate "github.com/sathiyaayyanar14/merchantcare-schedule-sync/internal/usecase/propagate_template"
)

// PropagateTemplateRequest HTTP request model
type PropagateTemplateRequest struct {
	SourceDate  string   `json:"sourceDate"`  // "2026-03-10"
	TargetDates []string `json:"targetDates"` // даты применения шаблона
}

// PropagateTemplateResponse HTTP response model
type PropagateTemplateResponse struct {
	SourceDate     string   `json:"sourceDate"`
	AppliedDates   []string `json:"appliedDates"`
	SkippedDates   []string `json:"skippedDates"`
	SlotsPerTarget int      `json:"slotsPerTarget"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *propagateTemplate.Response) *PropagateTemplateResponse {
	return &PropagateTemplateResponse{
		SourceDate:     resp.SourceDate,
		AppliedDates:   resp.AppliedDates,
		SkippedDates:   resp.SkippedDates,
		SlotsPerTarget: resp.SlotsPerTarget,
	}
}
