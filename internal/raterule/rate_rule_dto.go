package raterule

import "github.com/shopspring/decimal"

type CreateRateRuleRequest struct {
	MinStudents   *int             `json:"min_students" binding:"required,min=0"`
	RatePerLesson *decimal.Decimal `json:"rate_per_lesson" binding:"required"`
	EffectiveFrom string           `json:"effective_from" binding:"required"`
}

type RateRuleResponse struct {
	ID            string `json:"id"`
	TeacherID     string `json:"teacher_id"`
	MinStudents   int    `json:"min_students"`
	RatePerLesson string `json:"rate_per_lesson"`
	EffectiveFrom string `json:"effective_from"`
	CreatedBy     string `json:"created_by"`
	CreatedAt     string `json:"created_at"`
}
