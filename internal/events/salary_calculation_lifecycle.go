package events

import "time"

const SalaryCalculationLifecycleTopic = "tutor.salary.calculation.lifecycle.v1"

const (
	SalaryCalculationApproved = "salary_calculation_approved"
	SalaryCalculationReopened = "salary_calculation_reopened"
)

type SalaryCalculationLifecycleEvent struct {
	EventType     string    `json:"event_type"`
	RequestID     string    `json:"request_id,omitempty"`
	CalculationID string    `json:"calculation_id"`
	CompanyID     string    `json:"company_id"`
	TeacherID     string    `json:"teacher_id"`
	Amount        string    `json:"amount"`
	OccurredAt    time.Time `json:"occurred_at"`
}
