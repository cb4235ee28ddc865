package domain

type EnforceRequest struct {
	UserID    string `json:"user_id" binding:"required"`
	CompanyID string `json:"company_id" binding:"required"`
	Resource  string `json:"resource" binding:"required"`
	Action    string `json:"action" binding:"required"`
}

type EnforceResponse struct {
	Allowed bool `json:"allowed"`
}

// Resources guarded by RBACAuthorize. Permissions rows use the same strings.
const (
	ResourceTeacher  = "teacher"
	ResourceClass    = "class"
	ResourceRateRule = "rate_rule"
	ResourceSalary   = "salary"
	ResourceUser     = "user"
)
