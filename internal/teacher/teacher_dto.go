package teacher

type CreateTeacherRequest struct {
	FullName      string   `json:"full_name" binding:"required"`
	Email         string   `json:"email" binding:"required,email"`
	TeacherNumber string   `json:"teacher_number"`
	Phone         string   `json:"phone"`
	Subjects      []string `json:"subjects"`
	HireDate      string   `json:"hire_date" binding:"required"`
	Status        string   `json:"status"`
}

type UpdateTeacherRequest struct {
	FullName string   `json:"full_name" binding:"required"`
	Email    string   `json:"email" binding:"required,email"`
	Phone    string   `json:"phone"`
	Subjects []string `json:"subjects"`
	Status   string   `json:"status"`
}

type TeacherResponse struct {
	ID            string   `json:"id"`
	CompanyID     string   `json:"company_id"`
	TeacherNumber string   `json:"teacher_number"`
	FullName      string   `json:"full_name"`
	Email         string   `json:"email"`
	Phone         string   `json:"phone,omitempty"`
	Subjects      []string `json:"subjects"`
	HireDate      string   `json:"hire_date"`
	Status        string   `json:"status"`
}
