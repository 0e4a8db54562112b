package dto

type OpportunityResponse struct {
	ID           string  `json:"id"`
	Details      string  `json:"details"`
	DepartmentID *int64  `json:"department_id"`
	UserID       *string `json:"user_id"`
	CreatedAt    string  `json:"created_at"`
}
