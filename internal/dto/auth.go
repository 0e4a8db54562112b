package dto

type RegisterRequest struct {
	FirstName     string `json:"first_name" validate:"required,max=50"`
	LastName      string `json:"last_name" validate:"required,max=50"`
	Email         string `json:"email" validate:"required,email,max=100"`
	Password      string `json:"password" validate:"required,min=8"`
	DepartmentID  int64  `json:"department_id" validate:"required,gt=0"`
	DesignationID int64  `json:"designation_id" validate:"required,gt=0"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UserResponse struct {
	ID            string `json:"id"`
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	Email         string `json:"email"`
	DepartmentID  int64  `json:"department_id"`
	DesignationID int64  `json:"designation_id"`
}

type TokenResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	User        UserResponse `json:"user"`
}
