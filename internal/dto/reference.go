package dto

type OptionResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type QueryResponse struct {
	OptionID int64  `json:"option_id"`
	Ask      string `json:"ask"`
	OrderNum int    `json:"order_num"`
}

type DepartmentResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type DesignationResponse struct {
	ID           int64  `json:"id"`
	DepartmentID int64  `json:"department_id"`
	Title        string `json:"title"`
}
