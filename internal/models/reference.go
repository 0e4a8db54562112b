package models

// Static reference rows. Read-only at runtime, seeded by cmd/seed.

type Department struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
}

type Designation struct {
	ID           int64  `db:"id"`
	DepartmentID int64  `db:"department_id"`
	Title        string `db:"title"`
}

// Option is a top-level onboarding category.
type Option struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
}

// Query is one questionnaire entry for an option. OrderNum defines the ask
// order within its option only.
type Query struct {
	ID       int64  `db:"id"`
	OptionID int64  `db:"option_id"`
	Ask      string `db:"ask"`
	OrderNum int    `db:"order_num"`
}
