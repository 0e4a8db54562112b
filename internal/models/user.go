package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID            uuid.UUID `db:"id"`
	FirstName     string    `db:"first_name"`
	LastName      string    `db:"last_name"`
	Email         string    `db:"email"`
	Password      string    `db:"password"`
	DepartmentID  int64     `db:"department_id"`
	DesignationID int64     `db:"designation_id"`
	CreatedAt     time.Time `db:"created_at"`
}
