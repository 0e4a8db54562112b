package models

import (
	"time"

	"github.com/google/uuid"
)

// Opportunity is a free-text staffing-engagement write-up produced by the
// summarization pipeline. DepartmentID and UserID are not populated by the
// current flow and stay null.
type Opportunity struct {
	ID           uuid.UUID  `db:"id"`
	Details      string     `db:"details"`
	DepartmentID *int64     `db:"department_id"`
	UserID       *uuid.UUID `db:"user_id"`
	CreatedAt    time.Time  `db:"created_at"`
}
