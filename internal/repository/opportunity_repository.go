package repository

import (
	"context"

	"staffmatch/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type OpportunityRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewOpportunityRepository(db *pgxpool.Pool, logger *zap.Logger) *OpportunityRepository {
	return &OpportunityRepository{
		db:     db,
		logger: logger,
	}
}

func (r *OpportunityRepository) Create(ctx context.Context, opp *models.Opportunity) error {
	query := squirrel.Insert("opportunities").
		Columns("id", "details", "department_id", "user_id", "created_at").
		Values(opp.ID, opp.Details, opp.DepartmentID, opp.UserID, opp.CreatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

// ListAll returns every stored opportunity, newest first. The index builder
// always reads the full set: rebuilds are wholesale, never incremental.
func (r *OpportunityRepository) ListAll(ctx context.Context) ([]*models.Opportunity, error) {
	query := squirrel.Select("id", "details", "department_id", "user_id", "created_at").
		From("opportunities").
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var opportunities []*models.Opportunity
	for rows.Next() {
		var opp models.Opportunity
		if err := rows.Scan(&opp.ID, &opp.Details, &opp.DepartmentID, &opp.UserID, &opp.CreatedAt); err != nil {
			return nil, err
		}
		opportunities = append(opportunities, &opp)
	}
	return opportunities, rows.Err()
}
