package repository

import (
	"context"

	"staffmatch/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// ReferenceRepository serves the static lookup tables: departments,
// designations, onboarding options and their ordered questions.
type ReferenceRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewReferenceRepository(db *pgxpool.Pool, logger *zap.Logger) *ReferenceRepository {
	return &ReferenceRepository{
		db:     db,
		logger: logger,
	}
}

func (r *ReferenceRepository) ListOptions(ctx context.Context) ([]*models.Option, error) {
	query := squirrel.Select("id", "name").
		From("options").
		OrderBy("id ASC").
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

	var options []*models.Option
	for rows.Next() {
		var opt models.Option
		if err := rows.Scan(&opt.ID, &opt.Name); err != nil {
			return nil, err
		}
		options = append(options, &opt)
	}
	return options, rows.Err()
}

// ListQueriesByOption returns the questionnaire for one option, sorted by
// order_num ascending.
func (r *ReferenceRepository) ListQueriesByOption(ctx context.Context, optionID int64) ([]*models.Query, error) {
	query := squirrel.Select("id", "option_id", "ask", "order_num").
		From("queries").
		Where(squirrel.Eq{"option_id": optionID}).
		OrderBy("order_num ASC").
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

	var queries []*models.Query
	for rows.Next() {
		var q models.Query
		if err := rows.Scan(&q.ID, &q.OptionID, &q.Ask, &q.OrderNum); err != nil {
			return nil, err
		}
		queries = append(queries, &q)
	}
	return queries, rows.Err()
}

func (r *ReferenceRepository) ListDepartments(ctx context.Context) ([]*models.Department, error) {
	query := squirrel.Select("id", "name").
		From("departments").
		OrderBy("id ASC").
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

	var departments []*models.Department
	for rows.Next() {
		var d models.Department
		if err := rows.Scan(&d.ID, &d.Name); err != nil {
			return nil, err
		}
		departments = append(departments, &d)
	}
	return departments, rows.Err()
}

func (r *ReferenceRepository) ListDesignationsByDepartment(ctx context.Context, departmentID int64) ([]*models.Designation, error) {
	query := squirrel.Select("id", "department_id", "title").
		From("designations").
		Where(squirrel.Eq{"department_id": departmentID}).
		OrderBy("id ASC").
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

	var designations []*models.Designation
	for rows.Next() {
		var d models.Designation
		if err := rows.Scan(&d.ID, &d.DepartmentID, &d.Title); err != nil {
			return nil, err
		}
		designations = append(designations, &d)
	}
	return designations, rows.Err()
}
