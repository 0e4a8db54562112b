package main

import (
	"context"
	"log"

	"staffmatch/pkg/config"
	"staffmatch/pkg/logger"
	"staffmatch/pkg/postgres"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// schema creates the tables the service needs. Reference tables are static;
// users and opportunities grow at runtime.
const schema = `
CREATE TABLE IF NOT EXISTS departments (
	id   BIGSERIAL PRIMARY KEY,
	name TEXT NOT NULL UNIQUE
);

CREATE TABLE IF NOT EXISTS designations (
	id            BIGSERIAL PRIMARY KEY,
	department_id BIGINT NOT NULL REFERENCES departments (id),
	title         TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS options (
	id   BIGSERIAL PRIMARY KEY,
	name TEXT NOT NULL UNIQUE
);

CREATE TABLE IF NOT EXISTS queries (
	id        BIGSERIAL PRIMARY KEY,
	option_id BIGINT NOT NULL REFERENCES options (id),
	ask       TEXT NOT NULL,
	order_num INT NOT NULL
);

CREATE TABLE IF NOT EXISTS users (
	id             UUID PRIMARY KEY,
	first_name     VARCHAR(50) NOT NULL,
	last_name      VARCHAR(50) NOT NULL,
	email          VARCHAR(100) NOT NULL UNIQUE,
	password       VARCHAR(255) NOT NULL,
	department_id  BIGINT NOT NULL REFERENCES departments (id),
	designation_id BIGINT NOT NULL REFERENCES designations (id),
	created_at     TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS opportunities (
	id            UUID PRIMARY KEY,
	details       TEXT NOT NULL,
	department_id BIGINT REFERENCES departments (id),
	user_id       UUID REFERENCES users (id),
	created_at    TIMESTAMPTZ NOT NULL
);
`

type seedQuery struct {
	ask      string
	orderNum int
}

var departments = map[string][]string{
	"Consulting": {
		"Manager Level 1", "Manager Level 2", "Manager Level 3", "Manager Level 4",
		"Senior Consultant Level 1", "Senior Consultant Level 2", "Senior Consultant Level 3", "Senior Consultant Level 4",
	},
	"Technology": {
		"Manager Level 1", "Manager Level 2",
		"Senior Consultant Level 1", "Senior Consultant Level 2",
	},
}

var options = map[string][]seedQuery{
	"Find an engagement": {
		{ask: "What is your current rank?", orderNum: 1},
		{ask: "Which skills are applicable to the engagements you are looking for?", orderNum: 2},
		{ask: "What is your availability timeline?", orderNum: 3},
	},
	"Staff an engagement": {
		{ask: "Who is the client and what is the goal of the engagement?", orderNum: 1},
		{ask: "Which roles do you need to fill and what skills are required for each?", orderNum: 2},
		{ask: "What rank requirements apply to each role?", orderNum: 3},
		{ask: "What is the estimated start date and timeline?", orderNum: 4},
	},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Logger.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	appLogger := logger.Get()

	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if _, err := db.Exec(ctx, schema); err != nil {
		appLogger.Fatal("Failed to create schema", zap.Error(err))
	}
	appLogger.Info("Schema ready")

	if err := seedDepartments(ctx, db); err != nil {
		appLogger.Fatal("Failed to seed departments", zap.Error(err))
	}
	if err := seedOptions(ctx, db); err != nil {
		appLogger.Fatal("Failed to seed options", zap.Error(err))
	}

	appLogger.Info("Seeding complete")
}

func seedDepartments(ctx context.Context, db *pgxpool.Pool) error {
	for name, titles := range departments {
		var deptID int64
		err := db.QueryRow(ctx,
			`INSERT INTO departments (name) VALUES ($1)
			 ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
			 RETURNING id`, name).Scan(&deptID)
		if err != nil {
			return err
		}

		for _, title := range titles {
			var exists bool
			if err := db.QueryRow(ctx,
				`SELECT EXISTS (SELECT 1 FROM designations WHERE department_id = $1 AND title = $2)`,
				deptID, title).Scan(&exists); err != nil {
				return err
			}
			if exists {
				continue
			}
			if _, err := db.Exec(ctx,
				`INSERT INTO designations (department_id, title) VALUES ($1, $2)`,
				deptID, title); err != nil {
				return err
			}
		}
	}
	return nil
}

func seedOptions(ctx context.Context, db *pgxpool.Pool) error {
	for name, queries := range options {
		var optionID int64
		err := db.QueryRow(ctx,
			`INSERT INTO options (name) VALUES ($1)
			 ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
			 RETURNING id`, name).Scan(&optionID)
		if err != nil {
			return err
		}

		// Questionnaires are replaced wholesale so order_num edits apply
		if _, err := db.Exec(ctx, `DELETE FROM queries WHERE option_id = $1`, optionID); err != nil {
			return err
		}
		for _, q := range queries {
			if _, err := db.Exec(ctx,
				`INSERT INTO queries (option_id, ask, order_num) VALUES ($1, $2, $3)`,
				optionID, q.ask, q.orderNum); err != nil {
				return err
			}
		}
	}
	return nil
}
