package repository

import (
	"context"
	"database/sql"
	"fmt"
)

// schema bootstraps the sqlite database. Kept as plain DDL; migration
// tooling is out of scope for the simulator.
const schema = `
CREATE TABLE IF NOT EXISTS companies (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL,
	slug TEXT NOT NULL UNIQUE,
	description TEXT NOT NULL DEFAULT '',
	industry TEXT NOT NULL DEFAULT '',
	company_size TEXT NOT NULL DEFAULT '',
	tech_stack TEXT NOT NULL DEFAULT '[]',
	focus_areas TEXT NOT NULL DEFAULT '[]',
	incident_frequency REAL NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS incidents (
	id TEXT PRIMARY KEY,
	company_id INTEGER NOT NULL,
	user_id INTEGER NOT NULL,
	title TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	severity TEXT NOT NULL,
	time_limit_minutes INTEGER NOT NULL,
	affected_services TEXT NOT NULL DEFAULT '[]',
	error_logs TEXT NOT NULL DEFAULT '',
	codebase_context TEXT NOT NULL DEFAULT '',
	monitoring_dashboard_url TEXT NOT NULL DEFAULT '',
	status TEXT NOT NULL DEFAULT 'active',
	started_at TIMESTAMP NOT NULL,
	resolved_at TIMESTAMP,
	resolution_notes TEXT NOT NULL DEFAULT '',
	solution_type TEXT NOT NULL DEFAULT '',
	FOREIGN KEY (company_id) REFERENCES companies(id)
);

CREATE INDEX IF NOT EXISTS idx_incidents_user_status ON incidents(user_id, status);

CREATE TABLE IF NOT EXISTS attempts (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	incident_id TEXT NOT NULL,
	user_id INTEGER NOT NULL,
	severity TEXT NOT NULL,
	solution_type TEXT NOT NULL DEFAULT '',
	time_spent_minutes INTEGER NOT NULL,
	time_limit_minutes INTEGER NOT NULL,
	was_successful INTEGER NOT NULL DEFAULT 0,
	points_earned INTEGER NOT NULL,
	quality_score INTEGER NOT NULL DEFAULT 0,
	grade_method TEXT NOT NULL DEFAULT '',
	feedback TEXT NOT NULL DEFAULT '',
	penalty_applied TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMP NOT NULL,
	FOREIGN KEY (incident_id) REFERENCES incidents(id)
);

CREATE INDEX IF NOT EXISTS idx_attempts_user_created ON attempts(user_id, created_at DESC);

CREATE TABLE IF NOT EXISTS rating_states (
	user_id INTEGER PRIMARY KEY,
	overall_rating INTEGER NOT NULL,
	debugging_skill INTEGER NOT NULL,
	system_design INTEGER NOT NULL,
	incident_response INTEGER NOT NULL,
	communication INTEGER NOT NULL,
	total_incidents_resolved INTEGER NOT NULL DEFAULT 0,
	average_resolution_time REAL NOT NULL DEFAULT 0,
	success_rate REAL NOT NULL DEFAULT 0,
	updated_at TIMESTAMP NOT NULL
);
`

// EnsureSchema creates all tables if they do not exist yet.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}
