package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/oncallsim/incident-server/internal/repository/models"
)

type IncidentRepository struct {
	db *sql.DB
}

func NewIncidentRepository(db *sql.DB) *IncidentRepository {
	return &IncidentRepository{db: db}
}

// Create persists a new incident and fills in its generated ID.
func (r *IncidentRepository) Create(ctx context.Context, incident *models.Incident) error {
	const query = `
		INSERT INTO incidents (id, company_id, user_id, title, description, severity,
			time_limit_minutes, affected_services, error_logs, codebase_context,
			monitoring_dashboard_url, status, started_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	services, err := json.Marshal(incident.AffectedServices)
	if err != nil {
		return fmt.Errorf("marshal affected services: %w", err)
	}

	incident.ID = uuid.NewString()
	if incident.Status == "" {
		incident.Status = models.IncidentActive
	}

	if _, err := r.db.ExecContext(ctx, query,
		incident.ID, incident.CompanyID, incident.UserID, incident.Title,
		incident.Description, incident.Severity, incident.TimeLimitMinutes,
		string(services), incident.ErrorLogs, incident.CodebaseContext,
		incident.MonitoringDashboardURL, incident.Status, incident.StartedAt,
	); err != nil {
		incident.ID = ""
		return fmt.Errorf("insert incident: %w", err)
	}
	return nil
}

// GetByID fetches one incident. Returns sql.ErrNoRows when absent.
func (r *IncidentRepository) GetByID(ctx context.Context, id string) (models.Incident, error) {
	const query = `
		SELECT id, company_id, user_id, title, description, severity,
			time_limit_minutes, affected_services, error_logs, codebase_context,
			monitoring_dashboard_url, status, started_at, resolved_at,
			resolution_notes, solution_type
		FROM incidents
		WHERE id = ?
	`

	var inc models.Incident
	var services string
	var resolvedAt sql.NullTime

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&inc.ID, &inc.CompanyID, &inc.UserID, &inc.Title, &inc.Description,
		&inc.Severity, &inc.TimeLimitMinutes, &services, &inc.ErrorLogs,
		&inc.CodebaseContext, &inc.MonitoringDashboardURL, &inc.Status,
		&inc.StartedAt, &resolvedAt, &inc.ResolutionNotes, &inc.SolutionType,
	)
	if err != nil {
		return models.Incident{}, fmt.Errorf("query incident %s: %w", id, err)
	}

	if err := json.Unmarshal([]byte(services), &inc.AffectedServices); err != nil {
		return models.Incident{}, fmt.Errorf("decode affected services: %w", err)
	}
	if resolvedAt.Valid {
		t := resolvedAt.Time
		inc.ResolvedAt = &t
	}
	return inc, nil
}

// ActiveForUser returns the user's currently active incidents, oldest first.
func (r *IncidentRepository) ActiveForUser(ctx context.Context, userID int64) ([]models.Incident, error) {
	const query = `
		SELECT id FROM incidents
		WHERE user_id = ? AND status = ?
		ORDER BY started_at
	`

	rows, err := r.db.QueryContext(ctx, query, userID, models.IncidentActive)
	if err != nil {
		return nil, fmt.Errorf("query active incidents: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan incident id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate active incidents: %w", err)
	}

	incidents := make([]models.Incident, 0, len(ids))
	for _, id := range ids {
		inc, err := r.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		incidents = append(incidents, inc)
	}
	return incidents, nil
}

// Close records the terminal status of an incident. It only transitions
// active incidents; a row that is already closed is reported via the
// returned bool so callers can reject double resolutions.
func (r *IncidentRepository) Close(ctx context.Context, id, status, notes, solutionType string, resolvedAt time.Time) (bool, error) {
	const query = `
		UPDATE incidents
		SET status = ?, resolved_at = ?, resolution_notes = ?, solution_type = ?
		WHERE id = ? AND status = ?
	`

	res, err := r.db.ExecContext(ctx, query, status, resolvedAt, notes, solutionType, id, models.IncidentActive)
	if err != nil {
		return false, fmt.Errorf("close incident %s: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("close incident %s rows affected: %w", id, err)
	}
	return affected == 1, nil
}
