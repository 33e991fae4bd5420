package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/oncallsim/incident-server/internal/repository/models"
)

type CompanyRepository struct {
	db *sql.DB
}

func NewCompanyRepository(db *sql.DB) *CompanyRepository {
	return &CompanyRepository{db: db}
}

// Seed inserts companies that are not present yet, keyed by slug.
// Existing rows are left untouched so operator edits survive restarts.
func (r *CompanyRepository) Seed(ctx context.Context, companies []models.Company) error {
	const query = `
		INSERT INTO companies (name, slug, description, industry, company_size, tech_stack, focus_areas, incident_frequency)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(slug) DO NOTHING
	`

	for _, c := range companies {
		techStack, err := json.Marshal(c.TechStack)
		if err != nil {
			return fmt.Errorf("marshal tech stack for %q: %w", c.Slug, err)
		}
		focusAreas, err := json.Marshal(c.FocusAreas)
		if err != nil {
			return fmt.Errorf("marshal focus areas for %q: %w", c.Slug, err)
		}

		if _, err := r.db.ExecContext(ctx, query,
			c.Name, c.Slug, c.Description, c.Industry, c.CompanySize,
			string(techStack), string(focusAreas), c.IncidentFrequency,
		); err != nil {
			return fmt.Errorf("seed company %q: %w", c.Slug, err)
		}
	}
	return nil
}

// List returns all companies ordered by name.
func (r *CompanyRepository) List(ctx context.Context) ([]models.Company, error) {
	const query = `
		SELECT id, name, slug, description, industry, company_size, tech_stack, focus_areas, incident_frequency
		FROM companies
		ORDER BY name
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query companies: %w", err)
	}
	defer rows.Close()

	var companies []models.Company
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return nil, err
		}
		companies = append(companies, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate companies: %w", err)
	}
	return companies, nil
}

// GetBySlug fetches one company. Returns sql.ErrNoRows when absent.
func (r *CompanyRepository) GetBySlug(ctx context.Context, slug string) (models.Company, error) {
	const query = `
		SELECT id, name, slug, description, industry, company_size, tech_stack, focus_areas, incident_frequency
		FROM companies
		WHERE slug = ?
	`

	row := r.db.QueryRowContext(ctx, query, slug)
	return scanCompany(row)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCompany(row rowScanner) (models.Company, error) {
	var c models.Company
	var techStack, focusAreas string

	if err := row.Scan(&c.ID, &c.Name, &c.Slug, &c.Description, &c.Industry,
		&c.CompanySize, &techStack, &focusAreas, &c.IncidentFrequency); err != nil {
		return models.Company{}, fmt.Errorf("scan company: %w", err)
	}

	if err := json.Unmarshal([]byte(techStack), &c.TechStack); err != nil {
		return models.Company{}, fmt.Errorf("decode tech stack: %w", err)
	}
	if err := json.Unmarshal([]byte(focusAreas), &c.FocusAreas); err != nil {
		return models.Company{}, fmt.Errorf("decode focus areas: %w", err)
	}
	return c, nil
}
