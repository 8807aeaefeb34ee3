package facts

import (
	"context"
	"database/sql"
	"fmt"

	"skinatlas/pkg/platform/sentinel"
)

// Schema creates the table PostgresSource reads from.
const Schema = `
CREATE TABLE IF NOT EXISTS country_facts (
	id                    BIGSERIAL PRIMARY KEY,
	position              INTEGER NOT NULL DEFAULT 0,
	country               TEXT NOT NULL,
	adaptation_mechanisms TEXT NOT NULL,
	historical_context    TEXT NOT NULL,
	modern_challenges     TEXT NOT NULL,
	exceptions            TEXT NOT NULL,
	lifestyle_impact      TEXT NOT NULL
)`

// PostgresSource reads entries from the country_facts table. Rows are
// returned by position so repeated countries resolve the same way the YAML
// dataset does.
type PostgresSource struct {
	db *sql.DB
}

// NewPostgresSource constructs a source over an open database handle.
func NewPostgresSource(db *sql.DB) *PostgresSource {
	return &PostgresSource{db: db}
}

func (s *PostgresSource) Load(ctx context.Context) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT country, adaptation_mechanisms, historical_context,
		       modern_challenges, exceptions, lifestyle_impact
		FROM country_facts
		ORDER BY position, id`)
	if err != nil {
		return nil, fmt.Errorf("query country_facts: %w: %w", sentinel.ErrUnavailable, err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(
			&e.Country,
			&e.AdaptationMechanisms,
			&e.HistoricalContext,
			&e.ModernChallenges,
			&e.Exceptions,
			&e.LifestyleImpact,
		); err != nil {
			return nil, fmt.Errorf("scan country_facts: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate country_facts: %w", err)
	}
	return entries, nil
}

// Seed creates the table if needed and replaces its contents with entries,
// keeping their order.
func (s *PostgresSource) Seed(ctx context.Context, entries []Entry) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed: %w: %w", sentinel.ErrUnavailable, err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, Schema); err != nil {
		return fmt.Errorf("create country_facts: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM country_facts`); err != nil {
		return fmt.Errorf("clear country_facts: %w", err)
	}
	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO country_facts (position, country, adaptation_mechanisms, historical_context,
		                           modern_challenges, exceptions, lifestyle_impact)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`)
	if err != nil {
		return fmt.Errorf("prepare seed insert: %w", err)
	}
	defer stmt.Close()

	for i, e := range entries {
		if _, err := stmt.ExecContext(ctx, i,
			e.Country,
			e.AdaptationMechanisms,
			e.HistoricalContext,
			e.ModernChallenges,
			e.Exceptions,
			e.LifestyleImpact,
		); err != nil {
			return fmt.Errorf("insert %q: %w", e.Country, err)
		}
	}
	return tx.Commit()
}
