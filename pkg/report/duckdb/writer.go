// Package duckdb persists campaign results into a DuckDB file so finished
// runs can be inspected with plain SQL.
package duckdb

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/marcboeker/go-duckdb"
	"github.com/google/uuid"

	"github.com/fixprop/fixprop/pkg/verify"
)

type Writer struct {
	dataSourceName string
	db             *sql.DB
}

func NewWriter(dataSourceName string) *Writer {
	return &Writer{
		dataSourceName: dataSourceName,
	}
}

// Connect opens the database and creates the ledger tables when missing.
func (w *Writer) Connect(ctx context.Context) error {
	db, err := sql.Open("duckdb", w.dataSourceName)
	if err != nil {
		return fmt.Errorf("sql.Open: %w", err)
	}
	w.db = db

	for _, ddl := range []string{
		`CREATE TABLE IF NOT EXISTS campaigns (
			id VARCHAR PRIMARY KEY,
			suite VARCHAR,
			seed BIGINT,
			iterations BIGINT,
			started_at TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS runs (
			campaign VARCHAR,
			property VARCHAR,
			passed BIGINT,
			discarded BIGINT,
			violated BIGINT
		)`,
		`CREATE TABLE IF NOT EXISTS violations (
			id VARCHAR,
			campaign VARCHAR,
			property VARCHAR,
			message VARCHAR,
			operands VARCHAR
		)`,
	} {
		if _, err := db.ExecContext(ctx, ddl); err != nil {
			return fmt.Errorf("error creating schema: %w", err)
		}
	}
	return nil
}

func (w *Writer) Close() {
	_ = w.db.Close()
}

// RecordCampaign inserts the header row of one campaign.
func (w *Writer) RecordCampaign(ctx context.Context, id uuid.UUID, suite string, seed uint64, iterations int) error {
	_, err := w.db.ExecContext(ctx,
		`INSERT INTO campaigns (id, suite, seed, iterations, started_at) VALUES (?, ?, ?, ?, ?)`,
		id.String(), suite, int64(seed), int64(iterations), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("error recording campaign: %w", err)
	}
	return nil
}

// RecordRun inserts the per-property tally of a finished campaign.
func (w *Writer) RecordRun(ctx context.Context, campaign uuid.UUID, property string, passed, discarded, violated uint64) error {
	_, err := w.db.ExecContext(ctx,
		`INSERT INTO runs (campaign, property, passed, discarded, violated) VALUES (?, ?, ?, ?, ?)`,
		campaign.String(), property, int64(passed), int64(discarded), int64(violated))
	if err != nil {
		return fmt.Errorf("error recording run: %w", err)
	}
	return nil
}

// RecordViolation inserts one counterexample.
func (w *Writer) RecordViolation(ctx context.Context, campaign uuid.UUID, v *verify.Violation) error {
	_, err := w.db.ExecContext(ctx,
		`INSERT INTO violations (id, campaign, property, message, operands) VALUES (?, ?, ?, ?, ?)`,
		v.ID.String(), campaign.String(), v.Property, v.Message, strings.Join(v.Operands, ", "))
	if err != nil {
		return fmt.Errorf("error recording violation: %w", err)
	}
	return nil
}
