package core

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const historySchema = `
CREATE TABLE IF NOT EXISTS conversion_history (
	id            UUID PRIMARY KEY,
	direction     TEXT NOT NULL,
	file_name     TEXT,
	output_name   TEXT,
	rows_count    INTEGER NOT NULL DEFAULT 0,
	columns_count INTEGER NOT NULL DEFAULT 0,
	input_chars   INTEGER NOT NULL DEFAULT 0,
	output_chars  INTEGER NOT NULL DEFAULT 0,
	status        TEXT NOT NULL,
	error_code    TEXT,
	error_message TEXT,
	ip_address    TEXT,
	user_agent    TEXT,
	duration_ms   BIGINT NOT NULL DEFAULT 0,
	created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS conversion_history_created_at_idx
	ON conversion_history (created_at DESC);
`

const historyColumns = `id, direction, file_name, output_name, rows_count, columns_count,
	input_chars, output_chars, status, error_code, error_message,
	ip_address, user_agent, duration_ms, created_at`

// PgHistoryStore keeps conversion history in PostgreSQL.
type PgHistoryStore struct {
	db DBTX
}

// NewPgHistoryStore wraps a pool or transaction.
func NewPgHistoryStore(db DBTX) *PgHistoryStore {
	return &PgHistoryStore{db: db}
}

// EnsureSchema creates the history table if it does not exist.
func (s *PgHistoryStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.Exec(ctx, historySchema); err != nil {
		return fmt.Errorf("create conversion_history: %w", err)
	}
	return nil
}

func (s *PgHistoryStore) Record(ctx context.Context, e HistoryEntry) error {
	_, err := s.db.Exec(ctx,
		`INSERT INTO conversion_history (`+historyColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`,
		ToPgUUID(e.ID),
		string(e.Direction),
		ToPgText(e.FileName),
		ToPgText(e.OutputName),
		ToPgInt4(e.Rows),
		ToPgInt4(e.Columns),
		ToPgInt4(e.InputChars),
		ToPgInt4(e.OutputChars),
		string(e.Status),
		ToPgText(e.ErrorCode),
		ToPgText(e.ErrorMessage),
		ToPgText(e.IPAddress),
		ToPgText(e.UserAgent),
		e.DurationMs,
		ToPgTimestamptz(e.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("insert conversion history: %w", err)
	}
	return nil
}

func (s *PgHistoryStore) List(ctx context.Context, limit int) ([]HistoryEntry, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}

	rows, err := s.db.Query(ctx,
		`SELECT `+historyColumns+` FROM conversion_history
		ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("query conversion history: %w", err)
	}
	defer rows.Close()

	entries := make([]HistoryEntry, 0)
	for rows.Next() {
		entry, err := scanHistoryRow(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, *entry)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

func (s *PgHistoryStore) Get(ctx context.Context, id uuid.UUID) (*HistoryEntry, error) {
	row := s.db.QueryRow(ctx,
		`SELECT `+historyColumns+` FROM conversion_history WHERE id = $1`, ToPgUUID(id))
	entry, err := scanHistoryRow(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrHistoryNotFound
	}
	return entry, err
}

// scanHistoryRow scans one conversion_history row. pgx.Rows satisfies pgx.Row.
func scanHistoryRow(row pgx.Row) (*HistoryEntry, error) {
	var (
		id           pgtype.UUID
		direction    string
		fileName     pgtype.Text
		outputName   pgtype.Text
		rowsCount    pgtype.Int4
		columnsCount pgtype.Int4
		inputChars   pgtype.Int4
		outputChars  pgtype.Int4
		status       string
		errorCode    pgtype.Text
		errorMessage pgtype.Text
		ipAddress    pgtype.Text
		userAgent    pgtype.Text
		durationMs   int64
		createdAt    pgtype.Timestamptz
	)

	err := row.Scan(
		&id, &direction, &fileName, &outputName, &rowsCount, &columnsCount,
		&inputChars, &outputChars, &status, &errorCode, &errorMessage,
		&ipAddress, &userAgent, &durationMs, &createdAt,
	)
	if err != nil {
		return nil, err
	}

	return &HistoryEntry{
		ID:           FromPgUUID(id),
		Direction:    Direction(direction),
		FileName:     FromPgText(fileName),
		OutputName:   FromPgText(outputName),
		Rows:         int(rowsCount.Int32),
		Columns:      int(columnsCount.Int32),
		InputChars:   int(inputChars.Int32),
		OutputChars:  int(outputChars.Int32),
		Status:       ConversionStatus(status),
		ErrorCode:    FromPgText(errorCode),
		ErrorMessage: FromPgText(errorMessage),
		IPAddress:    FromPgText(ipAddress),
		UserAgent:    FromPgText(userAgent),
		DurationMs:   durationMs,
		CreatedAt:    createdAt.Time,
	}, nil
}
