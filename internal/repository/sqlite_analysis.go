package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jzembower/balance/internal/domain"
)

// DefaultHistoryCapacity bounds how many analyses the history keeps.
const DefaultHistoryCapacity = 50

// SQLiteAnalysisRepo implements AnalysisRepo using a SQLite database.
// Insert and its capacity trim run in one transaction, so the bound holds
// even when multiple callers insert concurrently.
type SQLiteAnalysisRepo struct {
	db       *sql.DB
	capacity int
}

// NewSQLiteAnalysisRepo creates a new SQLiteAnalysisRepo. A capacity of
// zero or less selects DefaultHistoryCapacity.
func NewSQLiteAnalysisRepo(database *sql.DB, capacity int) *SQLiteAnalysisRepo {
	if capacity <= 0 {
		capacity = DefaultHistoryCapacity
	}
	return &SQLiteAnalysisRepo{db: database, capacity: capacity}
}

func (r *SQLiteAnalysisRepo) Insert(ctx context.Context, a *domain.FocusAnalysis) error {
	recs, err := json.Marshal(a.Recommendations)
	if err != nil {
		return fmt.Errorf("encoding recommendations: %w", err)
	}

	var userID any
	if a.UserID != "" {
		userID = a.UserID
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting insert transaction: %w", err)
	}
	defer tx.Rollback()

	query := `INSERT INTO analyses (id, summary, focus_score, recommendations, timestamp, user_id)
		VALUES (?, ?, ?, ?, ?, ?)`
	if _, err := tx.ExecContext(ctx, query,
		a.ID,
		a.Summary,
		a.FocusScore,
		string(recs),
		a.Timestamp.Unix(),
		userID,
	); err != nil {
		return fmt.Errorf("inserting analysis: %w", err)
	}

	// Evict the oldest-inserted rows beyond capacity. Insertion order is
	// rowid order, which can differ from timestamp order.
	trim := `DELETE FROM analyses WHERE rowid NOT IN (
		SELECT rowid FROM analyses ORDER BY rowid DESC LIMIT ?)`
	if _, err := tx.ExecContext(ctx, trim, r.capacity); err != nil {
		return fmt.Errorf("trimming analysis history: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing insert: %w", err)
	}
	return nil
}

func (r *SQLiteAnalysisRepo) List(ctx context.Context) ([]*domain.FocusAnalysis, error) {
	query := `SELECT id, summary, focus_score, recommendations, timestamp, user_id
		FROM analyses ORDER BY timestamp DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing analyses: %w", err)
	}
	defer rows.Close()
	return scanAnalyses(rows)
}

func (r *SQLiteAnalysisRepo) ListForUser(ctx context.Context, userID string) ([]*domain.FocusAnalysis, error) {
	query := `SELECT id, summary, focus_score, recommendations, timestamp, user_id
		FROM analyses WHERE user_id = ? ORDER BY timestamp DESC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing analyses by user: %w", err)
	}
	defer rows.Close()
	return scanAnalyses(rows)
}

func (r *SQLiteAnalysisRepo) DeleteByID(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM analyses WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting analysis: %w", err)
	}
	return nil
}

func (r *SQLiteAnalysisRepo) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM analyses`); err != nil {
		return fmt.Errorf("clearing analysis history: %w", err)
	}
	return nil
}

// scanAnalyses reads rows into records. Rows that cannot be decoded into
// a complete record (empty id, unreadable recommendations) are skipped
// rather than failing the whole listing; the history outlives schema
// iterations and tolerates old or damaged rows.
func scanAnalyses(rows *sql.Rows) ([]*domain.FocusAnalysis, error) {
	var analyses []*domain.FocusAnalysis
	for rows.Next() {
		var (
			a        domain.FocusAnalysis
			recsJSON string
			epoch    int64
			userID   sql.NullString
		)
		if err := rows.Scan(&a.ID, &a.Summary, &a.FocusScore, &recsJSON, &epoch, &userID); err != nil {
			return nil, fmt.Errorf("scanning analysis row: %w", err)
		}
		if a.ID == "" {
			continue
		}
		if err := json.Unmarshal([]byte(recsJSON), &a.Recommendations); err != nil {
			continue
		}
		a.Timestamp = time.Unix(epoch, 0).UTC()
		if userID.Valid {
			a.UserID = userID.String
		}
		analyses = append(analyses, &a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating analyses: %w", err)
	}
	return analyses, nil
}
