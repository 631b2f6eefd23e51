package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jzembower/balance/internal/db"
	"github.com/jzembower/balance/internal/domain"
)

// SQLiteUserRepo implements UserRepo using a SQLite database. The table
// holds the installation's single user; Get returns the earliest-created
// row if several exist.
type SQLiteUserRepo struct {
	db db.DBTX
}

// NewSQLiteUserRepo creates a new SQLiteUserRepo.
func NewSQLiteUserRepo(conn db.DBTX) *SQLiteUserRepo {
	return &SQLiteUserRepo{db: conn}
}

func (r *SQLiteUserRepo) Get(ctx context.Context) (*domain.User, error) {
	query := `SELECT id, name, created_at, test_mode FROM users ORDER BY created_at LIMIT 1`
	row := r.db.QueryRowContext(ctx, query)

	var (
		u         domain.User
		createdAt string
		testMode  int
	)
	err := row.Scan(&u.ID, &u.Name, &createdAt, &testMode)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("user: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning user: %w", err)
	}

	u.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	u.TestMode = intToBool(testMode)
	return &u, nil
}

func (r *SQLiteUserRepo) Upsert(ctx context.Context, u *domain.User) error {
	query := `INSERT OR REPLACE INTO users (id, name, created_at, test_mode) VALUES (?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		u.ID,
		u.Name,
		u.CreatedAt.Format(time.RFC3339),
		boolToInt(u.TestMode),
	)
	if err != nil {
		return fmt.Errorf("upserting user: %w", err)
	}
	return nil
}
