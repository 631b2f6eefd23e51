package repository

import (
	"context"

	"github.com/jzembower/balance/internal/domain"
)

// AnalysisRepo is the bounded analysis history. Implementations never
// hold more than their configured capacity: when an insert would exceed
// it, the oldest-inserted records are evicted first.
type AnalysisRepo interface {
	Insert(ctx context.Context, a *domain.FocusAnalysis) error
	List(ctx context.Context) ([]*domain.FocusAnalysis, error)
	ListForUser(ctx context.Context, userID string) ([]*domain.FocusAnalysis, error)
	DeleteByID(ctx context.Context, id string) error
	Clear(ctx context.Context) error
}

// UserRepo persists the installation's single user.
type UserRepo interface {
	Get(ctx context.Context) (*domain.User, error)
	Upsert(ctx context.Context, u *domain.User) error
}
