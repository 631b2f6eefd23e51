package analysis

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jzembower/balance/internal/domain"
	"github.com/jzembower/balance/internal/llm"
	"github.com/jzembower/balance/internal/repository"
)

// UserSource resolves the user whose history the pipeline stamps.
type UserSource interface {
	CurrentUser(ctx context.Context) (*domain.User, error)
}

// Service runs the full analysis pipeline: validation, prompt
// construction, model call, response parsing, and history persistence.
// Each invocation is independent; the history store is the only shared
// state and is only written on full success.
type Service struct {
	client llm.Client
	store  repository.AnalysisRepo
	users  UserSource
}

// NewService creates a Service from its collaborators.
func NewService(client llm.Client, store repository.AnalysisRepo, users UserSource) *Service {
	return &Service{client: client, store: store, users: users}
}

// Analyze validates the inputs, asks the model for a focus analysis, and
// persists the parsed record. Validation failures short-circuit before
// any network call; model or parse failures never write to the store.
func (s *Service) Analyze(ctx context.Context, health domain.HealthData, input domain.UserInput) (*domain.FocusAnalysis, error) {
	user, err := s.users.CurrentUser(ctx)
	if err != nil {
		return nil, fmt.Errorf("resolving user: %w", err)
	}
	if user == nil {
		return nil, ErrNoUser
	}

	healthResult := health.Validate()
	inputResult := input.Validate()
	if !healthResult.Valid || !inputResult.Valid {
		msgs := append(append([]string(nil), healthResult.Errors...), inputResult.Errors...)
		return nil, &ValidationError{Messages: msgs}
	}

	prompt := BuildPrompt(*user, health, input)
	text, err := s.client.Complete(ctx, prompt)
	if err != nil {
		return nil, err
	}

	record := &domain.FocusAnalysis{
		ID:              uuid.NewString(),
		Summary:         text,
		FocusScore:      ParseFocusScore(text),
		Recommendations: ParseRecommendations(text),
		Timestamp:       time.Now().UTC(),
		UserID:          user.ID,
	}
	if err := s.store.Insert(ctx, record); err != nil {
		return nil, fmt.Errorf("saving analysis: %w", err)
	}

	return record, nil
}
