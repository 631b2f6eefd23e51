package health

import (
	"context"

	"github.com/jzembower/balance/internal/domain"
)

// Source supplies a health data snapshot for analysis. A real platform
// integration would aggregate device readings here; the pipeline only
// depends on this interface.
type Source interface {
	Fetch(ctx context.Context) (domain.HealthData, error)
}
