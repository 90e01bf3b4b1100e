package usecase

import (
	"tasklens/internal/editor"
	"tasklens/internal/extraction/repository"
	"tasklens/internal/settings"
	"tasklens/pkg/llmprovider"
	pkgLog "tasklens/pkg/log"
	"tasklens/pkg/tokens"
)

type implUseCase struct {
	l          pkgLog.Logger
	registry   *llmprovider.Registry
	settings   settings.Provider
	quotaRepo  repository.QuotaRepository
	history    repository.HistoryRepository
	editor     *editor.Manager
	estimator  *tokens.Estimator
	dailyLimit int
}

// New creates a new extraction UseCase instance.
func New(
	l pkgLog.Logger,
	registry *llmprovider.Registry,
	sp settings.Provider,
	quotaRepo repository.QuotaRepository,
	history repository.HistoryRepository,
	dailyLimit int,
) *implUseCase {
	if dailyLimit <= 0 {
		dailyLimit = DefaultDailyLimit
	}
	return &implUseCase{
		l:          l,
		registry:   registry,
		settings:   sp,
		quotaRepo:  quotaRepo,
		history:    history,
		editor:     editor.NewManager(),
		estimator:  tokens.Default(),
		dailyLimit: dailyLimit,
	}
}
