package services

import (
	"context"

	"github.com/ikyawthetpaing/webacademy/internal/logger"
	"github.com/ikyawthetpaing/webacademy/internal/repository"

	"go.uber.org/zap"
)

// ViewService tracks post view counts. Ledger failures degrade to zero:
// view counts are approximate analytics and must never break a read path.
type ViewService interface {
	Increment(ctx context.Context, slug string) int64
	Get(ctx context.Context, slug string) int64
}

type viewService struct {
	repo repository.ViewRepo
}

// NewViewService wraps the ledger repo. A nil repo (no database
// configured) yields a service that always reports zero.
func NewViewService(repo repository.ViewRepo) ViewService {
	return &viewService{repo: repo}
}

func (s *viewService) Increment(ctx context.Context, slug string) int64 {
	if s.repo == nil {
		return 0
	}
	count, err := s.repo.Increment(ctx, slug)
	if err != nil {
		logger.WithCtx(ctx).Error("view increment failed", zap.String("slug", slug), zap.Error(err))
		return 0
	}
	return count
}

func (s *viewService) Get(ctx context.Context, slug string) int64 {
	if s.repo == nil {
		return 0
	}
	count, err := s.repo.Get(ctx, slug)
	if err != nil {
		logger.WithCtx(ctx).Error("view lookup failed", zap.String("slug", slug), zap.Error(err))
		return 0
	}
	return count
}
