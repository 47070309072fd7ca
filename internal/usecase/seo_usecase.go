package usecase

import (
	"context"

	"hacktheshell/internal/entity"
	"hacktheshell/internal/repo/persistent"
)

const (
	ActionPageView       = "page_view"
	defaultActivityLimit = 50
	maxActivityLimit     = 500
)

// PageView describes one tracked page view.
type PageView struct {
	URL         string
	Title       string
	Description string
	Keywords    []string
	Referrer    string
	UserID      string
	IPAddress   string
	UserAgent   string
}

type SeoUseCase interface {
	TrackPageView(ctx context.Context, view PageView) (*entity.SeoMetric, error)
	GetMetric(ctx context.Context, url string) (*entity.SeoMetric, error)
	ListMetrics(ctx context.Context) ([]*entity.SeoMetric, error)
	ListActivity(ctx context.Context, userID string, limit int) ([]*entity.UserActivity, error)
}

type seoUseCase struct {
	seoRepo      persistent.SeoRepository
	activityRepo persistent.ActivityRepository
}

func NewSeoUseCase(seoRepo persistent.SeoRepository, activityRepo persistent.ActivityRepository) SeoUseCase {
	return &seoUseCase{
		seoRepo:      seoRepo,
		activityRepo: activityRepo,
	}
}

func (uc *seoUseCase) TrackPageView(ctx context.Context, view PageView) (*entity.SeoMetric, error) {
	metadata := map[string]interface{}{}
	if view.Referrer != "" {
		metadata["referrer"] = view.Referrer
	}
	if view.Title != "" {
		metadata["title"] = view.Title
	}

	activity := &entity.UserActivity{
		Action:       ActionPageView,
		ResourceType: "page",
		ResourceID:   view.URL,
		Metadata:     metadata,
		IPAddress:    view.IPAddress,
		UserAgent:    view.UserAgent,
	}
	if view.UserID != "" {
		userID := view.UserID
		activity.UserID = &userID
	}

	return uc.seoRepo.Track(ctx, &entity.SeoMetric{
		URL:         view.URL,
		Title:       view.Title,
		Description: view.Description,
		Keywords:    view.Keywords,
	}, activity)
}

func (uc *seoUseCase) GetMetric(ctx context.Context, url string) (*entity.SeoMetric, error) {
	return uc.seoRepo.Get(ctx, url)
}

func (uc *seoUseCase) ListMetrics(ctx context.Context) ([]*entity.SeoMetric, error) {
	return uc.seoRepo.List(ctx)
}

func (uc *seoUseCase) ListActivity(ctx context.Context, userID string, limit int) ([]*entity.UserActivity, error) {
	if limit <= 0 {
		limit = defaultActivityLimit
	}
	if limit > maxActivityLimit {
		limit = maxActivityLimit
	}
	return uc.activityRepo.List(ctx, userID, limit)
}
