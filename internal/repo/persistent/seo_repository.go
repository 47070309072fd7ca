package persistent

import (
	"context"
	"time"

	"hacktheshell/internal/entity"
	"hacktheshell/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SeoRepository interface {
	Get(ctx context.Context, url string) (*entity.SeoMetric, error)
	List(ctx context.Context) ([]*entity.SeoMetric, error)
	Track(ctx context.Context, metric *entity.SeoMetric, activity *entity.UserActivity) (*entity.SeoMetric, error)
}

type seoRepository struct {
	db *gorm.DB
}

func NewSeoRepository(db *gorm.DB) SeoRepository {
	return &seoRepository{db: db}
}

func (r *seoRepository) Get(ctx context.Context, url string) (*entity.SeoMetric, error) {
	var metricModel model.SeoMetricModel
	if err := r.db.WithContext(ctx).Where("url = ?", url).First(&metricModel).Error; err != nil {
		return nil, translate(err)
	}
	return ToSeoMetricEntity(&metricModel), nil
}

func (r *seoRepository) List(ctx context.Context) ([]*entity.SeoMetric, error) {
	var metricModels []model.SeoMetricModel
	if err := r.db.WithContext(ctx).Order("views DESC, url ASC").Find(&metricModels).Error; err != nil {
		return nil, err
	}

	metrics := make([]*entity.SeoMetric, len(metricModels))
	for i := range metricModels {
		metrics[i] = ToSeoMetricEntity(&metricModels[i])
	}
	return metrics, nil
}

// Track upserts the metric for metric.URL, bumping its view count, and
// appends activity in the same transaction. Empty title, description and
// keywords keep the stored values.
func (r *seoRepository) Track(ctx context.Context, metric *entity.SeoMetric, activity *entity.UserActivity) (*entity.SeoMetric, error) {
	now := time.Now()
	metricModel := ToSeoMetricModel(metric)
	metricModel.Views = 1
	metricModel.LastCrawled = &now

	assignments := map[string]interface{}{
		"views":        clause.Expr{SQL: "seo_metrics.views + ?", Vars: []interface{}{1}},
		"last_crawled": now,
	}
	if metric.Title != "" {
		assignments["title"] = clause.Expr{SQL: "excluded.title"}
	}
	if metric.Description != "" {
		assignments["description"] = clause.Expr{SQL: "excluded.description"}
	}
	if len(metric.Keywords) > 0 {
		assignments["keywords"] = clause.Expr{SQL: "excluded.keywords"}
	}

	var saved model.SeoMetricModel
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "url"}},
			DoUpdates: clause.Assignments(assignments),
		}).Create(metricModel).Error; err != nil {
			return err
		}

		if activity != nil {
			activityModel := ToActivityModel(activity)
			if err := tx.Create(activityModel).Error; err != nil {
				return err
			}
			*activity = *ToActivityEntity(activityModel)
		}

		return tx.Where("url = ?", metric.URL).First(&saved).Error
	})
	if err != nil {
		return nil, err
	}
	return ToSeoMetricEntity(&saved), nil
}
