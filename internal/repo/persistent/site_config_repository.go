package persistent

import (
	"context"
	"time"

	"hacktheshell/internal/entity"
	"hacktheshell/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SiteConfigRepository interface {
	Get(ctx context.Context, key string) (*entity.SiteConfig, error)
	List(ctx context.Context) ([]*entity.SiteConfig, error)
	Set(ctx context.Context, cfg *entity.SiteConfig) (*entity.SiteConfig, error)
}

type siteConfigRepository struct {
	db *gorm.DB
}

func NewSiteConfigRepository(db *gorm.DB) SiteConfigRepository {
	return &siteConfigRepository{db: db}
}

func (r *siteConfigRepository) Get(ctx context.Context, key string) (*entity.SiteConfig, error) {
	var cfgModel model.SiteConfigModel
	if err := r.db.WithContext(ctx).Where(clause.Eq{Column: clause.Column{Name: "key"}, Value: key}).First(&cfgModel).Error; err != nil {
		return nil, translate(err)
	}
	return ToSiteConfigEntity(&cfgModel), nil
}

func (r *siteConfigRepository) List(ctx context.Context) ([]*entity.SiteConfig, error) {
	var cfgModels []model.SiteConfigModel
	if err := r.db.WithContext(ctx).Order(clause.OrderByColumn{Column: clause.Column{Name: "key"}}).Find(&cfgModels).Error; err != nil {
		return nil, err
	}

	configs := make([]*entity.SiteConfig, len(cfgModels))
	for i := range cfgModels {
		configs[i] = ToSiteConfigEntity(&cfgModels[i])
	}
	return configs, nil
}

// Set inserts the key or overwrites value and metadata of the existing row.
func (r *siteConfigRepository) Set(ctx context.Context, cfg *entity.SiteConfig) (*entity.SiteConfig, error) {
	cfgModel := ToSiteConfigModel(cfg)
	cfgModel.UpdatedAt = time.Now()

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_by", "description", "updated_at"}),
	}).Create(cfgModel).Error
	if err != nil {
		return nil, err
	}
	return r.Get(ctx, cfg.Key)
}
