package persistent

import (
	"context"

	"hacktheshell/internal/entity"
	"hacktheshell/internal/model"

	"gorm.io/gorm"
)

type AchievementRepository interface {
	ListByUser(ctx context.Context, userID string) ([]*entity.Achievement, error)
	Create(ctx context.Context, achievement *entity.Achievement) error
}

type achievementRepository struct {
	db *gorm.DB
}

func NewAchievementRepository(db *gorm.DB) AchievementRepository {
	return &achievementRepository{db: db}
}

func (r *achievementRepository) ListByUser(ctx context.Context, userID string) ([]*entity.Achievement, error) {
	var achievementModels []model.AchievementModel
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).
		Order("unlocked_at DESC, id DESC").Find(&achievementModels).Error; err != nil {
		return nil, err
	}

	achievements := make([]*entity.Achievement, len(achievementModels))
	for i := range achievementModels {
		achievements[i] = ToAchievementEntity(&achievementModels[i])
	}
	return achievements, nil
}

func (r *achievementRepository) Create(ctx context.Context, achievement *entity.Achievement) error {
	achievementModel := ToAchievementModel(achievement)
	if err := r.db.WithContext(ctx).Create(achievementModel).Error; err != nil {
		return err
	}
	*achievement = *ToAchievementEntity(achievementModel)
	return nil
}
