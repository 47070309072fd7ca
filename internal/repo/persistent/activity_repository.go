package persistent

import (
	"context"

	"hacktheshell/internal/entity"
	"hacktheshell/internal/model"

	"gorm.io/gorm"
)

type ActivityRepository interface {
	Create(ctx context.Context, activity *entity.UserActivity) error
	List(ctx context.Context, userID string, limit int) ([]*entity.UserActivity, error)
}

type activityRepository struct {
	db *gorm.DB
}

func NewActivityRepository(db *gorm.DB) ActivityRepository {
	return &activityRepository{db: db}
}

func (r *activityRepository) Create(ctx context.Context, activity *entity.UserActivity) error {
	activityModel := ToActivityModel(activity)
	if err := r.db.WithContext(ctx).Create(activityModel).Error; err != nil {
		return err
	}
	*activity = *ToActivityEntity(activityModel)
	return nil
}

// List returns the newest activity first, optionally for a single user.
func (r *activityRepository) List(ctx context.Context, userID string, limit int) ([]*entity.UserActivity, error) {
	var activityModels []model.UserActivityModel
	query := r.db.WithContext(ctx).Order("created_at DESC, id DESC")
	if userID != "" {
		query = query.Where("user_id = ?", userID)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&activityModels).Error; err != nil {
		return nil, err
	}

	activities := make([]*entity.UserActivity, len(activityModels))
	for i := range activityModels {
		activities[i] = ToActivityEntity(&activityModels[i])
	}
	return activities, nil
}
