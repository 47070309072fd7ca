package persistent

import (
	"context"
	"time"

	"hacktheshell/internal/entity"
	"hacktheshell/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserRepository interface {
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	List(ctx context.Context) ([]*entity.User, error)
	Upsert(ctx context.Context, user *entity.User) (*entity.User, error)
	UpdateRole(ctx context.Context, id string, role entity.UserRole) (*entity.User, error)
	AddPoints(ctx context.Context, id string, points int) (*entity.User, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	return r.getBy(ctx, "id = ?", id)
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	return r.getBy(ctx, "username = ?", username)
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.getBy(ctx, "email = ?", email)
}

func (r *userRepository) getBy(ctx context.Context, cond string, arg interface{}) (*entity.User, error) {
	var userModel model.UserModel
	if err := r.db.WithContext(ctx).Where(cond, arg).First(&userModel).Error; err != nil {
		return nil, translate(err)
	}
	return ToUserEntity(&userModel), nil
}

func (r *userRepository) List(ctx context.Context) ([]*entity.User, error) {
	var userModels []model.UserModel
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&userModels).Error; err != nil {
		return nil, err
	}

	users := make([]*entity.User, len(userModels))
	for i := range userModels {
		users[i] = ToUserEntity(&userModels[i])
	}
	return users, nil
}

// Upsert inserts the user or overwrites its profile fields. Role and points
// of an existing user are never touched here.
func (r *userRepository) Upsert(ctx context.Context, user *entity.User) (*entity.User, error) {
	userModel := ToUserModel(user)
	userModel.UpdatedAt = time.Now()

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"username", "email", "first_name", "last_name", "profile_image_url", "updated_at",
		}),
	}).Create(userModel).Error
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, userModel.ID)
}

func (r *userRepository) UpdateRole(ctx context.Context, id string, role entity.UserRole) (*entity.User, error) {
	return r.update(ctx, id, map[string]interface{}{
		"role":       string(role),
		"updated_at": time.Now(),
	})
}

func (r *userRepository) AddPoints(ctx context.Context, id string, points int) (*entity.User, error) {
	return r.update(ctx, id, map[string]interface{}{
		"points":     clause.Expr{SQL: "points + ?", Vars: []interface{}{points}},
		"updated_at": time.Now(),
	})
}

func (r *userRepository) update(ctx context.Context, id string, updates map[string]interface{}) (*entity.User, error) {
	result := r.db.WithContext(ctx).Model(&model.UserModel{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, entity.ErrNotFound
	}
	return r.GetByID(ctx, id)
}
