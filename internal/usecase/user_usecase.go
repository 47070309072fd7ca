package usecase

import (
	"context"
	"fmt"

	"hacktheshell/internal/entity"
	"hacktheshell/internal/repo/persistent"
	"hacktheshell/pkg/logger"
)

type UserUseCase interface {
	SyncUser(ctx context.Context, user *entity.User) (*entity.User, error)
	GetUser(ctx context.Context, id string) (*entity.User, error)
	ListUsers(ctx context.Context) ([]*entity.User, error)
	SetRole(ctx context.Context, id string, role entity.UserRole) (*entity.User, error)
	AwardPoints(ctx context.Context, id string, points int) (*entity.User, error)
	ListAchievements(ctx context.Context, userID string) ([]*entity.Achievement, error)
	UnlockAchievement(ctx context.Context, actor Actor, userID string, achievement *entity.Achievement) (*entity.Achievement, error)
}

type userUseCase struct {
	userRepo        persistent.UserRepository
	achievementRepo persistent.AchievementRepository
	logger          *logger.Logger
}

func NewUserUseCase(userRepo persistent.UserRepository, achievementRepo persistent.AchievementRepository, logger *logger.Logger) UserUseCase {
	return &userUseCase{
		userRepo:        userRepo,
		achievementRepo: achievementRepo,
		logger:          logger,
	}
}

// SyncUser upserts the profile of the authenticated user. Role and points
// are managed by admins and never taken from the request.
func (uc *userUseCase) SyncUser(ctx context.Context, user *entity.User) (*entity.User, error) {
	user.Role = ""
	user.Points = 0
	return uc.userRepo.Upsert(ctx, user)
}

func (uc *userUseCase) GetUser(ctx context.Context, id string) (*entity.User, error) {
	return uc.userRepo.GetByID(ctx, id)
}

func (uc *userUseCase) ListUsers(ctx context.Context) ([]*entity.User, error) {
	return uc.userRepo.List(ctx)
}

func (uc *userUseCase) SetRole(ctx context.Context, id string, role entity.UserRole) (*entity.User, error) {
	if !role.Valid() {
		return nil, ErrInvalidRole
	}
	return uc.userRepo.UpdateRole(ctx, id, role)
}

func (uc *userUseCase) AwardPoints(ctx context.Context, id string, points int) (*entity.User, error) {
	return uc.userRepo.AddPoints(ctx, id, points)
}

func (uc *userUseCase) ListAchievements(ctx context.Context, userID string) ([]*entity.Achievement, error) {
	return uc.achievementRepo.ListByUser(ctx, userID)
}

// UnlockAchievement records the achievement and credits its points to the
// user when the user is known. Users may unlock their own achievements, but
// only admins may attach points to one.
func (uc *userUseCase) UnlockAchievement(ctx context.Context, actor Actor, userID string, achievement *entity.Achievement) (*entity.Achievement, error) {
	if !actor.CanModify(userID) {
		return nil, ErrForbidden
	}
	if achievement.Points != 0 && !actor.IsAdmin() {
		return nil, ErrForbidden
	}

	achievement.ID = 0
	achievement.UserID = userID
	if err := uc.achievementRepo.Create(ctx, achievement); err != nil {
		return nil, fmt.Errorf("failed to create achievement: %w", err)
	}

	if achievement.Points > 0 {
		if _, err := uc.userRepo.AddPoints(ctx, userID, achievement.Points); err != nil {
			uc.logger.Warn("Achievement %d unlocked but points not credited to %s: %v", achievement.ID, userID, err)
		}
	}
	return achievement, nil
}
