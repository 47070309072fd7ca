package persistent

import (
	"context"

	"hacktheshell/internal/entity"
	"hacktheshell/internal/model"

	"gorm.io/gorm"
)

type CommentRepository interface {
	ListByPost(ctx context.Context, postID uint) ([]*entity.Comment, error)
	GetByID(ctx context.Context, id uint) (*entity.Comment, error)
	Create(ctx context.Context, comment *entity.Comment) error
	Delete(ctx context.Context, id uint) error
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

// ListByPost returns comments oldest first so threads read top to bottom.
func (r *commentRepository) ListByPost(ctx context.Context, postID uint) ([]*entity.Comment, error) {
	var commentModels []model.CommentModel
	if err := r.db.WithContext(ctx).Where("post_id = ?", postID).
		Order("created_at ASC, id ASC").Find(&commentModels).Error; err != nil {
		return nil, err
	}

	comments := make([]*entity.Comment, len(commentModels))
	for i := range commentModels {
		comments[i] = ToCommentEntity(&commentModels[i])
	}
	return comments, nil
}

func (r *commentRepository) GetByID(ctx context.Context, id uint) (*entity.Comment, error) {
	var commentModel model.CommentModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&commentModel).Error; err != nil {
		return nil, translate(err)
	}
	return ToCommentEntity(&commentModel), nil
}

func (r *commentRepository) Create(ctx context.Context, comment *entity.Comment) error {
	commentModel := ToCommentModel(comment)
	if err := r.db.WithContext(ctx).Create(commentModel).Error; err != nil {
		return err
	}
	*comment = *ToCommentEntity(commentModel)
	return nil
}

func (r *commentRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.CommentModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return entity.ErrNotFound
	}
	return nil
}
