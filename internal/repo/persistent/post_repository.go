package persistent

import (
	"context"
	"time"

	"hacktheshell/internal/entity"
	"hacktheshell/internal/model"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PostRepository interface {
	List(ctx context.Context, status entity.ContentStatus) ([]*entity.BlogPost, error)
	GetByID(ctx context.Context, id uint) (*entity.BlogPost, error)
	GetBySlug(ctx context.Context, slug string) (*entity.BlogPost, error)
	Create(ctx context.Context, post *entity.BlogPost) error
	Update(ctx context.Context, id uint, changes entity.PostChanges) (*entity.BlogPost, error)
	UpdateStatus(ctx context.Context, id uint, status entity.ContentStatus, publishedAt *time.Time) (*entity.BlogPost, error)
	Delete(ctx context.Context, id uint) error
	IncrementViews(ctx context.Context, id uint) error
	IncrementViewsBySlug(ctx context.Context, slug string) error
	SearchPublished(ctx context.Context, query string) ([]*entity.BlogPost, error)
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) List(ctx context.Context, status entity.ContentStatus) ([]*entity.BlogPost, error) {
	var postModels []model.BlogPostModel
	query := r.db.WithContext(ctx).Order("created_at DESC, id DESC")
	if status != "" {
		query = query.Where("status = ?", string(status))
	}
	if err := query.Find(&postModels).Error; err != nil {
		return nil, err
	}
	return ToPostEntities(postModels), nil
}

func (r *postRepository) GetByID(ctx context.Context, id uint) (*entity.BlogPost, error) {
	var postModel model.BlogPostModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&postModel).Error; err != nil {
		return nil, translate(err)
	}
	return ToPostEntity(&postModel), nil
}

func (r *postRepository) GetBySlug(ctx context.Context, slug string) (*entity.BlogPost, error) {
	var postModel model.BlogPostModel
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&postModel).Error; err != nil {
		return nil, translate(err)
	}
	return ToPostEntity(&postModel), nil
}

func (r *postRepository) Create(ctx context.Context, post *entity.BlogPost) error {
	postModel := ToPostModel(post)
	if err := r.db.WithContext(ctx).Create(postModel).Error; err != nil {
		return err
	}
	*post = *ToPostEntity(postModel)
	return nil
}

func (r *postRepository) Update(ctx context.Context, id uint, changes entity.PostChanges) (*entity.BlogPost, error) {
	updates := map[string]interface{}{"updated_at": time.Now()}
	if changes.Slug != nil {
		updates["slug"] = *changes.Slug
	}
	if changes.Title != nil {
		updates["title"] = *changes.Title
	}
	if changes.Content != nil {
		updates["content"] = *changes.Content
	}
	if changes.Excerpt != nil {
		updates["excerpt"] = *changes.Excerpt
	}
	if changes.Category != nil {
		updates["category"] = *changes.Category
	}
	if changes.Tags != nil {
		updates["tags"] = datatypes.JSONSlice[string](stringsOrEmpty(*changes.Tags))
	}

	return r.applyUpdates(ctx, id, updates)
}

func (r *postRepository) UpdateStatus(ctx context.Context, id uint, status entity.ContentStatus, publishedAt *time.Time) (*entity.BlogPost, error) {
	updates := map[string]interface{}{
		"status":       string(status),
		"published_at": nil,
		"updated_at":   time.Now(),
	}
	if publishedAt != nil {
		updates["published_at"] = *publishedAt
	}

	return r.applyUpdates(ctx, id, updates)
}

func (r *postRepository) applyUpdates(ctx context.Context, id uint, updates map[string]interface{}) (*entity.BlogPost, error) {
	result := r.db.WithContext(ctx).Model(&model.BlogPostModel{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, entity.ErrNotFound
	}
	return r.GetByID(ctx, id)
}

// Delete removes the post together with its comments.
func (r *postRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&model.CommentModel{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ?", id).Delete(&model.BlogPostModel{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return entity.ErrNotFound
		}
		return nil
	})
}

func (r *postRepository) IncrementViews(ctx context.Context, id uint) error {
	return r.incrementViews(ctx, "id = ?", id)
}

func (r *postRepository) IncrementViewsBySlug(ctx context.Context, slug string) error {
	return r.incrementViews(ctx, "slug = ?", slug)
}

func (r *postRepository) incrementViews(ctx context.Context, cond string, arg interface{}) error {
	result := r.db.WithContext(ctx).Model(&model.BlogPostModel{}).Where(cond, arg).
		UpdateColumn("views", clause.Expr{SQL: "views + ?", Vars: []interface{}{1}})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return entity.ErrNotFound
	}
	return nil
}

func (r *postRepository) SearchPublished(ctx context.Context, query string) ([]*entity.BlogPost, error) {
	pattern := containsPattern(query)

	var postModels []model.BlogPostModel
	err := r.db.WithContext(ctx).
		Where("status = ?", string(entity.StatusPublished)).
		Where(`(LOWER(title) LIKE ? ESCAPE '\' OR LOWER(content) LIKE ? ESCAPE '\' OR `+tagContains(r.db, "blog_posts.tags")+`)`,
			pattern, pattern, pattern).
		Find(&postModels).Error
	if err != nil {
		return nil, err
	}
	return ToPostEntities(postModels), nil
}
