package persistent

import (
	"context"
	"fmt"
	"time"

	"hacktheshell/internal/entity"
	"hacktheshell/internal/model"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ToolRepository interface {
	List(ctx context.Context, status entity.ContentStatus, category string) ([]*entity.GithubTool, error)
	GetByID(ctx context.Context, id uint) (*entity.GithubTool, error)
	GetBySlug(ctx context.Context, slug string) (*entity.GithubTool, error)
	Create(ctx context.Context, tool *entity.GithubTool) error
	Update(ctx context.Context, id uint, changes entity.ToolChanges) (*entity.GithubTool, error)
	UpdateStatus(ctx context.Context, id uint, status entity.ContentStatus) (*entity.GithubTool, error)
	Delete(ctx context.Context, id uint) error
	IncrementViews(ctx context.Context, id uint) error
	IncrementViewsBySlug(ctx context.Context, slug string) error
	AppendMedia(ctx context.Context, id uint, kind entity.MediaKind, item entity.MediaItem) (*entity.GithubTool, error)
	Search(ctx context.Context, query string) ([]*entity.GithubTool, error)
}

type toolRepository struct {
	db *gorm.DB
}

func NewToolRepository(db *gorm.DB) ToolRepository {
	return &toolRepository{db: db}
}

func (r *toolRepository) List(ctx context.Context, status entity.ContentStatus, category string) ([]*entity.GithubTool, error) {
	var toolModels []model.GithubToolModel
	query := r.db.WithContext(ctx).Order("created_at DESC, id DESC")
	if status != "" {
		query = query.Where("status = ?", string(status))
	}
	if category != "" {
		query = query.Where("category = ?", category)
	}
	if err := query.Find(&toolModels).Error; err != nil {
		return nil, err
	}
	return ToToolEntities(toolModels), nil
}

func (r *toolRepository) GetByID(ctx context.Context, id uint) (*entity.GithubTool, error) {
	var toolModel model.GithubToolModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&toolModel).Error; err != nil {
		return nil, translate(err)
	}
	return ToToolEntity(&toolModel), nil
}

func (r *toolRepository) GetBySlug(ctx context.Context, slug string) (*entity.GithubTool, error) {
	var toolModel model.GithubToolModel
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&toolModel).Error; err != nil {
		return nil, translate(err)
	}
	return ToToolEntity(&toolModel), nil
}

func (r *toolRepository) Create(ctx context.Context, tool *entity.GithubTool) error {
	toolModel := ToToolModel(tool)
	if err := r.db.WithContext(ctx).Create(toolModel).Error; err != nil {
		return err
	}
	*tool = *ToToolEntity(toolModel)
	return nil
}

func (r *toolRepository) Update(ctx context.Context, id uint, changes entity.ToolChanges) (*entity.GithubTool, error) {
	updates := map[string]interface{}{"updated_at": time.Now()}
	if changes.Slug != nil {
		updates["slug"] = *changes.Slug
	}
	if changes.Name != nil {
		updates["name"] = *changes.Name
	}
	if changes.Description != nil {
		updates["description"] = *changes.Description
	}
	if changes.Category != nil {
		updates["category"] = *changes.Category
	}
	if changes.Difficulty != nil {
		updates["difficulty"] = string(*changes.Difficulty)
	}
	if changes.Tags != nil {
		updates["tags"] = datatypes.JSONSlice[string](stringsOrEmpty(*changes.Tags))
	}
	if changes.Screenshots != nil {
		updates["screenshots"] = toMediaModels(*changes.Screenshots)
	}
	if changes.Videos != nil {
		updates["videos"] = toMediaModels(*changes.Videos)
	}
	if changes.Gifs != nil {
		updates["gifs"] = toMediaModels(*changes.Gifs)
	}
	if changes.GithubURL != nil {
		updates["github_url"] = *changes.GithubURL
	}
	if changes.OfficialURL != nil {
		updates["official_url"] = *changes.OfficialURL
	}
	if changes.Stars != nil {
		updates["stars"] = *changes.Stars
	}

	return r.applyUpdates(ctx, id, updates)
}

func (r *toolRepository) UpdateStatus(ctx context.Context, id uint, status entity.ContentStatus) (*entity.GithubTool, error) {
	return r.applyUpdates(ctx, id, map[string]interface{}{
		"status":     string(status),
		"updated_at": time.Now(),
	})
}

func (r *toolRepository) applyUpdates(ctx context.Context, id uint, updates map[string]interface{}) (*entity.GithubTool, error) {
	result := r.db.WithContext(ctx).Model(&model.GithubToolModel{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, entity.ErrNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *toolRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.GithubToolModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return entity.ErrNotFound
	}
	return nil
}

func (r *toolRepository) IncrementViews(ctx context.Context, id uint) error {
	return r.incrementViews(ctx, "id = ?", id)
}

func (r *toolRepository) IncrementViewsBySlug(ctx context.Context, slug string) error {
	return r.incrementViews(ctx, "slug = ?", slug)
}

func (r *toolRepository) incrementViews(ctx context.Context, cond string, arg interface{}) error {
	result := r.db.WithContext(ctx).Model(&model.GithubToolModel{}).Where(cond, arg).
		UpdateColumn("views", clause.Expr{SQL: "views + ?", Vars: []interface{}{1}})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return entity.ErrNotFound
	}
	return nil
}

// AppendMedia adds one item to the screenshots, videos or gifs list. On
// Postgres the row is locked for the read-modify-write.
func (r *toolRepository) AppendMedia(ctx context.Context, id uint, kind entity.MediaKind, item entity.MediaItem) (*entity.GithubTool, error) {
	column, err := mediaColumn(kind)
	if err != nil {
		return nil, err
	}

	var saved model.GithubToolModel
	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		query := tx.Where("id = ?", id)
		if tx.Dialector.Name() == "postgres" {
			query = query.Clauses(clause.Locking{Strength: "UPDATE"})
		}
		if err := query.First(&saved).Error; err != nil {
			return translate(err)
		}

		var list datatypes.JSONSlice[model.MediaItem]
		switch kind {
		case entity.MediaScreenshot:
			list = append(saved.Screenshots, model.MediaItem{URL: item.URL, Caption: item.Caption})
			saved.Screenshots = list
		case entity.MediaVideo:
			list = append(saved.Videos, model.MediaItem{URL: item.URL, Caption: item.Caption})
			saved.Videos = list
		case entity.MediaGif:
			list = append(saved.Gifs, model.MediaItem{URL: item.URL, Caption: item.Caption})
			saved.Gifs = list
		}

		saved.UpdatedAt = time.Now()
		return tx.Model(&model.GithubToolModel{}).Where("id = ?", id).Updates(map[string]interface{}{
			column:       list,
			"updated_at": saved.UpdatedAt,
		}).Error
	})
	if err != nil {
		return nil, err
	}
	return ToToolEntity(&saved), nil
}

func mediaColumn(kind entity.MediaKind) (string, error) {
	switch kind {
	case entity.MediaScreenshot:
		return "screenshots", nil
	case entity.MediaVideo:
		return "videos", nil
	case entity.MediaGif:
		return "gifs", nil
	}
	return "", fmt.Errorf("unknown media kind %q", kind)
}

// Search matches tools of any status on name, description, category or a tag.
func (r *toolRepository) Search(ctx context.Context, query string) ([]*entity.GithubTool, error) {
	pattern := containsPattern(query)

	var toolModels []model.GithubToolModel
	err := r.db.WithContext(ctx).
		Where(`(LOWER(name) LIKE ? ESCAPE '\' OR LOWER(description) LIKE ? ESCAPE '\' OR LOWER(category) LIKE ? ESCAPE '\' OR `+tagContains(r.db, "github_tools.tags")+`)`,
			pattern, pattern, pattern, pattern).
		Find(&toolModels).Error
	if err != nil {
		return nil, err
	}
	return ToToolEntities(toolModels), nil
}
