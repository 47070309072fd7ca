package persistent

import (
	"hacktheshell/internal/entity"
	"hacktheshell/internal/model"

	"gorm.io/datatypes"
)

func ToUserEntity(m *model.UserModel) *entity.User {
	if m == nil {
		return nil
	}

	return &entity.User{
		ID:              m.ID,
		Username:        m.Username,
		Email:           m.Email,
		FirstName:       m.FirstName,
		LastName:        m.LastName,
		ProfileImageURL: m.ProfileImageURL,
		Role:            entity.UserRole(m.Role),
		Points:          m.Points,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func ToUserModel(e *entity.User) *model.UserModel {
	if e == nil {
		return nil
	}

	return &model.UserModel{
		ID:              e.ID,
		Username:        e.Username,
		Email:           e.Email,
		FirstName:       e.FirstName,
		LastName:        e.LastName,
		ProfileImageURL: e.ProfileImageURL,
		Role:            string(e.Role),
		Points:          e.Points,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
}

func ToPostEntity(m *model.BlogPostModel) *entity.BlogPost {
	if m == nil {
		return nil
	}

	return &entity.BlogPost{
		ID:          m.ID,
		Slug:        m.Slug,
		Title:       m.Title,
		Content:     m.Content,
		Excerpt:     m.Excerpt,
		Category:    m.Category,
		Tags:        stringsOrEmpty(m.Tags),
		Status:      entity.ContentStatus(m.Status),
		Views:       m.Views,
		AuthorID:    m.AuthorID,
		PublishedAt: m.PublishedAt,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func ToPostModel(e *entity.BlogPost) *model.BlogPostModel {
	if e == nil {
		return nil
	}

	return &model.BlogPostModel{
		ID:          e.ID,
		Slug:        e.Slug,
		Title:       e.Title,
		Content:     e.Content,
		Excerpt:     e.Excerpt,
		Category:    e.Category,
		Tags:        datatypes.JSONSlice[string](stringsOrEmpty(e.Tags)),
		Status:      string(e.Status),
		Views:       e.Views,
		AuthorID:    e.AuthorID,
		PublishedAt: e.PublishedAt,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func ToPostEntities(models []model.BlogPostModel) []*entity.BlogPost {
	posts := make([]*entity.BlogPost, len(models))
	for i := range models {
		posts[i] = ToPostEntity(&models[i])
	}
	return posts
}

func ToToolEntity(m *model.GithubToolModel) *entity.GithubTool {
	if m == nil {
		return nil
	}

	return &entity.GithubTool{
		ID:          m.ID,
		Slug:        m.Slug,
		Name:        m.Name,
		Description: m.Description,
		Category:    m.Category,
		Difficulty:  entity.Difficulty(m.Difficulty),
		Tags:        stringsOrEmpty(m.Tags),
		Screenshots: toMediaEntities(m.Screenshots),
		Videos:      toMediaEntities(m.Videos),
		Gifs:        toMediaEntities(m.Gifs),
		GithubURL:   m.GithubURL,
		OfficialURL: m.OfficialURL,
		Stars:       m.Stars,
		Views:       m.Views,
		AuthorID:    m.AuthorID,
		Status:      entity.ContentStatus(m.Status),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func ToToolModel(e *entity.GithubTool) *model.GithubToolModel {
	if e == nil {
		return nil
	}

	return &model.GithubToolModel{
		ID:          e.ID,
		Slug:        e.Slug,
		Name:        e.Name,
		Description: e.Description,
		Category:    e.Category,
		Difficulty:  string(e.Difficulty),
		Tags:        datatypes.JSONSlice[string](stringsOrEmpty(e.Tags)),
		Screenshots: toMediaModels(e.Screenshots),
		Videos:      toMediaModels(e.Videos),
		Gifs:        toMediaModels(e.Gifs),
		GithubURL:   e.GithubURL,
		OfficialURL: e.OfficialURL,
		Stars:       e.Stars,
		Views:       e.Views,
		AuthorID:    e.AuthorID,
		Status:      string(e.Status),
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func ToToolEntities(models []model.GithubToolModel) []*entity.GithubTool {
	tools := make([]*entity.GithubTool, len(models))
	for i := range models {
		tools[i] = ToToolEntity(&models[i])
	}
	return tools
}

func toMediaEntities(items []model.MediaItem) []entity.MediaItem {
	out := make([]entity.MediaItem, len(items))
	for i, item := range items {
		out[i] = entity.MediaItem{URL: item.URL, Caption: item.Caption}
	}
	return out
}

func toMediaModels(items []entity.MediaItem) datatypes.JSONSlice[model.MediaItem] {
	out := make(datatypes.JSONSlice[model.MediaItem], len(items))
	for i, item := range items {
		out[i] = model.MediaItem{URL: item.URL, Caption: item.Caption}
	}
	return out
}

func ToCommentEntity(m *model.CommentModel) *entity.Comment {
	if m == nil {
		return nil
	}

	return &entity.Comment{
		ID:        m.ID,
		PostID:    m.PostID,
		AuthorID:  m.AuthorID,
		Content:   m.Content,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func ToCommentModel(e *entity.Comment) *model.CommentModel {
	if e == nil {
		return nil
	}

	return &model.CommentModel{
		ID:        e.ID,
		PostID:    e.PostID,
		AuthorID:  e.AuthorID,
		Content:   e.Content,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func ToSiteConfigEntity(m *model.SiteConfigModel) *entity.SiteConfig {
	if m == nil {
		return nil
	}

	return &entity.SiteConfig{
		Key:         m.Key,
		Value:       m.Value,
		UpdatedBy:   m.UpdatedBy,
		Description: m.Description,
		UpdatedAt:   m.UpdatedAt,
	}
}

func ToSiteConfigModel(e *entity.SiteConfig) *model.SiteConfigModel {
	if e == nil {
		return nil
	}

	return &model.SiteConfigModel{
		Key:         e.Key,
		Value:       e.Value,
		UpdatedBy:   e.UpdatedBy,
		Description: e.Description,
		UpdatedAt:   e.UpdatedAt,
	}
}

func ToAchievementEntity(m *model.AchievementModel) *entity.Achievement {
	if m == nil {
		return nil
	}

	return &entity.Achievement{
		ID:          m.ID,
		UserID:      m.UserID,
		Type:        m.Type,
		Title:       m.Title,
		Description: m.Description,
		Icon:        m.Icon,
		Points:      m.Points,
		UnlockedAt:  m.UnlockedAt,
	}
}

func ToAchievementModel(e *entity.Achievement) *model.AchievementModel {
	if e == nil {
		return nil
	}

	return &model.AchievementModel{
		ID:          e.ID,
		UserID:      e.UserID,
		Type:        e.Type,
		Title:       e.Title,
		Description: e.Description,
		Icon:        e.Icon,
		Points:      e.Points,
		UnlockedAt:  e.UnlockedAt,
	}
}

func ToActivityEntity(m *model.UserActivityModel) *entity.UserActivity {
	if m == nil {
		return nil
	}

	metadata := map[string]interface{}(m.Metadata)
	if metadata == nil {
		metadata = map[string]interface{}{}
	}

	return &entity.UserActivity{
		ID:           m.ID,
		UserID:       m.UserID,
		Action:       m.Action,
		ResourceType: m.ResourceType,
		ResourceID:   m.ResourceID,
		Metadata:     metadata,
		IPAddress:    m.IPAddress,
		UserAgent:    m.UserAgent,
		CreatedAt:    m.CreatedAt,
	}
}

func ToActivityModel(e *entity.UserActivity) *model.UserActivityModel {
	if e == nil {
		return nil
	}

	return &model.UserActivityModel{
		ID:           e.ID,
		UserID:       e.UserID,
		Action:       e.Action,
		ResourceType: e.ResourceType,
		ResourceID:   e.ResourceID,
		Metadata:     datatypes.JSONMap(e.Metadata),
		IPAddress:    e.IPAddress,
		UserAgent:    e.UserAgent,
		CreatedAt:    e.CreatedAt,
	}
}

func ToSeoMetricEntity(m *model.SeoMetricModel) *entity.SeoMetric {
	if m == nil {
		return nil
	}

	return &entity.SeoMetric{
		URL:         m.URL,
		Title:       m.Title,
		Description: m.Description,
		Keywords:    stringsOrEmpty(m.Keywords),
		Views:       m.Views,
		LastCrawled: m.LastCrawled,
	}
}

func ToSeoMetricModel(e *entity.SeoMetric) *model.SeoMetricModel {
	if e == nil {
		return nil
	}

	return &model.SeoMetricModel{
		URL:         e.URL,
		Title:       e.Title,
		Description: e.Description,
		Keywords:    datatypes.JSONSlice[string](stringsOrEmpty(e.Keywords)),
		Views:       e.Views,
		LastCrawled: e.LastCrawled,
	}
}

func stringsOrEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
