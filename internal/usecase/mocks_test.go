package usecase

import (
	"context"
	"io"
	"time"

	"hacktheshell/internal/entity"
	"hacktheshell/internal/repo/persistent"

	"github.com/stretchr/testify/mock"
)

type MockPostRepository struct {
	mock.Mock
}

func (m *MockPostRepository) List(ctx context.Context, status entity.ContentStatus) ([]*entity.BlogPost, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.BlogPost), args.Error(1)
}

func (m *MockPostRepository) GetByID(ctx context.Context, id uint) (*entity.BlogPost, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.BlogPost), args.Error(1)
}

func (m *MockPostRepository) GetBySlug(ctx context.Context, slug string) (*entity.BlogPost, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.BlogPost), args.Error(1)
}

func (m *MockPostRepository) Create(ctx context.Context, post *entity.BlogPost) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *MockPostRepository) Update(ctx context.Context, id uint, changes entity.PostChanges) (*entity.BlogPost, error) {
	args := m.Called(ctx, id, changes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.BlogPost), args.Error(1)
}

func (m *MockPostRepository) UpdateStatus(ctx context.Context, id uint, status entity.ContentStatus, publishedAt *time.Time) (*entity.BlogPost, error) {
	args := m.Called(ctx, id, status, publishedAt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.BlogPost), args.Error(1)
}

func (m *MockPostRepository) Delete(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockPostRepository) IncrementViews(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockPostRepository) IncrementViewsBySlug(ctx context.Context, slug string) error {
	return m.Called(ctx, slug).Error(0)
}

func (m *MockPostRepository) SearchPublished(ctx context.Context, query string) ([]*entity.BlogPost, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.BlogPost), args.Error(1)
}

var _ persistent.PostRepository = (*MockPostRepository)(nil)

type MockToolRepository struct {
	mock.Mock
}

func (m *MockToolRepository) List(ctx context.Context, status entity.ContentStatus, category string) ([]*entity.GithubTool, error) {
	args := m.Called(ctx, status, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.GithubTool), args.Error(1)
}

func (m *MockToolRepository) GetByID(ctx context.Context, id uint) (*entity.GithubTool, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.GithubTool), args.Error(1)
}

func (m *MockToolRepository) GetBySlug(ctx context.Context, slug string) (*entity.GithubTool, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.GithubTool), args.Error(1)
}

func (m *MockToolRepository) Create(ctx context.Context, tool *entity.GithubTool) error {
	return m.Called(ctx, tool).Error(0)
}

func (m *MockToolRepository) Update(ctx context.Context, id uint, changes entity.ToolChanges) (*entity.GithubTool, error) {
	args := m.Called(ctx, id, changes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.GithubTool), args.Error(1)
}

func (m *MockToolRepository) UpdateStatus(ctx context.Context, id uint, status entity.ContentStatus) (*entity.GithubTool, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.GithubTool), args.Error(1)
}

func (m *MockToolRepository) Delete(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockToolRepository) IncrementViews(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockToolRepository) IncrementViewsBySlug(ctx context.Context, slug string) error {
	return m.Called(ctx, slug).Error(0)
}

func (m *MockToolRepository) AppendMedia(ctx context.Context, id uint, kind entity.MediaKind, item entity.MediaItem) (*entity.GithubTool, error) {
	args := m.Called(ctx, id, kind, item)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.GithubTool), args.Error(1)
}

func (m *MockToolRepository) Search(ctx context.Context, query string) ([]*entity.GithubTool, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.GithubTool), args.Error(1)
}

var _ persistent.ToolRepository = (*MockToolRepository)(nil)

type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) ListByPost(ctx context.Context, postID uint) ([]*entity.Comment, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Comment), args.Error(1)
}

func (m *MockCommentRepository) GetByID(ctx context.Context, id uint) (*entity.Comment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Comment), args.Error(1)
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *entity.Comment) error {
	return m.Called(ctx, comment).Error(0)
}

func (m *MockCommentRepository) Delete(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

var _ persistent.CommentRepository = (*MockCommentRepository)(nil)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) user(args mock.Arguments) (*entity.User, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	return m.user(m.Called(ctx, id))
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	return m.user(m.Called(ctx, username))
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return m.user(m.Called(ctx, email))
}

func (m *MockUserRepository) List(ctx context.Context) ([]*entity.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.User), args.Error(1)
}

func (m *MockUserRepository) Upsert(ctx context.Context, user *entity.User) (*entity.User, error) {
	return m.user(m.Called(ctx, user))
}

func (m *MockUserRepository) UpdateRole(ctx context.Context, id string, role entity.UserRole) (*entity.User, error) {
	return m.user(m.Called(ctx, id, role))
}

func (m *MockUserRepository) AddPoints(ctx context.Context, id string, points int) (*entity.User, error) {
	return m.user(m.Called(ctx, id, points))
}

var _ persistent.UserRepository = (*MockUserRepository)(nil)

type MockAchievementRepository struct {
	mock.Mock
}

func (m *MockAchievementRepository) ListByUser(ctx context.Context, userID string) ([]*entity.Achievement, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Achievement), args.Error(1)
}

func (m *MockAchievementRepository) Create(ctx context.Context, achievement *entity.Achievement) error {
	return m.Called(ctx, achievement).Error(0)
}

var _ persistent.AchievementRepository = (*MockAchievementRepository)(nil)

type MockSiteConfigRepository struct {
	mock.Mock
}

func (m *MockSiteConfigRepository) Get(ctx context.Context, key string) (*entity.SiteConfig, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.SiteConfig), args.Error(1)
}

func (m *MockSiteConfigRepository) List(ctx context.Context) ([]*entity.SiteConfig, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.SiteConfig), args.Error(1)
}

func (m *MockSiteConfigRepository) Set(ctx context.Context, cfg *entity.SiteConfig) (*entity.SiteConfig, error) {
	args := m.Called(ctx, cfg)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.SiteConfig), args.Error(1)
}

var _ persistent.SiteConfigRepository = (*MockSiteConfigRepository)(nil)

type MockSeoRepository struct {
	mock.Mock
}

func (m *MockSeoRepository) Get(ctx context.Context, url string) (*entity.SeoMetric, error) {
	args := m.Called(ctx, url)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.SeoMetric), args.Error(1)
}

func (m *MockSeoRepository) List(ctx context.Context) ([]*entity.SeoMetric, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.SeoMetric), args.Error(1)
}

func (m *MockSeoRepository) Track(ctx context.Context, metric *entity.SeoMetric, activity *entity.UserActivity) (*entity.SeoMetric, error) {
	args := m.Called(ctx, metric, activity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.SeoMetric), args.Error(1)
}

var _ persistent.SeoRepository = (*MockSeoRepository)(nil)

type MockActivityRepository struct {
	mock.Mock
}

func (m *MockActivityRepository) Create(ctx context.Context, activity *entity.UserActivity) error {
	return m.Called(ctx, activity).Error(0)
}

func (m *MockActivityRepository) List(ctx context.Context, userID string, limit int) ([]*entity.UserActivity, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.UserActivity), args.Error(1)
}

var _ persistent.ActivityRepository = (*MockActivityRepository)(nil)

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) PublishEvent(routingKey string, event map[string]interface{}) error {
	return m.Called(routingKey, event).Error(0)
}

type MockUploader struct {
	mock.Mock
}

func (m *MockUploader) UploadFile(key string, body io.ReadSeeker, contentType string) (string, error) {
	args := m.Called(key, body, contentType)
	return args.String(0), args.Error(1)
}
