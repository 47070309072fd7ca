package http

import (
	"context"
	"mime/multipart"

	"hacktheshell/internal/entity"
	"hacktheshell/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
)

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

// asUser injects the identity the auth middleware would set.
func asUser(userID, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Set("role", role)
		c.Next()
	}
}

type MockPostUseCase struct {
	mock.Mock
}

func (m *MockPostUseCase) ListPosts(ctx context.Context, status entity.ContentStatus) ([]*entity.BlogPost, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.BlogPost), args.Error(1)
}

func (m *MockPostUseCase) post(args mock.Arguments) (*entity.BlogPost, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.BlogPost), args.Error(1)
}

func (m *MockPostUseCase) ViewPost(ctx context.Context, id uint) (*entity.BlogPost, error) {
	return m.post(m.Called(ctx, id))
}

func (m *MockPostUseCase) ViewPostBySlug(ctx context.Context, slug string) (*entity.BlogPost, error) {
	return m.post(m.Called(ctx, slug))
}

func (m *MockPostUseCase) CreatePost(ctx context.Context, actor usecase.Actor, post *entity.BlogPost) (*entity.BlogPost, error) {
	return m.post(m.Called(ctx, actor, post))
}

func (m *MockPostUseCase) UpdatePost(ctx context.Context, actor usecase.Actor, id uint, changes entity.PostChanges) (*entity.BlogPost, error) {
	return m.post(m.Called(ctx, actor, id, changes))
}

func (m *MockPostUseCase) UpdatePostStatus(ctx context.Context, actor usecase.Actor, id uint, status entity.ContentStatus) (*entity.BlogPost, error) {
	return m.post(m.Called(ctx, actor, id, status))
}

func (m *MockPostUseCase) DeletePost(ctx context.Context, actor usecase.Actor, id uint) error {
	return m.Called(ctx, actor, id).Error(0)
}

var _ usecase.PostUseCase = (*MockPostUseCase)(nil)

type MockToolUseCase struct {
	mock.Mock
}

func (m *MockToolUseCase) tool(args mock.Arguments) (*entity.GithubTool, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.GithubTool), args.Error(1)
}

func (m *MockToolUseCase) ListTools(ctx context.Context, status entity.ContentStatus, category string) ([]*entity.GithubTool, error) {
	args := m.Called(ctx, status, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.GithubTool), args.Error(1)
}

func (m *MockToolUseCase) ViewTool(ctx context.Context, id uint) (*entity.GithubTool, error) {
	return m.tool(m.Called(ctx, id))
}

func (m *MockToolUseCase) ViewToolBySlug(ctx context.Context, slug string) (*entity.GithubTool, error) {
	return m.tool(m.Called(ctx, slug))
}

func (m *MockToolUseCase) CreateTool(ctx context.Context, actor usecase.Actor, tool *entity.GithubTool) (*entity.GithubTool, error) {
	return m.tool(m.Called(ctx, actor, tool))
}

func (m *MockToolUseCase) UpdateTool(ctx context.Context, actor usecase.Actor, id uint, changes entity.ToolChanges) (*entity.GithubTool, error) {
	return m.tool(m.Called(ctx, actor, id, changes))
}

func (m *MockToolUseCase) UpdateToolStatus(ctx context.Context, actor usecase.Actor, id uint, status entity.ContentStatus) (*entity.GithubTool, error) {
	return m.tool(m.Called(ctx, actor, id, status))
}

func (m *MockToolUseCase) DeleteTool(ctx context.Context, actor usecase.Actor, id uint) error {
	return m.Called(ctx, actor, id).Error(0)
}

func (m *MockToolUseCase) UploadMedia(ctx context.Context, actor usecase.Actor, id uint, kind entity.MediaKind, caption string, file *multipart.FileHeader) (*entity.GithubTool, error) {
	return m.tool(m.Called(ctx, actor, id, kind, caption, file))
}

var _ usecase.ToolUseCase = (*MockToolUseCase)(nil)

type MockCommentUseCase struct {
	mock.Mock
}

func (m *MockCommentUseCase) ListComments(ctx context.Context, postID uint) ([]*entity.Comment, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Comment), args.Error(1)
}

func (m *MockCommentUseCase) CreateComment(ctx context.Context, actor usecase.Actor, postID uint, content string) (*entity.Comment, error) {
	args := m.Called(ctx, actor, postID, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Comment), args.Error(1)
}

func (m *MockCommentUseCase) DeleteComment(ctx context.Context, actor usecase.Actor, id uint) error {
	return m.Called(ctx, actor, id).Error(0)
}

var _ usecase.CommentUseCase = (*MockCommentUseCase)(nil)

type MockUserUseCase struct {
	mock.Mock
}

func (m *MockUserUseCase) user(args mock.Arguments) (*entity.User, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserUseCase) SyncUser(ctx context.Context, user *entity.User) (*entity.User, error) {
	return m.user(m.Called(ctx, user))
}

func (m *MockUserUseCase) GetUser(ctx context.Context, id string) (*entity.User, error) {
	return m.user(m.Called(ctx, id))
}

func (m *MockUserUseCase) ListUsers(ctx context.Context) ([]*entity.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.User), args.Error(1)
}

func (m *MockUserUseCase) SetRole(ctx context.Context, id string, role entity.UserRole) (*entity.User, error) {
	return m.user(m.Called(ctx, id, role))
}

func (m *MockUserUseCase) AwardPoints(ctx context.Context, id string, points int) (*entity.User, error) {
	return m.user(m.Called(ctx, id, points))
}

func (m *MockUserUseCase) ListAchievements(ctx context.Context, userID string) ([]*entity.Achievement, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Achievement), args.Error(1)
}

func (m *MockUserUseCase) UnlockAchievement(ctx context.Context, actor usecase.Actor, userID string, achievement *entity.Achievement) (*entity.Achievement, error) {
	args := m.Called(ctx, actor, userID, achievement)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Achievement), args.Error(1)
}

var _ usecase.UserUseCase = (*MockUserUseCase)(nil)

type MockSiteConfigUseCase struct {
	mock.Mock
}

func (m *MockSiteConfigUseCase) config(args mock.Arguments) (*entity.SiteConfig, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.SiteConfig), args.Error(1)
}

func (m *MockSiteConfigUseCase) GetConfig(ctx context.Context, key string) (*entity.SiteConfig, error) {
	return m.config(m.Called(ctx, key))
}

func (m *MockSiteConfigUseCase) ListConfig(ctx context.Context) ([]*entity.SiteConfig, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.SiteConfig), args.Error(1)
}

func (m *MockSiteConfigUseCase) SetConfig(ctx context.Context, actor usecase.Actor, key, value, description string) (*entity.SiteConfig, error) {
	return m.config(m.Called(ctx, actor, key, value, description))
}

func (m *MockSiteConfigUseCase) SetMaintenanceMode(ctx context.Context, actor usecase.Actor, enabled bool) (*entity.SiteConfig, error) {
	return m.config(m.Called(ctx, actor, enabled))
}

func (m *MockSiteConfigUseCase) IsMaintenanceMode(ctx context.Context) (bool, error) {
	args := m.Called(ctx)
	return args.Bool(0), args.Error(1)
}

var _ usecase.SiteConfigUseCase = (*MockSiteConfigUseCase)(nil)

type MockSeoUseCase struct {
	mock.Mock
}

func (m *MockSeoUseCase) TrackPageView(ctx context.Context, view usecase.PageView) (*entity.SeoMetric, error) {
	args := m.Called(ctx, view)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.SeoMetric), args.Error(1)
}

func (m *MockSeoUseCase) GetMetric(ctx context.Context, url string) (*entity.SeoMetric, error) {
	args := m.Called(ctx, url)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.SeoMetric), args.Error(1)
}

func (m *MockSeoUseCase) ListMetrics(ctx context.Context) ([]*entity.SeoMetric, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.SeoMetric), args.Error(1)
}

func (m *MockSeoUseCase) ListActivity(ctx context.Context, userID string, limit int) ([]*entity.UserActivity, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.UserActivity), args.Error(1)
}

var _ usecase.SeoUseCase = (*MockSeoUseCase)(nil)

type MockSearchUseCase struct {
	mock.Mock
}

func (m *MockSearchUseCase) Search(ctx context.Context, query string) ([]entity.SearchResult, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.SearchResult), args.Error(1)
}

var _ usecase.SearchUseCase = (*MockSearchUseCase)(nil)
