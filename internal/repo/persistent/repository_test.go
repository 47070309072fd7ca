package persistent

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"hacktheshell/internal/entity"
	"hacktheshell/internal/model"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "hacktheshell.db")
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(model.All()...))
	return db
}

func newPost(slug string, status entity.ContentStatus) *entity.BlogPost {
	return &entity.BlogPost{
		Slug:     slug,
		Title:    "Title " + slug,
		Content:  "content for " + slug,
		Excerpt:  "excerpt",
		Category: "Web Security",
		Tags:     []string{"xss", "owasp"},
		Status:   status,
		AuthorID: "author-1",
	}
}

func newTool(slug, category string, status entity.ContentStatus) *entity.GithubTool {
	return &entity.GithubTool{
		Slug:        slug,
		Name:        "Tool " + slug,
		Description: "scanner for " + slug,
		Category:    category,
		Difficulty:  entity.DifficultyBeginner,
		Tags:        []string{"recon"},
		GithubURL:   "https://github.com/example/" + slug,
		AuthorID:    "author-1",
		Status:      status,
	}
}

func TestPostRepository_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	repo := NewPostRepository(setupTestDB(t))

	post := newPost("x", entity.StatusDraft)
	require.NoError(t, repo.Create(ctx, post))

	assert.NotZero(t, post.ID)
	assert.Equal(t, 0, post.Views)
	assert.Nil(t, post.PublishedAt)
	assert.False(t, post.CreatedAt.IsZero())

	byID, err := repo.GetByID(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, "x", byID.Slug)
	assert.Equal(t, []string{"xss", "owasp"}, byID.Tags)

	bySlug, err := repo.GetBySlug(ctx, "x")
	require.NoError(t, err)
	assert.Equal(t, post.ID, bySlug.ID)

	_, err = repo.GetBySlug(ctx, "missing")
	assert.ErrorIs(t, err, entity.ErrNotFound)

	_, err = repo.GetByID(ctx, 9999)
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestPostRepository_DuplicateSlug(t *testing.T) {
	ctx := context.Background()
	repo := NewPostRepository(setupTestDB(t))

	require.NoError(t, repo.Create(ctx, newPost("dup", entity.StatusDraft)))
	err := repo.Create(ctx, newPost("dup", entity.StatusDraft))
	assert.Error(t, err)
	assert.NotErrorIs(t, err, entity.ErrNotFound)
}

func TestPostRepository_ListFiltersAndOrders(t *testing.T) {
	ctx := context.Background()
	repo := NewPostRepository(setupTestDB(t))

	require.NoError(t, repo.Create(ctx, newPost("first", entity.StatusPublished)))
	require.NoError(t, repo.Create(ctx, newPost("second", entity.StatusDraft)))
	require.NoError(t, repo.Create(ctx, newPost("third", entity.StatusPublished)))

	all, err := repo.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "third", all[0].Slug)
	assert.Equal(t, "first", all[2].Slug)

	published, err := repo.List(ctx, entity.StatusPublished)
	require.NoError(t, err)
	require.Len(t, published, 2)
	for _, p := range published {
		assert.Equal(t, entity.StatusPublished, p.Status)
	}
}

func TestPostRepository_UpdateMergesFields(t *testing.T) {
	ctx := context.Background()
	repo := NewPostRepository(setupTestDB(t))

	post := newPost("merge", entity.StatusDraft)
	require.NoError(t, repo.Create(ctx, post))
	before := post.UpdatedAt

	time.Sleep(5 * time.Millisecond)
	title := "New title"
	tags := []string{"sqli"}
	updated, err := repo.Update(ctx, post.ID, entity.PostChanges{Title: &title, Tags: &tags})
	require.NoError(t, err)

	assert.Equal(t, "New title", updated.Title)
	assert.Equal(t, []string{"sqli"}, updated.Tags)
	assert.Equal(t, post.Content, updated.Content)
	assert.True(t, updated.UpdatedAt.After(before))

	_, err = repo.Update(ctx, 4242, entity.PostChanges{Title: &title})
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestPostRepository_UpdateStatusPublishedAt(t *testing.T) {
	ctx := context.Background()
	repo := NewPostRepository(setupTestDB(t))

	post := newPost("status", entity.StatusDraft)
	require.NoError(t, repo.Create(ctx, post))

	now := time.Now()
	published, err := repo.UpdateStatus(ctx, post.ID, entity.StatusPublished, &now)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPublished, published.Status)
	require.NotNil(t, published.PublishedAt)

	rejected, err := repo.UpdateStatus(ctx, post.ID, entity.StatusRejected, nil)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusRejected, rejected.Status)
	assert.Nil(t, rejected.PublishedAt)
}

func TestPostRepository_IncrementViewsConcurrent(t *testing.T) {
	ctx := context.Background()
	repo := NewPostRepository(setupTestDB(t))

	post := newPost("hot", entity.StatusPublished)
	require.NoError(t, repo.Create(ctx, post))

	const n = 20
	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if i%2 == 0 {
				errs <- repo.IncrementViews(ctx, post.ID)
			} else {
				errs <- repo.IncrementViewsBySlug(ctx, post.Slug)
			}
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	got, err := repo.GetByID(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, n, got.Views)

	assert.ErrorIs(t, repo.IncrementViews(ctx, 777), entity.ErrNotFound)
	assert.ErrorIs(t, repo.IncrementViewsBySlug(ctx, "nope"), entity.ErrNotFound)
}

func TestPostRepository_DeleteCascadesComments(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	posts := NewPostRepository(db)
	comments := NewCommentRepository(db)

	post := newPost("doomed", entity.StatusPublished)
	require.NoError(t, posts.Create(ctx, post))
	other := newPost("survivor", entity.StatusPublished)
	require.NoError(t, posts.Create(ctx, other))

	require.NoError(t, comments.Create(ctx, &entity.Comment{PostID: post.ID, AuthorID: "u1", Content: "first!"}))
	require.NoError(t, comments.Create(ctx, &entity.Comment{PostID: other.ID, AuthorID: "u1", Content: "nice"}))

	require.NoError(t, posts.Delete(ctx, post.ID))

	_, err := posts.GetByID(ctx, post.ID)
	assert.ErrorIs(t, err, entity.ErrNotFound)

	left, err := comments.ListByPost(ctx, post.ID)
	require.NoError(t, err)
	assert.Empty(t, left)

	kept, err := comments.ListByPost(ctx, other.ID)
	require.NoError(t, err)
	assert.Len(t, kept, 1)

	assert.ErrorIs(t, posts.Delete(ctx, post.ID), entity.ErrNotFound)
}

func TestPostRepository_SearchPublished(t *testing.T) {
	ctx := context.Background()
	repo := NewPostRepository(setupTestDB(t))

	hidden := newPost("hidden", entity.StatusDraft)
	hidden.Tags = []string{"Kerberoasting"}
	require.NoError(t, repo.Create(ctx, hidden))

	visible := newPost("visible", entity.StatusPublished)
	visible.Title = "Intro to Kerberoasting"
	require.NoError(t, repo.Create(ctx, visible))

	tagged := newPost("tagged", entity.StatusPublished)
	tagged.Tags = []string{"Active-Directory"}
	require.NoError(t, repo.Create(ctx, tagged))

	results, err := repo.SearchPublished(ctx, "KERBEROAST")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "visible", results[0].Slug)

	results, err = repo.SearchPublished(ctx, "active-directory")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "tagged", results[0].Slug)

	results, err = repo.SearchPublished(ctx, "100%")
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestPostRepository_SearchMatchesTagElements(t *testing.T) {
	ctx := context.Background()
	repo := NewPostRepository(setupTestDB(t))

	plain := newPost("plain", entity.StatusPublished)
	plain.Title = "Plain"
	plain.Content = "nothing special"
	plain.Tags = []string{"xss", "sqli"}
	require.NoError(t, repo.Create(ctx, plain))

	rnd := newPost("rnd", entity.StatusPublished)
	rnd.Tags = []string{"R&D"}
	require.NoError(t, repo.Create(ctx, rnd))

	for _, q := range []string{"[", `"`, ",", `xss","sqli`} {
		results, err := repo.SearchPublished(ctx, q)
		require.NoError(t, err)
		assert.Empty(t, results, "query %q", q)
	}

	results, err := repo.SearchPublished(ctx, "SQLi")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "plain", results[0].Slug)

	results, err = repo.SearchPublished(ctx, "&")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "rnd", results[0].Slug)
}

func TestToolRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := NewToolRepository(setupTestDB(t))

	tool := newTool("nmap", "Reconnaissance", entity.StatusPublished)
	require.NoError(t, repo.Create(ctx, tool))
	assert.NotZero(t, tool.ID)
	assert.Equal(t, 0, tool.Views)
	assert.Empty(t, tool.Screenshots)

	require.NoError(t, repo.Create(ctx, newTool("burp", "Web", entity.StatusDraft)))

	byCategory, err := repo.List(ctx, "", "Web")
	require.NoError(t, err)
	require.Len(t, byCategory, 1)
	assert.Equal(t, "burp", byCategory[0].Slug)

	byStatus, err := repo.List(ctx, entity.StatusPublished, "")
	require.NoError(t, err)
	require.Len(t, byStatus, 1)

	name := "Nmap"
	difficulty := entity.DifficultyIntermediate
	updated, err := repo.Update(ctx, tool.ID, entity.ToolChanges{Name: &name, Difficulty: &difficulty})
	require.NoError(t, err)
	assert.Equal(t, "Nmap", updated.Name)
	assert.Equal(t, entity.DifficultyIntermediate, updated.Difficulty)
	assert.Equal(t, tool.GithubURL, updated.GithubURL)

	archived, err := repo.UpdateStatus(ctx, tool.ID, entity.StatusRejected)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusRejected, archived.Status)

	require.NoError(t, repo.IncrementViewsBySlug(ctx, "nmap"))
	require.NoError(t, repo.IncrementViews(ctx, tool.ID))
	got, err := repo.GetBySlug(ctx, "nmap")
	require.NoError(t, err)
	assert.Equal(t, 2, got.Views)

	require.NoError(t, repo.Delete(ctx, tool.ID))
	assert.ErrorIs(t, repo.Delete(ctx, tool.ID), entity.ErrNotFound)
}

func TestToolRepository_AppendMedia(t *testing.T) {
	ctx := context.Background()
	repo := NewToolRepository(setupTestDB(t))

	tool := newTool("sqlmap", "Web", entity.StatusPublished)
	require.NoError(t, repo.Create(ctx, tool))

	_, err := repo.AppendMedia(ctx, tool.ID, entity.MediaScreenshot, entity.MediaItem{URL: "https://cdn/1.png", Caption: "dump"})
	require.NoError(t, err)
	updated, err := repo.AppendMedia(ctx, tool.ID, entity.MediaScreenshot, entity.MediaItem{URL: "https://cdn/2.png"})
	require.NoError(t, err)
	require.Len(t, updated.Screenshots, 2)
	assert.Equal(t, "dump", updated.Screenshots[0].Caption)

	reloaded, err := repo.GetByID(ctx, tool.ID)
	require.NoError(t, err)
	assert.Len(t, reloaded.Screenshots, 2)
	assert.Empty(t, reloaded.Videos)

	_, err = repo.AppendMedia(ctx, 999, entity.MediaGif, entity.MediaItem{URL: "x"})
	assert.ErrorIs(t, err, entity.ErrNotFound)

	_, err = repo.AppendMedia(ctx, tool.ID, entity.MediaKind("audio"), entity.MediaItem{URL: "x"})
	assert.Error(t, err)
}

func TestToolRepository_SearchIgnoresStatus(t *testing.T) {
	ctx := context.Background()
	repo := NewToolRepository(setupTestDB(t))

	require.NoError(t, repo.Create(ctx, newTool("hashcat", "Password Cracking", entity.StatusDraft)))
	require.NoError(t, repo.Create(ctx, newTool("amass", "Reconnaissance", entity.StatusPublished)))

	results, err := repo.Search(ctx, "password")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "hashcat", results[0].Slug)
}

func TestToolRepository_SearchMatchesTagElements(t *testing.T) {
	ctx := context.Background()
	repo := NewToolRepository(setupTestDB(t))

	tool := newTool("ffuf", "Web Security", entity.StatusPublished)
	tool.Tags = []string{"fuzzer", "wordlists"}
	require.NoError(t, repo.Create(ctx, tool))

	results, err := repo.Search(ctx, "Fuzz")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "ffuf", results[0].Slug)

	results, err = repo.Search(ctx, `fuzzer","word`)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestUserRepository_UpsertPreservesRoleAndPoints(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(setupTestDB(t))

	created, err := repo.Upsert(ctx, &entity.User{ID: "u-1", Username: "neo", Email: "neo@example.com"})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleUser, created.Role)
	assert.Equal(t, 0, created.Points)

	_, err = repo.UpdateRole(ctx, "u-1", entity.RoleAdmin)
	require.NoError(t, err)
	_, err = repo.AddPoints(ctx, "u-1", 50)
	require.NoError(t, err)
	withPoints, err := repo.AddPoints(ctx, "u-1", 25)
	require.NoError(t, err)
	assert.Equal(t, 75, withPoints.Points)

	updated, err := repo.Upsert(ctx, &entity.User{ID: "u-1", Username: "the-one", Email: "neo@example.com", Role: entity.RoleUser})
	require.NoError(t, err)
	assert.Equal(t, "the-one", updated.Username)
	assert.Equal(t, entity.RoleAdmin, updated.Role)
	assert.Equal(t, 75, updated.Points)

	byEmail, err := repo.GetByEmail(ctx, "neo@example.com")
	require.NoError(t, err)
	assert.Equal(t, "u-1", byEmail.ID)

	byName, err := repo.GetByUsername(ctx, "the-one")
	require.NoError(t, err)
	assert.Equal(t, "u-1", byName.ID)

	users, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)

	_, err = repo.UpdateRole(ctx, "ghost", entity.RoleAdmin)
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestUserRepository_EmailUnique(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(setupTestDB(t))

	_, err := repo.Upsert(ctx, &entity.User{ID: "a", Username: "a", Email: "same@example.com"})
	require.NoError(t, err)
	_, err = repo.Upsert(ctx, &entity.User{ID: "b", Username: "b", Email: "same@example.com"})
	assert.Error(t, err)
}

func TestCommentRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewCommentRepository(setupTestDB(t))

	first := &entity.Comment{PostID: 1, AuthorID: "u1", Content: "first"}
	second := &entity.Comment{PostID: 1, AuthorID: "u2", Content: "second"}
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))

	list, err := repo.ListByPost(ctx, 1)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "first", list[0].Content)

	got, err := repo.GetByID(ctx, second.ID)
	require.NoError(t, err)
	assert.Equal(t, "u2", got.AuthorID)

	require.NoError(t, repo.Delete(ctx, first.ID))
	assert.ErrorIs(t, repo.Delete(ctx, first.ID), entity.ErrNotFound)
	_, err = repo.GetByID(ctx, first.ID)
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestSiteConfigRepository_SetIsUpsert(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewSiteConfigRepository(db)

	_, err := repo.Set(ctx, &entity.SiteConfig{Key: entity.ConfigMaintenanceMode, Value: "false", UpdatedBy: "admin-1"})
	require.NoError(t, err)
	second, err := repo.Set(ctx, &entity.SiteConfig{Key: entity.ConfigMaintenanceMode, Value: "true", UpdatedBy: "admin-2", Description: "toggle"})
	require.NoError(t, err)
	assert.Equal(t, "true", second.Value)
	assert.Equal(t, "admin-2", second.UpdatedBy)

	var count int64
	require.NoError(t, db.Model(&model.SiteConfigModel{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	_, err = repo.Set(ctx, &entity.SiteConfig{Key: "banner", Value: "hello"})
	require.NoError(t, err)
	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "banner", all[0].Key)

	_, err = repo.Get(ctx, "missing")
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestAchievementAndActivityRepositories(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	achievements := NewAchievementRepository(db)
	activities := NewActivityRepository(db)

	a := &entity.Achievement{UserID: "u1", Type: "first_flag", Title: "First Blood", Points: 10}
	require.NoError(t, achievements.Create(ctx, a))
	assert.NotZero(t, a.ID)
	assert.False(t, a.UnlockedAt.IsZero())

	list, err := achievements.ListByUser(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, list, 1)

	none, err := achievements.ListByUser(ctx, "u2")
	require.NoError(t, err)
	assert.Empty(t, none)

	user := "u1"
	require.NoError(t, activities.Create(ctx, &entity.UserActivity{UserID: &user, Action: "login"}))
	require.NoError(t, activities.Create(ctx, &entity.UserActivity{Action: "page_view", Metadata: map[string]interface{}{"referrer": "google"}}))

	all, err := activities.List(ctx, "", 10)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "page_view", all[0].Action)
	assert.Nil(t, all[0].UserID)
	assert.Equal(t, "google", all[0].Metadata["referrer"])

	mine, err := activities.List(ctx, "u1", 10)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "login", mine[0].Action)
}

func TestSeoRepository_TrackUpserts(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewSeoRepository(db)

	first, err := repo.Track(ctx, &entity.SeoMetric{URL: "/blog/x", Title: "X", Keywords: []string{"xss"}},
		&entity.UserActivity{Action: "page_view", ResourceType: "page", ResourceID: "/blog/x"})
	require.NoError(t, err)
	assert.Equal(t, 1, first.Views)
	assert.NotNil(t, first.LastCrawled)

	second, err := repo.Track(ctx, &entity.SeoMetric{URL: "/blog/x"}, &entity.UserActivity{Action: "page_view"})
	require.NoError(t, err)
	assert.Equal(t, 2, second.Views)
	assert.Equal(t, "X", second.Title)
	assert.Equal(t, []string{"xss"}, second.Keywords)

	var activities int64
	require.NoError(t, db.Model(&model.UserActivityModel{}).Count(&activities).Error)
	assert.Equal(t, int64(2), activities)

	got, err := repo.Get(ctx, "/blog/x")
	require.NoError(t, err)
	assert.Equal(t, 2, got.Views)

	_, err = repo.Get(ctx, "/nowhere")
	assert.ErrorIs(t, err, entity.ErrNotFound)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
