package usecase

import (
	"context"
	"fmt"
	"time"

	"hacktheshell/internal/entity"
	"hacktheshell/internal/repo/persistent"
	"hacktheshell/pkg/logger"
	"hacktheshell/pkg/queue"
)

type PostUseCase interface {
	ListPosts(ctx context.Context, status entity.ContentStatus) ([]*entity.BlogPost, error)
	ViewPost(ctx context.Context, id uint) (*entity.BlogPost, error)
	ViewPostBySlug(ctx context.Context, slug string) (*entity.BlogPost, error)
	CreatePost(ctx context.Context, actor Actor, post *entity.BlogPost) (*entity.BlogPost, error)
	UpdatePost(ctx context.Context, actor Actor, id uint, changes entity.PostChanges) (*entity.BlogPost, error)
	UpdatePostStatus(ctx context.Context, actor Actor, id uint, status entity.ContentStatus) (*entity.BlogPost, error)
	DeletePost(ctx context.Context, actor Actor, id uint) error
}

type postUseCase struct {
	postRepo  persistent.PostRepository
	publisher EventPublisher
	logger    *logger.Logger
}

func NewPostUseCase(postRepo persistent.PostRepository, publisher EventPublisher, logger *logger.Logger) PostUseCase {
	return &postUseCase{
		postRepo:  postRepo,
		publisher: publisher,
		logger:    logger,
	}
}

func (uc *postUseCase) ListPosts(ctx context.Context, status entity.ContentStatus) ([]*entity.BlogPost, error) {
	if status != "" && !status.Valid() {
		return nil, ErrInvalidStatus
	}
	return uc.postRepo.List(ctx, status)
}

// ViewPost counts a view and returns the post including that view.
func (uc *postUseCase) ViewPost(ctx context.Context, id uint) (*entity.BlogPost, error) {
	if err := uc.postRepo.IncrementViews(ctx, id); err != nil {
		return nil, err
	}
	return uc.postRepo.GetByID(ctx, id)
}

func (uc *postUseCase) ViewPostBySlug(ctx context.Context, slug string) (*entity.BlogPost, error) {
	if err := uc.postRepo.IncrementViewsBySlug(ctx, slug); err != nil {
		return nil, err
	}
	return uc.postRepo.GetBySlug(ctx, slug)
}

func (uc *postUseCase) CreatePost(ctx context.Context, actor Actor, post *entity.BlogPost) (*entity.BlogPost, error) {
	if post.Status == "" {
		post.Status = entity.StatusDraft
	}
	if !post.Status.Valid() {
		return nil, ErrInvalidStatus
	}

	post.ID = 0
	post.Views = 0
	post.AuthorID = actor.UserID
	post.PublishedAt = nil
	if post.Status == entity.StatusPublished {
		now := time.Now()
		post.PublishedAt = &now
	}

	if err := uc.postRepo.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	if post.Status == entity.StatusPublished {
		uc.publishPublished(post)
	}
	return post, nil
}

func (uc *postUseCase) UpdatePost(ctx context.Context, actor Actor, id uint, changes entity.PostChanges) (*entity.BlogPost, error) {
	post, err := uc.postRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.CanModify(post.AuthorID) {
		return nil, ErrForbidden
	}
	if changes.Empty() {
		return post, nil
	}
	return uc.postRepo.Update(ctx, id, changes)
}

// UpdatePostStatus sets the status; publishedAt follows it, set when the post
// becomes published and cleared otherwise.
func (uc *postUseCase) UpdatePostStatus(ctx context.Context, actor Actor, id uint, status entity.ContentStatus) (*entity.BlogPost, error) {
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	post, err := uc.postRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.CanModify(post.AuthorID) {
		return nil, ErrForbidden
	}

	var publishedAt *time.Time
	if status == entity.StatusPublished {
		now := time.Now()
		publishedAt = &now
	}

	updated, err := uc.postRepo.UpdateStatus(ctx, id, status, publishedAt)
	if err != nil {
		return nil, err
	}

	if status == entity.StatusPublished && post.Status != entity.StatusPublished {
		uc.publishPublished(updated)
	}
	return updated, nil
}

func (uc *postUseCase) DeletePost(ctx context.Context, actor Actor, id uint) error {
	post, err := uc.postRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !actor.CanModify(post.AuthorID) {
		return ErrForbidden
	}
	return uc.postRepo.Delete(ctx, id)
}

func (uc *postUseCase) publishPublished(post *entity.BlogPost) {
	if uc.publisher == nil {
		return
	}

	event := map[string]interface{}{
		"type":      queue.RoutingPostPublished,
		"post_id":   post.ID,
		"slug":      post.Slug,
		"title":     post.Title,
		"category":  post.Category,
		"author_id": post.AuthorID,
	}

	go func() {
		if err := uc.publisher.PublishEvent(queue.RoutingPostPublished, event); err != nil {
			uc.logger.Error("[CONTENT EVENTS] Failed to publish %s for post_id=%d: %v", queue.RoutingPostPublished, post.ID, err)
		}
	}()
}
