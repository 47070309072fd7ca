package usecase

import (
	"context"
	"fmt"

	"hacktheshell/internal/entity"
	"hacktheshell/internal/repo/persistent"
)

type CommentUseCase interface {
	ListComments(ctx context.Context, postID uint) ([]*entity.Comment, error)
	CreateComment(ctx context.Context, actor Actor, postID uint, content string) (*entity.Comment, error)
	DeleteComment(ctx context.Context, actor Actor, id uint) error
}

type commentUseCase struct {
	commentRepo persistent.CommentRepository
	postRepo    persistent.PostRepository
}

func NewCommentUseCase(commentRepo persistent.CommentRepository, postRepo persistent.PostRepository) CommentUseCase {
	return &commentUseCase{
		commentRepo: commentRepo,
		postRepo:    postRepo,
	}
}

func (uc *commentUseCase) ListComments(ctx context.Context, postID uint) ([]*entity.Comment, error) {
	if _, err := uc.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}
	return uc.commentRepo.ListByPost(ctx, postID)
}

func (uc *commentUseCase) CreateComment(ctx context.Context, actor Actor, postID uint, content string) (*entity.Comment, error) {
	if _, err := uc.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}

	comment := &entity.Comment{
		PostID:   postID,
		AuthorID: actor.UserID,
		Content:  content,
	}
	if err := uc.commentRepo.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}
	return comment, nil
}

func (uc *commentUseCase) DeleteComment(ctx context.Context, actor Actor, id uint) error {
	comment, err := uc.commentRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !actor.CanModify(comment.AuthorID) {
		return ErrForbidden
	}
	return uc.commentRepo.Delete(ctx, id)
}
