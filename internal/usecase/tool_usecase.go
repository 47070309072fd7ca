package usecase

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"hacktheshell/internal/entity"
	"hacktheshell/internal/repo/persistent"
	"hacktheshell/pkg/logger"

	"github.com/google/uuid"
)

type ToolUseCase interface {
	ListTools(ctx context.Context, status entity.ContentStatus, category string) ([]*entity.GithubTool, error)
	ViewTool(ctx context.Context, id uint) (*entity.GithubTool, error)
	ViewToolBySlug(ctx context.Context, slug string) (*entity.GithubTool, error)
	CreateTool(ctx context.Context, actor Actor, tool *entity.GithubTool) (*entity.GithubTool, error)
	UpdateTool(ctx context.Context, actor Actor, id uint, changes entity.ToolChanges) (*entity.GithubTool, error)
	UpdateToolStatus(ctx context.Context, actor Actor, id uint, status entity.ContentStatus) (*entity.GithubTool, error)
	DeleteTool(ctx context.Context, actor Actor, id uint) error
	UploadMedia(ctx context.Context, actor Actor, id uint, kind entity.MediaKind, caption string, file *multipart.FileHeader) (*entity.GithubTool, error)
}

type toolUseCase struct {
	toolRepo persistent.ToolRepository
	uploader MediaUploader
	logger   *logger.Logger
}

func NewToolUseCase(toolRepo persistent.ToolRepository, uploader MediaUploader, logger *logger.Logger) ToolUseCase {
	return &toolUseCase{
		toolRepo: toolRepo,
		uploader: uploader,
		logger:   logger,
	}
}

func (uc *toolUseCase) ListTools(ctx context.Context, status entity.ContentStatus, category string) ([]*entity.GithubTool, error) {
	if status != "" && !status.Valid() {
		return nil, ErrInvalidStatus
	}
	return uc.toolRepo.List(ctx, status, category)
}

func (uc *toolUseCase) ViewTool(ctx context.Context, id uint) (*entity.GithubTool, error) {
	if err := uc.toolRepo.IncrementViews(ctx, id); err != nil {
		return nil, err
	}
	return uc.toolRepo.GetByID(ctx, id)
}

func (uc *toolUseCase) ViewToolBySlug(ctx context.Context, slug string) (*entity.GithubTool, error) {
	if err := uc.toolRepo.IncrementViewsBySlug(ctx, slug); err != nil {
		return nil, err
	}
	return uc.toolRepo.GetBySlug(ctx, slug)
}

func (uc *toolUseCase) CreateTool(ctx context.Context, actor Actor, tool *entity.GithubTool) (*entity.GithubTool, error) {
	if tool.Status == "" {
		tool.Status = entity.StatusPublished
	}
	if !tool.Status.Valid() {
		return nil, ErrInvalidStatus
	}

	tool.ID = 0
	tool.Views = 0
	tool.AuthorID = actor.UserID

	if err := uc.toolRepo.Create(ctx, tool); err != nil {
		return nil, fmt.Errorf("failed to create tool: %w", err)
	}
	return tool, nil
}

func (uc *toolUseCase) UpdateTool(ctx context.Context, actor Actor, id uint, changes entity.ToolChanges) (*entity.GithubTool, error) {
	if _, err := uc.ownedTool(ctx, actor, id); err != nil {
		return nil, err
	}
	return uc.toolRepo.Update(ctx, id, changes)
}

func (uc *toolUseCase) UpdateToolStatus(ctx context.Context, actor Actor, id uint, status entity.ContentStatus) (*entity.GithubTool, error) {
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}
	if _, err := uc.ownedTool(ctx, actor, id); err != nil {
		return nil, err
	}
	return uc.toolRepo.UpdateStatus(ctx, id, status)
}

func (uc *toolUseCase) DeleteTool(ctx context.Context, actor Actor, id uint) error {
	if _, err := uc.ownedTool(ctx, actor, id); err != nil {
		return err
	}
	return uc.toolRepo.Delete(ctx, id)
}

// UploadMedia stores the file in object storage and appends its URL to the
// media list selected by kind.
func (uc *toolUseCase) UploadMedia(ctx context.Context, actor Actor, id uint, kind entity.MediaKind, caption string, file *multipart.FileHeader) (*entity.GithubTool, error) {
	if !kind.Valid() {
		return nil, ErrInvalidMediaKind
	}
	if uc.uploader == nil {
		return nil, ErrStorageUnavailable
	}
	if _, err := uc.ownedTool(ctx, actor, id); err != nil {
		return nil, err
	}

	src, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer src.Close()

	fileKey := fmt.Sprintf("tools/%d/%ss/%s%s", id, kind, uuid.New().String(), strings.ToLower(filepath.Ext(file.Filename)))
	contentType := file.Header.Get("Content-Type")
	if contentType == "" {
		contentType = defaultContentType(kind)
	}

	url, err := uc.uploader.UploadFile(fileKey, src, contentType)
	if err != nil {
		return nil, fmt.Errorf("failed to upload media: %w", err)
	}

	uc.logger.Info("Uploaded %s for tool %d to %s", kind, id, url)
	return uc.toolRepo.AppendMedia(ctx, id, kind, entity.MediaItem{URL: url, Caption: caption})
}

func (uc *toolUseCase) ownedTool(ctx context.Context, actor Actor, id uint) (*entity.GithubTool, error) {
	tool, err := uc.toolRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.CanModify(tool.AuthorID) {
		return nil, ErrForbidden
	}
	return tool, nil
}

func defaultContentType(kind entity.MediaKind) string {
	switch kind {
	case entity.MediaVideo:
		return "video/mp4"
	case entity.MediaGif:
		return "image/gif"
	}
	return "image/png"
}
