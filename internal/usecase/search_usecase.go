package usecase

import (
	"context"
	"strings"

	"hacktheshell/internal/entity"
	"hacktheshell/internal/repo/persistent"
)

type SearchUseCase interface {
	Search(ctx context.Context, query string) ([]entity.SearchResult, error)
}

type searchUseCase struct {
	postRepo persistent.PostRepository
	toolRepo persistent.ToolRepository
}

func NewSearchUseCase(postRepo persistent.PostRepository, toolRepo persistent.ToolRepository) SearchUseCase {
	return &searchUseCase{
		postRepo: postRepo,
		toolRepo: toolRepo,
	}
}

// Search matches published posts and tools of any status. Results are
// unranked: posts first, then tools.
func (uc *searchUseCase) Search(ctx context.Context, query string) ([]entity.SearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptyQuery
	}

	posts, err := uc.postRepo.SearchPublished(ctx, query)
	if err != nil {
		return nil, err
	}
	tools, err := uc.toolRepo.Search(ctx, query)
	if err != nil {
		return nil, err
	}

	results := make([]entity.SearchResult, 0, len(posts)+len(tools))
	for _, p := range posts {
		results = append(results, entity.SearchResult{
			Type:        entity.SearchResultBlog,
			ID:          p.ID,
			Title:       p.Title,
			Slug:        p.Slug,
			Description: p.Excerpt,
			Category:    p.Category,
			Tags:        p.Tags,
			URL:         "/blog/" + p.Slug,
		})
	}
	for _, t := range tools {
		results = append(results, entity.SearchResult{
			Type:        entity.SearchResultTool,
			ID:          t.ID,
			Title:       t.Name,
			Slug:        t.Slug,
			Description: t.Description,
			Category:    t.Category,
			Tags:        t.Tags,
			URL:         "/tools/" + t.Slug,
		})
	}
	return results, nil
}
