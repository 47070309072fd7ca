package http

import (
	"net/http"

	"hacktheshell/internal/entity"
	"hacktheshell/internal/usecase"
	"hacktheshell/pkg/logger"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	postUseCase usecase.PostUseCase
	logger      *logger.Logger
}

func NewPostHandler(postUseCase usecase.PostUseCase, logger *logger.Logger) *PostHandler {
	return &PostHandler{
		postUseCase: postUseCase,
		logger:      logger,
	}
}

type CreatePostRequest struct {
	Slug     string   `json:"slug" binding:"required,max=255"`
	Title    string   `json:"title" binding:"required,max=255"`
	Content  string   `json:"content" binding:"required"`
	Excerpt  string   `json:"excerpt"`
	Category string   `json:"category" binding:"required,max=100"`
	Tags     []string `json:"tags"`
	Status   string   `json:"status" binding:"omitempty,oneof=draft pending published rejected"`
}

type UpdatePostRequest struct {
	Slug     *string   `json:"slug" binding:"omitempty,max=255"`
	Title    *string   `json:"title" binding:"omitempty,max=255"`
	Content  *string   `json:"content"`
	Excerpt  *string   `json:"excerpt"`
	Category *string   `json:"category" binding:"omitempty,max=100"`
	Tags     *[]string `json:"tags"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=draft pending published rejected"`
}

// ListPosts godoc
// @Summary      List blog posts
// @Description  Newest first, optionally filtered by status
// @Tags         posts
// @Produce      json
// @Param        status query string false "Filter by status" Enums(draft, pending, published, rejected)
// @Success      200  {array}   entity.BlogPost
// @Failure      400  {object}  ValidationErrorResponse
// @Failure      500  {object}  map[string]string
// @Router       /posts [get]
func (h *PostHandler) ListPosts(c *gin.Context) {
	posts, err := h.postUseCase.ListPosts(c.Request.Context(), entity.ContentStatus(c.Query("status")))
	if err != nil {
		respondError(c, h.logger, err, "Post", "fetch posts")
		return
	}
	c.JSON(http.StatusOK, posts)
}

// GetPost godoc
// @Summary      Get blog post by ID
// @Description  Increments the view counter and returns the post
// @Tags         posts
// @Produce      json
// @Param        id path int true "Post ID"
// @Success      200  {object}  entity.BlogPost
// @Failure      404  {object}  map[string]string
// @Router       /posts/{id} [get]
func (h *PostHandler) GetPost(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	post, err := h.postUseCase.ViewPost(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err, "Post", "fetch post")
		return
	}
	c.JSON(http.StatusOK, post)
}

// GetPostBySlug godoc
// @Summary      Get blog post by slug
// @Tags         posts
// @Produce      json
// @Param        slug path string true "Post slug"
// @Success      200  {object}  entity.BlogPost
// @Failure      404  {object}  map[string]string
// @Router       /posts/slug/{slug} [get]
func (h *PostHandler) GetPostBySlug(c *gin.Context) {
	post, err := h.postUseCase.ViewPostBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondError(c, h.logger, err, "Post", "fetch post")
		return
	}
	c.JSON(http.StatusOK, post)
}

// CreatePost godoc
// @Summary      Create a blog post
// @Description  The caller becomes the author. Status defaults to draft.
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreatePostRequest true "Post"
// @Success      201  {object}  entity.BlogPost
// @Failure      400  {object}  ValidationErrorResponse
// @Failure      500  {object}  map[string]string
// @Router       /posts [post]
func (h *PostHandler) CreatePost(c *gin.Context) {
	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingFailed(c, err)
		return
	}

	post, err := h.postUseCase.CreatePost(c.Request.Context(), actorFrom(c), &entity.BlogPost{
		Slug:     req.Slug,
		Title:    req.Title,
		Content:  req.Content,
		Excerpt:  req.Excerpt,
		Category: req.Category,
		Tags:     req.Tags,
		Status:   entity.ContentStatus(req.Status),
	})
	if err != nil {
		respondError(c, h.logger, err, "Post", "create post")
		return
	}
	c.JSON(http.StatusCreated, post)
}

// UpdatePost godoc
// @Summary      Update a blog post
// @Description  Only supplied fields change. Author or admin only.
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Post ID"
// @Param        request body UpdatePostRequest true "Changed fields"
// @Success      200  {object}  entity.BlogPost
// @Failure      400  {object}  ValidationErrorResponse
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /posts/{id} [put]
func (h *PostHandler) UpdatePost(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingFailed(c, err)
		return
	}

	post, err := h.postUseCase.UpdatePost(c.Request.Context(), actorFrom(c), id, entity.PostChanges{
		Slug:     req.Slug,
		Title:    req.Title,
		Content:  req.Content,
		Excerpt:  req.Excerpt,
		Category: req.Category,
		Tags:     req.Tags,
	})
	if err != nil {
		respondError(c, h.logger, err, "Post", "update post")
		return
	}
	c.JSON(http.StatusOK, post)
}

// UpdatePostStatus godoc
// @Summary      Change blog post status
// @Description  publishedAt is set when the status becomes published and cleared otherwise
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Post ID"
// @Param        request body UpdateStatusRequest true "New status"
// @Success      200  {object}  entity.BlogPost
// @Failure      400  {object}  ValidationErrorResponse
// @Failure      404  {object}  map[string]string
// @Router       /posts/{id}/status [put]
func (h *PostHandler) UpdatePostStatus(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingFailed(c, err)
		return
	}

	post, err := h.postUseCase.UpdatePostStatus(c.Request.Context(), actorFrom(c), id, entity.ContentStatus(req.Status))
	if err != nil {
		respondError(c, h.logger, err, "Post", "update post status")
		return
	}
	c.JSON(http.StatusOK, post)
}

// DeletePost godoc
// @Summary      Delete a blog post
// @Description  Removes the post and its comments. Author or admin only.
// @Tags         posts
// @Security     BearerAuth
// @Param        id path int true "Post ID"
// @Success      204
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /posts/{id} [delete]
func (h *PostHandler) DeletePost(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := h.postUseCase.DeletePost(c.Request.Context(), actorFrom(c), id); err != nil {
		respondError(c, h.logger, err, "Post", "delete post")
		return
	}
	c.Status(http.StatusNoContent)
}
