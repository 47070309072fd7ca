package http

import (
	"net/http"

	"hacktheshell/internal/usecase"
	"hacktheshell/pkg/logger"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	commentUseCase usecase.CommentUseCase
	logger         *logger.Logger
}

func NewCommentHandler(commentUseCase usecase.CommentUseCase, logger *logger.Logger) *CommentHandler {
	return &CommentHandler{
		commentUseCase: commentUseCase,
		logger:         logger,
	}
}

type CreateCommentRequest struct {
	Content string `json:"content" binding:"required,max=5000"`
}

// ListComments godoc
// @Summary      List comments of a blog post
// @Description  Oldest first
// @Tags         comments
// @Produce      json
// @Param        id path int true "Post ID"
// @Success      200  {array}   entity.Comment
// @Failure      404  {object}  map[string]string
// @Router       /posts/{id}/comments [get]
func (h *CommentHandler) ListComments(c *gin.Context) {
	postID, ok := idParam(c, "id")
	if !ok {
		return
	}

	comments, err := h.commentUseCase.ListComments(c.Request.Context(), postID)
	if err != nil {
		respondError(c, h.logger, err, "Post", "fetch comments")
		return
	}
	c.JSON(http.StatusOK, comments)
}

// CreateComment godoc
// @Summary      Comment on a blog post
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Post ID"
// @Param        request body CreateCommentRequest true "Comment"
// @Success      201  {object}  entity.Comment
// @Failure      400  {object}  ValidationErrorResponse
// @Failure      404  {object}  map[string]string
// @Router       /posts/{id}/comments [post]
func (h *CommentHandler) CreateComment(c *gin.Context) {
	postID, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingFailed(c, err)
		return
	}

	comment, err := h.commentUseCase.CreateComment(c.Request.Context(), actorFrom(c), postID, req.Content)
	if err != nil {
		respondError(c, h.logger, err, "Post", "create comment")
		return
	}
	c.JSON(http.StatusCreated, comment)
}

// DeleteComment godoc
// @Summary      Delete a comment
// @Description  Comment author or admin only
// @Tags         comments
// @Security     BearerAuth
// @Param        id path int true "Comment ID"
// @Success      204
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /comments/{id} [delete]
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := h.commentUseCase.DeleteComment(c.Request.Context(), actorFrom(c), id); err != nil {
		respondError(c, h.logger, err, "Comment", "delete comment")
		return
	}
	c.Status(http.StatusNoContent)
}
