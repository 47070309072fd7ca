package http

import (
	"net/http"

	"hacktheshell/internal/entity"
	"hacktheshell/internal/usecase"
	"hacktheshell/pkg/logger"

	"github.com/gin-gonic/gin"
)

const maxMediaSize = 50 << 20

type ToolHandler struct {
	toolUseCase usecase.ToolUseCase
	logger      *logger.Logger
}

func NewToolHandler(toolUseCase usecase.ToolUseCase, logger *logger.Logger) *ToolHandler {
	return &ToolHandler{
		toolUseCase: toolUseCase,
		logger:      logger,
	}
}

type CreateToolRequest struct {
	Slug        string             `json:"slug" binding:"required,max=255"`
	Name        string             `json:"name" binding:"required,max=255"`
	Description string             `json:"description" binding:"required"`
	Category    string             `json:"category" binding:"required,max=100"`
	Difficulty  string             `json:"difficulty" binding:"required,oneof=beginner intermediate advanced"`
	Tags        []string           `json:"tags"`
	Screenshots []entity.MediaItem `json:"screenshots"`
	Videos      []entity.MediaItem `json:"videos"`
	Gifs        []entity.MediaItem `json:"gifs"`
	GithubURL   string             `json:"githubUrl" binding:"required,url"`
	OfficialURL string             `json:"officialUrl" binding:"omitempty,url"`
	Stars       int                `json:"stars" binding:"min=0"`
	Status      string             `json:"status" binding:"omitempty,oneof=draft pending published rejected"`
}

type UpdateToolRequest struct {
	Slug        *string             `json:"slug" binding:"omitempty,max=255"`
	Name        *string             `json:"name" binding:"omitempty,max=255"`
	Description *string             `json:"description"`
	Category    *string             `json:"category" binding:"omitempty,max=100"`
	Difficulty  *string             `json:"difficulty" binding:"omitempty,oneof=beginner intermediate advanced"`
	Tags        *[]string           `json:"tags"`
	Screenshots *[]entity.MediaItem `json:"screenshots"`
	Videos      *[]entity.MediaItem `json:"videos"`
	Gifs        *[]entity.MediaItem `json:"gifs"`
	GithubURL   *string             `json:"githubUrl" binding:"omitempty,url"`
	OfficialURL *string             `json:"officialUrl" binding:"omitempty,url"`
	Stars       *int                `json:"stars" binding:"omitempty,min=0"`
}

type UploadMediaRequest struct {
	Kind    string `form:"kind" binding:"required,oneof=screenshot video gif"`
	Caption string `form:"caption" binding:"max=255"`
}

// ListTools godoc
// @Summary      List GitHub tools
// @Tags         github-tools
// @Produce      json
// @Param        status query string false "Filter by status"
// @Param        category query string false "Filter by category"
// @Success      200  {array}   entity.GithubTool
// @Failure      500  {object}  map[string]string
// @Router       /github-tools [get]
func (h *ToolHandler) ListTools(c *gin.Context) {
	tools, err := h.toolUseCase.ListTools(c.Request.Context(), entity.ContentStatus(c.Query("status")), c.Query("category"))
	if err != nil {
		respondError(c, h.logger, err, "Tool", "fetch tools")
		return
	}
	c.JSON(http.StatusOK, tools)
}

// GetTool godoc
// @Summary      Get GitHub tool by ID
// @Description  Increments the view counter and returns the tool
// @Tags         github-tools
// @Produce      json
// @Param        id path int true "Tool ID"
// @Success      200  {object}  entity.GithubTool
// @Failure      404  {object}  map[string]string
// @Router       /github-tools/{id} [get]
func (h *ToolHandler) GetTool(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	tool, err := h.toolUseCase.ViewTool(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err, "Tool", "fetch tool")
		return
	}
	c.JSON(http.StatusOK, tool)
}

// GetToolBySlug godoc
// @Summary      Get GitHub tool by slug
// @Tags         github-tools
// @Produce      json
// @Param        slug path string true "Tool slug"
// @Success      200  {object}  entity.GithubTool
// @Failure      404  {object}  map[string]string
// @Router       /github-tools/slug/{slug} [get]
func (h *ToolHandler) GetToolBySlug(c *gin.Context) {
	tool, err := h.toolUseCase.ViewToolBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondError(c, h.logger, err, "Tool", "fetch tool")
		return
	}
	c.JSON(http.StatusOK, tool)
}

// CreateTool godoc
// @Summary      Create a GitHub tool listing
// @Tags         github-tools
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateToolRequest true "Tool"
// @Success      201  {object}  entity.GithubTool
// @Failure      400  {object}  ValidationErrorResponse
// @Failure      500  {object}  map[string]string
// @Router       /github-tools [post]
func (h *ToolHandler) CreateTool(c *gin.Context) {
	var req CreateToolRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingFailed(c, err)
		return
	}

	tool, err := h.toolUseCase.CreateTool(c.Request.Context(), actorFrom(c), &entity.GithubTool{
		Slug:        req.Slug,
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Difficulty:  entity.Difficulty(req.Difficulty),
		Tags:        req.Tags,
		Screenshots: req.Screenshots,
		Videos:      req.Videos,
		Gifs:        req.Gifs,
		GithubURL:   req.GithubURL,
		OfficialURL: req.OfficialURL,
		Stars:       req.Stars,
		Status:      entity.ContentStatus(req.Status),
	})
	if err != nil {
		respondError(c, h.logger, err, "Tool", "create tool")
		return
	}
	c.JSON(http.StatusCreated, tool)
}

// UpdateTool godoc
// @Summary      Update a GitHub tool listing
// @Tags         github-tools
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Tool ID"
// @Param        request body UpdateToolRequest true "Changed fields"
// @Success      200  {object}  entity.GithubTool
// @Failure      400  {object}  ValidationErrorResponse
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /github-tools/{id} [put]
func (h *ToolHandler) UpdateTool(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req UpdateToolRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingFailed(c, err)
		return
	}

	changes := entity.ToolChanges{
		Slug:        req.Slug,
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Tags:        req.Tags,
		Screenshots: req.Screenshots,
		Videos:      req.Videos,
		Gifs:        req.Gifs,
		GithubURL:   req.GithubURL,
		OfficialURL: req.OfficialURL,
		Stars:       req.Stars,
	}
	if req.Difficulty != nil {
		difficulty := entity.Difficulty(*req.Difficulty)
		changes.Difficulty = &difficulty
	}

	tool, err := h.toolUseCase.UpdateTool(c.Request.Context(), actorFrom(c), id, changes)
	if err != nil {
		respondError(c, h.logger, err, "Tool", "update tool")
		return
	}
	c.JSON(http.StatusOK, tool)
}

// UpdateToolStatus godoc
// @Summary      Change GitHub tool status
// @Tags         github-tools
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Tool ID"
// @Param        request body UpdateStatusRequest true "New status"
// @Success      200  {object}  entity.GithubTool
// @Failure      400  {object}  ValidationErrorResponse
// @Failure      404  {object}  map[string]string
// @Router       /github-tools/{id}/status [put]
func (h *ToolHandler) UpdateToolStatus(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingFailed(c, err)
		return
	}

	tool, err := h.toolUseCase.UpdateToolStatus(c.Request.Context(), actorFrom(c), id, entity.ContentStatus(req.Status))
	if err != nil {
		respondError(c, h.logger, err, "Tool", "update tool status")
		return
	}
	c.JSON(http.StatusOK, tool)
}

// DeleteTool godoc
// @Summary      Delete a GitHub tool listing
// @Tags         github-tools
// @Security     BearerAuth
// @Param        id path int true "Tool ID"
// @Success      204
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /github-tools/{id} [delete]
func (h *ToolHandler) DeleteTool(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := h.toolUseCase.DeleteTool(c.Request.Context(), actorFrom(c), id); err != nil {
		respondError(c, h.logger, err, "Tool", "delete tool")
		return
	}
	c.Status(http.StatusNoContent)
}

// UploadMedia godoc
// @Summary      Upload tool media
// @Description  Stores the file in S3 and appends it to the screenshots, videos or gifs list
// @Tags         github-tools
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Tool ID"
// @Param        file formData file true "Media file"
// @Param        kind formData string true "Media kind" Enums(screenshot, video, gif)
// @Param        caption formData string false "Caption"
// @Success      200  {object}  entity.GithubTool
// @Failure      400  {object}  ValidationErrorResponse
// @Failure      404  {object}  map[string]string
// @Failure      503  {object}  map[string]string
// @Router       /github-tools/{id}/media [post]
func (h *ToolHandler) UploadMedia(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req UploadMediaRequest
	if err := c.ShouldBind(&req); err != nil {
		bindingFailed(c, err)
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		validationFailed(c, FieldError{Field: "file", Message: "is required"})
		return
	}
	if file.Size > maxMediaSize {
		validationFailed(c, FieldError{Field: "file", Message: "must be at most 50MB"})
		return
	}

	tool, err := h.toolUseCase.UploadMedia(c.Request.Context(), actorFrom(c), id, entity.MediaKind(req.Kind), req.Caption, file)
	if err != nil {
		respondError(c, h.logger, err, "Tool", "upload media")
		return
	}
	c.JSON(http.StatusOK, tool)
}
