package http

import (
	"net/http"

	"hacktheshell/internal/entity"
	"hacktheshell/internal/usecase"
	"hacktheshell/pkg/logger"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userUseCase usecase.UserUseCase
	logger      *logger.Logger
}

func NewUserHandler(userUseCase usecase.UserUseCase, logger *logger.Logger) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
		logger:      logger,
	}
}

type SyncUserRequest struct {
	Username        string `json:"username" binding:"required,max=255"`
	Email           string `json:"email" binding:"required,email"`
	FirstName       string `json:"firstName" binding:"max=255"`
	LastName        string `json:"lastName" binding:"max=255"`
	ProfileImageURL string `json:"profileImageUrl" binding:"omitempty,url,max=500"`
}

type CreateAchievementRequest struct {
	Type        string `json:"type" binding:"required,max=100"`
	Title       string `json:"title" binding:"required,max=255"`
	Description string `json:"description"`
	Icon        string `json:"icon" binding:"max=100"`
	Points      int    `json:"points" binding:"min=0"`
}

type SetRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=user creator admin"`
}

type AwardPointsRequest struct {
	Points int `json:"points" binding:"required"`
}

// GetCurrentUser godoc
// @Summary      Get the authenticated user
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  entity.User
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /auth/user [get]
func (h *UserHandler) GetCurrentUser(c *gin.Context) {
	user, err := h.userUseCase.GetUser(c.Request.Context(), actorFrom(c).UserID)
	if err != nil {
		respondError(c, h.logger, err, "User", "fetch user")
		return
	}
	c.JSON(http.StatusOK, user)
}

// SyncCurrentUser godoc
// @Summary      Create or update the authenticated user's profile
// @Tags         auth
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body SyncUserRequest true "Profile"
// @Success      200  {object}  entity.User
// @Failure      400  {object}  ValidationErrorResponse
// @Router       /auth/user [post]
func (h *UserHandler) SyncCurrentUser(c *gin.Context) {
	var req SyncUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingFailed(c, err)
		return
	}

	user, err := h.userUseCase.SyncUser(c.Request.Context(), &entity.User{
		ID:              actorFrom(c).UserID,
		Username:        req.Username,
		Email:           req.Email,
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		ProfileImageURL: req.ProfileImageURL,
	})
	if err != nil {
		respondError(c, h.logger, err, "User", "save user")
		return
	}
	c.JSON(http.StatusOK, user)
}

// ListAchievements godoc
// @Summary      List a user's achievements
// @Tags         achievements
// @Produce      json
// @Param        userId path string true "User ID"
// @Success      200  {array}   entity.Achievement
// @Router       /users/{userId}/achievements [get]
func (h *UserHandler) ListAchievements(c *gin.Context) {
	achievements, err := h.userUseCase.ListAchievements(c.Request.Context(), c.Param("userId"))
	if err != nil {
		respondError(c, h.logger, err, "User", "fetch achievements")
		return
	}
	c.JSON(http.StatusOK, achievements)
}

// CreateAchievement godoc
// @Summary      Unlock an achievement
// @Description  The user or an admin. Only admins may attach points, which are credited to the user.
// @Tags         achievements
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        userId path string true "User ID"
// @Param        request body CreateAchievementRequest true "Achievement"
// @Success      201  {object}  entity.Achievement
// @Failure      400  {object}  ValidationErrorResponse
// @Failure      403  {object}  map[string]string
// @Router       /users/{userId}/achievements [post]
func (h *UserHandler) CreateAchievement(c *gin.Context) {
	var req CreateAchievementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingFailed(c, err)
		return
	}

	achievement, err := h.userUseCase.UnlockAchievement(c.Request.Context(), actorFrom(c), c.Param("userId"), &entity.Achievement{
		Type:        req.Type,
		Title:       req.Title,
		Description: req.Description,
		Icon:        req.Icon,
		Points:      req.Points,
	})
	if err != nil {
		respondError(c, h.logger, err, "User", "create achievement")
		return
	}
	c.JSON(http.StatusCreated, achievement)
}

// ListUsers godoc
// @Summary      List users
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   entity.User
// @Router       /admin/users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userUseCase.ListUsers(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err, "User", "fetch users")
		return
	}
	c.JSON(http.StatusOK, users)
}

// SetRole godoc
// @Summary      Change a user's role
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "User ID"
// @Param        request body SetRoleRequest true "Role"
// @Success      200  {object}  entity.User
// @Failure      400  {object}  ValidationErrorResponse
// @Failure      404  {object}  map[string]string
// @Router       /admin/users/{id}/role [put]
func (h *UserHandler) SetRole(c *gin.Context) {
	var req SetRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingFailed(c, err)
		return
	}

	user, err := h.userUseCase.SetRole(c.Request.Context(), c.Param("id"), entity.UserRole(req.Role))
	if err != nil {
		respondError(c, h.logger, err, "User", "update role")
		return
	}
	c.JSON(http.StatusOK, user)
}

// AwardPoints godoc
// @Summary      Add points to a user
// @Description  Negative values deduct points
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "User ID"
// @Param        request body AwardPointsRequest true "Points"
// @Success      200  {object}  entity.User
// @Failure      400  {object}  ValidationErrorResponse
// @Failure      404  {object}  map[string]string
// @Router       /admin/users/{id}/points [post]
func (h *UserHandler) AwardPoints(c *gin.Context) {
	var req AwardPointsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingFailed(c, err)
		return
	}

	user, err := h.userUseCase.AwardPoints(c.Request.Context(), c.Param("id"), req.Points)
	if err != nil {
		respondError(c, h.logger, err, "User", "award points")
		return
	}
	c.JSON(http.StatusOK, user)
}
