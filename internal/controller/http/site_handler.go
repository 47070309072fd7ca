package http

import (
	"net/http"
	"strconv"

	"hacktheshell/internal/usecase"
	"hacktheshell/pkg/logger"

	"github.com/gin-gonic/gin"
)

type SiteHandler struct {
	configUseCase usecase.SiteConfigUseCase
	seoUseCase    usecase.SeoUseCase
	searchUseCase usecase.SearchUseCase
	logger        *logger.Logger
}

func NewSiteHandler(configUseCase usecase.SiteConfigUseCase, seoUseCase usecase.SeoUseCase, searchUseCase usecase.SearchUseCase, logger *logger.Logger) *SiteHandler {
	return &SiteHandler{
		configUseCase: configUseCase,
		seoUseCase:    seoUseCase,
		searchUseCase: searchUseCase,
		logger:        logger,
	}
}

type SetConfigRequest struct {
	Value       string `json:"value" binding:"required"`
	Description string `json:"description"`
}

type MaintenanceRequest struct {
	Enabled *bool `json:"enabled" binding:"required"`
}

type TrackRequest struct {
	URL         string   `json:"url" binding:"required,max=2048"`
	Title       string   `json:"title" binding:"max=255"`
	Description string   `json:"description"`
	Keywords    []string `json:"keywords"`
	Referrer    string   `json:"referrer" binding:"max=2048"`
}

// Search godoc
// @Summary      Search content
// @Description  Case-insensitive substring match over published posts and all tools
// @Tags         search
// @Produce      json
// @Param        q query string true "Search text"
// @Success      200  {array}   entity.SearchResult
// @Failure      400  {object}  ValidationErrorResponse
// @Router       /search [get]
func (h *SiteHandler) Search(c *gin.Context) {
	results, err := h.searchUseCase.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		respondError(c, h.logger, err, "Content", "search")
		return
	}
	c.JSON(http.StatusOK, results)
}

// GetMaintenance godoc
// @Summary      Maintenance mode status
// @Tags         site
// @Produce      json
// @Success      200  {object}  map[string]bool
// @Router       /maintenance [get]
func (h *SiteHandler) GetMaintenance(c *gin.Context) {
	enabled, err := h.configUseCase.IsMaintenanceMode(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err, "Config", "read maintenance mode")
		return
	}
	c.JSON(http.StatusOK, gin.H{"maintenance": enabled})
}

// SetMaintenance godoc
// @Summary      Toggle maintenance mode
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body MaintenanceRequest true "Flag"
// @Success      200  {object}  entity.SiteConfig
// @Failure      400  {object}  ValidationErrorResponse
// @Router       /admin/maintenance [post]
func (h *SiteHandler) SetMaintenance(c *gin.Context) {
	var req MaintenanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingFailed(c, err)
		return
	}

	cfg, err := h.configUseCase.SetMaintenanceMode(c.Request.Context(), actorFrom(c), *req.Enabled)
	if err != nil {
		respondError(c, h.logger, err, "Config", "update maintenance mode")
		return
	}
	h.logger.Info("Maintenance mode set to %t by %s", *req.Enabled, actorFrom(c).UserID)
	c.JSON(http.StatusOK, cfg)
}

// ListConfig godoc
// @Summary      List site config
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   entity.SiteConfig
// @Router       /admin/config [get]
func (h *SiteHandler) ListConfig(c *gin.Context) {
	configs, err := h.configUseCase.ListConfig(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err, "Config", "fetch config")
		return
	}
	c.JSON(http.StatusOK, configs)
}

// GetConfig godoc
// @Summary      Get a site config key
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        key path string true "Config key"
// @Success      200  {object}  entity.SiteConfig
// @Failure      404  {object}  map[string]string
// @Router       /admin/config/{key} [get]
func (h *SiteHandler) GetConfig(c *gin.Context) {
	cfg, err := h.configUseCase.GetConfig(c.Request.Context(), c.Param("key"))
	if err != nil {
		respondError(c, h.logger, err, "Config", "fetch config")
		return
	}
	c.JSON(http.StatusOK, cfg)
}

// SetConfig godoc
// @Summary      Set a site config key
// @Description  Creates the key or overwrites its value. maintenance_mode only accepts true or false
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        key path string true "Config key"
// @Param        request body SetConfigRequest true "Value"
// @Success      200  {object}  entity.SiteConfig
// @Failure      400  {object}  ValidationErrorResponse
// @Router       /admin/config/{key} [put]
func (h *SiteHandler) SetConfig(c *gin.Context) {
	var req SetConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingFailed(c, err)
		return
	}

	cfg, err := h.configUseCase.SetConfig(c.Request.Context(), actorFrom(c), c.Param("key"), req.Value, req.Description)
	if err != nil {
		respondError(c, h.logger, err, "Config", "update config")
		return
	}
	c.JSON(http.StatusOK, cfg)
}

// TrackPageView godoc
// @Summary      Track a page view
// @Description  Upserts the SEO metric for the URL and records the visit
// @Tags         seo
// @Accept       json
// @Produce      json
// @Param        request body TrackRequest true "Page view"
// @Success      200  {object}  entity.SeoMetric
// @Failure      400  {object}  ValidationErrorResponse
// @Router       /seo/track [post]
func (h *SiteHandler) TrackPageView(c *gin.Context) {
	var req TrackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingFailed(c, err)
		return
	}

	metric, err := h.seoUseCase.TrackPageView(c.Request.Context(), usecase.PageView{
		URL:         req.URL,
		Title:       req.Title,
		Description: req.Description,
		Keywords:    req.Keywords,
		Referrer:    req.Referrer,
		UserID:      actorFrom(c).UserID,
		IPAddress:   c.ClientIP(),
		UserAgent:   c.Request.UserAgent(),
	})
	if err != nil {
		respondError(c, h.logger, err, "Metric", "track page view")
		return
	}
	c.JSON(http.StatusOK, metric)
}

// GetMetrics godoc
// @Summary      SEO metrics
// @Description  A single metric when url is given, otherwise all metrics by views
// @Tags         seo
// @Produce      json
// @Param        url query string false "Page URL"
// @Success      200  {object}  entity.SeoMetric
// @Failure      404  {object}  map[string]string
// @Router       /seo/metrics [get]
func (h *SiteHandler) GetMetrics(c *gin.Context) {
	if url := c.Query("url"); url != "" {
		metric, err := h.seoUseCase.GetMetric(c.Request.Context(), url)
		if err != nil {
			respondError(c, h.logger, err, "Metric", "fetch metric")
			return
		}
		c.JSON(http.StatusOK, metric)
		return
	}

	metrics, err := h.seoUseCase.ListMetrics(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err, "Metric", "fetch metrics")
		return
	}
	c.JSON(http.StatusOK, metrics)
}

// ListActivity godoc
// @Summary      Recent user activity
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        userId query string false "Only this user"
// @Param        limit query int false "Max rows (default 50, max 500)"
// @Success      200  {array}   entity.UserActivity
// @Router       /admin/activity [get]
func (h *SiteHandler) ListActivity(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			validationFailed(c, FieldError{Field: "limit", Message: "must be a non-negative integer"})
			return
		}
		limit = n
	}

	activity, err := h.seoUseCase.ListActivity(c.Request.Context(), c.Query("userId"), limit)
	if err != nil {
		respondError(c, h.logger, err, "Activity", "fetch activity")
		return
	}
	c.JSON(http.StatusOK, activity)
}
