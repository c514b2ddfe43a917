package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Irina-Na/ai-stylist/internal/domain"
	"github.com/Irina-Na/ai-stylist/internal/infrastructure/runway"
	"github.com/Irina-Na/ai-stylist/internal/usecase"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	looks    *usecase.LookService
	director domain.LookClient
	scenes   *runway.Builder
	feedback domain.FeedbackStore
}

// NewHandler creates a new HTTP handler
func NewHandler(
	looks *usecase.LookService,
	director domain.LookClient,
	scenes *runway.Builder,
	feedback domain.FeedbackStore,
) *Handler {
	return &Handler{
		looks:    looks,
		director: director,
		scenes:   scenes,
		feedback: feedback,
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "ai-stylist",
		"version": "1.0.0",
	})
}

// GenerateLook turns a free-text fashion request into matched catalog items
func (h *Handler) GenerateLook(c *gin.Context) {
	if h.looks == nil {
		c.JSON(http.StatusNotImplemented, gin.H{"error": "look service not configured"})
		return
	}

	var request usecase.LookRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	response, err := h.looks.BuildLook(c.Request.Context(), &request)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidRequest) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.Error().Err(err).Str("query", request.Query).Msg("look generation failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": "look generation failed"})
		return
	}

	c.JSON(http.StatusOK, response)
}

// SceneRequest is the payload for building a runway scene.
type SceneRequest struct {
	Items         []domain.RunwayItem `json:"items" binding:"required"`
	Preset        string              `json:"preset,omitempty"`
	CoverTitle    string              `json:"coverTitle,omitempty"`
	CoverSubtitle string              `json:"coverSubtitle,omitempty"`
	CoverBadges   []string            `json:"coverBadges,omitempty"`
	Format        string              `json:"format,omitempty"` // "json" (default) or "html"
}

// BuildScene assembles a runway scene package from selected items
func (h *Handler) BuildScene(c *gin.Context) {
	var request SceneRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	scene, err := h.scenes.BuildScene(c.Request.Context(), runway.SceneRequest{
		Items:         request.Items,
		Preset:        request.Preset,
		CoverTitle:    request.CoverTitle,
		CoverSubtitle: request.CoverSubtitle,
		CoverBadges:   request.CoverBadges,
	})
	if err != nil {
		if errors.Is(err, domain.ErrPresetUnknown) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		log.Error().Err(err).Msg("scene build failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "scene build failed"})
		return
	}

	if request.Format == "html" {
		html, err := runway.GenerateHTML(scene)
		if err != nil {
			log.Error().Err(err).Msg("runway html generation failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "runway html generation failed"})
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
		return
	}

	c.JSON(http.StatusOK, scene)
}

// DirectorRequest is a free-text runway director command.
type DirectorRequest struct {
	Command string `json:"command" binding:"required"`
}

// ParseDirectorCommand turns a director command into scene configuration.
// On failure the client keeps its current preset, so the error is explicit
// rather than silently substituted.
func (h *Handler) ParseDirectorCommand(c *gin.Context) {
	var request DirectorRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	command, err := h.director.ParseDirectorCommand(c.Request.Context(), request.Command)
	if err != nil {
		log.Warn().Err(err).Msg("director command not understood")
		c.JSON(http.StatusBadGateway, gin.H{"error": "director command not understood"})
		return
	}

	c.JSON(http.StatusOK, command)
}

// ListPresets returns the available scene presets with descriptions
func (h *Handler) ListPresets(c *gin.Context) {
	names := runway.Presets()
	presets := make([]gin.H, 0, len(names))
	for _, name := range names {
		presets = append(presets, gin.H{
			"name":        name,
			"description": runway.PresetDescription(name),
		})
	}
	c.JSON(http.StatusOK, gin.H{"presets": presets})
}

// FeedbackRequest is one user review of a generated look.
type FeedbackRequest struct {
	UserQuery    string `json:"userQuery" binding:"required"`
	SelectedLook string `json:"selectedLook" binding:"required"`
	Comment      string `json:"comment,omitempty"`
}

// SaveFeedback persists a user's look review
func (h *Handler) SaveFeedback(c *gin.Context) {
	if h.feedback == nil {
		c.JSON(http.StatusNotImplemented, gin.H{"error": "feedback store not configured"})
		return
	}

	var request FeedbackRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	entry := domain.FeedbackEntry{
		UserQuery:    request.UserQuery,
		SelectedLook: request.SelectedLook,
		Comment:      request.Comment,
	}
	if err := h.feedback.Append(c.Request.Context(), entry); err != nil {
		log.Error().Err(err).Msg("feedback save failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "feedback save failed"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": "saved"})
}
