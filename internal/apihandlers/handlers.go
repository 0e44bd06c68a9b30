package apihandlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"mentiongate/internal/models"
	"mentiongate/internal/services"
)

type APIHandler struct {
	MentionService *services.MentionService
}

func NewAPIHandler(ms *services.MentionService) *APIHandler {
	return &APIHandler{MentionService: ms}
}

// ProcessMentionRequest is the expected JSON body for POST /process-mention.
type ProcessMentionRequest struct {
	UserCommand   string         `json:"userCommand"`
	OriginalTweet string         `json:"originalTweet"`
	Metadata      map[string]any `json:"metadata"`
}

// ProcessMentionHandler handles POST /process-mention.
func (h *APIHandler) ProcessMentionHandler(c *gin.Context) {
	var req ProcessMentionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	result, err := h.MentionService.ProcessMention(c.Request.Context(), services.ProcessMentionParams{
		UserCommand:   req.UserCommand,
		OriginalTweet: req.OriginalTweet,
		Metadata:      req.Metadata,
	})
	if err != nil {
		if errors.Is(err, models.ErrValidation) {
			BadRequest(c, "Missing required fields: userCommand and originalTweet")
			return
		}
		log.Errorf("ProcessMentionHandler: %v", err)
		Internal(c, "Failed to process mention", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"category": result.Category,
		"result":   result.Result,
	})
}

// HealthHandler handles GET /health.
func (h *APIHandler) HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
