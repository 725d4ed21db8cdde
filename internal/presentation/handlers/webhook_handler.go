package handlers

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"deptrack-core/internal/application/dto"
	"deptrack-core/internal/application/service"
)

// WebhookHandler handles GitHub webhook deliveries
type WebhookHandler struct {
	webhookService *service.WebhookService
	userService    *service.UserService
	secret         string
}

// NewWebhookHandler creates a new webhook handler. An empty secret disables
// signature verification, for development only.
func NewWebhookHandler(webhookService *service.WebhookService, userService *service.UserService, secret string) *WebhookHandler {
	return &WebhookHandler{
		webhookService: webhookService,
		userService:    userService,
		secret:         secret,
	}
}

// HandlePush handles POST /hooks/github/:id
// @Summary Process a GitHub push webhook for a project
// @Description Verifies the delivery signature and schedules a manifest re-import when the push touched dependency files. Pushes that change no dependency files are rejected.
// @Tags Webhooks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Project ID"
// @Param X-Hub-Signature-256 header string false "HMAC SHA-256 of the body"
// @Param payload body dto.PushEvent true "GitHub push event payload"
// @Success 200 {object} dto.WebhookResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /hooks/github/{id} [post]
func (h *WebhookHandler) HandlePush(c *gin.Context) {
	u, ok := currentUser(c, h.userService)
	if !ok {
		return
	}

	body, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_request",
			Message: "Failed to read request body",
		})
		return
	}

	if !h.verifySignature(body, c.GetHeader("X-Hub-Signature-256")) {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error:   "invalid_signature",
			Message: "Webhook signature verification failed",
		})
		return
	}

	if event := c.GetHeader("X-GitHub-Event"); event != "" && event != "push" {
		c.JSON(http.StatusOK, dto.WebhookResponse{Message: "event ignored"})
		return
	}

	var push dto.PushEvent
	if err := json.Unmarshal(body, &push); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid push payload",
			Details: err.Error(),
		})
		return
	}

	response, err := h.webhookService.HandlePush(c.Request.Context(), u, c.Param("id"), &push)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *WebhookHandler) verifySignature(body []byte, signature string) bool {
	if h.secret == "" {
		return true
	}
	if !strings.HasPrefix(signature, "sha256=") {
		return false
	}

	mac := hmac.New(sha256.New, []byte(h.secret))
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(strings.TrimPrefix(signature, "sha256=")))
}
