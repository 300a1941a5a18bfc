package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ciao-api/internal/dto"
	"ciao-api/internal/response"
	"ciao-api/internal/service"
)

// AttachmentHandler handles presigned upload URLs and attachment removal
type AttachmentHandler struct {
	attachmentService service.AttachmentService
}

// NewAttachmentHandler creates a new AttachmentHandler
func NewAttachmentHandler(attachmentService service.AttachmentService) *AttachmentHandler {
	return &AttachmentHandler{attachmentService: attachmentService}
}

// GeneratePresignedURL issues a temporary upload URL and a TEMP attachment record
// @Summary Request an upload URL
// @Tags attachments
// @Accept json
// @Produce json
// @Param request body dto.PresignedURLRequest true "File info"
// @Success 201 {object} dto.PresignedURLResponse
// @Security BearerAuth
// @Router /attachments/presigned-url [post]
func (h *AttachmentHandler) GeneratePresignedURL(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dto.PresignedURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	result, err := h.attachmentService.GeneratePresignedURL(c.Request.Context(), userID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, result)
}

// DeleteAttachment removes an attachment the user uploaded
func (h *AttachmentHandler) DeleteAttachment(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	attachmentID, ok := parseUUIDParam(c, "attachmentId")
	if !ok {
		return
	}

	if err := h.attachmentService.DeleteAttachment(c.Request.Context(), userID, attachmentID); err != nil {
		handleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
