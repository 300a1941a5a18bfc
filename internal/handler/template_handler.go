package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ciao-api/internal/domain"
	"ciao-api/internal/dto"
	"ciao-api/internal/response"
	"ciao-api/internal/service"
)

// TemplateHandler handles assignment and project templates
type TemplateHandler struct {
	templateService service.TemplateService
}

// NewTemplateHandler creates a new TemplateHandler
func NewTemplateHandler(templateService service.TemplateService) *TemplateHandler {
	return &TemplateHandler{templateService: templateService}
}

// CreateTemplate creates a reusable field preset
func (h *TemplateHandler) CreateTemplate(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dto.CreateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	template, err := h.templateService.CreateTemplate(c.Request.Context(), userID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, template)
}

// GetTemplate returns one of the user's templates
func (h *TemplateHandler) GetTemplate(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	templateID, ok := parseUUIDParam(c, "templateId")
	if !ok {
		return
	}

	template, err := h.templateService.GetTemplate(c.Request.Context(), userID, templateID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, template)
}

// ListTemplates returns the user's templates, optionally filtered by kind
func (h *TemplateHandler) ListTemplates(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var kind *domain.TemplateKind
	if raw := c.Query("kind"); raw != "" {
		k := domain.TemplateKind(raw)
		if !k.IsValid() {
			response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid kind filter")
			return
		}
		kind = &k
	}

	templates, err := h.templateService.ListTemplates(c.Request.Context(), userID, kind)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, templates)
}

// UpdateTemplate updates a template's name or fields
func (h *TemplateHandler) UpdateTemplate(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	templateID, ok := parseUUIDParam(c, "templateId")
	if !ok {
		return
	}

	var req dto.UpdateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	template, err := h.templateService.UpdateTemplate(c.Request.Context(), userID, templateID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, template)
}

// DeleteTemplate removes a template
func (h *TemplateHandler) DeleteTemplate(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	templateID, ok := parseUUIDParam(c, "templateId")
	if !ok {
		return
	}

	if err := h.templateService.DeleteTemplate(c.Request.Context(), userID, templateID); err != nil {
		handleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
