package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ciao-api/internal/domain"
	"ciao-api/internal/dto"
	"ciao-api/internal/response"
	"ciao-api/internal/service"
)

// AssignmentHandler handles academic assignment tracking
type AssignmentHandler struct {
	assignmentService service.AssignmentService
}

// NewAssignmentHandler creates a new AssignmentHandler
func NewAssignmentHandler(assignmentService service.AssignmentService) *AssignmentHandler {
	return &AssignmentHandler{assignmentService: assignmentService}
}

// CreateAssignment creates an assignment, optionally with a linked board
// @Summary Create an assignment
// @Tags assignments
// @Accept json
// @Produce json
// @Param request body dto.CreateAssignmentRequest true "Assignment info"
// @Success 201 {object} dto.AssignmentResponse
// @Security BearerAuth
// @Router /assignments [post]
func (h *AssignmentHandler) CreateAssignment(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dto.CreateAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	assignment, err := h.assignmentService.CreateAssignment(c.Request.Context(), userID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, assignment)
}

// GetAssignment returns one of the user's assignments
func (h *AssignmentHandler) GetAssignment(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	assignmentID, ok := parseUUIDParam(c, "assignmentId")
	if !ok {
		return
	}

	assignment, err := h.assignmentService.GetAssignment(c.Request.Context(), userID, assignmentID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, assignment)
}

// ListAssignments returns the user's assignments, optionally filtered by status
func (h *AssignmentHandler) ListAssignments(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var status *domain.AssignmentStatus
	if raw := c.Query("status"); raw != "" {
		s := domain.AssignmentStatus(raw)
		if !s.IsValid() {
			response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid status filter")
			return
		}
		status = &s
	}

	assignments, err := h.assignmentService.ListAssignments(c.Request.Context(), userID, status)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, assignments)
}

// UpdateAssignment updates an assignment's fields
func (h *AssignmentHandler) UpdateAssignment(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	assignmentID, ok := parseUUIDParam(c, "assignmentId")
	if !ok {
		return
	}

	var req dto.UpdateAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	assignment, err := h.assignmentService.UpdateAssignment(c.Request.Context(), userID, assignmentID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, assignment)
}

// DeleteAssignment removes an assignment, leaving any linked board in place
func (h *AssignmentHandler) DeleteAssignment(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	assignmentID, ok := parseUUIDParam(c, "assignmentId")
	if !ok {
		return
	}

	if err := h.assignmentService.DeleteAssignment(c.Request.Context(), userID, assignmentID); err != nil {
		handleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
