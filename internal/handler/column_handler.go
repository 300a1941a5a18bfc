package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ciao-api/internal/dto"
	"ciao-api/internal/response"
	"ciao-api/internal/service"
)

// ColumnHandler handles board column CRUD
type ColumnHandler struct {
	columnService service.ColumnService
}

// NewColumnHandler creates a new ColumnHandler
func NewColumnHandler(columnService service.ColumnService) *ColumnHandler {
	return &ColumnHandler{columnService: columnService}
}

// CreateColumn appends a column to a board
func (h *ColumnHandler) CreateColumn(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	boardID, ok := parseUUIDParam(c, "boardId")
	if !ok {
		return
	}

	var req dto.CreateColumnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	column, err := h.columnService.CreateColumn(c.Request.Context(), userID, boardID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, column)
}

// ListColumns returns a board's columns in position order
func (h *ColumnHandler) ListColumns(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	boardID, ok := parseUUIDParam(c, "boardId")
	if !ok {
		return
	}

	columns, err := h.columnService.ListColumns(c.Request.Context(), userID, boardID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, columns)
}

// UpdateColumn renames or repositions a column
func (h *ColumnHandler) UpdateColumn(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	columnID, ok := parseUUIDParam(c, "columnId")
	if !ok {
		return
	}

	var req dto.UpdateColumnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	column, err := h.columnService.UpdateColumn(c.Request.Context(), userID, columnID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, column)
}

// DeleteColumn removes a column and its tasks
func (h *ColumnHandler) DeleteColumn(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	columnID, ok := parseUUIDParam(c, "columnId")
	if !ok {
		return
	}

	if err := h.columnService.DeleteColumn(c.Request.Context(), userID, columnID); err != nil {
		handleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
