package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ciao-api/internal/dto"
	"ciao-api/internal/response"
	"ciao-api/internal/service"
)

// MemberHandler handles board membership
type MemberHandler struct {
	memberService service.MemberService
}

// NewMemberHandler creates a new MemberHandler
func NewMemberHandler(memberService service.MemberService) *MemberHandler {
	return &MemberHandler{memberService: memberService}
}

// UpsertMember invites a user by email or changes an existing member's role
// @Summary Add or update a board member
// @Tags members
// @Accept json
// @Produce json
// @Param boardId path string true "Board ID"
// @Param request body dto.UpsertMemberRequest true "Member info"
// @Success 200 {object} dto.MemberResponse
// @Security BearerAuth
// @Router /boards/{boardId}/members [put]
func (h *MemberHandler) UpsertMember(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	boardID, ok := parseUUIDParam(c, "boardId")
	if !ok {
		return
	}

	var req dto.UpsertMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	member, err := h.memberService.AddOrUpdateMember(c.Request.Context(), userID, boardID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, member)
}

// ListMembers returns a board's members in join order
func (h *MemberHandler) ListMembers(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	boardID, ok := parseUUIDParam(c, "boardId")
	if !ok {
		return
	}

	members, err := h.memberService.ListMembers(c.Request.Context(), userID, boardID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, members)
}

// RemoveMember removes a member from a board
func (h *MemberHandler) RemoveMember(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	boardID, ok := parseUUIDParam(c, "boardId")
	if !ok {
		return
	}
	targetID, ok := parseUUIDParam(c, "userId")
	if !ok {
		return
	}

	if err := h.memberService.RemoveMember(c.Request.Context(), userID, boardID, targetID); err != nil {
		handleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
