package domain

import (
	"time"

	"github.com/google/uuid"
)

// Board represents a kanban workspace owned by its creator
type Board struct {
	BaseModel
	CreatorID   uuid.UUID     `gorm:"type:uuid;not null;index:idx_boards_creator_id" json:"creatorId"`
	Title       string        `gorm:"type:varchar(255);not null" json:"title"`
	Description string        `gorm:"type:text" json:"description"`
	Columns     []Column      `gorm:"foreignKey:BoardID;constraint:OnDelete:CASCADE" json:"columns,omitempty"`
	Members     []BoardMember `gorm:"foreignKey:BoardID;constraint:OnDelete:CASCADE" json:"members,omitempty"`
}

// TableName specifies the table name for Board
func (Board) TableName() string {
	return "boards"
}

// BoardRole represents the capability a member holds on a board
type BoardRole string

const (
	BoardRoleAdmin  BoardRole = "admin"
	BoardRoleEditor BoardRole = "editor"
	BoardRoleViewer BoardRole = "viewer"
)

// IsValid reports whether the role is one of the known board roles
func (r BoardRole) IsValid() bool {
	return r == BoardRoleAdmin || r == BoardRoleEditor || r == BoardRoleViewer
}

// CanEdit reports whether the role allows structural mutation (columns, tasks)
func (r BoardRole) CanEdit() bool {
	return r == BoardRoleAdmin || r == BoardRoleEditor
}

// BoardMember represents a user's membership on a board.
// The creator is seeded with an admin row at board creation, but authorization
// treats the creator as admin even if the row is gone.
type BoardMember struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	BoardID  uuid.UUID `gorm:"type:uuid;not null;index:idx_board_members_board_id;uniqueIndex:uq_board_members_board_user" json:"boardId"`
	UserID   uuid.UUID `gorm:"type:uuid;not null;index:idx_board_members_user_id;uniqueIndex:uq_board_members_board_user" json:"userId"`
	Role     BoardRole `gorm:"type:varchar(20);not null" json:"role"`
	JoinedAt time.Time `gorm:"not null" json:"joinedAt"`
	Board    Board     `gorm:"foreignKey:BoardID;constraint:OnDelete:CASCADE" json:"board,omitempty"`
}

// TableName specifies the table name for BoardMember
func (BoardMember) TableName() string {
	return "board_members"
}
