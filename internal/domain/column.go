package domain

import "github.com/google/uuid"

// DefaultColumnTitles are the columns every freshly created board is seeded with,
// in left-to-right order.
var DefaultColumnTitles = []string{"To Do", "In Progress", "Done"}

// Column represents an ordered stage within a board
type Column struct {
	BaseModel
	BoardID  uuid.UUID `gorm:"type:uuid;not null;index:idx_columns_board_id;uniqueIndex:uq_columns_board_position" json:"boardId"`
	Title    string    `gorm:"type:varchar(255);not null" json:"title"`
	Position int       `gorm:"not null;uniqueIndex:uq_columns_board_position" json:"position"`
	Tasks    []Task    `gorm:"foreignKey:ColumnID;constraint:OnDelete:CASCADE" json:"tasks,omitempty"`
}

// TableName specifies the table name for Column
func (Column) TableName() string {
	return "columns"
}
