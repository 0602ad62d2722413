package forum

import "time"

type BoardType string

const (
	BoardPublic  BoardType = "public"
	BoardPrivate BoardType = "private"
)

type Board struct {
	ID          uint   `gorm:"primaryKey"`
	Slug        string `gorm:"uniqueIndex"`
	Name        string
	Description string

	Type               BoardType `gorm:"type:varchar(20);default:'public'"`
	RequiresMembership bool
	IsLocked           bool // read-only: view allowed, posting denied

	CreatedAt time.Time
	UpdatedAt time.Time
}

type Post struct {
	ID      uint `gorm:"primaryKey"`
	BoardID uint `gorm:"index"`
	Board   Board
	UserID  uint `gorm:"index"`
	Title   string
	Body    string

	CreatedAt time.Time
	UpdatedAt time.Time
}
