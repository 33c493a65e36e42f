package model

import (
	"time"

	"github.com/google/uuid"
)

// LikeModel mirrors the 'pairing_likes' table. The composite primary key is
// the uniqueness constraint that arbitrates concurrent like toggles.
type LikeModel struct {
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	PairingID uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (LikeModel) TableName() string {
	return "pairing_likes"
}

// CommentModel mirrors the 'pairing_comments' table.
type CommentModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null"`
	PairingID uuid.UUID `gorm:"type:uuid;not null;index"`
	Content   string    `gorm:"type:text;not null"`
	CreatedAt time.Time

	Author *ProfileModel `gorm:"foreignKey:UserID;references:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (CommentModel) TableName() string {
	return "pairing_comments"
}
