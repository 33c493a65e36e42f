package model

import (
	"time"

	"github.com/google/uuid"
)

// ProfileModel mirrors the 'profiles' table. UserID references users.id (UUID)
// and doubles as the primary key; profiles are 1:1 with accounts.
type ProfileModel struct {
	UserID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username            *string   `gorm:"type:varchar(30);unique"`
	DisplayName         string    `gorm:"type:varchar(50);not null"`
	Bio                 string    `gorm:"type:text"`
	AvatarURL           *string   `gorm:"type:text"`
	BeveragePreferences []string  `gorm:"serializer:json;type:jsonb"`
	AlcoholToggle       string    `gorm:"type:varchar(30);not null"`
	InstagramHandle     *string   `gorm:"type:varchar(30)"`
	TikTokHandle        *string   `gorm:"type:varchar(24)"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProfileModel) TableName() string {
	return "profiles"
}
