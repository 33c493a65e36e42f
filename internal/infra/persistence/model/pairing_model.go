package model

import (
	"time"

	"github.com/google/uuid"
)

// PairingModel mirrors the 'pairings' table. Rows are immutable after insert
// except for reality_score.
type PairingModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID          uuid.UUID `gorm:"type:uuid;not null;index"`
	ImageURL        string    `gorm:"type:text;not null"`
	FoodName        string    `gorm:"type:varchar(200);not null"`
	BeverageTag     string    `gorm:"type:varchar(30);not null;index"`
	FlavorPrinciple *string   `gorm:"type:varchar(50);index"`
	ReviewText      *string   `gorm:"type:text"`
	BeverageBrand   *string   `gorm:"type:varchar(100)"`
	FoodBrand       *string   `gorm:"type:varchar(100)"`
	Rating          string    `gorm:"type:varchar(10);not null"`
	RealityScore    *int      `gorm:"type:smallint"`
	CreatedAt       time.Time `gorm:"index:idx_pairings_created_at,sort:desc"`

	Author *ProfileModel `gorm:"foreignKey:UserID;references:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (PairingModel) TableName() string {
	return "pairings"
}
