package model

import "time"

// ShopModel mirrors the 'shops' table. VendorID references vendors.id through
// a foreign key added by the migration, not a GORM association; the composite
// location index backs bounding-box prefilters.
type ShopModel struct {
	ID        int64   `gorm:"primaryKey;autoIncrement"`
	VendorID  int64   `gorm:"not null;index"`
	Name      string  `gorm:"type:varchar(255);not null"`
	Type      string  `gorm:"type:varchar(100);not null"`
	Latitude  float64 `gorm:"not null;index:idx_shops_location,priority:1"`
	Longitude float64 `gorm:"not null;index:idx_shops_location,priority:2"`

	Description      *string `gorm:"type:text"`
	Phone            *string `gorm:"type:varchar(50)"`
	Email            *string `gorm:"type:varchar(255)"`
	Website          *string `gorm:"type:varchar(255)"`
	OpeningHours     *string `gorm:"type:text"`
	BusinessCategory *string `gorm:"type:varchar(100)"`
	Address          *string `gorm:"type:text"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ShopModel) TableName() string {
	return "shops"
}
