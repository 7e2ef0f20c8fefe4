package models

import "time"

// Catalogue is a curated collection of products. It exclusively owns its
// products: deleting a catalogue deletes every product it contains.
type Catalogue struct {
	ID            uint   `gorm:"primaryKey"`
	Name          string `gorm:"not null"`
	Description   string
	CoverImageURL string
	CreatedAt     time.Time
	Products      []Product `gorm:"foreignKey:CatalogueID;constraint:OnDelete:CASCADE"`
}

func (c *Catalogue) TableName() string {
	return "catalogues"
}
