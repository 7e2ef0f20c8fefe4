package models

import (
	"time"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// Product is the canonical persisted form of a catalogue entry.
// The storefront API serves it in full; the admin catalogue API serves a
// reduced item view (code, price, type) of the same record.
//
// The Catalogue back-reference exists only for foreign-key resolution and
// must never appear in outward JSON; response shaping in the handlers keeps
// it out of both API versions.
type Product struct {
	ID          uint       `gorm:"primaryKey"`
	CatalogueID uint       `gorm:"index"`
	Catalogue   *Catalogue `gorm:"foreignKey:CatalogueID"`
	Code        string     `gorm:"not null"`
	ProductName string
	Description string
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Type        string
	Material    string
	Weight      string
	ImageURLs pq.StringArray `gorm:"type:text[]"`
	// Gates storefront visibility only; unavailable products stay in the
	// store. The handlers own the default, not a gorm default tag, so an
	// explicit false survives the insert.
	IsAvailable bool
	CreatedAt   time.Time
}

func (p *Product) TableName() string {
	return "products"
}
