package models

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrCatalogueNotFound is returned when a catalogue is not found.
var ErrCatalogueNotFound = errors.New("catalogue not found")

type CataloguesRepository struct {
	db *gorm.DB
}

func NewCataloguesRepository(db *gorm.DB) *CataloguesRepository {
	return &CataloguesRepository{
		db: db,
	}
}

func (r *CataloguesRepository) GetAllCatalogues() ([]Catalogue, error) {
	var catalogues []Catalogue
	if err := r.db.
		Preload("Products").
		Find(&catalogues).Error; err != nil {
		return nil, err
	}
	return catalogues, nil
}

func (r *CataloguesRepository) GetByID(id uint) (*Catalogue, error) {
	var catalogue Catalogue
	if err := r.db.
		Preload("Products").
		First(&catalogue, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCatalogueNotFound
		}
		return nil, err
	}
	return &catalogue, nil
}

// CreateCatalogue persists the catalogue together with its embedded products
// in one cascading insert. Every product receives the new catalogue's
// identity as its owning reference, and its own generated identity.
func (r *CataloguesRepository) CreateCatalogue(catalogue *Catalogue) error {
	return r.db.Create(catalogue).Error
}

// DeleteCatalogue removes the catalogue and every product it owns.
// Returns ErrCatalogueNotFound when the identity is unknown, leaving
// store state untouched.
func (r *CataloguesRepository) DeleteCatalogue(id uint) error {
	var catalogue Catalogue
	if err := r.db.First(&catalogue, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCatalogueNotFound
		}
		return err
	}
	return r.db.Select(clause.Associations).Delete(&catalogue).Error
}
