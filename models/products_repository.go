package models

import (
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ProductsRepository struct {
	db *gorm.DB
}

// ErrProductNotFound is returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

func NewProductsRepository(db *gorm.DB) *ProductsRepository {
	return &ProductsRepository{
		db: db,
	}
}

func (r *ProductsRepository) GetAllProducts() ([]Product, error) {
	var products []Product
	if err := r.db.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *ProductsRepository) GetByID(id uint) (*Product, error) {
	var product Product
	if err := r.db.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err // Other DB error
	}
	return &product, nil
}

// CreateProduct persists the product and fills in its generated identity.
func (r *ProductsRepository) CreateProduct(product *Product) error {
	return r.db.Create(product).Error
}

// UpdateNameAndPrice overwrites only the display name and price of an
// existing product, preserving its identity, owning catalogue and every
// other field. Returns ErrProductNotFound when the identity is unknown.
func (r *ProductsRepository) UpdateNameAndPrice(id uint, name string, price decimal.Decimal) (*Product, error) {
	product, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}
	product.ProductName = name
	product.Price = price
	if err := r.db.Save(product).Error; err != nil {
		return nil, err
	}
	return product, nil
}

func (r *ProductsRepository) ExistsByID(id uint) (bool, error) {
	var count int64
	if err := r.db.Model(&Product{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// DeleteByID removes the product, reporting ErrProductNotFound for an
// unknown identity without touching store state.
func (r *ProductsRepository) DeleteByID(id uint) error {
	exists, err := r.ExistsByID(id)
	if err != nil {
		return err
	}
	if !exists {
		return ErrProductNotFound
	}
	return r.db.Delete(&Product{}, id).Error
}
