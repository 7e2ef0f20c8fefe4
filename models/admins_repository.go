package models

import "gorm.io/gorm"

type AdminsRepository struct {
	db *gorm.DB
}

func NewAdminsRepository(db *gorm.DB) *AdminsRepository {
	return &AdminsRepository{
		db: db,
	}
}

func (r *AdminsRepository) GetAllAdmins() ([]Admin, error) {
	var admins []Admin
	if err := r.db.Find(&admins).Error; err != nil {
		return nil, err
	}
	return admins, nil
}

// CreateAdmin persists the admin and fills in its generated identity.
func (r *AdminsRepository) CreateAdmin(admin *Admin) error {
	return r.db.Create(admin).Error
}
