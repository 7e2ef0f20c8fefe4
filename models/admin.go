package models

// Admin represents a back-office administrator account.
// The identity is assigned by the database on first insert and never changes.
type Admin struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"not null"`
}

func (a *Admin) TableName() string {
	return "admins"
}
