package configs

import (
	"log"

	"github.com/elshafee/Horus-cafee-managment/entity"
	"gorm.io/gorm"
)

// SeedAdmin creates the dashboard admin account on first boot.
func SeedAdmin(db *gorm.DB, cfg *Config) error {
	if cfg.AdminStaffID == "" {
		log.Println("skip seeding admin: missing ADMIN_STAFF_ID")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("staff_id = ?", cfg.AdminStaffID).Count(&count)
	if count > 0 {
		log.Println("admin already exists:", cfg.AdminStaffID)
		return nil
	}

	admin := entity.User{
		StaffName: cfg.AdminStaffName,
		StaffID:   cfg.AdminStaffID,
		Role:      "admin",
	}
	return db.Create(&admin).Error
}
