package entity

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	StaffName  string `json:"staff_name"`
	StaffID    string `gorm:"uniqueIndex;not null" json:"staff_id"`
	Room       string `json:"room"`
	Department string `json:"department"`

	// URL path to the stored image file, never the raw bytes
	ProfileImage string `json:"profile_image"`

	Role string `gorm:"not null;default:staff" json:"role"`
}
