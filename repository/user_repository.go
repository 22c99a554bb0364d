package repository

import (
	"github.com/elshafee/Horus-cafee-managment/entity"
	"gorm.io/gorm"
)

// UserRepository talks to the users table only.
type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

// Staff members are always looked up by their staff id, never the row id.
func (r *UserRepository) FindByStaffID(staffID string) (*entity.User, error) {
	var user entity.User
	if err := r.DB.Where("staff_id = ?", staffID).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) CountByStaffID(staffID string) (int64, error) {
	var count int64
	if err := r.DB.Model(&entity.User{}).Where("staff_id = ?", staffID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *UserRepository) Create(user *entity.User) error {
	return r.DB.Create(user).Error
}

// Update applies column updates by staff id. Zero matched rows is not an
// error here; the profile endpoint answers success either way.
func (r *UserRepository) Update(staffID string, updates map[string]any) error {
	return r.DB.Model(&entity.User{}).Where("staff_id = ?", staffID).Updates(updates).Error
}
