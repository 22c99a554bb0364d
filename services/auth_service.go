package services

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/elshafee/Horus-cafee-managment/entity"
	"github.com/elshafee/Horus-cafee-managment/repository"
	"github.com/elshafee/Horus-cafee-managment/utils"
	"gorm.io/gorm"
)

var ErrUserExists = errors.New("user already exists")

// apps fetch the stored image from this prefix; files land in uploadDir
const profileImageURLPrefix = "/static/profile_images/"

// AuthService handles login/registration and profile upkeep.
type AuthService struct {
	userRepo  *repository.UserRepository
	uploadDir string
	jwtSecret string
	jwtTTL    time.Duration
}

func NewAuthService(repo *repository.UserRepository, uploadDir, secret string, ttl time.Duration) *AuthService {
	return &AuthService{
		userRepo:  repo,
		uploadDir: uploadDir,
		jwtSecret: secret,
		jwtTTL:    ttl,
	}
}

// LoginOrRegister logs a staff member in, creating the account on first
// contact. Repeat logins return the stored record untouched; the request's
// name/room are only used when the account does not exist yet.
func (s *AuthService) LoginOrRegister(staffID, staffName, room string) (*entity.User, string, string, error) {
	staffID = strings.TrimSpace(staffID)

	user, err := s.userRepo.FindByStaffID(staffID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", "", err
		}
		user = &entity.User{
			StaffName: strings.TrimSpace(staffName),
			StaffID:   staffID,
			Room:      strings.TrimSpace(room),
			Role:      "staff",
		}
		if err := s.userRepo.Create(user); err != nil {
			return nil, "", "", err
		}
	}

	token, err := utils.GenerateToken(user.StaffID, user.Role, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return nil, "", "", errors.New("cannot generate token")
	}

	imageB64, err := utils.LoadProfileImageBase64(s.uploadDir, staffID)
	if err != nil {
		return nil, "", "", err
	}

	return user, token, imageB64, nil
}

// RegisterWeb is the strict signup used by the web form: a taken staff id is
// rejected instead of silently logging in.
func (s *AuthService) RegisterWeb(staffName, staffID, room string) error {
	staffID = strings.TrimSpace(staffID)

	count, err := s.userRepo.CountByStaffID(staffID)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrUserExists
	}

	user := &entity.User{
		StaffName: strings.TrimSpace(staffName),
		StaffID:   staffID,
		Room:      strings.TrimSpace(room),
		Role:      "staff",
	}
	return s.userRepo.Create(user)
}

// UpdateProfile writes department/room unconditionally. The image is best
// effort: a payload that is too short or fails to decode leaves the stored
// image alone and the update still succeeds.
func (s *AuthService) UpdateProfile(staffID, department, room, imageB64 string) (string, error) {
	imageURL := ""
	if len(imageB64) > 100 {
		filename, err := utils.SaveProfileImage(imageB64, s.uploadDir, staffID)
		if err != nil {
			log.Println("image save error:", err)
		} else {
			imageURL = profileImageURLPrefix + filename
		}
	}

	updates := map[string]any{
		"department": department,
		"room":       room,
	}
	if imageURL != "" {
		updates["profile_image"] = imageURL
	}

	if err := s.userRepo.Update(staffID, updates); err != nil {
		return "", err
	}
	return imageURL, nil
}

// ProfileImage returns the stored image as base64, "" when none exists.
func (s *AuthService) ProfileImage(staffID string) (string, error) {
	return utils.LoadProfileImageBase64(s.uploadDir, staffID)
}
