package controllers

import (
	"errors"
	"net/http"

	"github.com/elshafee/Horus-cafee-managment/pkg/resp"
	"github.com/elshafee/Horus-cafee-managment/services"

	"github.com/gin-gonic/gin"
)

type LoginRequest struct {
	StaffID   string `json:"staff_id" binding:"required"`
	StaffName string `json:"staff_name"`
	Room      string `json:"room"`
}

type UpdateProfileRequest struct {
	StaffID      string `json:"staff_id" binding:"required"`
	Department   string `json:"department"`
	Room         string `json:"room"`
	ProfileImage string `json:"profile_image"`
}

type AuthController struct{ Svc *services.AuthService }

func NewAuthController(s *services.AuthService) *AuthController { return &AuthController{Svc: s} }

// POST /auth/login
// First contact creates the account; after that the stored record wins over
// whatever name/room the request carries.
func (a *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, token, imageB64, err := a.Svc.LoginOrRegister(req.StaffID, req.StaffName, req.Room)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"staff_name":    user.StaffName,
		"staff_id":      user.StaffID,
		"room":          user.Room,
		"department":    user.Department,
		"profile_image": imageB64,
		"token":         token,
	})
}

// POST /auth/register_web - HTML form submission from the signup page
func (a *AuthController) RegisterWeb(c *gin.Context) {
	staffName := c.PostForm("staff_name")
	staffID := c.PostForm("staff_id")
	room := c.PostForm("room")

	if staffName == "" || staffID == "" {
		resp.BadRequest(c, "staff_name and staff_id are required")
		return
	}

	if err := a.Svc.RegisterWeb(staffName, staffID, room); err != nil {
		if errors.Is(err, services.ErrUserExists) {
			// the form shows this verbatim, keep the wording
			c.JSON(http.StatusOK, gin.H{"success": false, "message": "User already exists with this ID."})
			return
		}
		resp.ServerError(c, err)
		return
	}

	resp.OK(c, gin.H{"message": "Account created!"})
}

// POST /auth/update_profile
func (a *AuthController) UpdateProfile(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	imageURL, err := a.Svc.UpdateProfile(req.StaffID, req.Department, req.Room, req.ProfileImage)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	resp.OK(c, gin.H{"image_url": imageURL})
}

// GET /auth/profile_image/:staff_id
func (a *AuthController) ProfileImage(c *gin.Context) {
	staffID := c.Param("staff_id")

	imageB64, err := a.Svc.ProfileImage(staffID)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	resp.OK(c, gin.H{"profile_image": imageB64})
}
