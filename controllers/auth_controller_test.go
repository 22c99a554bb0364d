package controllers_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/elshafee/Horus-cafee-managment/entity"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginMissingStaffID(t *testing.T) {
	r, _, _ := newTestServer(t)

	rec := doJSON(t, r, http.MethodPost, "/auth/login", gin.H{"staff_name": "Ahmed"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLoginCreatesUserOnce(t *testing.T) {
	r, db, _ := newTestServer(t)

	rec := doJSON(t, r, http.MethodPost, "/auth/login", gin.H{
		"staff_id": "emp-7", "staff_name": "Ahmed", "room": "304",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Success      bool   `json:"success"`
		StaffName    string `json:"staff_name"`
		StaffID      string `json:"staff_id"`
		Room         string `json:"room"`
		ProfileImage string `json:"profile_image"`
		Token        string `json:"token"`
	}
	decodeBody(t, rec, &body)
	assert.True(t, body.Success)
	assert.Equal(t, "Ahmed", body.StaffName)
	assert.Equal(t, "emp-7", body.StaffID)
	assert.Equal(t, "304", body.Room)
	assert.Empty(t, body.ProfileImage)
	assert.NotEmpty(t, body.Token)

	// second login: no new row, stored record wins
	rec = doJSON(t, r, http.MethodPost, "/auth/login", gin.H{
		"staff_id": "emp-7", "staff_name": "Different Name", "room": "999",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	decodeBody(t, rec, &body)
	assert.Equal(t, "Ahmed", body.StaffName)
	assert.Equal(t, "304", body.Room)

	var count int64
	db.Model(&entity.User{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func postForm(t *testing.T, r *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestRegisterWebDuplicateMessage(t *testing.T) {
	r, _, _ := newTestServer(t)

	form := url.Values{"staff_name": {"Ahmed"}, "staff_id": {"emp-7"}, "room": {"304"}}

	rec := postForm(t, r, "/auth/register_web", form)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	decodeBody(t, rec, &body)
	assert.True(t, body.Success)
	assert.Equal(t, "Account created!", body.Message)

	rec = postForm(t, r, "/auth/register_web", form)
	require.Equal(t, http.StatusOK, rec.Code)
	decodeBody(t, rec, &body)
	assert.False(t, body.Success)
	assert.Equal(t, "User already exists with this ID.", body.Message)
}

func TestRegisterWebMissingFields(t *testing.T) {
	r, _, _ := newTestServer(t)

	rec := postForm(t, r, "/auth/register_web", url.Values{"staff_name": {"Ahmed"}})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateProfileAndFetchImage(t *testing.T) {
	r, db, _ := newTestServer(t)

	rec := doJSON(t, r, http.MethodPost, "/auth/login", gin.H{"staff_id": "emp-7", "staff_name": "Ahmed"})
	require.Equal(t, http.StatusOK, rec.Code)

	imageB64 := strings.Repeat("QUJD", 40) // valid base64, > 100 chars
	rec = doJSON(t, r, http.MethodPost, "/auth/update_profile", gin.H{
		"staff_id": "emp-7", "department": "IT", "room": "305", "profile_image": imageB64,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Success  bool   `json:"success"`
		ImageURL string `json:"image_url"`
	}
	decodeBody(t, rec, &body)
	assert.True(t, body.Success)
	assert.Equal(t, "/static/profile_images/emp-7.jpg", body.ImageURL)

	var user entity.User
	require.NoError(t, db.Where("staff_id = ?", "emp-7").First(&user).Error)
	assert.Equal(t, "IT", user.Department)
	assert.Equal(t, "305", user.Room)

	rec = doGet(t, r, "/auth/profile_image/emp-7")
	require.Equal(t, http.StatusOK, rec.Code)
	var img struct {
		Success      bool   `json:"success"`
		ProfileImage string `json:"profile_image"`
	}
	decodeBody(t, rec, &img)
	assert.True(t, img.Success)
	assert.Equal(t, imageB64, img.ProfileImage)
}
