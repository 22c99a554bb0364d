package controllers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/elshafee/Horus-cafee-managment/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func doGetWithToken(t *testing.T, r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestAdminOrdersRequiresToken(t *testing.T) {
	r, _, _ := newTestServer(t)

	rec := doGetWithToken(t, r, "/admin/orders", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doGetWithToken(t, r, "/admin/orders", "not-a-token")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminOrdersRequiresAdminRole(t *testing.T) {
	r, _, cfg := newTestServer(t)

	staffToken, err := utils.GenerateToken("emp-7", "staff", cfg.JWTSecret, time.Hour)
	require.NoError(t, err)

	rec := doGetWithToken(t, r, "/admin/orders", staffToken)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAdminOrdersListsEverything(t *testing.T) {
	r, _, cfg := newTestServer(t)

	rec := doJSON(t, r, http.MethodPost, "/order", orderPayload("emp-7", "ob-1", ""))
	require.Equal(t, http.StatusOK, rec.Code)
	rec = doJSON(t, r, http.MethodPost, "/order/status", gin.H{"order_id": 1, "status": "DELIVERED"})
	require.Equal(t, http.StatusOK, rec.Code)

	adminToken, err := utils.GenerateToken("boss", "admin", cfg.JWTSecret, time.Hour)
	require.NoError(t, err)

	// delivered orders vanish from the staff and device views, the admin
	// dashboard still sees them
	rec = doGetWithToken(t, r, "/admin/orders", adminToken)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Success bool `json:"success"`
		Items   []struct {
			ID     uint   `json:"id"`
			Status string `json:"status"`
		} `json:"items"`
	}
	decodeBody(t, rec, &body)
	assert.True(t, body.Success)
	require.Len(t, body.Items, 1)
	assert.Equal(t, "DELIVERED", body.Items[0].Status)

	// status filter
	rec = doGetWithToken(t, r, "/admin/orders?status=PENDING", adminToken)
	require.Equal(t, http.StatusOK, rec.Code)
	decodeBody(t, rec, &body)
	assert.Empty(t, body.Items)
}
