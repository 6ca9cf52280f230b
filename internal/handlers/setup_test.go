package handlers_test

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/allanebarua/Tenant-Management-System/internal/auth"
	"github.com/allanebarua/Tenant-Management-System/internal/config"
	dbpkg "github.com/allanebarua/Tenant-Management-System/internal/db"
	"github.com/allanebarua/Tenant-Management-System/internal/models"
	"github.com/allanebarua/Tenant-Management-System/internal/routes"
)

func newTestServer(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	// A pooled second connection would see a different in-memory DB.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, dbpkg.Migrate(db))

	r := gin.New()
	routes.RegisterRoutes(r, db, &config.Config{})
	return r, db
}

type userOpt func(*models.User)

func withLandlord(landlord *models.User) userOpt {
	return func(u *models.User) {
		u.LandlordID = &landlord.ID
	}
}

func inactive() userOpt {
	return func(u *models.User) {
		u.IsActive = false
	}
}

func createUser(t *testing.T, db *gorm.DB, username, password string, userType models.UserType, opts ...userOpt) *models.User {
	t.Helper()

	hashed, err := auth.HashPassword(password)
	require.NoError(t, err)

	u := &models.User{
		Username: username,
		Password: hashed,
		UserType: userType,
		IsActive: true,
	}
	for _, opt := range opts {
		opt(u)
	}
	require.NoError(t, db.Create(u).Error)

	token := &models.AuthToken{
		Key:    auth.NewTokenKey(),
		UserID: u.ID,
	}
	require.NoError(t, db.Create(token).Error)

	return u
}

func createContact(t *testing.T, db *gorm.DB, owner *models.User, contactType models.ContactType, value string) *models.Contact {
	t.Helper()

	c := &models.Contact{
		OwnerID:      owner.ID,
		ContactType:  contactType,
		ContactValue: value,
		IsActive:     true,
	}
	require.NoError(t, db.Create(c).Error)
	return c
}

func basicAuth(username, password string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(username+":"+password))
}

func tokenFor(t *testing.T, db *gorm.DB, userID uint) string {
	t.Helper()

	var token models.AuthToken
	require.NoError(t, db.Where("user_id = ?", userID).First(&token).Error)
	return "Bearer " + token.Key
}

func doRequest(t *testing.T, r *gin.Engine, method, path, authHeader string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}
