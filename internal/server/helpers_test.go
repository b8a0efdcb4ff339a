package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"mechmate/internal/config"
	"mechmate/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const testJWTSecret = "test-secret-key-12345678901234567890123456789012"

// setupMockDB creates a GORM *gorm.DB backed by sqlmock for unit tests.
func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{})
	require.NoError(t, err)
	return gormDB, mock
}

// newTestServer wires a Server against a sqlmock DB and registers all
// routes. Redis is absent; caching degrades to direct fetches and auth rate
// limits are skipped outside production.
func newTestServer(t *testing.T) (*fiber.App, *Server, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := setupMockDB(t)

	srv := NewServerWithDeps(&config.Config{
		JWTSecret: testJWTSecret,
		Port:      "0",
		Env:       "test",
	}, db, nil)

	app := fiber.New()
	srv.SetupRoutes(app)
	return app, srv, mock
}

func userFixture(id uint) *models.User {
	return &models.User{ID: id, Username: fmt.Sprintf("user%d", id)}
}

// authHeader issues a real token for the given user.
func authHeader(t *testing.T, srv *Server, userID uint) string {
	t.Helper()
	token, err := srv.generateToken(userFixture(userID))
	require.NoError(t, err)
	return "Bearer " + token
}

func jsonRequest(t *testing.T, method, target string, body interface{}) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeBody(t *testing.T, r io.Reader) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(r).Decode(&body))
	return body
}
