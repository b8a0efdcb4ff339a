package server

import (
	"errors"
	"net/http"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const strongPassword = "Str0ng!Passw0rd"

func expectUserLookup(mock sqlmock.Sqlmock, username string, rows *sqlmock.Rows) {
	q := regexp.QuoteMeta(`SELECT * FROM "users" WHERE username = $1 ORDER BY "users"."id" LIMIT $2`)
	if rows != nil {
		mock.ExpectQuery(q).WithArgs(username, 1).WillReturnRows(rows)
	} else {
		mock.ExpectQuery(q).WithArgs(username, 1).WillReturnError(gorm.ErrRecordNotFound)
	}
}

func TestRegister(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		app, _, mock := newTestServer(t)

		expectUserLookup(mock, "alice", nil)
		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "users"`)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
		mock.ExpectCommit()

		resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/auth/register", map[string]string{
			"username": "alice",
			"password": strongPassword,
		}))
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		body := decodeBody(t, resp.Body)
		assert.NotEmpty(t, body["token"])

		user, ok := body["user"].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "alice", user["username"])
		_, exposed := user["password"]
		assert.False(t, exposed, "password hash must never be serialized")

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Weak Password", func(t *testing.T) {
		app, _, mock := newTestServer(t)

		resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/auth/register", map[string]string{
			"username": "alice",
			"password": "short",
		}))
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.NoError(t, mock.ExpectationsWereMet(), "no DB access on validation failure")
	})

	t.Run("Invalid Username", func(t *testing.T) {
		app, _, _ := newTestServer(t)

		resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/auth/register", map[string]string{
			"username": "a",
			"password": strongPassword,
		}))
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("Duplicate Username", func(t *testing.T) {
		app, _, mock := newTestServer(t)

		expectUserLookup(mock, "alice",
			sqlmock.NewRows([]string{"id", "username"}).AddRow(1, "alice"))

		resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/auth/register", map[string]string{
			"username": "alice",
			"password": strongPassword,
		}))
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusConflict, resp.StatusCode)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestLogin(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte(strongPassword), bcrypt.MinCost)
	require.NoError(t, err)

	t.Run("Success", func(t *testing.T) {
		app, _, mock := newTestServer(t)

		expectUserLookup(mock, "alice",
			sqlmock.NewRows([]string{"id", "username", "password"}).
				AddRow(1, "alice", string(hash)))

		resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/auth/login", map[string]string{
			"username": "alice",
			"password": strongPassword,
		}))
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		body := decodeBody(t, resp.Body)
		assert.NotEmpty(t, body["token"])
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Wrong Password", func(t *testing.T) {
		app, _, mock := newTestServer(t)

		expectUserLookup(mock, "alice",
			sqlmock.NewRows([]string{"id", "username", "password"}).
				AddRow(1, "alice", string(hash)))

		resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/auth/login", map[string]string{
			"username": "alice",
			"password": "Wr0ng!Passw0rd!",
		}))
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		wrongPW := decodeBody(t, resp.Body)

		// Unknown user must produce the identical error message.
		expectUserLookup(mock, "ghost", nil)
		resp2, err := app.Test(jsonRequest(t, http.MethodPost, "/api/auth/login", map[string]string{
			"username": "ghost",
			"password": strongPassword,
		}))
		require.NoError(t, err)
		defer resp2.Body.Close()

		assert.Equal(t, http.StatusUnauthorized, resp2.StatusCode)
		assert.Equal(t, wrongPW["error"], decodeBody(t, resp2.Body)["error"])
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database Error", func(t *testing.T) {
		app, _, mock := newTestServer(t)

		q := regexp.QuoteMeta(`SELECT * FROM "users" WHERE username = $1 ORDER BY "users"."id" LIMIT $2`)
		mock.ExpectQuery(q).WithArgs("alice", 1).
			WillReturnError(errors.New("connection refused"))

		resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/auth/login", map[string]string{
			"username": "alice",
			"password": strongPassword,
		}))
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		// The underlying cause must not leak into the response.
		body := decodeBody(t, resp.Body)
		assert.NotContains(t, body["error"], "connection refused")
	})
}

func TestLogout(t *testing.T) {
	app, srv, _ := newTestServer(t)

	t.Run("Requires Auth", func(t *testing.T) {
		resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/auth/logout", nil))
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("Success", func(t *testing.T) {
		req := jsonRequest(t, http.MethodPost, "/api/auth/logout", nil)
		req.Header.Set("Authorization", authHeader(t, srv, 1))

		resp, err := app.Test(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})
}
