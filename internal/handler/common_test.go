package handler

import (
	"database/sql"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/bartosz-starzec/Hotel-app-backend/internal/config"
)

// testCfg mirrors the defaults the service ships with, at a bcrypt cost
// cheap enough for tests.
var testCfg = config.Config{
	APIKey:          "test-key",
	JWTSecret:       "test-secret",
	TokenTTLSeconds: 86400,
	BcryptCost:      4,
}

// newMockDB returns a sql.DB backed by sqlmock with exact query matching,
// so tests assert the precise statements the repositories issue.
func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

// newJSONContext builds an echo context carrying a JSON body.
func newJSONContext(method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

const userColumnList = "id, username, password, role, token, name, surname, street, city, postal_code"

func userColumns() []string {
	return strings.Split(userColumnList, ", ")
}
