package handler

import (
	"net/http"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bartosz-starzec/Hotel-app-backend/internal/repository"
)

func newUserHandler(t *testing.T) (*UserHandler, sqlmock.Sqlmock) {
	db, mock := newMockDB(t)
	return NewUserHandler(repository.NewUserRepo(db)), mock
}

func TestListUsers(t *testing.T) {
	h, mock := newUserHandler(t)
	rows := sqlmock.NewRows(userColumns()).
		AddRow(1, "alice", "$2a$04$hash", "admin", nil, "Alice", "Nowak", "", "", "").
		AddRow(2, "bob12345", "$2a$04$hash2", "user", "some-token", "", "", "", "", "")
	mock.ExpectQuery("SELECT " + userColumnList + " FROM users ORDER BY id ASC").
		WillReturnRows(rows)

	c, rec := newJSONContext(http.MethodGet, "/users", "")
	require.NoError(t, h.List(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `"username":"alice"`)
	// A user who never logged in carries a null token.
	assert.Contains(t, body, `"token":null`)
	assert.Contains(t, body, `"token":"some-token"`)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateProfile_Ack(t *testing.T) {
	h, mock := newUserHandler(t)
	mock.ExpectExec("UPDATE users SET name=?, surname=?, street=?, city=?, postal_code=? WHERE id=?").
		WithArgs("Jan", "Kowalski", "Polna 1", "Warszawa", "00-001", 2).
		WillReturnResult(sqlmock.NewResult(0, 1))

	c, rec := newJSONContext(http.MethodPut, "/users/2/update",
		`{"name":"Jan","surname":"Kowalski","street":"Polna 1","city":"Warszawa","postalCode":"00-001"}`)
	c.SetParamNames("id")
	c.SetParamValues("2")
	require.NoError(t, h.UpdateProfile(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "User modified with ID: 2", rec.Body.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteUser_Ack(t *testing.T) {
	h, mock := newUserHandler(t)
	mock.ExpectExec("DELETE FROM users WHERE id=?").
		WithArgs(2).
		WillReturnResult(sqlmock.NewResult(0, 1))

	c, rec := newJSONContext(http.MethodDelete, "/users/2/delete", "")
	c.SetParamNames("id")
	c.SetParamValues("2")
	require.NoError(t, h.Delete(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "User deleted with ID: 2", rec.Body.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}
