package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleCredentials struct {
	Username string `json:"username" validate:"required,min=1"`
	Password string `json:"password" validate:"required,min=8"`
}

type sampleRole struct {
	Role string `json:"role" validate:"required,oneof=user admin"`
}

func TestStruct_Valid(t *testing.T) {
	errs := Struct(sampleCredentials{Username: "alice", Password: "password1"})
	assert.Nil(t, errs)
}

func TestStruct_MissingAndShortFields(t *testing.T) {
	errs := Struct(sampleCredentials{Password: "short"})
	require.Len(t, errs, 2)

	byParam := map[string]string{}
	for _, e := range errs {
		byParam[e.Param] = e.Msg
	}
	// Field names come from json tags, not Go identifiers.
	assert.Equal(t, "is required", byParam["username"])
	assert.Equal(t, "must be at least 8 characters", byParam["password"])
}

func TestStruct_OneOf(t *testing.T) {
	assert.Nil(t, Struct(sampleRole{Role: "admin"}))
	assert.Nil(t, Struct(sampleRole{Role: "user"}))

	errs := Struct(sampleRole{Role: "superadmin"})
	require.Len(t, errs, 1)
	assert.Equal(t, "role", errs[0].Param)
	assert.Equal(t, "must be one of: user, admin", errs[0].Msg)
}
