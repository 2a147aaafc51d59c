package database

import (
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bartosz-starzec/Hotel-app-backend/internal/config"
)

func TestDSN(t *testing.T) {
	cfg := config.Config{
		DBUser: "hotel",
		DBPass: "s3cret/with:odd@chars",
		DBHost: "127.0.0.1",
		DBPort: "3306",
		DBName: "hotel",
	}

	parsed, err := mysql.ParseDSN(dsn(cfg))
	require.NoError(t, err)

	assert.Equal(t, "hotel", parsed.User)
	assert.Equal(t, "s3cret/with:odd@chars", parsed.Passwd)
	assert.Equal(t, "tcp", parsed.Net)
	assert.Equal(t, "127.0.0.1:3306", parsed.Addr)
	assert.Equal(t, "hotel", parsed.DBName)
	assert.True(t, parsed.ParseTime)
	assert.Equal(t, "utf8mb4", parsed.Params["charset"])
}
