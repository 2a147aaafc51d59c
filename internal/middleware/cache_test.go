package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bartosz-starzec/Hotel-app-backend/internal/config"
)

func keyFor(target string) string {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	c := e.NewContext(req, httptest.NewRecorder())
	// Both ids land on the same registered pattern, like the real router.
	c.SetPath("/rooms/:id")
	return cacheKey(config.CacheConfig{Prefix: "cache"}, c)
}

func TestCacheKey_DistinctPerEntity(t *testing.T) {
	// Two rooms behind one route pattern must never share a cache entry,
	// or a lookup for one id would serve the other's body.
	assert.NotEqual(t, keyFor("/rooms/1"), keyFor("/rooms/2"))
}

func TestCacheKey_StableForSameURL(t *testing.T) {
	assert.Equal(t, keyFor("/rooms/1"), keyFor("/rooms/1"))
}

func TestCacheKey_QueryVariantsCacheSeparately(t *testing.T) {
	assert.NotEqual(t, keyFor("/rooms/1"), keyFor("/rooms/1?full=1"))
}

func TestPayloadEncodeDecode(t *testing.T) {
	hdr := http.Header{}
	hdr.Set("Content-Type", "application/json")
	body := []byte(`[{"id":1}]`)

	bs, err := encodePayload(http.StatusOK, hdr, body)
	require.NoError(t, err)

	status, gotHdr, gotBody, ok := decodePayload(bs)
	require.True(t, ok)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "application/json", gotHdr.Get("Content-Type"))
	assert.Equal(t, body, gotBody)
}

func TestDecodePayload_Truncated(t *testing.T) {
	_, _, _, ok := decodePayload([]byte{0, 0})
	assert.False(t, ok)
}
