package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondError(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondError(rec, http.StatusNotFound, errors.New("cart item not found"), "item is not in the cart")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "item is not in the cart", body["messageToUser"])
	assert.Equal(t, "item is not in the cart", body["developerInfo"])
	assert.Equal(t, "cart item not found", body["error"])
	assert.Equal(t, float64(http.StatusNotFound), body["statusCode"])
	assert.Equal(t, true, body["isClientError"])
	assert.NotEmpty(t, body["id"])
}

func TestRespondErrorServerSide(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondError(rec, http.StatusInternalServerError, nil, "failed", "db down")

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "db down", body["developerInfo"])
	assert.Equal(t, "", body["error"])
	assert.Equal(t, false, body["isClientError"])
}

func TestGetOffsetLimit(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/log", nil)
	offset, limit, err := GetOffsetLimit(r)
	require.NoError(t, err)
	assert.Equal(t, 0, offset)
	assert.Equal(t, 10, limit)

	r = httptest.NewRequest(http.MethodGet, "/log?offset=20&limit=5", nil)
	offset, limit, err = GetOffsetLimit(r)
	require.NoError(t, err)
	assert.Equal(t, 20, offset)
	assert.Equal(t, 5, limit)

	for _, query := range []string{"?offset=x", "?limit=0", "?offset=-1"} {
		_, _, err = GetOffsetLimit(httptest.NewRequest(http.MethodGet, "/log"+query, nil))
		assert.Error(t, err, query)
	}
}

func TestEnvHelpers(t *testing.T) {
	t.Setenv("ADMIN_EMPLOYEE_IDS", " 1001, ,1002,")
	assert.Equal(t, []string{"1001", "1002"}, EnvList("ADMIN_EMPLOYEE_IDS"))

	t.Setenv("CART_TTL_DAYS", "14")
	assert.Equal(t, 14, EnvInt("CART_TTL_DAYS", 30))
	t.Setenv("CART_TTL_DAYS", "soon")
	assert.Equal(t, 30, EnvInt("CART_TTL_DAYS", 30))
}

func TestPasswordHash(t *testing.T) {
	hash, err := HashPassword("kibble")
	require.NoError(t, err)
	assert.NotEqual(t, "kibble", hash)

	assert.NoError(t, CheckPassword(hash, "kibble"))
	assert.Equal(t, ErrInvalidCredentials, CheckPassword(hash, "Kibble"))
	assert.Equal(t, ErrInvalidCredentials, CheckPassword("not-a-hash", "kibble"))
}

func TestJWTRoundTrip(t *testing.T) {
	t.Setenv("SECRET_KEY", "test-secret")

	token, expiresAt, err := GenerateJWT(7, "biscuit")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(TokenLifetime), expiresAt, time.Minute)

	claims, err := ParseJWT(token)
	require.NoError(t, err)
	assert.Equal(t, 7, claims.UserID)
	assert.Equal(t, "biscuit", claims.Username)
	assert.NotEmpty(t, claims.Id)
}

func TestParseJWTRejects(t *testing.T) {
	t.Setenv("SECRET_KEY", "test-secret")
	token, _, err := GenerateJWT(7, "biscuit")
	require.NoError(t, err)

	t.Setenv("SECRET_KEY", "another-secret")
	_, err = ParseJWT(token)
	assert.Equal(t, ErrInvalidToken, err)

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId": 7,
		"jti":    "abc",
		"exp":    time.Now().Add(-time.Hour).Unix(),
	})
	signed, err := expired.SignedString([]byte("another-secret"))
	require.NoError(t, err)
	_, err = ParseJWT(signed)
	assert.Equal(t, ErrInvalidToken, err)

	_, err = ParseJWT("garbage")
	assert.Equal(t, ErrInvalidToken, err)
}
