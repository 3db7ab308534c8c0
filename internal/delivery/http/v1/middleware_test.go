package v1

import (
	"net/http"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, subject string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject: subject,
	})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func TestIdentityMiddleware(t *testing.T) {
	h := newTestHandler(new(fakeProjectRepository), new(fakeTaskRepository))

	c, _ := newTestContext(http.MethodGet, "/projects", "")
	c.Request.Header.Set("Authorization", "Bearer "+signedToken(t, "test-admin-id"))

	h.HandleIdentityMiddleware(c)
	c.Writer.WriteHeaderNow()

	assert.Equal(t, "test-admin-id", accountID(c))
}

func TestIdentityMiddlewareNoHeader(t *testing.T) {
	h := newTestHandler(new(fakeProjectRepository), new(fakeTaskRepository))

	c, _ := newTestContext(http.MethodGet, "/projects", "")

	h.HandleIdentityMiddleware(c)
	c.Writer.WriteHeaderNow()

	assert.Empty(t, accountID(c))
}

func TestIdentityMiddlewareMalformedHeader(t *testing.T) {
	h := newTestHandler(new(fakeProjectRepository), new(fakeTaskRepository))

	c, _ := newTestContext(http.MethodGet, "/projects", "")
	c.Request.Header.Set("Authorization", "Basic dXNlcjpwYXNz")

	h.HandleIdentityMiddleware(c)
	c.Writer.WriteHeaderNow()

	assert.Empty(t, accountID(c))
}

func TestIdentityMiddlewareGarbageToken(t *testing.T) {
	h := newTestHandler(new(fakeProjectRepository), new(fakeTaskRepository))

	c, _ := newTestContext(http.MethodGet, "/projects", "")
	c.Request.Header.Set("Authorization", "Bearer not-a-jwt")

	h.HandleIdentityMiddleware(c)
	c.Writer.WriteHeaderNow()

	assert.Empty(t, accountID(c))
}

func TestIdentityMiddlewareEmptySubject(t *testing.T) {
	h := newTestHandler(new(fakeProjectRepository), new(fakeTaskRepository))

	c, _ := newTestContext(http.MethodGet, "/projects", "")
	c.Request.Header.Set("Authorization", "Bearer "+signedToken(t, ""))

	h.HandleIdentityMiddleware(c)
	c.Writer.WriteHeaderNow()

	assert.Empty(t, accountID(c))
}
