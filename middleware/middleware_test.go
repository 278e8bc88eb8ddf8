package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gymnexa/backend/backendtest"
	"gymnexa/models"
	"gymnexa/services/gate"
	"gymnexa/services/session"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const iphoneUA = "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) AppleWebKit/605.1.15"

func init() {
	gin.SetMode(gin.TestMode)
}

func newManager(t *testing.T) *session.Manager {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	m := session.NewManager(session.NewRedisStore(client, time.Hour), backendtest.NewIdentity(), backendtest.NewProfiles(), time.UTC, time.Hour)
	t.Cleanup(m.Close)
	return m
}

func TestDeviceDetailsMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(DeviceDetailsMiddleware())
	var got gate.Device
	r.GET("/", func(c *gin.Context) { got = Device(c) })

	tests := []struct {
		name    string
		headers map[string]string
		want    gate.Device
	}{
		{"desktop", map[string]string{"User-Agent": "Mozilla/5.0 (X11; Linux x86_64)"}, gate.Device{}},
		{"iphone browser", map[string]string{"User-Agent": iphoneUA}, gate.Device{IOS: true}},
		{"iphone installed", map[string]string{"User-Agent": iphoneUA, StandaloneHeader: "true"}, gate.Device{IOS: true, Standalone: true}},
		{"android installed", map[string]string{"User-Agent": "Mozilla/5.0 (Linux; Android 14)", DisplayModeHeader: "standalone"}, gate.Device{Android: true, Standalone: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			r.ServeHTTP(httptest.NewRecorder(), req)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRateLimitMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(RateLimitMiddleware(2))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 3)
	for i := range codes {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Forwarded-For", "10.0.0.1, 10.0.0.2")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		codes[i] = w.Code
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Real-IP", "10.0.0.9")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSessionAuthMiddleware(t *testing.T) {
	m := newManager(t)
	r := gin.New()
	r.Use(DeviceDetailsMiddleware(), SessionAuthMiddleware(m))
	r.POST("/touch", func(c *gin.Context) {
		Session(c).AuthError = "touched"
		c.Status(http.StatusNoContent)
	})

	s, token, err := m.Start(t.Context(), gate.Device{})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/touch", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	req := httptest.NewRequest(http.MethodPost, "/touch", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	req = httptest.NewRequest(http.MethodPost, "/touch", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("User-Agent", iphoneUA)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.NotEmpty(t, w.Header().Get(TokenHeader))

	saved, err := m.Resume(t.Context(), token)
	require.NoError(t, err)
	assert.Equal(t, s.ID, saved.ID)
	assert.Equal(t, "touched", saved.AuthError)
	assert.True(t, saved.Device.IOS)
}

func TestRequireScreenAndSignedIn(t *testing.T) {
	s := session.New("s1", gate.Device{}, time.Now())
	r := gin.New()
	r.Use(func(c *gin.Context) { SetSession(c, s); c.Next() })
	r.GET("/main", RequireScreen(gate.Main), func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/private", RequireSignedIn(), func(c *gin.Context) { c.Status(http.StatusOK) })

	do := func(path string) int {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		return w.Code
	}

	assert.Equal(t, http.StatusConflict, do("/main"))
	assert.Equal(t, http.StatusUnauthorized, do("/private"))

	require.NoError(t, s.Gate.Skip())
	assert.Equal(t, http.StatusOK, do("/main"))
	assert.Equal(t, http.StatusUnauthorized, do("/private"), "demo sessions are not signed in")

	s.Identity = &models.Identity{UID: "u1"}
	assert.Equal(t, http.StatusOK, do("/private"))
}
