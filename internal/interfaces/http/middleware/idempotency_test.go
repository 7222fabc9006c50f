package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	redisv9 "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	redispkg "refgate.backend/pkg/redis"
)

func startMiniRedis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	srv, err := miniredis.Run()
	if err != nil {
		t.Skipf("skip: miniredis unavailable in this environment: %v", err)
	}
	return srv
}

func newIdempotentRouter(handler gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(IdempotencyMiddleware())
	r.POST("/affiliate/link", handler)
	return r
}

func postWithKey(r *gin.Engine, key string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/affiliate/link", nil)
	if key != "" {
		req.Header.Set(IdempotencyHeader, key)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestIdempotencyMiddleware_NoHeaderPassthrough(t *testing.T) {
	r := newIdempotentRouter(func(c *gin.Context) { c.Status(http.StatusNoContent) })
	require.Equal(t, http.StatusNoContent, postWithKey(r, "").Code)
}

func TestIdempotencyMiddleware_RedisErrorPassthrough(t *testing.T) {
	redispkg.SetClient(redisv9.NewClient(&redisv9.Options{Addr: "127.0.0.1:0"}))

	r := newIdempotentRouter(func(c *gin.Context) { c.Status(http.StatusAccepted) })
	require.Equal(t, http.StatusAccepted, postWithKey(r, "idem-key").Code)
}

func TestIdempotencyMiddleware_ProcessingConflict(t *testing.T) {
	srv := startMiniRedis(t)
	t.Cleanup(srv.Close)

	cli := redisv9.NewClient(&redisv9.Options{Addr: srv.Addr()})
	redispkg.SetClient(cli)
	t.Cleanup(func() { _ = cli.Close() })

	srv.Set("idempotency:/affiliate/link:key-1", "processing")

	r := newIdempotentRouter(func(c *gin.Context) { c.Status(http.StatusCreated) })
	w := postWithKey(r, "key-1")

	require.Equal(t, http.StatusConflict, w.Code)
	require.Contains(t, w.Body.String(), "ERR_IDEMPOTENCY_CONFLICT")
}

func TestIdempotencyMiddleware_StoresAndReplaysSuccess(t *testing.T) {
	srv := startMiniRedis(t)
	t.Cleanup(srv.Close)

	cli := redisv9.NewClient(&redisv9.Options{Addr: srv.Addr()})
	redispkg.SetClient(cli)
	t.Cleanup(func() { _ = cli.Close() })

	calls := 0
	r := newIdempotentRouter(func(c *gin.Context) {
		calls++
		c.String(http.StatusCreated, `{"affiliateId":"aff-1"}`)
	})

	w := postWithKey(r, "key-3")
	require.Equal(t, http.StatusCreated, w.Code)

	// Same key replays the stored body without re-running the handler.
	w2 := postWithKey(r, "key-3")
	require.Equal(t, http.StatusOK, w2.Code)
	require.Equal(t, "true", w2.Header().Get("X-Idempotency-Hit"))
	require.Equal(t, `{"affiliateId":"aff-1"}`, w2.Body.String())
	require.Equal(t, 1, calls)
}

func TestIdempotencyMiddleware_DeletesKeyOnFailure(t *testing.T) {
	srv := startMiniRedis(t)
	t.Cleanup(srv.Close)

	cli := redisv9.NewClient(&redisv9.Options{Addr: srv.Addr()})
	redispkg.SetClient(cli)
	t.Cleanup(func() { _ = cli.Close() })

	r := newIdempotentRouter(func(c *gin.Context) {
		c.String(http.StatusUnauthorized, "signature invalid")
	})

	w := postWithKey(r, "key-4")
	require.Equal(t, http.StatusUnauthorized, w.Code)

	// The lock is released so the client can retry with a fresh proof.
	_, err := redispkg.Get(context.Background(), "idempotency:/affiliate/link:key-4")
	require.Error(t, err)
	require.Equal(t, redisv9.Nil, err)
}
