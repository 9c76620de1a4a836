package bootstrap_test

import (
	"context"
	"net"
	"net/http"
	"sync"
	"testing"
	"time"

	"go-leave/internal/bootstrap"
	"go-leave/internal/config"
	"go-leave/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestStdoutAuditLogger_Log(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	audit := bootstrap.NewStdoutAuditLogger(zap.New(core))

	ctx := contextutil.WithRequestID(context.Background(), "rid-42")
	audit.Log(ctx, bootstrap.AuditLog{
		Action:  "LEAVE_DELETED",
		Message: "leave record deleted",
		Meta:    map[string]any{"leave_id": "abc"},
	})

	entries := logs.FilterMessage("audit event").All()
	assert.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "LEAVE_DELETED", fields["action"])
	assert.Equal(t, "rid-42", fields["request_id"])
	assert.Equal(t, "audit", entries[0].LoggerName)
}

func TestNewHTTPServer(t *testing.T) {
	cfg := bootstrap.ServerConfigFrom(config.Config{
		Port:         "8081",
		ReadTimeout:  time.Second,
		WriteTimeout: 2 * time.Second,
		IdleTimeout:  3 * time.Second,
	})

	srv := bootstrap.NewHTTPServer(gin.New(), cfg)

	assert.Equal(t, ":8081", srv.Addr)
	assert.Equal(t, time.Second, srv.ReadTimeout)
	assert.Equal(t, 2*time.Second, srv.WriteTimeout)
	assert.Equal(t, 3*time.Second, srv.IdleTimeout)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
}

type recordingAudit struct {
	mu      sync.Mutex
	actions []string
}

func (r *recordingAudit) Log(_ context.Context, entry bootstrap.AuditLog) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.actions = append(r.actions, entry.Action)
}

func TestServe_ShutsDownOnCancel(t *testing.T) {
	r := gin.New()
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	assert.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	audit := &recordingAudit{}
	done := make(chan error, 1)
	go func() {
		done <- bootstrap.Serve(ctx, &http.Server{Handler: r}, ln, time.Second, audit)
	}()

	resp, err := http.Get("http://" + ln.Addr().String() + "/ping")
	assert.NoError(t, err)
	if resp != nil {
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		resp.Body.Close()
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop")
	}

	audit.mu.Lock()
	defer audit.mu.Unlock()
	assert.Equal(t, []string{"SERVER_SHUTDOWN"}, audit.actions)
}
