package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/reomoon/memo/internal/server/config"
	"github.com/reomoon/memo/internal/server/repositories/sessions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func freeAddr(t *testing.T) string {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())
	return addr
}

func TestOpenSessions_Memory(t *testing.T) {
	c := &config.Config{}
	c.LoadDefaults()

	repo, db, err := openSessions(context.Background(), c)
	require.NoError(t, err)
	assert.Nil(t, db)
	assert.IsType(t, &sessions.MemoryRepository{}, repo)
}

func TestApp_ServesUntilCancelled(t *testing.T) {
	c := &config.Config{}
	c.LoadDefaults()
	c.ListenAddr = freeAddr(t)

	app, err := NewApp(context.Background(), c)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		app.Run(ctx)
		close(done)
	}()

	url := fmt.Sprintf("http://%s/healthz", c.ListenAddr)
	require.Eventually(t, func() bool {
		resp, err := http.Get(url)
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(3 * time.Second):
		t.Fatal("app did not stop after cancel")
	}
}
