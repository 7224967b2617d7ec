package server

import (
	"context"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-tender-search/internal/config"
	"github.com/MKhiriev/go-tender-search/internal/handler"
	httphandler "github.com/MKhiriev/go-tender-search/internal/handler/http"
	"github.com/MKhiriev/go-tender-search/internal/logger"
	"github.com/MKhiriev/go-tender-search/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServer(t *testing.T) {
	cfg := config.Server{HTTPAddress: "127.0.0.1:0", RequestTimeout: 2 * time.Second}
	handlers := &handler.Handlers{HTTP: httphandler.NewHandler(&service.Services{}, cfg, logger.Nop())}

	srv, err := NewServer(handlers, cfg, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, srv)

	s := srv.(*server)
	assert.Equal(t, "127.0.0.1:0", s.httpServer.server.Addr)
	assert.Equal(t, 7*time.Second, s.httpServer.server.WriteTimeout)
	assert.Equal(t, 7*time.Second, s.httpServer.shutdownTimeout)
}

func TestNewServer_NoHandlers(t *testing.T) {
	tests := []struct {
		name     string
		handlers *handler.Handlers
		cfg      config.Server
	}{
		{name: "nil handlers", handlers: nil, cfg: config.Server{HTTPAddress: ":8080"}},
		{name: "no http handler", handlers: &handler.Handlers{}, cfg: config.Server{HTTPAddress: ":8080"}},
		{
			name:     "no address",
			handlers: &handler.Handlers{HTTP: httphandler.NewHandler(&service.Services{}, config.Server{}, logger.Nop())},
			cfg:      config.Server{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, err := NewServer(tt.handlers, tt.cfg, logger.Nop())

			assert.Nil(t, srv)
			assert.ErrorIs(t, err, errNoServersAreCreated)
		})
	}
}

func TestNewServer_NoAddressNamesCause(t *testing.T) {
	handlers := &handler.Handlers{HTTP: httphandler.NewHandler(&service.Services{}, config.Server{}, logger.Nop())}

	_, err := NewServer(handlers, config.Server{}, logger.Nop())

	assert.ErrorIs(t, err, errNoHTTPAddress)
}

func TestNewHTTPServer_DefaultShutdownTimeout(t *testing.T) {
	h := newHTTPServer(http.NotFoundHandler(), config.Server{HTTPAddress: ":0"}, logger.Nop())

	assert.Zero(t, h.server.WriteTimeout)
	assert.Equal(t, defaultShutdownTimeout, h.shutdownTimeout)
	assert.Equal(t, readHeaderTimeout, h.server.ReadHeaderTimeout)
}

func TestHTTPServer_ServeAndShutdown(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/ping", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "pong")
	})
	h := newHTTPServer(mux, config.Server{RequestTimeout: time.Second}, logger.Nop())

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() { done <- h.serve(ln) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/ping")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	assert.Equal(t, "pong", string(body))

	h.Shutdown()

	select {
	case err = <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop after Shutdown")
	}
}

func TestServer_RunStopsOnContextCancel(t *testing.T) {
	s := &server{
		httpServer: newHTTPServer(http.NotFoundHandler(), config.Server{HTTPAddress: "127.0.0.1:0"}, logger.Nop()),
		logger:     logger.Nop(),
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("run did not return after cancellation")
	}
}

func TestServer_RunReturnsListenError(t *testing.T) {
	busy, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer busy.Close()

	s := &server{
		httpServer: newHTTPServer(http.NotFoundHandler(), config.Server{HTTPAddress: busy.Addr().String()}, logger.Nop()),
		logger:     logger.Nop(),
	}

	err = s.run(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "listen")
}
