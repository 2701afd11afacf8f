package server

import (
	"context"
	"net/http"
	"testing"

	"github.com/deppfellow/lightbnb/internal/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testServer() *Server {
	logger := zerolog.Nop()
	return &Server{
		Config: &config.Config{
			Primary: config.Primary{Env: "test"},
			Server: config.ServerConfig{
				Port:         "0",
				ReadTimeout:  5,
				WriteTimeout: 10,
				IdleTimeout:  60,
			},
		},
		Logger: &logger,
	}
}

func TestStart_RequiresSetup(t *testing.T) {
	err := testServer().Start()
	assert.EqualError(t, err, "HTTP server not initialized")
}

func TestSetupHTTPServer_AppliesTimeouts(t *testing.T) {
	s := testServer()
	s.SetupHTTPServer(http.NotFoundHandler())

	require.NotNil(t, s.httpServer)
	assert.Equal(t, ":0", s.httpServer.Addr)
	assert.Equal(t, "5s", s.httpServer.ReadTimeout.String())
	assert.Equal(t, "10s", s.httpServer.WriteTimeout.String())
	assert.Equal(t, "1m0s", s.httpServer.IdleTimeout.String())
}

func TestShutdown_WithoutResources(t *testing.T) {
	s := testServer()
	s.SetupHTTPServer(http.NotFoundHandler())

	assert.NoError(t, s.Shutdown(context.Background()))
}
