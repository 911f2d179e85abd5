package mcp

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServer(t *testing.T) {
	t.Run("nil ports returns error", func(t *testing.T) {
		server, err := NewServer(nil)
		require.Error(t, err)
		assert.Nil(t, server)
		assert.ErrorIs(t, err, ErrMissingCalculatorService)
	})

	t.Run("nil calculator service returns error", func(t *testing.T) {
		server, err := NewServer(&Ports{})
		require.Error(t, err)
		assert.Nil(t, server)
		assert.ErrorIs(t, err, ErrMissingCalculatorService)
	})

	t.Run("valid ports creates server", func(t *testing.T) {
		server, err := NewServer(&Ports{Calculator: &mockCalculatorService{}})
		require.NoError(t, err)
		assert.NotNil(t, server)
	})
}

func TestPorts_Validate(t *testing.T) {
	t.Run("calculator only is valid", func(t *testing.T) {
		ports := &Ports{Calculator: &mockCalculatorService{}}
		assert.NoError(t, ports.Validate())
	})

	t.Run("all ports is valid", func(t *testing.T) {
		ports := &Ports{
			Calculator: &mockCalculatorService{},
			Quiz:       &mockQuizService{},
			History:    &mockHistoryService{},
		}
		assert.NoError(t, ports.Validate())
	})
}

func TestServer_RateLimit(t *testing.T) {
	server, err := NewServer(&Ports{Calculator: &mockCalculatorService{}})
	require.NoError(t, err)

	// One request per hour: the burst of one is spent by the first request.
	server.SetRateLimit(1.0/3600, 1)
	handler := server.Handler()

	first := httptest.NewRecorder()
	handler.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEqual(t, http.StatusTooManyRequests, first.Code)

	second := httptest.NewRecorder()
	handler.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.Equal(t, "1", second.Header().Get("Retry-After"))
}

func TestServer_SetRateLimitZeroDisables(t *testing.T) {
	server, err := NewServer(&Ports{Calculator: &mockCalculatorService{}})
	require.NoError(t, err)

	server.SetRateLimit(1.0/3600, 1)
	server.SetRateLimit(0, 0)
	assert.Nil(t, server.limiter)

	handler := server.Handler()
	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.NotEqual(t, http.StatusTooManyRequests, rec.Code)
	}
}
