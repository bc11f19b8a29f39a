package mcp

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func TestNewServer(t *testing.T) {
	t.Run("nil recommendation service returns error", func(t *testing.T) {
		server, err := NewServer(&Ports{Corpus: &mockCorpusService{}})
		require.Error(t, err)
		assert.Nil(t, server)
		assert.ErrorIs(t, err, ErrMissingRecommendService)
	})

	t.Run("valid ports creates server", func(t *testing.T) {
		ports, _ := testPorts()
		server, err := NewServer(ports)
		require.NoError(t, err)
		assert.NotNil(t, server)
		assert.NotNil(t, server.limiter)
	})
}

func TestPorts_Validate(t *testing.T) {
	t.Run("nil recommendation service returns error", func(t *testing.T) {
		ports := &Ports{Corpus: &mockCorpusService{}}
		assert.ErrorIs(t, ports.Validate(), ErrMissingRecommendService)
	})

	t.Run("nil corpus service returns error", func(t *testing.T) {
		ports := &Ports{Recommend: &mockRecommendService{}}
		assert.ErrorIs(t, ports.Validate(), ErrMissingCorpusService)
	})

	t.Run("all ports is valid", func(t *testing.T) {
		ports, _ := testPorts()
		assert.NoError(t, ports.Validate())
	})
}

func TestServer_SetRateLimit(t *testing.T) {
	ports, _ := testPorts()
	server, err := NewServer(ports)
	require.NoError(t, err)

	server.SetRateLimit(0, 5)
	assert.Nil(t, server.limiter)

	server.SetRateLimit(3, 0)
	require.NotNil(t, server.limiter)
	assert.Equal(t, rate.Limit(3), server.limiter.Limit())
	assert.Equal(t, 1, server.limiter.Burst())
}

func TestLimit_RejectsBeyondBurst(t *testing.T) {
	var served int
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		served++
		w.WriteHeader(http.StatusOK)
	})
	handler := limit(next, rate.NewLimiter(rate.Every(1<<62), 2))

	codes := make([]int, 3)
	for i := range codes {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", nil))
		codes[i] = rec.Code
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
	assert.Equal(t, 2, served)
}

func TestLimit_NilLimiterPassesThrough(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	handler := limit(next, nil)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
}
