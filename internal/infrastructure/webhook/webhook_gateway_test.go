package webhook

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestNewWebhookGateway(t *testing.T) {
	log := zaptest.NewLogger(t)

	_, err := NewWebhookGateway("", time.Second, false, log)
	assert.ErrorIs(t, err, ErrMissingWebhookURL)

	for _, bad := range []string{"ftp://host/x", "/relative", "http://", "::"} {
		_, err = NewWebhookGateway(bad, time.Second, false, log)
		assert.ErrorIs(t, err, ErrInvalidWebhookURL, bad)
	}

	g, err := NewWebhookGateway("", 0, true, nil)
	require.NoError(t, err)
	assert.True(t, g.mockMode)
}

func TestWebhookGateway_Post(t *testing.T) {
	t.Run("forwards body verbatim with json content type", func(t *testing.T) {
		var gotBody []byte
		var gotType, gotMethod string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotMethod = r.Method
			gotType = r.Header.Get("Content-Type")
			gotBody, _ = io.ReadAll(r.Body)
			_, _ = w.Write([]byte("OK"))
		}))
		defer srv.Close()

		g, err := NewWebhookGateway(srv.URL, time.Second, false, zaptest.NewLogger(t))
		require.NoError(t, err)

		body := json.RawMessage(`{ "proposal_id" : "PROP-20240101-123", "n": 1.50 }`)
		status, text, err := g.Post(context.Background(), body)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, "OK", text)
		assert.Equal(t, http.MethodPost, gotMethod)
		assert.Equal(t, "application/json", gotType)
		assert.Equal(t, string(body), string(gotBody))
	})

	t.Run("non 2xx is returned without error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte("bad data"))
		}))
		defer srv.Close()

		g, err := NewWebhookGateway(srv.URL, time.Second, false, zaptest.NewLogger(t))
		require.NoError(t, err)

		status, text, err := g.Post(context.Background(), json.RawMessage(`{}`))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "bad data", text)
	})

	t.Run("connection refused is a transport error", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		url := srv.URL
		srv.Close()

		g, err := NewWebhookGateway(url, time.Second, false, zaptest.NewLogger(t))
		require.NoError(t, err)

		_, _, err = g.Post(context.Background(), json.RawMessage(`{}`))
		require.Error(t, err)
	})

	t.Run("timeout bounds a hung upstream", func(t *testing.T) {
		release := make(chan struct{})
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-release:
			case <-r.Context().Done():
			}
		}))
		defer srv.Close()
		defer close(release)

		g, err := NewWebhookGateway(srv.URL, 50*time.Millisecond, false, zaptest.NewLogger(t))
		require.NoError(t, err)

		_, _, err = g.Post(context.Background(), json.RawMessage(`{}`))
		require.Error(t, err)
	})

	t.Run("caller cancellation aborts the call", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			<-r.Context().Done()
		}))
		defer srv.Close()

		g, err := NewWebhookGateway(srv.URL, time.Minute, false, zaptest.NewLogger(t))
		require.NoError(t, err)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, _, err = g.Post(ctx, json.RawMessage(`{}`))
		require.Error(t, err)
		assert.True(t, errors.Is(err, context.Canceled))
	})

	t.Run("mock mode answers locally", func(t *testing.T) {
		g, err := NewWebhookGateway("", 0, true, zaptest.NewLogger(t))
		require.NoError(t, err)

		status, text, err := g.Post(context.Background(), json.RawMessage(`{}`))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, MockResponseText, text)
	})
}
