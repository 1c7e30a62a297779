package workflow

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/subwatch-inc/subwatch/internal/shared/config"
	"github.com/subwatch-inc/subwatch/internal/shared/logger"
)

func testLogger() logger.Interface {
	return logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

const testCallbackURL = "https://api.example.com/api/v1/workflows/subscription/reminder"

func newTestClient(serverURL string) *Client {
	return NewClient(&config.WorkflowConfig{
		PublishURL:  serverURL,
		Token:       "qstash-token",
		CallbackURL: testCallbackURL,
	}, testLogger())
}

func TestTrigger(t *testing.T) {
	var gotPath, gotAuth, gotRetries string
	var gotBody map[string]string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		gotAuth = r.Header.Get("Authorization")
		gotRetries = r.Header.Get("Upstash-Retries")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"messageId":"msg_abc123"}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	runID, err := client.Trigger(context.Background(), "sub_test12345678")
	require.NoError(t, err)

	assert.Equal(t, "msg_abc123", runID)
	assert.Equal(t, "/"+url.PathEscape(testCallbackURL), gotPath, "the callback URL rides in the path, escaped")
	assert.Equal(t, "Bearer qstash-token", gotAuth)
	assert.Equal(t, "0", gotRetries, "scheduler retries stay disabled")
	assert.Equal(t, map[string]string{"subscriptionId": "sub_test12345678"}, gotBody)
}

func TestTrigger_SchedulerRejects(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.Trigger(context.Background(), "sub_test12345678")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 401")
}

func TestTrigger_MissingMessageID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.Trigger(context.Background(), "sub_test12345678")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing message ID")
}

func TestTrigger_SchedulerUnreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := newTestClient(server.URL)

	_, err := client.Trigger(context.Background(), "sub_test12345678")
	assert.Error(t, err)
}
