package discord

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tracker-api/pkg/log"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *discordImpl {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return &discordImpl{
		l:      log.NewNop(),
		url:    srv.URL,
		config: Config{Timeout: time.Second, RetryCount: 1, RetryDelay: time.Millisecond},
		client: srv.Client(),
	}
}

func TestNew_RequiresWebhook(t *testing.T) {
	_, err := New(log.NewNop(), "", "token")
	assert.Error(t, err)

	d, err := New(log.NewNop(), "123", "abc")
	require.NoError(t, err)
	assert.NoError(t, d.Close())
}

func TestSendActivityLog(t *testing.T) {
	var got WebhookPayload
	d := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusNoContent)
	})

	err := d.SendActivityLog(context.Background(), "role_changed", "ana", "usuario -> editor")
	require.NoError(t, err)
	require.Len(t, got.Embeds, 1)
	assert.Equal(t, ActivityLogTitle, got.Embeds[0].Title)
	assert.Equal(t, "role_changed", got.Embeds[0].Fields[0].Value)
}

func TestReportBug_Retries(t *testing.T) {
	calls := 0
	d := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusBadGateway)
	})

	err := d.ReportBug(context.Background(), "boom")
	assert.Error(t, err)
	assert.Equal(t, 2, calls)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 10))
	assert.Equal(t, "ab...", truncate("abcdefgh", 5))
}
