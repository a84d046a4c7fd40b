package notification

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSlackWebhook_PostMessage(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		got = body["text"]
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	s := NewSlackWebhook(srv.URL)
	err := s.PostMessage(context.Background(), "New Quote: <link|Quote> :slightly_smiling_face:")
	require.NoError(t, err)
	require.Equal(t, "New Quote: <link|Quote> :slightly_smiling_face:", got)
}

func TestSlackWebhook_NonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusGone)
	}))
	defer srv.Close()

	s := NewSlackWebhook(srv.URL)
	require.Error(t, s.PostMessage(context.Background(), "hello"))
}

func TestSlackWebhook_DisabledWhenUnconfigured(t *testing.T) {
	s := NewSlackWebhook("")
	require.NoError(t, s.PostMessage(context.Background(), "dropped silently"))
}
