package selfupdate

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewerVersion(t *testing.T) {
	tests := []struct {
		name    string
		latest  string
		current string
		want    bool
	}{
		{"newer patch", "v1.0.1", "v1.0.0", true},
		{"newer minor", "v1.1.0", "v1.0.9", true},
		{"same", "v1.0.0", "v1.0.0", false},
		{"older", "v1.0.0", "v1.2.0", false},
		{"missing v prefix", "1.1.0", "1.0.0", true},
		{"dev build", "v1.0.0", "(devel)", false},
		{"garbage tag", "nightly", "v1.0.0", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, newerVersion(tt.latest, tt.current))
		})
	}
}

func TestCheck(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/repos/bashlore/bashlore/releases/latest", r.URL.Path)
		_, _ = w.Write([]byte(`{"tag_name":"v1.4.0","html_url":"https://example.com/v1.4.0"}`))
	}))
	defer server.Close()

	checker := NewChecker(WithBaseURL(server.URL))
	result, err := checker.Check(context.Background(), &CheckInput{Version: "v1.2.0"})
	require.NoError(t, err)
	assert.True(t, result.UpdateAvailable)
	assert.Equal(t, "v1.4.0", result.LatestVersion)
	assert.Equal(t, "https://example.com/v1.4.0", result.ReleaseURL)
}

func TestCheckServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	checker := NewChecker(WithBaseURL(server.URL))
	_, err := checker.Check(context.Background(), &CheckInput{Version: "v1.0.0"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 500")
}
