package metrics

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusClass(t *testing.T) {
	tests := []struct {
		code int
		want string
	}{
		{0, "none"},
		{200, "2xx"},
		{204, "2xx"},
		{301, "3xx"},
		{404, "4xx"},
		{503, "5xx"},
		{42, "other"},
		{600, "other"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, StatusClass(tt.code), "code %d", tt.code)
	}
}

func TestSessionCounters(t *testing.T) {
	opened := testutil.ToFloat64(sessionsOpened)
	closed := testutil.ToFloat64(sessionsClosed)
	failed := testutil.ToFloat64(teardownFailures)

	SessionOpened()
	SessionClosed(false)
	SessionOpened()
	SessionClosed(true)

	assert.Equal(t, opened+2, testutil.ToFloat64(sessionsOpened))
	assert.Equal(t, closed+2, testutil.ToFloat64(sessionsClosed))
	assert.Equal(t, failed+1, testutil.ToFloat64(teardownFailures))
}

func TestResponseObserved(t *testing.T) {
	before := testutil.ToFloat64(responses.WithLabelValues("4xx"))
	ResponseObserved(404)
	ResponseObserved(429)
	assert.Equal(t, before+2, testutil.ToFloat64(responses.WithLabelValues("4xx")))
}

func TestWriteTextfile(t *testing.T) {
	NavigationFailed()

	path := filepath.Join(t.TempDir(), "pagefetch.prom")
	require.NoError(t, WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "pagefetch_navigation_failures_total")
}
