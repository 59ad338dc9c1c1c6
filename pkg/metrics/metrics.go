// Package metrics exposes Prometheus counters for browser sessions.
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "pagefetch"

var (
	sessionsOpened = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sessions_opened_total",
		Help:      "Browser pages opened for a session.",
	})
	sessionsClosed = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sessions_closed_total",
		Help:      "Browser pages torn down, successfully or not.",
	})
	teardownFailures = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "teardown_failures_total",
		Help:      "Sessions whose blocker disengage or page close returned an error.",
	})
	navigationFailures = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "navigation_failures_total",
		Help:      "Navigations that returned an error (timeout, DNS, network).",
	})
	responses = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "responses_total",
		Help:      "Navigation responses by status class.",
	}, []string{"class"})
)

// SessionOpened records a page handed to a session.
func SessionOpened() {
	sessionsOpened.Inc()
}

// SessionClosed records a finished teardown. failed is true when any teardown
// step returned an error.
func SessionClosed(failed bool) {
	sessionsClosed.Inc()
	if failed {
		teardownFailures.Inc()
	}
}

// NavigationFailed records a navigation error.
func NavigationFailed() {
	navigationFailures.Inc()
}

// ResponseObserved records a navigation response. A code of 0 means the
// navigation produced no response.
func ResponseObserved(code int) {
	responses.WithLabelValues(StatusClass(code)).Inc()
}

// StatusClass buckets a status code as "2xx", "4xx", etc. Zero maps to "none"
// and anything outside 100-599 to "other".
func StatusClass(code int) string {
	switch {
	case code == 0:
		return "none"
	case code < 100 || code > 599:
		return "other"
	default:
		return strconv.Itoa(code/100) + "xx"
	}
}

// WriteTextfile writes every registered metric in the text exposition format,
// suitable for the node_exporter textfile collector.
func WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, prometheus.DefaultGatherer)
}
