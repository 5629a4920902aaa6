package observability

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMetricsRecordRequest(t *testing.T) {
	m := NewMetrics()

	m.RecordRequest("/auth/login", "POST", 200, 10*time.Millisecond)
	m.RecordRequest("/auth/login", "POST", 200, 12*time.Millisecond)
	m.RecordError("/auth/login", "POST", "UNAUTHORIZED")

	assert.Equal(t, int64(2), m.requestCount["/auth/login|POST|200"])
	assert.Equal(t, int64(1), m.errorCount["/auth/login|POST|UNAUTHORIZED"])
}

func TestMetricsConcurrentAccess(t *testing.T) {
	m := NewMetrics()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.RecordRequest("/auth/me", "GET", 200, time.Millisecond)
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(20), m.requestCount["/auth/me|GET|200"])
}

func TestMetricsNilReceiver(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.RecordRequest("/", "GET", 200, 0)
		m.RecordError("/", "GET", "INTERNAL_ERROR")
	})
}
