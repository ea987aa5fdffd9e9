// ABOUTME: Load tests for the /videos and like endpoints
// ABOUTME: Runs many concurrent clients against the in-memory source and checks latency and consistency

package loadtest

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reels-app-api/api"
	"reels-app-api/api/handlers"
	"reels-app-api/core/catalog"
	"reels-app-api/core/domain"
	"reels-app-api/core/interfaces"
	"reels-app-api/infrastructure/source/memory"
)

// LoadTestMetrics tracks performance metrics
type LoadTestMetrics struct {
	TotalRequests  int64
	SuccessfulReqs int64
	FailedReqs     int64
	TotalDuration  time.Duration
	MinLatency     time.Duration
	MaxLatency     time.Duration
	AvgLatency     time.Duration
	P95Latency     time.Duration
	P99Latency     time.Duration
	RequestsPerSec float64
}

func newServer(t *testing.T, store *memory.Store) *httptest.Server {
	t.Helper()
	apiInstance, router := api.NewAPI()
	svc := catalog.NewService(store, store, interfaces.Dependencies{})
	handlers.NewVideoHandler(svc).RegisterRoutes(apiInstance)

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return server
}

// hammer runs requestsPerWorker requests on each of concurrency workers and collects latencies
func hammer(concurrency, requestsPerWorker int, do func(client *http.Client, worker, n int) (*http.Response, error)) LoadTestMetrics {
	var (
		successCount int64
		failCount    int64
		latencies    []time.Duration
		mu           sync.Mutex
		wg           sync.WaitGroup
	)

	start := time.Now()
	wg.Add(concurrency)
	for i := 0; i < concurrency; i++ {
		go func(worker int) {
			defer wg.Done()
			client := &http.Client{Timeout: 30 * time.Second}

			for j := 0; j < requestsPerWorker; j++ {
				reqStart := time.Now()
				resp, err := do(client, worker, j)
				latency := time.Since(reqStart)

				mu.Lock()
				latencies = append(latencies, latency)
				mu.Unlock()

				if err != nil {
					atomic.AddInt64(&failCount, 1)
					continue
				}
				io.Copy(io.Discard, resp.Body)
				resp.Body.Close()

				if resp.StatusCode == http.StatusOK {
					atomic.AddInt64(&successCount, 1)
				} else {
					atomic.AddInt64(&failCount, 1)
				}
			}
		}(i)
	}
	wg.Wait()

	metrics := calculateMetrics(latencies, time.Since(start), concurrency*requestsPerWorker)
	metrics.SuccessfulReqs = successCount
	metrics.FailedReqs = failCount
	return metrics
}

func logMetrics(t *testing.T, title string, m LoadTestMetrics) {
	t.Logf("Load Test Results - %s", title)
	t.Logf("Total Requests: %d", m.TotalRequests)
	t.Logf("Successful: %d", m.SuccessfulReqs)
	t.Logf("Failed: %d", m.FailedReqs)
	t.Logf("Total Duration: %v", m.TotalDuration)
	t.Logf("Requests/sec: %.2f", m.RequestsPerSec)
	t.Logf("Avg Latency: %v", m.AvgLatency)
	t.Logf("P95 Latency: %v", m.P95Latency)
	t.Logf("P99 Latency: %v", m.P99Latency)
	t.Logf("Max Latency: %v", m.MaxLatency)
}

func TestVideosEndpoint_100ConcurrentClients(t *testing.T) {
	if testing.Short() {
		t.Skip("load test")
	}

	store := memory.NewStore(memory.WithoutLatency())
	server := newServer(t, store)

	metrics := hammer(100, 10, func(client *http.Client, worker, n int) (*http.Response, error) {
		page := n%3 + 1
		return client.Get(fmt.Sprintf("%s/videos?page=%d&limit=3", server.URL, page))
	})
	logMetrics(t, "100 concurrent clients on GET /videos", metrics)

	assert.Zero(t, metrics.FailedReqs)
	assert.Less(t, metrics.P95Latency, time.Second)
}

func TestLikeEndpoint_ConcurrentTogglesStayConsistent(t *testing.T) {
	if testing.Short() {
		t.Skip("load test")
	}

	store := memory.NewStore(memory.WithoutLatency())
	server := newServer(t, store)

	before := firstVideo(t, store)

	// An even number of toggles in total leaves the like state where it started
	metrics := hammer(50, 4, func(client *http.Client, worker, n int) (*http.Response, error) {
		return client.Post(server.URL+"/videos/"+before.ID+"/like", "application/json", nil)
	})
	logMetrics(t, "50 concurrent clients on POST /videos/{id}/like", metrics)

	require.Zero(t, metrics.FailedReqs)
	after := firstVideo(t, store)
	assert.Equal(t, before.IsLiked, after.IsLiked)
	assert.Equal(t, before.LikeCount, after.LikeCount)
}

func firstVideo(t *testing.T, store *memory.Store) domain.VideoItem {
	t.Helper()
	page, err := store.GetVideos(context.Background(), domain.PageRequest{Page: 1, Limit: 1})
	require.NoError(t, err)
	require.NotEmpty(t, page.Items)
	return page.Items[0]
}

// calculateMetrics computes performance metrics from latency data
func calculateMetrics(latencies []time.Duration, totalDuration time.Duration, totalRequests int) LoadTestMetrics {
	if len(latencies) == 0 {
		return LoadTestMetrics{}
	}

	sorted := make([]time.Duration, len(latencies))
	copy(sorted, latencies)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	var sum time.Duration
	for _, l := range latencies {
		sum += l
	}

	return LoadTestMetrics{
		TotalRequests:  int64(totalRequests),
		TotalDuration:  totalDuration,
		MinLatency:     sorted[0],
		MaxLatency:     sorted[len(sorted)-1],
		AvgLatency:     sum / time.Duration(len(latencies)),
		P95Latency:     sorted[int(float64(len(sorted))*0.95)],
		P99Latency:     sorted[int(float64(len(sorted))*0.99)],
		RequestsPerSec: float64(totalRequests) / totalDuration.Seconds(),
	}
}
