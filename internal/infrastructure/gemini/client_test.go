package gemini

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/accessibility-map/internal/config"
	"github.com/accessibility-map/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testConfig(baseURL string) *config.SummarizerConfig {
	return &config.SummarizerConfig{
		BaseURL:        baseURL,
		APIKey:         "test-key",
		Model:          "gemini-2.0-flash",
		RequestTimeout: 5 * time.Second,
	}
}

func testSets() domain.PointSets {
	return domain.PointSets{
		Barriers: []domain.AccessibilityPoint{
			{
				ID:          "b1",
				Category:    domain.CategoryBarrier,
				Coordinates: domain.Coordinates{Lat: 28.6139, Lon: 77.2090},
				Tags:        map[string]string{"barrier": "steps"},
			},
			{
				ID:          "b2",
				Category:    domain.CategoryBarrier,
				Coordinates: domain.Coordinates{Lat: 28.6200, Lon: 77.2150},
				Tags:        map[string]string{"barrier": "kerb"},
			},
		},
		POIs: []domain.AccessibilityPoint{
			{
				ID:          "p1",
				Category:    domain.CategoryPOI,
				Coordinates: domain.Coordinates{Lat: 28.6100, Lon: 77.2000},
				Tags:        map[string]string{"amenity": "cafe", "wheelchair": "yes"},
			},
		},
	}
}

func TestClient_Summarize(t *testing.T) {
	logger := zap.NewNop()

	t.Run("successful request", func(t *testing.T) {
		var gotPath string
		var gotReq generateRequest

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			assert.Equal(t, "test-key", r.URL.Query().Get("key"))
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(map[string]interface{}{
				"candidates": []map[string]interface{}{
					{
						"content": map[string]interface{}{
							"parts": []map[string]string{
								{"text": "  The area has two reported barriers and one accessible cafe.  "},
							},
						},
					},
				},
			})
		}))
		defer server.Close()

		c := NewSummarizerClient(testConfig(server.URL), logger)
		summary, err := c.Summarize(context.Background(), testSets())

		require.NoError(t, err)
		assert.Equal(t, "The area has two reported barriers and one accessible cafe.", summary)
		assert.Equal(t, "/models/gemini-2.0-flash:generateContent", gotPath)

		require.Len(t, gotReq.Contents, 1)
		require.Len(t, gotReq.Contents[0].Parts, 1)
		prompt := gotReq.Contents[0].Parts[0].Text
		assert.Contains(t, prompt, "Reported barriers: 2")
		assert.Contains(t, prompt, "Accessible places: 1")
		assert.Contains(t, prompt, "steps=1")
	})

	t.Run("api error status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"error": "quota exceeded"}`, http.StatusTooManyRequests)
		}))
		defer server.Close()

		c := NewSummarizerClient(testConfig(server.URL), logger)
		_, err := c.Summarize(context.Background(), testSets())

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "status 429")
	})

	t.Run("no candidates", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"candidates": []}`))
		}))
		defer server.Close()

		c := NewSummarizerClient(testConfig(server.URL), logger)
		_, err := c.Summarize(context.Background(), testSets())

		assert.Error(t, err)
	})

	t.Run("context cancellation", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(time.Second)
		}))
		defer server.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		c := NewSummarizerClient(testConfig(server.URL), logger)
		_, err := c.Summarize(ctx, testSets())

		assert.Error(t, err)
	})
}

func TestBuildPrompt_AreaRadius(t *testing.T) {
	prompt := buildPrompt(testSets())
	assert.Contains(t, prompt, "Approximate area radius:")

	// single point gives no radius estimate
	single := domain.PointSets{
		Barriers: []domain.AccessibilityPoint{
			{ID: "b1", Category: domain.CategoryBarrier},
		},
	}
	assert.NotContains(t, buildPrompt(single), "Approximate area radius:")
}
