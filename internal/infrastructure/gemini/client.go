package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/accessibility-map/internal/config"
	"github.com/accessibility-map/internal/domain"
	"github.com/accessibility-map/internal/domain/repository"
	"github.com/accessibility-map/internal/pkg/utils"
	"go.uber.org/zap"
)

type client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	model      string
	logger     *zap.Logger
}

// NewSummarizerClient создает клиент сервиса генерации сводок
func NewSummarizerClient(cfg *config.SummarizerConfig, logger *zap.Logger) repository.SummaryRepository {
	return &client{
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
		logger:  logger,
	}
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Role  string `json:"role"`
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// Summarize запрашивает у модели краткую сводку доступности района
// по текущим наборам точек
func (c *client) Summarize(ctx context.Context, sets domain.PointSets) (string, error) {
	prompt := buildPrompt(sets)

	body, err := json.Marshal(generateRequest{
		Contents: []content{
			{
				Role:  "user",
				Parts: []part{{Text: prompt}},
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		c.logger.Error("Failed to create request", zap.Error(err))
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	c.logger.Debug("Calling summarization API",
		zap.String("model", c.model),
		zap.Int("total_points", sets.Total()))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Failed to execute request", zap.Error(err))
		return "", fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		c.logger.Error("Summarization API returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(respBody)))
		return "", fmt.Errorf("summarization API error: status %d", resp.StatusCode)
	}

	var genResp generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&genResp); err != nil {
		c.logger.Error("Failed to decode response", zap.Error(err))
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	if len(genResp.Candidates) == 0 || len(genResp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("summarization API returned no candidates")
	}

	summary := strings.TrimSpace(genResp.Candidates[0].Content.Parts[0].Text)
	if summary == "" {
		return "", fmt.Errorf("summarization API returned empty text")
	}

	return summary, nil
}

// buildPrompt формирует промпт из агрегатов по категориям и примерного
// охвата территории
func buildPrompt(sets domain.PointSets) string {
	var b strings.Builder
	b.WriteString("You are an expert in urban accessibility. Summarize the accessibility situation of the mapped area in 2-3 plain sentences for a general audience.\n\n")

	fmt.Fprintf(&b, "Reported barriers: %d\n", len(sets.Barriers))
	fmt.Fprintf(&b, "Accessibility helpers: %d\n", len(sets.Facilitators))
	fmt.Fprintf(&b, "Accessible places: %d\n", len(sets.POIs))

	if radius, ok := areaRadiusKm(sets); ok {
		fmt.Fprintf(&b, "Approximate area radius: %.1f km\n", radius)
	}

	writeTagCounts(&b, "Barrier types", sets.Barriers, "barrier")
	writeTagCounts(&b, "Helper types", sets.Facilitators, "amenity")
	writeTagCounts(&b, "Place types", sets.POIs, "amenity")

	b.WriteString("\nRespond with plain text only.")
	return b.String()
}

// areaRadiusKm оценивает радиус охвата как максимальное удаление точки
// от центроида
func areaRadiusKm(sets domain.PointSets) (float64, bool) {
	all := domain.VisiblePoints(sets, domain.DefaultLayerVisibility())
	if len(all) < 2 {
		return 0, false
	}

	var sumLat, sumLon float64
	for _, p := range all {
		sumLat += p.Coordinates.Lat
		sumLon += p.Coordinates.Lon
	}
	centerLat := sumLat / float64(len(all))
	centerLon := sumLon / float64(len(all))

	var max float64
	for _, p := range all {
		d := utils.HaversineDistance(centerLat, centerLon, p.Coordinates.Lat, p.Coordinates.Lon)
		if d > max {
			max = d
		}
	}
	return max, true
}

func writeTagCounts(b *strings.Builder, label string, points []domain.AccessibilityPoint, key string) {
	if len(points) == 0 {
		return
	}

	counts := make(map[string]int)
	for _, p := range points {
		if v := p.Tags[key]; v != "" {
			counts[v]++
		}
	}
	if len(counts) == 0 {
		return
	}

	fmt.Fprintf(b, "%s:", label)
	for value, n := range counts {
		fmt.Fprintf(b, " %s=%d", value, n)
	}
	b.WriteString("\n")
}
