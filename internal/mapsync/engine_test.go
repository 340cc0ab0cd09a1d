package mapsync_test

import (
	"context"
	"errors"
	"testing"

	"github.com/accessibility-map/internal/domain"
	"github.com/accessibility-map/internal/mapsync"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var delhiCenter = domain.Coordinates{Lat: 28.6139, Lon: 77.2090}

func newTestEngine(t *testing.T) (*mapsync.Engine, *mapsync.VirtualMap) {
	t.Helper()

	provider := mapsync.NewVirtualProvider()
	engine := mapsync.NewEngine(provider, zap.NewNop())

	err := engine.Initialize(context.Background(), "map-container", delhiCenter, 12, mapsync.ThemeLight)
	require.NoError(t, err)

	maps := provider.Maps()
	require.Len(t, maps, 1)
	return engine, maps[0]
}

func barrierPoint(id string, lat, lon float64) domain.AccessibilityPoint {
	return domain.AccessibilityPoint{
		ID:          id,
		Category:    domain.CategoryBarrier,
		Coordinates: domain.Coordinates{Lat: lat, Lon: lon},
		Tags:        map[string]string{"barrier": "steps", "description": "steps"},
	}
}

func TestEngine_Initialize_ProviderFailure(t *testing.T) {
	provider := mapsync.NewVirtualProvider()
	provider.LoadErr = errors.New("network unreachable")
	engine := mapsync.NewEngine(provider, zap.NewNop())

	err := engine.Initialize(context.Background(), "map-container", delhiCenter, 12, mapsync.ThemeLight)

	assert.ErrorIs(t, err, mapsync.ErrWidgetLoad)
	assert.Equal(t, 0, engine.MarkerCount())
}

func TestEngine_Initialize_Idempotent(t *testing.T) {
	provider := mapsync.NewVirtualProvider()
	engine := mapsync.NewEngine(provider, zap.NewNop())

	require.NoError(t, engine.Initialize(context.Background(), "map-container", delhiCenter, 12, mapsync.ThemeLight))
	require.NoError(t, engine.Initialize(context.Background(), "map-container", delhiCenter, 12, mapsync.ThemeLight))

	assert.Len(t, provider.Maps(), 1, "second initialization must not create another widget")
}

func TestEngine_Render(t *testing.T) {
	t.Run("marker per point", func(t *testing.T) {
		engine, widget := newTestEngine(t)

		points := []domain.AccessibilityPoint{
			barrierPoint("b1", 28.61, 77.20),
			barrierPoint("b2", 28.62, 77.21),
			barrierPoint("b3", 28.63, 77.22),
		}
		engine.Render(points)

		assert.Equal(t, 3, engine.MarkerCount())
		assert.Equal(t, 3, widget.MarkerCount())
	})

	t.Run("idempotent re-render keeps marker instances", func(t *testing.T) {
		engine, widget := newTestEngine(t)

		points := []domain.AccessibilityPoint{barrierPoint("b1", 28.61, 77.20)}
		engine.Render(points)

		before := widget.Markers()
		require.Len(t, before, 1)

		engine.Render(points)

		after := widget.Markers()
		require.Len(t, after, 1)
		assert.Same(t, before[0], after[0], "unchanged point must not be re-created")
	})

	t.Run("removed point removes marker", func(t *testing.T) {
		engine, widget := newTestEngine(t)

		engine.Render([]domain.AccessibilityPoint{
			barrierPoint("b1", 28.61, 77.20),
			barrierPoint("b2", 28.62, 77.21),
		})
		engine.Render([]domain.AccessibilityPoint{
			barrierPoint("b1", 28.61, 77.20),
		})

		assert.Equal(t, 1, engine.MarkerCount())
		assert.Equal(t, 1, widget.MarkerCount())
	})

	t.Run("moved point is re-created at new position", func(t *testing.T) {
		engine, widget := newTestEngine(t)

		engine.Render([]domain.AccessibilityPoint{barrierPoint("b1", 28.61, 77.20)})
		engine.Render([]domain.AccessibilityPoint{barrierPoint("b1", 28.99, 77.20)})

		markers := widget.Markers()
		require.Len(t, markers, 1)
		assert.Equal(t, domain.Coordinates{Lat: 28.99, Lon: 77.20}, markers[0].Position)
	})

	t.Run("duplicate point identity is dropped", func(t *testing.T) {
		engine, _ := newTestEngine(t)

		engine.Render([]domain.AccessibilityPoint{
			barrierPoint("b1", 28.61, 77.20),
			barrierPoint("b1", 28.62, 77.21),
		})

		assert.Equal(t, 1, engine.MarkerCount(), "no two markers share a point")
	})

	t.Run("empty render clears all markers", func(t *testing.T) {
		engine, widget := newTestEngine(t)

		engine.Render([]domain.AccessibilityPoint{
			barrierPoint("b1", 28.61, 77.20),
			barrierPoint("b2", 28.62, 77.21),
		})
		engine.Render(nil)

		assert.Equal(t, 0, engine.MarkerCount())
		assert.Equal(t, 0, widget.MarkerCount())
	})
}

func TestEngine_MarkerClick_OpensInfoPanel(t *testing.T) {
	engine, widget := newTestEngine(t)

	point := barrierPoint("b1", 28.61, 77.20)
	engine.Render([]domain.AccessibilityPoint{point})

	markers := widget.Markers()
	require.Len(t, markers, 1)

	markers[0].Click()

	assert.Equal(t, mapsync.BuildInfoPanel(point), widget.LastPanelContent())
}

func TestEngine_ReportIntent(t *testing.T) {
	engine, widget := newTestEngine(t)

	var gotLat, gotLon float64
	var fired int
	engine.OnReportIntent(func(lat, lon float64) {
		gotLat, gotLon = lat, lon
		fired++
	})

	widget.TriggerSecondaryClick(28.65, 77.25)

	assert.Equal(t, 1, fired)
	assert.Equal(t, 28.65, gotLat)
	assert.Equal(t, 77.25, gotLon)
}

func TestEngine_SetTheme(t *testing.T) {
	engine, widget := newTestEngine(t)

	engine.Render([]domain.AccessibilityPoint{barrierPoint("b1", 28.61, 77.20)})
	engine.SetTheme(mapsync.ThemeDark)

	assert.Equal(t, mapsync.ThemeDark, engine.Theme())
	assert.Equal(t, mapsync.ThemeDark.StyleRules(), widget.StyleRules())
	assert.Equal(t, 1, engine.MarkerCount(), "theme change must not touch markers")
}

func TestEngine_Snapshot_Sorted(t *testing.T) {
	engine, _ := newTestEngine(t)

	engine.Render([]domain.AccessibilityPoint{
		barrierPoint("c", 28.63, 77.22),
		barrierPoint("a", 28.61, 77.20),
		barrierPoint("b", 28.62, 77.21),
	})

	snapshot := engine.Snapshot()
	require.Len(t, snapshot, 3)
	assert.Equal(t, "a", snapshot[0].PointID)
	assert.Equal(t, "b", snapshot[1].PointID)
	assert.Equal(t, "c", snapshot[2].PointID)
	assert.Equal(t, domain.Coordinates{Lat: 28.61, Lon: 77.20}, snapshot[0].Position)
	assert.Equal(t, mapsync.IconShapeSteps, snapshot[0].Icon.Shape)
}
