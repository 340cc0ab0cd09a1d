package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testPoint(id string, c Category) AccessibilityPoint {
	return AccessibilityPoint{
		ID:          id,
		Category:    c,
		Coordinates: Coordinates{Lat: 28.6, Lon: 77.2},
	}
}

func testSets() PointSets {
	return PointSets{
		Barriers:     []AccessibilityPoint{testPoint("b1", CategoryBarrier), testPoint("b2", CategoryBarrier)},
		Facilitators: []AccessibilityPoint{testPoint("f1", CategoryFacilitator)},
		POIs:         []AccessibilityPoint{testPoint("p1", CategoryPOI), testPoint("p2", CategoryPOI), testPoint("p3", CategoryPOI)},
	}
}

func TestDefaultLayerVisibility(t *testing.T) {
	vis := DefaultLayerVisibility()

	for _, c := range Categories {
		assert.True(t, vis.Enabled(c), "all layers enabled by default")
	}
}

func TestMapLayerVisibility_Enabled(t *testing.T) {
	vis := MapLayerVisibility{Barriers: true, Facilitators: false, POIs: true}

	assert.True(t, vis.Enabled(CategoryBarrier))
	assert.False(t, vis.Enabled(CategoryFacilitator))
	assert.True(t, vis.Enabled(CategoryPOI))
	assert.False(t, vis.Enabled(Category("road")), "unknown category is never visible")
}

func TestVisiblePoints(t *testing.T) {
	sets := testSets()

	t.Run("all layers enabled", func(t *testing.T) {
		visible := VisiblePoints(sets, DefaultLayerVisibility())

		assert.Len(t, visible, sets.Total())

		// fixed category order: barriers, facilitators, pois
		ids := make([]string, 0, len(visible))
		for _, p := range visible {
			ids = append(ids, p.ID)
		}
		assert.Equal(t, []string{"b1", "b2", "f1", "p1", "p2", "p3"}, ids)
	})

	t.Run("single layer disabled", func(t *testing.T) {
		vis := DefaultLayerVisibility()
		vis.Facilitators = false

		visible := VisiblePoints(sets, vis)
		assert.Len(t, visible, 5)
		for _, p := range visible {
			assert.NotEqual(t, CategoryFacilitator, p.Category)
		}
	})

	t.Run("all layers disabled", func(t *testing.T) {
		visible := VisiblePoints(sets, MapLayerVisibility{})
		assert.Empty(t, visible)
	})

	t.Run("empty sets", func(t *testing.T) {
		visible := VisiblePoints(PointSets{}, DefaultLayerVisibility())
		assert.Empty(t, visible)
	})
}

func TestPointSets_WithCategory(t *testing.T) {
	sets := testSets()
	replaced := sets.WithCategory(CategoryBarrier, []AccessibilityPoint{testPoint("b9", CategoryBarrier)})

	// original is untouched, result carries the replacement
	assert.Len(t, sets.Barriers, 2)
	assert.Len(t, replaced.Barriers, 1)
	assert.Equal(t, "b9", replaced.Barriers[0].ID)
	assert.Len(t, replaced.Facilitators, 1)
	assert.Len(t, replaced.POIs, 3)
}
