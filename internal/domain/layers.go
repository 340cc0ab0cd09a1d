package domain

// MapLayerVisibility - видимость слоёв карты, по одному флагу на категорию.
// По умолчанию все слои включены.
type MapLayerVisibility struct {
	Barriers     bool `json:"barriers"`
	Facilitators bool `json:"facilitators"`
	POIs         bool `json:"pois"`
}

// DefaultLayerVisibility возвращает видимость по умолчанию (все слои включены)
func DefaultLayerVisibility() MapLayerVisibility {
	return MapLayerVisibility{
		Barriers:     true,
		Facilitators: true,
		POIs:         true,
	}
}

// Enabled проверяет, включён ли слой для заданной категории
func (v MapLayerVisibility) Enabled(c Category) bool {
	switch c {
	case CategoryBarrier:
		return v.Barriers
	case CategoryFacilitator:
		return v.Facilitators
	case CategoryPOI:
		return v.POIs
	}
	return false
}

// VisiblePoints возвращает точки включённых слоёв в фиксированном порядке
// категорий: barrier, facilitator, poi. Чистая функция без побочных эффектов.
func VisiblePoints(sets PointSets, vis MapLayerVisibility) []AccessibilityPoint {
	result := make([]AccessibilityPoint, 0, sets.Total())
	for _, c := range Categories {
		if !vis.Enabled(c) {
			continue
		}
		result = append(result, sets.ByCategory(c)...)
	}
	return result
}
