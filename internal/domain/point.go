package domain

import "time"

// Category классифицирует точку доступности. Закрытое множество значений.
type Category string

const (
	CategoryBarrier     Category = "barrier"
	CategoryFacilitator Category = "facilitator"
	CategoryPOI         Category = "poi"
)

// Categories перечисляет категории в фиксированном порядке отображения
var Categories = []Category{CategoryBarrier, CategoryFacilitator, CategoryPOI}

// Valid проверяет, что категория входит в закрытое множество
func (c Category) Valid() bool {
	switch c {
	case CategoryBarrier, CategoryFacilitator, CategoryPOI:
		return true
	}
	return false
}

// Label возвращает человекочитаемую подпись категории для инфо-панели
func (c Category) Label() string {
	switch c {
	case CategoryBarrier:
		return "Accessibility Barrier"
	case CategoryFacilitator:
		return "Accessibility Helper"
	case CategoryPOI:
		return "Accessible Place"
	}
	return string(c)
}

// Coordinates - пара координат в градусах, WGS84
type Coordinates struct {
	Lat float64 `json:"lat" db:"lat"`
	Lon float64 `json:"lon" db:"lon"`
}

// AccessibilityPoint представляет точку доступности на карте.
// Запись неизменяема после создания; ID назначается слоем персистентности.
type AccessibilityPoint struct {
	ID          string            `json:"id" db:"id"`
	Category    Category          `json:"category" db:"category"`
	Coordinates Coordinates       `json:"coordinates"`
	Tags        map[string]string `json:"tags" db:"tags"`
	CreatedAt   time.Time         `json:"created_at" db:"created_at"`
	UserID      *string           `json:"user_id,omitempty" db:"user_id"`
}

// PointSets - три независимых списка точек, по одному на категорию.
// Порядок внутри каждого списка задаётся источником данных (created_at DESC).
type PointSets struct {
	Barriers     []AccessibilityPoint `json:"barriers"`
	Facilitators []AccessibilityPoint `json:"facilitators"`
	POIs         []AccessibilityPoint `json:"pois"`
}

// ByCategory возвращает список точек заданной категории
func (s PointSets) ByCategory(c Category) []AccessibilityPoint {
	switch c {
	case CategoryBarrier:
		return s.Barriers
	case CategoryFacilitator:
		return s.Facilitators
	case CategoryPOI:
		return s.POIs
	}
	return nil
}

// WithCategory возвращает копию наборов с заменённым списком одной категории
func (s PointSets) WithCategory(c Category, points []AccessibilityPoint) PointSets {
	switch c {
	case CategoryBarrier:
		s.Barriers = points
	case CategoryFacilitator:
		s.Facilitators = points
	case CategoryPOI:
		s.POIs = points
	}
	return s
}

// Total возвращает общее количество точек во всех категориях
func (s PointSets) Total() int {
	return len(s.Barriers) + len(s.Facilitators) + len(s.POIs)
}
