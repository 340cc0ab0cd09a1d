package mapsync

import (
	"sync"

	"github.com/accessibility-map/internal/domain"
)

// View держит текущее состояние живой ленты: три набора точек по
// категориям и видимость слоёв. Подписчики получают пересчитанный
// видимый набор после каждого изменения.
type View struct {
	mu         sync.RWMutex
	sets       domain.PointSets
	visibility domain.MapLayerVisibility
	listeners  []func(points []domain.AccessibilityPoint)
}

func NewView() *View {
	return &View{
		visibility: domain.DefaultLayerVisibility(),
	}
}

// SetCategory заменяет набор точек одной категории целиком
func (v *View) SetCategory(c domain.Category, points []domain.AccessibilityPoint) {
	v.mu.Lock()
	v.sets = v.sets.WithCategory(c, points)
	visible, listeners := v.visibleLocked()
	v.mu.Unlock()

	notify(listeners, visible)
}

// SetVisibility заменяет видимость слоёв
func (v *View) SetVisibility(vis domain.MapLayerVisibility) {
	v.mu.Lock()
	v.visibility = vis
	visible, listeners := v.visibleLocked()
	v.mu.Unlock()

	notify(listeners, visible)
}

// Sets возвращает текущие наборы точек
func (v *View) Sets() domain.PointSets {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.sets
}

// Visibility возвращает текущую видимость слоёв
func (v *View) Visibility() domain.MapLayerVisibility {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.visibility
}

// Visible возвращает видимые точки в фиксированном порядке категорий
func (v *View) Visible() []domain.AccessibilityPoint {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return domain.VisiblePoints(v.sets, v.visibility)
}

// Subscribe регистрирует подписчика изменений видимого набора
func (v *View) Subscribe(fn func(points []domain.AccessibilityPoint)) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.listeners = append(v.listeners, fn)
}

func (v *View) visibleLocked() ([]domain.AccessibilityPoint, []func([]domain.AccessibilityPoint)) {
	listeners := make([]func([]domain.AccessibilityPoint), len(v.listeners))
	copy(listeners, v.listeners)
	return domain.VisiblePoints(v.sets, v.visibility), listeners
}

// notify вызывает подписчиков вне блокировки view
func notify(listeners []func([]domain.AccessibilityPoint), visible []domain.AccessibilityPoint) {
	for _, fn := range listeners {
		fn(visible)
	}
}
