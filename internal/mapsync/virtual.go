package mapsync

import (
	"context"
	"sync"

	"github.com/accessibility-map/internal/domain"
)

// VirtualProvider - in-memory реализация провайдера виджета. Используется
// в тестах движка и для серверной отладочной сессии карты.
type VirtualProvider struct {
	// LoadErr, если задан, возвращается из CreateMap (симуляция сбоя
	// загрузки провайдера)
	LoadErr error

	mu   sync.Mutex
	maps []*VirtualMap
}

func NewVirtualProvider() *VirtualProvider {
	return &VirtualProvider{}
}

func (p *VirtualProvider) CreateMap(ctx context.Context, container string, opts MapOptions) (Map, error) {
	if p.LoadErr != nil {
		return nil, p.LoadErr
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m := &VirtualMap{
		container: container,
		opts:      opts,
		markers:   make(map[*VirtualMarker]struct{}),
	}

	p.mu.Lock()
	p.maps = append(p.maps, m)
	p.mu.Unlock()

	return m, nil
}

// Maps возвращает созданные карты (для проверок в тестах)
func (p *VirtualProvider) Maps() []*VirtualMap {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]*VirtualMap, len(p.maps))
	copy(out, p.maps)
	return out
}

// VirtualMarker - маркер виртуальной карты
type VirtualMarker struct {
	Position domain.Coordinates
	Icon     IconDescriptor
	Title    string
	onClick  func()
}

// Click имитирует основной клик пользователя по маркеру
func (m *VirtualMarker) Click() {
	if m.onClick != nil {
		m.onClick()
	}
}

// VirtualMap хранит состояние виджета в памяти и позволяет тестам
// имитировать пользовательский ввод
type VirtualMap struct {
	container string
	opts      MapOptions

	mu             sync.Mutex
	markers        map[*VirtualMarker]struct{}
	styleRules     []StyleRule
	lastPanel      string
	secondaryClick func(lat, lon float64)
	pressStart     func(lat, lon float64)
	pressEnd       func()
}

func (m *VirtualMap) AddMarker(pos domain.Coordinates, icon IconDescriptor, title string, onClick func()) Marker {
	marker := &VirtualMarker{
		Position: pos,
		Icon:     icon,
		Title:    title,
		onClick:  onClick,
	}

	m.mu.Lock()
	m.markers[marker] = struct{}{}
	m.mu.Unlock()

	return marker
}

func (m *VirtualMap) RemoveMarker(marker Marker) {
	vm, ok := marker.(*VirtualMarker)
	if !ok {
		return
	}
	m.mu.Lock()
	delete(m.markers, vm)
	m.mu.Unlock()
}

func (m *VirtualMap) OpenInfoPanel(marker Marker, content string) {
	m.mu.Lock()
	m.lastPanel = content
	m.mu.Unlock()
}

func (m *VirtualMap) ApplyStyle(rules []StyleRule) {
	m.mu.Lock()
	m.styleRules = rules
	m.mu.Unlock()
}

func (m *VirtualMap) OnSecondaryClick(fn func(lat, lon float64)) {
	m.mu.Lock()
	m.secondaryClick = fn
	m.mu.Unlock()
}

func (m *VirtualMap) OnPressStart(fn func(lat, lon float64)) {
	m.mu.Lock()
	m.pressStart = fn
	m.mu.Unlock()
}

func (m *VirtualMap) OnPressEnd(fn func()) {
	m.mu.Lock()
	m.pressEnd = fn
	m.mu.Unlock()
}

// TriggerSecondaryClick имитирует вторичный клик по карте
func (m *VirtualMap) TriggerSecondaryClick(lat, lon float64) {
	m.mu.Lock()
	fn := m.secondaryClick
	m.mu.Unlock()
	if fn != nil {
		fn(lat, lon)
	}
}

// TriggerPressStart имитирует начало нажатия
func (m *VirtualMap) TriggerPressStart(lat, lon float64) {
	m.mu.Lock()
	fn := m.pressStart
	m.mu.Unlock()
	if fn != nil {
		fn(lat, lon)
	}
}

// TriggerPressEnd имитирует отпускание
func (m *VirtualMap) TriggerPressEnd() {
	m.mu.Lock()
	fn := m.pressEnd
	m.mu.Unlock()
	if fn != nil {
		fn()
	}
}

// MarkerCount возвращает число маркеров на карте
func (m *VirtualMap) MarkerCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.markers)
}

// Markers возвращает маркеры карты (порядок не определён)
func (m *VirtualMap) Markers() []*VirtualMarker {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*VirtualMarker, 0, len(m.markers))
	for marker := range m.markers {
		out = append(out, marker)
	}
	return out
}

// LastPanelContent возвращает содержимое последней открытой инфо-панели
func (m *VirtualMap) LastPanelContent() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastPanel
}

// StyleRules возвращает текущую таблицу стилей
func (m *VirtualMap) StyleRules() []StyleRule {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.styleRules
}

// Options возвращает конфигурацию, с которой была создана карта
func (m *VirtualMap) Options() MapOptions {
	return m.opts
}
