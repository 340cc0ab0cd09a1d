package mapsync

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/accessibility-map/internal/domain"
	"go.uber.org/zap"
)

// ErrWidgetLoad - фатальный сбой загрузки провайдера виджета.
// Движок не ретраит создание карты; ошибка поднимается вызывающему.
var ErrWidgetLoad = errors.New("map widget provider failed to load")

// markerHandle - runtime-сущность: один отрисованный маркер с его
// инфо-панелью. Принадлежит исключительно движку.
type markerHandle struct {
	pointID string
	pos     domain.Coordinates
	icon    IconDescriptor
	title   string
	content string
	marker  Marker
}

// MarkerState - наблюдаемое состояние одного маркера для снапшотов
type MarkerState struct {
	PointID  string             `json:"point_id"`
	Position domain.Coordinates `json:"position"`
	Icon     IconDescriptor     `json:"icon"`
	Title    string             `json:"title"`
}

// Engine поддерживает соответствие 1:1 между видимым набором точек и
// маркерами на виджете карты и подключает обработчики взаимодействия.
// Виджет и его маркеры мутируются только движком.
type Engine struct {
	provider Provider
	logger   *zap.Logger

	mu           sync.Mutex
	widget       Map
	theme        Theme
	markers      map[string]*markerHandle
	reportIntent func(lat, lon float64)
	longPress    *LongPressDetector
}

func NewEngine(provider Provider, logger *zap.Logger) *Engine {
	return &Engine{
		provider: provider,
		logger:   logger,
		markers:  make(map[string]*markerHandle),
	}
}

// Initialize создаёт виджет карты. Вызывается один раз; сбой провайдера
// фатален и возвращается как ErrWidgetLoad.
func (e *Engine) Initialize(ctx context.Context, container string, center domain.Coordinates, zoom int, theme Theme) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.widget != nil {
		e.logger.Warn("Map widget already initialized, ignoring")
		return nil
	}

	widget, err := e.provider.CreateMap(ctx, container, MapOptions{
		Center:     center,
		Zoom:       zoom,
		StyleRules: theme.StyleRules(),
	})
	if err != nil {
		e.logger.Error("Failed to create map widget", zap.Error(err))
		return fmt.Errorf("%w: %v", ErrWidgetLoad, err)
	}

	e.widget = widget
	e.theme = theme

	// оба пути ввода сводятся к одному callback
	widget.OnSecondaryClick(e.fireReportIntent)
	e.longPress = NewLongPressDetector(LongPressDelay, e.fireReportIntent)
	widget.OnPressStart(e.longPress.PressStart)
	widget.OnPressEnd(e.longPress.PressEnd)

	e.logger.Info("Map widget initialized",
		zap.Float64("center_lat", center.Lat),
		zap.Float64("center_lon", center.Lon),
		zap.Int("zoom", zoom),
		zap.String("theme", string(theme)),
	)
	return nil
}

// SetTheme повторно применяет таблицу стилей; маркеры не затрагиваются
func (e *Engine) SetTheme(theme Theme) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.widget == nil {
		return
	}
	e.theme = theme
	e.widget.ApplyStyle(theme.StyleRules())
}

// Theme возвращает текущую тему
func (e *Engine) Theme() Theme {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.theme
}

// OnReportIntent регистрирует callback намерения создать отчёт,
// вызываемый с координатами карты
func (e *Engine) OnReportIntent(fn func(lat, lon float64)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.reportIntent = fn
}

func (e *Engine) fireReportIntent(lat, lon float64) {
	e.mu.Lock()
	fn := e.reportIntent
	e.mu.Unlock()

	if fn != nil {
		fn(lat, lon)
	}
}

// Render сверяет маркеры с текущим видимым набором точек инкрементально:
// неизменённые маркеры переживают вызов, изменившиеся пересоздаются,
// лишние удаляются. После возврата число маркеров равно числу точек,
// и никакие два маркера не разделяют одну точку: дубликаты ID во входе
// отбрасываются. Идемпотентно; конкурентные вызовы сериализуются.
func (e *Engine) Render(points []domain.AccessibilityPoint) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.widget == nil {
		e.logger.Warn("Render called before widget initialization")
		return
	}

	desired := make(map[string]domain.AccessibilityPoint, len(points))
	for _, p := range points {
		if _, dup := desired[p.ID]; dup {
			e.logger.Warn("Duplicate point identity in render input, dropping",
				zap.String("point_id", p.ID))
			continue
		}
		desired[p.ID] = p
	}

	// удаляем маркеры отфильтрованных точек и точек с изменившимся видом
	for id, h := range e.markers {
		p, ok := desired[id]
		if ok && h.pos == p.Coordinates && h.icon == ResolveIcon(p) && h.content == BuildInfoPanel(p) {
			continue
		}
		e.widget.RemoveMarker(h.marker)
		delete(e.markers, id)
	}

	// добавляем недостающие
	for id, p := range desired {
		if _, ok := e.markers[id]; ok {
			continue
		}
		e.markers[id] = e.addMarker(p)
	}
}

func (e *Engine) addMarker(p domain.AccessibilityPoint) *markerHandle {
	h := &markerHandle{
		pointID: p.ID,
		pos:     p.Coordinates,
		icon:    ResolveIcon(p),
		title:   MarkerTitle(p),
		content: BuildInfoPanel(p),
	}
	widget := e.widget
	h.marker = widget.AddMarker(h.pos, h.icon, h.title, func() {
		widget.OpenInfoPanel(h.marker, h.content)
	})
	return h
}

// MarkerCount возвращает число отрисованных маркеров
func (e *Engine) MarkerCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.markers)
}

// Snapshot возвращает наблюдаемое состояние маркеров, отсортированное
// по идентификатору точки
func (e *Engine) Snapshot() []MarkerState {
	e.mu.Lock()
	defer e.mu.Unlock()

	states := make([]MarkerState, 0, len(e.markers))
	for _, h := range e.markers {
		states = append(states, MarkerState{
			PointID:  h.pointID,
			Position: h.pos,
			Icon:     h.icon,
			Title:    h.title,
		})
	}
	sort.Slice(states, func(i, j int) bool {
		return states[i].PointID < states[j].PointID
	})
	return states
}
