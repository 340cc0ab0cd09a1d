package mapsync

import (
	"context"

	"github.com/accessibility-map/internal/domain"
)

// Marker - непрозрачный дескриптор маркера, принадлежащий провайдеру виджета
type Marker interface{}

// MapOptions - конфигурация, распознаваемая провайдером виджета
type MapOptions struct {
	Center           domain.Coordinates `json:"center"`
	Zoom             int                `json:"zoom"`
	StyleRules       []StyleRule        `json:"style_rules,omitempty"`
	DisableDefaultUI bool               `json:"disable_default_ui"`
}

// StyleRule - одно правило таблицы стилей карты
type StyleRule struct {
	FeatureType string            `json:"feature_type,omitempty"`
	ElementType string            `json:"element_type,omitempty"`
	Stylers     map[string]string `json:"stylers,omitempty"`
}

// Map - созданный виджетом экземпляр карты. Все операции после создания -
// чистые переходы состояния без ошибок.
type Map interface {
	// AddMarker добавляет маркер; onClick вызывается при основном клике
	AddMarker(pos domain.Coordinates, icon IconDescriptor, title string, onClick func()) Marker

	// RemoveMarker удаляет маркер с карты
	RemoveMarker(m Marker)

	// OpenInfoPanel открывает инфо-панель с plain-text содержимым
	OpenInfoPanel(m Marker, content string)

	// ApplyStyle повторно применяет таблицу стилей; маркеры не затрагиваются
	ApplyStyle(rules []StyleRule)

	// OnSecondaryClick регистрирует обработчик вторичного клика
	OnSecondaryClick(fn func(lat, lon float64))

	// OnPressStart / OnPressEnd - события нажатия для press-and-hold
	OnPressStart(fn func(lat, lon float64))
	OnPressEnd(fn func())
}

// Provider абстрагирует стороннего провайдера виджета карты.
// Сбой CreateMap фатален для движка и не ретраится.
type Provider interface {
	CreateMap(ctx context.Context, container string, opts MapOptions) (Map, error)
}
