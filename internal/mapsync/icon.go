package mapsync

import (
	"fmt"

	"github.com/accessibility-map/internal/domain"
)

// IconShape - стабильный идентификатор глифа маркера
type IconShape string

const (
	IconShapeSteps    IconShape = "steps"
	IconShapeWarning  IconShape = "warning"
	IconShapeElevator IconShape = "elevator"
	IconShapeCheck    IconShape = "check"
	IconShapePin      IconShape = "pin"
)

// IconColor - цвет глифа маркера
type IconColor string

const (
	IconColorRed   IconColor = "#ef4444"
	IconColorGreen IconColor = "#22c55e"
	IconColorBlue  IconColor = "#3b82f6"
)

// IconDescriptor описывает визуальный глиф маркера. Сам глиф - непрозрачный
// отображаемый ресурс, адресуемый стабильным ключом.
type IconDescriptor struct {
	Shape IconShape `json:"shape"`
	Color IconColor `json:"color"`
}

// AssetKey возвращает стабильный ключ ресурса для комбинации глифа
func (d IconDescriptor) AssetKey() string {
	return fmt.Sprintf("%s:%s", d.Shape, d.Color)
}

// ResolveIcon - детерминированное отображение точки в дескриптор глифа.
// Тотальная функция: каждая из трёх категорий имеет результат.
func ResolveIcon(p domain.AccessibilityPoint) IconDescriptor {
	switch p.Category {
	case domain.CategoryBarrier:
		shape := IconShapeWarning
		if p.Tags["barrier"] == "steps" {
			shape = IconShapeSteps
		}
		return IconDescriptor{Shape: shape, Color: IconColorRed}

	case domain.CategoryFacilitator:
		shape := IconShapeCheck
		if p.Tags["amenity"] == "elevator" {
			shape = IconShapeElevator
		}
		return IconDescriptor{Shape: shape, Color: IconColorGreen}

	default:
		// CategoryPOI и любые будущие значения - фиксированный пин
		return IconDescriptor{Shape: IconShapePin, Color: IconColorBlue}
	}
}
