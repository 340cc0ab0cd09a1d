package mapsync

// Theme - режим оформления карты
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// ParseTheme возвращает тему по имени; неизвестные значения трактуются
// как светлая тема
func ParseTheme(s string) Theme {
	if Theme(s) == ThemeDark {
		return ThemeDark
	}
	return ThemeLight
}

// StyleRules возвращает таблицу стилей темы. Светлая тема использует
// стили провайдера по умолчанию (пустая таблица).
func (t Theme) StyleRules() []StyleRule {
	if t != ThemeDark {
		return nil
	}
	return []StyleRule{
		{ElementType: "geometry", Stylers: map[string]string{"color": "#212121"}},
		{ElementType: "labels.icon", Stylers: map[string]string{"visibility": "off"}},
		{ElementType: "labels.text.fill", Stylers: map[string]string{"color": "#757575"}},
		{ElementType: "labels.text.stroke", Stylers: map[string]string{"color": "#212121"}},
		{FeatureType: "administrative", ElementType: "geometry", Stylers: map[string]string{"color": "#757575"}},
		{FeatureType: "road", ElementType: "geometry.fill", Stylers: map[string]string{"color": "#2c2c2c"}},
		{FeatureType: "water", ElementType: "geometry", Stylers: map[string]string{"color": "#000000"}},
	}
}
