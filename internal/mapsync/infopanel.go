package mapsync

import (
	"fmt"
	"html"
	"sort"
	"strings"

	"github.com/accessibility-map/internal/domain"
)

// BuildInfoPanel строит plain-text содержимое инфо-панели точки:
// подпись категории, все пары тегов и описание. Значения тегов -
// недоверенные пользовательские данные, всё экранируется.
func BuildInfoPanel(p domain.AccessibilityPoint) string {
	var b strings.Builder
	b.WriteString(html.EscapeString(p.Category.Label()))

	keys := make([]string, 0, len(p.Tags))
	for k := range p.Tags {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		b.WriteString(fmt.Sprintf("\n%s: %s", html.EscapeString(k), html.EscapeString(p.Tags[k])))
	}

	if desc, ok := p.Tags["description"]; ok && desc != "" {
		b.WriteString("\n\n")
		b.WriteString(html.EscapeString(desc))
	}

	return b.String()
}

// MarkerTitle возвращает заголовок маркера: описание точки либо
// категорию как fallback
func MarkerTitle(p domain.AccessibilityPoint) string {
	if desc := p.Tags["description"]; desc != "" {
		return desc
	}
	return fmt.Sprintf("%s point", p.Category)
}
