package mapsync

import (
	"context"

	"github.com/accessibility-map/internal/domain"
	"go.uber.org/zap"
)

// Session связывает живой view с движком синхронизации: каждое изменение
// видимого набора точек приводит к сверке маркеров.
type Session struct {
	engine *Engine
	view   *View
	logger *zap.Logger
}

func NewSession(engine *Engine, view *View, logger *zap.Logger) *Session {
	return &Session{
		engine: engine,
		view:   view,
		logger: logger,
	}
}

// Start инициализирует виджет и подписывает движок на изменения view.
// Сбой провайдера виджета возвращается вызывающему без ретраев.
func (s *Session) Start(ctx context.Context, container string, center domain.Coordinates, zoom int, theme Theme) error {
	if err := s.engine.Initialize(ctx, container, center, zoom, theme); err != nil {
		return err
	}

	s.view.Subscribe(s.engine.Render)
	s.engine.Render(s.view.Visible())

	s.logger.Info("Map session started", zap.String("container", container))
	return nil
}

// Engine возвращает движок сессии
func (s *Session) Engine() *Engine {
	return s.engine
}

// View возвращает live view сессии
func (s *Session) View() *View {
	return s.view
}
