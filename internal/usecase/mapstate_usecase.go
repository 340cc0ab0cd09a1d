package usecase

import (
	"context"

	"github.com/accessibility-map/internal/domain"
	"github.com/accessibility-map/internal/mapsync"
	"github.com/accessibility-map/internal/usecase/dto"
	"go.uber.org/zap"
)

// MapStateUseCase обслуживает серверную отладочную сессию карты:
// прогоняет текущие точки через движок синхронизации на виртуальном
// виджете и отдаёт наблюдаемое состояние маркеров.
type MapStateUseCase struct {
	pointUC *PointUseCase
	session *mapsync.Session
	logger  *zap.Logger
}

func NewMapStateUseCase(pointUC *PointUseCase, session *mapsync.Session, logger *zap.Logger) *MapStateUseCase {
	return &MapStateUseCase{
		pointUC: pointUC,
		session: session,
		logger:  logger,
	}
}

// GetState обновляет сессию свежими точками и видимостью слоёв и
// возвращает снапшот маркеров
func (uc *MapStateUseCase) GetState(ctx context.Context, query dto.LayerQuery) (*dto.MapStateResponse, error) {
	sets, err := uc.pointUC.ListSets(ctx)
	if err != nil {
		return nil, err
	}

	vis := domain.DefaultLayerVisibility()
	if query.Barriers != nil {
		vis.Barriers = *query.Barriers
	}
	if query.Facilitators != nil {
		vis.Facilitators = *query.Facilitators
	}
	if query.POIs != nil {
		vis.POIs = *query.POIs
	}

	view := uc.session.View()
	for _, c := range domain.Categories {
		view.SetCategory(c, sets.ByCategory(c))
	}
	view.SetVisibility(vis)

	engine := uc.session.Engine()
	markers := engine.Snapshot()

	return &dto.MapStateResponse{
		Theme:      string(engine.Theme()),
		Visibility: vis,
		Markers:    markers,
		Total:      len(markers),
	}, nil
}

// SetTheme переключает тему серверной сессии
func (uc *MapStateUseCase) SetTheme(theme string) string {
	t := mapsync.ParseTheme(theme)
	uc.session.Engine().SetTheme(t)
	uc.logger.Info("Map session theme changed", zap.String("theme", string(t)))
	return string(t)
}
