package postgres_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/accessibility-map/internal/domain"
	"github.com/accessibility-map/internal/domain/repository"
	"github.com/accessibility-map/internal/pkg/errors"
	"github.com/accessibility-map/internal/repository/postgres"
	"github.com/accessibility-map/internal/repository/postgres/testhelpers"
)

// PointRepositorySuite tests the point repository with a real database
type PointRepositorySuite struct {
	suite.Suite
	testDB *testhelpers.TestDB
	repo   repository.PointRepository
	ctx    context.Context
}

func (s *PointRepositorySuite) SetupSuite() {
	s.testDB = testhelpers.SetupTestDB(s.T())
	s.ctx = context.Background()

	err := testhelpers.ApplyMigrations(s.testDB.DB.DB, "../../../migrations")
	s.NoError(err, "Failed to apply migrations")

	db := postgres.NewDBForTest(s.testDB.DB, s.testDB.Logger)
	s.repo = postgres.NewPointRepository(db)
}

func (s *PointRepositorySuite) TearDownSuite() {
	if s.testDB != nil {
		s.testDB.Close()
	}
}

func (s *PointRepositorySuite) SetupTest() {
	s.testDB.Cleanup(s.T())
}

func (s *PointRepositorySuite) insertPoint(category domain.Category, tags map[string]string) string {
	id, err := s.repo.Insert(s.ctx, &domain.AccessibilityPoint{
		Category:    category,
		Coordinates: domain.Coordinates{Lat: 28.6139, Lon: 77.2090},
		Tags:        tags,
	})
	s.Require().NoError(err)
	return id
}

func (s *PointRepositorySuite) TestInsertAndGetByID() {
	id := s.insertPoint(domain.CategoryBarrier, map[string]string{"barrier": "steps"})

	point, err := s.repo.GetByID(s.ctx, id)
	s.NoError(err)
	s.Equal(id, point.ID)
	s.Equal(domain.CategoryBarrier, point.Category)
	s.Equal(28.6139, point.Coordinates.Lat)
	s.Equal("steps", point.Tags["barrier"])
	s.False(point.CreatedAt.IsZero())
}

func (s *PointRepositorySuite) TestGetByID_NotFound() {
	_, err := s.repo.GetByID(s.ctx, "00000000-0000-0000-0000-000000000000")
	s.ErrorIs(err, errors.ErrPointNotFound)
}

func (s *PointRepositorySuite) TestInsert_InvalidCoordinates() {
	_, err := s.repo.Insert(s.ctx, &domain.AccessibilityPoint{
		Category:    domain.CategoryBarrier,
		Coordinates: domain.Coordinates{Lat: 91, Lon: 0},
	})
	s.ErrorIs(err, errors.ErrInvalidCoordinates)
}

func (s *PointRepositorySuite) TestListByCategory() {
	s.insertPoint(domain.CategoryBarrier, nil)
	s.insertPoint(domain.CategoryBarrier, nil)
	s.insertPoint(domain.CategoryPOI, nil)

	barriers, err := s.repo.ListByCategory(s.ctx, domain.CategoryBarrier)
	s.NoError(err)
	s.Len(barriers, 2)

	pois, err := s.repo.ListByCategory(s.ctx, domain.CategoryPOI)
	s.NoError(err)
	s.Len(pois, 1)

	facilitators, err := s.repo.ListByCategory(s.ctx, domain.CategoryFacilitator)
	s.NoError(err)
	s.Empty(facilitators)
}

func (s *PointRepositorySuite) TestListByCategories() {
	s.insertPoint(domain.CategoryBarrier, nil)
	s.insertPoint(domain.CategoryFacilitator, nil)
	s.insertPoint(domain.CategoryPOI, nil)

	points, err := s.repo.ListByCategories(s.ctx,
		[]domain.Category{domain.CategoryBarrier, domain.CategoryPOI})
	s.NoError(err)
	s.Len(points, 2)
}

func TestPointRepositorySuite(t *testing.T) {
	suite.Run(t, new(PointRepositorySuite))
}
