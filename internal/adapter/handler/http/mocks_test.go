package http_test

import (
	"context"
	"time"

	"github.com/casigo/bikeshare_rental_service/internal/core/domain"

	"github.com/gin-gonic/gin"
)

type noopLogger struct{}

func (noopLogger) Info(string, map[string]interface{})  {}
func (noopLogger) Warn(string, map[string]interface{})  {}
func (noopLogger) Error(string, map[string]interface{}) {}

type noopMetrics struct{}

func (noopMetrics) RecordMetrics(*gin.Context, time.Time) {}

type mockBikeService struct {
	ListBikesFunc      func(ctx context.Context) ([]*domain.BikeWithRating, error)
	CreateBikeFunc     func(ctx context.Context, no int, status domain.BikeStatus) (*domain.Bike, error)
	DeleteBikeFunc     func(ctx context.Context, bikeID string) error
	DeleteAllBikesFunc func(ctx context.Context) error
}

func (m *mockBikeService) ListBikes(ctx context.Context) ([]*domain.BikeWithRating, error) {
	return m.ListBikesFunc(ctx)
}

func (m *mockBikeService) CreateBike(ctx context.Context, no int, status domain.BikeStatus) (*domain.Bike, error) {
	return m.CreateBikeFunc(ctx, no, status)
}

func (m *mockBikeService) DeleteBike(ctx context.Context, bikeID string) error {
	return m.DeleteBikeFunc(ctx, bikeID)
}

func (m *mockBikeService) DeleteAllBikes(ctx context.Context) error {
	return m.DeleteAllBikesFunc(ctx)
}

type mockCommentService struct {
	CreateCommentFunc   func(ctx context.Context, comment *domain.Comment) error
	FindAllCommentsFunc func(ctx context.Context, filter *domain.CommentFilter) ([]*domain.CommentView, error)
}

func (m *mockCommentService) CreateComment(ctx context.Context, comment *domain.Comment) error {
	return m.CreateCommentFunc(ctx, comment)
}

func (m *mockCommentService) FindAllComments(ctx context.Context, filter *domain.CommentFilter) ([]*domain.CommentView, error) {
	return m.FindAllCommentsFunc(ctx, filter)
}

type mockStationService struct {
	CreateStationFunc func(ctx context.Context, name string) (*domain.Station, error)
	ListStationsFunc  func(ctx context.Context) ([]*domain.Station, error)
}

func (m *mockStationService) CreateStation(ctx context.Context, name string) (*domain.Station, error) {
	return m.CreateStationFunc(ctx, name)
}

func (m *mockStationService) ListStations(ctx context.Context) ([]*domain.Station, error) {
	return m.ListStationsFunc(ctx)
}

type mockSeedService struct {
	PopulateFunc func(ctx context.Context) (int, error)
}

func (m *mockSeedService) Populate(ctx context.Context) (int, error) {
	return m.PopulateFunc(ctx)
}
