package services_test

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/casigo/bikeshare_rental_service/internal/core/domain"

	"github.com/google/uuid"
)

type noopLogger struct{}

func (noopLogger) Info(string, map[string]interface{})  {}
func (noopLogger) Warn(string, map[string]interface{})  {}
func (noopLogger) Error(string, map[string]interface{}) {}

type memCache struct {
	mu    sync.Mutex
	store map[string][]byte
}

func newMemCache() *memCache {
	return &memCache{store: make(map[string][]byte)}
}

func (m *memCache) Get(key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if v, ok := m.store[key]; ok {
		return v, nil
	}
	return nil, errors.New("cache miss")
}

func (m *memCache) Set(key string, value []byte, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.store[key] = value
	return nil
}

func (m *memCache) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.store, key)
	return nil
}

// memBikeRepo keeps bikes in a slice, insertion order preserved.
type memBikeRepo struct {
	mu        sync.Mutex
	bikes     []*domain.Bike
	createErr error
}

func (m *memBikeRepo) CreateBike(_ context.Context, bike *domain.Bike) (*domain.Bike, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	now := time.Now()
	bike.CreatedAt = now
	bike.UpdatedAt = now
	stored := *bike
	m.bikes = append(m.bikes, &stored)
	return bike, nil
}

func (m *memBikeRepo) GetAllBikes(_ context.Context) ([]*domain.Bike, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*domain.Bike, len(m.bikes))
	copy(out, m.bikes)
	return out, nil
}

func (m *memBikeRepo) DeleteBike(_ context.Context, bikeID uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, bike := range m.bikes {
		if bike.ID == bikeID {
			m.bikes = append(m.bikes[:i], m.bikes[i+1:]...)
			return nil
		}
	}
	return domain.ErrBikeNotFound
}

func (m *memBikeRepo) DeleteAllBikes(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.bikes = nil
	return nil
}

// memCommentRepo keeps comments in a slice and records the last filter a
// FindComments call received.
type memCommentRepo struct {
	mu         sync.Mutex
	comments   []*domain.Comment
	views      []*domain.CommentView
	lastFilter *domain.CommentFilter
	nextID     int
	findErr    error
}

func (m *memCommentRepo) CreateComment(_ context.Context, comment *domain.Comment) (*domain.Comment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	comment.ID = m.nextID
	comment.CreatedAt = time.Now()
	stored := *comment
	m.comments = append(m.comments, &stored)
	return comment, nil
}

func (m *memCommentRepo) GetCommentsByBikeID(_ context.Context, bikeID uuid.UUID) ([]*domain.Comment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*domain.Comment
	for _, comment := range m.comments {
		if comment.BikeID == bikeID {
			out = append(out, comment)
		}
	}
	return out, nil
}

func (m *memCommentRepo) GetCommentsByUserID(_ context.Context, userID int) ([]*domain.Comment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*domain.Comment
	for _, comment := range m.comments {
		if comment.UserID == userID {
			out = append(out, comment)
		}
	}
	return out, nil
}

func (m *memCommentRepo) FindComments(_ context.Context, filter *domain.CommentFilter) ([]*domain.CommentView, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastFilter = filter
	if m.findErr != nil {
		return nil, m.findErr
	}
	return m.views, nil
}

type memUserRepo struct {
	users map[int]*domain.User
}

func (m *memUserRepo) GetUserByID(_ context.Context, userID int) (*domain.User, error) {
	if user, ok := m.users[userID]; ok {
		return user, nil
	}
	return nil, errors.New("user not found")
}

// memStationRepo assigns ids as max existing + 1, mirroring the SQL insert.
type memStationRepo struct {
	mu       sync.Mutex
	stations []*domain.Station
}

func (m *memStationRepo) CreateStation(_ context.Context, name string) (*domain.Station, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	maxID := 0
	for _, station := range m.stations {
		if station.ID > maxID {
			maxID = station.ID
		}
	}
	station := &domain.Station{ID: maxID + 1, Name: name}
	m.stations = append(m.stations, station)
	return station, nil
}

func (m *memStationRepo) GetAllStations(_ context.Context) ([]*domain.Station, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*domain.Station, len(m.stations))
	copy(out, m.stations)
	return out, nil
}

type stubSeedSource struct {
	records []*domain.SeedBikeRecord
	loadErr error
}

func (s *stubSeedSource) LoadBikes(_ context.Context) ([]*domain.SeedBikeRecord, error) {
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	return s.records, nil
}
