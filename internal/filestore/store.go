// Package filestore is the flat-file storage backend: one JSON document
// per entity class under a data directory. Every operation takes a
// process-wide mutex, so document read-modify-write cycles are
// serialized and the last-writer-wins race of the original layout
// cannot occur within one process. Bookings and requests use generated
// UUID keys rather than composite string keys.
package filestore

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/tutorhub/tutorhub-api/internal/models"
	"github.com/tutorhub/tutorhub-api/internal/seed"
	"github.com/tutorhub/tutorhub-api/internal/store"
)

// Store implements the storage contract over JSON documents on disk.
type Store struct {
	dir    string
	logger *zap.Logger

	// mu serializes all document access: single-writer discipline.
	mu sync.Mutex
}

// New ensures the data directory exists and returns a Store.
func New(dir string, logger *zap.Logger) (*Store, error) {
	if dir == "" {
		dir = "./data"
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}
	return &Store{dir: dir, logger: logger}, nil
}

// ListGoals returns every goal ordered by slug. Ids are positional over
// the sorted slugs since the document stores goals as a slug→name map.
func (s *Store) ListGoals(ctx context.Context) ([]models.Goal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.loadCatalog()
	if err != nil {
		return nil, err
	}
	return goalList(doc), nil
}

// FindGoalBySlug resolves a slug against the catalog document.
func (s *Store) FindGoalBySlug(ctx context.Context, slug string) (*models.Goal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.loadCatalog()
	if err != nil {
		return nil, err
	}
	for _, goal := range goalList(doc) {
		if goal.Slug == slug {
			g := goal
			return &g, nil
		}
	}
	return nil, store.ErrNotFound
}

// ListTeachers returns teachers matching the filter. A goal filter
// implies rating-descending order unless random sampling is requested.
func (s *Store) ListTeachers(ctx context.Context, filter models.TeacherFilter) ([]models.Teacher, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.loadCatalog()
	if err != nil {
		return nil, err
	}

	teachers := make([]models.Teacher, 0, len(doc.Teachers))
	for _, teacher := range doc.Teachers {
		if filter.Goal != "" && !hasGoal(teacher, filter.Goal) {
			continue
		}
		teachers = append(teachers, teacher)
	}

	switch filter.Sort {
	case models.SortRandom:
		rand.Shuffle(len(teachers), func(i, j int) {
			teachers[i], teachers[j] = teachers[j], teachers[i]
		})
	default:
		sort.Slice(teachers, func(i, j int) bool {
			if teachers[i].Rating != teachers[j].Rating {
				return teachers[i].Rating > teachers[j].Rating
			}
			return teachers[i].ID < teachers[j].ID
		})
	}

	if filter.Limit > 0 && len(teachers) > filter.Limit {
		teachers = teachers[:filter.Limit]
	}
	return teachers, nil
}

// FindTeacher fetches one teacher by id.
func (s *Store) FindTeacher(ctx context.Context, id int64) (*models.Teacher, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.loadCatalog()
	if err != nil {
		return nil, err
	}
	teacher, ok := doc.Teachers[teacherKey(id)]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &teacher, nil
}

// CreateBooking checks the availability cell, flips it and appends the
// booking — one logical step under the store mutex. The catalog
// document is written before the bookings document; if the second write
// fails the flipped cell stays booked, which loses an hour but never
// double-books it.
func (s *Store) CreateBooking(ctx context.Context, booking *models.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.loadCatalog()
	if err != nil {
		return err
	}
	key := teacherKey(booking.TeacherID)
	teacher, ok := doc.Teachers[key]
	if !ok {
		return store.ErrNotFound
	}
	if !teacher.Free.IsFree(booking.Day, booking.Time) {
		return store.ErrSlotTaken
	}

	teacher.Free = teacher.Free.Clone()
	if err := teacher.Free.Book(booking.Day, booking.Time); err != nil {
		return store.ErrSlotTaken
	}
	doc.Teachers[key] = teacher

	bookings := make(map[string]models.Booking)
	if _, err := loadDocument(s.dir, bookingsFile, &bookings); err != nil {
		return err
	}

	if booking.ID == "" {
		booking.ID = uuid.NewString()
	}
	if booking.CreatedAt.IsZero() {
		booking.CreatedAt = time.Now().UTC()
	}
	bookings[booking.ID] = *booking

	if err := writeDocument(s.dir, catalogFile, doc); err != nil {
		return err
	}
	if err := writeDocument(s.dir, bookingsFile, bookings); err != nil {
		s.logger.Error("booking document write failed after availability flip",
			zap.String("booking_id", booking.ID), zap.Error(err))
		return err
	}
	return nil
}

// CreateRequest appends an inquiry to the requests document.
func (s *Store) CreateRequest(ctx context.Context, request *models.Request) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	requests := make(map[string]models.Request)
	if _, err := loadDocument(s.dir, requestsFile, &requests); err != nil {
		return err
	}

	if request.ID == "" {
		request.ID = uuid.NewString()
	}
	if request.CreatedAt.IsZero() {
		request.CreatedAt = time.Now().UTC()
	}
	requests[request.ID] = *request

	return writeDocument(s.dir, requestsFile, requests)
}

// ListBookings returns every booking, newest first.
func (s *Store) ListBookings(ctx context.Context) ([]models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	byID := make(map[string]models.Booking)
	if _, err := loadDocument(s.dir, bookingsFile, &byID); err != nil {
		return nil, err
	}
	bookings := make([]models.Booking, 0, len(byID))
	for _, booking := range byID {
		bookings = append(bookings, booking)
	}
	sort.Slice(bookings, func(i, j int) bool {
		return bookings[i].CreatedAt.After(bookings[j].CreatedAt)
	})
	return bookings, nil
}

// ListRequests returns every inquiry, newest first.
func (s *Store) ListRequests(ctx context.Context) ([]models.Request, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	byID := make(map[string]models.Request)
	if _, err := loadDocument(s.dir, requestsFile, &byID); err != nil {
		return nil, err
	}
	requests := make([]models.Request, 0, len(byID))
	for _, request := range byID {
		requests = append(requests, request)
	}
	sort.Slice(requests, func(i, j int) bool {
		return requests[i].CreatedAt.After(requests[j].CreatedAt)
	})
	return requests, nil
}

// Seed replaces the catalog document with the provisioning dataset.
func (s *Store) Seed(ctx context.Context, ds *seed.Dataset) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := newCatalogDocument()
	for slug, name := range ds.Goals {
		doc.Goals[slug] = name
	}
	for _, teacher := range ds.Teachers {
		doc.Teachers[teacherKey(teacher.ID)] = teacher
	}
	return writeDocument(s.dir, catalogFile, doc)
}

func (s *Store) loadCatalog() (*catalogDocument, error) {
	doc := newCatalogDocument()
	if _, err := loadDocument(s.dir, catalogFile, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func goalList(doc *catalogDocument) []models.Goal {
	slugs := make([]string, 0, len(doc.Goals))
	for slug := range doc.Goals {
		slugs = append(slugs, slug)
	}
	sort.Strings(slugs)

	goals := make([]models.Goal, 0, len(slugs))
	for i, slug := range slugs {
		goals = append(goals, models.Goal{ID: int64(i + 1), Slug: slug, Name: doc.Goals[slug]})
	}
	return goals
}

func hasGoal(teacher models.Teacher, slug string) bool {
	for _, goal := range teacher.Goals {
		if goal == slug {
			return true
		}
	}
	return false
}

func teacherKey(id int64) string {
	return strconv.FormatInt(id, 10)
}
