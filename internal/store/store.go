// Package store holds the canonical in-memory domain collections for the
// lifetime of the process, persists them through a snapshot backend after
// every mutation, and notifies subscribers when shared state changes.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/edudesk/tms-api/internal/models"
	"github.com/edudesk/tms-api/internal/seed"
	"github.com/edudesk/tms-api/internal/snapshot"
)

// Collection names double as snapshot key suffixes.
type Collection string

const (
	CollectionTeachers     Collection = "teachers"
	CollectionCourses      Collection = "courses"
	CollectionStudents     Collection = "students"
	CollectionMeetings     Collection = "meetings"
	CollectionLeaves       Collection = "leaves"
	CollectionAnalytics    Collection = "analytics"
	CollectionSubjectStats Collection = "subject_stats"
)

// Op describes what happened to a collection.
type Op string

const (
	OpAdd        Op = "add"
	OpUpdate     Op = "update"
	OpDelete     Op = "delete"
	OpTransition Op = "transition"
	OpRefresh    Op = "refresh"
)

// Event is delivered to subscribers after a mutation has been applied and
// persisted.
type Event struct {
	Collection Collection
	Op         Op
	ID         string
}

// Sentinel errors surfaced by guarded operations. Plain update/delete on a
// missing id is a silent no-op and reports found=false instead.
var (
	ErrNotFound          = errors.New("record not found")
	ErrInvalidTransition = errors.New("invalid status transition")
)

// Metrics receives store instrumentation. Implemented by the metrics
// service; nil disables instrumentation.
type Metrics interface {
	ObserveMutation(collection, op string)
	ObserveSnapshotWrite(collection string, duration time.Duration, err error)
}

// Store is the single source of truth for all domain collections.
type Store struct {
	mu sync.RWMutex

	teachers     []models.Teacher
	courses      []models.Course
	students     []models.Student
	meetings     []models.Meeting
	leaves       []models.Leave
	analytics    []models.TeacherAnalytics
	subjectStats []models.SubjectStats
	generatedAt  time.Time

	snapshots snapshot.Store
	namespace string
	logger    *zap.Logger
	metrics   Metrics
	now       func() time.Time
	newID     func() string

	subMu   sync.Mutex
	subs    map[int]func(Event)
	nextSub int
}

// Option customises store construction.
type Option func(*Store)

// WithLogger sets the store logger.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithMetrics attaches mutation and snapshot instrumentation.
func WithMetrics(m Metrics) Option {
	return func(s *Store) { s.metrics = m }
}

// WithNamespace overrides the snapshot key prefix.
func WithNamespace(ns string) Option {
	return func(s *Store) {
		if ns != "" {
			s.namespace = ns
		}
	}
}

// WithClock overrides the time source, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// WithIDGenerator overrides id generation, for tests.
func WithIDGenerator(gen func() string) Option {
	return func(s *Store) {
		if gen != nil {
			s.newID = gen
		}
	}
}

// New constructs a store seeded with the bundled example records. Call Load
// afterwards to replace seeds with previously persisted snapshots.
func New(snapshots snapshot.Store, opts ...Option) *Store {
	if snapshots == nil {
		snapshots = snapshot.Noop{}
	}
	s := &Store{
		teachers:  seed.Teachers(),
		courses:   seed.Courses(),
		students:  seed.Students(),
		meetings:  seed.Meetings(),
		leaves:    seed.Leaves(),
		snapshots: snapshots,
		namespace: "tms",
		logger:    zap.NewNop(),
		now:       time.Now,
		newID:     uuid.NewString,
		subs:      make(map[int]func(Event)),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.recomputeAnalyticsLocked()
	return s
}

// Load replaces seeded collections with persisted snapshots where they
// exist and decode. Missing or undecodable snapshots leave the seeds
// authoritative. Derived analytics are recomputed afterwards so they never
// lag a newer teacher snapshot.
func (s *Store) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	loadCollection(ctx, s, CollectionTeachers, &s.teachers)
	loadCollection(ctx, s, CollectionCourses, &s.courses)
	loadCollection(ctx, s, CollectionStudents, &s.students)
	loadCollection(ctx, s, CollectionMeetings, &s.meetings)
	loadCollection(ctx, s, CollectionLeaves, &s.leaves)
	s.recomputeAnalyticsLocked()
}

func loadCollection[T any](ctx context.Context, s *Store, col Collection, target *[]T) {
	data, err := s.snapshots.Load(ctx, s.key(col))
	if err != nil {
		if !errors.Is(err, snapshot.ErrNotFound) {
			s.logger.Warn("snapshot load failed, keeping seed data",
				zap.String("collection", string(col)), zap.Error(err))
		}
		return
	}
	var decoded []T
	if err := json.Unmarshal(data, &decoded); err != nil {
		s.logger.Warn("snapshot decode failed, keeping seed data",
			zap.String("collection", string(col)), zap.Error(err))
		return
	}
	*target = decoded
}

// Subscribe registers a change listener and returns its unsubscribe
// function. Listeners are invoked synchronously, outside the store lock, in
// the goroutine that performed the mutation.
func (s *Store) Subscribe(fn func(Event)) (unsubscribe func()) {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	return func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()
		delete(s.subs, id)
	}
}

func (s *Store) notify(events ...Event) {
	s.subMu.Lock()
	listeners := make([]func(Event), 0, len(s.subs))
	for _, fn := range s.subs {
		listeners = append(listeners, fn)
	}
	s.subMu.Unlock()

	for _, event := range events {
		if s.metrics != nil {
			s.metrics.ObserveMutation(string(event.Collection), string(event.Op))
		}
		for _, fn := range listeners {
			fn(event)
		}
	}
}

func (s *Store) key(col Collection) string {
	return s.namespace + "_" + string(col)
}

// persistLocked serializes a collection and writes it through the snapshot
// backend. Failures are logged and swallowed: in-memory state stays
// authoritative for the rest of the session regardless of persistence
// success.
func (s *Store) persistLocked(ctx context.Context, col Collection) {
	var payload any
	switch col {
	case CollectionTeachers:
		payload = s.teachers
	case CollectionCourses:
		payload = s.courses
	case CollectionStudents:
		payload = s.students
	case CollectionMeetings:
		payload = s.meetings
	case CollectionLeaves:
		payload = s.leaves
	case CollectionAnalytics:
		payload = s.analytics
	case CollectionSubjectStats:
		payload = s.subjectStats
	default:
		return
	}

	data, err := json.Marshal(payload)
	if err != nil {
		s.logger.Error("snapshot encode failed", zap.String("collection", string(col)), zap.Error(err))
		return
	}

	start := s.now()
	err = s.snapshots.Save(ctx, s.key(col), data)
	if s.metrics != nil {
		s.metrics.ObserveSnapshotWrite(string(col), s.now().Sub(start), err)
	}
	if err != nil {
		s.logger.Warn("snapshot write failed, continuing with memory-only state",
			zap.String("collection", string(col)), zap.Error(err))
	}
}
