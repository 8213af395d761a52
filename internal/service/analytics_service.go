package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/edudesk/tms-api/internal/models"
)

type analyticsStore interface {
	Analytics() models.AnalyticsReport
	RefreshAnalytics(ctx context.Context) models.AnalyticsReport
}

// AnalyticsService exposes the derived analytics collections. The store
// refreshes them on every teacher mutation; Refresh exists for callers that
// changed source data out of band.
type AnalyticsService struct {
	store  analyticsStore
	logger *zap.Logger
}

// NewAnalyticsService constructs AnalyticsService.
func NewAnalyticsService(store analyticsStore, logger *zap.Logger) *AnalyticsService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AnalyticsService{store: store, logger: logger}
}

// Report returns both derived collections with their generation stamp.
func (s *AnalyticsService) Report(ctx context.Context) models.AnalyticsReport {
	return s.store.Analytics()
}

// Teachers returns the per-teacher analytics rows.
func (s *AnalyticsService) Teachers(ctx context.Context) []models.TeacherAnalytics {
	return s.store.Analytics().Teachers
}

// Subjects returns the per-subject aggregate rows.
func (s *AnalyticsService) Subjects(ctx context.Context) []models.SubjectStats {
	return s.store.Analytics().Subjects
}

// Refresh forces a recomputation and returns the fresh report.
func (s *AnalyticsService) Refresh(ctx context.Context) models.AnalyticsReport {
	report := s.store.RefreshAnalytics(ctx)
	s.logger.Info("analytics refreshed",
		zap.Int("teachers", len(report.Teachers)),
		zap.Int("subjects", len(report.Subjects)))
	return report
}
