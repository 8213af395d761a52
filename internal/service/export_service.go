package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/edudesk/tms-api/internal/models"
	appErrors "github.com/edudesk/tms-api/pkg/errors"
	"github.com/edudesk/tms-api/pkg/export"
	"github.com/edudesk/tms-api/pkg/jobs"
	"github.com/edudesk/tms-api/pkg/storage"
)

// ExportType enumerates the report datasets built from the store.
type ExportType string

const (
	ExportTeacherRoster ExportType = "teacher_roster"
	ExportLeaveReport   ExportType = "leave_report"
	ExportCourseCatalog ExportType = "course_catalog"
)

// ExportFormat enumerates artifact encodings.
type ExportFormat string

const (
	ExportFormatCSV ExportFormat = "csv"
	ExportFormatPDF ExportFormat = "pdf"
)

// ExportStatus enumerates job lifecycle states.
type ExportStatus string

const (
	ExportStatusQueued     ExportStatus = "queued"
	ExportStatusProcessing ExportStatus = "processing"
	ExportStatusFinished   ExportStatus = "finished"
	ExportStatusFailed     ExportStatus = "failed"
)

// ExportJob tracks one asynchronous export through its lifecycle. Jobs live
// in memory for the process lifetime; artifacts on disk outlive them only
// until cleanup.
type ExportJob struct {
	ID         string       `json:"id"`
	Type       ExportType   `json:"type"`
	Format     ExportFormat `json:"format"`
	Status     ExportStatus `json:"status"`
	Progress   int          `json:"progress"`
	ResultURL  string       `json:"result_url,omitempty"`
	Error      string       `json:"error,omitempty"`
	CreatedBy  string       `json:"created_by"`
	CreatedAt  time.Time    `json:"created_at"`
	FinishedAt *time.Time   `json:"finished_at,omitempty"`
}

// CreateExportRequest captures the export submission payload.
type CreateExportRequest struct {
	Type   ExportType   `json:"type" validate:"required,oneof=teacher_roster leave_report course_catalog"`
	Format ExportFormat `json:"format" validate:"required,oneof=csv pdf"`
}

// ExportDownload aggregates resolved download data.
type ExportDownload struct {
	File      *os.File
	Filename  string
	Format    ExportFormat
	ExpiresAt time.Time
}

type exportSource interface {
	Teachers() []models.Teacher
	Leaves() []models.LeaveView
	Courses() []models.CourseView
}

type jobDispatcher interface {
	Enqueue(job jobs.Job) error
}

// ExportService renders store collections into downloadable CSV and PDF
// artifacts on a background queue, gated by HMAC signed URLs.
type ExportService struct {
	source  exportSource
	storage *storage.LocalStorage
	signer  *storage.SignedURLSigner
	queue   jobDispatcher

	csv       *export.CSVExporter
	pdf       *export.PDFExporter
	validator *validator.Validate
	logger    *zap.Logger

	cleanupInterval time.Duration
	resultTTL       time.Duration
	downloadPath    string

	mu   sync.Mutex
	jobs map[string]*ExportJob
}

// ExportServiceConfig tunes artifact retention and download routing.
type ExportServiceConfig struct {
	ResultTTL       time.Duration
	CleanupInterval time.Duration
	DownloadPath    string
}

// NewExportService constructs ExportService. Attach the returned Handle to
// the queue that dispatches export jobs.
func NewExportService(source exportSource, store *storage.LocalStorage, signer *storage.SignedURLSigner, queue jobDispatcher, validate *validator.Validate, logger *zap.Logger, cfg ExportServiceConfig) *ExportService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.ResultTTL <= 0 {
		cfg.ResultTTL = 24 * time.Hour
	}
	if cfg.DownloadPath == "" {
		cfg.DownloadPath = "/api/v1/exports/download"
	}
	return &ExportService{
		source:          source,
		storage:         store,
		signer:          signer,
		queue:           queue,
		csv:             export.NewCSVExporter(),
		pdf:             export.NewPDFExporter(),
		validator:       validate,
		logger:          logger,
		cleanupInterval: cfg.CleanupInterval,
		resultTTL:       cfg.ResultTTL,
		downloadPath:    strings.TrimRight(cfg.DownloadPath, "/"),
		jobs:            make(map[string]*ExportJob),
	}
}

// CreateJob registers an export job and enqueues processing.
func (s *ExportService) CreateJob(ctx context.Context, req CreateExportRequest, actorID string) (*ExportJob, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid export payload")
	}
	job := &ExportJob{
		ID:        uuid.NewString(),
		Type:      req.Type,
		Format:    req.Format,
		Status:    ExportStatusQueued,
		CreatedBy: actorID,
		CreatedAt: time.Now().UTC(),
	}
	s.mu.Lock()
	s.jobs[job.ID] = job
	s.mu.Unlock()

	if err := s.queue.Enqueue(jobs.Job{ID: job.ID, Type: string(job.Type)}); err != nil {
		s.finishJob(job.ID, func(j *ExportJob) {
			j.Status = ExportStatusFailed
			j.Error = "failed to enqueue export job"
		})
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to enqueue export job")
	}
	snapshot := *job
	return &snapshot, nil
}

// GetStatus exposes job metadata to clients.
func (s *ExportService) GetStatus(ctx context.Context, id string) (*ExportJob, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	job, ok := s.jobs[id]
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "export job not found")
	}
	snapshot := *job
	return &snapshot, nil
}

// ResolveDownload validates a signed token and opens the stored artifact.
func (s *ExportService) ResolveDownload(ctx context.Context, token string) (*ExportDownload, error) {
	jobID, relPath, expiresAt, err := s.signer.Parse(token, false)
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrForbidden, "invalid or expired download token")
	}
	s.mu.Lock()
	job, ok := s.jobs[jobID]
	var status ExportStatus
	var format ExportFormat
	if ok {
		status = job.Status
		format = job.Format
	}
	s.mu.Unlock()
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "export job not found")
	}
	if status != ExportStatusFinished {
		return nil, appErrors.Clone(appErrors.ErrForbidden, "export not ready")
	}
	file, err := s.storage.Open(relPath)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to open export artifact")
	}
	return &ExportDownload{
		File:      file,
		Filename:  filepath.Base(relPath),
		Format:    format,
		ExpiresAt: expiresAt,
	}, nil
}

// Handle processes one queued export job. Wired as the queue handler.
func (s *ExportService) Handle(ctx context.Context, job jobs.Job) error {
	s.mu.Lock()
	record, ok := s.jobs[job.ID]
	if ok {
		record.Status = ExportStatusProcessing
		record.Progress = 10
	}
	s.mu.Unlock()
	if !ok {
		return fmt.Errorf("unknown export job %s", job.ID)
	}

	dataset, title := s.buildDataset(record.Type)
	var data []byte
	var err error
	switch record.Format {
	case ExportFormatPDF:
		data, err = s.pdf.Render(dataset, title)
	default:
		data, err = s.csv.Render(dataset)
	}
	if err != nil {
		s.finishJob(job.ID, func(j *ExportJob) {
			j.Status = ExportStatusFailed
			j.Error = err.Error()
		})
		return err
	}

	relPath := fmt.Sprintf("%s/%s.%s", record.Type, record.ID, record.Format)
	if _, err := s.storage.Save(relPath, data); err != nil {
		s.finishJob(job.ID, func(j *ExportJob) {
			j.Status = ExportStatusFailed
			j.Error = err.Error()
		})
		return err
	}

	token, _, err := s.signer.Generate(record.ID, relPath)
	if err != nil {
		s.finishJob(job.ID, func(j *ExportJob) {
			j.Status = ExportStatusFailed
			j.Error = err.Error()
		})
		return err
	}

	s.finishJob(job.ID, func(j *ExportJob) {
		j.Status = ExportStatusFinished
		j.ResultURL = s.downloadPath + "/" + token
		j.Error = ""
	})
	s.logger.Info("export finished",
		zap.String("job_id", record.ID),
		zap.String("type", string(record.Type)),
		zap.String("format", string(record.Format)))
	return nil
}

// StartCleanup boots a goroutine purging expired artifacts periodically.
func (s *ExportService) StartCleanup(ctx context.Context) {
	if s.cleanupInterval <= 0 {
		return
	}
	ticker := time.NewTicker(s.cleanupInterval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if deleted, err := s.storage.CleanupOlderThan(s.resultTTL); err != nil {
					s.logger.Warn("export cleanup failed", zap.Error(err))
				} else if len(deleted) > 0 {
					s.logger.Info("export artifacts purged", zap.Int("count", len(deleted)))
				}
			}
		}
	}()
}

func (s *ExportService) finishJob(id string, apply func(*ExportJob)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	job, ok := s.jobs[id]
	if !ok {
		return
	}
	apply(job)
	job.Progress = 100
	now := time.Now().UTC()
	job.FinishedAt = &now
}

func (s *ExportService) buildDataset(kind ExportType) (export.Dataset, string) {
	switch kind {
	case ExportLeaveReport:
		headers := []string{"Teacher", "Type", "Start", "End", "Days", "Status", "Applied", "Decided By", "Reason"}
		rows := make([]map[string]string, 0)
		for _, l := range s.source.Leaves() {
			rows = append(rows, map[string]string{
				"Teacher":    l.TeacherName,
				"Type":       string(l.Type),
				"Start":      l.StartDate,
				"End":        l.EndDate,
				"Days":       strconv.Itoa(l.Days),
				"Status":     string(l.Status),
				"Applied":    l.AppliedDate,
				"Decided By": l.ApprovedBy,
				"Reason":     l.Reason,
			})
		}
		return export.Dataset{Headers: headers, Rows: rows}, "Leave Report"
	case ExportCourseCatalog:
		headers := []string{"Code", "Name", "Level", "Category", "Instructor", "Enrolled", "Capacity", "Fee", "Status"}
		rows := make([]map[string]string, 0)
		for _, c := range s.source.Courses() {
			rows = append(rows, map[string]string{
				"Code":       c.Code,
				"Name":       c.Name,
				"Level":      string(c.Level),
				"Category":   c.Category,
				"Instructor": c.InstructorName,
				"Enrolled":   strconv.Itoa(c.EnrolledStudents),
				"Capacity":   strconv.Itoa(c.MaxStudents),
				"Fee":        strconv.FormatFloat(c.Fee, 'f', 2, 64),
				"Status":     string(c.Status),
			})
		}
		return export.Dataset{Headers: headers, Rows: rows}, "Course Catalog"
	default:
		headers := []string{"Name", "Email", "Status", "Subjects", "Experience", "Rating", "Students", "Weekly Hours"}
		rows := make([]map[string]string, 0)
		for _, t := range s.source.Teachers() {
			rows = append(rows, map[string]string{
				"Name":         t.Name,
				"Email":        t.Email,
				"Status":       string(t.Status),
				"Subjects":     strings.Join(t.Subjects, "; "),
				"Experience":   strconv.Itoa(t.Experience),
				"Rating":       strconv.FormatFloat(t.Rating, 'f', 1, 64),
				"Students":     strconv.Itoa(t.TotalStudents),
				"Weekly Hours": strconv.FormatFloat(t.WeeklyAvailableHours(), 'f', 1, 64),
			})
		}
		return export.Dataset{Headers: headers, Rows: rows}, "Teacher Roster"
	}
}
