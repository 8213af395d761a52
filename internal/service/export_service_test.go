package service

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edudesk/tms-api/internal/models"
	appErrors "github.com/edudesk/tms-api/pkg/errors"
	"github.com/edudesk/tms-api/pkg/jobs"
	"github.com/edudesk/tms-api/pkg/storage"
)

type fakeExportSource struct {
	teachers []models.Teacher
	leaves   []models.LeaveView
	courses  []models.CourseView
}

func (s *fakeExportSource) Teachers() []models.Teacher   { return s.teachers }
func (s *fakeExportSource) Leaves() []models.LeaveView   { return s.leaves }
func (s *fakeExportSource) Courses() []models.CourseView { return s.courses }

type captureDispatcher struct {
	enqueued []jobs.Job
}

func (d *captureDispatcher) Enqueue(job jobs.Job) error {
	d.enqueued = append(d.enqueued, job)
	return nil
}

func newExportFixture(t *testing.T) (*ExportService, *captureDispatcher) {
	t.Helper()
	store, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	signer := storage.NewSignedURLSigner("test-secret", time.Hour)
	source := &fakeExportSource{
		teachers: []models.Teacher{
			{ID: "1", Name: "Dr. Sarah Johnson", Email: "sarah.johnson@school.edu", Status: models.TeacherStatusActive, Subjects: []string{"Mathematics"}},
		},
	}
	dispatcher := &captureDispatcher{}
	svc := NewExportService(source, store, signer, dispatcher, nil, nil, ExportServiceConfig{
		ResultTTL:    time.Hour,
		DownloadPath: "/api/v1/exports/download",
	})
	return svc, dispatcher
}

func TestExportServiceCreateJob(t *testing.T) {
	svc, dispatcher := newExportFixture(t)

	job, err := svc.CreateJob(context.Background(), CreateExportRequest{
		Type:   ExportTeacherRoster,
		Format: ExportFormatCSV,
	}, "Principal")

	require.NoError(t, err)
	assert.NotEmpty(t, job.ID)
	assert.Equal(t, ExportStatusQueued, job.Status)
	assert.Equal(t, "Principal", job.CreatedBy)
	require.Len(t, dispatcher.enqueued, 1)
	assert.Equal(t, job.ID, dispatcher.enqueued[0].ID)
}

func TestExportServiceCreateJobValidation(t *testing.T) {
	svc, dispatcher := newExportFixture(t)

	_, err := svc.CreateJob(context.Background(), CreateExportRequest{
		Type:   "grade_report",
		Format: ExportFormatCSV,
	}, "system")

	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
	assert.Empty(t, dispatcher.enqueued)
}

func TestExportServiceHandleProducesDownloadableCSV(t *testing.T) {
	svc, dispatcher := newExportFixture(t)
	ctx := context.Background()

	created, err := svc.CreateJob(ctx, CreateExportRequest{
		Type:   ExportTeacherRoster,
		Format: ExportFormatCSV,
	}, "system")
	require.NoError(t, err)

	require.NoError(t, svc.Handle(ctx, dispatcher.enqueued[0]))

	finished, err := svc.GetStatus(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, ExportStatusFinished, finished.Status)
	assert.Equal(t, 100, finished.Progress)
	require.NotNil(t, finished.FinishedAt)
	require.True(t, strings.HasPrefix(finished.ResultURL, "/api/v1/exports/download/"))

	token := strings.TrimPrefix(finished.ResultURL, "/api/v1/exports/download/")
	download, err := svc.ResolveDownload(ctx, token)
	require.NoError(t, err)
	defer download.File.Close()

	body, err := io.ReadAll(download.File)
	require.NoError(t, err)
	assert.Contains(t, string(body), "Dr. Sarah Johnson")
	assert.Contains(t, string(body), "sarah.johnson@school.edu")
	assert.Equal(t, ExportFormatCSV, download.Format)
}

func TestExportServiceResolveDownloadRejectsBadToken(t *testing.T) {
	svc, _ := newExportFixture(t)

	_, err := svc.ResolveDownload(context.Background(), "not-a-token")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrForbidden.Code, appErrors.FromError(err).Code)
}

func TestExportServiceResolveDownloadRequiresFinishedJob(t *testing.T) {
	svc, _ := newExportFixture(t)
	ctx := context.Background()

	created, err := svc.CreateJob(ctx, CreateExportRequest{
		Type:   ExportLeaveReport,
		Format: ExportFormatPDF,
	}, "system")
	require.NoError(t, err)

	signer := storage.NewSignedURLSigner("test-secret", time.Hour)
	token, _, err := signer.Generate(created.ID, "leave_report/"+created.ID+".pdf")
	require.NoError(t, err)

	_, err = svc.ResolveDownload(ctx, token)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrForbidden.Code, appErrors.FromError(err).Code)
}

func TestExportServiceGetStatusNotFound(t *testing.T) {
	svc, _ := newExportFixture(t)

	_, err := svc.GetStatus(context.Background(), "missing")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}
