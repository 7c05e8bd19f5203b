package email

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
	"github.com/expense-tracker/backend/internal/integration/email/templates"
)

// memoryQueue is an in-memory EmailQueueRepository for worker tests.
type memoryQueue struct {
	jobs map[uuid.UUID]*entity.EmailJob
}

func newMemoryQueue() *memoryQueue {
	return &memoryQueue{jobs: make(map[uuid.UUID]*entity.EmailJob)}
}

func (q *memoryQueue) Create(ctx context.Context, job *entity.EmailJob) error {
	q.jobs[job.ID] = job
	return nil
}

func (q *memoryQueue) GetPendingJobs(ctx context.Context, limit int) ([]*entity.EmailJob, error) {
	var pending []*entity.EmailJob
	now := time.Now().UTC()
	for _, job := range q.jobs {
		if job.Status == entity.EmailStatusPending && !job.ScheduledAt.After(now) {
			pending = append(pending, job)
		}
		if len(pending) == limit {
			break
		}
	}
	return pending, nil
}

func (q *memoryQueue) Update(ctx context.Context, job *entity.EmailJob) error {
	q.jobs[job.ID] = job
	return nil
}

func (q *memoryQueue) GetByID(ctx context.Context, id uuid.UUID) (*entity.EmailJob, error) {
	if job, ok := q.jobs[id]; ok {
		return job, nil
	}
	return nil, domainerror.ErrEmailJobNotFound
}

func receiptJob() *entity.EmailJob {
	return entity.NewEmailJob(
		entity.TemplateImportReceipt,
		"user@example.com",
		"Test User",
		"Your csv import is complete - Expense Tracker",
		map[string]interface{}{
			"user_name":      "Test User",
			"format":         "csv",
			"imported_count": 12,
			"skipped_count":  2,
			"warnings":       []string{"line 3: invalid amount \"x\""},
		},
	)
}

func newTestWorker(t *testing.T, queue *memoryQueue, sender *MockEmailSender) *Worker {
	t.Helper()
	renderer, err := templates.NewRenderer()
	if err != nil {
		t.Fatalf("failed to load templates: %v", err)
	}
	return NewWorker(queue, sender, renderer, DefaultWorkerConfig())
}

func TestWorkerProcessNow(t *testing.T) {
	ctx := context.Background()

	t.Run("sends a pending import receipt", func(t *testing.T) {
		queue := newMemoryQueue()
		sender := NewMockEmailSender()
		worker := newTestWorker(t, queue, sender)

		job := receiptJob()
		if err := queue.Create(ctx, job); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		worker.ProcessNow(ctx)

		if len(sender.SentEmails) != 1 {
			t.Fatalf("expected 1 email sent, got %d", len(sender.SentEmails))
		}
		sent := sender.SentEmails[0]
		if sent.To != "user@example.com" {
			t.Errorf("unexpected recipient %q", sent.To)
		}
		if sent.HTML == "" || sent.Text == "" {
			t.Error("expected both html and text bodies")
		}

		stored, _ := queue.GetByID(ctx, job.ID)
		if stored.Status != entity.EmailStatusSent {
			t.Errorf("expected sent status, got %q", stored.Status)
		}
		if stored.ProviderID == "" {
			t.Error("expected provider id to be recorded")
		}
	})

	t.Run("temporary failure schedules a retry", func(t *testing.T) {
		queue := newMemoryQueue()
		sender := NewMockEmailSender()
		sender.ShouldFail = true
		worker := newTestWorker(t, queue, sender)

		job := receiptJob()
		_ = queue.Create(ctx, job)

		worker.ProcessNow(ctx)

		stored, _ := queue.GetByID(ctx, job.ID)
		if stored.Status != entity.EmailStatusPending {
			t.Errorf("expected pending status for retry, got %q", stored.Status)
		}
		if stored.Attempts != 1 {
			t.Errorf("expected 1 attempt, got %d", stored.Attempts)
		}
		if !stored.ScheduledAt.After(time.Now().UTC()) {
			t.Error("expected retry to be scheduled in the future")
		}
	})

	t.Run("permanent failure does not retry", func(t *testing.T) {
		queue := newMemoryQueue()
		sender := NewMockEmailSender()
		sender.ShouldFail = true
		sender.IsPermanent = true
		worker := newTestWorker(t, queue, sender)

		job := receiptJob()
		_ = queue.Create(ctx, job)

		worker.ProcessNow(ctx)

		stored, _ := queue.GetByID(ctx, job.ID)
		if stored.Status != entity.EmailStatusFailed {
			t.Errorf("expected failed status, got %q", stored.Status)
		}
	})

	t.Run("job exhausts attempts after repeated temporary failures", func(t *testing.T) {
		queue := newMemoryQueue()
		sender := NewMockEmailSender()
		sender.ShouldFail = true
		worker := newTestWorker(t, queue, sender)

		job := receiptJob()
		_ = queue.Create(ctx, job)

		for i := 0; i < job.MaxAttempts; i++ {
			job.ScheduledAt = time.Now().UTC().Add(-time.Second)
			job.Status = entity.EmailStatusPending
			_ = queue.Update(ctx, job)
			worker.ProcessNow(ctx)
		}

		stored, _ := queue.GetByID(ctx, job.ID)
		if stored.Status != entity.EmailStatusFailed {
			t.Errorf("expected failed status after %d attempts, got %q", job.MaxAttempts, stored.Status)
		}
		if stored.Attempts != job.MaxAttempts {
			t.Errorf("expected %d attempts, got %d", job.MaxAttempts, stored.Attempts)
		}
	})

	t.Run("unknown template fails permanently", func(t *testing.T) {
		queue := newMemoryQueue()
		sender := NewMockEmailSender()
		worker := newTestWorker(t, queue, sender)

		job := entity.NewEmailJob("bogus_template", "user@example.com", "Test User", "subject", nil)
		_ = queue.Create(ctx, job)

		worker.ProcessNow(ctx)

		stored, _ := queue.GetByID(ctx, job.ID)
		if stored.Status != entity.EmailStatusFailed {
			t.Errorf("expected failed status, got %q", stored.Status)
		}
		if len(sender.SentEmails) != 0 {
			t.Errorf("expected nothing sent, got %d", len(sender.SentEmails))
		}
	})
}
