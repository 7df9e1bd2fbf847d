package notification

import (
	"context"
	"errors"
	"sort"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/lifehub/backend/internal/application/adapter"
	"github.com/lifehub/backend/internal/domain/entity"
	"github.com/lifehub/backend/internal/integration/notification/templates"
)

type fakeQueue struct {
	adapter.NotificationQueueRepository

	jobs map[uuid.UUID]*entity.NotificationJob
}

func newFakeQueue() *fakeQueue {
	return &fakeQueue{jobs: make(map[uuid.UUID]*entity.NotificationJob)}
}

func (f *fakeQueue) add(job *entity.NotificationJob) {
	copied := *job
	f.jobs[job.ID] = &copied
}

func (f *fakeQueue) GetPendingJobs(_ context.Context, limit int) ([]*entity.NotificationJob, error) {
	var out []*entity.NotificationJob
	for _, job := range f.jobs {
		if job.IsReadyToProcess() {
			copied := *job
			out = append(out, &copied)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ScheduledAt.Before(out[j].ScheduledAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeQueue) Update(_ context.Context, job *entity.NotificationJob) error {
	copied := *job
	f.jobs[job.ID] = &copied
	return nil
}

func newTestWorker(t *testing.T, queue *fakeQueue, sender adapter.NotificationSender) *Worker {
	t.Helper()
	renderer, err := templates.NewRenderer()
	if err != nil {
		t.Fatalf("failed to build renderer: %v", err)
	}
	return NewWorker(queue, sender, renderer, DefaultWorkerConfig())
}

func milestoneJob(userID uuid.UUID) *entity.NotificationJob {
	return entity.NewNotificationJob(
		userID,
		entity.TemplateMilestone,
		"ana@example.com",
		"Ana",
		"Goal milestone reached",
		map[string]interface{}{
			"goal_name":   "Emergency fund",
			"goal_type":   "emergency_fund",
			"milestone":   "80%",
			"progress":    82,
			"description": `"Emergency fund" is at 82% of its target`,
			"variant":     "default",
		},
	)
}

func TestWorker_ProcessNow(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("delivers milestone notification", func(t *testing.T) {
		queue := newFakeQueue()
		sender := NewMockSender()
		worker := newTestWorker(t, queue, sender)

		job := milestoneJob(userID)
		queue.add(job)

		worker.ProcessNow(ctx)

		if len(sender.Sent) != 1 {
			t.Fatalf("expected 1 delivery, got %d", len(sender.Sent))
		}
		sent := sender.Sent[0]
		if sent.To != "ana@example.com" || sent.Subject != "Goal milestone reached" {
			t.Errorf("unexpected envelope: %+v", sent)
		}
		if !strings.Contains(sent.HTML, "Emergency fund") || !strings.Contains(sent.HTML, "80") {
			t.Errorf("rendered HTML missing milestone content")
		}
		if !strings.Contains(sent.Text, "82%") {
			t.Errorf("rendered text missing progress, got %q", sent.Text)
		}

		stored := queue.jobs[job.ID]
		if stored.Status != entity.NotificationStatusSent {
			t.Errorf("expected status sent, got %s", stored.Status)
		}
		if stored.ProviderID == "" {
			t.Errorf("expected provider ID recorded")
		}
	})

	t.Run("delivers password reset notification", func(t *testing.T) {
		queue := newFakeQueue()
		sender := NewMockSender()
		worker := newTestWorker(t, queue, sender)

		job := entity.NewNotificationJob(
			userID,
			entity.TemplatePasswordReset,
			"ana@example.com",
			"Ana",
			"Reset your password",
			map[string]interface{}{
				"reset_url":  "https://app.lifehub.dev/reset?token=abc",
				"expires_in": "1 hour",
			},
		)
		queue.add(job)

		worker.ProcessNow(ctx)

		if len(sender.Sent) != 1 {
			t.Fatalf("expected 1 delivery, got %d", len(sender.Sent))
		}
		if !strings.Contains(sender.Sent[0].Text, "https://app.lifehub.dev/reset?token=abc") {
			t.Errorf("rendered text missing reset link")
		}
	})

	t.Run("transient failure schedules a retry", func(t *testing.T) {
		queue := newFakeQueue()
		sender := NewMockSender()
		sender.SetFailure(errors.New("rate limited"), false)
		worker := newTestWorker(t, queue, sender)

		job := milestoneJob(userID)
		queue.add(job)

		worker.ProcessNow(ctx)

		stored := queue.jobs[job.ID]
		if stored.Status != entity.NotificationStatusPending {
			t.Fatalf("expected status pending for retry, got %s", stored.Status)
		}
		if stored.Attempts != 1 {
			t.Errorf("expected 1 attempt recorded, got %d", stored.Attempts)
		}
	})

	t.Run("permanent failure marks the job failed", func(t *testing.T) {
		queue := newFakeQueue()
		sender := NewMockSender()
		sender.SetFailure(errors.New("422 validation error"), true)
		worker := newTestWorker(t, queue, sender)

		job := milestoneJob(userID)
		queue.add(job)

		worker.ProcessNow(ctx)

		stored := queue.jobs[job.ID]
		if stored.Status != entity.NotificationStatusFailed {
			t.Fatalf("expected status failed, got %s", stored.Status)
		}
	})

	t.Run("unknown template fails permanently", func(t *testing.T) {
		queue := newFakeQueue()
		sender := NewMockSender()
		worker := newTestWorker(t, queue, sender)

		job := entity.NewNotificationJob(userID, "weekly_digest", "ana@example.com", "Ana", "Digest", nil)
		queue.add(job)

		worker.ProcessNow(ctx)

		if len(sender.Sent) != 0 {
			t.Errorf("expected no delivery for unknown template")
		}
		if queue.jobs[job.ID].Status != entity.NotificationStatusFailed {
			t.Errorf("expected status failed, got %s", queue.jobs[job.ID].Status)
		}
	})
}
