package queries

//go:generate mockgen -source=notification.go -destination=../../../tests/mock/queries/notification_mock.go -package=queriesmock

import (
	"context"

	"commerce-ledger/internal/pkg/errs"
	"commerce-ledger/internal/usecase/shared"
)

var ErrInvalidJobStatus = errs.NewValidation("invalid notification job status")

type NotificationQueries interface {
	ListJobs(ctx context.Context, status string, limit int) ([]NotificationJobView, error)
}

type NotificationReadStore interface {
	ListByStatus(ctx context.Context, status string, limit int) ([]NotificationJobView, error)
}

type notificationQueriesImpl struct {
	readStore NotificationReadStore
}

func NewNotificationQueries(readStore NotificationReadStore) NotificationQueries {
	return &notificationQueriesImpl{
		readStore: readStore,
	}
}

func (q *notificationQueriesImpl) ListJobs(ctx context.Context, status string, limit int) ([]NotificationJobView, error) {
	switch status {
	case shared.JobStatusQueued, shared.JobStatusSent, shared.JobStatusFailed:
	case "":
		status = shared.JobStatusFailed
	default:
		return nil, ErrInvalidJobStatus
	}
	switch {
	case limit <= 0:
		limit = DefaultHistoryLimit
	case limit > MaxHistoryLimit:
		limit = MaxHistoryLimit
	}

	jobs, err := q.readStore.ListByStatus(ctx, status, limit)
	if err != nil {
		return nil, err
	}
	if jobs == nil {
		jobs = []NotificationJobView{}
	}
	return jobs, nil
}

