package readstore

import (
	"context"

	"commerce-ledger/internal/infra"
	sqlc "commerce-ledger/internal/infra/sqlc/generated"
	"commerce-ledger/internal/pkg/pgconv"
	"commerce-ledger/internal/usecase/queries"
)

type NotificationReadQueries interface {
	ListNotificationJobsByStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.ListNotificationJobsByStatusParams) ([]sqlc.NotificationJobs, error)
}

type NotificationReadStore struct {
	queries NotificationReadQueries
	db      sqlc.DBTX
}

func NewNotificationReadStore(queries NotificationReadQueries, db sqlc.DBTX) *NotificationReadStore {
	return &NotificationReadStore{
		queries: queries,
		db:      db,
	}
}

func (s *NotificationReadStore) ListByStatus(ctx context.Context, status string, limit int) ([]queries.NotificationJobView, error) {
	rows, err := s.queries.ListNotificationJobsByStatus(ctx, s.db, sqlc.ListNotificationJobsByStatusParams{
		Status: status,
		Limit:  int32(limit),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list notification jobs", err)
	}

	result := make([]queries.NotificationJobView, len(rows))
	for i, row := range rows {
		result[i] = queries.NotificationJobView{
			ID:        row.ID,
			Kind:      row.Kind,
			Topic:     row.Topic,
			Payload:   row.Payload,
			RunAt:     row.RunAt.Time,
			Attempts:  row.Attempts,
			Status:    row.Status,
			LastError: pgconv.StringPtrFromPgtype(row.LastError),
			CreatedAt: row.CreatedAt.Time,
			UpdatedAt: row.UpdatedAt.Time,
		}
	}
	return result, nil
}
