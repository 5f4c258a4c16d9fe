package response

import (
	"encoding/json"
	"time"

	"commerce-ledger/internal/usecase/queries"

	"github.com/google/uuid"
)

type NotificationJobResponse struct {
	ID        uuid.UUID       `json:"id"`
	Kind      string          `json:"kind"`
	Topic     string          `json:"topic"`
	Payload   json.RawMessage `json:"payload"`
	RunAt     time.Time       `json:"runAt"`
	Attempts  int32           `json:"attempts"`
	Status    string          `json:"status"`
	LastError *string         `json:"lastError"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

func FromNotificationJobViews(vs []queries.NotificationJobView) []NotificationJobResponse {
	res := make([]NotificationJobResponse, 0, len(vs))
	for _, v := range vs {
		payload := json.RawMessage(v.Payload)
		if !json.Valid(payload) {
			payload = json.RawMessage("null")
		}
		res = append(res, NotificationJobResponse{
			ID:        v.ID,
			Kind:      v.Kind,
			Topic:     v.Topic,
			Payload:   payload,
			RunAt:     v.RunAt,
			Attempts:  v.Attempts,
			Status:    v.Status,
			LastError: v.LastError,
			CreatedAt: v.CreatedAt,
			UpdatedAt: v.UpdatedAt,
		})
	}
	return res
}
