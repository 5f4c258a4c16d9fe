package notification

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"commerce-ledger/internal/domain/inventory"
	"commerce-ledger/internal/pkg/clock"
	"commerce-ledger/internal/pkg/config"
	"commerce-ledger/internal/pkg/errs"
	"commerce-ledger/internal/usecase/shared"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const KindLowStock = "low_stock"

var errNotifierStopped = errs.New("notifier stopped")

var tracer = otel.Tracer("commerce-ledger/infra/notification")

type queuedEvent struct {
	event inventory.LowStockEvent
	// origin links the delivery span to the request that produced the event
	origin trace.SpanContext
}

// AsyncNotifier delivers low-stock events on worker goroutines. Delivery is
// at most once: a full queue drops the event and a failed publish is not retried.
type AsyncNotifier struct {
	publisher Publisher
	uow       shared.UnitOfWork
	clock     clock.Clock
	workers   int
	timeout   time.Duration

	queue   chan queuedEvent
	mu      sync.RWMutex
	started bool
	closed  bool
	wg      sync.WaitGroup
	dropped atomic.Int64
}

func NewAsyncNotifier(publisher Publisher, uow shared.UnitOfWork, clk clock.Clock, cfg config.NotifyConfig) *AsyncNotifier {
	workers := cfg.Workers
	if workers <= 0 {
		workers = 1
	}
	size := cfg.QueueSize
	if size <= 0 {
		size = 1
	}
	return &AsyncNotifier{
		publisher: publisher,
		uow:       uow,
		clock:     clk,
		workers:   workers,
		timeout:   cfg.PublishTimeout,
		queue:     make(chan queuedEvent, size),
	}
}

func (n *AsyncNotifier) Start() {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.started || n.closed {
		return
	}
	n.started = true

	for i := 0; i < n.workers; i++ {
		n.wg.Add(1)
		go n.run(i)
	}
	slog.Info("Notifier started", "workers", n.workers, "queue_size", cap(n.queue), "topic", n.publisher.Topic())
}

// Stop drains the queue and waits for the workers until ctx is done.
func (n *AsyncNotifier) Stop(ctx context.Context) error {
	n.mu.Lock()
	if n.closed {
		n.mu.Unlock()
		return nil
	}
	n.closed = true
	close(n.queue)
	n.mu.Unlock()

	done := make(chan struct{})
	go func() {
		n.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		slog.Warn("Notifier stop timed out", "pending", len(n.queue))
		return errs.Wrap(ctx.Err(), "wait for notifier workers")
	}

	if err := n.publisher.Close(); err != nil {
		return errs.Wrap(err, "close publisher")
	}
	slog.Info("Notifier stopped", "dropped", n.dropped.Load())
	return nil
}

// NotifyLowStock never blocks. Events arriving on a full queue or after Stop are dropped.
func (n *AsyncNotifier) NotifyLowStock(ctx context.Context, event inventory.LowStockEvent) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	if n.closed {
		n.drop(event, errNotifierStopped)
		return
	}

	select {
	case n.queue <- queuedEvent{event: event, origin: trace.SpanContextFromContext(ctx)}:
	default:
		n.drop(event, errs.New("notification queue full"))
	}
}

// Dropped reports how many events were discarded without a publish attempt.
func (n *AsyncNotifier) Dropped() int64 {
	return n.dropped.Load()
}

func (n *AsyncNotifier) drop(event inventory.LowStockEvent, reason error) {
	n.dropped.Add(1)
	slog.Warn("Low stock event dropped",
		slog.String("product_id", event.ProductID.String()),
		slog.Int("current_stock", event.CurrentStock),
		slog.String("reason", reason.Error()),
	)
}

func (n *AsyncNotifier) run(worker int) {
	defer n.wg.Done()
	for item := range n.queue {
		n.deliver(worker, item)
	}
}

func (n *AsyncNotifier) deliver(worker int, item queuedEvent) {
	ctx := context.Background()
	if n.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, n.timeout)
		defer cancel()
	}

	opts := []trace.SpanStartOption{trace.WithSpanKind(trace.SpanKindProducer)}
	if item.origin.IsValid() {
		opts = append(opts, trace.WithLinks(trace.Link{SpanContext: item.origin}))
	}
	ctx, span := tracer.Start(ctx, "AsyncNotifier.deliver", opts...)
	defer span.End()

	key := item.event.ProductID.String()
	span.SetAttributes(
		attribute.String("product.id", key),
		attribute.Int("notifier.worker", worker),
	)

	payload, err := json.Marshal(item.event)
	if err != nil {
		slog.Error("Failed to encode low stock event", "product_id", key, "error", err.Error())
		span.RecordError(err)
		span.SetStatus(codes.Error, "encode")
		return
	}

	jobID := n.recordQueued(ctx, payload)

	publishErr := n.publisher.Publish(ctx, key, payload)
	if publishErr != nil {
		slog.Error("Failed to publish low stock event",
			slog.String("product_id", key),
			slog.String("topic", n.publisher.Topic()),
			slog.String("error", publishErr.Error()),
		)
		span.RecordError(publishErr)
		span.SetStatus(codes.Error, "publish")
	}

	n.recordOutcome(ctx, jobID, publishErr)
}

// recordQueued is best-effort; uuid.Nil means no job row exists.
func (n *AsyncNotifier) recordQueued(ctx context.Context, payload []byte) uuid.UUID {
	if n.uow == nil {
		return uuid.Nil
	}

	var jobID uuid.UUID
	err := n.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, err := tx.Notifications().CreateJob(ctx, tx.DB(), shared.NotificationJob{
			Kind:    KindLowStock,
			Topic:   n.publisher.Topic(),
			Payload: payload,
			RunAt:   n.clock.Now(),
			Status:  shared.JobStatusQueued,
		})
		if err != nil {
			return err
		}
		jobID = id
		return nil
	})
	if err != nil {
		slog.Warn("Failed to record notification job", "error", err.Error())
		return uuid.Nil
	}
	return jobID
}

func (n *AsyncNotifier) recordOutcome(ctx context.Context, jobID uuid.UUID, publishErr error) {
	if jobID == uuid.Nil {
		return
	}

	status := shared.JobStatusSent
	var lastError *string
	if publishErr != nil {
		status = shared.JobStatusFailed
		msg := publishErr.Error()
		lastError = &msg
	}

	// the publish may have used up the deadline
	if ctx.Err() != nil {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(context.WithoutCancel(ctx), time.Second)
		defer cancel()
	}

	err := n.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Notifications().UpdateJobStatus(ctx, tx.DB(), jobID, status, lastError)
	})
	if err != nil {
		slog.Warn("Failed to update notification job", "job_id", jobID, "status", status, "error", err.Error())
	}
}
