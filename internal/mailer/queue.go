package mailer

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"trackit-be/internal/config"
)

var ErrQueueFull = errors.New("mail queue is full")

// Queue hands confirmations to a pool of background workers. Each message is
// retried with exponential backoff up to maxRetries times, then dropped.
type Queue struct {
	next       Mailer
	jobs       chan string
	workers    int
	maxRetries int
	logger     *zap.Logger
	newBackOff func() backoff.BackOff
}

func NewQueue(next Mailer, cfg config.MailConfig, logger *zap.Logger) *Queue {
	return &Queue{
		next:       next,
		jobs:       make(chan string, cfg.QueueSize),
		workers:    cfg.Workers,
		maxRetries: cfg.MaxRetries,
		logger:     logger.Named("mail_queue"),
		newBackOff: func() backoff.BackOff {
			bo := backoff.NewExponentialBackOff()
			bo.InitialInterval = 2 * time.Second
			bo.MaxInterval = 30 * time.Second
			bo.MaxElapsedTime = 5 * time.Minute
			return bo
		},
	}
}

// SendConfirmation enqueues without blocking.
func (q *Queue) SendConfirmation(_ context.Context, to string) error {
	select {
	case q.jobs <- to:
		return nil
	default:
		q.logger.Warn("dropping email, queue full", zap.String("to", to))
		return ErrQueueFull
	}
}

// Pending returns the number of queued messages.
func (q *Queue) Pending() int {
	return len(q.jobs)
}

// Run starts the workers and blocks until ctx is cancelled.
func (q *Queue) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < q.workers; i++ {
		g.Go(func() error {
			q.work(ctx)
			return nil
		})
	}
	err := g.Wait()
	if pending := q.Pending(); pending > 0 {
		q.logger.Warn("mail queue stopped with undelivered messages", zap.Int("pending", pending))
	}
	return err
}

func (q *Queue) work(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case to := <-q.jobs:
			q.deliver(ctx, to)
		}
	}
}

func (q *Queue) deliver(ctx context.Context, to string) {
	// WithMaxRetries treats 0 as unlimited.
	var bo backoff.BackOff = &backoff.StopBackOff{}
	if q.maxRetries > 0 {
		bo = backoff.WithMaxRetries(q.newBackOff(), uint64(q.maxRetries))
	}
	policy := backoff.WithContext(bo, ctx)

	attempts := 0
	err := backoff.RetryNotify(func() error {
		attempts++
		err := q.next.SendConfirmation(ctx, to)
		if errors.Is(err, ErrNotConfigured) {
			return backoff.Permanent(err)
		}
		return err
	}, policy, func(err error, wait time.Duration) {
		q.logger.Warn("retrying email",
			zap.String("to", to),
			zap.Int("attempt", attempts),
			zap.Duration("wait", wait),
			zap.Error(err),
		)
	})
	if err != nil {
		q.logger.Error("giving up on email",
			zap.String("to", to),
			zap.Int("attempts", attempts),
			zap.Error(err),
		)
	}
}
