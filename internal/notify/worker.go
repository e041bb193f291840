package notify

import (
	"context"
	"encoding/json"
)

// Worker consumes booking messages from the queue and sends the e-mails.
type Worker struct {
	rmq    *RabbitClient
	mailer *Mailer
	logger Logger
	done   chan struct{}
	cancel context.CancelFunc
}

// NewWorker creates the notification worker
func NewWorker(rmq *RabbitClient, mailer *Mailer, logger Logger) *Worker {
	return &Worker{
		rmq:    rmq,
		mailer: mailer,
		logger: logger,
		done:   make(chan struct{}),
	}
}

// Start begins consuming in the background until Stop or context cancel.
func (w *Worker) Start(ctx context.Context) {
	cctx, cancel := context.WithCancel(ctx)
	w.cancel = cancel

	w.logger.Info("Worker: notification worker started")

	go func() {
		defer close(w.done)

		if err := w.rmq.Consume(w.handle); err != nil {
			w.logger.Error("Worker: failed to start consuming: %v", err)
			return
		}

		<-cctx.Done()
		w.logger.Info("Worker: notification worker stopped")
	}()
}

// Stop cancels consumption and waits for the worker goroutine.
func (w *Worker) Stop() {
	if w.cancel != nil {
		w.cancel()
		<-w.done
	}
}

// handle processes one queue message. Malformed messages and mail failures
// are logged and acked; requeueing would loop on a bad payload or hammer a
// broken SMTP relay.
func (w *Worker) handle(body []byte) error {
	var msg BookingMessage
	if err := json.Unmarshal(body, &msg); err != nil {
		w.logger.Error("Worker: dropping malformed message: %v", err)
		return nil
	}

	w.logger.Info("Worker: processing notifications for %s (msg=%s)", msg.BookingRef, msg.ID)

	if err := w.mailer.SendOperatorAlert(msg); err != nil {
		w.logger.Warn("Worker: operator alert for %s failed: %v", msg.BookingRef, err)
	}
	if err := w.mailer.SendCustomerConfirmation(msg); err != nil {
		w.logger.Warn("Worker: customer confirmation for %s failed: %v", msg.BookingRef, err)
	}

	return nil
}
