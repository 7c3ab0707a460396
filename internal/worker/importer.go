package worker

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"homecatalog/internal/catalog"
	"homecatalog/pkg/logger"
	"homecatalog/pkg/metrics"
	"homecatalog/pkg/serrors"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// queuedRetryDelay is how long a job sleeps when BGG answered 202 Accepted,
// meaning the response is being prepared and should be fetched again shortly.
const queuedRetryDelay = 30 * time.Second

// RateLimit describes the fixed-window request budget the importer grants to
// the BGG API: at most Requests imports may start within each Window.
type RateLimit struct {
	Requests int
	Window   time.Duration
}

// ImportWorker is a River worker that imports BGG things using a
// catalog.Catalog implementation. It embeds River's WorkerDefaults to
// integrate with the job runtime and provides its own cooperative rate
// limiting so concurrent jobs never exceed the configured request budget.
//
// # Rate limiting overview
//
// BGG publishes no rate-limit headers, it simply starts answering 429 when
// pushed too hard. The worker therefore enforces a client-side fixed window:
// windowStart marks the beginning of the current window and used counts the
// requests started within it. Before fetching, reserveSlot is called to
// claim a unit of budget. A request may start when
//
//	rate.Requests - used - inFlightRequests > 0
//
// which allows maximal concurrency while budget remains. When the window is
// exhausted, reserveSlot waits until either the window rolls over or another
// in-flight request finishes and signals requestFinishedChan, then
// re-evaluates. Window rollover resets used to zero.
//
// Concurrency safety: all mutable rate state is guarded by mu. The
// requestFinishedChan is a wake-up signal without backpressure; the send is
// non-blocking and dropped when no one is waiting.
//
// Error handling: a not-found thing cancels the job (retrying cannot help),
// a queued (202) or throttled (429) response snoozes it, and other errors are
// recorded against the pending items and returned for River to retry.
type ImportWorker struct {
	river.WorkerDefaults[catalog.ImportJobArgs]

	// catalog performs the actual import against storage and the BGG API.
	catalog catalog.Catalog
	// rate is the fixed-window budget granted to the BGG API.
	rate RateLimit

	// mu protects all fields below it.
	mu sync.Mutex
	// inFlightRequests counts imports currently running. Together with used it
	// decides whether another request may start in the current window.
	inFlightRequests int
	// windowStart marks the beginning of the current rate window.
	windowStart time.Time
	// used counts requests started since windowStart.
	used int
	// requestFinishedChan is a non-buffered notification channel used to wake
	// up goroutines waiting in reserveSlot when any in-flight import completes.
	requestFinishedChan chan struct{}
}

// NewImportWorker constructs an ImportWorker using the provided catalog. The
// returned worker enforces cooperative rate limiting across its concurrent
// jobs.
func NewImportWorker(cat catalog.Catalog, rate RateLimit) *ImportWorker {
	return &ImportWorker{
		catalog:             cat,
		rate:                rate,
		requestFinishedChan: make(chan struct{}),
	}
}

// Work executes a single import job while respecting the rate budget. It
// reserves a slot, runs the import and maps errors to appropriate River
// actions.
func (w *ImportWorker) Work(ctx context.Context, job *river.Job[catalog.ImportJobArgs]) error {
	ctx = logger.WithFields(ctx, zap.Int64("jobID", job.ID), zap.Int64("bggID", job.Args.BGGID))

	// try to reserve a rate limit slot
	if err := w.reserveSlot(ctx); err != nil {
		logger.Error(ctx, "error reserving rate limit slot", zap.Error(err))

		return fmt.Errorf("could not reserve rate limit slot: %w", err)
	}

	start := time.Now()
	err := w.catalog.Import(ctx, job.Args.BGGID)
	w.requestFinished()
	metrics.ImportDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		logger.Error(ctx, "error importing thing", zap.Error(err))

		switch {
		case errors.Is(err, serrors.ErrNotFound):
			// the thing does not exist on BGG, retrying cannot help
			metrics.ImportsTotal.WithLabelValues("failed").Inc()
			if failErr := w.catalog.Fail(ctx, job.Args.BGGID, err.Error()); failErr != nil {
				logger.Error(ctx, "error recording import failure", zap.Error(failErr))
			}

			return river.JobCancel(err) //nolint: wrapcheck
		case errors.Is(err, serrors.ErrUnavailable):
			// BGG queued the request, come back for the prepared response
			metrics.ImportsTotal.WithLabelValues("snoozed").Inc()

			return river.JobSnooze(queuedRetryDelay) //nolint: wrapcheck
		case errors.Is(err, serrors.ErrRateLimited):
			metrics.ImportsTotal.WithLabelValues("snoozed").Inc()

			return river.JobSnooze(w.untilNextWindow()) //nolint: wrapcheck
		}

		metrics.ImportsTotal.WithLabelValues("failed").Inc()
		if failErr := w.catalog.Fail(ctx, job.Args.BGGID, err.Error()); failErr != nil {
			logger.Error(ctx, "error recording import failure", zap.Error(failErr))
		}

		return fmt.Errorf("could not import thing: %w", err)
	}

	metrics.ImportsTotal.WithLabelValues("completed").Inc()
	logger.Info(ctx, "thing imported successfully")

	return nil
}

// requestFinished is called after every import attempt. It decrements the
// in-flight counter, charges one unit against the current window and notifies
// any goroutines waiting to reserve a slot.
func (w *ImportWorker) requestFinished() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.inFlightRequests > 0 {
		w.inFlightRequests--
	} else {
		w.inFlightRequests = 0
	}
	w.used++

	// If other goroutines are blocked in reserveSlot, try to wake exactly one
	// without blocking this goroutine. If no one is waiting, the signal is
	// dropped.
	select {
	case w.requestFinishedChan <- struct{}{}:
	default:
	}
}

// untilNextWindow returns the time left in the current rate window.
func (w *ImportWorker) untilNextWindow() time.Duration {
	w.mu.Lock()
	defer w.mu.Unlock()

	dur := time.Until(w.windowStart.Add(w.rate.Window))
	if dur < 0 {
		dur = 0
	}

	return dur
}

// reserveSlot reserves one unit from the rate budget or blocks until a unit
// becomes available. It implements the cooperative rate limiting described in
// the type-level comment:
//  1. Roll the window over when it has elapsed, resetting the used counter.
//  2. If Requests - used - inFlightRequests > 0, increment inFlightRequests
//     and return.
//  3. Otherwise, wait until either the window rolls over or any in-flight
//     import completes (signaled via requestFinishedChan), then retry.
//
// If ctx is canceled while waiting, an error is returned.
func (w *ImportWorker) reserveSlot(ctx context.Context) error {
	waited := false
	for {
		w.mu.Lock()

		now := time.Now()
		if w.windowStart.IsZero() || now.Sub(w.windowStart) >= w.rate.Window {
			w.windowStart = now
			w.used = 0
		}

		// If budget remains once we account for in-flight requests, reserve and go.
		if w.rate.Requests-w.used-w.inFlightRequests > 0 {
			logger.Debug(ctx, "reserved rate limit slot",
				zap.Int("used", w.used),
				zap.Int("budget", w.rate.Requests),
				zap.Time("windowStart", w.windowStart),
				zap.Int("inFlight", w.inFlightRequests))
			w.inFlightRequests++
			w.mu.Unlock()

			return nil
		}

		// Otherwise, wait for either the window rollover or for any request to
		// finish, then retry.
		windowEnd := w.windowStart.Add(w.rate.Window)
		used, inFlight := w.used, w.inFlightRequests
		w.mu.Unlock()

		if !waited {
			metrics.RateLimitWaits.Inc()
			waited = true
		}

		logger.Debug(ctx, "waiting for rate limit slot",
			zap.Int("used", used),
			zap.Int("budget", w.rate.Requests),
			zap.Time("windowEnd", windowEnd),
			zap.Int("inFlight", inFlight))

		select {
		case <-ctx.Done():
			return fmt.Errorf("timeout waiting for rate limit: %w", ctx.Err())
		case <-w.requestFinishedChan:
			// loop to re-evaluate
			continue
		case <-time.After(time.Until(windowEnd)):
			// window elapsed; loop and try again.
			continue
		}
	}
}
