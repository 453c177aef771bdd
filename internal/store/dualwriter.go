// internal/store/dualwriter.go
package store

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/gorm"
)

// Outcome records one best-effort secondary-store write. Callers get the full
// list so operators and tests can see exactly which mirror operations failed
// without conflating them with the authoritative result.
type Outcome struct {
	Op  string
	Err error
}

// Ok reports whether the write succeeded.
func (o Outcome) Ok() bool { return o.Err == nil }

func (o Outcome) String() string {
	if o.Err == nil {
		return o.Op + ": ok"
	}
	return fmt.Sprintf("%s: %v", o.Op, o.Err)
}

type Outcomes []Outcome

// Failed returns the subset of outcomes that errored.
func (os Outcomes) Failed() Outcomes {
	var failed Outcomes
	for _, o := range os {
		if o.Err != nil {
			failed = append(failed, o)
		}
	}
	return failed
}

// DualWriter runs writes against two independently-addressable stores with
// asymmetric failure handling: the current store is authoritative and its
// failures abort the use case, the legacy store is a best-effort mirror whose
// failures are logged and recorded but never propagated.
//
// Ordering guarantee: a Primary call for a logical operation always
// happens-before any Mirror call for the same operation; mirror writes are
// unordered relative to each other.
type DualWriter struct {
	current *gorm.DB
	legacy  *gorm.DB
	timeout time.Duration
	logger  *slog.Logger
}

const defaultCallTimeout = 3 * time.Second

func NewDualWriter(current, legacy *gorm.DB, timeout time.Duration, logger *slog.Logger) *DualWriter {
	if timeout <= 0 {
		timeout = defaultCallTimeout
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &DualWriter{
		current: current,
		legacy:  legacy,
		timeout: timeout,
		logger:  logger,
	}
}

// Current returns the authoritative store handle for reads.
func (w *DualWriter) Current() *gorm.DB { return w.current }

// Legacy returns the secondary store handle for reads.
func (w *DualWriter) Legacy() *gorm.DB { return w.legacy }

// Primary executes fn against the authoritative store. An error here is fatal
// to the whole use case and is surfaced to the caller.
func (w *DualWriter) Primary(ctx context.Context, op string, fn func(db *gorm.DB) error) error {
	ctx, cancel := context.WithTimeout(ctx, w.timeout)
	defer cancel()

	if err := fn(w.current.WithContext(ctx)); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Attempt executes fn against the authoritative store but treats failure as
// best-effort: logged and recorded, not propagated. Used for the follow-up
// writes of an orchestration (owner seeding, primary demotion) where the
// organization row is already durable and must be returned regardless.
func (w *DualWriter) Attempt(ctx context.Context, op string, fn func(db *gorm.DB) error) Outcome {
	ctx, cancel := context.WithTimeout(ctx, w.timeout)
	defer cancel()

	if err := fn(w.current.WithContext(ctx)); err != nil {
		w.logger.WarnContext(ctx, "current store best-effort write failed",
			"op", op,
			"error", err,
		)
		return Outcome{Op: op, Err: err}
	}
	return Outcome{Op: op}
}

// Mirror executes fn against the legacy store. A failure is logged at warn
// level and recorded in the returned Outcome; it never aborts the caller.
// During the store migration the legacy store is allowed to fall behind, and
// every miss must be observable so operators can reconcile later.
func (w *DualWriter) Mirror(ctx context.Context, op string, fn func(db *gorm.DB) error) Outcome {
	ctx, cancel := context.WithTimeout(ctx, w.timeout)
	defer cancel()

	if err := fn(w.legacy.WithContext(ctx)); err != nil {
		w.logger.WarnContext(ctx, "legacy store write failed",
			"op", op,
			"error", err,
		)
		return Outcome{Op: op, Err: err}
	}
	return Outcome{Op: op}
}
