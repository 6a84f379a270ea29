package core

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// MultiHeightManager drives consensus across an unbounded sequence of
// heights (§4.1). It owns the HeightCache and the TimeoutsConfig across
// heights; each height gets its own SingleHeightDriver, constructed and
// discarded in turn.
type MultiHeightManager struct {
	selfID     ValidatorID
	timeouts   TimeoutsConfig
	cache      *HeightCache
	logger     *zap.Logger
	metrics    *Metrics
	newMachine MachineFactory
}

// NewMultiHeightManager builds a manager. A nil logger or metrics falls
// back to a no-op implementation so callers in tests don't need to wire
// either up.
func NewMultiHeightManager(selfID ValidatorID, cfg Config, factory MachineFactory, logger *zap.Logger, metrics *Metrics) *MultiHeightManager {
	if logger == nil {
		logger = zap.NewNop()
	}
	if metrics == nil {
		metrics = NewNopMetrics()
	}
	return &MultiHeightManager{
		selfID:     selfID,
		timeouts:   cfg.Timeouts,
		cache:      NewHeightCache(cfg.Cache),
		logger:     logger,
		metrics:    metrics,
		newMachine: factory,
	}
}

// Run drives consensus forever, starting at startHeight (§4.1). It
// returns only when ctx is canceled (with ctx's error, possibly wrapped)
// or on a fatal error: a closed network or sync receiver, a malformed
// network message or failed peer report, a Context error, or a
// SingleHeightMachine error. None of those are retried internally — the
// caller (the process supervisor) decides what to do next (§7).
func (m *MultiHeightManager) Run(
	ctx context.Context,
	cctx Context,
	startHeight Height,
	startupDelay time.Duration,
	networkRx <-chan NetworkItem,
	syncRx <-chan Height,
) error {
	m.logger.Info("running consensus",
		zap.Uint64("start_height", uint64(startHeight)),
		zap.Duration("startup_delay", startupDelay))

	// Let peers connect before entering the main loop.
	select {
	case <-time.After(startupDelay):
	case <-ctx.Done():
		return ctx.Err()
	}

	currentHeight := startHeight
	for {
		m.metrics.SetHeight(currentHeight)

		next, err := m.runOneHeight(ctx, cctx, currentHeight, networkRx, syncRx)
		if err != nil {
			return err
		}
		currentHeight = next
	}
}

// runOneHeight races a SingleHeightDriver for height against sync
// advancement, per the cancellation policy of §4.1: the driver is not
// cancel-safe, so the only admissible ways to leave this call are (a) the
// driver produces a Decision, or (b) sync reports a height >= height,
// after which the driver is canceled and this call blocks until it has
// actually returned before releasing networkRx back to the next height.
func (m *MultiHeightManager) runOneHeight(
	ctx context.Context,
	cctx Context,
	height Height,
	networkRx <-chan NetworkItem,
	syncRx <-chan Height,
) (Height, error) {
	cachedForHeight := m.cache.DrainEqual(height)
	driver := newSingleHeightDriver(height, m.selfID, m.timeouts, m.newMachine, m.logger)

	heightCtx, cancelHeight := context.WithCancel(ctx)
	defer cancelHeight()

	type driverResult struct {
		decision Decision
		err      error
	}
	done := make(chan driverResult, 1)
	go func() {
		decision, err := driver.run(heightCtx, cctx, m.cache, networkRx, cachedForHeight)
		done <- driverResult{decision, err}
	}()

	for {
		select {
		case <-ctx.Done():
			cancelHeight()
			<-done // the driver is not cancel-safe: wait for it to actually stop reading networkRx
			return height, ctx.Err()

		case res := <-done:
			if res.err != nil {
				return height, res.err
			}
			if err := cctx.DecisionReached(ctx, res.decision); err != nil {
				return height, wrapError(ErrContext, err, "decision_reached")
			}
			m.logger.Info("decision reached", zap.Uint64("height", uint64(height)))
			return height.Next(), nil

		case h, ok := <-syncRx:
			if !ok {
				cancelHeight()
				<-done
				return height, newError(ErrSync, "sync receiver closed")
			}
			if h < height {
				m.logger.Debug("ignoring sync below current height",
					zap.Uint64("sync_height", uint64(h)), zap.Uint64("height", uint64(height)))
				continue
			}

			// Sync has advanced past (or to) this height. The driver is
			// abandoned: it never gets to decide, and its in-memory state
			// (whatever round it reached) is simply dropped, never reused.
			cancelHeight()
			<-done
			m.metrics.IncSyncCount()
			next := h.Next()
			m.logger.Info("sync advanced past height",
				zap.Uint64("sync_height", uint64(h)), zap.Uint64("height", uint64(height)), zap.Uint64("next_height", uint64(next)))
			return next, nil
		}
	}
}
