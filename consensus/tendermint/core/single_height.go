package core

import (
	"context"

	"go.uber.org/zap"
)

// HeightState is the lifecycle of a single height (§3): Starting while
// the validator set is fetched and the machine initialized, Running
// while accepting messages and fired tasks, and one of the two terminal
// states once the driver returns.
type HeightState int

const (
	HeightStarting HeightState = iota
	HeightRunning
	HeightDecided
	HeightAborted
)

func (s HeightState) String() string {
	switch s {
	case HeightStarting:
		return "starting"
	case HeightRunning:
		return "running"
	case HeightDecided:
		return "decided"
	case HeightAborted:
		return "aborted"
	default:
		return "unknown"
	}
}

// MachineResult is what every SingleHeightMachine call returns: either a
// terminal Decision, or more Tasks to schedule (§4.2). Exactly one of the
// two is meaningful; a result with neither means "no progress, no tasks".
type MachineResult struct {
	Decision *Decision
	Tasks    []Task
}

// DecisionResult wraps a terminal Decision as a MachineResult.
func DecisionResult(d Decision) MachineResult {
	return MachineResult{Decision: &d}
}

// TasksResult wraps zero or more Tasks as a MachineResult.
func TasksResult(tasks ...Task) MachineResult {
	return MachineResult{Tasks: tasks}
}

// SingleHeightMachine is the single-height consensus state machine the
// core drives but does not define: Tendermint rounds, prevote/precommit
// accounting, and proposer selection all live behind this interface
// (§1). The core only ever sees a Decision or a set of Tasks back.
type SingleHeightMachine interface {
	// Start initializes the machine for its height and returns either an
	// immediate Decision or the initial set of Tasks to schedule.
	Start(ctx context.Context, cctx Context) (MachineResult, error)
	// HandleProposal is the special-cased dispatch for Proposal messages,
	// split via ProposalWrapper so the streamed block content and final
	// hash are delivered separately from the proposal's metadata.
	HandleProposal(ctx context.Context, cctx Context, init ProposalInit, content <-chan ProposalChunk, fin <-chan BlockHash) (MachineResult, error)
	// HandleMessage dispatches any non-Proposal, current-height message.
	HandleMessage(ctx context.Context, cctx Context, msg ConsensusMessage) (MachineResult, error)
	// HandleTask delivers a fired Task back into the machine.
	HandleTask(ctx context.Context, cctx Context, task Task) (MachineResult, error)
}

// MachineFactory constructs a fresh SingleHeightMachine for one height;
// this stands in for `SingleHeightConsensus::new` in the source this
// package generalizes.
type MachineFactory func(height Height, self ValidatorID, validators *ValidatorSet, timeouts TimeoutsConfig) SingleHeightMachine

// SingleHeightDriver runs consensus for exactly one height (§4.2). It
// owns a SingleHeight machine and a TaskScheduler for the lifetime of
// that height only; both are discarded on return, whether the height
// ends in a Decision or is abandoned by its caller.
type SingleHeightDriver struct {
	height     Height
	selfID     ValidatorID
	timeouts   TimeoutsConfig
	newMachine MachineFactory
	logger     *zap.Logger

	state     HeightState
	scheduler *TaskScheduler
}

func newSingleHeightDriver(height Height, selfID ValidatorID, timeouts TimeoutsConfig, factory MachineFactory, logger *zap.Logger) *SingleHeightDriver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SingleHeightDriver{
		height:     height,
		selfID:     selfID,
		timeouts:   timeouts,
		newMachine: factory,
		logger:     logger,
		state:      HeightStarting,
		scheduler:  NewTaskScheduler(),
	}
}

// run drives the height to completion following the contract of §4.2. It
// is NOT cancel-safe: the caller must either let it return on its own, or
// cancel ctx and then wait for run to actually return before touching
// networkRx or cache again, since both are shared across heights (§5).
//
// cachedForHeight is the result of HeightCache.DrainEqual for this
// height, already removed from the cache by the caller; run takes
// ownership of it as its same-height buffer.
func (d *SingleHeightDriver) run(ctx context.Context, cctx Context, cache *HeightCache, networkRx <-chan NetworkItem, cachedForHeight []ConsensusMessage) (Decision, error) {
	defer d.scheduler.Close()

	validators, err := cctx.Validators(ctx, d.height)
	if err != nil {
		d.state = HeightAborted
		return Decision{}, wrapError(ErrContext, err, "fetch validators")
	}

	machine := d.newMachine(d.height, d.selfID, validators, d.timeouts)
	d.state = HeightRunning
	d.logger.Info("starting height", zap.Uint64("height", uint64(d.height)), zap.Int("validators", len(validators.Validators)))

	// Preserves insertion order; the loop below pops from the tail (§9).
	buffer := append([]ConsensusMessage(nil), cachedForHeight...)

	result, err := machine.Start(ctx, cctx)
	if err != nil {
		d.state = HeightAborted
		return Decision{}, wrapError(ErrSingleHeight, err, "machine start")
	}
	if decision, done := d.absorb(result); done {
		return decision, nil
	}

	for {
		var (
			msg     ConsensusMessage
			task    Task
			gotTask bool
			err     error
		)

		if len(buffer) > 0 {
			msg = buffer[len(buffer)-1]
			buffer = buffer[:len(buffer)-1]
		} else {
			select {
			case <-ctx.Done():
				d.state = HeightAborted
				return Decision{}, wrapError(ErrContext, ctx.Err(), "height canceled")
			case t := <-d.scheduler.NextReady():
				task = t
				gotTask = true
			case item, ok := <-networkRx:
				if !ok {
					d.state = HeightAborted
					return Decision{}, newError(ErrInternalNetwork, "network receiver closed")
				}
				if item.Err != nil {
					if item.Report != nil {
						if rerr := item.Report.Report(); rerr != nil {
							d.state = HeightAborted
							return Decision{}, wrapError(ErrInternalNetwork, rerr, "failed to send peer report")
						}
					}
					d.state = HeightAborted
					return Decision{}, wrapError(ErrMessageConversion, item.Err, "failed to parse network message")
				}
				msg = item.Message
			}
		}

		var result MachineResult
		if gotTask {
			d.logger.Debug("task fired", zap.Uint64("height", uint64(d.height)))
			result, err = machine.HandleTask(ctx, cctx, task)
		} else {
			result, err = d.handleMessage(ctx, cctx, machine, cache, msg)
		}
		if err != nil {
			d.state = HeightAborted
			return Decision{}, wrapError(ErrSingleHeight, err, "machine step")
		}
		if decision, done := d.absorb(result); done {
			return decision, nil
		}
	}
}

// absorb schedules any Tasks in result and reports whether it carried a
// terminal Decision.
func (d *SingleHeightDriver) absorb(result MachineResult) (Decision, bool) {
	if result.Decision != nil {
		d.state = HeightDecided
		return *result.Decision, true
	}
	for _, t := range result.Tasks {
		d.scheduler.Push(t)
	}
	return Decision{}, false
}

// handleMessage is the per-message dispatch of §4.2 step 6: route by
// height relative to the one this driver is running, then by message
// kind.
func (d *SingleHeightDriver) handleMessage(ctx context.Context, cctx Context, machine SingleHeightMachine, cache *HeightCache, msg ConsensusMessage) (MachineResult, error) {
	if msg.Height() != d.height {
		if msg.Height() > d.height {
			if cache.Insert(d.height, msg) {
				d.logger.Debug("buffering message for a future height",
					zap.Uint64("msg_height", uint64(msg.Height())), zap.Uint64("height", uint64(d.height)))
			} else {
				d.logger.Debug("dropping future-height message outside the cache bound",
					zap.Uint64("msg_height", uint64(msg.Height())), zap.Uint64("height", uint64(d.height)))
			}
		} else {
			d.logger.Debug("discarding message for a past height",
				zap.Uint64("msg_height", uint64(msg.Height())), zap.Uint64("height", uint64(d.height)))
		}
		return MachineResult{}, nil
	}

	if proposal, ok := msg.(*Proposal); ok {
		init, content, fin := ProposalWrapper{Proposal: proposal}.Unwrap()
		return machine.HandleProposal(ctx, cctx, init, content, fin)
	}
	return machine.HandleMessage(ctx, cctx, msg)
}
