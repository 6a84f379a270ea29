package core

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// fakeRecordingContext is a small hand-written Context used by the
// scenario tests, recording every Decision reached so the test can assert
// on them without needing gomock's call-matching ceremony for a method
// invoked many times in a loop.
type fakeRecordingContext struct {
	validators *ValidatorSet
	decisions  chan Decision
}

func newFakeRecordingContext(vs *ValidatorSet) *fakeRecordingContext {
	return &fakeRecordingContext{validators: vs, decisions: make(chan Decision, 16)}
}

func (f *fakeRecordingContext) Validators(ctx context.Context, height Height) (*ValidatorSet, error) {
	return f.validators, nil
}

func (f *fakeRecordingContext) DecisionReached(ctx context.Context, d Decision) error {
	f.decisions <- d
	return nil
}

func fourValidators() (*ValidatorSet, [4]ValidatorID) {
	var ids [4]ValidatorID
	validators := make([]Validator, 4)
	for i := range validators {
		ids[i] = voterID(byte(i + 1))
		validators[i] = Validator{ID: ids[i], VotingPower: 1}
	}
	return NewValidatorSet(validators), ids
}

func precommitFor(h Height, hash byte, voter ValidatorID) *Precommit {
	var bh BlockHash
	bh[0] = hash
	return &Precommit{Prevote{H: h, R: 0, Voter: voter, ValueHash: bh}}
}

func newTestManager(vs *ValidatorSet) (*MultiHeightManager, *fakeRecordingContext) {
	cctx := newFakeRecordingContext(vs)
	cfg := DefaultConfig()
	cfg.StartupDelay = 0
	cfg.Cache = CacheConfig{MaxHeightsAhead: 2, MaxTotalMessages: 100}
	mgr := NewMultiHeightManager(voterID(0), cfg, newFakeMachine, nil, nil)
	return mgr, cctx
}

func requireDecision(t *testing.T, ch <-chan Decision, wantHash byte) {
	t.Helper()
	select {
	case d := <-ch:
		require.Equal(t, wantHash, d.Block.Hash()[0])
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for decision")
	}
}

func requireNoDecision(t *testing.T, ch <-chan Decision) {
	t.Helper()
	select {
	case d := <-ch:
		t.Fatalf("unexpected decision: %v", d)
	case <-time.After(50 * time.Millisecond):
	}
}

// S1: a single height runs cleanly to a Decision once a quorum of
// Precommits for the same value arrives.
func TestScenarioSingleCleanHeight(t *testing.T) {
	vs, ids := fourValidators()
	mgr, cctx := newTestManager(vs)

	networkRx := make(chan NetworkItem)
	syncRx := make(chan Height)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	runErr := make(chan error, 1)
	go func() { runErr <- mgr.Run(ctx, cctx, 1, 0, networkRx, syncRx) }()

	for i := 0; i < 3; i++ {
		networkRx <- NetworkItem{Message: precommitFor(1, 0xAA, ids[i])}
	}
	requireDecision(t, cctx.decisions, 0xAA)

	cancel()
	require.ErrorIs(t, <-runErr, context.Canceled)
}

// S2: a message for a future height is buffered rather than discarded, and
// is delivered to that height's machine once the driver reaches it.
func TestScenarioFutureHeightBuffering(t *testing.T) {
	vs, ids := fourValidators()
	mgr, cctx := newTestManager(vs)

	networkRx := make(chan NetworkItem)
	syncRx := make(chan Height)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	runErr := make(chan error, 1)
	go func() { runErr <- mgr.Run(ctx, cctx, 1, 0, networkRx, syncRx) }()

	// Buffered ahead of height 1 finishing; this is validator 0's vote for
	// height 2, delivered early.
	networkRx <- NetworkItem{Message: precommitFor(2, 0xBB, ids[0])}

	for i := 0; i < 3; i++ {
		networkRx <- NetworkItem{Message: precommitFor(1, 0xAA, ids[i])}
	}
	requireDecision(t, cctx.decisions, 0xAA)

	// Only two more votes needed at height 2: the third was buffered.
	networkRx <- NetworkItem{Message: precommitFor(2, 0xBB, ids[1])}
	networkRx <- NetworkItem{Message: precommitFor(2, 0xBB, ids[2])}
	requireDecision(t, cctx.decisions, 0xBB)

	cancel()
	require.ErrorIs(t, <-runErr, context.Canceled)
}

// S3: a message for an already-passed height is discarded without
// affecting the height currently being driven.
func TestScenarioPastHeightDiscard(t *testing.T) {
	vs, ids := fourValidators()
	mgr, cctx := newTestManager(vs)

	networkRx := make(chan NetworkItem)
	syncRx := make(chan Height)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	runErr := make(chan error, 1)
	go func() { runErr <- mgr.Run(ctx, cctx, 5, 0, networkRx, syncRx) }()

	// Stale vote for a height already behind the one being driven.
	networkRx <- NetworkItem{Message: precommitFor(3, 0xCC, ids[0])}
	requireNoDecision(t, cctx.decisions)

	for i := 0; i < 3; i++ {
		networkRx <- NetworkItem{Message: precommitFor(5, 0xDD, ids[i])}
	}
	requireDecision(t, cctx.decisions, 0xDD)

	cancel()
	require.ErrorIs(t, <-runErr, context.Canceled)
}

// S4: sync reporting a height at or beyond the one in progress preempts
// the in-progress driver, which never gets to decide; its state is
// abandoned and the manager moves straight to the next height.
func TestScenarioSyncPreemptsStalledHeight(t *testing.T) {
	vs, ids := fourValidators()
	mgr, cctx := newTestManager(vs)

	networkRx := make(chan NetworkItem)
	syncRx := make(chan Height)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	runErr := make(chan error, 1)
	go func() { runErr <- mgr.Run(ctx, cctx, 1, 0, networkRx, syncRx) }()

	// Only two of three needed votes: height 1 never decides on its own.
	networkRx <- NetworkItem{Message: precommitFor(1, 0xAA, ids[0])}
	networkRx <- NetworkItem{Message: precommitFor(1, 0xAA, ids[1])}
	requireNoDecision(t, cctx.decisions)

	syncRx <- 1
	requireNoDecision(t, cctx.decisions)

	// Height 1's driver is gone; a fresh quorum at height 2 proves the
	// manager moved on rather than somehow reusing height 1's tally.
	for i := 0; i < 3; i++ {
		networkRx <- NetworkItem{Message: precommitFor(2, 0xEE, ids[i])}
	}
	requireDecision(t, cctx.decisions, 0xEE)

	cancel()
	require.ErrorIs(t, <-runErr, context.Canceled)
}

// S5: a sync signal reporting a height behind the one currently in
// progress is ignored entirely.
func TestScenarioSyncBelowCurrentIgnored(t *testing.T) {
	vs, ids := fourValidators()
	mgr, cctx := newTestManager(vs)

	networkRx := make(chan NetworkItem)
	syncRx := make(chan Height)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	runErr := make(chan error, 1)
	go func() { runErr <- mgr.Run(ctx, cctx, 5, 0, networkRx, syncRx) }()

	syncRx <- 3
	requireNoDecision(t, cctx.decisions)

	for i := 0; i < 3; i++ {
		networkRx <- NetworkItem{Message: precommitFor(5, 0xFF, ids[i])}
	}
	requireDecision(t, cctx.decisions, 0xFF)

	cancel()
	require.ErrorIs(t, <-runErr, context.Canceled)
}

// S6: a network item carrying a parse error is reported to the offending
// peer and surfaced as a fatal ErrMessageConversion.
func TestScenarioParseErrorReportsPeer(t *testing.T) {
	vs, _ := fourValidators()
	mgr, cctx := newTestManager(vs)

	ctrl := gomock.NewController(t)
	reporter := NewMockPeerReporter(ctrl)
	reporter.EXPECT().Report().Return(nil).Times(1)

	networkRx := make(chan NetworkItem)
	syncRx := make(chan Height)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	runErr := make(chan error, 1)
	go func() { runErr <- mgr.Run(ctx, cctx, 1, 0, networkRx, syncRx) }()

	networkRx <- NetworkItem{Err: errors.New("malformed message"), Report: reporter}

	err := <-runErr
	var cerr *ConsensusError
	require.ErrorAs(t, err, &cerr)
	require.Equal(t, ErrMessageConversion, cerr.Kind)
}
