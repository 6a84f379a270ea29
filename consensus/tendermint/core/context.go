package core

import "context"

// Context is the capability surface the embedding node provides (§6). It
// is consulted for the validator set at the start of each height, and
// notified exactly once per committed height, in ascending order. It is
// also threaded through to the single-height machine so that proposal
// construction, signing, and broadcasting have somewhere to perform their
// side effects; this package never inspects those calls.
type Context interface {
	// Validators returns the validator set for height. May suspend.
	Validators(ctx context.Context, height Height) (*ValidatorSet, error)
	// DecisionReached is invoked exactly once per committed height, in
	// ascending order. May suspend. If it returns an error the height
	// does not advance (§8 invariant 5).
	DecisionReached(ctx context.Context, decision Decision) error
}

// PeerReporter is a one-shot signal: invoking it reports the peer that
// delivered a malformed network item (§6).
type PeerReporter interface {
	Report() error
}

// NetworkItem is one element of the network receiver's sequence: either a
// successfully parsed message, or a parse error paired with the handle to
// report the peer that sent it (§6).
type NetworkItem struct {
	Message ConsensusMessage
	Err     error
	Report  PeerReporter
}
