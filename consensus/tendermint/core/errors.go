package core

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrorKind is the error taxonomy of §7: every failure the core can
// surface is one of these kinds, fatal to the consensus loop under the
// current propagation policy (no local recovery inside the core).
type ErrorKind int

const (
	// ErrInternalNetwork covers a closed network receiver or a failed
	// peer-report delivery.
	ErrInternalNetwork ErrorKind = iota
	// ErrMessageConversion covers a network item that failed to parse;
	// the peer is reported before this error is surfaced.
	ErrMessageConversion
	// ErrSync covers a closed sync receiver.
	ErrSync
	// ErrContext covers an error propagated from the embedding Context.
	ErrContext
	// ErrSingleHeight covers an error propagated from the single-height
	// state machine.
	ErrSingleHeight
)

func (k ErrorKind) String() string {
	switch k {
	case ErrInternalNetwork:
		return "internal_network_error"
	case ErrMessageConversion:
		return "message_conversion_error"
	case ErrSync:
		return "sync_error"
	case ErrContext:
		return "context_error"
	case ErrSingleHeight:
		return "single_height_error"
	default:
		return "unknown_error"
	}
}

// ConsensusError is the error type MultiHeightManager.Run returns for
// every fatal failure; cancellation of Run's ctx may instead surface ctx's
// own error unwrapped. The process supervisor is expected to decide restart
// policy from the Kind; the core itself never retries (§7).
type ConsensusError struct {
	Kind ErrorKind
	Err  error
}

func (e *ConsensusError) Error() string {
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *ConsensusError) Unwrap() error {
	return e.Err
}

func newError(kind ErrorKind, msg string) *ConsensusError {
	return &ConsensusError{Kind: kind, Err: errors.New(msg)}
}

func wrapError(kind ErrorKind, err error, msg string) *ConsensusError {
	return &ConsensusError{Kind: kind, Err: errors.Wrap(err, msg)}
}
