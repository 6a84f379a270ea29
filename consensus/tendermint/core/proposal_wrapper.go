package core

// ProposalWrapper is the seam between a single wire Proposal message and
// the streaming block-content sub-protocol (§6). The source this driver
// is modeled on needed this wrapper to satisfy an orphan rule that Go has
// no equivalent of; the conversion is kept as its own type anyway so the
// call site in handleMessage reads the same way the contract is written.
type ProposalWrapper struct {
	Proposal *Proposal
}

// Unwrap splits the Proposal into its metadata, its content-chunk stream,
// and its final-block-hash signal.
func (w ProposalWrapper) Unwrap() (ProposalInit, <-chan ProposalChunk, <-chan BlockHash) {
	return w.Proposal.Init, w.Proposal.Content, w.Proposal.Fin
}
