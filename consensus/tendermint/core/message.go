package core

// ConsensusMessage is a tagged variant over {Proposal, Prevote, Precommit,
// ...}; every variant carries a height accessor (§3). Wire-level
// encoding/decoding of these messages is handled upstream of the core
// (§1): by the time a message reaches here it is already a typed value.
type ConsensusMessage interface {
	Height() Height
	Round() int64
	Sender() ValidatorID
}

// ProposalInit is the metadata portion of a Proposal, separated from its
// streamed block contents by the ProposalWrapper adapter (§3, §6).
type ProposalInit struct {
	Height     Height
	Round      int64
	Proposer   ValidatorID
	ValidRound int64 // -1 when no earlier round is valid for this proposal
}

// ProposalChunk is one piece of a streamed block body. Its contents are
// owned by the streaming sub-protocol the core treats as opaque (§6).
type ProposalChunk []byte

// Proposal carries a block identity plus a streaming content descriptor,
// in addition to the common metadata in ProposalInit (§3).
type Proposal struct {
	Init      ProposalInit
	BlockHash BlockHash
	Content   <-chan ProposalChunk
	Fin       <-chan BlockHash
}

func (p *Proposal) Height() Height      { return p.Init.Height }
func (p *Proposal) Round() int64        { return p.Init.Round }
func (p *Proposal) Sender() ValidatorID { return p.Init.Proposer }

// Prevote is a vote for a value at a given height/round.
type Prevote struct {
	H         Height
	R         int64
	Voter     ValidatorID
	ValueHash BlockHash
}

func (p *Prevote) Height() Height      { return p.H }
func (p *Prevote) Round() int64        { return p.R }
func (p *Prevote) Sender() ValidatorID { return p.Voter }

// Precommit is the second-round vote that, once a quorum is collected,
// justifies a Decision. It shares Prevote's shape, so it embeds it
// directly rather than duplicating the fields.
type Precommit struct {
	Prevote
}
