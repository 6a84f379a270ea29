package core

import "context"

// fakeBlock is the minimal Block used by the scenario tests below; a real
// embedder's Block would carry transactions and a state root, neither of
// which this package inspects.
type fakeBlock struct{ hash BlockHash }

func (b fakeBlock) Hash() BlockHash { return b.hash }

// fakeMachine is a bare-bones SingleHeightMachine used only by this
// package's own tests: it tallies Precommit voting power per BlockHash and
// reaches a Decision once any hash crosses the validator set's quorum.
// Everything a real machine would do — rounds, prevote bookkeeping,
// proposer selection — is out of scope (§1) and irrelevant to exercising
// the driver around it.
type fakeMachine struct {
	height     Height
	self       ValidatorID
	validators *ValidatorSet
	votes      map[BlockHash]map[ValidatorID]struct{}
}

func newFakeMachine(height Height, self ValidatorID, validators *ValidatorSet, _ TimeoutsConfig) SingleHeightMachine {
	return &fakeMachine{
		height:     height,
		self:       self,
		validators: validators,
		votes:      make(map[BlockHash]map[ValidatorID]struct{}),
	}
}

func (m *fakeMachine) Start(ctx context.Context, cctx Context) (MachineResult, error) {
	return TasksResult(), nil
}

func (m *fakeMachine) HandleProposal(ctx context.Context, cctx Context, init ProposalInit, content <-chan ProposalChunk, fin <-chan BlockHash) (MachineResult, error) {
	return TasksResult(), nil
}

func (m *fakeMachine) HandleTask(ctx context.Context, cctx Context, task Task) (MachineResult, error) {
	return TasksResult(), nil
}

func (m *fakeMachine) HandleMessage(ctx context.Context, cctx Context, msg ConsensusMessage) (MachineResult, error) {
	pc, ok := msg.(*Precommit)
	if !ok {
		return TasksResult(), nil
	}

	voters, ok := m.votes[pc.ValueHash]
	if !ok {
		voters = make(map[ValidatorID]struct{})
		m.votes[pc.ValueHash] = voters
	}
	voters[pc.Voter] = struct{}{}

	var power uint64
	var precommits []*Precommit
	for id := range voters {
		power += m.validators.PowerOf(id)
		v := *pc
		v.Voter = id
		precommits = append(precommits, &v)
	}
	if power >= m.validators.QuorumPower() {
		return DecisionResult(Decision{
			Block:      fakeBlock{hash: pc.ValueHash},
			Precommits: precommits,
		}), nil
	}
	return TasksResult(), nil
}
