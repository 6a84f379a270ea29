package core

import "time"

// TimeoutsConfig carries the per-round timeouts the single-height machine
// interprets; the core only passes these through unchanged (§5).
type TimeoutsConfig struct {
	ProposalTimeout  time.Duration
	PrevoteTimeout   time.Duration
	PrecommitTimeout time.Duration
}

// DefaultTimeoutsConfig mirrors the conservative defaults a Tendermint-family
// implementation ships with; embedders are expected to tune these for their
// network's latency profile.
var DefaultTimeoutsConfig = TimeoutsConfig{
	ProposalTimeout:  3 * time.Second,
	PrevoteTimeout:   1 * time.Second,
	PrecommitTimeout: 1 * time.Second,
}

// CacheConfig bounds the HeightCache against a malicious or confused peer
// flooding future-height messages (§4.3, §9). The suggested, and default,
// policy is to accept only the immediate next height.
type CacheConfig struct {
	// MaxHeightsAhead caps how far beyond the current height a message is
	// accepted into the cache. Zero means unbounded, which the spec calls
	// out as unacceptable; DefaultCacheConfig uses 1.
	MaxHeightsAhead uint64
	// MaxTotalMessages caps the total number of buffered messages across
	// all cached heights.
	MaxTotalMessages int
}

// DefaultCacheConfig only caches messages for current_height+1, per the
// safe default the spec suggests (§4.3, §9).
var DefaultCacheConfig = CacheConfig{
	MaxHeightsAhead:  1,
	MaxTotalMessages: 10_000,
}

// Config is the full set of values an embedder supplies when constructing
// and running a MultiHeightManager: NewMultiHeightManager reads Timeouts
// and Cache, and StartupDelay is the value to pass as Run's startupDelay
// argument. There is no file format or CLI for it (§6); the
// embedding node is responsible for sourcing these values however it
// configures everything else.
type Config struct {
	Timeouts     TimeoutsConfig
	StartupDelay time.Duration
	Cache        CacheConfig
}

// DefaultConfig returns a Config with conservative defaults and a
// non-zero StartupDelay, matching the production requirement that the
// delay be strictly greater than zero (§4.1). NewMultiHeightManager does
// not read StartupDelay; the delay Run waits is its own startupDelay
// argument.
func DefaultConfig() Config {
	return Config{
		Timeouts:     DefaultTimeoutsConfig,
		StartupDelay: 5 * time.Second,
		Cache:        DefaultCacheConfig,
	}
}
