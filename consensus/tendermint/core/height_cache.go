package core

import "sort"

// HeightCache is the sorted mapping from a future height to the messages
// buffered for it ahead of time (§3, §4.3). It is owned exclusively by
// the MultiHeightManager across the whole run, which drains it at the
// start of each height and hands the result to that height's
// SingleHeightDriver; the driver only inserts into it, never iterates it
// itself (§5).
//
// This plays the role the teacher's MsgStore plays for the single-height
// core, generalized here to the multi-height boundary: a height-keyed
// buffer with bounded growth rather than an unbounded round/type/address
// index.
type HeightCache struct {
	cfg      CacheConfig
	messages map[Height][]ConsensusMessage
	total    int
}

// NewHeightCache builds an empty cache bounded by cfg.
func NewHeightCache(cfg CacheConfig) *HeightCache {
	return &HeightCache{
		cfg:      cfg,
		messages: make(map[Height][]ConsensusMessage),
	}
}

// Insert appends msg to the buffer for its height, relative to current.
// It reports whether the message was accepted; a message is dropped
// silently (from the cache's perspective — the driver logs the drop)
// when it falls outside the configured bound. This is the cache's
// defense against a malicious peer flooding future-height messages (§9).
func (c *HeightCache) Insert(current Height, msg ConsensusMessage) bool {
	height := msg.Height()
	if c.cfg.MaxHeightsAhead > 0 && uint64(height-current) > c.cfg.MaxHeightsAhead {
		return false
	}
	if c.cfg.MaxTotalMessages > 0 && c.total >= c.cfg.MaxTotalMessages {
		return false
	}
	c.messages[height] = append(c.messages[height], msg)
	c.total++
	return true
}

// DrainEqual returns, in insertion order, all messages previously
// inserted for exactly height current, and atomically removes from the
// cache every entry with key <= current (§4.3). The returned slice is nil
// if no entry for current exists.
//
// The algorithm follows get_current_height_messages in the source this
// package generalizes: walk
// keys in ascending order, dropping anything <= current until either an
// exact match is found and returned, or the first key greater than
// current is reached (at which point nothing further needs draining).
func (c *HeightCache) DrainEqual(current Height) []ConsensusMessage {
	if len(c.messages) == 0 {
		return nil
	}
	keys := make([]Height, 0, len(c.messages))
	for h := range c.messages {
		keys = append(keys, h)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	for _, h := range keys {
		switch {
		case h < current:
			c.total -= len(c.messages[h])
			delete(c.messages, h)
		case h == current:
			msgs := c.messages[h]
			c.total -= len(msgs)
			delete(c.messages, h)
			return msgs
		default: // h > current
			return nil
		}
	}
	return nil
}

// Len reports the number of buffered messages across all cached heights.
func (c *HeightCache) Len() int {
	return c.total
}
