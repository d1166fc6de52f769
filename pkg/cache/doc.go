// Package cache provides a generic, thread-safe LRU cache.
//
// The cache holds at most a fixed number of entries and drops the least
// recently used one when a new key would exceed that capacity. It keeps hit,
// miss and eviction counters so callers can report how well a memo performs:
//
//	names := cache.New[Key, string](4096)
//	name, err := names.GetOrCompute(key, func() (string, error) {
//		return expensive(key)
//	})
//	log.Debug("memo", "hit_ratio", names.Stats().HitRatio())
//
// Get, Put, Remove and GetOrCompute are O(1). Peek reads without changing
// recency or counters.
package cache
