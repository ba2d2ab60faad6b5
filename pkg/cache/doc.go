// Package cache provides a generic, thread-safe LRU cache.
//
// The cache bounds memory for per-key state that can be rebuilt or simply
// forgotten, such as in-progress form drafts keyed by visitor:
//
//	forms := cache.NewLRUCache[string, *Form](1000)
//	forms.SetEvictCallback(func(id string, _ *Form) {
//		log.Debug("form evicted", "visitor", id)
//	})
//	form, existed := forms.GetOrCreate(visitorID, NewForm)
//
// Get, GetOrCreate and Put mark a key as recently used. All operations are O(1).
package cache
