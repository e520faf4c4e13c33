// Package cache provides a bounded, concurrency-safe LRU cache.
//
//	patterns := cache.NewLRU[string, *regexp.Regexp](256)
//	re, err := patterns.GetOrLoad(expr, func(expr string) (*regexp.Regexp, error) {
//		return regexp.Compile(expr)
//	})
//
// Loaders run outside the cache lock; two goroutines missing the same key may
// both load it and the later Put wins.
package cache
