package db

import (
	"sync"

	"github.com/dgraph-io/ristretto"
	log "github.com/sirupsen/logrus"
)

// Storing cache keys in a concurrent map so all cached spending views for
// one uid can be cleared when that uid ingests new records.
var (
	Cache             *ristretto.Cache
	spendingCacheKeys = struct {
		sync.RWMutex
		m map[string]map[string]struct{}
	}{m: make(map[string]map[string]struct{})}
)

func InitCache() {
	var err error
	Cache, err = ristretto.NewCache(&ristretto.Config{
		NumCounters: 10000, // number of keys to track frequency of
		MaxCost:     10000,
		BufferItems: 64, // number of keys per Get buffer
	})
	if err != nil {
		log.Fatalf("failed to initialize cache: %v", err)
	}
}

func SetSpendingCache(uid, cacheKey string, value interface{}) {
	if Cache == nil {
		return
	}
	spendingCacheKeys.Lock()
	if spendingCacheKeys.m[uid] == nil {
		spendingCacheKeys.m[uid] = make(map[string]struct{})
	}
	spendingCacheKeys.m[uid][cacheKey] = struct{}{}
	spendingCacheKeys.Unlock()
	Cache.Set(cacheKey, value, 1)
}

func GetSpendingCache(cacheKey string) (interface{}, bool) {
	if Cache == nil {
		return nil, false
	}
	return Cache.Get(cacheKey)
}

func ClearSpendingCacheForUser(uid string) {
	if Cache == nil {
		return
	}
	spendingCacheKeys.Lock()
	for key := range spendingCacheKeys.m[uid] {
		Cache.Del(key)
	}
	delete(spendingCacheKeys.m, uid)
	spendingCacheKeys.Unlock()
}
