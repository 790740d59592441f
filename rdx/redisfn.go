package rdx

import (
	"encoding/json"
	"log"
	"os"
	"time"

	"trotter/globals"

	"github.com/redis/go-redis/v9"
)

// Conn is the shared Redis client. It stays nil when REDIS_URL is unset,
// in which case every cache helper is a no-op and pages just hit the
// backend directly.
var Conn *redis.Client

func Init() {
	url := os.Getenv("REDIS_URL")
	if url == "" {
		log.Println("REDIS_URL not set; page caching disabled")
		return
	}
	opts, err := redis.ParseURL(url)
	if err != nil {
		log.Printf("bad REDIS_URL, caching disabled: %v", err)
		return
	}
	Conn = redis.NewClient(opts)
	if err := Conn.Ping(globals.Ctx).Err(); err != nil {
		log.Printf("redis unreachable, caching disabled: %v", err)
		Conn = nil
	}
}

// CacheGet loads a cached JSON value into out. Returns false on miss,
// decode failure or when caching is disabled.
func CacheGet(key string, out any) bool {
	if Conn == nil {
		return false
	}
	raw, err := Conn.Get(globals.Ctx, key).Result()
	if err != nil {
		return false
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		log.Printf("stale cache entry %s: %v", key, err)
		Conn.Del(globals.Ctx, key)
		return false
	}
	return true
}

// CacheSet stores a JSON value with a TTL. Failures are logged and
// swallowed; the cache is best-effort.
func CacheSet(key string, v any, ttl time.Duration) {
	if Conn == nil {
		return
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := Conn.Set(globals.Ctx, key, raw, ttl).Err(); err != nil {
		log.Printf("cache write %s failed: %v", key, err)
	}
}
