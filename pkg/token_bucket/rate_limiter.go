package token_bucket

import (
	"sync"
	"time"
)

// Limiter решает пропустить запрос или отклонить его.
type Limiter interface {
	Allow() bool
}

// KeyedLimiter то же самое, но отдельное ведро на каждый ключ (например адрес клиента).
type KeyedLimiter interface {
	AllowKey(key string) bool
}

type Clock func() time.Time

type TokenBucket struct {
	capacity   int
	tokens     float64
	refillRate float64
	lastRefill time.Time
	now        Clock
	mu         sync.Mutex
}

func NewTokenBucket(capacity int, refillRate float64) *TokenBucket {
	return NewTokenBucketWithClock(capacity, refillRate, time.Now)
}

func NewTokenBucketWithClock(capacity int, refillRate float64, now Clock) *TokenBucket {
	return &TokenBucket{
		capacity:   capacity,
		tokens:     float64(capacity),
		refillRate: refillRate,
		lastRefill: now(),
		now:        now,
	}
}

func (t *TokenBucket) Allow() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.refill()

	if t.tokens >= 1 {
		t.tokens--
		return true
	}
	return false
}

// дробные токены копятся, иначе при частых вызовах ведро никогда не пополняется
func (t *TokenBucket) refill() {
	now := t.now()
	elapsed := now.Sub(t.lastRefill).Seconds()
	if elapsed <= 0 {
		return
	}

	t.tokens += elapsed * t.refillRate
	if t.tokens > float64(t.capacity) {
		t.tokens = float64(t.capacity)
	}
	t.lastRefill = now
}

// Buckets держит по ведру на ключ, ведра создаются лениво.
// Ведро которое не трогали дольше времени полного пополнения удаляется:
// новое ведро для того же ключа было бы в том же состоянии.
type Buckets struct {
	capacity   int
	refillRate float64
	now        Clock
	idleAfter  time.Duration

	mu        sync.Mutex
	buckets   map[string]*keyedBucket
	lastSweep time.Time
}

type keyedBucket struct {
	bucket   *TokenBucket
	lastUsed time.Time
}

func NewBuckets(capacity int, refillRate float64, now Clock) *Buckets {
	if now == nil {
		now = time.Now
	}

	// refillRate <= 0: ведро не пополняется, удалять его нельзя
	var idleAfter time.Duration
	if refillRate > 0 {
		idleAfter = time.Duration(float64(capacity) / refillRate * float64(time.Second))
		if idleAfter < time.Second {
			idleAfter = time.Second
		}
	}

	return &Buckets{
		capacity:   capacity,
		refillRate: refillRate,
		now:        now,
		idleAfter:  idleAfter,
		buckets:    make(map[string]*keyedBucket),
		lastSweep:  now(),
	}
}

func (b *Buckets) AllowKey(key string) bool {
	b.mu.Lock()
	now := b.now()
	b.sweep(now)

	entry, ok := b.buckets[key]
	if !ok {
		entry = &keyedBucket{bucket: NewTokenBucketWithClock(b.capacity, b.refillRate, b.now)}
		b.buckets[key] = entry
	}
	entry.lastUsed = now
	b.mu.Unlock()

	return entry.bucket.Allow()
}

// Len число ведер в памяти.
func (b *Buckets) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.buckets)
}

// sweep не чаще раза в idleAfter, вызывается под mu.
func (b *Buckets) sweep(now time.Time) {
	if b.idleAfter == 0 || now.Sub(b.lastSweep) < b.idleAfter {
		return
	}
	for key, entry := range b.buckets {
		if now.Sub(entry.lastUsed) >= b.idleAfter {
			delete(b.buckets, key)
		}
	}
	b.lastSweep = now
}
