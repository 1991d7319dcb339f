package ratelimit

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// Interval enforces a fixed delay between successive requests. The first
// request passes immediately. Not safe for concurrent use; the pipeline is
// strictly sequential.
type Interval struct {
	d    time.Duration
	last time.Time
}

func NewInterval(d time.Duration) *Interval {
	return &Interval{d: d}
}

func (l *Interval) Wait(ctx context.Context) error {
	if !l.last.IsZero() {
		if wait := l.d - time.Since(l.last); wait > 0 {
			t := time.NewTimer(wait)
			defer t.Stop()
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-t.C:
			}
		}
	}
	l.last = time.Now()
	return nil
}

// Bucket is a token-bucket limiter for callers that want burst-tolerant
// pacing instead of a fixed interval.
type Bucket struct {
	l *rate.Limiter
}

func NewBucket(perSecond float64, burst int) *Bucket {
	return &Bucket{l: rate.NewLimiter(rate.Limit(perSecond), burst)}
}

func (b *Bucket) Wait(ctx context.Context) error {
	return b.l.Wait(ctx)
}
