// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"
)

// LoginThrottle counts failed admin logins per client and submitted email
// over a sliding window. Once a key reaches the limit further attempts are
// refused until its oldest failure leaves the window. A successful login
// clears the key.
//
// A nil *LoginThrottle allows everything.
type LoginThrottle struct {
	mu       sync.Mutex
	failures map[string][]time.Time
	limit    int
	window   time.Duration
	now      func() time.Time
	stopCh   chan struct{}
	stop     sync.Once
}

// NewLoginThrottle allows limit failed attempts per key within window.
// It starts a goroutine that drops idle keys; call Stop to end it.
func NewLoginThrottle(limit int, window time.Duration) *LoginThrottle {
	lt := &LoginThrottle{
		failures: make(map[string][]time.Time),
		limit:    limit,
		window:   window,
		now:      time.Now,
		stopCh:   make(chan struct{}),
	}

	go func() {
		ticker := time.NewTicker(window)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				lt.cleanup()
			case <-lt.stopCh:
				return
			}
		}
	}()

	return lt
}

// Stop ends the cleanup goroutine. Safe to call more than once.
func (lt *LoginThrottle) Stop() {
	if lt == nil {
		return
	}
	lt.stop.Do(func() { close(lt.stopCh) })
}

// ThrottleKey identifies a login attempt by client IP and the email it
// was made for. Email case and surrounding space are ignored.
func ThrottleKey(r *http.Request, email string) string {
	return ClientIP(r) + "|" + strings.ToLower(strings.TrimSpace(email))
}

// RetryAfter returns how long key must wait before its next attempt.
// Zero means the attempt may proceed.
func (lt *LoginThrottle) RetryAfter(key string) time.Duration {
	if lt == nil {
		return 0
	}
	lt.mu.Lock()
	defer lt.mu.Unlock()

	now := lt.now()
	recent := lt.prune(key, now)
	if len(recent) < lt.limit {
		return 0
	}
	return recent[0].Add(lt.window).Sub(now)
}

// Fail records a failed attempt for key.
func (lt *LoginThrottle) Fail(key string) {
	if lt == nil {
		return
	}
	lt.mu.Lock()
	defer lt.mu.Unlock()

	now := lt.now()
	lt.failures[key] = append(lt.prune(key, now), now)
}

// Succeed forgets every failure recorded for key.
func (lt *LoginThrottle) Succeed(key string) {
	if lt == nil {
		return
	}
	lt.mu.Lock()
	defer lt.mu.Unlock()
	delete(lt.failures, key)
}

// prune drops failures older than the window. Callers hold mu.
func (lt *LoginThrottle) prune(key string, now time.Time) []time.Time {
	cutoff := now.Add(-lt.window)
	recent := lt.failures[key][:0]
	for _, ts := range lt.failures[key] {
		if ts.After(cutoff) {
			recent = append(recent, ts)
		}
	}
	if len(recent) == 0 {
		delete(lt.failures, key)
		return nil
	}
	lt.failures[key] = recent
	return recent
}

// cleanup removes keys whose failures have all expired.
func (lt *LoginThrottle) cleanup() {
	lt.mu.Lock()
	defer lt.mu.Unlock()

	now := lt.now()
	for key := range lt.failures {
		lt.prune(key, now)
	}
}

// ClientIP extracts the client's IP address, preferring X-Forwarded-For
// and X-Real-IP set by the reverse proxy.
func ClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		return strings.TrimSpace(first)
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return strings.TrimSpace(xri)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
