package server

import (
	"sync"
	"time"
)

// viewCooldown stops repeated reads by one user from inflating a blog's view count.
const viewCooldown = time.Hour

type viewKey struct {
	blogID int
	userID int
}

type viewTracker struct {
	cooldown time.Duration
	nowFunc  func() time.Time
	seen     map[viewKey]time.Time
	lock     sync.Mutex
}

func newViewTracker(cooldown time.Duration, now func() time.Time) *viewTracker {
	return &viewTracker{
		cooldown: cooldown,
		nowFunc:  now,
		seen:     make(map[viewKey]time.Time),
	}
}

// record reports whether this view should count, and if so starts the user's cooldown.
func (vt *viewTracker) record(blogID, userID int) bool {
	vt.lock.Lock()
	defer vt.lock.Unlock()

	key := viewKey{blogID: blogID, userID: userID}
	now := vt.nowFunc()
	if last, ok := vt.seen[key]; ok && now.Sub(last) < vt.cooldown {
		return false
	}
	vt.seen[key] = now
	return true
}
