package booking

import (
	"sort"
	"strings"
	"sync"

	"lumea/services/schedule"
)

// providerLocks serializes checkout per (provider, date) so that cart
// validation and the confirmation write form one critical section. The
// store itself offers no compare-and-swap, so without this two devices
// could validate the same slot concurrently and both write.
type providerLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// lockKey resolves name variants to one canonical key so that carts
// naming the same provider differently ("Kiki Beauty", "Kiki Beauty &
// Spa") still serialize against each other, matching the containment
// rule conflict detection uses.
func lockKey(providerName, date string) string {
	name := strings.ToLower(strings.TrimSpace(providerName))
	if rule := schedule.ResolveRule(providerName); rule != nil {
		name = strings.ToLower(rule.Canonical)
	}
	return name + "|" + date
}

func (p *providerLocks) get(key string) *sync.Mutex {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.locks == nil {
		p.locks = make(map[string]*sync.Mutex)
	}
	l, ok := p.locks[key]
	if !ok {
		l = &sync.Mutex{}
		p.locks[key] = l
	}
	return l
}

// acquire locks every key in sorted order (so two carts touching the
// same providers cannot deadlock) and returns the release function.
func (p *providerLocks) acquire(keys []string) func() {
	uniq := make(map[string]bool, len(keys))
	ordered := make([]string, 0, len(keys))
	for _, k := range keys {
		if !uniq[k] {
			uniq[k] = true
			ordered = append(ordered, k)
		}
	}
	sort.Strings(ordered)

	held := make([]*sync.Mutex, 0, len(ordered))
	for _, k := range ordered {
		l := p.get(k)
		l.Lock()
		held = append(held, l)
	}
	return func() {
		for i := len(held) - 1; i >= 0; i-- {
			held[i].Unlock()
		}
	}
}
