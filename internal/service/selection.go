package service

import (
	"math/rand/v2"
	"sort"
	"time"

	"github.com/factflip/backend/internal/store"
)

// eligible filters facts down to those carrying at least one of tags.
func eligible(facts []store.FactState, tags []string) []store.FactState {
	if len(tags) == 0 {
		return facts
	}
	out := make([]store.FactState, 0, len(facts))
	for _, fs := range facts {
		if fs.Fact.HasAnyTag(tags) {
			out = append(out, fs)
		}
	}
	return out
}

// spacedQueue orders the facts that may be studied now: overdue facts first,
// most overdue leading and ties broken by deck position, then new facts in
// deck position order. Facts scheduled in the future are left out.
func spacedQueue(facts []store.FactState, now time.Time) []store.FactState {
	var due, fresh []store.FactState
	for _, fs := range facts {
		switch {
		case fs.State.IsNew():
			fresh = append(fresh, fs)
		case fs.State.Due(now):
			due = append(due, fs)
		}
	}

	sort.SliceStable(due, func(i, j int) bool {
		if !due[i].State.NextReview.Equal(due[j].State.NextReview) {
			return due[i].State.NextReview.Before(due[j].State.NextReview)
		}
		return due[i].Fact.Position < due[j].Fact.Position
	})
	sort.SliceStable(fresh, func(i, j int) bool {
		return fresh[i].Fact.Position < fresh[j].Fact.Position
	})

	return append(due, fresh...)
}

// pickSpaced returns the head of the spaced queue, or a uniformly random
// member of it when shuffle is on.
func pickSpaced(facts []store.FactState, now time.Time, shuffle bool, rnd *rand.Rand) (store.FactState, bool) {
	queue := spacedQueue(facts, now)
	if len(queue) == 0 {
		return store.FactState{}, false
	}
	if shuffle {
		return queue[rnd.IntN(len(queue))], true
	}
	return queue[0], true
}

// unserved drops the facts in served.
func unserved(facts []store.FactState, served map[string]bool) []store.FactState {
	if len(served) == 0 {
		return facts
	}
	out := make([]store.FactState, 0, len(facts))
	for _, fs := range facts {
		if !served[fs.Fact.ID] {
			out = append(out, fs)
		}
	}
	return out
}

// forget removes the facts of pool from served and reports whether any were
// there.
func forget(pool []store.FactState, served map[string]bool) bool {
	found := false
	for _, fs := range pool {
		if served[fs.Fact.ID] {
			delete(served, fs.Fact.ID)
			found = true
		}
	}
	return found
}

// covers reports whether every one of facts is in covered. An empty deck is
// never covered.
func covers(facts []store.FactState, covered map[string]bool) bool {
	if len(facts) == 0 {
		return false
	}
	for _, fs := range facts {
		if !covered[fs.Fact.ID] {
			return false
		}
	}
	return true
}

// pickRandom returns a random fact not yet viewed in the current cycle and
// marks it viewed. When every fact has been viewed the cycle restarts.
// cycleDone reports that the pick completed the cycle.
func pickRandom(facts []store.FactState, viewed map[string]bool, rnd *rand.Rand) (fs store.FactState, cycleDone, ok bool) {
	if len(facts) == 0 {
		return store.FactState{}, false, false
	}

	var unviewed []store.FactState
	for _, f := range facts {
		if !viewed[f.Fact.ID] {
			unviewed = append(unviewed, f)
		}
	}
	if len(unviewed) == 0 {
		clear(viewed)
		unviewed = facts
	}

	fs = unviewed[rnd.IntN(len(unviewed))]
	viewed[fs.Fact.ID] = true
	return fs, len(unviewed) == 1, true
}

// pickSequential returns the fact at position, wrapping around the deck, and
// the position to use next time.
func pickSequential(facts []store.FactState, position int) (fs store.FactState, next int, cycleDone, ok bool) {
	if len(facts) == 0 {
		return store.FactState{}, position, false, false
	}
	idx := position % len(facts)
	if idx < 0 {
		idx = 0
	}
	return facts[idx], idx + 1, idx == len(facts)-1, true
}
