package errorpatterns

import (
	"testing"
	"time"
)

func TestNew_StartsWatching(t *testing.T) {
	today := time.Date(2026, 3, 2, 14, 0, 0, 0, time.UTC)
	p := New(Observation{Pattern: "past-instead-of-participle", Verb: "eat"}, today)

	if p.Occurrences != 1 {
		t.Errorf("Occurrences = %d, want 1", p.Occurrences)
	}
	if p.Status != StatusWatching {
		t.Errorf("Status = %q, want watching", p.Status)
	}
	if !p.LastSeen.Equal(time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("LastSeen = %v, want date-only 2026-03-02", p.LastSeen)
	}
}

func TestObserve_ActivatesAtThreshold(t *testing.T) {
	today := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	p := New(Observation{Pattern: "missing-ed", Verb: "want"}, today)

	p = p.Observe(today.AddDate(0, 0, 1))
	if p.Status != StatusWatching {
		t.Fatalf("Status = %q after 2 occurrences, want watching", p.Status)
	}

	p = p.Observe(today.AddDate(0, 0, 2))
	if p.Status != StatusActive {
		t.Errorf("Status = %q after 3 occurrences, want active", p.Status)
	}
	if p.Occurrences != 3 {
		t.Errorf("Occurrences = %d, want 3", p.Occurrences)
	}
}
