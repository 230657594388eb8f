package spacedrep

import (
	"testing"
	"time"
)

var testDay = time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC)

func TestNewItem_StartsAtFirstRung(t *testing.T) {
	it := NewItem("eat", "Irregular Verbs", NamespaceVerb, testDay)

	if it.Interval != 1 {
		t.Errorf("Interval = %d, want 1", it.Interval)
	}
	if it.Status != StatusActive {
		t.Errorf("Status = %q, want active", it.Status)
	}
	wantNext := time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC)
	if !it.NextReview.Equal(wantNext) {
		t.Errorf("NextReview = %v, want %v", it.NextReview, wantNext)
	}
}

func TestSchedule_LadderWalk(t *testing.T) {
	// Repeated correct reviews must follow exactly 1→3→7→14→30→60→60→...
	it := NewItem("go", "Irregular Verbs", NamespaceVerb, testDay)
	want := []int{3, 7, 14, 30, 60, 60, 60}

	for i, w := range want {
		it = Schedule(it, true, testDay, Policy{})
		if it.Interval != w {
			t.Fatalf("step %d: Interval = %d, want %d", i, it.Interval, w)
		}
		wantNext := DateOf(testDay).AddDate(0, 0, w)
		if !it.NextReview.Equal(wantNext) {
			t.Fatalf("step %d: NextReview = %v, want %v", i, it.NextReview, wantNext)
		}
	}
}

func TestSchedule_WrongResetsToOne(t *testing.T) {
	for _, interval := range []int{1, 3, 7, 14, 30, 60} {
		it := ReviewItem{Key: "eat", Status: StatusActive, Interval: interval}
		it = Schedule(it, false, testDay, Policy{})
		if it.Interval != 1 {
			t.Errorf("from %d: Interval = %d, want 1", interval, it.Interval)
		}
		wantNext := DateOf(testDay).AddDate(0, 0, 1)
		if !it.NextReview.Equal(wantNext) {
			t.Errorf("from %d: NextReview = %v, want %v", interval, it.NextReview, wantNext)
		}
	}
}

func TestSchedule_OffLadderIntervalFindsNextRung(t *testing.T) {
	tests := []struct {
		current int
		want    int
	}{
		{0, 1},
		{2, 3},
		{10, 14},
		{59, 60},
		{60, 60},
		{90, 60},
	}
	for _, tt := range tests {
		it := ReviewItem{Key: "draw", Status: StatusActive, Interval: tt.current}
		it = Schedule(it, true, testDay, Policy{})
		if it.Interval != tt.want {
			t.Errorf("from %d: Interval = %d, want %d", tt.current, it.Interval, tt.want)
		}
	}
}

func TestSchedule_SuspendsAfterTopStreak(t *testing.T) {
	pol := Policy{SuspendAfterTopStreak: 3}
	it := ReviewItem{Key: "speak", Status: StatusActive, Interval: 60}

	for i := 0; i < 2; i++ {
		it = Schedule(it, true, testDay, pol)
		if it.Status != StatusActive {
			t.Fatalf("after %d top reviews: suspended too early", i+1)
		}
	}

	it = Schedule(it, true, testDay, pol)
	if it.Status != StatusSuspended {
		t.Errorf("Status = %q, want suspended after 3 correct at top rung", it.Status)
	}
}

func TestSchedule_WrongAnswerClearsTopStreak(t *testing.T) {
	pol := Policy{SuspendAfterTopStreak: 2}
	it := ReviewItem{Key: "write", Status: StatusActive, Interval: 60}

	it = Schedule(it, true, testDay, pol)
	it = Schedule(it, false, testDay, pol)
	if it.TopStreak != 0 {
		t.Errorf("TopStreak = %d, want 0 after wrong answer", it.TopStreak)
	}
	if it.Status != StatusActive {
		t.Errorf("Status = %q, want active", it.Status)
	}
}

func TestSchedule_ZeroPolicyNeverSuspends(t *testing.T) {
	it := ReviewItem{Key: "read", Status: StatusActive, Interval: 60}
	for i := 0; i < 20; i++ {
		it = Schedule(it, true, testDay, Policy{})
	}
	if it.Status != StatusActive {
		t.Errorf("Status = %q, want active with suspension disabled", it.Status)
	}
}
