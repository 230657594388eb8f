package engagement

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func datePtr(y int, m time.Month, d int) *time.Time {
	t := date(y, m, d)
	return &t
}

func TestApplySession_FirstEverPractice(t *testing.T) {
	s := ApplySession(NewState(), date(2026, 3, 2))

	if s.CurrentStreak != 1 {
		t.Errorf("CurrentStreak = %d, want 1", s.CurrentStreak)
	}
	if s.LongestStreak != 1 {
		t.Errorf("LongestStreak = %d, want 1", s.LongestStreak)
	}
	if s.LastPractice == nil || !s.LastPractice.Equal(date(2026, 3, 2)) {
		t.Errorf("LastPractice = %v, want 2026-03-02", s.LastPractice)
	}
}

func TestApplySession_SameDayIsIdempotent(t *testing.T) {
	s := NewState()
	s = ApplySession(s, date(2026, 3, 2))
	again := ApplySession(s, date(2026, 3, 2))

	if again.CurrentStreak != s.CurrentStreak || again.LongestStreak != s.LongestStreak {
		t.Errorf("second same-day session moved the streak: %+v vs %+v", again, s)
	}
}

func TestApplySession_ConsecutiveDayExtends(t *testing.T) {
	s := State{CurrentStreak: 2, LongestStreak: 2, LastPractice: datePtr(2026, 3, 1), FreezeAvailable: true}
	s = ApplySession(s, date(2026, 3, 2))

	if s.CurrentStreak != 3 {
		t.Errorf("CurrentStreak = %d, want 3", s.CurrentStreak)
	}
	if s.LongestStreak != 3 {
		t.Errorf("LongestStreak = %d, want 3", s.LongestStreak)
	}
}

func TestApplySession_GapConsumesFreeze(t *testing.T) {
	// Missed two days with a freeze available: streak continues.
	s := State{CurrentStreak: 4, LongestStreak: 4, LastPractice: datePtr(2026, 3, 2), FreezeAvailable: true}
	s = ApplySession(s, date(2026, 3, 5))

	if s.CurrentStreak != 5 {
		t.Errorf("CurrentStreak = %d, want 5 (freeze continuation)", s.CurrentStreak)
	}
	if s.FreezeAvailable {
		t.Error("freeze not consumed")
	}
	if s.FreezeUsed == nil || !s.FreezeUsed.Equal(date(2026, 3, 5)) {
		t.Errorf("FreezeUsed = %v, want 2026-03-05", s.FreezeUsed)
	}
}

func TestApplySession_GapWithoutFreezeResets(t *testing.T) {
	s := State{CurrentStreak: 5, LongestStreak: 5, LastPractice: datePtr(2026, 3, 2), FreezeAvailable: false}
	s = ApplySession(s, date(2026, 3, 4))

	if s.CurrentStreak != 1 {
		t.Errorf("CurrentStreak = %d, want 1", s.CurrentStreak)
	}
	if s.LongestStreak != 5 {
		t.Errorf("LongestStreak = %d, want 5 preserved", s.LongestStreak)
	}
}

func TestApplySession_SecondGapSameWeekResets(t *testing.T) {
	// Wed gap covered by freeze, second gap the same ISO week resets.
	s := State{CurrentStreak: 3, LongestStreak: 3, LastPractice: datePtr(2026, 3, 2), FreezeAvailable: true}
	s = ApplySession(s, date(2026, 3, 4)) // Mon -> Wed, freeze consumed
	if s.CurrentStreak != 4 {
		t.Fatalf("CurrentStreak = %d, want 4 after freeze", s.CurrentStreak)
	}

	s = ApplySession(s, date(2026, 3, 6)) // Wed -> Fri, same week, no freeze left
	if s.CurrentStreak != 1 {
		t.Errorf("CurrentStreak = %d, want 1 on second gap", s.CurrentStreak)
	}
}

func TestApplySession_FreezeResetsNextISOWeek(t *testing.T) {
	// Freeze used Wed 2026-03-04 (week 10); by Tue 2026-03-10 (week 11)
	// it is available again and covers a fresh gap.
	s := State{CurrentStreak: 4, LongestStreak: 4, LastPractice: datePtr(2026, 3, 4), FreezeAvailable: false, FreezeUsed: datePtr(2026, 3, 4)}
	s.LastPractice = datePtr(2026, 3, 8)

	s = ApplySession(s, date(2026, 3, 10))
	if s.CurrentStreak != 5 {
		t.Errorf("CurrentStreak = %d, want 5 (fresh weekly freeze covers the gap)", s.CurrentStreak)
	}
	if s.FreezeAvailable {
		t.Error("freeze should be consumed again")
	}
}

func TestApplySession_LongestNeverBelowCurrent(t *testing.T) {
	s := NewState()
	days := []time.Time{
		date(2026, 3, 2), date(2026, 3, 3), date(2026, 3, 4),
		date(2026, 3, 8), date(2026, 3, 9), date(2026, 3, 15),
		date(2026, 3, 16), date(2026, 3, 17), date(2026, 3, 18),
	}
	for _, d := range days {
		s = ApplySession(s, d)
		if s.LongestStreak < s.CurrentStreak {
			t.Fatalf("on %v: LongestStreak %d < CurrentStreak %d", d, s.LongestStreak, s.CurrentStreak)
		}
	}
}
