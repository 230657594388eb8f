package spacedrep

import (
	"reflect"
	"testing"
	"time"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func testItems() []ReviewItem {
	return []ReviewItem{
		{Key: "eat", Topic: "Irregular Verbs", Status: StatusActive, Interval: 3, NextReview: day(2026, 3, 1)},
		{Key: "go", Topic: "Irregular Verbs", Status: StatusActive, Interval: 1, NextReview: day(2026, 2, 27)},
		{Key: "be", Topic: "Irregular Verbs", Status: StatusActive, Interval: 7, NextReview: day(2026, 2, 27)},
		{Key: "topic:will_future", Topic: "Will Future", Status: StatusActive, Interval: 1, NextReview: day(2026, 3, 2)},
		{Key: "speak", Topic: "Irregular Verbs", Status: StatusSuspended, Interval: 60, NextReview: day(2026, 2, 1)},
		{Key: "write", Topic: "Irregular Verbs", Status: StatusActive, Interval: 14, NextReview: day(2026, 3, 10)},
	}
}

func TestSelectDue_OrderedByDateThenKey(t *testing.T) {
	keys, shortfall := SelectDue(testItems(), day(2026, 3, 2), Filter{}, 10)

	want := []string{"be", "go", "eat", "topic:will_future"}
	if !reflect.DeepEqual(keys, want) {
		t.Errorf("keys = %v, want %v", keys, want)
	}
	if shortfall != 6 {
		t.Errorf("shortfall = %d, want 6", shortfall)
	}
}

func TestSelectDue_ExcludesSuspendedAndFuture(t *testing.T) {
	keys, _ := SelectDue(testItems(), day(2026, 3, 2), Filter{}, 10)
	for _, k := range keys {
		if k == "speak" {
			t.Error("suspended item selected")
		}
		if k == "write" {
			t.Error("not-yet-due item selected")
		}
	}
}

func TestSelectDue_TopicFilter(t *testing.T) {
	keys, shortfall := SelectDue(testItems(), day(2026, 3, 2), Filter{Topic: "Will Future"}, 5)

	want := []string{"topic:will_future"}
	if !reflect.DeepEqual(keys, want) {
		t.Errorf("keys = %v, want %v", keys, want)
	}
	if shortfall != 4 {
		t.Errorf("shortfall = %d, want 4", shortfall)
	}
}

func TestSelectDue_CapsAtLimit(t *testing.T) {
	keys, shortfall := SelectDue(testItems(), day(2026, 3, 2), Filter{}, 2)

	want := []string{"be", "go"}
	if !reflect.DeepEqual(keys, want) {
		t.Errorf("keys = %v, want %v", keys, want)
	}
	if shortfall != 0 {
		t.Errorf("shortfall = %d, want 0", shortfall)
	}
}

func TestSelectDue_DueOnExactDate(t *testing.T) {
	items := []ReviewItem{
		{Key: "eat", Topic: "Irregular Verbs", Status: StatusActive, Interval: 1, NextReview: day(2026, 3, 2)},
	}
	keys, _ := SelectDue(items, day(2026, 3, 2), Filter{}, 1)
	if len(keys) != 1 {
		t.Fatalf("item due today not selected")
	}

	keys, _ = SelectDue(items, day(2026, 3, 1), Filter{}, 1)
	if len(keys) != 0 {
		t.Fatalf("item selected a day early")
	}
}

func TestSelectDue_Deterministic(t *testing.T) {
	first, _ := SelectDue(testItems(), day(2026, 3, 2), Filter{}, 10)
	for i := 0; i < 10; i++ {
		again, _ := SelectDue(testItems(), day(2026, 3, 2), Filter{}, 10)
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("run %d: order changed: %v vs %v", i, first, again)
		}
	}
}
