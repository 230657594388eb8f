package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/vincentb/aurelie/internal/engagement"
	"github.com/vincentb/aurelie/internal/errorpatterns"
	"github.com/vincentb/aurelie/internal/mastery"
	"github.com/vincentb/aurelie/internal/spacedrep"
)

const testLearner = "aurelie"

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared", nil)
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func day(yyyy int, mm time.Month, dd int) time.Time {
	return time.Date(yyyy, mm, dd, 0, 0, 0, 0, time.UTC)
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is not asserted here.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := s.db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestReviewItemRoundtrip(t *testing.T) {
	repo := openTestStore(t).Repo()
	ctx := context.Background()

	got, err := repo.ReviewItem(ctx, testLearner, "eat")
	if err != nil {
		t.Fatalf("lookup (empty): %v", err)
	}
	if got != nil {
		t.Fatal("expected nil item when none tracked")
	}

	item := spacedrep.NewItem("eat", "irregular_verbs", spacedrep.NamespaceVerb, day(2026, 3, 2))
	if err := repo.PutReviewItem(ctx, testLearner, item); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, err = repo.ReviewItem(ctx, testLearner, "eat")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if got == nil {
		t.Fatal("expected tracked item")
	}
	if got.Interval != 1 || !got.NextReview.Equal(day(2026, 3, 3)) {
		t.Errorf("got interval %d next %v, want 1 and 2026-03-03", got.Interval, got.NextReview)
	}

	// Upsert keeps one row per key.
	item.Interval = 3
	item.NextReview = day(2026, 3, 5)
	if err := repo.PutReviewItem(ctx, testLearner, item); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	items, err := repo.ReviewItems(ctx, testLearner)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 1 || items[0].Interval != 3 {
		t.Errorf("got %d item(s), want 1 with interval 3", len(items))
	}
}

func TestReviewItemsOrderedByNextReview(t *testing.T) {
	repo := openTestStore(t).Repo()
	ctx := context.Background()

	for _, it := range []spacedrep.ReviewItem{
		{Key: "b", Topic: "t", Kind: spacedrep.NamespaceVerb, Status: spacedrep.StatusActive, Interval: 7, NextReview: day(2026, 3, 9)},
		{Key: "a", Topic: "t", Kind: spacedrep.NamespaceVerb, Status: spacedrep.StatusActive, Interval: 1, NextReview: day(2026, 3, 3)},
		{Key: "c", Topic: "t", Kind: spacedrep.NamespaceVerb, Status: spacedrep.StatusActive, Interval: 1, NextReview: day(2026, 3, 3)},
	} {
		if err := repo.PutReviewItem(ctx, testLearner, it); err != nil {
			t.Fatalf("put %s: %v", it.Key, err)
		}
	}

	items, err := repo.ReviewItems(ctx, testLearner)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	var keys []string
	for _, it := range items {
		keys = append(keys, it.Key)
	}
	want := []string{"a", "c", "b"}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("order = %v, want %v", keys, want)
		}
	}
}

func TestEngagementStateDefaultsAndRoundtrip(t *testing.T) {
	repo := openTestStore(t).Repo()
	ctx := context.Background()

	state, err := repo.EngagementState(ctx, testLearner)
	if err != nil {
		t.Fatalf("read (empty): %v", err)
	}
	if state.CurrentStreak != 0 || !state.FreezeAvailable {
		t.Errorf("fresh state = %+v, want zero streak with freeze available", state)
	}

	practiced := day(2026, 3, 2)
	state.CurrentStreak = 4
	state.LongestStreak = 9
	state.LastPractice = &practiced
	state.FreezeAvailable = false
	state.FreezeUsed = &practiced
	state.TotalXP = 615
	if err := repo.PutEngagementState(ctx, testLearner, state); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, err := repo.EngagementState(ctx, testLearner)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if got.CurrentStreak != 4 || got.LongestStreak != 9 || got.TotalXP != 615 {
		t.Errorf("got %+v", got)
	}
	if got.LastPractice == nil || !got.LastPractice.Equal(practiced) {
		t.Errorf("last practice = %v, want %v", got.LastPractice, practiced)
	}
	if got.FreezeAvailable || got.FreezeUsed == nil {
		t.Errorf("freeze state not persisted: %+v", got)
	}
	if got.Level() != 2 {
		t.Errorf("level = %d, want 2", got.Level())
	}
}

func TestEngagementStateHealsInvariantViolations(t *testing.T) {
	repo := openTestStore(t).Repo()
	ctx := context.Background()

	// Longest below current should never persist as-is.
	state := engagement.NewState()
	state.CurrentStreak = 5
	state.LongestStreak = 2
	if err := repo.PutEngagementState(ctx, testLearner, state); err != nil {
		t.Fatalf("put: %v", err)
	}
	got, err := repo.EngagementState(ctx, testLearner)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if got.LongestStreak < got.CurrentStreak {
		t.Errorf("longest %d < current %d after heal", got.LongestStreak, got.CurrentStreak)
	}
}

func TestAchievementRecordedOnce(t *testing.T) {
	repo := openTestStore(t).Repo()
	ctx := context.Background()
	at := day(2026, 3, 2)

	created, err := repo.RecordAchievement(ctx, testLearner, engagement.AchFirstSession, at)
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if !created {
		t.Fatal("first record should report created")
	}

	created, err = repo.RecordAchievement(ctx, testLearner, engagement.AchFirstSession, at.AddDate(0, 0, 1))
	if err != nil {
		t.Fatalf("repeat record: %v", err)
	}
	if created {
		t.Fatal("repeat record should not report created")
	}

	all, err := repo.Achievements(ctx, testLearner)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 1 || !all[0].UnlockedAt.Equal(at) {
		t.Errorf("achievements = %+v, want one unlocked at %v", all, at)
	}
}

func TestTopicMasteryRoundtrip(t *testing.T) {
	repo := openTestStore(t).Repo()
	ctx := context.Background()

	tm := mastery.TopicMastery{TopicKey: "will_future", TotalAttempts: 5, CorrectAttempts: 5}
	if err := repo.PutTopicMastery(ctx, testLearner, tm); err != nil {
		t.Fatalf("put: %v", err)
	}
	got, err := repo.TopicMastery(ctx, testLearner, "will_future")
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if got == nil || got.TotalAttempts != 5 || got.CorrectAttempts != 5 {
		t.Errorf("got %+v", got)
	}
}

func TestErrorPatternUpsert(t *testing.T) {
	repo := openTestStore(t).Repo()
	ctx := context.Background()

	p := errorpatterns.New(errorpatterns.Observation{
		Pattern: "past-instead-of-participle", Verb: "eat",
	}, day(2026, 3, 2))
	p = p.Observe(day(2026, 3, 3))
	p = p.Observe(day(2026, 3, 4))
	if err := repo.PutErrorPattern(ctx, testLearner, p); err != nil {
		t.Fatalf("put: %v", err)
	}

	active, err := repo.ActiveErrorPatterns(ctx, testLearner)
	if err != nil {
		t.Fatalf("active: %v", err)
	}
	if len(active) != 1 || active[0].Occurrences != 3 {
		t.Errorf("active = %+v, want one entry with 3 occurrences", active)
	}
}

func TestInTxRollsBackOnError(t *testing.T) {
	repo := openTestStore(t).Repo()
	ctx := context.Background()
	boom := errors.New("boom")

	err := repo.InTx(ctx, func(tx Repo) error {
		item := spacedrep.NewItem("go", "irregular_verbs", spacedrep.NamespaceVerb, day(2026, 3, 2))
		if err := tx.PutReviewItem(ctx, testLearner, item); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("InTx error = %v, want boom", err)
	}

	got, err := repo.ReviewItem(ctx, testLearner, "go")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if got != nil {
		t.Fatal("rolled-back write must not be visible")
	}
}

func TestSessionResultsNewestFirst(t *testing.T) {
	repo := openTestStore(t).Repo()
	ctx := context.Background()

	for i, d := range []time.Time{day(2026, 3, 1), day(2026, 3, 2), day(2026, 3, 3)} {
		rec := SessionRecord{
			SessionID: string(rune('a' + i)),
			Date:      d,
			Exercises: 5,
			Correct:   4,
			XPAwarded: 40,
		}
		if err := repo.AppendSessionResult(ctx, testLearner, rec); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	got, err := repo.SessionResults(ctx, testLearner, 2)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d records, want 2", len(got))
	}
	if !got[0].Date.Equal(day(2026, 3, 3)) || !got[1].Date.Equal(day(2026, 3, 2)) {
		t.Errorf("order = %v, %v; want newest first", got[0].Date, got[1].Date)
	}
}

func TestResetLearnerClearsEverything(t *testing.T) {
	repo := openTestStore(t).Repo()
	ctx := context.Background()

	item := spacedrep.NewItem("eat", "irregular_verbs", spacedrep.NamespaceVerb, day(2026, 3, 2))
	if err := repo.PutReviewItem(ctx, testLearner, item); err != nil {
		t.Fatalf("put item: %v", err)
	}
	if _, err := repo.RecordAchievement(ctx, testLearner, engagement.AchFirstSession, day(2026, 3, 2)); err != nil {
		t.Fatalf("record achievement: %v", err)
	}

	if err := repo.ResetLearner(ctx, testLearner); err != nil {
		t.Fatalf("reset: %v", err)
	}

	items, err := repo.ReviewItems(ctx, testLearner)
	if err != nil {
		t.Fatalf("list items: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("items remain after reset: %v", items)
	}
	achievements, err := repo.Achievements(ctx, testLearner)
	if err != nil {
		t.Fatalf("list achievements: %v", err)
	}
	if len(achievements) != 0 {
		t.Errorf("achievements remain after reset: %v", achievements)
	}
}
