package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vincentb/aurelie/internal/engagement"
	"github.com/vincentb/aurelie/internal/errorpatterns"
	"github.com/vincentb/aurelie/internal/mastery"
	"github.com/vincentb/aurelie/internal/spacedrep"
	"github.com/vincentb/aurelie/internal/store"
)

// fakeRepo is an in-memory store.Repo for tests. It counts writes so the
// all-or-nothing contract can be asserted, and can fail reads on demand.
type fakeRepo struct {
	items        map[string]spacedrep.ReviewItem
	eng          *engagement.State
	masteries    map[string]mastery.TopicMastery
	achievements map[engagement.AchievementKey]time.Time
	patterns     map[[2]string]errorpatterns.Pattern
	sessions     []store.SessionRecord

	writes   int
	failRead bool
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		items:        make(map[string]spacedrep.ReviewItem),
		masteries:    make(map[string]mastery.TopicMastery),
		achievements: make(map[engagement.AchievementKey]time.Time),
		patterns:     make(map[[2]string]errorpatterns.Pattern),
	}
}

func (f *fakeRepo) ReviewItem(_ context.Context, _, key string) (*spacedrep.ReviewItem, error) {
	if f.failRead {
		return nil, store.ErrUnavailable
	}
	if it, ok := f.items[key]; ok {
		return &it, nil
	}
	return nil, nil
}

func (f *fakeRepo) ReviewItems(_ context.Context, _ string) ([]spacedrep.ReviewItem, error) {
	if f.failRead {
		return nil, store.ErrUnavailable
	}
	var out []spacedrep.ReviewItem
	for _, it := range f.items {
		out = append(out, it)
	}
	return out, nil
}

func (f *fakeRepo) PutReviewItem(_ context.Context, _ string, item spacedrep.ReviewItem) error {
	f.writes++
	f.items[item.Key] = item
	return nil
}

func (f *fakeRepo) EngagementState(_ context.Context, _ string) (engagement.State, error) {
	if f.failRead {
		return engagement.State{}, store.ErrUnavailable
	}
	if f.eng == nil {
		return engagement.NewState(), nil
	}
	return *f.eng, nil
}

func (f *fakeRepo) PutEngagementState(_ context.Context, _ string, s engagement.State) error {
	f.writes++
	f.eng = &s
	return nil
}

func (f *fakeRepo) TopicMastery(_ context.Context, _, topicKey string) (*mastery.TopicMastery, error) {
	if f.failRead {
		return nil, store.ErrUnavailable
	}
	if tm, ok := f.masteries[topicKey]; ok {
		return &tm, nil
	}
	return nil, nil
}

func (f *fakeRepo) TopicMasteries(_ context.Context, _ string) ([]mastery.TopicMastery, error) {
	var out []mastery.TopicMastery
	for _, tm := range f.masteries {
		out = append(out, tm)
	}
	return out, nil
}

func (f *fakeRepo) PutTopicMastery(_ context.Context, _ string, tm mastery.TopicMastery) error {
	f.writes++
	f.masteries[tm.TopicKey] = tm
	return nil
}

func (f *fakeRepo) RecordAchievement(_ context.Context, _ string, key engagement.AchievementKey, at time.Time) (bool, error) {
	if _, ok := f.achievements[key]; ok {
		return false, nil
	}
	f.writes++
	f.achievements[key] = at
	return true, nil
}

func (f *fakeRepo) Achievements(_ context.Context, _ string) ([]store.UnlockedAchievement, error) {
	var out []store.UnlockedAchievement
	for k, at := range f.achievements {
		out = append(out, store.UnlockedAchievement{Key: k, UnlockedAt: at})
	}
	return out, nil
}

func (f *fakeRepo) ErrorPattern(_ context.Context, _, pattern, verb string) (*errorpatterns.Pattern, error) {
	if f.failRead {
		return nil, store.ErrUnavailable
	}
	if p, ok := f.patterns[[2]string{pattern, verb}]; ok {
		return &p, nil
	}
	return nil, nil
}

func (f *fakeRepo) ActiveErrorPatterns(_ context.Context, _ string) ([]errorpatterns.Pattern, error) {
	var out []errorpatterns.Pattern
	for _, p := range f.patterns {
		if p.Status == errorpatterns.StatusActive {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeRepo) PutErrorPattern(_ context.Context, _ string, p errorpatterns.Pattern) error {
	f.writes++
	f.patterns[[2]string{p.Pattern, p.Verb}] = p
	return nil
}

func (f *fakeRepo) AppendSessionResult(_ context.Context, _ string, rec store.SessionRecord) error {
	f.writes++
	f.sessions = append(f.sessions, rec)
	return nil
}

func (f *fakeRepo) SessionResults(_ context.Context, _ string, _ int) ([]store.SessionRecord, error) {
	return f.sessions, nil
}

func (f *fakeRepo) ResetLearner(_ context.Context, _ string) error {
	return nil
}

func (f *fakeRepo) InTx(_ context.Context, fn func(store.Repo) error) error {
	return fn(f)
}

var commitDay = time.Date(2026, 3, 2, 16, 45, 0, 0, time.UTC)

func newTestService(repo store.Repo, clock time.Time) *Service {
	return NewService(repo, nil, Config{
		Levels: mastery.Levels{PracticingAttempts: 5, MasteredAttempts: 15, MasteredAccuracy: 0.9},
		Clock:  func() time.Time { return clock },
	})
}

func result(key string, correct bool) ExerciseResult {
	return ExerciseResult{
		ItemKey:    key,
		TopicKey:   "will_future",
		Kind:       spacedrep.NamespaceVerb,
		Correct:    correct,
		AnsweredAt: commitDay,
	}
}

func TestCommit_RejectsIncompleteOutcome(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo, commitDay)

	tests := []struct {
		name    string
		outcome Outcome
	}{
		{"empty results", Outcome{Completed: true}},
		{"not completed", Outcome{Completed: false, Results: []ExerciseResult{result("eat", true)}}},
		{"missing item key", Outcome{Completed: true, Results: []ExerciseResult{{TopicKey: "x", Correct: true}}}},
	}

	for _, tt := range tests {
		_, err := svc.Commit(context.Background(), "aurelie", tt.outcome)
		require.ErrorIs(t, err, ErrIncompleteSession, tt.name)
	}
	assert.Zero(t, repo.writes, "incomplete outcomes must cause zero repository writes")
}

func TestCommit_FirstPerfectFiveExerciseSession(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo, commitDay)

	outcome := Outcome{Completed: true, Results: []ExerciseResult{
		result("will-1", true), result("will-2", true), result("will-3", true),
		result("will-4", true), result("will-5", true),
	}}

	res, err := svc.Commit(context.Background(), "aurelie", outcome)
	require.NoError(t, err)

	// 5*10 base + 3*5 run bonus (exercises 3-5) + 50 perfect = 115.
	assert.Equal(t, 115, res.XPAwarded)
	assert.Equal(t, 115, res.Engagement.TotalXP)
	assert.Equal(t, 1, res.Engagement.CurrentStreak)
	assert.Equal(t, 1, res.Engagement.LongestStreak)
	assert.Equal(t, 1, res.Engagement.Level())

	tm := repo.masteries["will_future"]
	assert.Equal(t, 5, tm.TotalAttempts)
	assert.Equal(t, 5, tm.CorrectAttempts)

	assert.ElementsMatch(t,
		[]engagement.AchievementKey{engagement.AchFirstSession, engagement.AchPerfect5},
		res.Unlocked)

	// All answers were first-time correct: no items enrolled.
	assert.Empty(t, res.UpdatedItems)
	assert.Len(t, repo.sessions, 1)
	assert.Equal(t, 5, repo.sessions[0].BestRun)
}

func TestCommit_WrongAnswerEnrollsItem(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo, commitDay)

	outcome := Outcome{Completed: true, Results: []ExerciseResult{
		result("eat", false),
	}}

	res, err := svc.Commit(context.Background(), "aurelie", outcome)
	require.NoError(t, err)
	require.Len(t, res.UpdatedItems, 1)

	it := res.UpdatedItems[0]
	assert.Equal(t, "eat", it.Key)
	assert.Equal(t, 1, it.Interval)
	assert.Equal(t, spacedrep.StatusActive, it.Status)
	assert.Equal(t, spacedrep.DateOf(commitDay).AddDate(0, 0, 1), it.NextReview)
}

func TestCommit_WrongAnswerResetsTrackedItem(t *testing.T) {
	repo := newFakeRepo()
	repo.items["eat"] = spacedrep.ReviewItem{
		Key: "eat", Topic: "will_future", Status: spacedrep.StatusActive,
		Interval: 7, NextReview: spacedrep.DateOf(commitDay),
	}
	svc := newTestService(repo, commitDay)

	outcome := Outcome{Completed: true, Results: []ExerciseResult{result("eat", false)}}
	res, err := svc.Commit(context.Background(), "aurelie", outcome)
	require.NoError(t, err)

	require.Len(t, res.UpdatedItems, 1)
	assert.Equal(t, 1, res.UpdatedItems[0].Interval)
	assert.Equal(t, spacedrep.DateOf(commitDay).AddDate(0, 0, 1), res.UpdatedItems[0].NextReview)
}

func TestCommit_CorrectAnswerAdvancesTrackedItem(t *testing.T) {
	repo := newFakeRepo()
	repo.items["go"] = spacedrep.ReviewItem{
		Key: "go", Topic: "will_future", Status: spacedrep.StatusActive,
		Interval: 3, NextReview: spacedrep.DateOf(commitDay),
	}
	svc := newTestService(repo, commitDay)

	outcome := Outcome{Completed: true, Results: []ExerciseResult{result("go", true)}}
	res, err := svc.Commit(context.Background(), "aurelie", outcome)
	require.NoError(t, err)

	require.Len(t, res.UpdatedItems, 1)
	assert.Equal(t, 7, res.UpdatedItems[0].Interval)
}

func TestCommit_SameKeyTwiceAppliesSequentially(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo, commitDay)

	// First try correct (untracked: skipped), second try wrong (enrolls),
	// third try correct (advances the fresh record).
	outcome := Outcome{Completed: true, Results: []ExerciseResult{
		result("speak", true),
		result("speak", false),
		result("speak", true),
	}}

	res, err := svc.Commit(context.Background(), "aurelie", outcome)
	require.NoError(t, err)
	require.Len(t, res.UpdatedItems, 1)

	// 1 (enroll) then advance to 3: the last outcome determines the state.
	assert.Equal(t, 3, res.UpdatedItems[0].Interval)
}

func TestCommit_StorageUnavailableAbortsAtomically(t *testing.T) {
	repo := newFakeRepo()
	repo.failRead = true
	svc := newTestService(repo, commitDay)

	outcome := Outcome{Completed: true, Results: []ExerciseResult{result("eat", true)}}
	_, err := svc.Commit(context.Background(), "aurelie", outcome)

	require.ErrorIs(t, err, store.ErrUnavailable)
	assert.Zero(t, repo.writes, "failed read must not leave partial writes")
}

func TestCommit_StreakThreeUnlocksAchievement(t *testing.T) {
	repo := newFakeRepo()
	yesterday := spacedrep.DateOf(commitDay).AddDate(0, 0, -1)
	repo.eng = &engagement.State{
		CurrentStreak: 2, LongestStreak: 2,
		LastPractice: &yesterday, FreezeAvailable: true,
	}
	svc := newTestService(repo, commitDay)

	outcome := Outcome{Completed: true, Results: []ExerciseResult{result("eat", true)}}
	res, err := svc.Commit(context.Background(), "aurelie", outcome)
	require.NoError(t, err)

	assert.Equal(t, 3, res.Engagement.CurrentStreak)
	assert.Contains(t, res.Unlocked, engagement.AchStreak3)
}

func TestCommit_AchievementsUnlockOnlyOnce(t *testing.T) {
	repo := newFakeRepo()
	yesterday := spacedrep.DateOf(commitDay).AddDate(0, 0, -1)
	repo.eng = &engagement.State{
		CurrentStreak: 3, LongestStreak: 3,
		LastPractice: &yesterday, FreezeAvailable: true,
	}
	repo.achievements[engagement.AchFirstSession] = commitDay
	repo.achievements[engagement.AchStreak3] = commitDay
	svc := newTestService(repo, commitDay)

	outcome := Outcome{Completed: true, Results: []ExerciseResult{result("eat", true)}}
	res, err := svc.Commit(context.Background(), "aurelie", outcome)
	require.NoError(t, err)

	assert.Empty(t, res.Unlocked, "already-unlocked achievements must not resurface")
	assert.Len(t, repo.achievements, 2)
}

func TestCommit_SameDayRepeatKeepsStreak(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo, commitDay)
	outcome := Outcome{Completed: true, Results: []ExerciseResult{result("eat", true)}}

	first, err := svc.Commit(context.Background(), "aurelie", outcome)
	require.NoError(t, err)
	second, err := svc.Commit(context.Background(), "aurelie", outcome)
	require.NoError(t, err)

	assert.Equal(t, first.Engagement.CurrentStreak, second.Engagement.CurrentStreak)
	assert.Equal(t, first.Engagement.LongestStreak, second.Engagement.LongestStreak)
	// XP still accrues on repeat sessions; only the streak is capped.
	assert.Greater(t, second.Engagement.TotalXP, first.Engagement.TotalXP)
}

func TestCommit_LevelAlwaysDerivedFromXP(t *testing.T) {
	repo := newFakeRepo()
	repo.eng = &engagement.State{TotalXP: 450, FreezeAvailable: true}
	svc := newTestService(repo, commitDay)

	outcome := Outcome{Completed: true, Results: []ExerciseResult{
		result("will-1", true), result("will-2", true), result("will-3", true),
		result("will-4", true), result("will-5", true),
	}}
	res, err := svc.Commit(context.Background(), "aurelie", outcome)
	require.NoError(t, err)

	assert.Equal(t, 565, res.Engagement.TotalXP)
	assert.Equal(t, 2, res.Engagement.Level())
}

func TestCommit_ErrorPatternLedger(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo, commitDay)

	wrong := result("eat", false)
	wrong.Patterns = []errorpatterns.Observation{
		{Pattern: "past-instead-of-participle", Verb: "eat", Description: "used ate for eaten"},
	}
	outcome := Outcome{Completed: true, Results: []ExerciseResult{wrong}}

	for i := 0; i < 3; i++ {
		_, err := svc.Commit(context.Background(), "aurelie", outcome)
		require.NoError(t, err)
	}

	p := repo.patterns[[2]string{"past-instead-of-participle", "eat"}]
	assert.Equal(t, 3, p.Occurrences)
	assert.Equal(t, errorpatterns.StatusActive, p.Status)
}

func TestSelectDue_ThreadsLearner(t *testing.T) {
	repo := newFakeRepo()
	repo.items["eat"] = spacedrep.ReviewItem{
		Key: "eat", Topic: "Irregular Verbs", Status: spacedrep.StatusActive,
		Interval: 1, NextReview: spacedrep.DateOf(commitDay).AddDate(0, 0, -1),
	}
	svc := newTestService(repo, commitDay)

	keys, shortfall, err := svc.SelectDue(context.Background(), "aurelie", commitDay, spacedrep.Filter{}, 5)
	require.NoError(t, err)
	assert.Equal(t, []string{"eat"}, keys)
	assert.Equal(t, 4, shortfall)
}

func TestSeed_SkipsExistingRecords(t *testing.T) {
	repo := newFakeRepo()
	repo.items["eat"] = spacedrep.ReviewItem{
		Key: "eat", Topic: "Irregular Verbs", Status: spacedrep.StatusActive,
		Interval: 14, NextReview: spacedrep.DateOf(commitDay).AddDate(0, 0, 14),
	}
	svc := newTestService(repo, commitDay)

	n, err := svc.Seed(context.Background(), "aurelie", []SeedKey{
		{Key: "eat", Topic: "Irregular Verbs", Kind: spacedrep.NamespaceVerb},
		{Key: "go", Topic: "Irregular Verbs", Kind: spacedrep.NamespaceVerb},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	// Existing schedule untouched.
	assert.Equal(t, 14, repo.items["eat"].Interval)
	assert.Equal(t, 1, repo.items["go"].Interval)
}
