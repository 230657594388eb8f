package engagement

import "testing"

func hasKey(keys []AchievementKey, k AchievementKey) bool {
	for _, key := range keys {
		if key == k {
			return true
		}
	}
	return false
}

func TestCandidates_FirstSessionAlwaysPresent(t *testing.T) {
	keys := Candidates(State{CurrentStreak: 1}, SessionShape{Exercises: 1, Correct: 0})
	if !hasKey(keys, AchFirstSession) {
		t.Error("first_session missing")
	}
	if hasKey(keys, AchStreak3) || hasKey(keys, AchPerfect5) {
		t.Errorf("unexpected keys: %v", keys)
	}
}

func TestCandidates_Streak3(t *testing.T) {
	keys := Candidates(State{CurrentStreak: 3}, SessionShape{Exercises: 2, Correct: 1})
	if !hasKey(keys, AchStreak3) {
		t.Error("streak_3 missing at streak 3")
	}

	keys = Candidates(State{CurrentStreak: 2}, SessionShape{Exercises: 2, Correct: 1})
	if hasKey(keys, AchStreak3) {
		t.Error("streak_3 present at streak 2")
	}
}

func TestCandidates_Perfect5IsShapeSpecific(t *testing.T) {
	tests := []struct {
		shape SessionShape
		want  bool
	}{
		{SessionShape{Exercises: 5, Correct: 5}, true},
		{SessionShape{Exercises: 5, Correct: 4}, false},
		{SessionShape{Exercises: 6, Correct: 6}, false}, // exactly 5, not >=5
		{SessionShape{Exercises: 4, Correct: 4}, false},
	}
	for _, tt := range tests {
		keys := Candidates(State{CurrentStreak: 1}, tt.shape)
		if hasKey(keys, AchPerfect5) != tt.want {
			t.Errorf("shape %+v: perfect_5 = %v, want %v", tt.shape, !tt.want, tt.want)
		}
	}
}
