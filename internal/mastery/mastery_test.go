package mastery

import "testing"

var testLevels = Levels{PracticingAttempts: 5, MasteredAttempts: 15, MasteredAccuracy: 0.9}

func TestRecordAttempt(t *testing.T) {
	tm := TopicMastery{TopicKey: "will_future"}
	tm = tm.RecordAttempt(true)
	tm = tm.RecordAttempt(false)
	tm = tm.RecordAttempt(true)

	if tm.TotalAttempts != 3 {
		t.Errorf("TotalAttempts = %d, want 3", tm.TotalAttempts)
	}
	if tm.CorrectAttempts != 2 {
		t.Errorf("CorrectAttempts = %d, want 2", tm.CorrectAttempts)
	}
}

func TestLevel_Thresholds(t *testing.T) {
	tests := []struct {
		name    string
		total   int
		correct int
		want    Level
	}{
		{"untouched", 0, 0, LevelLearning},
		{"few attempts", 4, 4, LevelLearning},
		{"practicing", 5, 3, LevelPracticing},
		{"enough attempts low accuracy", 20, 15, LevelPracticing},
		{"mastered", 20, 19, LevelMastered},
		{"exact bar", 15, 14, LevelMastered}, // 14/15 ≈ 0.933
	}
	for _, tt := range tests {
		tm := TopicMastery{TotalAttempts: tt.total, CorrectAttempts: tt.correct}
		if got := tm.Level(testLevels); got != tt.want {
			t.Errorf("%s: Level = %s, want %s", tt.name, got, tt.want)
		}
	}
}

func TestAccuracy_ZeroAttempts(t *testing.T) {
	tm := TopicMastery{}
	if tm.Accuracy() != 0 {
		t.Errorf("Accuracy = %v, want 0", tm.Accuracy())
	}
}

func TestValid(t *testing.T) {
	tests := []struct {
		total   int
		correct int
		want    bool
	}{
		{5, 5, true},
		{5, 3, true},
		{0, 0, true},
		{3, 5, false},
		{-1, 0, false},
		{2, -1, false},
	}
	for _, tt := range tests {
		tm := TopicMastery{TotalAttempts: tt.total, CorrectAttempts: tt.correct}
		if tm.Valid() != tt.want {
			t.Errorf("Valid(%d/%d) = %v, want %v", tt.correct, tt.total, !tt.want, tt.want)
		}
	}
}
