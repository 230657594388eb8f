package engagement

import "testing"

func TestSessionXP(t *testing.T) {
	tests := []struct {
		name    string
		correct []bool
		want    int
	}{
		{"empty", nil, 0},
		{"single correct", []bool{true}, 10 + 50},
		{"single wrong", []bool{false}, 0},
		{"perfect five", []bool{true, true, true, true, true}, 50 + 15 + 50}, // 115
		{"run bonus starts at third", []bool{true, true, true}, 30 + 5 + 50},
		{"run broken before bonus", []bool{true, true, false, true, true}, 40},
		{"run resumes after miss", []bool{false, true, true, true, true}, 40 + 10},
		{"all wrong", []bool{false, false, false}, 0},
	}

	for _, tt := range tests {
		if got := SessionXP(tt.correct); got != tt.want {
			t.Errorf("%s: SessionXP = %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestLevel_DerivedFromXP(t *testing.T) {
	tests := []struct {
		xp   int
		want int
	}{
		{0, 1},
		{499, 1},
		{500, 2},
		{999, 2},
		{1000, 3},
		{5000, 11},
	}
	for _, tt := range tests {
		s := State{TotalXP: tt.xp}
		if got := s.Level(); got != tt.want {
			t.Errorf("Level(%d xp) = %d, want %d", tt.xp, got, tt.want)
		}
	}
}

func TestAwardXP_Monotonic(t *testing.T) {
	s := State{TotalXP: 100}
	s = AwardXP(s, -50)
	if s.TotalXP != 100 {
		t.Errorf("TotalXP = %d, want 100 (negative delta ignored)", s.TotalXP)
	}
	s = AwardXP(s, 115)
	if s.TotalXP != 215 {
		t.Errorf("TotalXP = %d, want 215", s.TotalXP)
	}
}

func TestBestRun(t *testing.T) {
	tests := []struct {
		correct []bool
		want    int
	}{
		{nil, 0},
		{[]bool{true, true, false, true, true, true}, 3},
		{[]bool{false, false}, 0},
		{[]bool{true, true, true, true, true}, 5},
	}
	for _, tt := range tests {
		if got := BestRun(tt.correct); got != tt.want {
			t.Errorf("BestRun(%v) = %d, want %d", tt.correct, got, tt.want)
		}
	}
}
