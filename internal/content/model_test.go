package content

import "testing"

func TestActivityType_Category(t *testing.T) {
	gamified := map[ActivityType]bool{
		TypeWheel: true, TypePuzzle: true, TypeMemory: true,
		TypeRiddle: true, TypeBlast: true,
	}
	all := []ActivityType{
		TypeMCQ, TypeTrueFalse, TypeMatching, TypeFlashcard,
		TypeWheel, TypePuzzle, TypeMemory, TypeRiddle, TypeBlast,
	}
	for _, tt := range all {
		want := CategoryInteractive
		if gamified[tt] {
			want = CategoryGamification
		}
		if got := tt.Category(); got != want {
			t.Errorf("%s category %s, want %s", tt, got, want)
		}
	}
}

func TestActivityType_Valid(t *testing.T) {
	if !TypeBlast.Valid() {
		t.Error("blast should be valid")
	}
	if ActivityType("tetris").Valid() {
		t.Error("unknown type should be invalid")
	}
}

func TestWheelOptions(t *testing.T) {
	opts := WheelOptions()
	want := []string{"1", "2", "3", "4", "5", "6"}
	if len(opts) != len(want) {
		t.Fatalf("options %v", opts)
	}
	for i := range want {
		if opts[i] != want[i] {
			t.Fatalf("options %v, want %v", opts, want)
		}
	}
}

func TestNewActivity_WheelSeedsOneRound(t *testing.T) {
	a := NewActivity(TypeWheel, "عجلة")
	if a.Category != CategoryGamification {
		t.Errorf("category %s", a.Category)
	}
	qs := a.Questions()
	if len(qs) != 1 {
		t.Fatalf("seeded rounds %d, want 1", len(qs))
	}
	if qs[0].CorrectOptionIndex != 0 || len(qs[0].Options) != WheelSegments {
		t.Errorf("seeded round: %+v", qs[0])
	}
}

func TestNewActivity_QuizStartsEmpty(t *testing.T) {
	a := NewActivity(TypeMCQ, "quiz")
	if len(a.Questions()) != 0 {
		t.Errorf("questions %v, want none", a.Questions())
	}
	if a.Settings.Timer != 60 || a.Settings.SoundEffect != SoundMotivation {
		t.Errorf("settings %+v", a.Settings)
	}
}

func TestChannel_CloneIsIndependent(t *testing.T) {
	ch := Channel{
		ID: "c1",
		Activities: []Activity{{
			ID:      "a1",
			Content: &Content{Questions: []Question{{ID: "q1", Options: []string{"a", "b"}}}},
		}},
	}
	cp := ch.Clone()
	cp.Activities[0].Content.Questions[0].Options[0] = "mutated"
	cp.Activities[0].Content.Questions[0].ID = "changed"

	orig := ch.Activities[0].Content.Questions[0]
	if orig.Options[0] != "a" || orig.ID != "q1" {
		t.Errorf("clone shares storage with the original: %+v", orig)
	}
}
