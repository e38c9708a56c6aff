// Package content holds the data model for channels and their activities,
// the built-in seed set, and the load-time repair routine that reconciles
// stored data with the current seed definitions.
package content

import (
	"strconv"
	"time"

	"github.com/google/uuid"
)

// ActivityType tags an activity with its game or quiz flavor.
type ActivityType string

const (
	TypeMCQ       ActivityType = "mcq"
	TypeTrueFalse ActivityType = "truefalse"
	TypeMatching  ActivityType = "matching"
	TypeFlashcard ActivityType = "flashcard"
	TypeWheel     ActivityType = "wheel"
	TypePuzzle    ActivityType = "puzzle"
	TypeMemory    ActivityType = "memory"
	TypeRiddle    ActivityType = "riddle"
	TypeBlast     ActivityType = "blast"
)

// Category groups activity types into the two dashboard sections.
type Category string

const (
	CategoryInteractive  Category = "interactive"
	CategoryGamification Category = "gamification"
)

// Valid reports whether t is one of the known activity types.
func (t ActivityType) Valid() bool {
	switch t {
	case TypeMCQ, TypeTrueFalse, TypeMatching, TypeFlashcard,
		TypeWheel, TypePuzzle, TypeMemory, TypeRiddle, TypeBlast:
		return true
	}
	return false
}

// Category derives the dashboard section from the activity type. It is the
// only place the mapping lives; callers must never set a category by hand.
func (t ActivityType) Category() Category {
	switch t {
	case TypeWheel, TypePuzzle, TypeMemory, TypeRiddle, TypeBlast:
		return CategoryGamification
	}
	return CategoryInteractive
}

// SoundEffect identifiers an activity may attach to its timer.
const (
	SoundSuspense   = "suspense"
	SoundSpeed      = "speed"
	SoundFear       = "fear"
	SoundMotivation = "motivation"
)

// WheelSegments is the fixed number of numeral segments on the wheel face.
const WheelSegments = 6

// WheelOptions returns the fixed option list for wheel rounds ("1".."6").
// Wheel options are never user-editable.
func WheelOptions() []string {
	opts := make([]string, WheelSegments)
	for i := range opts {
		opts[i] = strconv.Itoa(i + 1)
	}
	return opts
}

// LogoConfig positions a channel logo inside its card frame.
type LogoConfig struct {
	Scale float64 `json:"scale"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
}

// DefaultLogoConfig is applied when imported data carries no placement.
func DefaultLogoConfig() LogoConfig {
	return LogoConfig{Scale: 1, X: 0, Y: 0}
}

// Question is one round of an activity. For wheel activities Options is the
// fixed numeral list and CorrectOptionIndex encodes the target segment
// (0-based) a spin must land on.
type Question struct {
	ID                 string   `json:"id"`
	QuestionText       string   `json:"questionText"`
	QuestionImage      string   `json:"questionImage,omitempty"`
	Options            []string `json:"options"`
	CorrectOptionIndex int      `json:"correctOptionIndex"`
	Timer              int      `json:"timer"`
}

// Settings holds the per-activity fallback timer and optional sound cue.
type Settings struct {
	Timer       int    `json:"timer"`
	SoundEffect string `json:"soundEffect,omitempty"`
}

// Content wraps the ordered question sequence of an activity.
type Content struct {
	Questions []Question `json:"questions,omitempty"`
}

// Activity is a playable unit inside a channel.
type Activity struct {
	ID       string       `json:"id"`
	Type     ActivityType `json:"type"`
	Category Category     `json:"category"`
	Title    string       `json:"title"`
	Settings Settings     `json:"settings"`
	Content  *Content     `json:"content,omitempty"`
}

// Questions returns the activity's question sequence, or nil if it has none.
func (a *Activity) Questions() []Question {
	if a == nil || a.Content == nil {
		return nil
	}
	return a.Content.Questions
}

// Channel is an authored collection of activities with a visual identity.
type Channel struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Color        string     `json:"color"`
	LogoURL      string     `json:"logoUrl,omitempty"`
	MainImageURL string     `json:"mainImageUrl,omitempty"`
	LastUpdated  int64      `json:"lastUpdated,omitempty"`
	LogoConfig   LogoConfig `json:"logoConfig"`
	Activities   []Activity `json:"activities"`
}

// Activity looks up an activity by id.
func (c *Channel) Activity(id string) (*Activity, bool) {
	for i := range c.Activities {
		if c.Activities[i].ID == id {
			return &c.Activities[i], true
		}
	}
	return nil, false
}

// Clone deep-copies the channel so the player can read it without holding
// the library lock.
func (c Channel) Clone() Channel {
	out := c
	out.Activities = make([]Activity, len(c.Activities))
	for i, a := range c.Activities {
		out.Activities[i] = a.clone()
	}
	return out
}

func (a Activity) clone() Activity {
	out := a
	if a.Content != nil {
		questions := make([]Question, len(a.Content.Questions))
		for i, q := range a.Content.Questions {
			questions[i] = q
			questions[i].Options = append([]string(nil), q.Options...)
		}
		out.Content = &Content{Questions: questions}
	}
	return out
}

// NewChannel creates an empty custom channel with a fresh id.
func NewChannel(title, description, color string, now time.Time) Channel {
	return Channel{
		ID:          uuid.NewString(),
		Title:       title,
		Description: description,
		Color:       color,
		LastUpdated: now.UnixMilli(),
		LogoConfig:  DefaultLogoConfig(),
		Activities:  []Activity{},
	}
}

// NewActivity creates an activity of the given type. The category is derived
// from the type. Wheel activities are seeded with one round targeting
// numeral 1, since their rounds always use the fixed segment options.
func NewActivity(t ActivityType, title string) Activity {
	a := Activity{
		ID:       uuid.NewString(),
		Type:     t,
		Category: t.Category(),
		Title:    title,
		Settings: Settings{Timer: 60, SoundEffect: SoundMotivation},
		Content:  &Content{Questions: []Question{}},
	}
	if t == TypeWheel {
		a.Content.Questions = []Question{{
			ID:                 uuid.NewString(),
			QuestionText:       "الجولة 1",
			Options:            WheelOptions(),
			CorrectOptionIndex: 0,
			Timer:              0,
		}}
	}
	return a
}
