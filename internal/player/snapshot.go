package player

import "lab4/internal/content"

// Snapshot is a consistent view of the session for rendering. The question
// is a copy; mutating it does not touch the session.
type Snapshot struct {
	Status        string            `json:"status"`
	ActivityID    string            `json:"activityId,omitempty"`
	ActivityType  string            `json:"activityType,omitempty"`
	ActivityTitle string            `json:"activityTitle,omitempty"`
	QuestionIndex int               `json:"questionIndex"`
	QuestionCount int               `json:"questionCount"`
	Question      *content.Question `json:"question,omitempty"`
	TimeLeft      int               `json:"timeLeft"`
	Score         int               `json:"score"`
	Selected      int               `json:"selectedOption"` // -1 when none
	Feedback      string            `json:"feedback,omitempty"`
	WheelRotation float64           `json:"wheelRotation"`
	Spinning      bool              `json:"isSpinning"`
	WheelResult   *WheelResult      `json:"wheelResult,omitempty"`
	AttemptsLeft  int               `json:"attemptsLeft"`
	Level         int               `json:"level"`
	Streak        int               `json:"streak"`
}

// Snapshot captures the session state under the lock.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := Snapshot{
		Status:        s.status,
		QuestionIndex: s.questionIndex,
		TimeLeft:      s.timeLeft,
		Score:         s.score,
		Selected:      s.selected,
		Feedback:      s.feedback,
		WheelRotation: s.wheelRotation,
		Spinning:      s.spinning,
		AttemptsLeft:  s.attemptsLeft,
		Level:         s.level,
		Streak:        s.streak,
	}
	if s.wheelResult != nil {
		result := *s.wheelResult
		snap.WheelResult = &result
	}
	if s.activity != nil {
		snap.ActivityID = s.activity.ID
		snap.ActivityType = string(s.activity.Type)
		snap.ActivityTitle = s.activity.Title
		questions := s.activity.Questions()
		snap.QuestionCount = len(questions)
		if s.status == StatusPlaying && s.questionIndex < len(questions) {
			q := questions[s.questionIndex]
			q.Options = append([]string(nil), q.Options...)
			snap.Question = &q
		}
	}
	return snap
}
