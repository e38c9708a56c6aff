package player

import "lab4/internal/content"

// rules is the closed set of session kinds. Each activity type maps to one
// of Standard, Wheel, or Blast; an operation a kind does not support is
// rejected by its rules rather than by type-string checks in the session.
type rules interface {
	// acceptsAnswer reports whether the kind takes option answers.
	acceptsAnswer() bool
	// acceptsSpin reports whether the kind takes wheel spins.
	acceptsSpin() bool
	// timeBudget computes the countdown seconds for a question and whether
	// the kind runs a countdown at all.
	timeBudget(q content.Question, s *Session) (seconds int, timed bool)
	// tickCue reports whether a tick cue should sound at this remaining time.
	tickCue(remaining int) bool
	// applyCorrect and applyWrong update score/streak/level state for an
	// answered question. Called with the session lock held.
	applyCorrect(s *Session)
	applyWrong(s *Session)
}

// rulesFor maps an activity type onto its session kind. Wheel is the only
// spin kind, blast the only leveled one; every other type plays standard.
func rulesFor(t content.ActivityType) rules {
	switch t {
	case content.TypeWheel:
		return wheelRules{}
	case content.TypeBlast:
		return blastRules{}
	}
	return standardRules{}
}

// standardRules: one point per correct answer, question's own timer,
// audible ticks over the last five seconds.
type standardRules struct{}

func (standardRules) acceptsAnswer() bool { return true }
func (standardRules) acceptsSpin() bool   { return false }

func (standardRules) timeBudget(q content.Question, _ *Session) (int, bool) {
	return q.Timer, true
}

func (standardRules) tickCue(remaining int) bool { return remaining <= 5 }

func (standardRules) applyCorrect(s *Session) { s.score++ }
func (standardRules) applyWrong(_ *Session)   {}

// wheelRules: rounds are untimed; answers come from spins, not options.
type wheelRules struct{}

func (wheelRules) acceptsAnswer() bool { return false }
func (wheelRules) acceptsSpin() bool   { return true }

func (wheelRules) timeBudget(q content.Question, _ *Session) (int, bool) {
	return 0, false
}

func (wheelRules) tickCue(int) bool { return false }

func (wheelRules) applyCorrect(_ *Session) {}
func (wheelRules) applyWrong(_ *Session)   {}

// blastRules: time pressure scoring. Level compresses the question budget,
// streaks multiply points, every third consecutive correct answer raises
// the level (capped).
type blastRules struct{}

func (blastRules) acceptsAnswer() bool { return true }
func (blastRules) acceptsSpin() bool   { return false }

func (blastRules) timeBudget(q content.Question, s *Session) (int, bool) {
	budget := q.Timer - (s.level-1)*2
	if budget < blastMinBudget {
		budget = blastMinBudget
	}
	return budget, true
}

func (blastRules) tickCue(int) bool { return false }

func (blastRules) applyCorrect(s *Session) {
	points := (100 + s.timeLeft*10 + s.streak*50) * s.level
	s.score += points
	s.streak++
	if s.streak%blastStreakPerLevel == 0 && s.level < blastMaxLevel {
		s.level++
	}
}

func (blastRules) applyWrong(s *Session) { s.streak = 0 }
