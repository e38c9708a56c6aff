package player

import (
	"errors"
	"math/rand"
	"sync"
	"time"

	"lab4/internal/content"
)

// Session status values.
const (
	StatusIdle     = "idle"
	StatusPlaying  = "playing"
	StatusFinished = "finished"
)

// Feedback shown for the current question after answering or timing out.
const (
	FeedbackCorrect = "correct"
	FeedbackWrong   = "wrong"
)

// ErrNoQuestions rejects starting an activity with no content. It is the
// single player error surfaced to the user; every other misuse of the
// session is a silent no-op.
var ErrNoQuestions = errors.New("activity has no questions")

const (
	wheelAttempts        = 3
	blastStartLevel      = 1
	blastMaxLevel        = 5
	blastMinBudget       = 5
	blastStreakPerLevel  = 3
	defaultFeedbackPause = 1500 * time.Millisecond
)

// Config tunes a session's timing and effect sinks. The zero value gives
// production timing, no cues, and an unseeded random source.
type Config struct {
	// TickInterval is the countdown granularity (default 1s).
	TickInterval time.Duration
	// FeedbackPause is how long answer/timeout feedback stays on screen
	// before advancing (default 1.5s).
	FeedbackPause time.Duration
	// SpinDuration is the wheel's fixed deceleration time (default 6s).
	SpinDuration time.Duration
	// Rand decides wheel outcomes; seed it for deterministic tests.
	Rand *rand.Rand
	// Cues receives audio/feedback events; nil means none.
	Cues Cues
	// OnChange is invoked (outside the session lock) after every observable
	// state change, with a short event name for the presentation layer.
	OnChange func(event string)
}

// WheelResult is the pending outcome of a finished spin.
type WheelResult struct {
	Number int  `json:"number"` // landed numeral, 1..6
	Win    bool `json:"isWin"`
}

// Session is one playback run of an activity. All methods are safe for
// concurrent use; timer and spin callbacks are serialized against user
// intents by the session lock and neutralized by a generation counter when
// a newer transition has superseded them, so a late expiry and a user click
// can never both advance the question.
type Session struct {
	mu  sync.Mutex
	cfg Config

	status   string
	activity *content.Activity
	rules    rules

	questionIndex int
	timeLeft      int
	score         int
	selected      int // option index, -1 when none chosen yet
	feedback      string

	wheelRotation float64
	spinning      bool
	wheelResult   *WheelResult
	attemptsLeft  int

	level  int
	streak int

	countdown *Countdown
	// epoch invalidates pending timer, pause, and spin callbacks. Every
	// transition that supersedes them increments it; a callback that
	// captured an older value returns without touching state.
	epoch uint64
}

// NewSession creates an idle session.
func NewSession(cfg Config) *Session {
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = DefaultTickInterval
	}
	if cfg.FeedbackPause <= 0 {
		cfg.FeedbackPause = defaultFeedbackPause
	}
	if cfg.SpinDuration <= 0 {
		cfg.SpinDuration = DefaultSpinDuration
	}
	if cfg.Rand == nil {
		cfg.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if cfg.Cues == nil {
		cfg.Cues = NopCues{}
	}
	return &Session{cfg: cfg, status: StatusIdle, selected: -1}
}

// Start enters a fresh playing run of the activity. The only rejected input
// is an activity with zero questions. Starting over a running session
// supersedes its timers (restart semantics).
func (s *Session) Start(activity content.Activity) error {
	if len(activity.Questions()) == 0 {
		return ErrNoQuestions
	}
	s.mu.Lock()
	s.supersedeLocked()
	a := activity
	s.activity = &a
	s.rules = rulesFor(a.Type)
	s.status = StatusPlaying
	s.questionIndex = 0
	s.score = 0
	s.wheelRotation = 0
	s.spinning = false
	s.wheelResult = nil
	s.attemptsLeft = wheelAttempts
	s.level = blastStartLevel
	s.streak = 0
	s.loadQuestionLocked(0)
	s.mu.Unlock()
	s.notify("state")
	return nil
}

// Restart replays the current activity from the beginning. No-op when the
// session never had one.
func (s *Session) Restart() error {
	s.mu.Lock()
	if s.activity == nil {
		s.mu.Unlock()
		return nil
	}
	activity := *s.activity
	s.mu.Unlock()
	return s.Start(activity)
}

// Exit cancels any running timer, neutralizes a spin in progress, and
// returns to idle. Valid from any state.
func (s *Session) Exit() {
	s.mu.Lock()
	s.supersedeLocked()
	s.status = StatusIdle
	s.activity = nil
	s.rules = nil
	s.spinning = false
	s.wheelResult = nil
	s.mu.Unlock()
	s.notify("state")
}

// Answer records the player's option choice for the current question.
// Ignored unless playing, unanswered, and the activity kind takes answers.
func (s *Session) Answer(optionIndex int) {
	s.mu.Lock()
	if s.status != StatusPlaying || s.selected != -1 || s.rules == nil || !s.rules.acceptsAnswer() {
		s.mu.Unlock()
		return
	}
	q := s.currentQuestionLocked()
	if optionIndex < 0 || optionIndex >= len(q.Options) {
		s.mu.Unlock()
		return
	}
	s.supersedeLocked()
	s.selected = optionIndex
	correct := optionIndex == q.CorrectOptionIndex
	if correct {
		s.feedback = FeedbackCorrect
		s.rules.applyCorrect(s)
	} else {
		s.feedback = FeedbackWrong
		s.rules.applyWrong(s)
	}
	s.schedulePauseThenAdvanceLocked()
	cues := s.cfg.Cues
	s.mu.Unlock()
	if correct {
		cues.Correct()
	} else {
		cues.Wrong()
	}
	s.notify("state")
}

// Spin starts a wheel spin. Ignored unless playing a wheel activity with no
// spin already running and no result pending. The outcome is decided here;
// the spin duration and cue ticks are presentation only.
func (s *Session) Spin() {
	s.mu.Lock()
	if s.status != StatusPlaying || s.rules == nil || !s.rules.acceptsSpin() || s.spinning || s.wheelResult != nil {
		s.mu.Unlock()
		return
	}
	segment := pickSegment(s.cfg.Rand)
	jitter := spinJitter(s.cfg.Rand)
	s.spinning = true
	s.wheelRotation = spinTarget(s.wheelRotation, segment, jitter)
	epoch := s.epoch
	s.mu.Unlock()
	s.notify("state")

	go s.playSpinTicks(epoch)
	time.AfterFunc(s.cfg.SpinDuration, func() { s.finishSpin(epoch, segment) })
}

// playSpinTicks fires the deceleration tick cues until the schedule runs out
// or the spin is superseded.
func (s *Session) playSpinTicks(epoch uint64) {
	for _, delay := range spinTickDelays() {
		time.Sleep(delay)
		s.mu.Lock()
		stale := s.epoch != epoch || !s.spinning
		cues := s.cfg.Cues
		s.mu.Unlock()
		if stale {
			return
		}
		cues.Tick()
	}
}

func (s *Session) finishSpin(epoch uint64, segment int) {
	s.mu.Lock()
	if s.epoch != epoch || !s.spinning {
		s.mu.Unlock()
		return
	}
	s.spinning = false
	q := s.currentQuestionLocked()
	landed := segment + 1
	win := landed == q.CorrectOptionIndex+1
	if win {
		s.score++
	} else {
		s.score--
		s.attemptsLeft--
	}
	s.wheelResult = &WheelResult{Number: landed, Win: win}
	cues := s.cfg.Cues
	s.mu.Unlock()
	if win {
		cues.Correct()
	} else {
		cues.Wrong()
	}
	s.notify("state")
}

// ContinueAfterResult acknowledges a pending wheel result: a win advances,
// a loss with attempts left clears the result for another spin on the same
// round, and a loss with none forces advancement.
func (s *Session) ContinueAfterResult() {
	s.mu.Lock()
	if s.status != StatusPlaying || s.wheelResult == nil {
		s.mu.Unlock()
		return
	}
	result := *s.wheelResult
	if !result.Win && s.attemptsLeft > 0 {
		s.wheelResult = nil
		s.mu.Unlock()
		s.notify("state")
		return
	}
	s.advanceLocked()
	s.mu.Unlock()
	s.notify("state")
}

// currentQuestionLocked returns the active question. Callers hold the lock
// and have already established that an activity is loaded.
func (s *Session) currentQuestionLocked() content.Question {
	return s.activity.Questions()[s.questionIndex]
}

// loadQuestionLocked resets per-question state and, for timed kinds, starts
// the countdown for the question's computed budget.
func (s *Session) loadQuestionLocked(index int) {
	s.questionIndex = index
	s.selected = -1
	s.feedback = ""
	s.wheelResult = nil
	s.spinning = false
	s.attemptsLeft = wheelAttempts
	s.wheelRotation = 0

	q := s.currentQuestionLocked()
	budget, timed := s.rules.timeBudget(q, s)
	s.timeLeft = budget
	if !timed {
		return
	}
	epoch := s.epoch
	s.countdown = StartCountdown(budget, s.cfg.TickInterval,
		func(remaining int) { s.onTick(epoch, remaining) },
		func() { s.onExpire(epoch) },
	)
}

func (s *Session) onTick(epoch uint64, remaining int) {
	s.mu.Lock()
	if s.epoch != epoch || s.status != StatusPlaying {
		s.mu.Unlock()
		return
	}
	s.timeLeft = remaining
	tickCue := s.rules.tickCue(remaining)
	cues := s.cfg.Cues
	s.mu.Unlock()
	if tickCue && remaining > 0 {
		cues.Tick()
	}
	s.notify("tick")
}

// onExpire handles a countdown reaching zero with no answer: wrong feedback,
// streak reset, time-up cue, then the fixed pause and advancement.
func (s *Session) onExpire(epoch uint64) {
	s.mu.Lock()
	if s.epoch != epoch || s.status != StatusPlaying || s.selected != -1 {
		s.mu.Unlock()
		return
	}
	s.timeLeft = 0
	s.feedback = FeedbackWrong
	s.streak = 0
	s.schedulePauseThenAdvanceLocked()
	cues := s.cfg.Cues
	s.mu.Unlock()
	cues.TimeUp()
	cues.Wrong()
	s.notify("state")
}

// schedulePauseThenAdvanceLocked supersedes the countdown and queues the
// advance after the feedback pause, guarded by the new epoch.
func (s *Session) schedulePauseThenAdvanceLocked() {
	s.supersedeLocked()
	epoch := s.epoch
	time.AfterFunc(s.cfg.FeedbackPause, func() {
		s.mu.Lock()
		if s.epoch != epoch || s.status != StatusPlaying {
			s.mu.Unlock()
			return
		}
		s.advanceLocked()
		s.mu.Unlock()
		s.notify("state")
	})
}

// advanceLocked moves to the next question or finishes the run.
func (s *Session) advanceLocked() {
	s.supersedeLocked()
	if s.questionIndex+1 < len(s.activity.Questions()) {
		s.loadQuestionLocked(s.questionIndex + 1)
		return
	}
	s.status = StatusFinished
}

// supersedeLocked cancels the owned countdown and invalidates every pending
// timer, pause, and spin callback. The session owns at most one live timer;
// any transition that could create a new one goes through here first.
func (s *Session) supersedeLocked() {
	s.epoch++
	if s.countdown != nil {
		s.countdown.Cancel()
		s.countdown = nil
	}
}

func (s *Session) notify(event string) {
	if s.cfg.OnChange != nil {
		s.cfg.OnChange(event)
	}
}
