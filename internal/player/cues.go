package player

// Cues receives audio/feedback events from a session. Implementations relay
// them to the presentation layer (SSE events in the web shell); the session
// itself never blocks on them, so implementations should return quickly.
type Cues interface {
	// Correct fires on a right answer or a winning spin.
	Correct()
	// Wrong fires on a wrong answer, a timeout, or a losing spin.
	Wrong()
	// Tick fires on countdown ticks near expiry and on spin deceleration.
	Tick()
	// TimeUp fires when a question countdown reaches zero.
	TimeUp()
}

// NopCues discards every cue. Used by tests and headless sessions.
type NopCues struct{}

func (NopCues) Correct() {}
func (NopCues) Wrong()   {}
func (NopCues) Tick()    {}
func (NopCues) TimeUp()  {}
