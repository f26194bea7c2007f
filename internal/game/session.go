package game

import (
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/runicvine/vinequiz/internal/geo"
	"github.com/runicvine/vinequiz/internal/vinequiz"
)

// ErrWrongPhase is returned when a submission arrives in a phase that does
// not accept it (other than Ended, which swallows input silently).
var ErrWrongPhase = errors.New("submission not valid in current phase")

// TriState tracks whether the continent step has been answered yet.
type TriState int

const (
	TriUnknown TriState = iota
	TriTrue
	TriFalse
)

// Event is pushed to round subscribers (SSE/WebSocket) as the round evolves.
type Event struct {
	Type      string `json:"type"`
	Remaining int    `json:"remaining,omitempty"`
	Score     int    `json:"score,omitempty"`
	Questions int    `json:"questions,omitempty"`
	Outcome   string `json:"outcome,omitempty"`
	Variety   string `json:"variety,omitempty"`
}

// Config wires a session's collaborators. Clock and TickInterval exist for
// deterministic tests.
type Config struct {
	Resolver      *geo.Resolver
	Sequencer     *Sequencer
	Logger        *slog.Logger
	RoundSeconds  int
	FeedbackDelay time.Duration
	TickInterval  time.Duration
	Publish       func(Event)
	OnEnded       func(player vinequiz.Player, score, questions int)
	Clock         func() time.Time
}

// Session is one play-through of the quiz, from start to timer expiry. All
// mutation happens under its mutex; scheduled callbacks (countdown tick,
// feedback auto-advance) re-check the phase before touching state so that
// work scheduled by a superseded round can never leak into a fresh one.
type Session struct {
	cfg    Config
	player vinequiz.Player

	mu               sync.Mutex
	current          vinequiz.Item
	used             map[string]struct{}
	continentCorrect TriState
	score            int
	questionsAsked   int
	remaining        int
	phase            vinequiz.Phase
	timer            *Countdown
	advance          *time.Timer
}

// NewSession creates a round for player and draws its first item. The
// countdown does not run until Start is called.
func NewSession(cfg Config, player vinequiz.Player) *Session {
	if cfg.TickInterval == 0 {
		cfg.TickInterval = time.Second
	}
	if cfg.FeedbackDelay == 0 {
		cfg.FeedbackDelay = 1500 * time.Millisecond
	}
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}
	if cfg.Publish == nil {
		cfg.Publish = func(Event) {}
	}

	s := &Session{
		cfg:       cfg,
		player:    player,
		used:      make(map[string]struct{}),
		remaining: cfg.RoundSeconds,
		phase:     vinequiz.PhaseAwaitingContinent,
	}
	s.current = cfg.Sequencer.Next(s.used)
	s.timer = NewCountdown(cfg.RoundSeconds, cfg.TickInterval, s.onTick, s.onTimerExpired)
	return s
}

// Start begins the countdown.
func (s *Session) Start() {
	s.timer.Start()
}

// Stop cancels the countdown and any pending auto-advance. It must be called
// before a replacement session starts; see Registry.
func (s *Session) Stop() {
	s.timer.Stop()
	s.mu.Lock()
	if s.advance != nil {
		s.advance.Stop()
		s.advance = nil
	}
	s.mu.Unlock()
}

// Player returns the identity the round was started with.
func (s *Session) Player() vinequiz.Player {
	return s.player
}

// State is a read-only snapshot for rendering.
type State struct {
	Phase            vinequiz.Phase
	Variety          string
	Score            int
	QuestionsAsked   int
	RemainingSeconds int
	ContinentCorrect TriState
}

// Snapshot returns the current observable state.
func (s *Session) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return State{
		Phase:            s.phase,
		Variety:          s.current.Variety,
		Score:            s.score,
		QuestionsAsked:   s.questionsAsked,
		RemainingSeconds: s.remaining,
		ContinentCorrect: s.continentCorrect,
	}
}

// ContinentResult reports the outcome of the continent step.
type ContinentResult struct {
	Ignored   bool
	Correct   bool
	Expected  geo.Continent
	Continent geo.Continent
}

// SubmitContinent answers the first stage. It counts the question exactly
// once per item regardless of outcome; a wrong continent short-circuits to
// feedback and the item is scored as a miss without a country stage.
func (s *Session) SubmitContinent(choice geo.Continent) (ContinentResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase == vinequiz.PhaseEnded {
		// Input racing the timer; swallow it.
		return ContinentResult{Ignored: true}, nil
	}
	if s.phase != vinequiz.PhaseAwaitingContinent {
		return ContinentResult{}, ErrWrongPhase
	}

	expected := s.cfg.Resolver.ContinentOf(s.current.Country)
	s.questionsAsked++

	if choice == expected {
		s.continentCorrect = TriTrue
		s.phase = vinequiz.PhaseAwaitingCountry
		return ContinentResult{Correct: true, Expected: expected, Continent: choice}, nil
	}

	s.continentCorrect = TriFalse
	s.phase = vinequiz.PhaseFeedback
	s.scheduleAdvanceLocked()
	s.publishFeedbackLocked(vinequiz.OutcomeMiss)
	return ContinentResult{Correct: false, Expected: expected, Continent: choice}, nil
}

// CountryResult reports the outcome of the country step.
type CountryResult struct {
	Ignored bool
	Correct bool
	Country string
}

// SubmitCountry answers the second stage with a clicked map identifier.
// Identifiers that don't resolve to any quiz country are a no-op: the map
// has valid but unselectable regions and clicking them must not burn the
// question.
func (s *Session) SubmitCountry(mapID string) (CountryResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase == vinequiz.PhaseEnded {
		return CountryResult{Ignored: true}, nil
	}
	if s.phase != vinequiz.PhaseAwaitingCountry {
		return CountryResult{}, ErrWrongPhase
	}

	label := s.cfg.Resolver.CountryForMapIdentifier(mapID)
	if !s.cfg.Resolver.KnownCountry(label) {
		return CountryResult{Ignored: true}, nil
	}

	outcome := vinequiz.OutcomeMiss
	correct := label == s.current.Country
	if correct {
		s.score++
		outcome = vinequiz.OutcomeCorrect
	}

	s.phase = vinequiz.PhaseFeedback
	s.scheduleAdvanceLocked()
	s.publishFeedbackLocked(outcome)
	return CountryResult{Correct: correct, Country: label}, nil
}

// scheduleAdvanceLocked arms the feedback auto-advance. The callback
// re-checks the phase: if the timer fired in the meantime the advance is
// suppressed.
func (s *Session) scheduleAdvanceLocked() {
	if s.advance != nil {
		s.advance.Stop()
	}
	s.advance = time.AfterFunc(s.cfg.FeedbackDelay, s.advanceAfterFeedback)
}

func (s *Session) advanceAfterFeedback() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase != vinequiz.PhaseFeedback {
		return
	}
	s.nextItemLocked()
}

func (s *Session) nextItemLocked() {
	s.current = s.cfg.Sequencer.Next(s.used)
	s.continentCorrect = TriUnknown
	s.phase = vinequiz.PhaseAwaitingContinent
	s.cfg.Publish(Event{
		Type:      "next_item",
		Variety:   s.current.Variety,
		Score:     s.score,
		Questions: s.questionsAsked,
	})
}

func (s *Session) publishFeedbackLocked(outcome vinequiz.Outcome) {
	s.cfg.Publish(Event{
		Type:      "feedback",
		Outcome:   string(outcome),
		Score:     s.score,
		Questions: s.questionsAsked,
	})
}

func (s *Session) onTick(remaining int) {
	s.mu.Lock()
	if s.phase == vinequiz.PhaseEnded {
		s.mu.Unlock()
		return
	}
	s.remaining = remaining
	s.mu.Unlock()

	s.cfg.Publish(Event{Type: "tick", Remaining: remaining})
}

// onTimerExpired ends the round. Terminal: any pending auto-advance is
// cancelled and later submissions are swallowed.
func (s *Session) onTimerExpired() {
	s.mu.Lock()
	if s.phase == vinequiz.PhaseEnded {
		s.mu.Unlock()
		return
	}
	s.phase = vinequiz.PhaseEnded
	s.remaining = 0
	if s.advance != nil {
		s.advance.Stop()
		s.advance = nil
	}
	score, questions := s.score, s.questionsAsked
	s.mu.Unlock()

	s.cfg.Publish(Event{Type: "round_ended", Score: score, Questions: questions})
	if s.cfg.OnEnded != nil {
		s.cfg.OnEnded(s.player, score, questions)
	}
}
