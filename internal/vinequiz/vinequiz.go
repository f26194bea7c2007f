// Package vinequiz defines the core domain types of the game.
// It has zero external dependencies — everything here is pure Go.
package vinequiz

import "time"

// Item is one quiz prompt: a grape variety and its country of origin.
type Item struct {
	Variety string `json:"variety"`
	Country string `json:"country"`
}

// Key identifies an item within a round's used-item set.
func (i Item) Key() string {
	return i.Variety
}

// Phase is the position of a round within its question lifecycle.
type Phase string

const (
	PhaseAwaitingContinent Phase = "awaiting_continent"
	PhaseAwaitingCountry   Phase = "awaiting_country"
	PhaseFeedback          Phase = "feedback"
	PhaseEnded             Phase = "ended"
)

// Outcome is the result of a single answer step.
type Outcome string

const (
	OutcomeCorrect Outcome = "correct"
	OutcomeMiss    Outcome = "miss"
)

// Player identifies who is playing a round. Name and email are captured
// before the round starts; only presence is validated.
type Player struct {
	Name  string
	Email string
}

// ScoreRecord is one finished round on the leaderboard. Immutable once
// created.
type ScoreRecord struct {
	ID             string `json:"id"`
	PlayerName     string `json:"name"`
	PlayerEmail    string `json:"email"`
	Score          int    `json:"score"`
	QuestionsAsked int    `json:"totalQuestions"`
	AccuracyPct    int    `json:"accuracy"`
	DateLabel      string `json:"date"`
	CreatedAtMs    int64  `json:"timestamp"`
}

// AccuracyPercent computes the rounded percentage of correct answers, 0 when
// no questions were asked.
func AccuracyPercent(score, questions int) int {
	if questions <= 0 {
		return 0
	}
	return int(float64(score)/float64(questions)*100 + 0.5)
}

// NewScoreRecord builds a record for a finished round.
func NewScoreRecord(id string, player Player, score, questions int, at time.Time) ScoreRecord {
	return ScoreRecord{
		ID:             id,
		PlayerName:     player.Name,
		PlayerEmail:    player.Email,
		Score:          score,
		QuestionsAsked: questions,
		AccuracyPct:    AccuracyPercent(score, questions),
		DateLabel:      at.Format("02/01/2006"),
		CreatedAtMs:    at.UnixMilli(),
	}
}
