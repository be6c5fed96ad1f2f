package entities

import "time"

// CardStatus describes the visible state of a single card on the board.
type CardStatus string

const (
	StatusCompleted CardStatus = "completed" // answered correctly, stays unlocked
	StatusActive    CardStatus = "active"    // the single question currently accepting answers
	StatusLocked    CardStatus = "locked"    // not yet reachable, rendered without content
)

// Game is the state of one jincana session, owned by a single chat.
// CurrentIndex is monotonically non-decreasing and stays within
// [0, len(Questions)]; questions before it are completed, the one at it
// is active, everything after it is locked. The state lives in memory
// for the lifetime of the session and is never persisted.
type Game struct {
	ChatID       int64
	Questions    []Question
	CurrentIndex int
	Celebrated   bool // completion announced already, guards the once-per-session rule
	StartedAt    time.Time
}

// NewGame creates a fresh session for a chat with the first question active.
func NewGame(chatID int64, questions []Question) *Game {
	return &Game{
		ChatID:    chatID,
		Questions: questions,
		StartedAt: time.Now(),
	}
}

// Status derives the card status for position i purely from CurrentIndex.
func (g *Game) Status(i int) CardStatus {
	switch {
	case i < g.CurrentIndex:
		return StatusCompleted
	case i == g.CurrentIndex && i < len(g.Questions):
		return StatusActive
	default:
		return StatusLocked
	}
}

// Unlocked reports whether the card at position i may show its real title.
func (g *Game) Unlocked(i int) bool {
	return i <= g.CurrentIndex
}

// Active returns the question currently accepting answers.
// The second value is false once every question is completed.
func (g *Game) Active() (Question, bool) {
	if g.CurrentIndex >= len(g.Questions) {
		return Question{}, false
	}
	return g.Questions[g.CurrentIndex], true
}

// Finished reports whether every question has been answered.
func (g *Game) Finished() bool {
	return g.CurrentIndex >= len(g.Questions)
}

// Advance moves the session forward by exactly one question,
// capped at the total number of questions.
func (g *Game) Advance() {
	if g.CurrentIndex < len(g.Questions) {
		g.CurrentIndex++
	}
}

// CompletionMessage returns the final message attached to the last
// question. The second value is false when none is configured.
func (g *Game) CompletionMessage() (string, bool) {
	if len(g.Questions) == 0 {
		return "", false
	}
	last := g.Questions[len(g.Questions)-1]
	if last.Felicidades == "" {
		return "", false
	}
	return last.Felicidades, true
}
