// Package service implements the rules of the jincana: answer
// normalization, the unlock sequence, and the password-gated helper.
package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/alvarogh/jincana-bot/internal/domain/entities"
)

var (
	ErrNoGame       = errors.New("no game in progress")
	ErrGameFinished = errors.New("game already finished")
	ErrWrongSecret  = errors.New("wrong cheat secret")
)

type ContentRepo interface {
	Load(ctx context.Context) ([]entities.Question, error)
}

type GameStore interface {
	Store(chatID int64, game *entities.Game)
	Get(chatID int64) *entities.Game
	Delete(chatID int64)
}

// SubmitResult describes the outcome of one answer submission.
type SubmitResult struct {
	Correct     bool
	Completed   bool // the submission finished the game just now
	NextOrdinal int  // 1-based number of the newly unlocked question, when not completed
}

// GameService owns every game read and mutation. Methods serialize on
// a single mutex and reads hand out value copies, so delayed render
// callbacks running off timers never observe a game mid-change.
type GameService struct {
	mu          sync.Mutex
	content     ContentRepo
	store       GameStore
	cheatSecret string
}

func NewGameService(content ContentRepo, store GameStore, cheatSecret string) *GameService {
	return &GameService{
		content:     content,
		store:       store,
		cheatSecret: cheatSecret,
	}
}

// Start loads the content afresh and replaces any running session for
// the chat with a new game at the first question. A failed load leaves
// the chat in a terminal failed state: any previous session is
// discarded rather than kept half-playable.
func (s *GameService) Start(ctx context.Context, chatID int64) (entities.Game, error) {
	questions, err := s.content.Load(ctx)
	if err != nil {
		s.mu.Lock()
		s.store.Delete(chatID)
		s.mu.Unlock()
		return entities.Game{}, fmt.Errorf("start game: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	game := entities.NewGame(chatID, questions)
	s.store.Store(chatID, game)
	return *game, nil
}

// Snapshot returns a copy of the chat's game state for rendering.
// The questions slice is never mutated after Start, so sharing it
// inside the copy is safe.
func (s *GameService) Snapshot(chatID int64) (entities.Game, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	game := s.store.Get(chatID)
	if game == nil {
		return entities.Game{}, ErrNoGame
	}
	return *game, nil
}

// Active returns the question currently accepting answers.
func (s *GameService) Active(chatID int64) (entities.Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	game := s.store.Get(chatID)
	if game == nil {
		return entities.Question{}, ErrNoGame
	}
	q, ok := game.Active()
	if !ok {
		return entities.Question{}, ErrGameFinished
	}
	return q, nil
}

// Submit checks an answer against the active question. Both sides go
// through NormalizeAnswer; success requires the normalized user value
// to be non-empty and equal to the normalized expected answer. A wrong
// or empty answer leaves the game untouched; questions are never
// skipped. On success the index advances by exactly one, capped at the
// question count, and completion is reported at most once per session.
func (s *GameService) Submit(chatID int64, answer string) (SubmitResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	game := s.store.Get(chatID)
	if game == nil {
		return SubmitResult{}, ErrNoGame
	}
	active, ok := game.Active()
	if !ok {
		return SubmitResult{}, ErrGameFinished
	}

	user := NormalizeAnswer(answer)
	expected := NormalizeAnswer(active.Respuesta)
	if user == "" || user != expected {
		return SubmitResult{}, nil
	}

	game.Advance()

	res := SubmitResult{Correct: true}
	if game.Finished() {
		if !game.Celebrated {
			game.Celebrated = true
			res.Completed = true
		}
	} else {
		res.NextOrdinal = game.CurrentIndex + 1
	}
	return res, nil
}

// CheatAnswer validates the shared secret and, when it matches exactly,
// returns the active question's expected answer verbatim. The secret is
// compared in plain text with no lockout or attempt counting; this is
// an easter egg, not access control.
func (s *GameService) CheatAnswer(chatID int64, secret string) (string, error) {
	if secret != s.cheatSecret {
		return "", ErrWrongSecret
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	game := s.store.Get(chatID)
	if game == nil {
		return "", ErrNoGame
	}
	q, ok := game.Active()
	if !ok {
		return "", ErrGameFinished
	}
	return q.Respuesta, nil
}

// CompletionMessage returns the text for the completion overlay: the
// last question's felicidades when present, otherwise empty.
func (s *GameService) CompletionMessage(chatID int64) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	game := s.store.Get(chatID)
	if game == nil {
		return ""
	}
	msg, _ := game.CompletionMessage()
	return msg
}
