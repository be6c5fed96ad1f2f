package storage

import (
	"sync"

	"github.com/alvarogh/jincana-bot/internal/domain/entities"
)

// GameStore provides in-memory storage for game sessions by chat ID.
// Sessions are deliberately not persisted; a restart discards them.
type GameStore struct {
	mu    sync.RWMutex
	games map[int64]*entities.Game
}

// NewGameStore creates a new GameStore.
func NewGameStore() *GameStore {
	return &GameStore{
		games: make(map[int64]*entities.Game),
	}
}

// Store saves the game for a chat, replacing any previous session.
func (s *GameStore) Store(chatID int64, game *entities.Game) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.games[chatID] = game
}

// Get retrieves the game for a chat, or nil when none is running.
func (s *GameStore) Get(chatID int64) *entities.Game {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.games[chatID]
}

// Delete removes the game for a chat.
func (s *GameStore) Delete(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.games, chatID)
}
