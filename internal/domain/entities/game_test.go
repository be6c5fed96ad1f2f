package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func threeQuestions() []Question {
	return []Question{
		{Titulo: "Primera", Respuesta: "Rio"},
		{Titulo: "Segunda", Respuesta: "Sol"},
		{Titulo: "Tercera", Respuesta: "Mar", Felicidades: "final"},
	}
}

func TestGameStatusDerivation(t *testing.T) {
	g := NewGame(1, threeQuestions())

	assert.Equal(t, StatusActive, g.Status(0))
	assert.Equal(t, StatusLocked, g.Status(1))
	assert.Equal(t, StatusLocked, g.Status(2))

	g.Advance()
	assert.Equal(t, StatusCompleted, g.Status(0))
	assert.Equal(t, StatusActive, g.Status(1))
	assert.Equal(t, StatusLocked, g.Status(2))

	g.Advance()
	g.Advance()
	assert.Equal(t, StatusCompleted, g.Status(2))
	assert.True(t, g.Finished())
}

func TestGameAdvanceIsCapped(t *testing.T) {
	g := NewGame(1, threeQuestions())
	for i := 0; i < 10; i++ {
		g.Advance()
	}
	assert.Equal(t, 3, g.CurrentIndex)
}

func TestGameUnlocked(t *testing.T) {
	g := NewGame(1, threeQuestions())
	g.Advance()

	assert.True(t, g.Unlocked(0))
	assert.True(t, g.Unlocked(1))
	assert.False(t, g.Unlocked(2))
}

func TestGameActive(t *testing.T) {
	g := NewGame(1, threeQuestions())

	q, ok := g.Active()
	assert.True(t, ok)
	assert.Equal(t, "Rio", q.Respuesta)

	g.Advance()
	g.Advance()
	g.Advance()
	_, ok = g.Active()
	assert.False(t, ok)
}

func TestGameCompletionMessage(t *testing.T) {
	g := NewGame(1, threeQuestions())
	msg, ok := g.CompletionMessage()
	assert.True(t, ok)
	assert.Equal(t, "final", msg)

	empty := NewGame(1, nil)
	_, ok = empty.CompletionMessage()
	assert.False(t, ok)

	noFinal := NewGame(1, []Question{{Respuesta: "Sol"}})
	_, ok = noFinal.CompletionMessage()
	assert.False(t, ok)
}

func TestEmptyGameIsImmediatelyFinished(t *testing.T) {
	g := NewGame(1, nil)
	assert.True(t, g.Finished())
	_, ok := g.Active()
	assert.False(t, ok)
}
