package telegram

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alvarogh/jincana-bot/internal/domain/entities"
)

func boardGame() entities.Game {
	return entities.Game{
		ChatID: 1,
		Questions: []entities.Question{
			{Titulo: "El gran río", Pista: "pista uno", Respuesta: "Rio"},
			{Titulo: "La estrella", Respuesta: "Sol"},
			{Respuesta: "Mar"},
		},
	}
}

func TestBuildBoardTextHidesLockedTitles(t *testing.T) {
	game := boardGame()

	text := buildBoardText(game)
	assert.Contains(t, text, "El gran río")
	assert.Contains(t, text, labelActive)
	assert.NotContains(t, text, "La estrella")
	assert.Contains(t, text, "Pregunta 2")
	assert.Contains(t, text, "Pregunta 3")

	game.CurrentIndex = 1
	text = buildBoardText(game)
	assert.Contains(t, text, labelCompleted)
	assert.Contains(t, text, "La estrella")
	assert.Contains(t, text, "Pregunta 3")
}

func TestBuildBoardTextIdempotent(t *testing.T) {
	game := boardGame()
	assert.Equal(t, buildBoardText(game), buildBoardText(game))
}

func TestBuildBoardTextUntitledFallback(t *testing.T) {
	game := boardGame()
	game.CurrentIndex = 2

	// The third question has no title even once unlocked.
	assert.Contains(t, buildBoardText(game), "Pregunta 3")
}

func TestBuildBoardTextEscapesHTML(t *testing.T) {
	game := entities.Game{
		Questions: []entities.Question{{Titulo: "<b>uno & dos</b>", Respuesta: "x"}},
	}
	text := buildBoardText(game)
	assert.Contains(t, text, "&lt;b&gt;uno &amp; dos&lt;/b&gt;")
	assert.NotContains(t, text, "<b>uno")
}

func TestBuildActiveCardText(t *testing.T) {
	game := boardGame()
	q, ok := game.Active()
	assert.True(t, ok)

	text := buildActiveCardText(game, q)
	assert.Contains(t, text, "El gran río")
	assert.Contains(t, text, "pista uno")
	assert.Contains(t, text, msgNoImage)
}

func TestBuildActiveCardTextFallbacks(t *testing.T) {
	game := boardGame()
	game.CurrentIndex = 2
	q, ok := game.Active()
	assert.True(t, ok)

	text := buildActiveCardText(game, q)
	assert.Contains(t, text, "Pregunta 3")
	assert.Contains(t, text, msgNoHint)
}

func TestBuildActiveCardTextWithImage(t *testing.T) {
	game := entities.Game{
		Questions: []entities.Question{{Titulo: "Con foto", Imagen: "https://example.com/a.jpg", Respuesta: "x"}},
	}
	q, _ := game.Active()
	assert.NotContains(t, buildActiveCardText(game, q), msgNoImage)
}

func TestStatusMarker(t *testing.T) {
	_, label := statusMarker(entities.StatusCompleted)
	assert.Equal(t, labelCompleted, label)
	_, label = statusMarker(entities.StatusActive)
	assert.Equal(t, labelActive, label)
	_, label = statusMarker(entities.StatusLocked)
	assert.Equal(t, labelLocked, label)
}
