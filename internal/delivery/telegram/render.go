package telegram

import (
	"fmt"
	"html"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/alvarogh/jincana-bot/internal/domain/entities"
)

func statusMarker(status entities.CardStatus) (string, string) {
	switch status {
	case entities.StatusCompleted:
		return "✅", labelCompleted
	case entities.StatusActive:
		return "▶️", labelActive
	default:
		return "🔒", labelLocked
	}
}

// cardTitle returns the display title for position i. The real title is
// hidden behind a generic placeholder until the card unlocks.
func cardTitle(game entities.Game, i int) string {
	if game.Unlocked(i) && game.Questions[i].Titulo != "" {
		return game.Questions[i].Titulo
	}
	return fmt.Sprintf(questionFmt, i+1)
}

// buildBoardText rebuilds the whole board from the game state. Locked
// and completed cards show only their header line; there is no
// incremental diffing, every render starts from scratch.
func buildBoardText(game entities.Game) string {
	var sb strings.Builder
	sb.WriteString(labelBoardTitle)
	sb.WriteString("\n\n")

	for i := range game.Questions {
		marker, label := statusMarker(game.Status(i))
		sb.WriteString(fmt.Sprintf("%s <b>#%d</b> %s — %s\n",
			marker, i+1, html.EscapeString(cardTitle(game, i)), label))
	}

	return sb.String()
}

// buildActiveCardText builds the body of the active card: hint plus an
// explicit note when the question carries no image.
func buildActiveCardText(game entities.Game, q entities.Question) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("▶️ <b>%s</b>\n\n", html.EscapeString(cardTitle(game, game.CurrentIndex))))

	if q.Imagen == "" {
		sb.WriteString("🖼 " + msgNoImage + "\n")
	}

	hint := q.Pista
	if hint == "" {
		hint = msgNoHint
	}
	sb.WriteString("💡 " + html.EscapeString(hint))

	return sb.String()
}

// renderBoard performs a full rebuild of the visible game: the board
// message, then the active card with its answer prompt. Rendering the
// same state twice produces the same messages.
func (h *Handler) renderBoard(chatID int64) {
	game, err := h.game.Snapshot(chatID)
	if err != nil {
		return
	}

	h.send(newHTMLMessage(chatID, buildBoardText(game)))
	h.sendActiveCard(game)
}

// sendActiveCard sends the active question's card (photo or text) and,
// after a short delay, the prompt asking for the answer.
func (h *Handler) sendActiveCard(game entities.Game) {
	q, ok := game.Active()
	if !ok {
		return
	}

	text := buildActiveCardText(game, q)
	if q.Imagen != "" {
		photo := tgbotapi.NewPhoto(game.ChatID, photoFile(q.Imagen))
		photo.Caption = text
		photo.ParseMode = tgbotapi.ModeHTML
		h.send(photo)
	} else {
		h.send(newHTMLMessage(game.ChatID, text))
	}

	chatID := game.ChatID
	time.AfterFunc(h.ui.PromptDelay, func() {
		h.send(newAnswerPrompt(chatID))
	})
}

func photoFile(imagen string) tgbotapi.RequestFileData {
	if strings.HasPrefix(imagen, "http://") || strings.HasPrefix(imagen, "https://") {
		return tgbotapi.FileURL(imagen)
	}
	return tgbotapi.FilePath(imagen)
}
