// messages.go contains the fixed Spanish user-facing strings and
// message helpers for Telegram.

package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Game flow messages.
const (
	msgWelcome = "<b>¡Bienvenido a la jincana!</b> 🎯\n\n" +
		"Las preguntas se desbloquean de una en una: responde bien a la activa " +
		"para abrir la siguiente. Escribe tu respuesta como un mensaje normal.\n\n" +
		"/start — empezar (o reiniciar) la jincana\n" +
		"/tablero — volver a ver el tablero\n" +
		"/ayuda — ayuda"
	msgHelp = "Responde a la pregunta activa escribiendo tu respuesta.\n" +
		"Las mayúsculas y las tildes no importan.\n\n" +
		"/start — empezar de nuevo con el contenido actual\n" +
		"/tablero — volver a ver el tablero"
	msgNoGame        = "No hay ninguna jincana en curso. Usa /start para empezar."
	msgAlreadyDone   = "Ya has completado la jincana. 🎉 Usa /start para jugar otra vez."
	msgAnswerPrompt  = "Escribe tu respuesta…"
	msgFeedbackOK    = "¡Correcto! Desbloqueando la siguiente…"
	msgFeedbackWrong = "No es correcto. ¡Prueba otra vez!"
	msgLoadFailed    = "Error cargando contenido. Revisa contenido.json"
	msgNoHint        = "Pista no disponible"
	msgNoImage       = "Sin imagen"
	msgCheatPrompt   = "Introduce la contraseña:"
	msgInternalError = "Algo ha salido mal. Inténtalo de nuevo."
	msgUnknownCmd    = "Comando desconocido. Usa /start, /tablero o /ayuda."
)

// Toast texts.
const (
	toastWrongAnswer   = "Respuesta incorrecta"
	toastWrongPassword = "Contraseña incorrecta"
	toastAnswerFilled  = "Respuesta rellenada"
	toastCompleted     = "¡Has completado la jincana! 🎉"
	toastUnlockedFmt   = "Pregunta #%d desbloqueada"
)

// Board labels.
const (
	labelCompleted  = "Completada"
	labelActive     = "Activa"
	labelLocked     = "Bloqueada"
	labelBoardTitle = "🗺️ <b>Jincana</b>"
	questionFmt     = "Pregunta %d"
)

// Completion texts.
const (
	completionTitle   = "¡Felicidades! 🎉"
	completionDefault = "¡Has completado la jincana!"
	confettiText      = "🎊🎉🎊🎉🎊"
	btnClose          = "Cerrar"
)

func newHTMLMessage(chatID int64, text string) tgbotapi.MessageConfig {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	return msg
}

func newPlainMessage(chatID int64, text string) tgbotapi.MessageConfig {
	return tgbotapi.NewMessage(chatID, text)
}
