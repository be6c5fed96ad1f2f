// Package entities contains domain entities used across the application.
package entities

// Question represents a single card of the jincana, as loaded from the
// content document. Every field except the expected answer is optional;
// presentation fallbacks for missing fields live in the delivery layer.
type Question struct {
	Titulo      string `json:"titulo"`      // display title of the card
	Pista       string `json:"pista"`       // hint shown while the question is active
	Imagen      string `json:"imagen"`      // optional image path or URL
	Respuesta   string `json:"respuesta"`   // expected answer, compared case/accent-insensitively
	Felicidades string `json:"felicidades"` // final completion message, honored only on the last question
}
