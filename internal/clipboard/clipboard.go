// Package clipboard enveloppe atotto/clipboard pour la copie des exports.
package clipboard

import (
	"errors"

	"github.com/atotto/clipboard"
)

// WriteAll écrit une chaîne de caractères dans le presse-papier.
// Retourne une erreur si l'opération échoue ou si le texte est vide.
func WriteAll(text string) error {
	if text == "" {
		return errors.New("le texte à copier ne peut pas être vide")
	}
	return clipboard.WriteAll(text)
}

// ReadAll lit le contenu texte du presse-papier.
func ReadAll() (string, error) {
	return clipboard.ReadAll()
}

// Equals vérifie si le contenu actuel du presse-papier est strictement égal
// à la chaîne passée en paramètre. En cas d'erreur de lecture, retourne false
// et ignore l'erreur silencieusement. Sert à confirmer qu'une copie a bien
// pris effet.
func Equals(text string) bool {
	current, err := ReadAll()
	if err != nil {
		return false
	}
	return current == text
}
