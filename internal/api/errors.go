package api

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Taxonomie des échecs du service de transcription. Aucun n'est avalé en
// silence, aucun n'est retenté automatiquement : un élément en échec est
// marqué tel quel et l'utilisateur relance lui-même.

// ValidationError : le fichier est refusé AVANT toute tentative d'upload
// (taille au-dessus de la limite, type MIME non supporté).
type ValidationError struct {
	Reasons []string
}

func (e *ValidationError) Error() string {
	return "fichier invalide: " + strings.Join(e.Reasons, "; ")
}

// UploadError : erreur réseau ou refus du backend pendant l'upload.
type UploadError struct {
	Err error
}

func (e *UploadError) Error() string {
	return fmt.Sprintf("upload failed: %v", e.Err)
}

func (e *UploadError) Unwrap() error {
	return e.Err
}

// ProcessingError : le backend a retourné un échec explicite, ou une réponse
// malformée. Raw contient l'écho du payload brut pour le diagnostic quand la
// réponse ne respecte pas le contrat.
type ProcessingError struct {
	Message string
	Raw     []byte
}

func (e *ProcessingError) Error() string {
	if len(e.Raw) > 0 {
		return fmt.Sprintf("processing failed: %s (réponse brute: %s)", e.Message, previewBytes(e.Raw, 200))
	}
	return "processing failed: " + e.Message
}

// previewBytes tronque un payload pour l'affichage d'erreur, sans jamais
// couper au milieu d'une séquence UTF-8.
func previewBytes(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	// reculer jusqu'à une frontière de rune
	for n > 0 && !utf8.RuneStart(b[n]) {
		n--
	}
	return string(b[:n]) + "..."
}
