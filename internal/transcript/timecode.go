// Package transcript contient le cœur du modèle d'édition : la session qui
// possède l'unique liste de segments en mémoire, les deux jeux de sélection,
// les opérations de transformation (tri, suppressions, filtre d'export) et la
// projection phrase/mot.
package transcript

import (
	"fmt"
	"math"
)

// clampSeconds borne l'entrée des formatteurs : les valeurs négatives ou NaN
// sont traitées comme 0 (le producteur ne doit jamais en émettre, mais on
// refuse de produire "-1:-1.-10").
func clampSeconds(seconds float64) float64 {
	if math.IsNaN(seconds) || seconds < 0 {
		return 0
	}
	return seconds
}

// FormatDisplay formate des secondes fractionnaires pour l'affichage :
// "M:SS.cc", avec les heures en préfixe seulement si non nulles
// ("H:MM:SS.cc"). Centisecondes sur deux chiffres, tronquées.
// Exemple : 65.5 -> "1:05.50".
func FormatDisplay(seconds float64) string {
	seconds = clampSeconds(seconds)
	total := int64(seconds)
	hrs := total / 3600
	mins := (total % 3600) / 60
	secs := total % 60
	cents := int64((seconds - math.Floor(seconds)) * 100)

	if hrs > 0 {
		return fmt.Sprintf("%d:%02d:%02d.%02d", hrs, mins, secs, cents)
	}
	return fmt.Sprintf("%d:%02d.%02d", mins, secs, cents)
}

// FormatSRT formate des secondes fractionnaires au format imposé par le
// standard SRT : "HH:MM:SS,mmm" — heures toujours sur deux chiffres,
// millisecondes sur trois, virgule (pas de point). À ne pas confondre avec
// FormatDisplay.
func FormatSRT(seconds float64) string {
	seconds = clampSeconds(seconds)
	total := int64(seconds)
	hrs := total / 3600
	mins := (total % 3600) / 60
	secs := total % 60
	millis := int64((seconds - math.Floor(seconds)) * 1000)

	return fmt.Sprintf("%02d:%02d:%02d,%03d", hrs, mins, secs, millis)
}
