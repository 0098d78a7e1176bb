package fsutil

import (
	"regexp"
	"strings"
)

// limite de longueur de la chaine
const maxNameLen = 120

// invalidFileRunes définit les caractères interdits dans les noms de fichiers
// \x00-\x1F sont les caractères de contrôle
var invalidFileRunes = regexp.MustCompile(`[<>"/\\|?*\x00-\x1F]`)

// multiSpace détecte les séquences de plusieurs espaces pour les réduire à un seul.
var multiSpace = regexp.MustCompile(`\s+`)

// SanitizeFilename nettoie une chaîne pour en faire un nom de fichier ou de
// dossier valide (utilisé pour le sous-dossier de sortie dérivé du média).
// - Remplace ":" par "-", les autres caractères interdits par un espace
// - Réduit les espaces, supprime les points terminaux, borne la longueur
// - Fournit un nom par défaut si la chaîne devient vide
func SanitizeFilename(name string) string {
	if name == "" {
		return "untitled"
	}

	name = strings.ReplaceAll(name, ":", "-")
	clean := invalidFileRunes.ReplaceAllString(name, " ")
	clean = strings.TrimSpace(clean)
	clean = multiSpace.ReplaceAllString(clean, " ")
	clean = strings.TrimRight(clean, ".")

	if clean == "" {
		return "untitled"
	}
	if len(clean) > maxNameLen {
		clean = clean[:maxNameLen]
	}
	return clean
}
