// Package export contient les générateurs de sortie : SRT, FCPXML simplifié
// et JSON. Chaque générateur est une fonction pure sur la liste de segments
// déjà filtrée (sans les segments marqués pour exclusion) — pas d'effet de
// bord, déterministe à entrée identique.
package export

import (
	"fmt"
	"strings"

	"github.com/patrickprogramme/scriptcut/internal/transcript"
	"github.com/patrickprogramme/scriptcut/pkg/model"
)

// GenerateSRT produit le fichier de sous-titres SRT : pour chaque segment,
// un numéro de séquence 1-based (séquentiel dans la liste FILTRÉE, pas les
// ids d'origine), les timecodes start/end séparés par " --> ", puis une ligne
// de légende "[speaker] texte", avec une ligne vide entre les entrées.
func GenerateSRT(segments []model.Segment) string {
	entries := make([]string, 0, len(segments))
	for i, seg := range segments {
		entries = append(entries, fmt.Sprintf("%d\n%s --> %s\n[%s] %s\n",
			i+1,
			transcript.FormatSRT(seg.Start),
			transcript.FormatSRT(seg.End),
			seg.SpeakerLabel(),
			seg.Text,
		))
	}
	return strings.Join(entries, "\n")
}
