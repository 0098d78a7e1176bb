package transcript

import (
	"fmt"
	"sort"
	"strings"

	"github.com/patrickprogramme/scriptcut/pkg/model"
)

// Sort re-matérialise la liste triée sur le champ demandé.
// Cliquer le même champ inverse le sens ; un champ différent repart en
// croissant. start/end se comparent numériquement, les autres champs via le
// collator (comparaison de chaînes sensible à la locale). Les ids ne sont
// jamais mutés : le tri réordonne, rien d'autre.
func (s *Session) Sort(field model.SortField) error {
	switch field {
	case model.SortByStart, model.SortByEnd, model.SortBySpeaker, model.SortByText, model.SortByTopic:
	default:
		return fmt.Errorf("tri impossible sur le champ %q", field)
	}

	order := model.OrderAsc
	if s.sortField == field && s.sortOrder == model.OrderAsc {
		order = model.OrderDesc
	}
	s.sortField = field
	s.sortOrder = order

	out := append([]model.Segment(nil), s.segments...)
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if order == model.OrderDesc {
			a, b = b, a
		}
		if field.IsNumeric() {
			return numericField(a, field) < numericField(b, field)
		}
		return s.collator.CompareString(stringField(a, field), stringField(b, field)) < 0
	})
	s.segments = out
	return nil
}

func numericField(seg model.Segment, field model.SortField) float64 {
	if field == model.SortByEnd {
		return seg.End
	}
	return seg.Start
}

func stringField(seg model.Segment, field model.SortField) string {
	switch field {
	case model.SortBySpeaker:
		return seg.Speaker
	case model.SortByTopic:
		return seg.Topic
	default:
		return seg.Text
	}
}

// DeleteSelected applique la suppression correspondant au mode d'affichage
// actif et retourne le nombre d'éléments retirés (segments en mode phrase,
// mots en mode mot). Les deux sémantiques sont exclusives par invocation :
// la règle de recalcul du texte et d'abandon des segments vidés ne s'applique
// qu'en mode mot.
func (s *Session) DeleteSelected() int {
	if s.viewMode == model.ViewSentences {
		return s.deleteSelectedSegments()
	}
	return s.deleteSelectedWords()
}

// deleteSelectedSegments retire chaque segment dont l'id est sélectionné,
// puis vide la sélection de segments. Aucun recalage temporel des segments
// restants.
func (s *Session) deleteSelectedSegments() int {
	if len(s.selectedSegments) == 0 {
		return 0
	}
	kept := make([]model.Segment, 0, len(s.segments))
	for _, seg := range s.segments {
		if _, sel := s.selectedSegments[seg.ID]; sel {
			continue
		}
		kept = append(kept, seg)
	}
	removed := len(s.segments) - len(kept)
	s.segments = kept
	s.selectedSegments = make(map[int64]struct{})
	return removed
}

// deleteSelectedWords retire les mots sélectionnés de chaque segment,
// recalcule le texte comme la jointure espace des mots restants (ordre
// existant, pas de re-tri) et abandonne tout segment dont la liste de mots
// devient vide. Les segments sans découpage mot à mot ne sont jamais touchés.
// Vide la sélection de mots.
func (s *Session) deleteSelectedWords() int {
	removed := 0
	kept := make([]model.Segment, 0, len(s.segments))
	for _, seg := range s.segments {
		if !seg.HasWords() {
			kept = append(kept, seg)
			continue
		}

		remaining := make([]model.Word, 0, len(seg.Words))
		for _, w := range seg.Words {
			if _, sel := s.selectedWords[seg.Ref(w)]; sel {
				removed++
				continue
			}
			remaining = append(remaining, w)
		}

		if len(remaining) == 0 {
			// segment entièrement vidé -> il disparaît du transcript
			continue
		}
		if len(remaining) == len(seg.Words) {
			// rien retiré ici, on ne recalcule pas le texte
			kept = append(kept, seg)
			continue
		}

		tokens := make([]string, len(remaining))
		for i, w := range remaining {
			tokens[i] = w.Word
		}
		seg.Words = remaining
		seg.Text = strings.Join(tokens, " ")
		kept = append(kept, seg)
	}
	s.segments = kept
	s.selectedWords = make(map[model.WordRef]struct{})
	return removed
}

// FilterForExport retourne une nouvelle liste sans les segments dont l'id
// figure dans selected. Fonction pure : l'entrée n'est pas modifiée. La
// sélection marque "à exclure de l'export" — export et suppression partagent
// le même ensemble mais restent des opérations distinctes.
func FilterForExport(segments []model.Segment, selected map[int64]struct{}) []model.Segment {
	out := make([]model.Segment, 0, len(segments))
	for _, seg := range segments {
		if _, sel := selected[seg.ID]; sel {
			continue
		}
		out = append(out, seg)
	}
	return out
}

// ExportSegments retourne la liste courante filtrée par la sélection de
// segments, prête à être passée aux générateurs d'export.
func (s *Session) ExportSegments() []model.Segment {
	return FilterForExport(s.segments, s.selectedSegments)
}
