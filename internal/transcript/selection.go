package transcript

import "github.com/patrickprogramme/scriptcut/pkg/model"

// ToggleSegment inverse l'appartenance du segment à la sélection :
// ajout si absent, retrait si présent. Idempotent par double application.
func (s *Session) ToggleSegment(id int64) {
	if _, ok := s.selectedSegments[id]; ok {
		delete(s.selectedSegments, id)
		return
	}
	s.selectedSegments[id] = struct{}{}
}

// ToggleWord inverse l'appartenance du mot (identifié par sa clé composite)
// à la sélection de mots.
func (s *Session) ToggleWord(ref model.WordRef) {
	if _, ok := s.selectedWords[ref]; ok {
		delete(s.selectedWords, ref)
		return
	}
	s.selectedWords[ref] = struct{}{}
}

// SelectAllSegments remplace intégralement la sélection de segments :
// - selected == true  -> exactement l'ensemble des ids de la liste courante
// - selected == false -> l'ensemble vide
// C'est un remplacement complet, pas une union avec l'existant.
func (s *Session) SelectAllSegments(selected bool) {
	next := make(map[int64]struct{}, len(s.segments))
	if selected {
		for _, seg := range s.segments {
			next[seg.ID] = struct{}{}
		}
	}
	s.selectedSegments = next
}

// IsSegmentSelected indique si le segment est marqué.
func (s *Session) IsSegmentSelected(id int64) bool {
	_, ok := s.selectedSegments[id]
	return ok
}

// IsWordSelected indique si le mot est marqué.
func (s *Session) IsWordSelected(ref model.WordRef) bool {
	_, ok := s.selectedWords[ref]
	return ok
}

// SelectedSegmentCount retourne le nombre de segments sélectionnés.
func (s *Session) SelectedSegmentCount() int {
	return len(s.selectedSegments)
}

// SelectedWordCount retourne le nombre de mots sélectionnés.
func (s *Session) SelectedWordCount() int {
	return len(s.selectedWords)
}

// ClearSegmentSelection vide la sélection de segments.
func (s *Session) ClearSegmentSelection() {
	s.selectedSegments = make(map[int64]struct{})
}

// ClearWordSelection vide la sélection de mots.
func (s *Session) ClearWordSelection() {
	s.selectedWords = make(map[model.WordRef]struct{})
}
