package transcript

import (
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/patrickprogramme/scriptcut/pkg/model"
)

// Session est l'état explicite d'une session d'édition : la liste de segments
// (propriétaire unique, aucun partage), les deux jeux de sélection, le mode
// d'affichage et l'état de tri. Toutes les mutations sont des réactions
// discrètes à une action utilisateur sur un seul thread logique — pas de
// verrou nécessaire.
type Session struct {
	segments []model.Segment

	// Les deux sélections coexistent en permanence, quel que soit le mode
	// d'affichage actif. Un changement de mode ne les vide pas ; seule la
	// suppression du type correspondant le fait.
	selectedSegments map[int64]struct{}
	selectedWords    map[model.WordRef]struct{}

	viewMode  model.ViewMode
	sortField model.SortField
	sortOrder model.SortOrder

	// collator pour les comparaisons de chaînes sensibles à la locale
	collator *collate.Collator
}

// NewSession construit une session vide en mode phrase. Le champ de tri est
// volontairement non renseigné : l'ordre d'insertion du producteur fait foi
// tant qu'aucun tri n'a été demandé, et le premier tri sur n'importe quel
// champ part en croissant.
func NewSession() *Session {
	return &Session{
		selectedSegments: make(map[int64]struct{}),
		selectedWords:    make(map[model.WordRef]struct{}),
		viewMode:         model.ViewSentences,
		sortOrder:        model.OrderAsc,
		collator:         collate.New(language.Und),
	}
}

// SetTranscript remplace la liste de segments en bloc (arrivée d'un nouveau
// résultat de transcription). L'ordre reçu est l'ordre d'insertion du
// producteur ; il fait foi jusqu'à un tri explicite. Les sélections
// précédentes référencent des ids qui n'existent plus : on les vide.
func (s *Session) SetTranscript(segments []model.Segment) {
	s.segments = append([]model.Segment(nil), segments...)
	s.selectedSegments = make(map[int64]struct{})
	s.selectedWords = make(map[model.WordRef]struct{})
}

// Segments retourne la liste courante (post-tri, pré-filtre).
// La slice appartient à la session ; les appelants ne doivent pas la muter.
func (s *Session) Segments() []model.Segment {
	return s.segments
}

// Len retourne le nombre de segments de la session.
func (s *Session) Len() int {
	return len(s.segments)
}

// ViewMode retourne le mode d'affichage actif.
func (s *Session) ViewMode() model.ViewMode {
	return s.viewMode
}

// SetViewMode change la granularité d'affichage. Projection pure : aucune
// donnée n'est copiée, aucune sélection n'est touchée.
func (s *Session) SetViewMode(m model.ViewMode) {
	s.viewMode = m
}

// SortState retourne le champ et l'ordre de tri courants.
func (s *Session) SortState() (model.SortField, model.SortOrder) {
	return s.sortField, s.sortOrder
}
