package model

import "fmt"

// SpeakerUnknown est le libellé utilisé quand le backend n'a pas identifié de locuteur.
const SpeakerUnknown = "unknown"

// Word représente un mot horodaté à l'intérieur d'un Segment.
// Le champ Speaker n'est renseigné que si le mot est attribué à un autre
// locuteur que celui du segment parent (cross-talk, rare).
type Word struct {
	Word    string  `json:"word"`
	Start   float64 `json:"start"`
	End     float64 `json:"end"`
	Speaker string  `json:"speaker,omitempty"`
}

// Segment représente une unité de transcription horodatée (type phrase).
// Les champs reprennent exactement le contrat JSON du backend :
// id numérique stable pour la session, start/end en secondes fractionnaires,
// words absent ou vide => le segment se rend comme une unité atomique.
type Segment struct {
	ID          int64   `json:"id"`
	Text        string  `json:"text"`
	Start       float64 `json:"start"`
	End         float64 `json:"end"`
	Speaker     string  `json:"speaker,omitempty"`
	SpeakerName string  `json:"speakerName,omitempty"`
	Confidence  float64 `json:"confidence,omitempty"`
	Topic       string  `json:"topic,omitempty"`
	Words       []Word  `json:"words,omitempty"`
}

// SpeakerLabel retourne l'identifiant du locuteur, ou SpeakerUnknown si absent.
func (s Segment) SpeakerLabel() string {
	if s.Speaker == "" {
		return SpeakerUnknown
	}
	return s.Speaker
}

// Duration retourne la durée du segment en secondes.
func (s Segment) Duration() float64 {
	return s.End - s.Start
}

// HasWords indique si le segment possède un découpage mot à mot.
func (s Segment) HasWords() bool {
	return len(s.Words) > 0
}

// WordSpeaker retourne le locuteur effectif du mot w à l'intérieur du segment :
// l'override du mot s'il existe, sinon le locuteur du segment.
func (s Segment) WordSpeaker(w Word) string {
	if w.Speaker != "" {
		return w.Speaker
	}
	return s.SpeakerLabel()
}

func (s Segment) String() string {
	return fmt.Sprintf("Segment[ID=%d, %0.2f→%0.2f, Speaker=%s, Words=%d]",
		s.ID, s.Start, s.End, s.SpeakerLabel(), len(s.Words))
}

// WordRef identifie un mot pour la sélection : le couple (id de segment,
// start du mot). PAS l'index du mot — les suppressions dans d'autres segments
// décalent les indices, l'identité doit y survivre. Clé composite typée,
// jamais une concaténation de chaînes (collisions de formatage flottant).
type WordRef struct {
	SegmentID int64
	Start     float64
}

// Ref construit la référence de sélection du mot w appartenant au segment s.
func (s Segment) Ref(w Word) WordRef {
	return WordRef{SegmentID: s.ID, Start: w.Start}
}
