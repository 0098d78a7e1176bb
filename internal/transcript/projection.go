package transcript

import "github.com/patrickprogramme/scriptcut/pkg/model"

// Token est un élément sélectionnable du rendu en mode mot. Quand un segment
// n'a pas de découpage mot à mot, son texte entier devient un pseudo-token
// non sélectionnable (Selectable == false, Ref sans signification).
type Token struct {
	Text       string
	Start      float64
	End        float64
	Speaker    string
	Ref        model.WordRef
	Selectable bool
}

// Row est une ligne de rendu dérivée d'un segment. Dérivation par appel,
// jamais un second état : la même liste de segments sert les deux vues.
type Row struct {
	SegmentID int64
	Text      string
	Start     float64
	End       float64
	Speaker   string
	Tokens    []Token // renseigné uniquement en mode mot
}

// Project dérive les lignes de rendu pour le mode demandé.
func Project(segments []model.Segment, mode model.ViewMode) []Row {
	if mode == model.ViewWords {
		return ProjectWords(segments)
	}
	return ProjectSentences(segments)
}

// ProjectSentences rend chaque segment comme une ligne unique utilisant Text
// directement, que Words soit renseigné ou non.
func ProjectSentences(segments []model.Segment) []Row {
	rows := make([]Row, len(segments))
	for i, seg := range segments {
		rows[i] = Row{
			SegmentID: seg.ID,
			Text:      seg.Text,
			Start:     seg.Start,
			End:       seg.End,
			Speaker:   seg.SpeakerLabel(),
		}
	}
	return rows
}

// ProjectWords rend chaque segment comme une séquence de tokens
// individuellement sélectionnables, avec repli sur le texte complet en un
// seul pseudo-token quand le segment n'a pas de mots.
func ProjectWords(segments []model.Segment) []Row {
	rows := make([]Row, len(segments))
	for i, seg := range segments {
		row := Row{
			SegmentID: seg.ID,
			Text:      seg.Text,
			Start:     seg.Start,
			End:       seg.End,
			Speaker:   seg.SpeakerLabel(),
		}
		if seg.HasWords() {
			row.Tokens = make([]Token, len(seg.Words))
			for j, w := range seg.Words {
				row.Tokens[j] = Token{
					Text:       w.Word,
					Start:      w.Start,
					End:        w.End,
					Speaker:    seg.WordSpeaker(w),
					Ref:        seg.Ref(w),
					Selectable: true,
				}
			}
		} else {
			row.Tokens = []Token{{
				Text:       seg.Text,
				Start:      seg.Start,
				End:        seg.End,
				Speaker:    seg.SpeakerLabel(),
				Selectable: false,
			}}
		}
		rows[i] = row
	}
	return rows
}
