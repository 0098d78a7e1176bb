package model

import "fmt"

// ViewMode : granularité d'affichage du transcript.
// Pure projection de rendu — les deux modes lisent la même liste de segments.
type ViewMode string

const (
	ViewSentences ViewMode = "sentences"
	ViewWords     ViewMode = "words"
)

func ParseViewMode(s string) (ViewMode, error) {
	switch s {
	case "sentences":
		return ViewSentences, nil
	case "words":
		return ViewWords, nil
	default:
		return "", fmt.Errorf("mode d'affichage inconnu: %s", s)
	}
}

// SortField : champ de tri du transcript.
type SortField string

const (
	SortByStart   SortField = "start"
	SortByEnd     SortField = "end"
	SortBySpeaker SortField = "speaker"
	SortByText    SortField = "text"
	SortByTopic   SortField = "topic"
)

// ParseSortField convertit la chaîne en constante SortField, erreur si champ inconnu.
func ParseSortField(s string) (SortField, error) {
	switch s {
	case "start", "time":
		// "time" est l'alias historique de l'UI pour le début de segment
		return SortByStart, nil
	case "end":
		return SortByEnd, nil
	case "speaker":
		return SortBySpeaker, nil
	case "text":
		return SortByText, nil
	case "topic":
		return SortByTopic, nil
	default:
		return "", fmt.Errorf("champ de tri inconnu: %s", s)
	}
}

// IsNumeric : start et end se comparent numériquement, tout le reste en
// chaînes avec prise en compte de la locale.
func (f SortField) IsNumeric() bool {
	return f == SortByStart || f == SortByEnd
}

// SortOrder : sens du tri.
type SortOrder string

const (
	OrderAsc  SortOrder = "asc"
	OrderDesc SortOrder = "desc"
)

// constantes pour les formats d'export
type Format string

const (
	FormatVideo Format = "video"
	FormatXML   Format = "xml"
	FormatSRT   Format = "srt"
	FormatJSON  Format = "json"
)

// ParseFormat convertit la chaîne en constante Format, erreur si format inconnu.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "video":
		return FormatVideo, nil
	case "xml", "fcpxml":
		return FormatXML, nil
	case "srt":
		return FormatSRT, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("format demandé inconnu: %s", s)
	}
}

// Filename retourne le nom de fichier de sortie fixé pour le format.
func (f Format) Filename() string {
	switch f {
	case FormatXML:
		return "project.fcpxml"
	case FormatSRT:
		return "subtitles.srt"
	case FormatJSON:
		return "transcript.json"
	default:
		return ""
	}
}

// MIME retourne le type MIME associé au fichier exporté.
func (f Format) MIME() string {
	switch f {
	case FormatXML:
		return "application/xml"
	case FormatSRT:
		return "text/plain"
	case FormatJSON:
		return "application/json"
	default:
		return ""
	}
}

// IsFile indique si le format produit un fichier. Le format video est un stub
// qui se contente de notifier l'utilisateur (l'encodage réel est délégué au backend).
func (f Format) IsFile() bool {
	return f == FormatXML || f == FormatSRT || f == FormatJSON
}

func (f Format) String() string {
	return string(f)
}
