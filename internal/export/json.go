package export

import (
	"encoding/json"
	"fmt"

	"github.com/patrickprogramme/scriptcut/pkg/model"
)

// GenerateJSON sérialise la liste filtrée avec ordre de champs stable (celui
// de la struct Segment) et indentation deux espaces. Export d'identité
// structurelle : re-parser la sortie redonne le modèle, la sélection n'étant
// pas un champ du Segment elle n'est jamais sérialisée.
func GenerateJSON(segments []model.Segment) (string, error) {
	if segments == nil {
		// une liste vide doit donner "[]", pas "null"
		segments = []model.Segment{}
	}
	out, err := json.MarshalIndent(segments, "", "  ")
	if err != nil {
		return "", fmt.Errorf("export json: encode: %w", err)
	}
	return string(out), nil
}
