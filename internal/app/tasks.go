package app

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/patrickprogramme/scriptcut/pkg/model"
)

// ParseSegmentIDs analyse une liste d'identifiants de segments séparés par
// des virgules, ex: "1,3,12". Les doublons sont conservés : appliqués via
// toggle, deux occurrences s'annulent.
func ParseSegmentIDs(s string) ([]int64, error) {
	parts := strings.Split(s, ",")
	ids := make([]int64, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("identifiant de segment invalide %q", part)
		}
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return nil, fmt.Errorf("aucun identifiant de segment dans %q", s)
	}
	return ids, nil
}

// ParseWordRefs analyse une liste de références de mots "segment:début",
// ex: "3:24.1,3:24.5". Le début est le timestamp du mot dans le segment.
func ParseWordRefs(s string) ([]model.WordRef, error) {
	parts := strings.Split(s, ",")
	refs := make([]model.WordRef, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		segStr, startStr, found := strings.Cut(part, ":")
		if !found {
			return nil, fmt.Errorf("référence de mot invalide %q (attendu segment:début)", part)
		}
		segID, err := strconv.ParseInt(strings.TrimSpace(segStr), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("identifiant de segment invalide dans %q", part)
		}
		start, err := strconv.ParseFloat(strings.TrimSpace(startStr), 64)
		if err != nil {
			return nil, fmt.Errorf("timestamp invalide dans %q", part)
		}
		refs = append(refs, model.WordRef{SegmentID: segID, Start: start})
	}
	if len(refs) == 0 {
		return nil, fmt.Errorf("aucune référence de mot dans %q", s)
	}
	return refs, nil
}
