package config

import (
	"fmt"
	"net/url"

	"github.com/patrickprogramme/scriptcut/pkg/model"
)

// Validate vérifie statiquement la configuration chargée.
// Retourne warnings (non-fataux) et une erreur si c'est critique.
func (c *Config) Validate() (warnings []string, err error) {
	if c == nil {
		return nil, fmt.Errorf("config nil")
	}

	// l'URL du backend doit au moins se parser
	if _, perr := url.ParseRequestURI(c.API.BaseURL); perr != nil {
		return warnings, fmt.Errorf("api.base_url invalide %q : %w", c.API.BaseURL, perr)
	}

	// formats d'export connus ?
	for _, f := range c.ExportFormats {
		if _, perr := model.ParseFormat(f); perr != nil {
			return warnings, fmt.Errorf("export_formats : %w", perr)
		}
	}

	// champ de tri initial connu ? (vide = pas de tri, c'est valide)
	if c.SortField != "" {
		if _, perr := model.ParseSortField(c.SortField); perr != nil {
			return warnings, fmt.Errorf("sort_field : %w", perr)
		}
	}

	if len(c.API.VideoTypes) == 0 && len(c.API.AudioTypes) == 0 {
		warnings = append(warnings, "aucun type MIME accepté : tous les fichiers seront refusés à la validation")
	}
	if c.API.MaxUploadMB > 2000 {
		warnings = append(warnings, fmt.Sprintf("limite d'upload très élevée (%dMB)", c.API.MaxUploadMB))
	}

	return warnings, nil
}
