package assets

import "embed"

//go:embed scriptcut.example.yaml
//go:embed templates/*.tmpl
var Embedded embed.FS

// Nom de l'asset de config par défaut (chemin DANS Embedded)
const DefaultConfigAsset = "scriptcut.example.yaml"

// FCPXMLTemplateAsset : chemin du template fcpxml embarqué (DANS Embedded).
const FCPXMLTemplateAsset = "templates/fcpxml.tmpl"

// DefaultTemplatePaths : templates matérialisés à côté du binaire au premier
// lancement (modifiables par l'utilisateur sans recompiler).
var DefaultTemplatePaths = []string{
	FCPXMLTemplateAsset,
}
