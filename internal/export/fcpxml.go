package export

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"text/template"

	"github.com/patrickprogramme/scriptcut/internal/assets"
	"github.com/patrickprogramme/scriptcut/pkg/model"
)

// FCPXMLOptions paramètre le squelette du projet généré. La date d'export
// fait partie des options (fournie par l'appelant) : le générateur reste
// déterministe à entrée identique.
type FCPXMLOptions struct {
	EventName   string // ex: "ScriptCut_Export_2026-08-30"
	ProjectName string
}

func (o *FCPXMLOptions) normalize() {
	if o.EventName == "" {
		o.EventName = "ScriptCut_Export"
	}
	if o.ProjectName == "" {
		o.ProjectName = "ScriptCut_Edited_Video"
	}
}

// fcpClip : une entrée de clip par segment filtré. offset/duration/start sont
// calculés directement depuis start et end-start, en secondes suffixées "s".
type fcpClip struct {
	Name     string
	Offset   string
	Duration string
	Speaker  string
	Text     string
}

type fcpData struct {
	EventName   string
	ProjectName string
	Clips       []fcpClip
}

// FCPXMLRenderer rend le document via un template (embarqué par défaut,
// remplaçable par un fichier sur disque à côté du binaire).
type FCPXMLRenderer struct {
	tpl *template.Template
}

var tmplFuncs = template.FuncMap{
	"xml": xmlEscape,
}

// DefaultFCPXMLRenderer construit le renderer depuis le template embarqué.
func DefaultFCPXMLRenderer() (*FCPXMLRenderer, error) {
	data, err := assets.Embedded.ReadFile(assets.FCPXMLTemplateAsset)
	if err != nil {
		return nil, fmt.Errorf("lecture du template fcpxml embarqué impossible : %w", err)
	}
	return newRendererFromBytes(data)
}

// NewFCPXMLRenderer charge "fcpxml.tmpl" depuis tplDir si présent, sinon
// retombe sur le template embarqué. Même logique de repli que pour la config.
func NewFCPXMLRenderer(tplDir string) (*FCPXMLRenderer, error) {
	path := filepath.Join(tplDir, "fcpxml.tmpl")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultFCPXMLRenderer()
		}
		return nil, fmt.Errorf("lecture du template %s impossible : %w", path, err)
	}
	return newRendererFromBytes(data)
}

func newRendererFromBytes(data []byte) (*FCPXMLRenderer, error) {
	tpl, err := template.New("fcpxml").Funcs(tmplFuncs).Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("analyse du template fcpxml impossible : %w", err)
	}
	return &FCPXMLRenderer{tpl: tpl}, nil
}

// Generate produit le document FCPXML pour la liste filtrée. Squelette
// structurel volontairement simple : un seul asset partagé, un clip par
// segment, une note portant speaker et texte pour la traçabilité. L'export
// monteur réel (vidéo découpée, frame-accurate) est délégué au backend.
func (r *FCPXMLRenderer) Generate(segments []model.Segment, opts FCPXMLOptions) (string, error) {
	opts.normalize()

	data := fcpData{
		EventName:   opts.EventName,
		ProjectName: opts.ProjectName,
		Clips:       make([]fcpClip, 0, len(segments)),
	}
	for i, seg := range segments {
		data.Clips = append(data.Clips, fcpClip{
			Name:     fmt.Sprintf("segment_%d", i+1),
			Offset:   secondsAttr(seg.Start),
			Duration: secondsAttr(seg.Duration()),
			Speaker:  seg.SpeakerLabel(),
			Text:     seg.Text,
		})
	}

	var buf bytes.Buffer
	if err := r.tpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("rendu du template fcpxml : %w", err)
	}
	return buf.String(), nil
}

// GenerateFCPXML : raccourci avec le template embarqué.
func GenerateFCPXML(segments []model.Segment, opts FCPXMLOptions) (string, error) {
	r, err := DefaultFCPXMLRenderer()
	if err != nil {
		return "", err
	}
	return r.Generate(segments, opts)
}

// secondsAttr formate une valeur en secondes pour un attribut fcpxml : la
// représentation décimale la plus courte, suffixée "s" (ex: "24.1s").
func secondsAttr(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "s"
}

// xmlEscape échappe une valeur texte pour insertion dans le document.
func xmlEscape(s string) (string, error) {
	var buf bytes.Buffer
	if err := xml.EscapeText(&buf, []byte(s)); err != nil {
		return "", err
	}
	return buf.String(), nil
}
