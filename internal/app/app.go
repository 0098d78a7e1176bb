package app

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/patrickprogramme/scriptcut/internal/api"
	"github.com/patrickprogramme/scriptcut/internal/clipboard"
	"github.com/patrickprogramme/scriptcut/internal/config"
	"github.com/patrickprogramme/scriptcut/internal/export"
	"github.com/patrickprogramme/scriptcut/internal/fsutil"
	"github.com/patrickprogramme/scriptcut/internal/transcript"
	"github.com/patrickprogramme/scriptcut/internal/ui"
	"github.com/patrickprogramme/scriptcut/internal/updater"
	"github.com/patrickprogramme/scriptcut/pkg/model"
)

// Version locale, comparée au tag de la dernière release GitHub.
const Version = "v0.2.0"

const (
	defaultUpdateTimeout = 15 * time.Second
	filePerm             = 0o644
)

// CLIFlags contient les informations venant des flags de l'app
type CLIFlags struct {
	ConfigPath string
	InputPath  string
	Formats    string // "srt,json" — vide = formats de la config
	SortField  string // tri appliqué après réception — vide = config
	DropIDs    string // segments à exclure de l'export, ex: "3,5"
	CutWords   string // mots à supprimer (mode mot), ex: "3:24.1,7:2.5"
	OutDir     string // écrase output_dir de la config si non vide
}

// App orchestre les différentes dépendances (UI, client API, renderer...)
type App struct {
	cfg      *config.Config
	ui       ui.Interface
	flags    *CLIFlags
	client   *api.Client
	renderer *export.FCPXMLRenderer
}

// New construit l'application en injectant les dépendances.
// Pour les tests, on préférera construire App avec des implémentations mock.
func New(cfg *config.Config, uiClient ui.Interface, flags *CLIFlags, client *api.Client, renderer *export.FCPXMLRenderer) *App {
	return &App{
		cfg:      cfg,
		ui:       uiClient,
		flags:    flags,
		client:   client,
		renderer: renderer,
	}
}

// Run exécute le flux principal : validation, upload, transcription, édition,
// exports. Les échecs sont tous remontés à l'utilisateur ; aucun n'est
// retenté automatiquement.
func (a *App) Run(ctx context.Context) error {
	// Récupération du fichier d'entrée : priorité flag > prompt
	inputPath := a.flags.InputPath
	if inputPath == "" {
		p, err := a.ui.GetInputPath(ctx)
		if err != nil {
			return fmt.Errorf("get input: %w", err)
		}
		inputPath = p
	}

	// Update check (optionnel)
	if a.cfg.AutoUpdateCheck {
		a.updateCheck(ctx)
	}

	// Validation locale AVANT toute requête réseau
	if err := a.client.ValidateFile(inputPath); err != nil {
		var verr *api.ValidationError
		if errors.As(err, &verr) {
			a.ui.PrintError(ctx, "❌ "+verr.Error())
			return err
		}
		return fmt.Errorf("validate %s: %w", inputPath, err)
	}

	// Le backend répond-il ?
	if err := a.client.Health(ctx); err != nil {
		a.ui.PrintError(ctx, "❌ "+err.Error())
		return err
	}

	// Upload avec progression
	a.ui.PrintInfo(ctx, fmt.Sprintf("📤 Upload de %s", filepath.Base(inputPath)))
	bar := a.ui.StartProgress("upload")
	remotePath, err := a.client.Upload(ctx, inputPath, bar.Set)
	bar.Finish()
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return fmt.Errorf("opération annulée")
		}
		a.ui.PrintError(ctx, "❌ "+err.Error())
		return err
	}

	// Transcription (requête unique, pas d'abandon en vol)
	a.ui.PrintInfo(ctx, "🤖 Transcription en cours...")
	result, err := a.client.Process(ctx, remotePath)
	if err != nil {
		a.ui.PrintError(ctx, "❌ "+err.Error())
		return err
	}
	a.ui.PrintInfo(ctx, fmt.Sprintf("✅ %d segments reçus", len(result.Segments)))

	// Session d'édition : unique propriétaire du transcript en mémoire
	session := transcript.NewSession()
	session.SetTranscript(result.Segments)

	if err := a.applyEdits(session); err != nil {
		return err
	}

	// Dossier de sortie
	outDir := a.flags.OutDir
	if outDir == "" {
		outDir = a.cfg.OutputDir
	}
	if a.cfg.SaveInSubdir {
		base := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
		outDir = filepath.Join(outDir, fsutil.SanitizeFilename(base))
	}

	// Réponse brute pour debug, si demandé
	if a.cfg.SaveRawResponse {
		rawPath := filepath.Join(outDir, "transcript.raw.json")
		if werr := fsutil.WriteFileAtomic(rawPath, result.Raw, filePerm); werr != nil {
			return fmt.Errorf("write raw response: %w", werr)
		}
	}

	return a.runExports(ctx, session, outDir)
}

// applyEdits applique le tri et les suppressions demandés par les flags.
func (a *App) applyEdits(session *transcript.Session) error {
	// tri : flag prioritaire sur la config
	sortField := a.flags.SortField
	if sortField == "" {
		sortField = a.cfg.SortField
	}
	if sortField != "" {
		field, err := model.ParseSortField(sortField)
		if err != nil {
			return err
		}
		if err := session.Sort(field); err != nil {
			return err
		}
	}

	// suppression de mots : sémantique mode mot (recalcul du texte,
	// abandon des segments vidés)
	if a.flags.CutWords != "" {
		refs, err := ParseWordRefs(a.flags.CutWords)
		if err != nil {
			return err
		}
		session.SetViewMode(model.ViewWords)
		for _, ref := range refs {
			session.ToggleWord(ref)
		}
		session.DeleteSelected()
		session.SetViewMode(model.ViewSentences)
	}

	// segments à exclure : simple marquage, l'export filtre sans supprimer
	if a.flags.DropIDs != "" {
		ids, err := ParseSegmentIDs(a.flags.DropIDs)
		if err != nil {
			return err
		}
		for _, id := range ids {
			session.ToggleSegment(id)
		}
	}
	return nil
}

// runExports génère et écrit chaque format demandé à partir de la liste
// filtrée par la sélection.
func (a *App) runExports(ctx context.Context, session *transcript.Session, outDir string) error {
	formats := a.cfg.ExportFormats
	if a.flags.Formats != "" {
		formats = strings.Split(a.flags.Formats, ",")
	}

	segments := session.ExportSegments()
	excluded := session.SelectedSegmentCount()
	a.ui.PrintInfo(ctx, fmt.Sprintf("📊 Export de %d segments (%d exclus)", len(segments), excluded))

	for _, raw := range formats {
		format, err := model.ParseFormat(strings.TrimSpace(strings.ToLower(raw)))
		if err != nil {
			return err
		}

		// stub : l'encodage vidéo réel est délégué au backend
		if !format.IsFile() {
			a.ui.PrintInfo(ctx, "🎬 Export vidéo demandé au backend (aucun fichier local)")
			continue
		}

		content, err := a.generate(format, segments)
		if err != nil {
			return err
		}

		path := filepath.Join(outDir, format.Filename())
		if werr := fsutil.WriteFileAtomic(path, []byte(content), filePerm); werr != nil {
			return fmt.Errorf("write export %s: %w", path, werr)
		}
		a.ui.PrintInfo(ctx, fmt.Sprintf("💾 %s écrit (%s)", path, format.MIME()))

		if format == model.FormatSRT && a.cfg.CopySRTToClipboard {
			if cerr := clipboard.WriteAll(content); cerr != nil {
				// non fatal
				a.ui.PrintError(ctx, "presse-papier inaccessible: "+cerr.Error())
			} else if !clipboard.Equals(content) {
				a.ui.PrintError(ctx, "copie dans le presse-papier non confirmée")
			} else {
				a.ui.PrintInfo(ctx, "📋 SRT copié dans le presse-papier")
			}
		}
	}
	return nil
}

// generate produit le contenu du format demandé à partir de la liste filtrée.
func (a *App) generate(format model.Format, segments []model.Segment) (string, error) {
	switch format {
	case model.FormatSRT:
		return export.GenerateSRT(segments), nil
	case model.FormatJSON:
		return export.GenerateJSON(segments)
	case model.FormatXML:
		opts := export.FCPXMLOptions{
			EventName: "ScriptCut_Export_" + time.Now().Format("2006-01-02"),
		}
		return a.renderer.Generate(segments, opts)
	default:
		return "", fmt.Errorf("format non exportable: %s", format)
	}
}

// updateCheck signale une nouvelle release, sans bloquer le flux en cas d'échec.
func (a *App) updateCheck(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, defaultUpdateTimeout)
	defer cancel()

	check, err := updater.CheckForUpdate(ctx, Version)
	if err != nil {
		a.ui.PrintError(ctx, "update check: "+err.Error())
		return
	}
	if !check.IsUpToDate {
		a.ui.PrintInfo(ctx, fmt.Sprintf("⬆️  Nouvelle version disponible : %s (%s)",
			check.LatestRelease.TagName, check.LatestRelease.HTMLURL))
	}
}
