package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/patrickprogramme/scriptcut/internal/api"
	"github.com/patrickprogramme/scriptcut/internal/app"
	"github.com/patrickprogramme/scriptcut/internal/assets"
	"github.com/patrickprogramme/scriptcut/internal/bootstrap"
	"github.com/patrickprogramme/scriptcut/internal/config"
	"github.com/patrickprogramme/scriptcut/internal/export"
	"github.com/patrickprogramme/scriptcut/internal/ui"
)

func main() {
	flags := parseFlags()

	// déterminer exePath/binDir
	binDir := "."
	exePath, err := os.Executable()
	if err != nil {
		log.Printf("impossible de déterminer le chemin de l'executable: %v", err)
	} else {
		binDir = filepath.Dir(exePath)
		fmt.Printf("Lancement depuis: %s\n", exePath)
	}

	// emplacement config par défaut
	if flags.ConfigPath == "scriptcut.yaml" || flags.ConfigPath == "" {
		flags.ConfigPath = filepath.Join(binDir, "scriptcut.yaml")
	}

	// s'assurer que le fichier config existe, si non on le crée
	if err := bootstrap.EnsureConfigPresent(
		flags.ConfigPath,
		assets.Embedded,
		assets.DefaultConfigAsset,
	); err != nil {
		log.Printf("erreur: EnsureConfigPresent: %v", err)
	}

	// s'assurer que les templates existent (dans binDir/templates)
	tplDir := filepath.Join(binDir, "templates")
	if err := bootstrap.EnsureTemplatesPresent(
		tplDir,
		assets.Embedded,
		assets.DefaultTemplatePaths,
	); err != nil {
		log.Printf("warning: ensure templates present: %v", err)
	}

	// charger la config depuis flags.ConfigPath
	cfg, err := config.Load(flags.ConfigPath)
	if err != nil {
		log.Fatalf("config load: %v", err)
	}
	warnings, err := cfg.Validate()
	if err != nil {
		log.Fatalf("config invalide: %v", err)
	}
	for _, w := range warnings {
		log.Printf("warning: config: %s", w)
	}

	// client du backend de transcription
	client := api.New(cfg.API.BaseURL, api.Options{
		Timeout:        time.Duration(cfg.API.TimeoutSeconds) * time.Second,
		MaxUploadBytes: cfg.MaxUploadBytes(),
		VideoTypes:     cfg.API.VideoTypes,
		AudioTypes:     cfg.API.AudioTypes,
	})

	// construction du renderer (template local si présent, embarqué sinon)
	renderer, err := export.NewFCPXMLRenderer(tplDir)
	if err != nil {
		log.Fatalf("impossible de construire le renderer: %v", err)
	}

	// root context qui s'annule sur SIGINT / SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tui := ui.NewTerminal()
	a := app.New(cfg, tui, flags, client, renderer)
	if err := a.Run(ctx); err != nil {
		log.Fatalf("app run: %v", err)
	}
}

func parseFlags() *app.CLIFlags {
	f := &app.CLIFlags{}
	flag.StringVar(&f.ConfigPath, "config", "scriptcut.yaml", "path to config file")
	flag.StringVar(&f.InputPath, "input", "", "chemin du fichier média (optionnel, sinon prompt)")
	flag.StringVar(&f.Formats, "formats", "", "formats d'export séparés par des virgules (srt,xml,json,video)")
	flag.StringVar(&f.SortField, "sort", "", "tri du transcript (start, end, speaker, text, topic)")
	flag.StringVar(&f.DropIDs, "drop-segments", "", "segments exclus de l'export, ex: 3,5")
	flag.StringVar(&f.CutWords, "cut-words", "", "mots supprimés du transcript, ex: 3:24.1,3:24.5")
	flag.StringVar(&f.OutDir, "out", "", "dossier de sortie (écrase output_dir)")
	flag.Parse()
	return f
}
