package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/patrickprogramme/scriptcut/internal/assets"
	"github.com/patrickprogramme/scriptcut/internal/fsutil"
	"gopkg.in/yaml.v3"
)

const CurrentConfigVersion = 1

// struct pour les paramètres de configuration
type Config struct {
	// Chemins
	OutputDir string `yaml:"output_dir"`

	// Organisation
	SaveInSubdir bool `yaml:"save_in_subdir"`

	// Transcription
	SaveRawResponse bool `yaml:"save_raw_response"`

	// Exports demandés par défaut (srt, xml, json)
	ExportFormats []string `yaml:"export_formats"`

	// Tri initial optionnel appliqué au transcript reçu ("" = ordre producteur)
	SortField string `yaml:"sort_field"`

	// Presse-papier
	CopySRTToClipboard bool `yaml:"copy_srt_to_clipboard"`

	// Backend de transcription
	API struct {
		BaseURL        string   `yaml:"base_url"`
		TimeoutSeconds int      `yaml:"timeout_seconds"`
		MaxUploadMB    int64    `yaml:"max_upload_mb"`
		VideoTypes     []string `yaml:"video_types"`
		AudioTypes     []string `yaml:"audio_types"`
	} `yaml:"api"`

	// Vérification de mise à jour au lancement
	AutoUpdateCheck bool `yaml:"auto_update_check"`

	ConfigVersion int `yaml:"config_version"`

	configFilePath string
}

// Configuration par défaut (fallback si l'asset embarqué est manquant)
func defaultConfig() *Config {
	c := &Config{}

	// Chemins
	c.OutputDir = "."

	// Organisation
	c.SaveInSubdir = true

	// Transcription
	c.SaveRawResponse = false

	// Exports
	c.ExportFormats = []string{"srt", "json"}
	c.SortField = ""

	// Presse-papier
	c.CopySRTToClipboard = false

	// Backend
	c.API.BaseURL = "http://localhost:5000"
	c.API.TimeoutSeconds = 60
	c.API.MaxUploadMB = 500
	c.API.VideoTypes = []string{"video/mp4", "video/mov", "video/avi", "video/webm"}
	c.API.AudioTypes = []string{"audio/mp3", "audio/wav", "audio/m4a", "audio/aac"}

	c.AutoUpdateCheck = false

	c.ConfigVersion = CurrentConfigVersion

	return c
}

// Load lit la config; si le fichier n'existe pas, on copie l'exemple embarqué depuis internal/assets
func Load(path string) (*Config, error) {
	if path == "" {
		path = "scriptcut.yaml"
	}

	// si le fichier n'existe pas -> essayer de créer à partir de l'asset embarqué
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := createDefaultConfigFromEmbedded(path); err != nil {
			return nil, fmt.Errorf("échec de création du fichier de configuration par défaut : %w", err)
		}
	}

	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("lecture du fichier de configuration %s impossible : %w", path, err)
	}

	// corriger les chemins Windows avec des backslashes
	data = bytes.ReplaceAll(data, []byte(`\`), []byte(`/`))

	// On déserialise dans cfg initialisé : les champs absents conservent les valeurs par défaut.
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("analyse du fichier de configuration %s impossible : %w", path, err)
	}
	cfg.configFilePath = path

	cfg.normalizeConfig()

	// gestion de version : si le fichier est plus ancien -> orchestrer la mise à jour
	if cfg.ConfigVersion < CurrentConfigVersion {
		if err := orchestrateConfigUpgrade(cfg, cfg.ConfigVersion); err != nil {
			return nil, fmt.Errorf("échec de mise à niveau de la configuration : %w", err)
		}
		// re-normaliser au cas où la migration a modifié des valeurs
		cfg.normalizeConfig()
	}

	return cfg, nil
}

func createDefaultConfigFromEmbedded(dstPath string) error {
	b, err := assets.Embedded.ReadFile(assets.DefaultConfigAsset)
	if err != nil {
		return fmt.Errorf("lecture du modèle de configuration embarqué impossible : %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(dstPath), 0o755); err != nil {
		return fmt.Errorf("échec mkdir pour la configuration %s : %w", filepath.Dir(dstPath), err)
	}

	// écrire atomiquement sur disque (évite les fichiers partiels)
	if err := fsutil.WriteFileAtomic(dstPath, b, 0o644); err != nil {
		return fmt.Errorf("échec d'écriture du fichier de configuration %s : %w", dstPath, err)
	}

	fmt.Printf("info : fichier de configuration par défaut créé : %s\n", dstPath)
	return nil
}

func (c *Config) normalizeConfig() {
	// Nettoyage des chemins
	c.OutputDir = filepath.Clean(c.OutputDir)

	// URL du backend : pas de slash final
	c.API.BaseURL = strings.TrimRight(strings.TrimSpace(c.API.BaseURL), "/")
	if c.API.BaseURL == "" {
		c.API.BaseURL = "http://localhost:5000"
	}

	if c.API.TimeoutSeconds <= 0 {
		c.API.TimeoutSeconds = 60
	}
	if c.API.MaxUploadMB <= 0 {
		c.API.MaxUploadMB = 500
	}

	// formats en minuscules, sans doublons
	seen := make(map[string]struct{}, len(c.ExportFormats))
	formats := make([]string, 0, len(c.ExportFormats))
	for _, f := range c.ExportFormats {
		f = strings.TrimSpace(strings.ToLower(f))
		if f == "" {
			continue
		}
		if _, dup := seen[f]; dup {
			continue
		}
		seen[f] = struct{}{}
		formats = append(formats, f)
	}
	if len(formats) == 0 {
		formats = []string{"srt", "json"}
	}
	c.ExportFormats = formats

	c.SortField = strings.TrimSpace(strings.ToLower(c.SortField))
}

// MaxUploadBytes retourne la limite d'upload en octets.
func (c *Config) MaxUploadBytes() int64 {
	return c.API.MaxUploadMB * 1024 * 1024
}
