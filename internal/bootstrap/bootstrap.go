// Package bootstrap matérialise au premier lancement les ressources
// embarquées (config, templates d'export) à côté du binaire.
package bootstrap

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/patrickprogramme/scriptcut/internal/fsutil"
)

// EnsureConfigPresent copie un fichier embarqué (assetPath dans fsys) vers dstPath
// si dstPath n'existe pas encore.
// - dstPath : chemin complet sur disque (ex: binDir/scriptcut.yaml)
// - fsys : embed.FS (ou autre fs.FS) contenant l'asset
// - assetPath : chemin dans fsys vers l'asset (ex: "scriptcut.example.yaml")
// Comportement : idempotent, ne remplace jamais un fichier existant.
func EnsureConfigPresent(dstPath string, fsys fs.FS, assetPath string) error {
	// sécurité: vérifier parent
	parent := filepath.Dir(dstPath)
	if parent == "" {
		parent = "."
	}
	if st, err := os.Stat(parent); err != nil {
		if os.IsNotExist(err) {
			if err := os.MkdirAll(parent, 0o755); err != nil {
				return fmt.Errorf("échec création répertoire parent %s: %w", parent, err)
			}
		} else {
			return fmt.Errorf("échec test parent %s: %w", parent, err)
		}
	} else if !st.IsDir() {
		return fmt.Errorf("le parent existe mais n'est pas un répertoire : %s", parent)
	}

	// si le fichier existe déjà -> ne rien faire
	if _, err := os.Stat(dstPath); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("échec stat fichier cible %s: %w", dstPath, err)
	}

	data, err := fs.ReadFile(fsys, filepath.ToSlash(assetPath))
	if err != nil {
		return fmt.Errorf("lecture asset embarqué %s: %w", assetPath, err)
	}

	if err := fsutil.WriteFileAtomic(dstPath, data, 0o644); err != nil {
		return fmt.Errorf("échec écriture config %s: %w", dstPath, err)
	}

	fmt.Printf("info: created default config at %s\n", dstPath)
	return nil
}

// EnsureTemplatesPresent s'assure que les templates listés existent sur disque.
//
// - tplDir  : dossier destination sur disque (ex: "./templates")
// - fsys    : embed.FS contenant les ressources embarquées
// - srcFiles: liste explicite de chemins DANS fsys (ex: "templates/fcpxml.tmpl")
//
// Ne remplace jamais un fichier existant : l'utilisateur peut modifier son
// template local sans risque de l'écraser à la mise à jour.
func EnsureTemplatesPresent(tplDir string, fsys fs.FS, srcFiles []string) error {
	if _, err := os.Stat(tplDir); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("échec lors du test du répertoire de templates %s : %w", tplDir, err)
		}
		if err := os.MkdirAll(tplDir, 0o755); err != nil {
			return fmt.Errorf("échec de création du répertoire de templates %s : %w", tplDir, err)
		}
	}

	for _, src := range srcFiles {
		dest := filepath.Join(tplDir, filepath.Base(src))
		if _, err := os.Stat(dest); err == nil {
			// le fichier existe déjà -> on saute
			continue
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("échec lors du test du fichier %s : %w", dest, err)
		}
		data, rerr := fs.ReadFile(fsys, filepath.ToSlash(src))
		if rerr != nil {
			return fmt.Errorf("fichier embarqué introuvable %s : %w", src, rerr)
		}
		if err := fsutil.WriteFileAtomic(dest, data, 0o644); err != nil {
			return fmt.Errorf("échec d'écriture du template %s : %w", dest, err)
		}
	}
	return nil
}
