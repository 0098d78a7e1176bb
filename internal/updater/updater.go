// Package updater vérifie auprès de GitHub si une version plus récente de
// scriptcut est disponible. Purement informatif : aucun téléchargement.
package updater

import (
	"context"
	"fmt"
	"time"

	"github.com/patrickprogramme/scriptcut/pkg/github"
)

const (
	repoOwner = "patrickprogramme"
	repoName  = "scriptcut"
)

// ReleaseInfo contient les métadonnées de la dernière release publiée.
type ReleaseInfo struct {
	TagName     string    `json:"tag_name"`
	Name        string    `json:"name"`
	PublishedAt time.Time `json:"published_at"`
	HTMLURL     string    `json:"html_url"`
}

// UpdateCheck contient le résultat de la comparaison
type UpdateCheck struct {
	CurrentVersion string
	LatestRelease  *ReleaseInfo
	IsUpToDate     bool // true si CurrentVersion == LatestRelease.TagName
}

// GetLatestRelease récupère et décode la dernière release du dépôt scriptcut.
func GetLatestRelease(ctx context.Context) (*ReleaseInfo, error) {
	var info ReleaseInfo
	if err := github.FetchLatestRelease(ctx, repoOwner, repoName, &info); err != nil {
		return nil, err
	}
	if info.TagName == "" {
		return nil, fmt.Errorf("release sans tag_name")
	}
	return &info, nil
}

// CheckForUpdate compare la version locale et la dernière release GitHub.
func CheckForUpdate(ctx context.Context, localVer string) (*UpdateCheck, error) {
	latest, err := GetLatestRelease(ctx)
	if err != nil {
		return nil, fmt.Errorf("impossible de récupérer la release GitHub : %w", err)
	}

	return &UpdateCheck{
		CurrentVersion: localVer,
		LatestRelease:  latest,
		IsUpToDate:     localVer == latest.TagName,
	}, nil
}
