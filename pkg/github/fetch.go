// Package github interroge l'API publique GitHub (releases).
package github

import (
	"context"
	"fmt"

	"github.com/patrickprogramme/scriptcut/internal/fetch"
)

// FetchLatestRelease décode la dernière release d'un dépôt directement dans
// dst (pointeur vers la structure attendue par l'appelant). La garde de
// taille et le timeout par défaut de fetch s'appliquent.
func FetchLatestRelease(ctx context.Context, owner, repo string, dst interface{}) error {
	url := fmt.Sprintf("https://api.github.com/repos/%s/%s/releases/latest", owner, repo)
	if err := fetch.JSONInto(ctx, url, 0, 0, dst); err != nil {
		return fmt.Errorf("requête GitHub: %w", err)
	}
	return nil
}
