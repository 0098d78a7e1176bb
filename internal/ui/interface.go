package ui

import "context"

// Progress rapporte l'avancement d'une opération longue (upload).
type Progress interface {
	// Set positionne le pourcentage courant [0,100].
	Set(percent int)
	// Finish termine la barre (appelé même en cas d'échec).
	Finish()
}

type Interface interface {
	// GetInputPath doit renvoyer un chemin de fichier existant.
	// Implémentation terminale : prompt avec re-essai.
	GetInputPath(ctx context.Context) (string, error)

	PrintInfo(ctx context.Context, s string)
	PrintError(ctx context.Context, s string)

	// StartProgress démarre une barre de progression étiquetée.
	StartProgress(label string) Progress
}
