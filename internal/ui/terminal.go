package ui

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/schollz/progressbar/v3"
)

type terminalUI struct {
	reader *bufio.Reader
}

func NewTerminal() Interface {
	return &terminalUI{reader: bufio.NewReader(os.Stdin)}
}

// GetInputPath demande un chemin de fichier média jusqu'à obtenir un fichier
// existant (ou l'annulation du contexte).
func (t *terminalUI) GetInputPath(ctx context.Context) (string, error) {
	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		fmt.Print("Chemin du fichier média à transcrire : ")
		input, err := t.reader.ReadString('\n')
		if err != nil {
			return "", fmt.Errorf("lecture stdin: %w", err)
		}
		path := strings.TrimSpace(input)
		if path == "" {
			continue
		}
		if st, serr := os.Stat(path); serr == nil && !st.IsDir() {
			return path, nil
		}
		fmt.Println("❌ Fichier introuvable. Essayez à nouveau.")
	}
}

func (t *terminalUI) PrintInfo(ctx context.Context, s string) {
	fmt.Println(s)
}

func (t *terminalUI) PrintError(ctx context.Context, s string) {
	fmt.Fprintln(os.Stderr, s)
}

// barProgress adapte progressbar au contrat Progress (pourcentage entier).
type barProgress struct {
	bar *progressbar.ProgressBar
}

func (b *barProgress) Set(percent int) {
	_ = b.bar.Set(percent)
}

func (b *barProgress) Finish() {
	_ = b.bar.Finish()
	fmt.Println()
}

func (t *terminalUI) StartProgress(label string) Progress {
	bar := progressbar.NewOptions(100,
		progressbar.OptionSetDescription(label),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
	return &barProgress{bar: bar}
}
