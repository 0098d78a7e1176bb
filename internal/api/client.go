// Package api est le client du service de transcription externe
// (collaborateur hors périmètre : upload du média, traitement whisper +
// diarisation, retour de la liste de segments horodatés).
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/patrickprogramme/scriptcut/pkg/model"
)

// Endpoints du backend (contrat épinglé avec le serveur).
const (
	endpointHealth  = "/health"
	endpointUpload  = "/api/upload"
	endpointProcess = "/api/process"
)

const uploadTimeout = 30 * time.Minute

// ProgressFunc reçoit un pourcentage entier [0,100], zéro ou plusieurs fois
// avant la fin de l'upload. Pas d'annulation en cours de route : une requête
// émise va jusqu'au bout ou échoue.
type ProgressFunc func(percent int)

// Options de construction du client, issues de la config.
type Options struct {
	Timeout        time.Duration // requêtes hors upload
	MaxUploadBytes int64
	VideoTypes     []string // types MIME vidéo acceptés
	AudioTypes     []string // types MIME audio acceptés
}

// Client parle au backend de transcription. Construire via New.
type Client struct {
	baseURL string
	http    *http.Client
	opts    Options
}

// New construit un client pour le backend à baseURL (ex: "http://localhost:5000").
func New(baseURL string, opts Options) *Client {
	if opts.Timeout <= 0 {
		opts.Timeout = 60 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		opts:    opts,
	}
}

// Health vérifie que le backend répond. Erreur parlante si le serveur n'est
// pas lancé (cas le plus fréquent en local).
func (c *Client) Health(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, c.opts.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+endpointHealth, nil)
	if err != nil {
		return fmt.Errorf("health: new request: %w", err)
	}
	c.decorate(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("impossible de joindre le backend %s (est-il lancé ?): %w", c.baseURL, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("health: statut inattendu %s", resp.Status)
	}
	return nil
}

// ValidateFile vérifie taille et type MIME AVANT toute tentative d'upload.
// Retourne un *ValidationError listant toutes les raisons du refus.
func (c *Client) ValidateFile(path string) error {
	var reasons []string

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if c.opts.MaxUploadBytes > 0 && info.Size() > c.opts.MaxUploadBytes {
		reasons = append(reasons, fmt.Sprintf(
			"taille %.1fMB au-dessus de la limite %.0fMB",
			float64(info.Size())/1024/1024,
			float64(c.opts.MaxUploadBytes)/1024/1024))
	}

	mimeType := MIMEFromExt(filepath.Ext(path))
	if !contains(c.opts.VideoTypes, mimeType) && !contains(c.opts.AudioTypes, mimeType) {
		reasons = append(reasons, fmt.Sprintf("type %s non supporté", mimeType))
	}

	if len(reasons) > 0 {
		return &ValidationError{Reasons: reasons}
	}
	return nil
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

// MIMEFromExt retourne le type MIME des extensions audio/vidéo courantes.
func MIMEFromExt(ext string) string {
	switch strings.ToLower(ext) {
	case ".mp4":
		return "video/mp4"
	case ".mov":
		return "video/mov"
	case ".avi":
		return "video/avi"
	case ".webm":
		return "video/webm"
	case ".mp3":
		return "audio/mp3"
	case ".wav":
		return "audio/wav"
	case ".m4a":
		return "audio/m4a"
	case ".aac":
		return "audio/aac"
	default:
		return "application/octet-stream"
	}
}

// progressReader enveloppe la lecture du fichier et pousse le pourcentage.
type progressReader struct {
	reader   io.Reader
	total    int64
	read     int64
	callback ProgressFunc
}

func (pr *progressReader) Read(p []byte) (int, error) {
	n, err := pr.reader.Read(p)
	pr.read += int64(n)
	if pr.callback != nil && pr.total > 0 {
		pr.callback(int(pr.read * 100 / pr.total))
	}
	return n, err
}

type uploadResponse struct {
	Success  bool   `json:"success"`
	FilePath string `json:"file_path"`
	Error    string `json:"error"`
}

// Upload envoie le fichier en multipart et retourne le file_path côté
// backend, à passer ensuite à Process. onProgress peut être nil.
func (c *Client) Upload(ctx context.Context, path string, onProgress ProgressFunc) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", &UploadError{Err: fmt.Errorf("open file: %w", err)}
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return "", &UploadError{Err: fmt.Errorf("stat file: %w", err)}
	}

	// corps multipart construit en streaming via un pipe
	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)

	go func() {
		defer pw.Close()
		defer mw.Close()

		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, filepath.Base(path)))
		h.Set("Content-Type", MIMEFromExt(filepath.Ext(path)))
		part, err := mw.CreatePart(h)
		if err != nil {
			pw.CloseWithError(err)
			return
		}
		src := &progressReader{reader: f, total: stat.Size(), callback: onProgress}
		if _, err := io.Copy(part, src); err != nil {
			pw.CloseWithError(err)
			return
		}
	}()

	ctx, cancel := context.WithTimeout(ctx, uploadTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+endpointUpload, pr)
	if err != nil {
		return "", &UploadError{Err: fmt.Errorf("new request: %w", err)}
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	c.decorate(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", &UploadError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &UploadError{Err: fmt.Errorf("read response: %w", err)}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &UploadError{Err: fmt.Errorf("statut %s: %s", resp.Status, previewBytes(body, 200))}
	}

	var ur uploadResponse
	if err := json.Unmarshal(body, &ur); err != nil {
		return "", &UploadError{Err: fmt.Errorf("decode response: %w", err)}
	}
	if !ur.Success {
		msg := ur.Error
		if msg == "" {
			msg = "upload refusé par le backend"
		}
		return "", &UploadError{Err: fmt.Errorf("%s", msg)}
	}
	return ur.FilePath, nil
}

// processResponse : contrat épinglé avec le backend. Success est un pointeur
// pour distinguer "absent" de "false" — une réponse sans success NI
// transcript est malformée et traitée en ProcessingError avec écho du brut.
// Plus de décodage "au jugé" de la forme de la réponse.
type processResponse struct {
	Success    *bool           `json:"success"`
	Transcript []model.Segment `json:"transcript"`
	Error      string          `json:"error"`
}

// ProcessResult : la liste de segments et le payload brut (conservé pour la
// sauvegarde optionnelle de la réponse).
type ProcessResult struct {
	Segments []model.Segment
	Raw      []byte
}

// Process demande la transcription du fichier uploadé. Requête unique,
// bloquante du point de vue de l'appelant, sans reprise automatique.
func (c *Client) Process(ctx context.Context, filePath string) (*ProcessResult, error) {
	payload, err := json.Marshal(map[string]string{"file_path": filePath})
	if err != nil {
		return nil, fmt.Errorf("process: encode request: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.opts.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+endpointProcess, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("process: new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	c.decorate(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &ProcessingError{Message: err.Error()}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &ProcessingError{Message: fmt.Sprintf("read response: %v", err)}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &ProcessingError{Message: "statut " + resp.Status, Raw: body}
	}

	var prr processResponse
	if err := json.Unmarshal(body, &prr); err != nil {
		return nil, &ProcessingError{Message: "réponse non-JSON", Raw: body}
	}

	// échec explicite du backend
	if prr.Success != nil && !*prr.Success {
		msg := prr.Error
		if msg == "" {
			msg = "erreur inconnue"
		}
		return nil, &ProcessingError{Message: msg}
	}
	// réponse malformée : ni success ni transcript
	if prr.Success == nil && prr.Transcript == nil {
		return nil, &ProcessingError{Message: "réponse invalide du serveur", Raw: body}
	}

	return &ProcessResult{Segments: prr.Transcript, Raw: body}, nil
}

// decorate ajoute les en-têtes communs (traçabilité des requêtes).
func (c *Client) decorate(req *http.Request) {
	req.Header.Set("User-Agent", "ScriptCut/1.0")
	req.Header.Set("X-Request-ID", uuid.NewString())
}
