// Package fetch fournit des utilitaires légers et testables pour interroger
// des ressources HTTP (releases GitHub).
package fetch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const (
	DefaultTimeout   = 15 * time.Second
	DefaultMaxBytes  = 10_000_000
	DefaultUserAgent = "ScriptCut/1.0"
)

// Erreurs exportées
var (
	ErrStatus   = errors.New("unexpected HTTP status")
	ErrTooLarge = errors.New("response body too large")
)

// Bytes télécharge rawURL et retourne le corps de la réponse.
// - ctx peut être nil.
// - timeout/maxBytes : si <=0 on utilise les defaults du package.
// Lit tout en mémoire (OK pour du JSON d'API).
func Bytes(ctx context.Context, rawURL string, timeout time.Duration, maxBytes int64) ([]byte, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}

	// valider l'URL tôt
	if _, err := url.ParseRequestURI(rawURL); err != nil {
		return nil, fmt.Errorf("fetch: invalid url %q: %w", rawURL, err)
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch: new request: %w", err)
	}
	req.Header.Set("User-Agent", DefaultUserAgent)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("fetch: %w: %s", ErrStatus, resp.Status)
	}

	// échec rapide si Content-Length annonce déjà un dépassement
	if resp.ContentLength > 0 && resp.ContentLength > maxBytes {
		return nil, fmt.Errorf("fetch: content-length %d exceeds limit %d: %w", resp.ContentLength, maxBytes, ErrTooLarge)
	}

	r := io.LimitReader(resp.Body, maxBytes+1) // +1 pour détecter dépassement
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("fetch: read body: %w", err)
	}
	if int64(len(data)) > maxBytes {
		return nil, ErrTooLarge
	}
	return data, nil
}

// JSONInto télécharge rawURL via Bytes (mêmes defaults, même garde de taille)
// et décode le JSON directement dans dst (dst doit être un pointeur).
func JSONInto(ctx context.Context, rawURL string, timeout time.Duration, maxBytes int64, dst interface{}) error {
	data, err := Bytes(ctx, rawURL, timeout, maxBytes)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("fetch json: decode: %w", err)
	}
	return nil
}
