package stability

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

const (
	defaultBaseURL = "https://api.stability.ai"
	defaultEngine  = "stable-diffusion-xl-1024-v1-0"
	requestTimeout = 2 * time.Minute
)

type request struct {
	TextPrompts []textPrompt `json:"text_prompts"`
	CFGScale    int          `json:"cfg_scale"`
	Height      int          `json:"height"`
	Width       int          `json:"width"`
	Samples     int          `json:"samples"`
	Steps       int          `json:"steps"`
}

type textPrompt struct {
	Text   string  `json:"text"`
	Weight float64 `json:"weight"`
}

type response struct {
	Artifacts []struct {
		Base64 string `json:"base64"`
	} `json:"artifacts"`
}

// Adapter calls the Stability text-to-image endpoint and writes the decoded
// PNG to disk. Callers handle failures with a placeholder; the adapter itself
// does not retry or fall back.
type Adapter struct {
	key     string
	baseURL string
	engine  string
	client  *http.Client
}

func New(apiKey, baseURL string) *Adapter {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Adapter{
		key:     apiKey,
		baseURL: baseURL,
		engine:  defaultEngine,
		client:  &http.Client{Timeout: 5 * time.Minute},
	}
}

func (a *Adapter) Generate(ctx context.Context, prompt, outPath string) error {
	body, err := json.Marshal(request{
		TextPrompts: []textPrompt{{Text: prompt, Weight: 1.0}},
		CFGScale:    7,
		Height:      1024,
		Width:       1024,
		Samples:     1,
		Steps:       30,
	})
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	url := a.baseURL + "/v1/generation/" + a.engine + "/text-to-image"

	reqCtx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+a.key)

	resp, err := a.client.Do(req)
	if err != nil {
		return fmt.Errorf("stability request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		rb, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("stability status %d: %s", resp.StatusCode, redact(string(rb), a.key))
	}

	var out response
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	if len(out.Artifacts) == 0 {
		return errors.New("stability: no image data in response")
	}

	img, err := base64.StdEncoding.DecodeString(out.Artifacts[0].Base64)
	if err != nil {
		return fmt.Errorf("decode image: %w", err)
	}
	return os.WriteFile(outPath, img, 0o644)
}

func redact(s, key string) string {
	if key == "" {
		return s
	}
	return strings.ReplaceAll(s, key, "[REDACTED]")
}
