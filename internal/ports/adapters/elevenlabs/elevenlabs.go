package elevenlabs

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

const (
	defaultBaseURL = "https://api.elevenlabs.io"
	defaultVoiceID = "premade/adam"
	defaultModelID = "eleven_monolingual_v1"
	requestTimeout = 2 * time.Minute
)

type request struct {
	Text          string        `json:"text"`
	ModelID       string        `json:"model_id"`
	VoiceSettings voiceSettings `json:"voice_settings"`
}

type voiceSettings struct {
	Stability       float64 `json:"stability"`
	SimilarityBoost float64 `json:"similarity_boost"`
}

// Adapter calls the ElevenLabs text-to-speech endpoint and writes the binary
// audio response to disk.
type Adapter struct {
	key     string
	baseURL string
	voiceID string
	client  *http.Client
}

func New(apiKey, baseURL, voiceID string) *Adapter {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if voiceID == "" {
		voiceID = defaultVoiceID
	}
	return &Adapter{
		key:     apiKey,
		baseURL: baseURL,
		voiceID: voiceID,
		client:  &http.Client{Timeout: 5 * time.Minute},
	}
}

func (a *Adapter) Synthesize(ctx context.Context, text, outPath string) error {
	body, err := json.Marshal(request{
		Text:    text,
		ModelID: defaultModelID,
		VoiceSettings: voiceSettings{
			Stability:       0.5,
			SimilarityBoost: 0.75,
		},
	})
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	url := a.baseURL + "/v1/text-to-speech/" + a.voiceID

	reqCtx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "audio/mpeg")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("xi-api-key", a.key)

	resp, err := a.client.Do(req)
	if err != nil {
		return fmt.Errorf("elevenlabs request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		rb, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("elevenlabs status %d: %s", resp.StatusCode, redact(string(rb), a.key))
	}

	f, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer f.Close()
	if _, err := io.Copy(f, resp.Body); err != nil {
		return fmt.Errorf("write audio: %w", err)
	}
	return nil
}

func redact(s, key string) string {
	if key == "" {
		return s
	}
	return strings.ReplaceAll(s, key, "[REDACTED]")
}
