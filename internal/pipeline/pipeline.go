package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/autoreel/autoreel/internal/ports"
	"github.com/autoreel/autoreel/internal/ports/adapters/elevenlabs"
	"github.com/autoreel/autoreel/internal/ports/adapters/ffmpeg"
	"github.com/autoreel/autoreel/internal/ports/adapters/localtts"
	"github.com/autoreel/autoreel/internal/ports/adapters/openai"
	"github.com/autoreel/autoreel/internal/ports/adapters/stability"
	"github.com/autoreel/autoreel/internal/ports/adapters/youtube"
	"github.com/autoreel/autoreel/internal/ratelimit"
	"github.com/autoreel/autoreel/internal/types"
	"github.com/autoreel/autoreel/internal/usecase"
)

// Config is built once at startup and passed by value; components never read
// the environment themselves.
type Config struct {
	Topic         string
	Style         string
	Length        string
	OutDir        string
	SkipUpload    bool
	BurnSubtitles bool
	Logf          func(format string, args ...any)

	FFmpegPath  string
	FFprobePath string
	EspeakPath  string

	OpenAIAPIKey      string
	OpenAIModel       string
	StabilityAPIKey   string
	ElevenLabsAPIKey  string
	ElevenLabsVoiceID string

	YouTubeClientID     string
	YouTubeClientSecret string
	YouTubeRefreshToken string

	// ImageRequestInterval paces successive image-generation requests.
	// Zero means the default of one second.
	ImageRequestInterval time.Duration
}

// Validate fails fast, reporting every missing credential key at once.
// Upload credentials are only required when the run will upload.
func (c Config) Validate() error {
	if c.Topic == "" {
		return errors.New("topic is empty")
	}

	var missing []string
	if c.OpenAIAPIKey == "" {
		missing = append(missing, "OPENAI_API_KEY")
	}
	if c.ElevenLabsAPIKey == "" {
		missing = append(missing, "ELEVENLABS_API_KEY")
	}
	if c.StabilityAPIKey == "" {
		missing = append(missing, "STABILITY_API_KEY")
	}
	if !c.SkipUpload {
		if c.YouTubeClientID == "" {
			missing = append(missing, "YOUTUBE_CLIENT_ID")
		}
		if c.YouTubeClientSecret == "" {
			missing = append(missing, "YOUTUBE_CLIENT_SECRET")
		}
		if c.YouTubeRefreshToken == "" {
			missing = append(missing, "YOUTUBE_REFRESH_TOKEN")
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", types.ErrCredentialMissing, strings.Join(missing, ", "))
	}
	return nil
}

// Run wires the adapters and executes the stage sequence for one topic.
func Run(ctx context.Context, cfg Config) error {
	logf := cfg.Logf
	if logf == nil {
		logf = func(string, ...any) {}
	}

	interval := cfg.ImageRequestInterval
	if interval == 0 {
		interval = time.Second
	}

	deps := usecase.Deps{
		Script:   openai.New(cfg.OpenAIAPIKey, cfg.OpenAIModel),
		Images:   stability.New(cfg.StabilityAPIKey, ""),
		Speech:   elevenlabs.New(cfg.ElevenLabsAPIKey, "", cfg.ElevenLabsVoiceID),
		LocalTTS: localtts.New(cfg.EspeakPath),
		Media:    ffmpeg.New(cfg.FFmpegPath, cfg.FFprobePath),
		Limiter:  ratelimit.NewInterval(interval),
	}
	if !cfg.SkipUpload {
		deps.Uploader = youtube.New(cfg.YouTubeClientID, cfg.YouTubeClientSecret, cfg.YouTubeRefreshToken)
	}

	outRoot := cfg.OutDir
	if outRoot == "" {
		outRoot = "output"
	}
	runDir := filepath.Join(outRoot, strings.ReplaceAll(cfg.Topic, " ", "_"))
	if err := os.MkdirAll(runDir, 0o755); err != nil {
		return err
	}
	logf("starting content generation pipeline for topic: %s", cfg.Topic)
	logf("output dir: %s", runDir)

	uc := usecase.New(deps)
	res, err := uc.Run(ctx, usecase.Input{
		Topic:         cfg.Topic,
		Style:         cfg.Style,
		Length:        cfg.Length,
		OutDir:        runDir,
		SkipUpload:    cfg.SkipUpload,
		BurnSubtitles: cfg.BurnSubtitles,
		Logf:          logf,
	})
	if err != nil {
		return err
	}

	logf("pipeline completed successfully, final video: %s", res.FinalVideo)
	return nil
}

// ensure adapters implement ports
var _ ports.ScriptGenerator = (*openai.Adapter)(nil)
var _ ports.ImageGenerator = (*stability.Adapter)(nil)
var _ ports.SpeechSynthesizer = (*elevenlabs.Adapter)(nil)
var _ ports.SpeechSynthesizer = (*localtts.Adapter)(nil)
var _ ports.MediaTool = (*ffmpeg.Adapter)(nil)
var _ ports.Uploader = (*youtube.Adapter)(nil)
var _ ports.Limiter = (*ratelimit.Interval)(nil)
var _ ports.Limiter = (*ratelimit.Bucket)(nil)
