package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/autoreel/autoreel/internal/pipeline"
	"github.com/autoreel/autoreel/internal/prompts"
)

func run(cmd *cobra.Command) error {
	topic, _ := cmd.Flags().GetString("topic")
	style, _ := cmd.Flags().GetString("style")
	length, _ := cmd.Flags().GetString("length")
	promptFile, _ := cmd.Flags().GetString("from-prompt-file")
	promptIndex, _ := cmd.Flags().GetInt("prompt-index")
	skipUpload, _ := cmd.Flags().GetBool("skip-upload")
	burnSubtitles, _ := cmd.Flags().GetBool("subtitles")
	outDir, _ := cmd.Flags().GetString("out")

	if promptFile != "" {
		list, err := prompts.Load(promptFile)
		if err != nil {
			return err
		}
		p := prompts.Select(list, promptIndex, time.Now())
		topic = p.Topic
		if p.Style != "" {
			style = p.Style
		}
		if p.Length != "" {
			length = p.Length
		}
	}
	if topic == "" {
		return errors.New("either --topic or --from-prompt-file must be specified")
	}

	logger := log.New(os.Stdout, "", log.LstdFlags)

	cfg := pipeline.Config{
		Topic:         topic,
		Style:         style,
		Length:        length,
		OutDir:        outDir,
		SkipUpload:    skipUpload,
		BurnSubtitles: burnSubtitles,
		Logf:          logger.Printf,

		FFmpegPath:  getenvDefault("FFMPEG_PATH", "ffmpeg"),
		FFprobePath: getenvDefault("FFPROBE_PATH", "ffprobe"),
		EspeakPath:  getenvDefault("ESPEAK_PATH", "espeak"),

		OpenAIAPIKey:      os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:       os.Getenv("OPENAI_MODEL"),
		StabilityAPIKey:   os.Getenv("STABILITY_API_KEY"),
		ElevenLabsAPIKey:  os.Getenv("ELEVENLABS_API_KEY"),
		ElevenLabsVoiceID: os.Getenv("ELEVENLABS_VOICE_ID"),

		YouTubeClientID:     os.Getenv("YOUTUBE_CLIENT_ID"),
		YouTubeClientSecret: os.Getenv("YOUTUBE_CLIENT_SECRET"),
		YouTubeRefreshToken: os.Getenv("YOUTUBE_REFRESH_TOKEN"),
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Hour)
	defer cancel()

	return pipeline.Run(ctx, cfg)
}

func getenvDefault(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
