package usecase

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/autoreel/autoreel/internal/domain/script"
	"github.com/autoreel/autoreel/internal/types"
)

const (
	clipsDirName  = "audio_clips"
	narrationName = "voice_audio.mp3"
)

// BuildAudio synthesizes one clip per scene and concatenates them into a
// single narration track. Synthesis failures fall back to the local
// synthesizer, then to a zero-byte stub; an empty clip list is fatal.
func (u Usecase) BuildAudio(ctx context.Context, scriptPath, outDir string, logf func(string, ...any)) (string, error) {
	scenes, err := script.ParseFile(scriptPath)
	if err != nil {
		return "", err
	}

	dir := filepath.Join(outDir, clipsDirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	var clips []string
	for i, sc := range scenes {
		if strings.TrimSpace(sc.Narration) == "" {
			continue
		}
		logf("generating voice for scene %d/%d", i+1, len(scenes))

		clipPath := filepath.Join(dir, fmt.Sprintf("scene_%03d.mp3", i))
		fb, err := u.synthesizeClip(ctx, sc.Narration, clipPath)
		if err != nil {
			return "", fmt.Errorf("scene %d: %w", i, err)
		}
		if fb != types.FallbackNone {
			logf("scene %d: speech synthesis failed, using %s", i, fb)
		}
		clips = append(clips, clipPath)
	}

	if len(clips) == 0 {
		return "", errors.New("no audio clips to concatenate")
	}

	audioPath := filepath.Join(outDir, narrationName)
	if err := u.d.Media.ConcatAudio(ctx, clips, audioPath); err != nil {
		return "", err
	}
	return audioPath, nil
}

// synthesizeClip tries the hosted service, then the local synthesizer, then
// writes an empty stub so the clip sequence stays aligned with the scenes.
func (u Usecase) synthesizeClip(ctx context.Context, text, outPath string) (types.Fallback, error) {
	if err := u.d.Speech.Synthesize(ctx, text, outPath); err == nil {
		return types.FallbackNone, nil
	}
	if u.d.LocalTTS != nil {
		if err := u.d.LocalTTS.Synthesize(ctx, text, outPath); err == nil {
			return types.FallbackLocalTTS, nil
		}
	}
	if err := os.WriteFile(outPath, nil, 0o644); err != nil {
		return types.FallbackNone, fmt.Errorf("write audio stub: %w", err)
	}
	return types.FallbackStub, nil
}
