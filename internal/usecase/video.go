package usecase

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/autoreel/autoreel/internal/domain/script"
	"github.com/autoreel/autoreel/internal/placeholder"
	"github.com/autoreel/autoreel/internal/types"
)

const (
	framesDirName   = "video_frames"
	silentVideoName = "video_without_audio.mp4"
)

// BuildVideo renders one image per scene and assembles them into a silent
// video, each image held for its estimated narration duration. Image
// generation failures substitute a locally rendered placeholder instead of
// aborting; encoder failures are fatal.
func (u Usecase) BuildVideo(ctx context.Context, scriptPath, style, outDir string, logf func(string, ...any)) (string, error) {
	scenes, err := script.ParseFile(scriptPath)
	if err != nil {
		return "", err
	}
	if len(scenes) == 0 {
		return "", errors.New("script yielded no scenes")
	}

	dir := filepath.Join(outDir, framesDirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	frames := make([]types.SceneMedia, 0, len(scenes))
	for i, sc := range scenes {
		prompt := script.ImagePrompt(sc, style)
		logf("generating image for scene %d/%d: %.50s...", i+1, len(scenes), prompt)

		if u.d.Limiter != nil {
			if err := u.d.Limiter.Wait(ctx); err != nil {
				return "", err
			}
		}

		imgPath := filepath.Join(dir, fmt.Sprintf("scene_%03d.png", i))
		if err := u.d.Images.Generate(ctx, prompt, imgPath); err != nil {
			if perr := placeholder.WriteImage(prompt, imgPath); perr != nil {
				return "", fmt.Errorf("scene %d: generation failed (%v), placeholder failed: %w", i, err, perr)
			}
			logf("scene %d: image generation failed (%v), using %s", i, err, types.FallbackPlaceholder)
		}

		frames = append(frames, types.SceneMedia{
			ImagePath: imgPath,
			Seconds:   script.SceneSeconds(sc.Narration),
		})
	}

	videoPath := filepath.Join(outDir, silentVideoName)
	if err := u.d.Media.VideoFromImages(ctx, frames, videoPath); err != nil {
		return "", err
	}
	return videoPath, nil
}
