package usecase

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/autoreel/autoreel/internal/domain/subtitles"
)

const (
	finalVideoName     = "final_video.mp4"
	subtitledVideoName = "final_video_subtitled.mp4"
	subtitleFileName   = "subtitles.srt"
)

// StretchFactor returns the timestamp multiplier that slows the silent video
// down to match a longer narration track. Stretching video instead of audio
// avoids pitch distortion of the speech. When audio is not longer, the factor
// is 1 and the mux truncates to the shorter stream instead.
func StretchFactor(audioSeconds, videoSeconds float64) float64 {
	if videoSeconds <= 0 || audioSeconds <= videoSeconds {
		return 1
	}
	return audioSeconds / videoSeconds
}

// Merge time-aligns the silent video with the narration track and muxes them
// into the final video. Both inputs must be probeable; a stretched
// intermediate video is created and removed when narration outruns video.
func (u Usecase) Merge(ctx context.Context, videoPath, audioPath, outDir string, logf func(string, ...any)) (string, error) {
	audioDur, err := u.d.Media.ProbeDuration(ctx, audioPath)
	if err != nil {
		return "", fmt.Errorf("probe audio: %w", err)
	}
	videoDur, err := u.d.Media.ProbeDuration(ctx, videoPath)
	if err != nil {
		return "", fmt.Errorf("probe video: %w", err)
	}
	logf("audio duration: %.2fs, video duration: %.2fs", audioDur, videoDur)

	mergeInput := videoPath
	if factor := StretchFactor(audioDur, videoDur); factor > 1 {
		tmp := filepath.Join(outDir, fmt.Sprintf("temp_adjusted_%s.mp4", uuid.NewString()[:8]))
		logf("stretching video timestamps by %.3f", factor)
		if err := u.d.Media.ScaleTimestamps(ctx, videoPath, factor, tmp); err != nil {
			return "", err
		}
		defer os.Remove(tmp)
		mergeInput = tmp
	}

	finalPath := filepath.Join(outDir, finalVideoName)
	if err := u.d.Media.Mux(ctx, mergeInput, audioPath, finalPath); err != nil {
		return "", err
	}
	return finalPath, nil
}

// AddSubtitles burns a best-effort subtitle track into the video: one cue per
// non-blank script line, the probed duration divided evenly across them.
func (u Usecase) AddSubtitles(ctx context.Context, videoPath, scriptPath, outDir string) (string, error) {
	b, err := os.ReadFile(scriptPath)
	if err != nil {
		return "", fmt.Errorf("read script: %w", err)
	}

	total, err := u.d.Media.ProbeDuration(ctx, videoPath)
	if err != nil {
		return "", fmt.Errorf("probe video: %w", err)
	}

	entries := subtitles.Build(string(b), total)
	if len(entries) == 0 {
		return videoPath, nil
	}

	srtPath := filepath.Join(outDir, subtitleFileName)
	if err := os.WriteFile(srtPath, []byte(subtitles.RenderSRT(entries)), 0o644); err != nil {
		return "", err
	}

	outPath := filepath.Join(outDir, subtitledVideoName)
	if err := u.d.Media.BurnSubtitles(ctx, videoPath, srtPath, outPath); err != nil {
		return "", err
	}
	return outPath, nil
}
