package ffmpeg

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/autoreel/autoreel/internal/types"
)

// Adapter shells out to ffmpeg/ffprobe for every media operation: image
// concat, audio concat, timestamp scaling, muxing, subtitle burn-in, and
// duration probing.
type Adapter struct {
	ffmpeg  string
	ffprobe string
}

func New(ffmpegPath, ffprobePath string) *Adapter {
	if ffmpegPath == "" {
		ffmpegPath = "ffmpeg"
	}
	if ffprobePath == "" {
		ffprobePath = "ffprobe"
	}
	return &Adapter{ffmpeg: ffmpegPath, ffprobe: ffprobePath}
}

// VideoFromImages writes a concat directive listing each image with its
// duration (the last image repeated once more without one, as the concat
// demuxer requires) and encodes a 24 fps variable-frame-rate H.264 video.
// The directive file is removed only on success.
func (a *Adapter) VideoFromImages(ctx context.Context, frames []types.SceneMedia, outPath string) error {
	if len(frames) == 0 {
		return errors.New("no frames to encode")
	}

	list := filepath.Join(filepath.Dir(outPath), "frames.txt")
	var b strings.Builder
	for _, f := range frames {
		fmt.Fprintf(&b, "file '%s'\n", f.ImagePath)
		fmt.Fprintf(&b, "duration %s\n", fmtSeconds(f.Seconds))
	}
	fmt.Fprintf(&b, "file '%s'\n", frames[len(frames)-1].ImagePath)
	if err := os.WriteFile(list, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("write concat directive: %w", err)
	}

	cmd := exec.CommandContext(ctx, a.ffmpeg,
		"-y",
		"-f", "concat",
		"-safe", "0",
		"-i", list,
		"-vsync", "vfr",
		"-pix_fmt", "yuv420p",
		"-c:v", "libx264",
		"-r", "24",
		outPath,
	)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return toolError("ffmpeg image concat", err, out)
	}
	return os.Remove(list)
}

// ConcatAudio concatenates clips in stream-copy mode, without re-encoding.
func (a *Adapter) ConcatAudio(ctx context.Context, clipPaths []string, outPath string) error {
	if len(clipPaths) == 0 {
		return errors.New("no audio clips to concatenate")
	}

	list := filepath.Join(filepath.Dir(outPath), "audio_list.txt")
	var b strings.Builder
	for _, p := range clipPaths {
		fmt.Fprintf(&b, "file '%s'\n", p)
	}
	if err := os.WriteFile(list, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("write concat directive: %w", err)
	}

	cmd := exec.CommandContext(ctx, a.ffmpeg,
		"-y",
		"-f", "concat",
		"-safe", "0",
		"-i", list,
		"-c", "copy",
		outPath,
	)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return toolError("ffmpeg audio concat", err, out)
	}
	return os.Remove(list)
}

// ScaleTimestamps re-encodes the video with presentation timestamps
// multiplied by factor. Factors above 1 slow playback.
func (a *Adapter) ScaleTimestamps(ctx context.Context, inPath string, factor float64, outPath string) error {
	cmd := exec.CommandContext(ctx, a.ffmpeg,
		"-y",
		"-i", inPath,
		"-filter:v", fmt.Sprintf("setpts=%s*PTS", strconv.FormatFloat(factor, 'f', -1, 64)),
		outPath,
	)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return toolError("ffmpeg timestamp scale", err, out)
	}
	return nil
}

// Mux copies the video stream, re-encodes audio to AAC, selects stream 0 of
// each input, and truncates the output to the shorter stream.
func (a *Adapter) Mux(ctx context.Context, videoPath, audioPath, outPath string) error {
	cmd := exec.CommandContext(ctx, a.ffmpeg,
		"-y",
		"-i", videoPath,
		"-i", audioPath,
		"-c:v", "copy",
		"-c:a", "aac",
		"-map", "0:v:0",
		"-map", "1:a:0",
		"-shortest",
		outPath,
	)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return toolError("ffmpeg mux", err, out)
	}
	return nil
}

// BurnSubtitles renders the SRT into the video frames via the subtitles filter.
func (a *Adapter) BurnSubtitles(ctx context.Context, videoPath, srtPath, outPath string) error {
	cmd := exec.CommandContext(ctx, a.ffmpeg,
		"-y",
		"-i", videoPath,
		"-vf", "subtitles="+escapeFilterPath(srtPath),
		"-c:a", "copy",
		outPath,
	)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return toolError("ffmpeg burn subtitles", err, out)
	}
	return nil
}

// ProbeDuration returns the container duration in seconds.
func (a *Adapter) ProbeDuration(ctx context.Context, path string) (float64, error) {
	cmd := exec.CommandContext(ctx, a.ffprobe,
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		path,
	)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return 0, toolError("ffprobe duration", err, out)
	}
	s := strings.TrimSpace(string(out))
	sec, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("parse duration %q: %w", s, err)
	}
	return sec, nil
}

func toolError(op string, err error, output []byte) error {
	return fmt.Errorf("%s: %w: %v\n%s", op, types.ErrToolFailure, err, strings.TrimSpace(string(output)))
}

func fmtSeconds(sec float64) string {
	return strconv.FormatFloat(sec, 'f', 3, 64)
}

func escapeFilterPath(p string) string {
	p = strings.ReplaceAll(p, "\\", "\\\\")
	p = strings.ReplaceAll(p, ":", "\\:")
	return p
}
