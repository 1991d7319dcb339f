package ports

import (
	"context"

	"github.com/autoreel/autoreel/internal/types"
)

// ScriptGenerator produces a raw script for a topic via a text-generation service.
type ScriptGenerator interface {
	Generate(ctx context.Context, topic, style string, targetWords int) (string, error)
}

// ImageGenerator renders one scene illustration to outPath.
type ImageGenerator interface {
	Generate(ctx context.Context, prompt, outPath string) error
}

// SpeechSynthesizer renders narration audio to outPath.
type SpeechSynthesizer interface {
	Synthesize(ctx context.Context, text, outPath string) error
}

// MediaTool is the capability surface of the external encoder and prober.
// Implementations may shell out to ffmpeg or bind a native media library; the
// contract (inputs, flag semantics, non-zero exit is fatal) must hold either way.
type MediaTool interface {
	// VideoFromImages encodes an ordered image sequence, each frame held for
	// its duration, into a single silent video.
	VideoFromImages(ctx context.Context, frames []types.SceneMedia, outPath string) error

	// ConcatAudio concatenates ordered audio clips in stream-copy mode.
	ConcatAudio(ctx context.Context, clipPaths []string, outPath string) error

	// ScaleTimestamps re-encodes a video with presentation timestamps
	// multiplied by factor, slowing playback when factor > 1.
	ScaleTimestamps(ctx context.Context, inPath string, factor float64, outPath string) error

	// Mux combines one video stream and one audio stream into a single
	// container, copying video, re-encoding audio, truncated to the shorter stream.
	Mux(ctx context.Context, videoPath, audioPath, outPath string) error

	// BurnSubtitles renders an SRT file into the video frames.
	BurnSubtitles(ctx context.Context, videoPath, srtPath, outPath string) error

	// ProbeDuration returns a media file's duration in seconds.
	ProbeDuration(ctx context.Context, path string) (float64, error)
}

// Uploader publishes the final video and returns its hosted location.
type Uploader interface {
	Upload(ctx context.Context, videoPath string, meta types.UploadMetadata) (types.UploadResult, error)
}

// Limiter paces successive generation requests.
type Limiter interface {
	Wait(ctx context.Context) error
}
