package usecase

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestStretchFactor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		audio float64
		video float64
		want  float64
	}{
		{name: "audio twice as long", audio: 10, video: 5, want: 2.0},
		{name: "audio shorter", audio: 4, video: 5, want: 1},
		{name: "equal durations", audio: 5, video: 5, want: 1},
		{name: "zero video duration", audio: 10, video: 0, want: 1},
		{name: "fractional stretch", audio: 9, video: 6, want: 1.5},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := StretchFactor(tt.audio, tt.video); got != tt.want {
				t.Fatalf("StretchFactor(%v, %v) = %v, want %v", tt.audio, tt.video, got, tt.want)
			}
		})
	}
}

func TestMergeWithoutStretch(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	media := &fakeMedia{durations: map[string]float64{
		"narration.mp3": 4,
		"silent.mp4":    5,
	}}
	uc := New(Deps{Media: media})

	videoPath := filepath.Join(dir, "silent.mp4")
	audioPath := filepath.Join(dir, "narration.mp3")

	finalPath, err := uc.Merge(context.Background(), videoPath, audioPath, dir, t.Logf)
	if err != nil {
		t.Fatalf("merge: %v", err)
	}
	if filepath.Base(finalPath) != "final_video.mp4" {
		t.Fatalf("unexpected final path: %s", finalPath)
	}
	if media.scaleOut != "" {
		t.Fatalf("timestamps scaled despite audio being shorter: %s", media.scaleOut)
	}
	if media.muxVideo != videoPath || media.muxAudio != audioPath {
		t.Fatalf("mux inputs %s/%s, want originals", media.muxVideo, media.muxAudio)
	}
}

func TestMergeRemovesStretchedIntermediate(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	media := &fakeMedia{durations: map[string]float64{
		"narration.mp3": 12,
		"silent.mp4":    4,
	}}
	uc := New(Deps{Media: media})

	_, err := uc.Merge(context.Background(), filepath.Join(dir, "silent.mp4"), filepath.Join(dir, "narration.mp3"), dir, t.Logf)
	if err != nil {
		t.Fatalf("merge: %v", err)
	}
	if media.scaleFactor != 3.0 {
		t.Fatalf("stretch factor %v, want 3.0", media.scaleFactor)
	}
	if media.muxVideo != media.scaleOut {
		t.Fatalf("mux used %s, want stretched %s", media.muxVideo, media.scaleOut)
	}
	if _, err := os.Stat(media.scaleOut); !os.IsNotExist(err) {
		t.Fatalf("stretched intermediate %s not removed", media.scaleOut)
	}
}

func TestAddSubtitles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	scriptPath := filepath.Join(dir, "script.txt")
	if err := os.WriteFile(scriptPath, []byte("Line one.\nLine two.\n"), 0o644); err != nil {
		t.Fatalf("write script: %v", err)
	}

	media := &fakeMedia{durations: map[string]float64{"final_video.mp4": 10}}
	uc := New(Deps{Media: media})

	outPath, err := uc.AddSubtitles(context.Background(), filepath.Join(dir, "final_video.mp4"), scriptPath, dir)
	if err != nil {
		t.Fatalf("add subtitles: %v", err)
	}
	if filepath.Base(outPath) != "final_video_subtitled.mp4" {
		t.Fatalf("unexpected output path: %s", outPath)
	}
	if filepath.Base(media.burnSRT) != "subtitles.srt" {
		t.Fatalf("unexpected srt path: %s", media.burnSRT)
	}

	srt, err := os.ReadFile(media.burnSRT)
	if err != nil {
		t.Fatalf("read srt: %v", err)
	}
	for _, want := range []string{"Line one.", "Line two.", "00:00:05,000 --> 00:00:10,000"} {
		if !strings.Contains(string(srt), want) {
			t.Fatalf("srt %q missing %q", srt, want)
		}
	}
}

func TestAddSubtitlesEmptyScript(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	scriptPath := filepath.Join(dir, "script.txt")
	if err := os.WriteFile(scriptPath, []byte("\n\n"), 0o644); err != nil {
		t.Fatalf("write script: %v", err)
	}

	videoPath := filepath.Join(dir, "final_video.mp4")
	uc := New(Deps{Media: &fakeMedia{}})

	outPath, err := uc.AddSubtitles(context.Background(), videoPath, scriptPath, dir)
	if err != nil {
		t.Fatalf("add subtitles: %v", err)
	}
	if outPath != videoPath {
		t.Fatalf("expected passthrough for empty script, got %s", outPath)
	}
}
