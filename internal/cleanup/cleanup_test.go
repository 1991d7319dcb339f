package cleanup

import (
	"os"
	"path/filepath"
	"sort"
	"testing"
)

func setupRunDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	for _, d := range []string{"video_frames", "audio_clips"} {
		sub := filepath.Join(dir, d)
		if err := os.MkdirAll(sub, 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", d, err)
		}
		if err := os.WriteFile(filepath.Join(sub, "scene_000.bin"), []byte("x"), 0o644); err != nil {
			t.Fatalf("seed %s: %v", d, err)
		}
	}

	files := []string{
		"script.txt",
		"script_metadata.json",
		"final_video.mp4",
		"final_video_subtitled.mp4",
		"video_without_audio.mp4",
		"voice_audio.mp3",
		"subtitles.srt",
	}
	for _, f := range files {
		if err := os.WriteFile(filepath.Join(dir, f), []byte("x"), 0o644); err != nil {
			t.Fatalf("seed %s: %v", f, err)
		}
	}
	return dir
}

func listFiles(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	var out []string
	for _, e := range entries {
		out = append(out, e.Name())
	}
	sort.Strings(out)
	return out
}

func TestRunKeepFinal(t *testing.T) {
	t.Parallel()

	dir := setupRunDir(t)
	if err := Run(dir, true, nil); err != nil {
		t.Fatalf("cleanup: %v", err)
	}

	got := listFiles(t, dir)
	want := []string{"final_video.mp4", "final_video_subtitled.mp4", "script.txt", "script_metadata.json"}
	if len(got) != len(want) {
		t.Fatalf("surviving files: %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("surviving files: %v, want %v", got, want)
		}
	}
}

func TestRunIdempotent(t *testing.T) {
	t.Parallel()

	dir := setupRunDir(t)
	if err := Run(dir, true, nil); err != nil {
		t.Fatalf("first cleanup: %v", err)
	}
	first := listFiles(t, dir)

	if err := Run(dir, true, nil); err != nil {
		t.Fatalf("second cleanup: %v", err)
	}
	second := listFiles(t, dir)

	if len(first) != len(second) {
		t.Fatalf("second run changed the artifact set: %v vs %v", first, second)
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("second run changed the artifact set: %v vs %v", first, second)
		}
	}
}

func TestRunRemovesTempDirs(t *testing.T) {
	t.Parallel()

	dir := setupRunDir(t)
	if err := Run(dir, false, nil); err != nil {
		t.Fatalf("cleanup: %v", err)
	}
	for _, d := range []string{"video_frames", "audio_clips"} {
		if _, err := os.Stat(filepath.Join(dir, d)); !os.IsNotExist(err) {
			t.Fatalf("temp dir %s survived cleanup", d)
		}
	}
}

func TestRunMissingDir(t *testing.T) {
	t.Parallel()

	if err := Run(filepath.Join(t.TempDir(), "absent"), true, nil); err == nil {
		t.Fatal("expected an error for a missing output directory")
	}
}
