package cleanup

import (
	"os"
	"path/filepath"
	"strings"
)

var tempDirs = []string{"video_frames", "audio_clips"}

// Files preserved after a run. Matching is by substring, so variants like
// final_video_subtitled.mp4 are covered by the final-video marker below.
var keepPatterns = []string{"final_video.mp4", "script.txt", "script_metadata.json"}

const finalMarker = "final_video"

// Run deletes known temporary subdirectories unconditionally, then prunes
// files in outputDir that are not final artifacts. With keepFinal set, any
// file whose name contains the final-video marker also survives. Idempotent:
// a second run over the same directory removes nothing further.
//
// The error is informational; callers log it and continue rather than abort.
func Run(outputDir string, keepFinal bool, logf func(string, ...any)) error {
	if logf == nil {
		logf = func(string, ...any) {}
	}

	for _, d := range tempDirs {
		dir := filepath.Join(outputDir, d)
		if _, err := os.Stat(dir); err != nil {
			continue
		}
		if err := os.RemoveAll(dir); err != nil {
			return err
		}
		logf("removed directory: %s", dir)
	}

	entries, err := os.ReadDir(outputDir)
	if err != nil {
		return err
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if matchesAny(name, keepPatterns) {
			continue
		}
		if keepFinal && strings.Contains(name, finalMarker) {
			continue
		}
		path := filepath.Join(outputDir, name)
		if err := os.Remove(path); err != nil {
			return err
		}
		logf("removed file: %s", path)
	}
	return nil
}

func matchesAny(name string, patterns []string) bool {
	for _, p := range patterns {
		if strings.Contains(name, p) {
			return true
		}
	}
	return false
}
