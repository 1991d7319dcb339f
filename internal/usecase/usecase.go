package usecase

import (
	"context"
	"fmt"

	"github.com/autoreel/autoreel/internal/cleanup"
	"github.com/autoreel/autoreel/internal/ports"
)

// Deps are the external collaborators every stage delegates to.
type Deps struct {
	Script   ports.ScriptGenerator
	Images   ports.ImageGenerator
	Speech   ports.SpeechSynthesizer
	LocalTTS ports.SpeechSynthesizer // secondary synthesis path, may be nil
	Media    ports.MediaTool
	Uploader ports.Uploader // nil when upload is skipped
	Limiter  ports.Limiter  // paces image requests, may be nil
}

type Usecase struct{ d Deps }

func New(d Deps) Usecase { return Usecase{d: d} }

type Input struct {
	Topic         string
	Style         string
	Length        string
	OutDir        string
	SkipUpload    bool
	BurnSubtitles bool
	Logf          func(format string, args ...any)
}

type Result struct {
	ScriptPath string
	FinalVideo string
	VideoURL   string
}

// Run executes the full stage sequence: script, silent video, narration
// track, merge, optional subtitle burn-in, optional upload, cleanup. Stages
// run strictly one after another; the first fatal error aborts the run with
// no retry and no partial-state resume.
func (u Usecase) Run(ctx context.Context, in Input) (Result, error) {
	logf := in.Logf
	if logf == nil {
		logf = func(string, ...any) {}
	}

	logf("generating content script")
	scriptPath, err := u.GenerateScript(ctx, in)
	if err != nil {
		return Result{}, fmt.Errorf("generate script: %w", err)
	}

	logf("creating video content")
	videoPath, err := u.BuildVideo(ctx, scriptPath, in.Style, in.OutDir, logf)
	if err != nil {
		return Result{}, fmt.Errorf("build video: %w", err)
	}

	logf("synthesizing voice-over")
	audioPath, err := u.BuildAudio(ctx, scriptPath, in.OutDir, logf)
	if err != nil {
		return Result{}, fmt.Errorf("build audio: %w", err)
	}

	logf("merging audio and video")
	finalPath, err := u.Merge(ctx, videoPath, audioPath, in.OutDir, logf)
	if err != nil {
		return Result{}, fmt.Errorf("merge media: %w", err)
	}

	if in.BurnSubtitles {
		logf("burning subtitles into final video")
		finalPath, err = u.AddSubtitles(ctx, finalPath, scriptPath, in.OutDir)
		if err != nil {
			return Result{}, fmt.Errorf("add subtitles: %w", err)
		}
	}

	res := Result{ScriptPath: scriptPath, FinalVideo: finalPath}

	if !in.SkipUpload && u.d.Uploader != nil {
		logf("uploading to youtube")
		up, err := u.Publish(ctx, finalPath, scriptPath, in.Topic)
		if err != nil {
			return Result{}, fmt.Errorf("upload: %w", err)
		}
		res.VideoURL = up.URL
		logf("video uploaded successfully: %s", up.URL)
	}

	logf("cleaning up temporary files")
	if err := cleanup.Run(in.OutDir, true, logf); err != nil {
		// Cleanup failures are reported but never abort a finished run.
		logf("cleanup failed: %v", err)
	}

	return res, nil
}
