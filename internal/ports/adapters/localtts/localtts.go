package localtts

import (
	"context"
	"fmt"
	"os/exec"
)

// Adapter shells out to a local speech synthesizer (espeak by default) as the
// secondary path when the hosted TTS service fails. Best-effort: quality is
// not the goal, keeping the narration track continuous is.
type Adapter struct {
	bin string
}

func New(binPath string) *Adapter {
	if binPath == "" {
		binPath = "espeak"
	}
	return &Adapter{bin: binPath}
}

func (a *Adapter) Synthesize(ctx context.Context, text, outPath string) error {
	if _, err := exec.LookPath(a.bin); err != nil {
		return fmt.Errorf("%s not installed: %w", a.bin, err)
	}
	cmd := exec.CommandContext(ctx, a.bin, "-w", outPath, text)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("%s synth: %w\n%s", a.bin, err, string(out))
	}
	return nil
}
