package usecase

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/autoreel/autoreel/internal/domain/script"
	"github.com/autoreel/autoreel/internal/types"
)

const (
	scriptFileName   = "script.txt"
	metadataFileName = "script_metadata.json"
)

// GenerateScript asks the text-generation service for a script and persists
// it with a metadata record computed once at generation time.
func (u Usecase) GenerateScript(ctx context.Context, in Input) (string, error) {
	content, err := u.d.Script.Generate(ctx, in.Topic, in.Style, script.TargetWords(in.Length))
	if err != nil {
		return "", err
	}

	words := script.WordCount(content)
	meta := types.ScriptMetadata{
		Topic:                    in.Topic,
		Style:                    in.Style,
		TargetLength:             in.Length,
		WordCount:                words,
		EstimatedDurationSeconds: script.EstimateSeconds(words),
	}

	scriptPath := filepath.Join(in.OutDir, scriptFileName)
	if err := os.WriteFile(scriptPath, []byte(content), 0o644); err != nil {
		return "", err
	}

	mb, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(filepath.Join(in.OutDir, metadataFileName), mb, 0o644); err != nil {
		return "", err
	}
	return scriptPath, nil
}
