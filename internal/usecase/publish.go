package usecase

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/autoreel/autoreel/internal/types"
)

const (
	categoryEducation  = "27"
	maxDescriptionLen  = 5000
	titleSuffix        = " - Automated Educational Video"
	descriptionPrelude = "Video about "
)

// Publish uploads the final video with metadata derived from the topic and script.
func (u Usecase) Publish(ctx context.Context, videoPath, scriptPath, topic string) (types.UploadResult, error) {
	b, err := os.ReadFile(scriptPath)
	if err != nil {
		return types.UploadResult{}, fmt.Errorf("read script: %w", err)
	}
	return u.d.Uploader.Upload(ctx, videoPath, BuildUploadMetadata(topic, string(b)))
}

// BuildUploadMetadata derives hosting metadata: topic-based title, a script
// excerpt as description, the topic and its tokens as tags, the education
// category, and private visibility.
func BuildUploadMetadata(topic, scriptText string) types.UploadMetadata {
	return types.UploadMetadata{
		Title:       topic + titleSuffix,
		Description: descriptionPrelude + topic + "\n\n" + truncate(scriptText, maxDescriptionLen),
		Tags:        append([]string{topic}, strings.Fields(topic)...),
		CategoryID:  categoryEducation,
		Privacy:     "private",
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
