package openai

import (
	"context"
	"errors"
	"fmt"

	goopenai "github.com/sashabaranov/go-openai"
)

const systemPrompt = "You are an expert content creator who specializes in creating engaging scripts."

const promptTemplate = `Create a %s script about %s.
The script should be approximately %d words and include:
- An engaging introduction
- Clear sections with appropriate headings
- A conclusion that summarizes key points

Format the script with:
- Scene descriptions in [brackets]
- Narration text as regular paragraphs
- Visual cues or B-roll suggestions in (parentheses)`

type Adapter struct {
	client *goopenai.Client
	model  string
}

func New(apiKey, model string) *Adapter {
	if model == "" {
		model = goopenai.GPT4Turbo
	}
	return &Adapter{client: goopenai.NewClient(apiKey), model: model}
}

func (a *Adapter) Generate(ctx context.Context, topic, style string, targetWords int) (string, error) {
	resp, err := a.client.CreateChatCompletion(ctx, goopenai.ChatCompletionRequest{
		Model: a.model,
		Messages: []goopenai.ChatCompletionMessage{
			{Role: goopenai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: goopenai.ChatMessageRoleUser, Content: fmt.Sprintf(promptTemplate, style, topic, targetWords)},
		},
		MaxTokens:   2000,
		Temperature: 0.7,
	})
	if err != nil {
		return "", fmt.Errorf("openai chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("openai: response contains no choices")
	}
	return resp.Choices[0].Message.Content, nil
}
