package script

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/autoreel/autoreel/internal/types"
)

// DefaultDescription is used for paragraphs that carry no [bracketed] scene
// description.
const DefaultDescription = "General scene"

// Narration is assumed to be spoken at 150 words per minute.
const wordsPerSecond = 2.5

// MinSceneSeconds floors per-scene video timing so concat directives never
// receive a zero-length entry.
const MinSceneSeconds = 1.0

var (
	bracketRE = regexp.MustCompile(`\[(.*?)\]`)
	parenRE   = regexp.MustCompile(`\((.*?)\)`)
)

// Parse splits script text on blank-line boundaries and extracts one Scene
// per paragraph. The first [bracketed] substring becomes the description, all
// (parenthesized) substrings become visual cues in order, and both are
// stripped from the narration. Paragraphs whose stripped narration is empty
// are dropped. Matching is non-greedy per pair; nesting is not handled.
func Parse(text string) []types.Scene {
	var scenes []types.Scene
	for _, para := range strings.Split(text, "\n\n") {
		if strings.TrimSpace(para) == "" {
			continue
		}

		desc := DefaultDescription
		if m := bracketRE.FindStringSubmatch(para); m != nil {
			desc = m[1]
		}

		var cues []string
		for _, m := range parenRE.FindAllStringSubmatch(para, -1) {
			cues = append(cues, m[1])
		}

		narration := bracketRE.ReplaceAllString(para, "")
		narration = parenRE.ReplaceAllString(narration, "")
		narration = strings.TrimSpace(narration)
		if narration == "" {
			continue
		}

		scenes = append(scenes, types.Scene{
			Description: desc,
			Narration:   narration,
			VisualCues:  cues,
		})
	}
	return scenes
}

// ParseFile reads a script file and parses it. Read errors surface directly;
// there is no fallback for missing or unreadable scripts.
func ParseFile(path string) ([]types.Scene, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	return Parse(string(b)), nil
}

// WordCount counts whitespace-separated words.
func WordCount(s string) int {
	return len(strings.Fields(s))
}

// EstimateSeconds converts a word count to an estimated spoken duration.
func EstimateSeconds(words int) float64 {
	return float64(words) / wordsPerSecond
}

// SceneSeconds returns the on-screen duration for one scene's image: the
// estimated narration duration, floored at MinSceneSeconds.
func SceneSeconds(narration string) float64 {
	d := EstimateSeconds(WordCount(narration))
	if d < MinSceneSeconds {
		return MinSceneSeconds
	}
	return d
}

// TargetWords maps a content length name to an approximate word budget for
// script generation. Unknown lengths fall back to medium.
func TargetWords(length string) int {
	switch length {
	case "short":
		return 300
	case "long":
		return 1200
	default:
		return 600
	}
}

var stylePhrases = map[string]string{
	"educational":  "professional, clean, informative, high quality, detailed illustration",
	"entertaining": "vibrant, dynamic, engaging, colorful, high-energy visuals",
	"narrative":    "cinematic, atmospheric, storytelling, emotional, dramatic lighting",
	"technical":    "detailed, precise, diagrams, blueprints, technical illustrations",
}

// StylePhrase maps a content style to the adjective phrase appended to image
// prompts. Unrecognized styles fall back to educational.
func StylePhrase(style string) string {
	if p, ok := stylePhrases[style]; ok {
		return p
	}
	return stylePhrases["educational"]
}

// ImagePrompt builds the image-generation prompt for a scene: description,
// then cues, then the style phrase.
func ImagePrompt(s types.Scene, style string) string {
	desc := s.Description
	if len(s.VisualCues) > 0 {
		desc += ". " + strings.Join(s.VisualCues, ". ")
	}
	return desc + ". " + StylePhrase(style)
}
