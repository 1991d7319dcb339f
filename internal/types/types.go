package types

// Scene is one unit of script text: a bracketed visual description, the
// spoken narration, and any parenthesized visual cues, in script order.
type Scene struct {
	Description string   `json:"scene_description"`
	Narration   string   `json:"narration"`
	VisualCues  []string `json:"visual_cues"`
}

// ScriptMetadata is computed once when a script is generated and persisted
// next to it as script_metadata.json. Immutable afterwards.
type ScriptMetadata struct {
	Topic                    string  `json:"topic"`
	Style                    string  `json:"style"`
	TargetLength             string  `json:"target_length"`
	WordCount                int     `json:"word_count"`
	EstimatedDurationSeconds float64 `json:"estimated_duration_seconds"`
}

// SceneMedia pairs a rendered scene image with how long it stays on screen.
type SceneMedia struct {
	ImagePath string
	Seconds   float64
}

// Fallback classifies how a per-scene artifact was produced when the primary
// generation service failed. Callers log fallback outcomes as warnings
// without altering control flow.
type Fallback int

const (
	FallbackNone        Fallback = iota
	FallbackPlaceholder          // locally rendered placeholder image
	FallbackLocalTTS             // secondary local speech synthesis
	FallbackStub                 // zero-byte audio stub
)

func (f Fallback) String() string {
	switch f {
	case FallbackPlaceholder:
		return "placeholder image"
	case FallbackLocalTTS:
		return "local tts"
	case FallbackStub:
		return "empty stub"
	default:
		return "none"
	}
}

// UploadMetadata is the hosting-platform metadata derived from topic and script.
type UploadMetadata struct {
	Title       string
	Description string
	Tags        []string
	CategoryID  string
	Privacy     string
}

// UploadResult identifies a published video.
type UploadResult struct {
	VideoID string
	URL     string
}
