package concepts

import "context"

// Aspect is the requested image aspect ratio.
type Aspect string

const (
	AspectInvitation Aspect = "3:4"
	AspectFormat     Aspect = "1:1"
)

// Request is the couple's story and preferences.
type Request struct {
	Story     string `json:"story"`
	Color     string `json:"color"`
	Mood      string `json:"mood"`
	Elements  string `json:"elements"`
	ImageData string `json:"image_data,omitempty"`
}

// Draft is a written concept before any imagery exists.
type Draft struct {
	Title            string `json:"title"`
	Description      string `json:"description"`
	FormatSuggestion string `json:"formatSuggestion"`
	ImagePrompt      string `json:"imagePrompt"`
}

// Concept is a draft with rendered or placeholder imagery.
type Concept struct {
	Title            string   `json:"title"`
	Description      string   `json:"description"`
	FormatSuggestion string   `json:"format_suggestion"`
	ImagePrompt      string   `json:"image_prompt"`
	ImageURL         string   `json:"image_url"`
	FormatImageURLs  []string `json:"format_image_urls"`
	Placeholder      bool     `json:"placeholder"`
}

// ConceptWriter drafts design concepts from a story.
type ConceptWriter interface {
	WriteConcepts(ctx context.Context, req Request) ([]Draft, error)
}

// ImageRenderer turns a prompt into an image reference (URL or data URI).
type ImageRenderer interface {
	Render(ctx context.Context, prompt string, aspect Aspect) (string, error)
}
