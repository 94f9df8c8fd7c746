package domain

// SamplingRequest asks the sampling capability for a completion.
type SamplingRequest struct {
	Prompt       string
	SystemPrompt string
	Temperature  float64
	MaxTokens    int
}

// SamplingContent is whatever the sampling capability answered with. Only
// TextContent carries usable text; other shapes are treated as failures.
type SamplingContent interface {
	ContentType() string
}

// TextContent is a plain text completion.
type TextContent struct {
	Text string
}

func (TextContent) ContentType() string { return "text" }

// OtherContent is any non-text content block (images, tool calls, ...).
type OtherContent struct {
	Type string
}

func (c OtherContent) ContentType() string { return c.Type }
