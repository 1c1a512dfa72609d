package ai

import (
	"context"
	"encoding/json"
	"fmt"
)

type InspirationInput struct {
	Room        string
	Style       string
	Preferences string
}

type InspirationResult struct {
	Description string   `json:"description"`
	ImageURL    string   `json:"image_url"`
	Prompt      string   `json:"prompt"`
	Tips        []string `json:"tips"`
}

// GenerateInspiration produces a design concept for a room: a written
// description plus styling tips from the chat model, and a rendering from
// the images endpoint.
func (e *Estimator) GenerateInspiration(ctx context.Context, in InspirationInput) (*InspirationResult, error) {
	prompt := fmt.Sprintf(`Create a design concept for a %s in %s style.
Preferences: %s

Respond with JSON:
- description (string): A rich two-paragraph description of the design
- imagePrompt (string): A single-sentence prompt suitable for an image generation model
- tips (array of strings): Four practical styling tips for achieving this look in an Indian home`,
		in.Room, in.Style, in.Preferences,
	)

	content, err := e.client.Complete(
		ctx,
		"You are an interior designer specializing in Indian homes. Respond only with JSON.",
		prompt,
		true,
	)
	if err != nil {
		return nil, err
	}

	var raw struct {
		Description string   `json:"description"`
		ImagePrompt string   `json:"imagePrompt"`
		Tips        []string `json:"tips"`
	}

	cleaned := stripFences(content)
	if err := json.Unmarshal([]byte(cleaned), &raw); err != nil {
		return nil, fmt.Errorf("parse inspiration: %w", err)
	}

	imageURL, err := e.client.GenerateImage(ctx, raw.ImagePrompt)
	if err != nil {
		return nil, err
	}

	return &InspirationResult{
		Description: raw.Description,
		ImageURL:    imageURL,
		Prompt:      raw.ImagePrompt,
		Tips:        raw.Tips,
	}, nil
}
