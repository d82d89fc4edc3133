package main

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/aktagon/llmkit/anthropic"
	"github.com/aktagon/llmkit/anthropic/types"
	"github.com/pkg/errors"
)

const (
	defaultTagModel   = "claude-sonnet-4-20250514"
	maxSuggestedTags  = 5
	bodyMaxTokens     = 2000
	taggerMaxTokens   = 300
	taggerTemperature = 0.0
)

//go:embed config/tagger-system-prompt.md
var taggerSystemPrompt string

//go:embed config/tagger-output-schema.json
var taggerSchema string

// TagSuggester proposes tags for a post
type TagSuggester interface {
	SuggestTags(post Post, known []string) ([]string, error)
}

// promptFunc sends a system and user prompt with an output schema and returns the text reply
type promptFunc func(systemPrompt, userPrompt, schema string) (string, error)

// AgentTagger asks an Anthropic model for tag suggestions
type AgentTagger struct {
	model  string
	prompt promptFunc
}

// NewAgentTagger creates a tagger using apiKey and model, falling back to the default model
func NewAgentTagger(apiKey, model string) (*AgentTagger, error) {
	if apiKey == "" {
		return nil, errors.New("API key required for tag suggestions")
	}
	if model == "" {
		model = defaultTagModel
	}

	settings := types.RequestSettings{
		Model:       model,
		MaxTokens:   taggerMaxTokens,
		Temperature: taggerTemperature,
	}

	return &AgentTagger{
		model: model,
		prompt: func(systemPrompt, userPrompt, schema string) (string, error) {
			response, err := anthropic.PromptWithSettings(systemPrompt, userPrompt, schema, apiKey, settings)
			if err != nil {
				return "", err
			}
			if len(response.Content) == 0 {
				return "", errors.New("no content in tagger response")
			}
			return response.Content[0].Text, nil
		},
	}, nil
}

// SuggestTags returns up to maxSuggestedTags tags for post
func (a *AgentTagger) SuggestTags(post Post, known []string) ([]string, error) {
	existing := "(none)"
	if len(known) > 0 {
		existing = "- " + strings.Join(known, "\n- ")
	}
	systemPrompt := strings.NewReplacer(
		"{{.max_tags}}", fmt.Sprint(maxSuggestedTags),
		"{{.existing_tags}}", existing,
	).Replace(strings.TrimSpace(taggerSystemPrompt))

	userPrompt := fmt.Sprintf("Title: %s\n\n%s", post.Title, limitContentTokens(post.Body, bodyMaxTokens))

	text, err := a.prompt(systemPrompt, userPrompt, strings.TrimSpace(taggerSchema))
	if err != nil {
		return nil, errors.Wrap(err, "tagger agent failed")
	}
	return parseTagResponse(text)
}

func parseTagResponse(text string) ([]string, error) {
	var reply struct {
		Tags []string `json:"tags"`
	}
	if err := json.Unmarshal([]byte(text), &reply); err != nil {
		return nil, errors.Wrap(err, "parsing tagger response")
	}

	tags := splitTags(strings.Join(reply.Tags, ","))
	if len(tags) > maxSuggestedTags {
		tags = tags[:maxSuggestedTags]
	}
	return tags, nil
}

// limitContentTokens limits content to approximately maxTokens tokens (4 chars per token)
func limitContentTokens(content string, maxTokens int) string {
	maxChars := maxTokens * 4
	if len(content) <= maxChars {
		return content
	}
	return content[:maxChars] + "..."
}
