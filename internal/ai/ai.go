/*
Package ai asks the Gemini API for a short summary of a screen report.
*/
package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

const DefaultModel = "gemini-2.0-flash"

type AIAnalysis struct {
	Summary    []string `json:"summary"`
	Highlights []string `json:"highlights"`
}

// Summarizer calls Gemini. The zero APIKey disables it; callers should not
// construct one in that case.
type Summarizer struct {
	APIKey    string
	ModelName string
	// BaseURL overrides the API endpoint; empty uses the default.
	BaseURL string
}

func NewSummarizer(apiKey, modelName string) *Summarizer {
	if modelName == "" {
		modelName = DefaultModel
	}
	return &Summarizer{APIKey: apiKey, ModelName: modelName}
}

// GenerateSummary returns the structured analysis of report.
func (s *Summarizer) GenerateSummary(ctx context.Context, report string) (*AIAnalysis, error) {
	if s.APIKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}

	cfg := &genai.ClientConfig{
		APIKey:  s.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if s.BaseURL != "" {
		cfg.HTTPOptions = genai.HTTPOptions{BaseURL: s.BaseURL}
	}

	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	resp, err := client.Models.GenerateContent(ctx, s.ModelName, genai.Text(buildUserPrompt(report)), &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: systemInstruction}},
		},
		ResponseMIMEType: "application/json",
		ResponseSchema:   getResponseSchema(),
	})
	if err != nil {
		return nil, fmt.Errorf("gemini API call failed: %w", err)
	}

	respText := resp.Text()

	var analysis AIAnalysis
	if err := json.Unmarshal([]byte(respText), &analysis); err != nil {
		return nil, fmt.Errorf("failed to unmarshal gemini JSON response: %w. Raw text: %s", err, respText)
	}

	return &analysis, nil
}

// Summarize renders the analysis as Markdown bullet lines.
func (s *Summarizer) Summarize(ctx context.Context, report string) (string, error) {
	analysis, err := s.GenerateSummary(ctx, report)
	if err != nil {
		return "", err
	}
	return FormatAnalysis(analysis), nil
}

func FormatAnalysis(a *AIAnalysis) string {
	if a == nil {
		return ""
	}
	var sb strings.Builder
	for _, p := range a.Summary {
		sb.WriteString(fmt.Sprintf("• %s\n", p))
	}
	if len(a.Highlights) > 0 {
		sb.WriteString("Watch: ")
		sb.WriteString(strings.Join(a.Highlights, ", "))
		sb.WriteString("\n")
	}
	return sb.String()
}

func getResponseSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"summary": {
				Type:        genai.TypeArray,
				Items:       &genai.Schema{Type: genai.TypeString},
				Description: "A list of 3-5 concise bullet points summarising the screens.",
			},
			"highlights": {
				Type:        genai.TypeArray,
				Items:       &genai.Schema{Type: genai.TypeString},
				Description: "Names of the stocks most worth a closer look today.",
			},
		},
		Required: []string{"summary", "highlights"},
	}
}
