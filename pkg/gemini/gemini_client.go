package gemini

import (
	"Ralph-Backend/internal/utils"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

type (
	// Client turns a system instruction, a user prompt and a result schema
	// into a value conforming to that schema, or fails.
	Client interface {
		GenerateObject(ctx context.Context, system string, prompt string, schema *Schema, out any) error
	}

	// Schema is the subset of Gemini's response schema this service uses.
	Schema struct {
		Type       string             `json:"type"`
		Properties map[string]*Schema `json:"properties,omitempty"`
		Items      *Schema            `json:"items,omitempty"`
		Required   []string           `json:"required,omitempty"`
	}

	client struct {
		apiKey     string
		model      string
		baseURL    string
		httpClient *http.Client
	}
)

func NewClient() (Client, error) {
	apiKey := utils.GetConfig("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY not set")
	}

	model := utils.GetConfig("GEMINI_MODEL")
	if model == "" {
		return nil, fmt.Errorf("GEMINI_MODEL not set")
	}

	return &client{
		apiKey:     apiKey,
		model:      model,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}, nil
}

func (c *client) GenerateObject(ctx context.Context, system string, prompt string, schema *Schema, out any) error {
	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)

	requestBody := map[string]interface{}{
		"system_instruction": map[string]interface{}{
			"parts": []map[string]interface{}{
				{"text": system},
			},
		},
		"contents": []map[string]interface{}{
			{
				"parts": []map[string]interface{}{
					{"text": prompt},
				},
			},
		},
		"generationConfig": map[string]interface{}{
			"temperature":        0.2,
			"topP":               0.8,
			"topK":               40,
			"response_mime_type": "application/json",
			"response_schema":    schema,
		},
	}

	requestJSON, err := json.Marshal(requestBody)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(requestJSON))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("gemini API error: %s - %s", resp.Status, string(bodyBytes))
	}

	var geminiResp struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&geminiResp); err != nil {
		return err
	}

	if len(geminiResp.Candidates) == 0 || len(geminiResp.Candidates[0].Content.Parts) == 0 {
		return fmt.Errorf("gemini returned no candidates")
	}

	responseText := cleanResponseText(geminiResp.Candidates[0].Content.Parts[0].Text)

	if err := json.Unmarshal([]byte(responseText), out); err != nil {
		return fmt.Errorf("failed to parse gemini response: %v - raw response: %s", err, responseText)
	}

	return nil
}

// cleanResponseText strips the markdown fences the model sometimes wraps
// around JSON output even when asked not to.
func cleanResponseText(text string) string {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimSuffix(text, "```")
	} else if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		text = strings.TrimSuffix(text, "```")
	}
	return strings.TrimSpace(text)
}
