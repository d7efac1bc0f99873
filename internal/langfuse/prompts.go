package langfuse

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// ErrPromptsDisabled is returned by PromptClient.Get when Langfuse is not configured.
var ErrPromptsDisabled = errors.New("langfuse prompts disabled")

// Prompt is one version of a prompt managed in Langfuse.
type Prompt struct {
	Name    string
	Version int
	Text    string
}

// Compile substitutes {{name}} placeholders with vars. Unknown placeholders
// are left in place.
func (p Prompt) Compile(vars map[string]string) string {
	if len(vars) == 0 {
		return p.Text
	}
	pairs := make([]string, 0, len(vars)*2)
	for name, value := range vars {
		pairs = append(pairs, "{{"+name+"}}", value)
	}
	return strings.NewReplacer(pairs...).Replace(p.Text)
}

// PromptClient reads prompts from the Langfuse public prompt API.
type PromptClient struct {
	baseURL    string
	publicKey  string
	secretKey  string
	httpClient *http.Client
}

// NewPromptClient shares Config with NewClient. Get fails with
// ErrPromptsDisabled unless the base URL and both keys are set.
func NewPromptClient(cfg Config) *PromptClient {
	return &PromptClient{
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		publicKey:  cfg.PublicKey,
		secretKey:  cfg.SecretKey,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *PromptClient) enabled() bool {
	return c != nil && c.baseURL != "" && c.publicKey != "" && c.secretKey != ""
}

// Get fetches the prompt version carrying label, or the latest production
// version when label is empty. Chat prompts are flattened to plain text.
func (c *PromptClient) Get(ctx context.Context, name, label string) (Prompt, error) {
	if !c.enabled() {
		return Prompt{}, ErrPromptsDisabled
	}

	u, err := url.Parse(c.baseURL)
	if err != nil {
		return Prompt{}, fmt.Errorf("invalid LANGFUSE_BASE_URL: %w", err)
	}
	u.Path = strings.TrimSuffix(u.Path, "/") + "/api/public/v2/prompts/" + url.PathEscape(name)
	if label != "" {
		u.RawQuery = url.Values{"label": {label}}.Encode()
	}

	ctx, cancel := context.WithTimeout(ctx, asyncTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return Prompt{}, fmt.Errorf("create prompt request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.SetBasicAuth(c.publicKey, c.secretKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Prompt{}, fmt.Errorf("call prompt API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return Prompt{}, fmt.Errorf("prompt API returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload struct {
		Name    string          `json:"name"`
		Version int             `json:"version"`
		Type    string          `json:"type"`
		Prompt  json.RawMessage `json:"prompt"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return Prompt{}, fmt.Errorf("decode prompt response: %w", err)
	}

	text, err := promptText(payload.Type, payload.Prompt)
	if err != nil {
		return Prompt{}, err
	}
	if payload.Name == "" {
		payload.Name = name
	}
	return Prompt{Name: payload.Name, Version: payload.Version, Text: text}, nil
}

type chatMessage struct {
	Type    string `json:"type"`
	Role    string `json:"role"`
	Content string `json:"content"`
	Name    string `json:"name"`
}

func promptText(kind string, raw json.RawMessage) (string, error) {
	switch kind {
	case "", "text":
		var text string
		if err := json.Unmarshal(raw, &text); err != nil {
			return "", fmt.Errorf("parse text prompt: %w", err)
		}
		return text, nil
	case "chat":
		var messages []chatMessage
		if err := json.Unmarshal(raw, &messages); err != nil {
			return "", fmt.Errorf("parse chat prompt: %w", err)
		}
		return flattenChat(messages), nil
	default:
		return "", fmt.Errorf("unsupported prompt type %q", kind)
	}
}

// flattenChat renders messages as "ROLE: content" blocks. Placeholders
// become {{name}} so Compile can fill them.
func flattenChat(messages []chatMessage) string {
	var b strings.Builder
	for _, msg := range messages {
		content := msg.Content
		if msg.Type == "placeholder" {
			if msg.Name == "" {
				continue
			}
			content = "{{" + msg.Name + "}}"
		}
		if content == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteString("\n\n")
		}
		role := msg.Role
		if role == "" {
			role = "message"
		}
		b.WriteString(strings.ToUpper(role))
		b.WriteString(": ")
		b.WriteString(content)
	}
	return b.String()
}
