package llm

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/blaisecz/zenith/internal/langfuse"
	"github.com/blaisecz/zenith/internal/logger"
)

// PromptFetcher returns a managed prompt by name and label.
type PromptFetcher interface {
	Get(ctx context.Context, name, label string) (langfuse.Prompt, error)
}

// NarrativePromptConfig locates the narrative system prompt.
type NarrativePromptConfig struct {
	// Name of the managed prompt; empty skips the fetch.
	Name  string
	Label string
	// CachePath keeps the last fetched prompt for runs where Langfuse is unreachable.
	CachePath  string
	WindowDays int
}

// LoadNarrativePrompt resolves the narrative system prompt in order: the
// managed prompt (written through to CachePath), the cached copy, then
// DefaultSystemPrompt. {{window_days}} is filled in whichever text wins.
func LoadNarrativePrompt(ctx context.Context, fetcher PromptFetcher, cfg NarrativePromptConfig) string {
	vars := map[string]string{"window_days": strconv.Itoa(cfg.WindowDays)}

	if fetcher != nil && cfg.Name != "" {
		prompt, err := fetcher.Get(ctx, cfg.Name, cfg.Label)
		switch {
		case err == nil && strings.TrimSpace(prompt.Text) != "":
			logger.Info("Loaded narrative prompt", "name", prompt.Name, "version", prompt.Version)
			if err := writeCachedPrompt(cfg.CachePath, prompt.Text); err != nil {
				logger.Warn("Failed to cache narrative prompt", "path", cfg.CachePath, "error", err)
			}
			return prompt.Compile(vars)
		case err == nil:
			logger.Warn("Managed narrative prompt is empty", "name", cfg.Name)
		case !errors.Is(err, langfuse.ErrPromptsDisabled):
			logger.Warn("Narrative prompt fetch failed", "name", cfg.Name, "error", err)
		}
	}

	if text, err := readCachedPrompt(cfg.CachePath); err == nil {
		logger.Info("Loaded cached narrative prompt", "path", cfg.CachePath)
		return langfuse.Prompt{Text: text}.Compile(vars)
	} else if cfg.CachePath != "" {
		logger.Debug("No cached narrative prompt", "reason", err)
	}

	return DefaultSystemPrompt
}

func readCachedPrompt(path string) (string, error) {
	if path == "" {
		return "", errors.New("no prompt cache path configured")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	text := strings.TrimSpace(string(data))
	if text == "" {
		return "", fmt.Errorf("prompt cache %s is empty", path)
	}
	return text, nil
}

func writeCachedPrompt(path, text string) error {
	if path == "" {
		return nil
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, []byte(text), 0o600)
}
