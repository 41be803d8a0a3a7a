package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	_ "embed"

	"github.com/alexandarmartin-KC/cvside/internal/ai"
	"github.com/alexandarmartin-KC/cvside/internal/utils"
	"github.com/mitchellh/mapstructure"
	"go.uber.org/zap"
)

type contentGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

//go:embed prompt.md
var promptTemplate string

const (
	defaultMaxLogLength = 200
	retryBackoff        = 2 * time.Second
)

// Extractor implements ai.Extractor on top of a Gemini content generator.
type Extractor struct {
	generator  contentGenerator
	logger     *zap.Logger
	maxRetries int
	maxLogLen  int
}

func NewExtractor(generator contentGenerator, logger *zap.Logger, maxRetries, maxLogLength int) *Extractor {
	if logger == nil {
		logger = zap.NewNop()
	}
	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}
	if maxRetries < 0 {
		maxRetries = 0
	}

	return &Extractor{
		generator:  generator,
		logger:     logger,
		maxRetries: maxRetries,
		maxLogLen:  maxLogLength,
	}
}

// ExtractExperience sends the CV text to Gemini and parses the response
// into candidates. Transport errors are retried with a fixed backoff; a
// malformed final response surfaces as an error for the caller to downgrade
// to zero entries.
func (e *Extractor) ExtractExperience(ctx context.Context, text string) ([]ai.Candidate, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	prompt := strings.ReplaceAll(promptTemplate, "{{CV_TEXT}}", text)

	e.logger.Debug("gemini experience extraction request",
		zap.Int("prompt_length", utf8.RuneCountInString(prompt)),
		zap.String("prompt_preview", utils.TruncateForLog(prompt, e.maxLogLen)),
	)

	var raw string
	var err error
	for attempt := 0; ; attempt++ {
		raw, err = e.generator.GenerateContent(ctx, prompt)
		if err == nil {
			break
		}
		if attempt >= e.maxRetries {
			return nil, fmt.Errorf("gemini experience extraction: %w", err)
		}

		e.logger.Warn("gemini request failed, retrying",
			zap.Int("attempt", attempt+1),
			zap.Error(err),
		)
		if werr := utils.WaitFor(ctx, retryBackoff); werr != nil {
			return nil, werr
		}
	}

	e.logger.Debug("gemini experience extraction response",
		zap.Int("response_length", utf8.RuneCountInString(raw)),
		zap.String("response_preview", utils.TruncateForLog(raw, e.maxLogLen)),
	)

	return parseCandidates(raw)
}

// parseCandidates decodes a JSON array of employment objects, tolerating a
// surrounding markdown code fence.
func parseCandidates(raw string) ([]ai.Candidate, error) {
	cleaned := extractJSON(raw)

	var items []map[string]any
	if err := json.Unmarshal([]byte(cleaned), &items); err != nil {
		return nil, fmt.Errorf("parse gemini response: %w", err)
	}

	var candidates []ai.Candidate
	cfg := &mapstructure.DecoderConfig{
		Result:           &candidates,
		TagName:          "json",
		WeaklyTypedInput: true,
	}
	decoder, err := mapstructure.NewDecoder(cfg)
	if err != nil {
		return nil, fmt.Errorf("build candidate decoder: %w", err)
	}
	if err := decoder.Decode(items); err != nil {
		return nil, fmt.Errorf("decode gemini candidates: %w", err)
	}

	kept := candidates[:0]
	for _, c := range candidates {
		if strings.TrimSpace(c.Company) == "" && strings.TrimSpace(c.Role) == "" {
			continue
		}
		kept = append(kept, c)
	}

	return kept, nil
}

func extractJSON(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```json")
		raw = strings.TrimPrefix(raw, "```")
		raw = strings.TrimSpace(raw)
		if idx := strings.LastIndex(raw, "```"); idx != -1 {
			raw = raw[:idx]
		}
	}
	raw = strings.Trim(raw, "`")
	return strings.TrimSpace(raw)
}
