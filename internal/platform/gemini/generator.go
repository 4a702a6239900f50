package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/hablaconmigo/habla-api/internal/config"
	"github.com/hablaconmigo/habla-api/internal/generation"
)

// GeminiGenerator implements generation.MorphologicalGenerator and
// generation.TranslationProvider using Google's Gemini API.
type GeminiGenerator struct {
	logger *slog.Logger
	config config.LLMConfig
	client *genai.Client
	model  string
}

// Ensure interface compliance
var (
	_ generation.MorphologicalGenerator = (*GeminiGenerator)(nil)
	_ generation.TranslationProvider    = (*GeminiGenerator)(nil)
)

// NewGeminiGenerator creates a new instance of GeminiGenerator with the
// provided dependencies.
func NewGeminiGenerator(ctx context.Context, logger *slog.Logger, cfg config.LLMConfig) (*GeminiGenerator, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("%w: gemini API key cannot be empty", generation.ErrInvalidConfig)
	}

	if cfg.ModelName == "" {
		return nil, fmt.Errorf("%w: model name cannot be empty", generation.ErrInvalidConfig)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %v",
			generation.ErrInvalidConfig, err)
	}

	return &GeminiGenerator{
		logger: logger.With(slog.String("component", "gemini_generator")),
		config: cfg,
		client: client,
		model:  cfg.ModelName,
	}, nil
}

// formsResponse is the JSON shape requested from the model for a single
// base word.
type formsResponse struct {
	Forms []generation.GeneratedForm `json:"forms"`
}

// batchResponse is the JSON shape requested for a batch of base words.
type batchResponse struct {
	Words []struct {
		Word  string                     `json:"word"`
		Forms []generation.GeneratedForm `json:"forms"`
	} `json:"words"`
}

// GenerateForms implements generation.MorphologicalGenerator.GenerateForms.
func (g *GeminiGenerator) GenerateForms(ctx context.Context, req generation.FormRequest) ([]generation.GeneratedForm, error) {
	if strings.TrimSpace(req.Word) == "" {
		return nil, generation.ErrEmptyInput
	}

	text, err := g.callWithRetry(ctx, singleWordPrompt(req))
	if err != nil {
		return nil, err
	}

	var parsed formsResponse
	if err := json.Unmarshal([]byte(stripCodeFence(text)), &parsed); err != nil {
		return nil, fmt.Errorf("%w: failed to parse forms JSON: %v",
			generation.ErrInvalidResponse, err)
	}

	return parsed.Forms, nil
}

// GenerateFormsBatch implements generation.MorphologicalGenerator.GenerateFormsBatch.
func (g *GeminiGenerator) GenerateFormsBatch(
	ctx context.Context,
	reqs []generation.FormRequest,
) (map[string][]generation.GeneratedForm, error) {
	if len(reqs) == 0 {
		return map[string][]generation.GeneratedForm{}, nil
	}

	text, err := g.callWithRetry(ctx, batchPrompt(reqs))
	if err != nil {
		return nil, err
	}

	var parsed batchResponse
	if err := json.Unmarshal([]byte(stripCodeFence(text)), &parsed); err != nil {
		return nil, fmt.Errorf("%w: failed to parse batch JSON: %v",
			generation.ErrInvalidResponse, err)
	}

	forms := make(map[string][]generation.GeneratedForm, len(parsed.Words))
	for _, entry := range parsed.Words {
		word := strings.ToLower(strings.TrimSpace(entry.Word))
		if word == "" {
			continue
		}
		forms[word] = entry.Forms
	}

	return forms, nil
}

// Translate implements generation.TranslationProvider.Translate.
func (g *GeminiGenerator) Translate(ctx context.Context, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", generation.ErrEmptyInput
	}

	prompt := fmt.Sprintf(
		"Translate the following Spanish text to English. "+
			"Reply with the translation only, no explanation.\n\n%s", text)

	response, err := g.callWithRetry(ctx, prompt)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(response), nil
}

// callWithRetry makes a call to the Gemini API with exponential backoff
// retry logic. Transient errors (network, API availability) retry up to
// the configured limit; permanent errors (safety blocks, empty
// responses) return immediately.
func (g *GeminiGenerator) callWithRetry(ctx context.Context, prompt string) (string, error) {
	maxRetries := g.config.MaxRetries
	baseDelaySeconds := g.config.RetryDelaySeconds
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	if maxRetries < 0 {
		g.logger.WarnContext(ctx, "invalid max retries value, using default", "max_retries", 3)
		maxRetries = 3
	}

	if baseDelaySeconds < 1 {
		g.logger.WarnContext(ctx, "invalid retry delay value, using default", "base_delay_seconds", 2)
		baseDelaySeconds = 2
	}

	for attempt := 0; ; attempt++ {
		attemptNum := attempt + 1
		g.logger.DebugContext(ctx, "making Gemini API call",
			"attempt", attemptNum,
			"max_attempts", maxRetries+1)

		text, transient, err := g.callOnce(ctx, prompt)
		if err == nil {
			return text, nil
		}

		g.logger.ErrorContext(ctx, "Gemini API call failed",
			"attempt", attemptNum,
			"error", err)

		if !transient {
			return "", err
		}

		if attempt >= maxRetries {
			return "", fmt.Errorf("%w: exceeded maximum retry attempts (%d)",
				generation.ErrTransientFailure, maxRetries)
		}

		// delay = baseDelay * 2^attempt * (0.5 + rand(0, 0.5))
		backoffSeconds := float64(baseDelaySeconds) * math.Pow(2, float64(attempt))
		jitterFactor := 0.5 + rng.Float64()*0.5
		delay := time.Duration(backoffSeconds * jitterFactor * float64(time.Second))

		g.logger.InfoContext(ctx, "retrying after delay",
			"attempt", attemptNum,
			"delay", delay.String())

		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return "", fmt.Errorf("%w: %v", generation.ErrTransientFailure, ctx.Err())
		}
	}
}

// callOnce performs a single model call and classifies the failure mode.
func (g *GeminiGenerator) callOnce(ctx context.Context, prompt string) (text string, transient bool, err error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		// API-level errors are assumed transient; backoff decides.
		return "", true, fmt.Errorf("%w: %v", generation.ErrTransientFailure, err)
	}

	if resp == nil || len(resp.Candidates) == 0 {
		return "", false, fmt.Errorf("%w: no content generated", generation.ErrInvalidResponse)
	}

	if resp.Candidates[0].FinishReason == genai.FinishReasonSafety {
		return "", false, fmt.Errorf("%w: safety filter", generation.ErrContentBlocked)
	}

	text = resp.Text()
	if strings.TrimSpace(text) == "" {
		return "", false, fmt.Errorf("%w: empty response text", generation.ErrInvalidResponse)
	}

	return text, false, nil
}

// singleWordPrompt builds the generation prompt for one base word.
func singleWordPrompt(req generation.FormRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Generate inflected Spanish forms for the %s %q.\n", posLabel(req.POS), req.Word)
	writeFormInstructions(&b, req)
	b.WriteString("\nRespond with JSON only, shaped as:\n")
	b.WriteString(`{"forms": [{"form": "...", "form_type": "...", "person": "...", "number": "...", "gender": "...", "tense": "...", "mood": "..."}]}`)
	b.WriteString("\nOmit tags that do not apply. Do not include the base form itself.")
	return b.String()
}

// batchPrompt builds one prompt covering several base words.
func batchPrompt(reqs []generation.FormRequest) string {
	var b strings.Builder
	b.WriteString("Generate inflected Spanish forms for each of the following words.\n\n")
	for _, req := range reqs {
		fmt.Fprintf(&b, "- %q (%s)", req.Word, posLabel(req.POS))
		if len(req.Tenses) > 0 {
			fmt.Fprintf(&b, ", tenses: %s", strings.Join(req.Tenses, ", "))
		}
		b.WriteString("\n")
	}
	b.WriteString("\nFor verbs produce the six present-person conjugations per requested tense")
	b.WriteString(" (form_type \"verb_conjugation\"), for nouns the plural (form_type \"noun_plural\"),")
	b.WriteString(" for adjectives the four gender/number agreement forms (form_type \"adjective_agreement\").\n")
	b.WriteString("Respond with JSON only, shaped as:\n")
	b.WriteString(`{"words": [{"word": "...", "forms": [{"form": "...", "form_type": "...", "person": "...", "number": "...", "gender": "...", "tense": "...", "mood": "..."}]}]}`)
	b.WriteString("\nOmit tags that do not apply. Do not include the base forms themselves.")
	return b.String()
}

func writeFormInstructions(b *strings.Builder, req generation.FormRequest) {
	switch req.POS {
	case "verb":
		tenses := req.Tenses
		if len(tenses) == 0 {
			tenses = []string{"present"}
		}
		fmt.Fprintf(b, "Conjugate it for all six persons in each of these tenses: %s. "+
			"Use form_type \"verb_conjugation\" and fill person, number, tense, and mood.\n",
			strings.Join(tenses, ", "))
	case "adjective":
		b.WriteString("Produce the four gender/number agreement forms " +
			"(masculine/feminine x singular/plural) with form_type \"adjective_agreement\".\n")
	default:
		b.WriteString("Produce the plural form with form_type \"noun_plural\".\n")
	}
}

func posLabel(pos string) string {
	switch pos {
	case "verb", "adjective", "noun":
		return pos
	default:
		return "word"
	}
}

// stripCodeFence removes a wrapping markdown code fence from model
// output. Models regularly wrap JSON in ```json blocks despite
// instructions not to.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}

	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
