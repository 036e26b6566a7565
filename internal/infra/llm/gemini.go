package llm

import (
	"context"
	"log/slog"
	"strings"

	"shopbot/config"
	"shopbot/internal/domain/constants"
	"shopbot/internal/domain/entity"
	"shopbot/internal/domain/service"
	"shopbot/internal/errors"

	"go.uber.org/fx"
	"google.golang.org/genai"
)

// contentGenerator is the slice of *genai.Models the generator uses.
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

type geminiGenerator struct {
	models          contentGenerator
	model           string
	temperature     float32
	maxOutputTokens int32
	logger          *slog.Logger
}

// NewGeminiGenerator creates a Gemini API client for replies.
func NewGeminiGenerator(ctx context.Context, cfg *config.LLMConfig, logger *slog.Logger) (service.ReplyGenerator, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Gemini client")
	}

	return newGeminiGenerator(client.Models, cfg, logger), nil
}

func newGeminiGenerator(models contentGenerator, cfg *config.LLMConfig, logger *slog.Logger) *geminiGenerator {
	return &geminiGenerator{
		models:          models,
		model:           cfg.Model,
		temperature:     cfg.Temperature,
		maxOutputTokens: cfg.MaxOutputTokens,
		logger:          logger,
	}
}

// GenerateReply asks the model and falls back to the static templates when the call
// fails or returns no text. The reply is advisory, so a model outage never fails a turn.
func (g *geminiGenerator) GenerateReply(ctx context.Context, req *service.ReplyRequest) (string, error) {
	reply, err := g.generate(ctx, req)
	if err != nil {
		g.logger.WarnContext(ctx, "[Gemini] Falling back to static reply",
			slog.String("model", g.model),
			slog.Any("error", err),
		)

		return StaticReply(req), nil
	}

	return reply, nil
}

func (g *geminiGenerator) generate(ctx context.Context, req *service.ReplyRequest) (string, error) {
	temperature := g.temperature
	generateConfig := &genai.GenerateContentConfig{
		Temperature:     &temperature,
		MaxOutputTokens: g.maxOutputTokens,
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{genai.NewPartFromText(BuildSystemPrompt(req))},
		},
	}

	resp, err := g.models.GenerateContent(ctx, g.model, buildContents(req), generateConfig)
	if err != nil {
		return "", errors.Wrap(err, "gemini api error")
	}
	if resp == nil || len(resp.Candidates) == 0 {
		return "", errors.New("no candidates in gemini response")
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil {
		return "", errors.New("no content in gemini response")
	}

	var b strings.Builder
	for _, part := range candidate.Content.Parts {
		b.WriteString(part.Text)
	}

	reply := strings.TrimSpace(b.String())
	if reply == "" {
		return "", errors.Errorf("empty gemini reply (finish reason %s)", candidate.FinishReason)
	}

	if resp.UsageMetadata != nil {
		g.logger.DebugContext(ctx, "[Gemini] Reply generated",
			slog.Int("prompt_tokens", int(resp.UsageMetadata.PromptTokenCount)),
			slog.Int("output_tokens", int(resp.UsageMetadata.CandidatesTokenCount)),
		)
	}

	return reply, nil
}

// buildContents maps stored history to model turns and appends the current turn.
func buildContents(req *service.ReplyRequest) []*genai.Content {
	contents := make([]*genai.Content, 0, len(req.History)+1)
	for _, message := range req.History {
		role := genai.Role(genai.RoleUser)
		if message.Role == entity.MessageRoleAssistant {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(message.Body, role))
	}

	return append(contents, genai.NewContentFromText(req.Turn, genai.RoleUser))
}

// Params holds dependencies for the reply generator provider.
type Params struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewReplyGenerator selects Gemini when an API key is configured, else the static templates.
func NewReplyGenerator(params Params) (service.ReplyGenerator, error) {
	cfg := params.Config.LLM
	if cfg == nil || cfg.Provider == constants.LLMProviderStatic || cfg.APIKey == "" {
		params.Logger.Info("Using static reply generator")

		return NewStaticGenerator(), nil
	}

	if cfg.Provider != "" && cfg.Provider != constants.LLMProviderGemini {
		return nil, errors.Errorf("unknown llm provider: %s", cfg.Provider)
	}

	params.Logger.Info("Using Gemini reply generator", slog.String("model", cfg.Model))

	return NewGeminiGenerator(params.Ctx, cfg, params.Logger)
}
