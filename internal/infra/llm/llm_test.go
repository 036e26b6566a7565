package llm

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"shopbot/config"
	"shopbot/internal/domain/entity"
	"shopbot/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func sampleProducts() []*entity.Product {
	return []*entity.Product{
		{ID: 1, Name: "Машины татлага олс", Price: 39900, Description: "5 м урт, 18 тн даац", Available: true},
		{ID: 2, Name: "Искра озон аппарат", Price: 52000, Description: "Озон үүсгэгч", Instruction: "1) Арьсаа угааж хуурайшуулах", Available: true},
	}
}

func TestFormatCatalog(t *testing.T) {
	assert.Equal(t, EmptyCatalogReply, FormatCatalog(nil))

	expected := "1. Машины татлага олс\n- Үнэ: 39900₮\n- 5 м урт, 18 тн даац\n\n" +
		"2. Искра озон аппарат\n- Үнэ: 52000₮\n- Озон үүсгэгч\n- Заавар: 1) Арьсаа угааж хуурайшуулах"
	assert.Equal(t, expected, FormatCatalog(sampleProducts()))
}

func TestBuildSystemPrompt(t *testing.T) {
	req := &service.ReplyRequest{
		Turn:  "олс байна уу",
		Match: &entity.MatchResult{Outcome: entity.MatchOutcomeAlternatives, Offerable: sampleProducts()},
		Order: &entity.Order{Status: entity.OrderStatusPending, Phone: "99110022"},
	}

	prompt := BuildSystemPrompt(req)
	assert.Contains(t, prompt, GreetingReply)
	assert.Contains(t, prompt, "1. Машины татлага олс")
	assert.Contains(t, prompt, "дууссан")
	assert.Contains(t, prompt, "дутуу: хүргэх хаяг, бараа.")
	assert.NotContains(t, prompt, "дутуу: утасны дугаар")

	req.Order.Status = entity.OrderStatusReady
	req.BecameReady = true
	assert.Contains(t, BuildSystemPrompt(req), "Захиалгын төлөв: баталгаажсан.")
}

func TestStaticReply(t *testing.T) {
	products := sampleProducts()
	item := []*entity.OrderItem{{Name: products[0].Name, UnitPrice: products[0].Price, Quantity: 1}}

	tests := []struct {
		name     string
		req      *service.ReplyRequest
		expected string
		contains string
	}{
		{
			name:     "greeting",
			req:      &service.ReplyRequest{Turn: "Сайн байна уу?", Match: &entity.MatchResult{Outcome: entity.MatchOutcomeBrowse, Offerable: products}},
			expected: GreetingReply,
		},
		{
			name:     "transition confirms",
			req:      &service.ReplyRequest{Turn: "олс", BecameReady: true, Order: &entity.Order{Status: entity.OrderStatusReady}},
			expected: ConfirmedReply,
		},
		{
			name:     "item without contact",
			req:      &service.ReplyRequest{Turn: "олс авъя", Order: &entity.Order{Status: entity.OrderStatusPending, Items: item}},
			expected: AskContactReply,
		},
		{
			name:     "item with phone only",
			req:      &service.ReplyRequest{Turn: "99110022", Order: &entity.Order{Status: entity.OrderStatusPending, Phone: "99110022", Items: item}},
			expected: AskAddressReply,
		},
		{
			name:     "item with address only",
			req:      &service.ReplyRequest{Turn: "хаяг: БЗД", Order: &entity.Order{Status: entity.OrderStatusPending, Address: "Баянзүрх дүүрэг", Items: item}},
			expected: AskPhoneReply,
		},
		{
			name:     "empty catalog",
			req:      &service.ReplyRequest{Turn: "олс", Match: &entity.MatchResult{Outcome: entity.MatchOutcomeEmptyCatalog}},
			expected: EmptyCatalogReply,
		},
		{
			name:     "alternatives",
			req:      &service.ReplyRequest{Turn: "залгуур", Match: &entity.MatchResult{Outcome: entity.MatchOutcomeAlternatives, Offerable: products}},
			contains: AlternativesIntro,
		},
		{
			name:     "no match",
			req:      &service.ReplyRequest{Turn: "гутал", Match: &entity.MatchResult{Outcome: entity.MatchOutcomeNoMatch, Offerable: products}},
			contains: NoMatchIntro,
		},
		{
			name:     "matched",
			req:      &service.ReplyRequest{Turn: "олс", Match: &entity.MatchResult{Outcome: entity.MatchOutcomeMatched, Offerable: products[:1]}},
			contains: "1. Машины татлага олс",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reply := StaticReply(tt.req)
			if tt.expected != "" {
				assert.Equal(t, tt.expected, reply)
			}
			if tt.contains != "" {
				assert.Contains(t, reply, tt.contains)
			}
		})
	}
}

func TestIsGreeting(t *testing.T) {
	assert.True(t, IsGreeting("Сайн байна уу"))
	assert.True(t, IsGreeting("sn bn uu!"))
	assert.False(t, IsGreeting("Сайн байна уу, олс байгаа юу"))
	assert.False(t, IsGreeting("   "))
}

type fakeModels struct {
	resp     *genai.GenerateContentResponse
	err      error
	model    string
	contents []*genai.Content
	config   *genai.GenerateContentConfig
}

func (f *fakeModels) GenerateContent(_ context.Context, model string, contents []*genai.Content, cfg *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	f.model = model
	f.contents = contents
	f.config = cfg

	return f.resp, f.err
}

func textResponse(parts ...string) *genai.GenerateContentResponse {
	content := &genai.Content{Role: string(genai.RoleModel)}
	for _, part := range parts {
		content.Parts = append(content.Parts, genai.NewPartFromText(part))
	}

	return &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{Content: content}}}
}

func testLLMConfig() *config.LLMConfig {
	return &config.LLMConfig{Model: "gemini-2.5-flash", Temperature: 0.2, MaxOutputTokens: 1000}
}

func TestGeminiGenerator_SendsHistoryAndSettings(t *testing.T) {
	models := &fakeModels{resp: textResponse("Сайн байна уу, ", "та ямар бараа сонирхож байна?")}
	generator := newGeminiGenerator(models, testLLMConfig(), newDiscardLogger())

	req := &service.ReplyRequest{
		Turn: "олс байна уу",
		History: []*entity.Message{
			{Role: entity.MessageRoleUser, Body: "сайн уу"},
			{Role: entity.MessageRoleAssistant, Body: GreetingReply},
		},
		Match: &entity.MatchResult{Outcome: entity.MatchOutcomeMatched, Offerable: sampleProducts()},
	}

	reply, err := generator.GenerateReply(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, GreetingReply, reply)

	assert.Equal(t, "gemini-2.5-flash", models.model)
	require.Len(t, models.contents, 3)
	assert.Equal(t, string(genai.RoleUser), models.contents[0].Role)
	assert.Equal(t, string(genai.RoleModel), models.contents[1].Role)
	assert.Equal(t, "олс байна уу", models.contents[2].Parts[0].Text)

	require.NotNil(t, models.config.Temperature)
	assert.InDelta(t, 0.2, *models.config.Temperature, 1e-6)
	assert.Equal(t, int32(1000), models.config.MaxOutputTokens)
	assert.Contains(t, models.config.SystemInstruction.Parts[0].Text, "Машины татлага олс")
}

func TestGeminiGenerator_FallsBackToStatic(t *testing.T) {
	req := &service.ReplyRequest{Turn: "олс", Match: &entity.MatchResult{Outcome: entity.MatchOutcomeEmptyCatalog}}

	tests := []struct {
		name   string
		models *fakeModels
	}{
		{name: "api error", models: &fakeModels{err: assert.AnError}},
		{name: "no candidates", models: &fakeModels{resp: &genai.GenerateContentResponse{}}},
		{name: "blank text", models: &fakeModels{resp: textResponse("  ")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			generator := newGeminiGenerator(tt.models, testLLMConfig(), newDiscardLogger())

			reply, err := generator.GenerateReply(context.Background(), req)
			require.NoError(t, err)
			assert.Equal(t, EmptyCatalogReply, reply)
		})
	}
}

func TestNewReplyGenerator_StaticWithoutKey(t *testing.T) {
	generator, err := NewReplyGenerator(Params{
		Ctx:    context.Background(),
		Config: &config.Config{LLM: &config.LLMConfig{Provider: "gemini"}},
		Logger: newDiscardLogger(),
	})
	require.NoError(t, err)
	assert.IsType(t, staticGenerator{}, generator)

	_, err = NewReplyGenerator(Params{
		Ctx:    context.Background(),
		Config: &config.Config{LLM: &config.LLMConfig{Provider: "openai", APIKey: "key"}},
		Logger: newDiscardLogger(),
	})
	assert.Error(t, err)
}
