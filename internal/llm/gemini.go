package llm

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"
	"google.golang.org/api/option"

	"github.com/baanpim/hotel-assistant/pkg/logger"
	"github.com/baanpim/hotel-assistant/pkg/metrics"
)

// GeminiClient creates Gemini chat sessions configured with the assistant's
// system instruction and tool catalog.
type GeminiClient struct {
	client    *genai.Client
	model     *genai.GenerativeModel
	modelName string
	logger    *logger.Logger
}

// NewGeminiClient creates a Gemini client.
func NewGeminiClient(ctx context.Context, apiKey, modelName string, log *logger.Logger) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, errors.New("Gemini API key is required")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}

	if modelName == "" {
		modelName = "gemini-2.5-flash"
	}

	model := client.GenerativeModel(modelName)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(systemInstruction)},
	}
	model.Tools = []*genai.Tool{
		{FunctionDeclarations: toolCatalog()},
	}

	return &GeminiClient{
		client:    client,
		model:     model,
		modelName: modelName,
		logger:    log,
	}, nil
}

// Close releases the underlying API client.
func (c *GeminiClient) Close() error {
	return c.client.Close()
}

// StartSession creates one stateful chat handle. Conversation state lives in
// the provider; there are no local side effects.
func (c *GeminiClient) StartSession(ctx context.Context) (Session, error) {
	return &geminiSession{
		chat:   c.model.StartChat(),
		model:  c.modelName,
		logger: c.logger,
	}, nil
}

type geminiSession struct {
	chat   *genai.ChatSession
	model  string
	logger *logger.Logger
}

// SendUserTurn appends a user turn to the chat.
func (s *geminiSession) SendUserTurn(ctx context.Context, text string) (*Reply, error) {
	start := time.Now()

	resp, err := s.chat.SendMessage(ctx, genai.Text(text))
	if err != nil {
		metrics.RecordLLMTurn(s.model, "user_turn", "error", time.Since(start).Seconds())
		s.logger.Error("failed to send user turn", zap.Error(err))
		return nil, &ModelCommunicationError{Op: "get response from Gemini API", Err: err}
	}

	metrics.RecordLLMTurn(s.model, "user_turn", "ok", time.Since(start).Seconds())
	return parseReply(resp), nil
}

// SendFunctionResult appends a function outcome to the chat. The provider's
// protocol requires a structured payload, so non-object results are wrapped
// before transmission.
func (s *geminiSession) SendFunctionResult(ctx context.Context, call FunctionCall, result any) (*Reply, error) {
	start := time.Now()

	resp, err := s.chat.SendMessage(ctx, genai.FunctionResponse{
		Name:     call.Name,
		Response: functionResultPayload(result),
	})
	if err != nil {
		metrics.RecordLLMTurn(s.model, "function_result", "error", time.Since(start).Seconds())
		s.logger.Error("failed to send function result",
			zap.String("function", call.Name),
			zap.Error(err),
		)
		return nil, &ModelCommunicationError{Op: "send function result to Gemini API", Err: err}
	}

	metrics.RecordLLMTurn(s.model, "function_result", "ok", time.Since(start).Seconds())
	return parseReply(resp), nil
}

// functionResultPayload converts an arbitrary function result into the map
// payload Gemini requires. JSON objects pass through; arrays, primitives and
// strings are wrapped as {"result": value}.
func functionResultPayload(result any) map[string]any {
	raw, err := json.Marshal(result)
	if err != nil {
		return map[string]any{"result": "unserializable result"}
	}

	var decoded any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return map[string]any{"result": "unserializable result"}
	}

	if m, ok := decoded.(map[string]any); ok {
		return m
	}
	return map[string]any{"result": decoded}
}

// parseReply flattens a generate-content response into text plus the list of
// requested function calls, in the order the model returned them.
func parseReply(resp *genai.GenerateContentResponse) *Reply {
	reply := &Reply{}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return reply
	}

	for _, part := range resp.Candidates[0].Content.Parts {
		switch p := part.(type) {
		case genai.Text:
			reply.Text += string(p)
		case genai.FunctionCall:
			reply.FunctionCalls = append(reply.FunctionCalls, FunctionCall{
				Name: p.Name,
				Args: p.Args,
			})
		}
	}

	return reply
}
