// ABOUTME: Gateway construction and the chat-completion transport wrapper.
// ABOUTME: All five operations are stateless; state is passed in per call.
package gateway

import (
	"context"
	"errors"

	openai "github.com/sashabaranov/go-openai"

	"github.com/sehatsense/sehat/pkg/logger"
)

// completer is the narrow slice of the OpenAI client the gateway uses.
// Tests substitute a fake.
type completer interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Gateway translates domain state into model requests and model
// responses back into validated domain objects.
type Gateway struct {
	api         completer
	textModel   string
	visionModel string
	log         *logger.Logger
}

// New creates a gateway backed by the OpenAI API.
func New(apiKey, textModel, visionModel string, log *logger.Logger) *Gateway {
	return &Gateway{
		api:         openai.NewClient(apiKey),
		textModel:   textModel,
		visionModel: visionModel,
		log:         log,
	}
}

// newWithCompleter wires a custom transport. Used by tests.
func newWithCompleter(api completer, log *logger.Logger) *Gateway {
	return &Gateway{
		api:         api,
		textModel:   "test-model",
		visionModel: "test-vision-model",
		log:         log,
	}
}

// complete sends one chat completion request and returns the reply text.
// Transport failures and empty responses surface as *ServiceError.
func (g *Gateway) complete(ctx context.Context, op, model string, messages []openai.ChatCompletionMessage, temperature float32) (string, error) {
	resp, err := g.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       model,
		Messages:    messages,
		Temperature: temperature,
	})
	if err != nil {
		return "", &ServiceError{Op: op, Err: err}
	}
	if len(resp.Choices) == 0 {
		return "", &ServiceError{Op: op, Err: errEmptyResponse}
	}
	return resp.Choices[0].Message.Content, nil
}

var errEmptyResponse = errors.New("model returned no choices")
