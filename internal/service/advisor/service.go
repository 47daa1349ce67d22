package advisor

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"
)

const advisorSystemPrompt = "You are an experienced travel consultant. " +
	"Answer the request factually and concisely, and say so when you are unsure " +
	"instead of inventing details."

var errEmptyResponse = errors.New("empty model response")

// chatRunnable is the slice of compose.Runnable the service needs.
type chatRunnable interface {
	Invoke(ctx context.Context, input map[string]any, opts ...compose.Option) (*schema.Message, error)
}

// Service answers category information prompts through the chat model.
// Every category provider in the current deployment is backed by one of
// these; they differ only in the prompt handed to Fetch.
type Service struct {
	chain chatRunnable
}

// NewService compiles the advisory chain on top of chatModel.
func NewService(ctx context.Context, chatModel model.ChatModel) (*Service, error) {
	promptTemplate := prompt.FromMessages(
		schema.FString,
		schema.SystemMessage("{system}"),
		schema.UserMessage("{query}"),
	)

	chain := compose.NewChain[map[string]any, *schema.Message]()
	chain.AppendChatTemplate(promptTemplate)
	chain.AppendChatModel(chatModel)

	runnable, err := chain.Compile(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compile advisor chain: %w", err)
	}

	return &Service{chain: runnable}, nil
}

// Fetch runs the prompt through the model and returns its answer text.
func (s *Service) Fetch(ctx context.Context, promptText string) (string, error) {
	input := map[string]any{
		"system": advisorSystemPrompt,
		"query":  promptText,
	}

	msg, err := s.chain.Invoke(ctx, input)
	if err != nil {
		return "", fmt.Errorf("failed to run advisor chain: %w", err)
	}
	if msg == nil || strings.TrimSpace(msg.Content) == "" {
		return "", errEmptyResponse
	}

	log.Printf("[advisor] fetched %d bytes of information", len(msg.Content))
	return strings.TrimSpace(msg.Content), nil
}
