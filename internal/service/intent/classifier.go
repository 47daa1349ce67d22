package intent

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"

	"github.com/skolathu-cds/smart-travel-consultant/internal/model/travel"
)

const classifierSystemPrompt = "You are a classifier for a travel assistant. " +
	"Classify the user's query into exactly one of these categories: " +
	"visa, hotel, flight, event, city, generic. " +
	"Use visa for visa or immigration requirements, hotel for accommodation, " +
	"flight for flights and airfare, event for events and conferences, " +
	"city for city or airport information, and generic for anything else. " +
	"Respond with the single category word only."

// chatRunnable is the slice of compose.Runnable the classifier needs.
type chatRunnable interface {
	Invoke(ctx context.Context, input map[string]any, opts ...compose.Option) (*schema.Message, error)
}

// Classifier maps a raw utterance onto a travel category using the chat
// model. It never fails its caller: any transport or parse problem
// degrades to the generic category.
type Classifier struct {
	chain chatRunnable
}

// NewClassifier compiles the classification chain on top of chatModel.
func NewClassifier(ctx context.Context, chatModel model.ChatModel) (*Classifier, error) {
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
		return nil, fmt.Errorf("failed to compile classifier chain: %w", err)
	}

	return &Classifier{chain: runnable}, nil
}

// Classify resolves the category for an utterance.
func (c *Classifier) Classify(ctx context.Context, utterance string) travel.Category {
	if c == nil || c.chain == nil {
		return travel.CategoryGeneric
	}

	input := map[string]any{
		"system": classifierSystemPrompt,
		"query":  utterance,
	}

	msg, err := c.chain.Invoke(ctx, input)
	if err != nil {
		log.Printf("[intent] classification failed, falling back to generic: %v", err)
		return travel.CategoryGeneric
	}
	if msg == nil || strings.TrimSpace(msg.Content) == "" {
		log.Printf("[intent] empty classifier response, falling back to generic")
		return travel.CategoryGeneric
	}

	category, ok := travel.ParseCategory(firstToken(msg.Content))
	if !ok {
		log.Printf("[intent] unrecognized classifier response %q, falling back to generic", msg.Content)
		return travel.CategoryGeneric
	}

	log.Printf("[intent] classified query as %s", category)
	return category
}

// firstToken extracts the leading word of the model reply, stripping the
// punctuation models like to append.
func firstToken(content string) string {
	fields := strings.Fields(strings.TrimSpace(content))
	if len(fields) == 0 {
		return ""
	}
	return strings.Trim(fields[0], ".,:;!\"'")
}
