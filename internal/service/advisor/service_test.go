package advisor

import (
	"context"
	"errors"
	"testing"

	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"
)

type fakeRunnable struct {
	reply string
	err   error
}

func (f fakeRunnable) Invoke(_ context.Context, _ map[string]any, _ ...compose.Option) (*schema.Message, error) {
	if f.err != nil {
		return nil, f.err
	}
	return schema.AssistantMessage(f.reply, nil), nil
}

func TestFetchReturnsTrimmedAnswer(t *testing.T) {
	s := &Service{chain: fakeRunnable{reply: "  Visa on arrival is available.\n"}}

	got, err := s.Fetch(context.Background(), "prompt")
	if err != nil {
		t.Fatalf("Fetch err: %v", err)
	}
	if got != "Visa on arrival is available." {
		t.Fatalf("Fetch = %q", got)
	}
}

func TestFetchPropagatesModelError(t *testing.T) {
	s := &Service{chain: fakeRunnable{err: errors.New("deadline exceeded")}}

	if _, err := s.Fetch(context.Background(), "prompt"); err == nil {
		t.Fatal("expected error from failing model")
	}
}

func TestFetchRejectsEmptyAnswer(t *testing.T) {
	s := &Service{chain: fakeRunnable{reply: "  \n "}}

	if _, err := s.Fetch(context.Background(), "prompt"); err == nil {
		t.Fatal("expected error for empty model response")
	}
}
