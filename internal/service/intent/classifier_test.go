package intent

import (
	"context"
	"errors"
	"testing"

	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"

	"github.com/skolathu-cds/smart-travel-consultant/internal/model/travel"
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

func TestClassifyParsesModelReply(t *testing.T) {
	cases := []struct {
		reply string
		want  travel.Category
	}{
		{"visa", travel.CategoryVisa},
		{"  Hotel \n", travel.CategoryHotel},
		{"FLIGHT.", travel.CategoryFlight},
		{"city: the query is about an airport", travel.CategoryCity},
		{"event", travel.CategoryEvent},
		{"generic", travel.CategoryGeneric},
	}

	for _, tc := range cases {
		c := &Classifier{chain: fakeRunnable{reply: tc.reply}}
		if got := c.Classify(context.Background(), "some query"); got != tc.want {
			t.Fatalf("Classify with reply %q = %s, want %s", tc.reply, got, tc.want)
		}
	}
}

func TestClassifyFallsBackToGenericOnUnknownReply(t *testing.T) {
	c := &Classifier{chain: fakeRunnable{reply: "weather forecast"}}
	if got := c.Classify(context.Background(), "some query"); got != travel.CategoryGeneric {
		t.Fatalf("expected generic, got %s", got)
	}
}

func TestClassifyFallsBackToGenericOnModelError(t *testing.T) {
	c := &Classifier{chain: fakeRunnable{err: errors.New("connection reset")}}
	if got := c.Classify(context.Background(), "some query"); got != travel.CategoryGeneric {
		t.Fatalf("expected generic, got %s", got)
	}
}

func TestClassifyFallsBackToGenericOnEmptyReply(t *testing.T) {
	c := &Classifier{chain: fakeRunnable{reply: "   "}}
	if got := c.Classify(context.Background(), "some query"); got != travel.CategoryGeneric {
		t.Fatalf("expected generic, got %s", got)
	}
}
