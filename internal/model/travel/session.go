package travel

import "time"

// Speaker identifies who produced a turn.
type Speaker string

const (
	SpeakerUser      Speaker = "user"
	SpeakerAssistant Speaker = "assistant"
)

// Turn is one utterance in the conversation log.
type Turn struct {
	Speaker   Speaker   `json:"speaker"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

// Session captures the durable per-conversation state: the turn log, the
// category being filled and the slot values collected so far.
type Session struct {
	ID             string            `json:"id"`
	Turns          []Turn            `json:"turns"`
	CollectedData  map[string]string `json:"collectedData"`
	ActiveCategory Category          `json:"activeCategory,omitempty"`
	CreatedAt      time.Time         `json:"createdAt"`
}

// NewSession returns an empty session with the given identifier.
func NewSession(id string) *Session {
	return &Session{
		ID:            id,
		Turns:         make([]Turn, 0, 16),
		CollectedData: make(map[string]string),
		CreatedAt:     time.Now().UTC(),
	}
}

// AppendTurn records an utterance in the session log.
func (s *Session) AppendTurn(speaker Speaker, content string) {
	s.Turns = append(s.Turns, Turn{
		Speaker:   speaker,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	})
}

// EnterCategory switches the session to a freshly classified category and
// discards slot values collected for the previous one.
func (s *Session) EnterCategory(c Category) {
	s.ActiveCategory = c
	s.CollectedData = make(map[string]string)
}
