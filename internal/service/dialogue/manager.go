package dialogue

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/skolathu-cds/smart-travel-consultant/internal/model/travel"
	"github.com/skolathu-cds/smart-travel-consultant/internal/service/advisor"
	"github.com/skolathu-cds/smart-travel-consultant/internal/service/session"
)

// turnApology is the reply for any failure the turn boundary has to absorb.
const turnApology = "I'm sorry, something went wrong while processing your query."

// Classifier resolves the category of an utterance. Implementations must
// degrade internally instead of returning errors.
type Classifier interface {
	Classify(ctx context.Context, utterance string) travel.Category
}

// Provider fetches information text for a fully built prompt.
type Provider interface {
	Fetch(ctx context.Context, prompt string) (string, error)
}

// Manager orchestrates a conversation turn: classify the utterance unless
// the session is mid slot-filling, collect the next slot value or dispatch
// to the category provider, and format the reply.
type Manager struct {
	classifier  Classifier
	providers   map[travel.Category]Provider
	store       *session.Store
	turnTimeout time.Duration
}

// NewManager wires the dialogue manager. A zero turnTimeout disables the
// per-turn deadline.
func NewManager(classifier Classifier, providers map[travel.Category]Provider, store *session.Store, turnTimeout time.Duration) *Manager {
	return &Manager{
		classifier:  classifier,
		providers:   providers,
		store:       store,
		turnTimeout: turnTimeout,
	}
}

// HandleTurn runs one turn for the session and returns the reply text. It
// never panics or errors toward the caller: failures are logged and
// answered with a fixed apology, leaving earlier session state intact.
func (m *Manager) HandleTurn(ctx context.Context, sessionID, utterance string) (reply string) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[dialogue] turn failed for session=%s: %v", sessionID, r)
			reply = turnApology
		}
	}()

	if m.turnTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.turnTimeout)
		defer cancel()
	}

	m.store.Do(sessionID, func(s *travel.Session) {
		reply = m.handle(ctx, s, utterance)
	})
	return reply
}

func (m *Manager) handle(ctx context.Context, s *travel.Session, utterance string) string {
	s.AppendTurn(travel.SpeakerUser, utterance)

	schema := travel.SchemaFor(s.ActiveCategory)
	collecting := s.ActiveCategory != "" && len(schema) > 0 && !travel.IsComplete(schema, s.CollectedData)

	if collecting {
		// Mid slot-filling the utterance is taken verbatim as the value
		// for the next missing field. No re-classification.
		missing := travel.MissingFields(schema, s.CollectedData)
		s.CollectedData[missing[0].Name] = strings.TrimSpace(utterance)

		if rest := travel.MissingFields(schema, s.CollectedData); len(rest) > 0 {
			return m.respond(s, rest[0].Ask)
		}
	} else {
		category := m.classifier.Classify(ctx, utterance)
		s.EnterCategory(category)

		if schema := travel.SchemaFor(category); len(schema) > 0 {
			missing := travel.MissingFields(schema, s.CollectedData)
			return m.respond(s, missing[0].Ask)
		}
	}

	return m.respond(s, m.dispatch(ctx, s, utterance))
}

// respond records the assistant turn and hands the text back.
func (m *Manager) respond(s *travel.Session, text string) string {
	s.AppendTurn(travel.SpeakerAssistant, text)
	return text
}

// dispatch builds the provider prompt for the active category, invokes the
// provider and formats the result. Provider failures are swallowed here
// and surface as the fixed per-category apology.
func (m *Manager) dispatch(ctx context.Context, s *travel.Session, utterance string) string {
	category := s.ActiveCategory

	var promptText string
	var details []Detail
	switch category {
	case travel.CategoryVisa:
		d := s.CollectedData
		promptText = advisor.VisaPrompt(
			d["nationality"],
			d["destination_country"],
			d["country_of_residence"],
			d["purpose_of_travel"],
		)
		details = visaDetails(d)
	case travel.CategoryHotel:
		promptText = advisor.HotelPrompt(utterance)
	case travel.CategoryFlight:
		promptText = advisor.FlightPrompt(utterance)
	case travel.CategoryCity:
		promptText = advisor.CityPrompt(utterance)
	case travel.CategoryEvent:
		promptText = advisor.EventPrompt(utterance)
	default:
		promptText = advisor.GenericPrompt(utterance)
	}

	provider, ok := m.providers[category]
	if !ok {
		log.Printf("[dialogue] no provider registered for category=%s", category)
		return apologyFor(category)
	}

	info, err := provider.Fetch(ctx, promptText)
	if err != nil {
		log.Printf("[dialogue] provider failed for category=%s prompt=%q: %v", category, promptText, err)
		return apologyFor(category)
	}

	return Format(headerFor(category)+"\n"+info, details)
}

// visaDetails lists the collected slots in schema order for the reply
// detail block.
func visaDetails(collected map[string]string) []Detail {
	schema := travel.SchemaFor(travel.CategoryVisa)
	details := make([]Detail, 0, len(schema))
	for _, field := range schema {
		details = append(details, Detail{
			Key:   displayName(field.Name),
			Value: CapitalizeWords(collected[field.Name]),
		})
	}
	return details
}

func displayName(fieldName string) string {
	return CapitalizeWords(strings.ReplaceAll(fieldName, "_", " "))
}

func headerFor(category travel.Category) string {
	switch category {
	case travel.CategoryVisa:
		return "Here are the visa requirements:"
	case travel.CategoryHotel:
		return "Here are the hotel options:"
	case travel.CategoryFlight:
		return "Here are the flight options:"
	case travel.CategoryCity:
		return "Here is the city and airport information:"
	case travel.CategoryEvent:
		return "Here are the event details:"
	default:
		return "Here is what I found:"
	}
}

func apologyFor(category travel.Category) string {
	switch category {
	case travel.CategoryVisa:
		return "Error fetching visa information."
	case travel.CategoryHotel:
		return "Error fetching hotel information."
	case travel.CategoryFlight:
		return "Error fetching flight information."
	case travel.CategoryCity:
		return "Error fetching city information."
	case travel.CategoryEvent:
		return "Error fetching event information."
	default:
		return "Error fetching travel information."
	}
}
