package advisor

import "fmt"

// VisaPrompt builds the structured visa query from the four collected
// slot values.
func VisaPrompt(nationality, destination, residence, purpose string) string {
	return fmt.Sprintf(
		"What are the visa requirements for a %s citizen residing in %s, visiting %s for %s? "+
			"Include visa application process, essential travel tips, and any mandatory documents. "+
			"Provide URLs of official embassies or consulates for reference.",
		nationality, residence, destination, purpose,
	)
}

// HotelPrompt builds the hotel lookup prompt from the raw utterance.
func HotelPrompt(userQuery string) string {
	return fmt.Sprintf("Fetch hotel options based on the following user query: %s. Include ratings, pricing, and proximity details.", userQuery)
}

// FlightPrompt builds the flight lookup prompt from the raw utterance.
func FlightPrompt(userQuery string) string {
	return fmt.Sprintf("Find flight options for the following request: %s. Include airline names, pricing, and timings.", userQuery)
}

// CityPrompt builds the city/airport lookup prompt from the raw utterance.
func CityPrompt(userQuery string) string {
	return fmt.Sprintf("Provide detailed city and airport information for the following query: %s. Include transport options and tips.", userQuery)
}

// EventPrompt builds the event lookup prompt from the raw utterance.
func EventPrompt(userQuery string) string {
	return fmt.Sprintf("List events or conferences matching the following request: %s. Include venue, timing, and registration links.", userQuery)
}

// GenericPrompt covers travel questions outside the structured categories.
func GenericPrompt(userQuery string) string {
	return fmt.Sprintf("Answer the following travel-related question: %s. Provide accurate and comprehensive details.", userQuery)
}
