package travel

import "strings"

// Field is one required slot of a category schema, paired with the
// question the assistant asks to collect it.
type Field struct {
	Name string
	Ask  string
}

// visaSchema is the only non-empty schema in the current domain. Order is
// significant: the first missing field decides the next question.
var visaSchema = []Field{
	{Name: "nationality", Ask: "Please provide your nationality."},
	{Name: "destination_country", Ask: "Please provide your destination country."},
	{Name: "country_of_residence", Ask: "Please provide your country of residence."},
	{Name: "purpose_of_travel", Ask: "Please provide your purpose of travel (e.g. business, leisure)."},
}

// SchemaFor returns the required fields for a category. Categories that
// answer directly from the raw utterance have an empty schema.
func SchemaFor(c Category) []Field {
	if c == CategoryVisa {
		return append([]Field(nil), visaSchema...)
	}
	return nil
}

// MissingFields returns the schema fields not yet collected, preserving
// schema order. A field is missing when absent or whitespace-only.
func MissingFields(schema []Field, collected map[string]string) []Field {
	var missing []Field
	for _, field := range schema {
		if strings.TrimSpace(collected[field.Name]) == "" {
			missing = append(missing, field)
		}
	}
	return missing
}

// IsComplete reports whether every schema field has a non-empty value.
func IsComplete(schema []Field, collected map[string]string) bool {
	return len(MissingFields(schema, collected)) == 0
}
