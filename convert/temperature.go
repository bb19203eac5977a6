package convert

import "regexp"

// temperaturePattern recognizes a leading number (decimal comma or dot)
// followed by optional whitespace and a temperature unit/symbol. Group 1
// is the number, group 3 is the unit text -- matching the capture
// layout the temperature extractor expects.
//
// No library available parses free-text temperature phrases, so this
// stays on the standard library's regexp (RE2) instead of reaching for
// an unrelated third-party dependency; see DESIGN.md.
var temperaturePattern = regexp.MustCompile(`(-?[0-9]+(?:[.,][0-9]+)?)(\s*°?\s*)(celsius|fahrenheit|[CcFf])\b`)

func (*GoUnits) TemperatureRegex() (*regexp.Regexp, error) {
	return temperaturePattern, nil
}
