package inference

import (
	"strings"

	"github.com/init-pkg/sheet-export/domain/fields"
)

// BuildPrompt renders the instruction block sent to every backend. It does
// not depend on the backend, so it doubles as the cache key source.
func BuildPrompt(transcript string) string {
	return strings.Join([]string{
		"Je bent een tool die Excel templates mapt voor groothandels.",
		"Analyseer de tabbladen en geef alleen JSON terug met velden en cellen.",
		"Gebruik deze keys waar mogelijk:",
		strings.Join(fields.PreferredKeys(), ", "),
		`Voorbeeld: {"artikelnaam":"Sheet1!B12","ean":"Sheet1!D9"}`,
		"Geef uitsluitend het JSON object terug, zonder extra tekst.",
		"Template inhoud:\n" + transcript,
	}, "\n")
}
