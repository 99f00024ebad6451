package absence

import "fmt"

// typeLabels resolves upstream absence type codes to the labels shown on
// the board. The table mirrors the upstream lookup as of the last audit;
// unmapped codes fall back to a generic label instead of failing.
var typeLabels = map[int]string{
	1:  "Urlaub",
	2:  "Sonderurlaub",
	3:  "Unbezahlter Urlaub",
	4:  "Überstundenabbau",
	10: "Krankheit",
	11: "Krankheit ohne Attest",
	12: "Kind krank",
	13: "Kur",
}

// Label returns the display label for an absence type code.
func Label(code int) string {
	if label, ok := typeLabels[code]; ok {
		return label
	}
	return fmt.Sprintf("Code %d", code)
}
