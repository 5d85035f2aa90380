package attestation

import (
	"strings"
)

// reasonEntry is one language-tagged rendering of the attestation
// failure reason.
type reasonEntry struct {
	lang   string
	reason string
}

// reasons holds the failure reason in every supported language. The
// first entry is the default; the table is never empty.
var reasons = []reasonEntry{
	{"en", "IMV Attestation: Non-matching file measurement/s or invalid TPM Quote signature"},
	{"mn", "IMV Attestation: Файлуудын хэмжилт зөрсөн эсвэл буруу TPM Quote гарын үсэг"},
	{"de", "IMV Attestation: Falsche Datei Messung/en oder TPM Quote Unterschrift ist ungültig"},
}

// ReasonString selects the failure reason in the most preferred
// available language. preferredLanguages is a comma-separated list of
// language tags in preference order, entries may be padded with
// whitespace ("de, en"). Matching is exact and case-sensitive. When no
// entry matches, the default (first, English) entry is returned; the
// call never fails.
func (s *State) ReasonString(preferredLanguages string) (reason, lang string) {
	for _, candidate := range strings.Split(preferredLanguages, ",") {
		candidate = strings.TrimSpace(candidate)
		if candidate == "" {
			continue
		}
		for _, entry := range reasons {
			if entry.lang == candidate {
				return entry.reason, entry.lang
			}
		}
	}
	return reasons[0].reason, reasons[0].lang
}
