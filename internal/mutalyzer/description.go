package mutalyzer

import (
	"fmt"
	"regexp"
)

// Regexes for transcript description checking.
var (
	// Versioned transcript without a variant part: NM_003002.4
	reVersioned = regexp.MustCompile(`^\w+\.\d+$`)
	// Bare transcript name without a version: NM_003002
	reBare = regexp.MustCompile(`^\w+$`)
)

// CheckDescription validates user input and rewrites it into a full HGVS
// description when needed. A versioned transcript without a variant gets
// the empty change ":c.=" appended. A bare transcript name is rejected:
// without the version there is no way to pick the right annotation.
func CheckDescription(transcript string) (string, error) {
	if reVersioned.MatchString(transcript) {
		return transcript + ":c.=", nil
	}
	if reBare.MatchString(transcript) {
		return "", fmt.Errorf("please specify the version of the transcript you are interested in: %s", transcript)
	}
	return transcript, nil
}
