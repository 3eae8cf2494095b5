package mutalyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckDescription(t *testing.T) {
	// A versioned transcript without a variant gets the empty change.
	d, err := CheckDescription("NM_003002.4")
	require.NoError(t, err)
	assert.Equal(t, "NM_003002.4:c.=", d)

	// A full description passes through verbatim.
	d, err = CheckDescription("NM_003002.4:c.274G>T")
	require.NoError(t, err)
	assert.Equal(t, "NM_003002.4:c.274G>T", d)
}

func TestCheckDescriptionMissingVersion(t *testing.T) {
	_, err := CheckDescription("NM_003002")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "version")
}
