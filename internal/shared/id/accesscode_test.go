package id

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAccessCode(t *testing.T) {
	code, err := NewAccessCode()
	require.NoError(t, err)
	assert.Len(t, code, AccessCodeLength)

	for _, c := range code {
		assert.Contains(t, AccessCodeAlphabet, string(c))
	}
}

func TestAccessCodeAlphabetExcludesAmbiguousCharacters(t *testing.T) {
	for _, ambiguous := range []string{"0", "O", "1", "I"} {
		assert.NotContains(t, AccessCodeAlphabet, ambiguous)
	}
}

func TestNewAccessCodeIsNotConstant(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		seen[MustNewAccessCode()] = true
	}
	assert.Greater(t, len(seen), 1)
}

func TestNewPaymentReference(t *testing.T) {
	ref, err := NewPaymentReference()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(ref, "hh_"))
	assert.Len(t, ref, len("hh_")+ReferenceLength)
}
