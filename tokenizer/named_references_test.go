package tokenizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupNamedReferenceLongestMatch(t *testing.T) {
	tests := []struct {
		lookahead string
		wantName  string
		wantRunes []rune
	}{
		{"amp;rest", "amp;", []rune{'&'}},
		{"ampersand", "amp", []rune{'&'}},
		{"amp", "amp", []rune{'&'}},
		{"notin;x", "notin;", []rune{'∉'}},
		{"ne;", "ne;", []rune{'≠'}},
		{"NotEqualTilde;", "NotEqualTilde;", []rune{'≂', '̸'}},
		{"NotEqual;Tilde", "NotEqual;", []rune{'≠'}},
		{"fjlig;", "fjlig;", []rune{'f', 'j'}},
	}
	for _, tt := range tests {
		name, cps, ok := lookupNamedReference(tt.lookahead)
		require.True(t, ok, "expected a match for %q", tt.lookahead)
		assert.Equal(t, tt.wantName, name, "lookahead %q", tt.lookahead)
		assert.Equal(t, tt.wantRunes, cps, "lookahead %q", tt.lookahead)
	}
}

func TestLookupNamedReferenceMiss(t *testing.T) {
	for _, lookahead := range []string{"", "zzz;", "xyzzy", "1up;"} {
		_, _, ok := lookupNamedReference(lookahead)
		assert.False(t, ok, "lookahead %q should not match", lookahead)
	}
}

func TestMaxNamedReferenceLenCoversTable(t *testing.T) {
	for name := range namedReferences {
		assert.LessOrEqual(t, len(name), maxNamedReferenceLen, "entry %q exceeds the lookahead bound", name)
	}
}
