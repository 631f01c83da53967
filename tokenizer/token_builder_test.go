package tokenizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenBuilderDuplicateAttribute(t *testing.T) {
	b := newTokenBuilder()
	b.reset(startTagKind)

	for _, r := range "src" {
		b.writeAttributeName(r)
	}
	assert.False(t, b.finishAttributeName())
	for _, r := range "123" {
		b.writeAttributeValue(r)
	}
	b.commitAttribute()

	for _, r := range "src" {
		b.writeAttributeName(r)
	}
	assert.True(t, b.finishAttributeName(), "second src must be flagged as a duplicate")
	for _, r := range "456" {
		b.writeAttributeValue(r)
	}
	b.commitAttribute()

	tok := b.startTagToken()
	require.Len(t, tok.Attributes, 1)
	assert.Equal(t, Attribute{Name: "src", Value: "123"}, tok.Attributes[0], "first value wins")
}

func TestTokenBuilderEmptyAttributeNameIsDropped(t *testing.T) {
	b := newTokenBuilder()
	b.reset(startTagKind)

	assert.False(t, b.finishAttributeName())
	b.commitAttribute()
	assert.Empty(t, b.startTagToken().Attributes)
}

func TestTokenBuilderDoctypeMissingVersusEmpty(t *testing.T) {
	b := newTokenBuilder()
	b.reset(noTag)
	tok := b.doctypeToken()
	assert.Nil(t, tok.DoctypeName)
	assert.Nil(t, tok.PublicID)
	assert.Nil(t, tok.SystemID)

	b.reset(noTag)
	for _, r := range "html" {
		b.writeName(r)
	}
	b.writePublicIdentifierEmpty()
	tok = b.doctypeToken()
	require.NotNil(t, tok.DoctypeName)
	assert.Equal(t, "html", *tok.DoctypeName)
	require.NotNil(t, tok.PublicID)
	assert.Equal(t, "", *tok.PublicID, "an empty identifier is present, not missing")
	assert.Nil(t, tok.SystemID)
}

func TestTokenBuilderResetClearsEverything(t *testing.T) {
	b := newTokenBuilder()
	b.reset(endTagKind)
	b.writeName('a')
	b.writeData('x')
	b.writeTempBuffer('y')
	b.enableSelfClosing()
	b.enableForceQuirks()
	b.writePublicIdentifier('p')

	b.reset(startTagKind)
	tok := b.startTagToken()
	assert.Equal(t, "", tok.Name)
	assert.False(t, tok.SelfClosing)
	assert.Empty(t, tok.Attributes)
	assert.Equal(t, "", b.data.String())
	assert.NotEmpty(t, b.tempBuffer, "temp buffer survives reset; it belongs to the cross-token escape machinery")
}

func TestTokenBuilderAppropriateEndTag(t *testing.T) {
	b := newTokenBuilder()
	b.reset(endTagKind)
	for _, r := range "script" {
		b.writeName(r)
	}
	assert.True(t, b.isAppropriateEndTag("script"))
	assert.False(t, b.isAppropriateEndTag("style"))
	assert.False(t, b.isAppropriateEndTag(""), "no last start tag means nothing is appropriate")
}
