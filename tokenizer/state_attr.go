package tokenizer

func (t *Tokenizer) stateBeforeAttributeName(r rune, eof bool) tokenizerState {
	switch {
	case !eof && isASCIIWhitespace(r):
		return beforeAttributeNameState
	case eof || r == '/' || r == '>':
		return t.reconsumeIn(afterAttributeNameState)
	case r == '=':
		t.emitError(ErrUnexpectedEqualsSignBeforeAttributeName)
		t.b.commitAttribute()
		t.b.writeAttributeName(r)
		return attributeNameState
	default:
		t.b.commitAttribute()
		return t.reconsumeIn(attributeNameState)
	}
}

func (t *Tokenizer) stateAttributeName(r rune, eof bool) tokenizerState {
	switch {
	// The attribute stays current through the after-attribute-name
	// state: a value introduced by a later "=" must still attach to it,
	// so the commit is deferred until a new attribute starts or the tag
	// is emitted.
	case eof || isASCIIWhitespace(r) || r == '/' || r == '>':
		if t.b.finishAttributeName() {
			t.emitError(ErrDuplicateAttribute)
		}
		return t.reconsumeIn(afterAttributeNameState)
	case r == '=':
		if t.b.finishAttributeName() {
			t.emitError(ErrDuplicateAttribute)
		}
		return beforeAttributeValueState
	case isASCIIUpper(r):
		t.b.writeAttributeName(toASCIILower(r))
		return attributeNameState
	case r == 0:
		t.emitError(ErrUnexpectedNullCharacter)
		t.b.writeAttributeName(replacementChar)
		return attributeNameState
	case r == '"' || r == '\'' || r == '<':
		t.emitError(ErrUnexpectedCharacterInAttributeName)
		t.b.writeAttributeName(r)
		return attributeNameState
	default:
		t.b.writeAttributeName(r)
		return attributeNameState
	}
}

func (t *Tokenizer) stateAfterAttributeName(r rune, eof bool) tokenizerState {
	switch {
	case eof:
		t.emitError(ErrEOFInTag)
		t.emit(endOfFileToken())
		return dataState
	case isASCIIWhitespace(r):
		return afterAttributeNameState
	case r == '/':
		return selfClosingStartTagState
	case r == '=':
		return beforeAttributeValueState
	case r == '>':
		t.emitCurrentTag()
		return dataState
	default:
		t.b.commitAttribute()
		return t.reconsumeIn(attributeNameState)
	}
}

func (t *Tokenizer) stateBeforeAttributeValue(r rune, eof bool) tokenizerState {
	switch {
	case !eof && isASCIIWhitespace(r):
		return beforeAttributeValueState
	case !eof && r == '"':
		return attributeValueDoubleQuotedState
	case !eof && r == '\'':
		return attributeValueSingleQuotedState
	case !eof && r == '>':
		t.emitError(ErrMissingAttributeValue)
		t.emitCurrentTag()
		return dataState
	default:
		return t.reconsumeIn(attributeValueUnquotedState)
	}
}

func (t *Tokenizer) stateAttributeValueDoubleQuoted(r rune, eof bool) tokenizerState {
	switch {
	case eof:
		t.emitError(ErrEOFInTag)
		t.emit(endOfFileToken())
		return dataState
	case r == '"':
		return afterAttributeValueQuotedState
	case r == '&':
		t.retState = attributeValueDoubleQuotedState
		t.charRefInAttr = true
		return characterReferenceState
	case r == 0:
		t.emitError(ErrUnexpectedNullCharacter)
		t.b.writeAttributeValue(replacementChar)
		return attributeValueDoubleQuotedState
	default:
		t.b.writeAttributeValue(r)
		return attributeValueDoubleQuotedState
	}
}

func (t *Tokenizer) stateAttributeValueSingleQuoted(r rune, eof bool) tokenizerState {
	switch {
	case eof:
		t.emitError(ErrEOFInTag)
		t.emit(endOfFileToken())
		return dataState
	case r == '\'':
		return afterAttributeValueQuotedState
	case r == '&':
		t.retState = attributeValueSingleQuotedState
		t.charRefInAttr = true
		return characterReferenceState
	case r == 0:
		t.emitError(ErrUnexpectedNullCharacter)
		t.b.writeAttributeValue(replacementChar)
		return attributeValueSingleQuotedState
	default:
		t.b.writeAttributeValue(r)
		return attributeValueSingleQuotedState
	}
}

func (t *Tokenizer) stateAttributeValueUnquoted(r rune, eof bool) tokenizerState {
	switch {
	case eof:
		t.emitError(ErrEOFInTag)
		t.emit(endOfFileToken())
		return dataState
	case isASCIIWhitespace(r):
		t.b.commitAttribute()
		return beforeAttributeNameState
	case r == '&':
		t.retState = attributeValueUnquotedState
		t.charRefInAttr = true
		return characterReferenceState
	case r == '>':
		t.emitCurrentTag()
		return dataState
	case r == 0:
		t.emitError(ErrUnexpectedNullCharacter)
		t.b.writeAttributeValue(replacementChar)
		return attributeValueUnquotedState
	case r == '"' || r == '\'' || r == '<' || r == '=' || r == '`':
		t.emitError(ErrUnexpectedCharacterInUnquotedAttributeValue)
		t.b.writeAttributeValue(r)
		return attributeValueUnquotedState
	default:
		t.b.writeAttributeValue(r)
		return attributeValueUnquotedState
	}
}

func (t *Tokenizer) stateAfterAttributeValueQuoted(r rune, eof bool) tokenizerState {
	switch {
	case eof:
		t.emitError(ErrEOFInTag)
		t.emit(endOfFileToken())
		return dataState
	case isASCIIWhitespace(r):
		t.b.commitAttribute()
		return beforeAttributeNameState
	case r == '/':
		t.b.commitAttribute()
		return selfClosingStartTagState
	case r == '>':
		t.emitCurrentTag()
		return dataState
	default:
		t.emitError(ErrMissingWhitespaceBetweenAttributes)
		t.b.commitAttribute()
		return t.reconsumeIn(beforeAttributeNameState)
	}
}

func (t *Tokenizer) stateBogusComment(r rune, eof bool) tokenizerState {
	switch {
	case eof:
		t.emit(t.b.commentToken())
		t.emit(endOfFileToken())
		return dataState
	case r == '>':
		t.emit(t.b.commentToken())
		return dataState
	case r == 0:
		t.emitError(ErrUnexpectedNullCharacter)
		t.b.writeData(replacementChar)
		return bogusCommentState
	default:
		t.b.writeData(r)
		return bogusCommentState
	}
}
