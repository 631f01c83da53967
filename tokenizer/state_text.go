package tokenizer

const replacementChar = '�'

func (t *Tokenizer) stateData(r rune, eof bool) tokenizerState {
	switch {
	case eof:
		t.emit(endOfFileToken())
		return dataState
	case r == '&':
		t.retState = dataState
		return characterReferenceState
	case r == '<':
		return tagOpenState
	case r == 0:
		t.emitError(ErrUnexpectedNullCharacter)
		t.emit(characterToken(r))
		return dataState
	default:
		t.emit(characterToken(r))
		return dataState
	}
}

func (t *Tokenizer) stateRCData(r rune, eof bool) tokenizerState {
	switch {
	case eof:
		t.emit(endOfFileToken())
		return rcdataState
	case r == '&':
		t.retState = rcdataState
		return characterReferenceState
	case r == '<':
		return rcdataLessThanSignState
	case r == 0:
		t.emitError(ErrUnexpectedNullCharacter)
		t.emit(characterToken(replacementChar))
		return rcdataState
	default:
		t.emit(characterToken(r))
		return rcdataState
	}
}

func (t *Tokenizer) stateRawtext(r rune, eof bool) tokenizerState {
	switch {
	case eof:
		t.emit(endOfFileToken())
		return rawtextState
	case r == '<':
		return rawtextLessThanSignState
	case r == 0:
		t.emitError(ErrUnexpectedNullCharacter)
		t.emit(characterToken(replacementChar))
		return rawtextState
	default:
		t.emit(characterToken(r))
		return rawtextState
	}
}

func (t *Tokenizer) stateScriptData(r rune, eof bool) tokenizerState {
	switch {
	case eof:
		t.emit(endOfFileToken())
		return scriptDataState
	case r == '<':
		return scriptDataLessThanSignState
	case r == 0:
		t.emitError(ErrUnexpectedNullCharacter)
		t.emit(characterToken(replacementChar))
		return scriptDataState
	default:
		t.emit(characterToken(r))
		return scriptDataState
	}
}

func (t *Tokenizer) statePlaintext(r rune, eof bool) tokenizerState {
	switch {
	case eof:
		t.emit(endOfFileToken())
		return plaintextState
	case r == 0:
		t.emitError(ErrUnexpectedNullCharacter)
		t.emit(characterToken(replacementChar))
		return plaintextState
	default:
		t.emit(characterToken(r))
		return plaintextState
	}
}

func (t *Tokenizer) stateTagOpen(r rune, eof bool) tokenizerState {
	switch {
	case eof:
		t.emitError(ErrEOFBeforeTagName)
		t.emit(characterToken('<'))
		t.emit(endOfFileToken())
		return dataState
	case r == '!':
		return markupDeclarationOpenState
	case r == '/':
		return endTagOpenState
	case isASCIIAlpha(r):
		t.b.reset(startTagKind)
		return t.reconsumeIn(tagNameState)
	case r == '?':
		t.emitError(ErrUnexpectedQuestionMarkInsteadOfTagName)
		t.b.reset(noTag)
		return t.reconsumeIn(bogusCommentState)
	default:
		t.emitError(ErrInvalidFirstCharacterOfTagName)
		t.emit(characterToken('<'))
		return t.reconsumeIn(dataState)
	}
}

func (t *Tokenizer) stateEndTagOpen(r rune, eof bool) tokenizerState {
	switch {
	case eof:
		t.emitError(ErrEOFBeforeTagName)
		t.emit(characterToken('<'))
		t.emit(characterToken('/'))
		t.emit(endOfFileToken())
		return dataState
	case isASCIIAlpha(r):
		t.b.reset(endTagKind)
		return t.reconsumeIn(tagNameState)
	case r == '>':
		t.emitError(ErrMissingEndTagName)
		return dataState
	default:
		t.emitError(ErrInvalidFirstCharacterOfTagName)
		t.b.reset(noTag)
		return t.reconsumeIn(bogusCommentState)
	}
}

func (t *Tokenizer) stateTagName(r rune, eof bool) tokenizerState {
	switch {
	case eof:
		t.emitError(ErrEOFInTag)
		t.emit(endOfFileToken())
		return dataState
	case isASCIIWhitespace(r):
		return beforeAttributeNameState
	case r == '/':
		return selfClosingStartTagState
	case r == '>':
		t.emitCurrentTag()
		return dataState
	case isASCIIUpper(r):
		t.b.writeName(toASCIILower(r))
		return tagNameState
	case r == 0:
		t.emitError(ErrUnexpectedNullCharacter)
		t.b.writeName(replacementChar)
		return tagNameState
	default:
		t.b.writeName(r)
		return tagNameState
	}
}

// emitCurrentTag finishes and queues the tag token under construction,
// preserving — rather than silently discarding — attributes or a trailing
// solidus on an end tag, each paired with the error that malformation
// requires.
func (t *Tokenizer) emitCurrentTag() {
	t.b.commitAttribute()
	if t.b.tag == endTagKind {
		if t.b.selfClosing {
			t.emitError(ErrEndTagWithTrailingSolidus)
		}
		if len(t.b.attrs) > 0 {
			t.emitError(ErrEndTagWithAttributes)
		}
		t.emit(t.b.endTagToken())
		return
	}
	tok := t.b.startTagToken()
	t.lastStartTagName = tok.Name
	t.emit(tok)
}

func (t *Tokenizer) stateSelfClosingStartTag(r rune, eof bool) tokenizerState {
	switch {
	case eof:
		t.emitError(ErrEOFInTag)
		t.emit(endOfFileToken())
		return dataState
	case r == '>':
		t.b.enableSelfClosing()
		t.emitCurrentTag()
		return dataState
	default:
		t.emitError(ErrUnexpectedSolidusInTag)
		return t.reconsumeIn(beforeAttributeNameState)
	}
}

// endTagNameFallback emits the "<", "/" and accumulated temp buffer
// characters literally and reconsumes the current rune in next, as the
// RCDATA/RAWTEXT/script-data end tag states require when what follows
// "</" does not turn out to name the element whose content model put the
// tokenizer in this state to begin with.
func (t *Tokenizer) endTagNameFallback(next tokenizerState) tokenizerState {
	t.emit(characterToken('<'))
	t.emit(characterToken('/'))
	for _, r := range t.b.tempBuffer {
		t.emit(characterToken(r))
	}
	return t.reconsumeIn(next)
}

func (t *Tokenizer) stateRCDataLessThanSign(r rune, eof bool) tokenizerState {
	if r == '/' && !eof {
		t.b.resetTempBuffer()
		return rcdataEndTagOpenState
	}
	t.emit(characterToken('<'))
	return t.reconsumeIn(rcdataState)
}

func (t *Tokenizer) stateRCDataEndTagOpen(r rune, eof bool) tokenizerState {
	if !eof && isASCIIAlpha(r) {
		t.b.reset(endTagKind)
		return t.reconsumeIn(rcdataEndTagNameState)
	}
	t.emit(characterToken('<'))
	t.emit(characterToken('/'))
	return t.reconsumeIn(rcdataState)
}

func (t *Tokenizer) stateRCDataEndTagName(r rune, eof bool) tokenizerState {
	switch {
	case !eof && isASCIIWhitespace(r):
		if t.b.isAppropriateEndTag(t.lastStartTagName) {
			return beforeAttributeNameState
		}
		return t.endTagNameFallback(rcdataState)
	case !eof && r == '/':
		if t.b.isAppropriateEndTag(t.lastStartTagName) {
			return selfClosingStartTagState
		}
		return t.endTagNameFallback(rcdataState)
	case !eof && r == '>':
		if t.b.isAppropriateEndTag(t.lastStartTagName) {
			t.emitCurrentTag()
			return dataState
		}
		return t.endTagNameFallback(rcdataState)
	case !eof && isASCIIAlpha(r):
		t.b.writeName(toASCIILower(r))
		t.b.writeTempBuffer(r)
		return rcdataEndTagNameState
	default:
		return t.endTagNameFallback(rcdataState)
	}
}

func (t *Tokenizer) stateRawtextLessThanSign(r rune, eof bool) tokenizerState {
	if r == '/' && !eof {
		t.b.resetTempBuffer()
		return rawtextEndTagOpenState
	}
	t.emit(characterToken('<'))
	return t.reconsumeIn(rawtextState)
}

func (t *Tokenizer) stateRawtextEndTagOpen(r rune, eof bool) tokenizerState {
	if !eof && isASCIIAlpha(r) {
		t.b.reset(endTagKind)
		return t.reconsumeIn(rawtextEndTagNameState)
	}
	t.emit(characterToken('<'))
	t.emit(characterToken('/'))
	return t.reconsumeIn(rawtextState)
}

func (t *Tokenizer) stateRawtextEndTagName(r rune, eof bool) tokenizerState {
	switch {
	case !eof && isASCIIWhitespace(r):
		if t.b.isAppropriateEndTag(t.lastStartTagName) {
			return beforeAttributeNameState
		}
		return t.endTagNameFallback(rawtextState)
	case !eof && r == '/':
		if t.b.isAppropriateEndTag(t.lastStartTagName) {
			return selfClosingStartTagState
		}
		return t.endTagNameFallback(rawtextState)
	case !eof && r == '>':
		if t.b.isAppropriateEndTag(t.lastStartTagName) {
			t.emitCurrentTag()
			return dataState
		}
		return t.endTagNameFallback(rawtextState)
	case !eof && isASCIIAlpha(r):
		t.b.writeName(toASCIILower(r))
		t.b.writeTempBuffer(r)
		return rawtextEndTagNameState
	default:
		return t.endTagNameFallback(rawtextState)
	}
}
