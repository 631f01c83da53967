package tokenizer

func (t *Tokenizer) stateScriptDataLessThanSign(r rune, eof bool) tokenizerState {
	switch {
	case !eof && r == '/':
		t.b.resetTempBuffer()
		return scriptDataEndTagOpenState
	case !eof && r == '!':
		t.emit(characterToken('<'))
		t.emit(characterToken('!'))
		return scriptDataEscapeStartState
	default:
		t.emit(characterToken('<'))
		return t.reconsumeIn(scriptDataState)
	}
}

func (t *Tokenizer) stateScriptDataEndTagOpen(r rune, eof bool) tokenizerState {
	if !eof && isASCIIAlpha(r) {
		t.b.reset(endTagKind)
		return t.reconsumeIn(scriptDataEndTagNameState)
	}
	t.emit(characterToken('<'))
	t.emit(characterToken('/'))
	return t.reconsumeIn(scriptDataState)
}

func (t *Tokenizer) stateScriptDataEndTagName(r rune, eof bool) tokenizerState {
	switch {
	case !eof && isASCIIWhitespace(r):
		if t.b.isAppropriateEndTag(t.lastStartTagName) {
			return beforeAttributeNameState
		}
		return t.endTagNameFallback(scriptDataState)
	case !eof && r == '/':
		if t.b.isAppropriateEndTag(t.lastStartTagName) {
			return selfClosingStartTagState
		}
		return t.endTagNameFallback(scriptDataState)
	case !eof && r == '>':
		if t.b.isAppropriateEndTag(t.lastStartTagName) {
			t.emitCurrentTag()
			return dataState
		}
		return t.endTagNameFallback(scriptDataState)
	case !eof && isASCIIAlpha(r):
		t.b.writeName(toASCIILower(r))
		t.b.writeTempBuffer(r)
		return scriptDataEndTagNameState
	default:
		return t.endTagNameFallback(scriptDataState)
	}
}

func (t *Tokenizer) stateScriptDataEscapeStart(r rune, eof bool) tokenizerState {
	if !eof && r == '-' {
		t.emit(characterToken('-'))
		return scriptDataEscapeStartDashState
	}
	return t.reconsumeIn(scriptDataState)
}

func (t *Tokenizer) stateScriptDataEscapeStartDash(r rune, eof bool) tokenizerState {
	if !eof && r == '-' {
		t.emit(characterToken('-'))
		return scriptDataEscapedDashDashState
	}
	return t.reconsumeIn(scriptDataState)
}

func (t *Tokenizer) stateScriptDataEscaped(r rune, eof bool) tokenizerState {
	switch {
	case eof:
		t.emitError(ErrEOFInScriptHTMLCommentLikeText)
		t.emit(endOfFileToken())
		return scriptDataEscapedState
	case r == '-':
		t.emit(characterToken('-'))
		return scriptDataEscapedDashState
	case r == '<':
		return scriptDataEscapedLessThanSignState
	case r == 0:
		t.emitError(ErrUnexpectedNullCharacter)
		t.emit(characterToken(replacementChar))
		return scriptDataEscapedState
	default:
		t.emit(characterToken(r))
		return scriptDataEscapedState
	}
}

func (t *Tokenizer) stateScriptDataEscapedDash(r rune, eof bool) tokenizerState {
	switch {
	case eof:
		t.emitError(ErrEOFInScriptHTMLCommentLikeText)
		t.emit(endOfFileToken())
		return scriptDataEscapedState
	case r == '-':
		t.emit(characterToken('-'))
		return scriptDataEscapedDashDashState
	case r == '<':
		return scriptDataEscapedLessThanSignState
	case r == 0:
		t.emitError(ErrUnexpectedNullCharacter)
		t.emit(characterToken(replacementChar))
		return scriptDataEscapedState
	default:
		t.emit(characterToken(r))
		return scriptDataEscapedState
	}
}

func (t *Tokenizer) stateScriptDataEscapedDashDash(r rune, eof bool) tokenizerState {
	switch {
	case eof:
		t.emitError(ErrEOFInScriptHTMLCommentLikeText)
		t.emit(endOfFileToken())
		return scriptDataEscapedState
	case r == '-':
		t.emit(characterToken('-'))
		return scriptDataEscapedDashDashState
	case r == '<':
		return scriptDataEscapedLessThanSignState
	case r == '>':
		t.emit(characterToken('>'))
		return scriptDataState
	case r == 0:
		t.emitError(ErrUnexpectedNullCharacter)
		t.emit(characterToken(replacementChar))
		return scriptDataEscapedState
	default:
		t.emit(characterToken(r))
		return scriptDataEscapedState
	}
}

func (t *Tokenizer) stateScriptDataEscapedLessThanSign(r rune, eof bool) tokenizerState {
	switch {
	case !eof && r == '/':
		t.b.resetTempBuffer()
		return scriptDataEscapedEndTagOpenState
	case !eof && isASCIIAlpha(r):
		t.b.resetTempBuffer()
		t.emit(characterToken('<'))
		return t.reconsumeIn(scriptDataDoubleEscapeStartState)
	default:
		t.emit(characterToken('<'))
		return t.reconsumeIn(scriptDataEscapedState)
	}
}

func (t *Tokenizer) stateScriptDataEscapedEndTagOpen(r rune, eof bool) tokenizerState {
	if !eof && isASCIIAlpha(r) {
		t.b.reset(endTagKind)
		return t.reconsumeIn(scriptDataEscapedEndTagNameState)
	}
	t.emit(characterToken('<'))
	t.emit(characterToken('/'))
	return t.reconsumeIn(scriptDataEscapedState)
}

func (t *Tokenizer) stateScriptDataEscapedEndTagName(r rune, eof bool) tokenizerState {
	switch {
	case !eof && isASCIIWhitespace(r):
		if t.b.isAppropriateEndTag(t.lastStartTagName) {
			return beforeAttributeNameState
		}
		return t.endTagNameFallback(scriptDataEscapedState)
	case !eof && r == '/':
		if t.b.isAppropriateEndTag(t.lastStartTagName) {
			return selfClosingStartTagState
		}
		return t.endTagNameFallback(scriptDataEscapedState)
	case !eof && r == '>':
		if t.b.isAppropriateEndTag(t.lastStartTagName) {
			t.emitCurrentTag()
			return dataState
		}
		return t.endTagNameFallback(scriptDataEscapedState)
	case !eof && isASCIIAlpha(r):
		t.b.writeName(toASCIILower(r))
		t.b.writeTempBuffer(r)
		return scriptDataEscapedEndTagNameState
	default:
		return t.endTagNameFallback(scriptDataEscapedState)
	}
}

func (t *Tokenizer) stateScriptDataDoubleEscapeStart(r rune, eof bool) tokenizerState {
	switch {
	case !eof && (isASCIIWhitespace(r) || r == '/' || r == '>'):
		t.emit(characterToken(r))
		if t.b.tempBufferString() == "script" {
			return scriptDataDoubleEscapedState
		}
		return scriptDataEscapedState
	case !eof && isASCIIAlpha(r):
		t.b.writeTempBuffer(toASCIILower(r))
		t.emit(characterToken(r))
		return scriptDataDoubleEscapeStartState
	default:
		return t.reconsumeIn(scriptDataEscapedState)
	}
}

func (t *Tokenizer) stateScriptDataDoubleEscaped(r rune, eof bool) tokenizerState {
	switch {
	case eof:
		t.emitError(ErrEOFInScriptHTMLCommentLikeText)
		t.emit(endOfFileToken())
		return scriptDataDoubleEscapedState
	case r == '-':
		t.emit(characterToken('-'))
		return scriptDataDoubleEscapedDashState
	case r == '<':
		t.emit(characterToken('<'))
		return scriptDataDoubleEscapedLessThanSignState
	case r == 0:
		t.emitError(ErrUnexpectedNullCharacter)
		t.emit(characterToken(replacementChar))
		return scriptDataDoubleEscapedState
	default:
		t.emit(characterToken(r))
		return scriptDataDoubleEscapedState
	}
}

func (t *Tokenizer) stateScriptDataDoubleEscapedDash(r rune, eof bool) tokenizerState {
	switch {
	case eof:
		t.emitError(ErrEOFInScriptHTMLCommentLikeText)
		t.emit(endOfFileToken())
		return scriptDataDoubleEscapedState
	case r == '-':
		t.emit(characterToken('-'))
		return scriptDataDoubleEscapedDashDashState
	case r == '<':
		t.emit(characterToken('<'))
		return scriptDataDoubleEscapedLessThanSignState
	case r == 0:
		t.emitError(ErrUnexpectedNullCharacter)
		t.emit(characterToken(replacementChar))
		return scriptDataDoubleEscapedState
	default:
		t.emit(characterToken(r))
		return scriptDataDoubleEscapedState
	}
}

func (t *Tokenizer) stateScriptDataDoubleEscapedDashDash(r rune, eof bool) tokenizerState {
	switch {
	case eof:
		t.emitError(ErrEOFInScriptHTMLCommentLikeText)
		t.emit(endOfFileToken())
		return scriptDataDoubleEscapedState
	case r == '-':
		t.emit(characterToken('-'))
		return scriptDataDoubleEscapedDashDashState
	case r == '<':
		t.emit(characterToken('<'))
		return scriptDataDoubleEscapedLessThanSignState
	case r == '>':
		t.emit(characterToken('>'))
		return scriptDataState
	case r == 0:
		t.emitError(ErrUnexpectedNullCharacter)
		t.emit(characterToken(replacementChar))
		return scriptDataDoubleEscapedState
	default:
		t.emit(characterToken(r))
		return scriptDataDoubleEscapedState
	}
}

func (t *Tokenizer) stateScriptDataDoubleEscapedLessThanSign(r rune, eof bool) tokenizerState {
	if !eof && r == '/' {
		t.b.resetTempBuffer()
		t.emit(characterToken('/'))
		return scriptDataDoubleEscapeEndState
	}
	return t.reconsumeIn(scriptDataDoubleEscapedState)
}

func (t *Tokenizer) stateScriptDataDoubleEscapeEnd(r rune, eof bool) tokenizerState {
	switch {
	case !eof && (isASCIIWhitespace(r) || r == '/' || r == '>'):
		t.emit(characterToken(r))
		if t.b.tempBufferString() == "script" {
			return scriptDataEscapedState
		}
		return scriptDataDoubleEscapedState
	case !eof && isASCIIAlpha(r):
		t.b.writeTempBuffer(toASCIILower(r))
		t.emit(characterToken(r))
		return scriptDataDoubleEscapeEndState
	default:
		return t.reconsumeIn(scriptDataDoubleEscapedState)
	}
}
