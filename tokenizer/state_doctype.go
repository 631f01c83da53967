package tokenizer

func (t *Tokenizer) emitDoctypeWithQuirks() {
	t.b.enableForceQuirks()
	t.emit(t.b.doctypeToken())
}

func (t *Tokenizer) stateDoctype(r rune, eof bool) tokenizerState {
	switch {
	case eof:
		t.emitError(ErrEOFInDoctype)
		t.b.reset(noTag)
		t.emitDoctypeWithQuirks()
		t.emit(endOfFileToken())
		return dataState
	case isASCIIWhitespace(r):
		return beforeDoctypeNameState
	case r == '>':
		return t.reconsumeIn(beforeDoctypeNameState)
	default:
		t.emitError(ErrMissingWhitespaceBeforeDoctypeName)
		return t.reconsumeIn(beforeDoctypeNameState)
	}
}

func (t *Tokenizer) stateBeforeDoctypeName(r rune, eof bool) tokenizerState {
	switch {
	case !eof && isASCIIWhitespace(r):
		return beforeDoctypeNameState
	case !eof && isASCIIUpper(r):
		t.b.reset(noTag)
		t.b.writeName(toASCIILower(r))
		return doctypeNameState
	case !eof && r == 0:
		t.emitError(ErrUnexpectedNullCharacter)
		t.b.reset(noTag)
		t.b.writeName(replacementChar)
		return doctypeNameState
	case !eof && r == '>':
		t.emitError(ErrMissingDoctypeName)
		t.b.reset(noTag)
		t.emitDoctypeWithQuirks()
		return dataState
	case eof:
		t.emitError(ErrEOFInDoctype)
		t.b.reset(noTag)
		t.emitDoctypeWithQuirks()
		t.emit(endOfFileToken())
		return dataState
	default:
		t.b.reset(noTag)
		t.b.writeName(r)
		return doctypeNameState
	}
}

func (t *Tokenizer) stateDoctypeName(r rune, eof bool) tokenizerState {
	switch {
	case eof:
		t.emitError(ErrEOFInDoctype)
		t.emitDoctypeWithQuirks()
		t.emit(endOfFileToken())
		return dataState
	case isASCIIWhitespace(r):
		return afterDoctypeNameState
	case r == '>':
		t.emit(t.b.doctypeToken())
		return dataState
	case isASCIIUpper(r):
		t.b.writeName(toASCIILower(r))
		return doctypeNameState
	case r == 0:
		t.emitError(ErrUnexpectedNullCharacter)
		t.b.writeName(replacementChar)
		return doctypeNameState
	default:
		t.b.writeName(r)
		return doctypeNameState
	}
}

func (t *Tokenizer) stateAfterDoctypeName(r rune, eof bool) tokenizerState {
	switch {
	case eof:
		t.emitError(ErrEOFInDoctype)
		t.emitDoctypeWithQuirks()
		t.emit(endOfFileToken())
		return dataState
	case isASCIIWhitespace(r):
		return afterDoctypeNameState
	case r == '>':
		t.emit(t.b.doctypeToken())
		return dataState
	default:
		if matchKeywordASCII(r, t.cur.peekBytes(5), "PUBLIC") {
			t.cur.discard(5)
			return afterDoctypePublicKeywordState
		}
		if matchKeywordASCII(r, t.cur.peekBytes(5), "SYSTEM") {
			t.cur.discard(5)
			return afterDoctypeSystemKeywordState
		}
		t.emitError(ErrInvalidCharacterSequenceAfterDoctypeName)
		t.b.enableForceQuirks()
		return t.reconsumeIn(bogusDoctypeState)
	}
}

func (t *Tokenizer) stateAfterDoctypePublicKeyword(r rune, eof bool) tokenizerState {
	switch {
	case eof:
		t.emitError(ErrEOFInDoctype)
		t.emitDoctypeWithQuirks()
		t.emit(endOfFileToken())
		return dataState
	case isASCIIWhitespace(r):
		return beforeDoctypePublicIdentifierState
	case r == '"':
		t.emitError(ErrMissingWhitespaceAfterDoctypePublicKeyword)
		t.b.writePublicIdentifierEmpty()
		return doctypePublicIdentifierDoubleQuotedState
	case r == '\'':
		t.emitError(ErrMissingWhitespaceAfterDoctypePublicKeyword)
		t.b.writePublicIdentifierEmpty()
		return doctypePublicIdentifierSingleQuotedState
	case r == '>':
		t.emitError(ErrMissingDoctypePublicIdentifier)
		t.emitDoctypeWithQuirks()
		return dataState
	default:
		t.emitError(ErrMissingQuoteBeforeDoctypePublicIdentifier)
		t.b.enableForceQuirks()
		return t.reconsumeIn(bogusDoctypeState)
	}
}

func (t *Tokenizer) stateBeforeDoctypePublicIdentifier(r rune, eof bool) tokenizerState {
	switch {
	case !eof && isASCIIWhitespace(r):
		return beforeDoctypePublicIdentifierState
	case !eof && r == '"':
		t.b.writePublicIdentifierEmpty()
		return doctypePublicIdentifierDoubleQuotedState
	case !eof && r == '\'':
		t.b.writePublicIdentifierEmpty()
		return doctypePublicIdentifierSingleQuotedState
	case !eof && r == '>':
		t.emitError(ErrMissingDoctypePublicIdentifier)
		t.emitDoctypeWithQuirks()
		return dataState
	case eof:
		t.emitError(ErrEOFInDoctype)
		t.emitDoctypeWithQuirks()
		t.emit(endOfFileToken())
		return dataState
	default:
		t.emitError(ErrMissingQuoteBeforeDoctypePublicIdentifier)
		t.b.enableForceQuirks()
		return t.reconsumeIn(bogusDoctypeState)
	}
}

func (t *Tokenizer) stateDoctypePublicIdentifierDoubleQuoted(r rune, eof bool) tokenizerState {
	switch {
	case eof:
		t.emitError(ErrEOFInDoctype)
		t.emitDoctypeWithQuirks()
		t.emit(endOfFileToken())
		return dataState
	case r == '"':
		return afterDoctypePublicIdentifierState
	case r == 0:
		t.emitError(ErrUnexpectedNullCharacter)
		t.b.writePublicIdentifier(replacementChar)
		return doctypePublicIdentifierDoubleQuotedState
	case r == '>':
		t.emitError(ErrAbruptDoctypePublicIdentifier)
		t.emitDoctypeWithQuirks()
		return dataState
	default:
		t.b.writePublicIdentifier(r)
		return doctypePublicIdentifierDoubleQuotedState
	}
}

func (t *Tokenizer) stateDoctypePublicIdentifierSingleQuoted(r rune, eof bool) tokenizerState {
	switch {
	case eof:
		t.emitError(ErrEOFInDoctype)
		t.emitDoctypeWithQuirks()
		t.emit(endOfFileToken())
		return dataState
	case r == '\'':
		return afterDoctypePublicIdentifierState
	case r == 0:
		t.emitError(ErrUnexpectedNullCharacter)
		t.b.writePublicIdentifier(replacementChar)
		return doctypePublicIdentifierSingleQuotedState
	case r == '>':
		t.emitError(ErrAbruptDoctypePublicIdentifier)
		t.emitDoctypeWithQuirks()
		return dataState
	default:
		t.b.writePublicIdentifier(r)
		return doctypePublicIdentifierSingleQuotedState
	}
}

func (t *Tokenizer) stateAfterDoctypePublicIdentifier(r rune, eof bool) tokenizerState {
	switch {
	case eof:
		t.emitError(ErrEOFInDoctype)
		t.emitDoctypeWithQuirks()
		t.emit(endOfFileToken())
		return dataState
	case isASCIIWhitespace(r):
		return betweenDoctypePublicAndSystemIdentifiersState
	case r == '>':
		t.emit(t.b.doctypeToken())
		return dataState
	case r == '"':
		t.emitError(ErrMissingWhitespaceBetweenDoctypePublicAndSystemIDs)
		t.b.writeSystemIdentifierEmpty()
		return doctypeSystemIdentifierDoubleQuotedState
	case r == '\'':
		t.emitError(ErrMissingWhitespaceBetweenDoctypePublicAndSystemIDs)
		t.b.writeSystemIdentifierEmpty()
		return doctypeSystemIdentifierSingleQuotedState
	default:
		t.emitError(ErrMissingQuoteBeforeDoctypeSystemIdentifier)
		t.b.enableForceQuirks()
		return t.reconsumeIn(bogusDoctypeState)
	}
}

func (t *Tokenizer) stateBetweenDoctypePublicAndSystemIdentifiers(r rune, eof bool) tokenizerState {
	switch {
	case !eof && isASCIIWhitespace(r):
		return betweenDoctypePublicAndSystemIdentifiersState
	case !eof && r == '>':
		t.emit(t.b.doctypeToken())
		return dataState
	case !eof && r == '"':
		t.b.writeSystemIdentifierEmpty()
		return doctypeSystemIdentifierDoubleQuotedState
	case !eof && r == '\'':
		t.b.writeSystemIdentifierEmpty()
		return doctypeSystemIdentifierSingleQuotedState
	case eof:
		t.emitError(ErrEOFInDoctype)
		t.emitDoctypeWithQuirks()
		t.emit(endOfFileToken())
		return dataState
	default:
		t.emitError(ErrMissingQuoteBeforeDoctypeSystemIdentifier)
		t.b.enableForceQuirks()
		return t.reconsumeIn(bogusDoctypeState)
	}
}

func (t *Tokenizer) stateAfterDoctypeSystemKeyword(r rune, eof bool) tokenizerState {
	switch {
	case eof:
		t.emitError(ErrEOFInDoctype)
		t.emitDoctypeWithQuirks()
		t.emit(endOfFileToken())
		return dataState
	case isASCIIWhitespace(r):
		return beforeDoctypeSystemIdentifierState
	case r == '"':
		t.emitError(ErrMissingWhitespaceAfterDoctypeSystemKeyword)
		t.b.writeSystemIdentifierEmpty()
		return doctypeSystemIdentifierDoubleQuotedState
	case r == '\'':
		t.emitError(ErrMissingWhitespaceAfterDoctypeSystemKeyword)
		t.b.writeSystemIdentifierEmpty()
		return doctypeSystemIdentifierSingleQuotedState
	case r == '>':
		t.emitError(ErrMissingDoctypeSystemIdentifier)
		t.emitDoctypeWithQuirks()
		return dataState
	default:
		t.emitError(ErrMissingQuoteBeforeDoctypeSystemIdentifier)
		t.b.enableForceQuirks()
		return t.reconsumeIn(bogusDoctypeState)
	}
}

func (t *Tokenizer) stateBeforeDoctypeSystemIdentifier(r rune, eof bool) tokenizerState {
	switch {
	case !eof && isASCIIWhitespace(r):
		return beforeDoctypeSystemIdentifierState
	case !eof && r == '"':
		t.b.writeSystemIdentifierEmpty()
		return doctypeSystemIdentifierDoubleQuotedState
	case !eof && r == '\'':
		t.b.writeSystemIdentifierEmpty()
		return doctypeSystemIdentifierSingleQuotedState
	case !eof && r == '>':
		t.emitError(ErrMissingDoctypeSystemIdentifier)
		t.emitDoctypeWithQuirks()
		return dataState
	case eof:
		t.emitError(ErrEOFInDoctype)
		t.emitDoctypeWithQuirks()
		t.emit(endOfFileToken())
		return dataState
	default:
		t.emitError(ErrMissingQuoteBeforeDoctypeSystemIdentifier)
		t.b.enableForceQuirks()
		return t.reconsumeIn(bogusDoctypeState)
	}
}

func (t *Tokenizer) stateDoctypeSystemIdentifierDoubleQuoted(r rune, eof bool) tokenizerState {
	switch {
	case eof:
		t.emitError(ErrEOFInDoctype)
		t.emitDoctypeWithQuirks()
		t.emit(endOfFileToken())
		return dataState
	case r == '"':
		return afterDoctypeSystemIdentifierState
	case r == 0:
		t.emitError(ErrUnexpectedNullCharacter)
		t.b.writeSystemIdentifier(replacementChar)
		return doctypeSystemIdentifierDoubleQuotedState
	case r == '>':
		t.emitError(ErrAbruptDoctypeSystemIdentifier)
		t.emitDoctypeWithQuirks()
		return dataState
	default:
		t.b.writeSystemIdentifier(r)
		return doctypeSystemIdentifierDoubleQuotedState
	}
}

func (t *Tokenizer) stateDoctypeSystemIdentifierSingleQuoted(r rune, eof bool) tokenizerState {
	switch {
	case eof:
		t.emitError(ErrEOFInDoctype)
		t.emitDoctypeWithQuirks()
		t.emit(endOfFileToken())
		return dataState
	case r == '\'':
		return afterDoctypeSystemIdentifierState
	case r == 0:
		t.emitError(ErrUnexpectedNullCharacter)
		t.b.writeSystemIdentifier(replacementChar)
		return doctypeSystemIdentifierSingleQuotedState
	case r == '>':
		t.emitError(ErrAbruptDoctypeSystemIdentifier)
		t.emitDoctypeWithQuirks()
		return dataState
	default:
		t.b.writeSystemIdentifier(r)
		return doctypeSystemIdentifierSingleQuotedState
	}
}

func (t *Tokenizer) stateAfterDoctypeSystemIdentifier(r rune, eof bool) tokenizerState {
	switch {
	case eof:
		t.emitError(ErrEOFInDoctype)
		t.emitDoctypeWithQuirks()
		t.emit(endOfFileToken())
		return dataState
	case isASCIIWhitespace(r):
		return afterDoctypeSystemIdentifierState
	case r == '>':
		t.emit(t.b.doctypeToken())
		return dataState
	default:
		t.emitError(ErrUnexpectedCharacterAfterDoctypeSystemIdentifier)
		return t.reconsumeIn(bogusDoctypeState)
	}
}

func (t *Tokenizer) stateBogusDoctype(r rune, eof bool) tokenizerState {
	switch {
	case eof:
		t.emit(t.b.doctypeToken())
		t.emit(endOfFileToken())
		return dataState
	case r == '>':
		t.emit(t.b.doctypeToken())
		return dataState
	case r == 0:
		t.emitError(ErrUnexpectedNullCharacter)
		return bogusDoctypeState
	default:
		return bogusDoctypeState
	}
}
