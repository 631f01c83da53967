package tokenizer

// flushTempBufferAsCharacters emits the temp buffer's contents as they
// were consumed — either into the attribute value currently being built,
// if the ampersand that started this character reference was found
// inside one, or as character tokens on the main output queue otherwise.
func (t *Tokenizer) flushTempBufferAsCharacters() {
	for _, r := range t.b.tempBuffer {
		if t.charRefInAttr {
			t.b.writeAttributeValue(r)
		} else {
			t.emit(characterToken(r))
		}
	}
}

// finishCharRef returns the state the character reference should resume
// in, clearing charRefInAttr so it doesn't leak into an unrelated later
// reference — every path out of the character reference states goes
// through this instead of reading t.retState directly.
func (t *Tokenizer) finishCharRef() tokenizerState {
	ret := t.retState
	t.charRefInAttr = false
	return ret
}

func (t *Tokenizer) reconsumeFinishCharRef() tokenizerState {
	t.cur.reconsume()
	return t.finishCharRef()
}

func (t *Tokenizer) stateCharacterReference(r rune, eof bool) tokenizerState {
	t.b.resetTempBuffer()
	t.b.writeTempBuffer('&')
	switch {
	case !eof && isASCIIAlphanumeric(r):
		return t.reconsumeIn(namedCharacterReferenceState)
	case !eof && r == '#':
		t.b.writeTempBuffer('#')
		return numericCharacterReferenceState
	default:
		t.flushTempBufferAsCharacters()
		return t.reconsumeFinishCharRef()
	}
}

// stepNamedCharacterReference is called directly from step, bypassing the
// usual one-rune-at-a-time dispatch: the algorithm it implements consumes
// a variable-length run of characters by table lookup, not one character
// decided in isolation, so it reads its own lookahead via the cursor's
// peekBytes instead.
func (t *Tokenizer) stepNamedCharacterReference() tokenizerState {
	t.cur.rewindReconsume()
	lookahead := string(t.cur.peekBytes(maxNamedReferenceLen))
	name, codepoints, ok := lookupNamedReference(lookahead)
	if !ok {
		t.flushTempBufferAsCharacters()
		return ambiguousAmpersandState
	}
	t.cur.discard(len(name))

	terminatedBySemicolon := name[len(name)-1] == ';'
	if t.charRefInAttr && !terminatedBySemicolon {
		if next, hasNext := t.cur.peek(); hasNext && (next == '=' || isASCIIAlphanumeric(next)) {
			for _, r := range name {
				t.b.writeTempBuffer(r)
			}
			t.flushTempBufferAsCharacters()
			return t.finishCharRef()
		}
	}

	if !terminatedBySemicolon {
		t.emitError(ErrMissingSemicolonAfterCharacterReference)
	}
	t.b.resetTempBuffer()
	for _, r := range codepoints {
		t.b.writeTempBuffer(r)
	}
	t.flushTempBufferAsCharacters()
	return t.finishCharRef()
}

func (t *Tokenizer) stateAmbiguousAmpersand(r rune, eof bool) tokenizerState {
	switch {
	case !eof && isASCIIAlphanumeric(r):
		if t.charRefInAttr {
			t.b.writeAttributeValue(r)
		} else {
			t.emit(characterToken(r))
		}
		return ambiguousAmpersandState
	case !eof && r == ';':
		t.emitError(ErrUnknownNamedCharacterReference)
		return t.reconsumeFinishCharRef()
	default:
		return t.reconsumeFinishCharRef()
	}
}

func (t *Tokenizer) stateNumericCharacterReference(r rune, eof bool) tokenizerState {
	t.b.charRefCode = 0
	if !eof && (r == 'x' || r == 'X') {
		t.b.writeTempBuffer(r)
		return hexadecimalCharacterReferenceStartState
	}
	return t.reconsumeIn(decimalCharacterReferenceStartState)
}

func (t *Tokenizer) stateHexadecimalCharacterReferenceStart(r rune, eof bool) tokenizerState {
	if !eof && isASCIIHexDigit(r) {
		return t.reconsumeIn(hexadecimalCharacterReferenceState)
	}
	t.emitError(ErrAbsenceOfDigitsInNumericCharacterReference)
	t.flushTempBufferAsCharacters()
	return t.reconsumeFinishCharRef()
}

func (t *Tokenizer) stateDecimalCharacterReferenceStart(r rune, eof bool) tokenizerState {
	if !eof && isASCIIDigit(r) {
		return t.reconsumeIn(decimalCharacterReferenceState)
	}
	t.emitError(ErrAbsenceOfDigitsInNumericCharacterReference)
	t.flushTempBufferAsCharacters()
	return t.reconsumeFinishCharRef()
}

// clampCharRefCode pins an over-long digit run at the first value past
// the Unicode range, which is all the end-state validation needs to see
// and keeps arbitrarily many digits from overflowing the accumulator.
func clampCharRefCode(code int) int {
	if code > 0x10FFFF {
		return 0x110000
	}
	return code
}

func hexDigitValue(r rune) int {
	switch {
	case r >= '0' && r <= '9':
		return int(r - '0')
	case r >= 'a' && r <= 'f':
		return int(r-'a') + 10
	default:
		return int(r-'A') + 10
	}
}

func (t *Tokenizer) stateHexadecimalCharacterReference(r rune, eof bool) tokenizerState {
	switch {
	case !eof && isASCIIHexDigit(r):
		t.b.charRefCode = clampCharRefCode(t.b.charRefCode*16 + hexDigitValue(r))
		return hexadecimalCharacterReferenceState
	case !eof && r == ';':
		return numericCharacterReferenceEndState
	default:
		t.emitError(ErrMissingSemicolonAfterCharacterReference)
		return t.reconsumeIn(numericCharacterReferenceEndState)
	}
}

func (t *Tokenizer) stateDecimalCharacterReference(r rune, eof bool) tokenizerState {
	switch {
	case !eof && isASCIIDigit(r):
		t.b.charRefCode = clampCharRefCode(t.b.charRefCode*10 + int(r-'0'))
		return decimalCharacterReferenceState
	case !eof && r == ';':
		return numericCharacterReferenceEndState
	default:
		t.emitError(ErrMissingSemicolonAfterCharacterReference)
		return t.reconsumeIn(numericCharacterReferenceEndState)
	}
}

// stepNumericCharacterReferenceEnd is called directly from step: unlike
// the states around it, it never consumes an input character at all —
// it only validates the accumulated code point and flushes it.
func (t *Tokenizer) stepNumericCharacterReferenceEnd() tokenizerState {
	code := t.b.charRefCode
	switch {
	case code == 0:
		t.emitError(ErrNullCharacterReference)
		code = 0xFFFD
	case code > 0x10FFFF:
		t.emitError(ErrCharacterReferenceOutsideUnicodeRange)
		code = 0xFFFD
	case isSurrogate(rune(code)):
		t.emitError(ErrSurrogateCharacterReference)
		code = 0xFFFD
	case isNonCharacter(rune(code)):
		t.emitError(ErrNoncharacterCharacterReference)
	case code == 0x0D || (isControl(rune(code)) && !isASCIIWhitespace(rune(code))):
		t.emitError(ErrControlCharacterReference)
		if repl, ok := c1ControlReplacements[rune(code)]; ok {
			code = int(repl)
		}
	}
	t.b.resetTempBuffer()
	t.b.writeTempBuffer(rune(code))
	t.flushTempBufferAsCharacters()
	return t.finishCharRef()
}
