// Package tokenizer implements the WHATWG HTML tokenization algorithm: it
// turns a stream of bytes into a stream of tokens (tags, comments, DOCTYPEs,
// characters, and a trailing end-of-file) plus a parallel stream of named
// parse errors, without performing tree construction.
package tokenizer

import (
	"io"
	"io/ioutil"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type tokenizerState uint8

const (
	dataState tokenizerState = iota
	rcdataState
	rawtextState
	scriptDataState
	plaintextState

	tagOpenState
	endTagOpenState
	tagNameState

	rcdataLessThanSignState
	rcdataEndTagOpenState
	rcdataEndTagNameState

	rawtextLessThanSignState
	rawtextEndTagOpenState
	rawtextEndTagNameState

	scriptDataLessThanSignState
	scriptDataEndTagOpenState
	scriptDataEndTagNameState
	scriptDataEscapeStartState
	scriptDataEscapeStartDashState
	scriptDataEscapedState
	scriptDataEscapedDashState
	scriptDataEscapedDashDashState
	scriptDataEscapedLessThanSignState
	scriptDataEscapedEndTagOpenState
	scriptDataEscapedEndTagNameState
	scriptDataDoubleEscapeStartState
	scriptDataDoubleEscapedState
	scriptDataDoubleEscapedDashState
	scriptDataDoubleEscapedDashDashState
	scriptDataDoubleEscapedLessThanSignState
	scriptDataDoubleEscapeEndState

	beforeAttributeNameState
	attributeNameState
	afterAttributeNameState
	beforeAttributeValueState
	attributeValueDoubleQuotedState
	attributeValueSingleQuotedState
	attributeValueUnquotedState
	afterAttributeValueQuotedState

	selfClosingStartTagState
	bogusCommentState

	markupDeclarationOpenState
	commentStartState
	commentStartDashState
	commentState
	commentLessThanSignState
	commentLessThanSignBangState
	commentLessThanSignBangDashState
	commentLessThanSignBangDashDashState
	commentEndDashState
	commentEndState
	commentEndBangState

	doctypeState
	beforeDoctypeNameState
	doctypeNameState
	afterDoctypeNameState
	afterDoctypePublicKeywordState
	beforeDoctypePublicIdentifierState
	doctypePublicIdentifierDoubleQuotedState
	doctypePublicIdentifierSingleQuotedState
	afterDoctypePublicIdentifierState
	betweenDoctypePublicAndSystemIdentifiersState
	afterDoctypeSystemKeywordState
	beforeDoctypeSystemIdentifierState
	doctypeSystemIdentifierDoubleQuotedState
	doctypeSystemIdentifierSingleQuotedState
	afterDoctypeSystemIdentifierState
	bogusDoctypeState

	cdataSectionState
	cdataSectionBracketState
	cdataSectionEndState

	characterReferenceState
	namedCharacterReferenceState
	ambiguousAmpersandState
	numericCharacterReferenceState
	hexadecimalCharacterReferenceStartState
	decimalCharacterReferenceStartState
	hexadecimalCharacterReferenceState
	decimalCharacterReferenceState
	numericCharacterReferenceEndState
)

// queueItem is one entry in the tokenizer's combined output queue. A single
// queue — rather than the two FIFOs the algorithm describes in the
// abstract — is enough to guarantee errors are observed before the token
// whose production raised them, because every state handler that raises an
// error does so before it calls emit for the same step.
type queueItem struct {
	isError bool
	tok     Token
	err     ParseError
}

// Tokenizer turns a byte stream into HTML tokens and parse errors. It does
// not construct a DOM; tree construction, if wanted, is the caller's job,
// driven off Next and the SetState/SetLastStartTag hooks below.
type Tokenizer struct {
	cur     *cursor
	state   tokenizerState
	retState tokenizerState

	b   *tokenBuilder
	log logrus.FieldLogger

	lastStartTagName string
	charRefInAttr    bool

	cdataAllowed bool

	queue []queueItem
	done  bool
}

// NewTokenizer reads all of r and returns a Tokenizer positioned at the
// start of it. The tokenizer operates on a resident byte slice rather than
// streaming from r incrementally, so that reconsume and the lookahead
// needed for markup declarations and DOCTYPE keywords are simple slice
// operations instead of a multi-byte unread buffer.
func NewTokenizer(r io.Reader, opts ...Option) (*Tokenizer, error) {
	src, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "tokenizer: reading input")
	}
	t := &Tokenizer{
		cur:   newCursor(src),
		state: dataState,
		b:     newTokenBuilder(),
		log:   logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t, nil
}

// SetState forces the tokenizer into the given named state, overriding the
// data state it would otherwise resume in. Tree construction uses this to
// switch into RAWTEXT/RCDATA/script-data/PLAINTEXT when it opens an
// element whose content model demands it (textarea, title, script, ...).
func (t *Tokenizer) SetState(name string) {
	if s, ok := namedStates[name]; ok {
		t.state = s
	}
}

// SetLastStartTag primes the "appropriate end tag token" check used by the
// RCDATA/RAWTEXT/script-data end tag states, without having actually
// tokenized a start tag. Fragment parsing contexts need this.
func (t *Tokenizer) SetLastStartTag(name string) {
	t.lastStartTagName = name
}

// SetForeignContent sets whether the adjusted current node the caller is
// tracking is outside the HTML namespace (foreign content such as SVG or
// MathML). When true, "<![CDATA[" inside a
// markup declaration opens a genuine CDATA section instead of a bogus
// comment, per the tree construction algorithm's contract with the
// tokenizer.
func (t *Tokenizer) SetForeignContent(foreign bool) {
	t.cdataAllowed = foreign
}

// Position returns the cursor's current Line and Column.
func (t *Tokenizer) Position() Position { return t.cur.position() }

// Line is the 1-based current line; it advances as soon as a newline is
// consumed.
func (t *Tokenizer) Line() int { return t.cur.line }

// Column counts the runes consumed on the current line: it is 0 at the
// start of a line (including right after a newline) and otherwise the
// 1-based column of the most recently consumed rune.
func (t *Tokenizer) Column() int { return t.cur.col }

// namedStates accepts both this package's short names and the state names
// the html5lib-tests fixtures use in their initialStates arrays, so test
// harnesses can pass fixture strings through unmodified.
var namedStates = map[string]tokenizerState{
	"data":        dataState,
	"rcdata":      rcdataState,
	"rawtext":     rawtextState,
	"script-data": scriptDataState,
	"plaintext":   plaintextState,
	"cdata":       cdataSectionState,

	"Data state":          dataState,
	"PLAINTEXT state":     plaintextState,
	"RCDATA state":        rcdataState,
	"RAWTEXT state":       rawtextState,
	"Script data state":   scriptDataState,
	"CDATA section state": cdataSectionState,
}

// Next returns the next token, driving the state machine as far as needed
// to produce one. A ParseError returned as err never means tokenization
// stopped — callers that care about errors at all should keep calling Next
// after inspecting one, exactly as they would for a plain token. Next
// keeps returning an EndOfFileToken with a nil error once input is
// exhausted.
func (t *Tokenizer) Next() (Token, error) {
	for len(t.queue) == 0 {
		if t.done {
			return Token{Type: EndOfFileToken}, nil
		}
		t.step()
	}
	item := t.queue[0]
	t.queue = t.queue[1:]
	if item.isError {
		return Token{}, item.err
	}
	if item.tok.Type == EndOfFileToken {
		t.done = true
	}
	return item.tok, nil
}

func (t *Tokenizer) step() {
	switch t.state {
	case markupDeclarationOpenState:
		t.log.WithField("state", "markup-declaration-open").Trace("tokenizer step")
		t.state = t.stepMarkupDeclarationOpen()
		return
	case namedCharacterReferenceState:
		t.log.WithField("state", "named-character-reference").Trace("tokenizer step")
		t.state = t.stepNamedCharacterReference()
		return
	case numericCharacterReferenceEndState:
		t.log.WithField("state", "numeric-character-reference-end").Trace("tokenizer step")
		t.state = t.stepNumericCharacterReferenceEnd()
		return
	}

	r, ok := t.cur.next()
	eof := !ok
	t.log.WithFields(logrus.Fields{
		"state": t.stateName(t.state),
		"rune":  r,
		"eof":   eof,
	}).Trace("tokenizer step")

	t.state = t.dispatch(t.state, r, eof)
}

func (t *Tokenizer) emit(tok Token) {
	t.queue = append(t.queue, queueItem{tok: tok})
}

func (t *Tokenizer) emitError(code ErrorCode) {
	t.queue = append(t.queue, queueItem{isError: true, err: ParseError{Code: code, Pos: t.cur.position()}})
}

// reconsumeIn pushes the current rune back onto the cursor and returns s,
// matching the algorithm's "reconsume in the X state" instruction.
func (t *Tokenizer) reconsumeIn(s tokenizerState) tokenizerState {
	t.cur.reconsume()
	return s
}

func (t *Tokenizer) dispatch(s tokenizerState, r rune, eof bool) tokenizerState {
	switch s {
	case dataState:
		return t.stateData(r, eof)
	case rcdataState:
		return t.stateRCData(r, eof)
	case rawtextState:
		return t.stateRawtext(r, eof)
	case scriptDataState:
		return t.stateScriptData(r, eof)
	case plaintextState:
		return t.statePlaintext(r, eof)
	case tagOpenState:
		return t.stateTagOpen(r, eof)
	case endTagOpenState:
		return t.stateEndTagOpen(r, eof)
	case tagNameState:
		return t.stateTagName(r, eof)
	case rcdataLessThanSignState:
		return t.stateRCDataLessThanSign(r, eof)
	case rcdataEndTagOpenState:
		return t.stateRCDataEndTagOpen(r, eof)
	case rcdataEndTagNameState:
		return t.stateRCDataEndTagName(r, eof)
	case rawtextLessThanSignState:
		return t.stateRawtextLessThanSign(r, eof)
	case rawtextEndTagOpenState:
		return t.stateRawtextEndTagOpen(r, eof)
	case rawtextEndTagNameState:
		return t.stateRawtextEndTagName(r, eof)
	case scriptDataLessThanSignState:
		return t.stateScriptDataLessThanSign(r, eof)
	case scriptDataEndTagOpenState:
		return t.stateScriptDataEndTagOpen(r, eof)
	case scriptDataEndTagNameState:
		return t.stateScriptDataEndTagName(r, eof)
	case scriptDataEscapeStartState:
		return t.stateScriptDataEscapeStart(r, eof)
	case scriptDataEscapeStartDashState:
		return t.stateScriptDataEscapeStartDash(r, eof)
	case scriptDataEscapedState:
		return t.stateScriptDataEscaped(r, eof)
	case scriptDataEscapedDashState:
		return t.stateScriptDataEscapedDash(r, eof)
	case scriptDataEscapedDashDashState:
		return t.stateScriptDataEscapedDashDash(r, eof)
	case scriptDataEscapedLessThanSignState:
		return t.stateScriptDataEscapedLessThanSign(r, eof)
	case scriptDataEscapedEndTagOpenState:
		return t.stateScriptDataEscapedEndTagOpen(r, eof)
	case scriptDataEscapedEndTagNameState:
		return t.stateScriptDataEscapedEndTagName(r, eof)
	case scriptDataDoubleEscapeStartState:
		return t.stateScriptDataDoubleEscapeStart(r, eof)
	case scriptDataDoubleEscapedState:
		return t.stateScriptDataDoubleEscaped(r, eof)
	case scriptDataDoubleEscapedDashState:
		return t.stateScriptDataDoubleEscapedDash(r, eof)
	case scriptDataDoubleEscapedDashDashState:
		return t.stateScriptDataDoubleEscapedDashDash(r, eof)
	case scriptDataDoubleEscapedLessThanSignState:
		return t.stateScriptDataDoubleEscapedLessThanSign(r, eof)
	case scriptDataDoubleEscapeEndState:
		return t.stateScriptDataDoubleEscapeEnd(r, eof)
	case beforeAttributeNameState:
		return t.stateBeforeAttributeName(r, eof)
	case attributeNameState:
		return t.stateAttributeName(r, eof)
	case afterAttributeNameState:
		return t.stateAfterAttributeName(r, eof)
	case beforeAttributeValueState:
		return t.stateBeforeAttributeValue(r, eof)
	case attributeValueDoubleQuotedState:
		return t.stateAttributeValueDoubleQuoted(r, eof)
	case attributeValueSingleQuotedState:
		return t.stateAttributeValueSingleQuoted(r, eof)
	case attributeValueUnquotedState:
		return t.stateAttributeValueUnquoted(r, eof)
	case afterAttributeValueQuotedState:
		return t.stateAfterAttributeValueQuoted(r, eof)
	case selfClosingStartTagState:
		return t.stateSelfClosingStartTag(r, eof)
	case bogusCommentState:
		return t.stateBogusComment(r, eof)
	case commentStartState:
		return t.stateCommentStart(r, eof)
	case commentStartDashState:
		return t.stateCommentStartDash(r, eof)
	case commentState:
		return t.stateComment(r, eof)
	case commentLessThanSignState:
		return t.stateCommentLessThanSign(r, eof)
	case commentLessThanSignBangState:
		return t.stateCommentLessThanSignBang(r, eof)
	case commentLessThanSignBangDashState:
		return t.stateCommentLessThanSignBangDash(r, eof)
	case commentLessThanSignBangDashDashState:
		return t.stateCommentLessThanSignBangDashDash(r, eof)
	case commentEndDashState:
		return t.stateCommentEndDash(r, eof)
	case commentEndState:
		return t.stateCommentEnd(r, eof)
	case commentEndBangState:
		return t.stateCommentEndBang(r, eof)
	case doctypeState:
		return t.stateDoctype(r, eof)
	case beforeDoctypeNameState:
		return t.stateBeforeDoctypeName(r, eof)
	case doctypeNameState:
		return t.stateDoctypeName(r, eof)
	case afterDoctypeNameState:
		return t.stateAfterDoctypeName(r, eof)
	case afterDoctypePublicKeywordState:
		return t.stateAfterDoctypePublicKeyword(r, eof)
	case beforeDoctypePublicIdentifierState:
		return t.stateBeforeDoctypePublicIdentifier(r, eof)
	case doctypePublicIdentifierDoubleQuotedState:
		return t.stateDoctypePublicIdentifierDoubleQuoted(r, eof)
	case doctypePublicIdentifierSingleQuotedState:
		return t.stateDoctypePublicIdentifierSingleQuoted(r, eof)
	case afterDoctypePublicIdentifierState:
		return t.stateAfterDoctypePublicIdentifier(r, eof)
	case betweenDoctypePublicAndSystemIdentifiersState:
		return t.stateBetweenDoctypePublicAndSystemIdentifiers(r, eof)
	case afterDoctypeSystemKeywordState:
		return t.stateAfterDoctypeSystemKeyword(r, eof)
	case beforeDoctypeSystemIdentifierState:
		return t.stateBeforeDoctypeSystemIdentifier(r, eof)
	case doctypeSystemIdentifierDoubleQuotedState:
		return t.stateDoctypeSystemIdentifierDoubleQuoted(r, eof)
	case doctypeSystemIdentifierSingleQuotedState:
		return t.stateDoctypeSystemIdentifierSingleQuoted(r, eof)
	case afterDoctypeSystemIdentifierState:
		return t.stateAfterDoctypeSystemIdentifier(r, eof)
	case bogusDoctypeState:
		return t.stateBogusDoctype(r, eof)
	case cdataSectionState:
		return t.stateCDATASection(r, eof)
	case cdataSectionBracketState:
		return t.stateCDATASectionBracket(r, eof)
	case cdataSectionEndState:
		return t.stateCDATASectionEnd(r, eof)
	case characterReferenceState:
		return t.stateCharacterReference(r, eof)
	case ambiguousAmpersandState:
		return t.stateAmbiguousAmpersand(r, eof)
	case numericCharacterReferenceState:
		return t.stateNumericCharacterReference(r, eof)
	case hexadecimalCharacterReferenceStartState:
		return t.stateHexadecimalCharacterReferenceStart(r, eof)
	case decimalCharacterReferenceStartState:
		return t.stateDecimalCharacterReferenceStart(r, eof)
	case hexadecimalCharacterReferenceState:
		return t.stateHexadecimalCharacterReference(r, eof)
	case decimalCharacterReferenceState:
		return t.stateDecimalCharacterReference(r, eof)
	default:
		t.log.WithField("state", int(s)).Error("tokenizer: unhandled state, falling back to data state")
		return dataState
	}
}

func (t *Tokenizer) stateName(s tokenizerState) string {
	if n, ok := stateNames[s]; ok {
		return n
	}
	return "unknown"
}

var stateNames = map[tokenizerState]string{
	dataState:       "data",
	rcdataState:     "rcdata",
	rawtextState:    "rawtext",
	scriptDataState: "script-data",
	plaintextState:  "plaintext",

	tagOpenState:    "tag-open",
	endTagOpenState: "end-tag-open",
	tagNameState:    "tag-name",

	rcdataLessThanSignState:  "rcdata-less-than-sign",
	rcdataEndTagOpenState:    "rcdata-end-tag-open",
	rcdataEndTagNameState:    "rcdata-end-tag-name",
	rawtextLessThanSignState: "rawtext-less-than-sign",
	rawtextEndTagOpenState:   "rawtext-end-tag-open",
	rawtextEndTagNameState:   "rawtext-end-tag-name",

	scriptDataLessThanSignState:             "script-data-less-than-sign",
	scriptDataEndTagOpenState:               "script-data-end-tag-open",
	scriptDataEndTagNameState:               "script-data-end-tag-name",
	scriptDataEscapeStartState:              "script-data-escape-start",
	scriptDataEscapeStartDashState:          "script-data-escape-start-dash",
	scriptDataEscapedState:                  "script-data-escaped",
	scriptDataEscapedDashState:              "script-data-escaped-dash",
	scriptDataEscapedDashDashState:          "script-data-escaped-dash-dash",
	scriptDataEscapedLessThanSignState:      "script-data-escaped-less-than-sign",
	scriptDataEscapedEndTagOpenState:        "script-data-escaped-end-tag-open",
	scriptDataEscapedEndTagNameState:        "script-data-escaped-end-tag-name",
	scriptDataDoubleEscapeStartState:        "script-data-double-escape-start",
	scriptDataDoubleEscapedState:            "script-data-double-escaped",
	scriptDataDoubleEscapedDashState:        "script-data-double-escaped-dash",
	scriptDataDoubleEscapedDashDashState:    "script-data-double-escaped-dash-dash",
	scriptDataDoubleEscapedLessThanSignState: "script-data-double-escaped-less-than-sign",
	scriptDataDoubleEscapeEndState:          "script-data-double-escape-end",

	beforeAttributeNameState:        "before-attribute-name",
	attributeNameState:              "attribute-name",
	afterAttributeNameState:         "after-attribute-name",
	beforeAttributeValueState:       "before-attribute-value",
	attributeValueDoubleQuotedState: "attribute-value-double-quoted",
	attributeValueSingleQuotedState: "attribute-value-single-quoted",
	attributeValueUnquotedState:     "attribute-value-unquoted",
	afterAttributeValueQuotedState:  "after-attribute-value-quoted",

	selfClosingStartTagState: "self-closing-start-tag",
	bogusCommentState:        "bogus-comment",

	markupDeclarationOpenState:           "markup-declaration-open",
	commentStartState:                    "comment-start",
	commentStartDashState:                "comment-start-dash",
	commentState:                         "comment",
	commentLessThanSignState:             "comment-less-than-sign",
	commentLessThanSignBangState:         "comment-less-than-sign-bang",
	commentLessThanSignBangDashState:     "comment-less-than-sign-bang-dash",
	commentLessThanSignBangDashDashState: "comment-less-than-sign-bang-dash-dash",
	commentEndDashState:                  "comment-end-dash",
	commentEndState:                      "comment-end",
	commentEndBangState:                  "comment-end-bang",

	doctypeState:                    "doctype",
	beforeDoctypeNameState:          "before-doctype-name",
	doctypeNameState:                "doctype-name",
	afterDoctypeNameState:           "after-doctype-name",
	afterDoctypePublicKeywordState:  "after-doctype-public-keyword",
	beforeDoctypePublicIdentifierState:            "before-doctype-public-identifier",
	doctypePublicIdentifierDoubleQuotedState:      "doctype-public-identifier-double-quoted",
	doctypePublicIdentifierSingleQuotedState:      "doctype-public-identifier-single-quoted",
	afterDoctypePublicIdentifierState:             "after-doctype-public-identifier",
	betweenDoctypePublicAndSystemIdentifiersState: "between-doctype-public-and-system-identifiers",
	afterDoctypeSystemKeywordState:                "after-doctype-system-keyword",
	beforeDoctypeSystemIdentifierState:            "before-doctype-system-identifier",
	doctypeSystemIdentifierDoubleQuotedState:      "doctype-system-identifier-double-quoted",
	doctypeSystemIdentifierSingleQuotedState:      "doctype-system-identifier-single-quoted",
	afterDoctypeSystemIdentifierState:             "after-doctype-system-identifier",
	bogusDoctypeState:                             "bogus-doctype",

	cdataSectionState:        "cdata-section",
	cdataSectionBracketState: "cdata-section-bracket",
	cdataSectionEndState:     "cdata-section-end",

	characterReferenceState:                 "character-reference",
	namedCharacterReferenceState:            "named-character-reference",
	ambiguousAmpersandState:                 "ambiguous-ampersand",
	numericCharacterReferenceState:          "numeric-character-reference",
	hexadecimalCharacterReferenceStartState: "hexadecimal-character-reference-start",
	decimalCharacterReferenceStartState:     "decimal-character-reference-start",
	hexadecimalCharacterReferenceState:      "hexadecimal-character-reference",
	decimalCharacterReferenceState:          "decimal-character-reference",
	numericCharacterReferenceEndState:       "numeric-character-reference-end",
}
