package tokenizer

import "fmt"

// ErrorCode names one kind of tokenization parse error. The set is closed
// and matches the WHATWG HTML parsing specification's list of named
// tokenizer errors verbatim.
type ErrorCode string

const (
	ErrAbruptClosingOfEmptyComment                      ErrorCode = "abrupt-closing-of-empty-comment"
	ErrAbruptDoctypePublicIdentifier                    ErrorCode = "abrupt-doctype-public-identifier"
	ErrAbruptDoctypeSystemIdentifier                    ErrorCode = "abrupt-doctype-system-identifier"
	ErrAbsenceOfDigitsInNumericCharacterReference        ErrorCode = "absence-of-digits-in-numeric-character-reference"
	ErrCDATAInHTMLContent                               ErrorCode = "cdata-in-html-content"
	ErrCharacterReferenceOutsideUnicodeRange             ErrorCode = "character-reference-outside-unicode-range"
	ErrControlCharacterReference                        ErrorCode = "control-character-reference"
	ErrDuplicateAttribute                               ErrorCode = "duplicate-attribute"
	ErrEndTagWithAttributes                             ErrorCode = "end-tag-with-attributes"
	ErrEndTagWithTrailingSolidus                        ErrorCode = "end-tag-with-trailing-solidus"
	ErrEOFBeforeTagName                                 ErrorCode = "eof-before-tag-name"
	ErrEOFInCDATA                                       ErrorCode = "eof-in-cdata"
	ErrEOFInComment                                     ErrorCode = "eof-in-comment"
	ErrEOFInDoctype                                     ErrorCode = "eof-in-doctype"
	ErrEOFInScriptHTMLCommentLikeText                    ErrorCode = "eof-in-script-html-comment-like-text"
	ErrEOFInTag                                         ErrorCode = "eof-in-tag"
	ErrIncorrectlyClosedComment                         ErrorCode = "incorrectly-closed-comment"
	ErrIncorrectlyOpenedComment                         ErrorCode = "incorrectly-opened-comment"
	ErrInvalidCharacterSequenceAfterDoctypeName          ErrorCode = "invalid-character-sequence-after-doctype-name"
	ErrInvalidFirstCharacterOfTagName                    ErrorCode = "invalid-first-character-of-tag-name"
	ErrMissingAttributeValue                            ErrorCode = "missing-attribute-value"
	ErrMissingDoctypeName                               ErrorCode = "missing-doctype-name"
	ErrMissingDoctypePublicIdentifier                    ErrorCode = "missing-doctype-public-identifier"
	ErrMissingDoctypeSystemIdentifier                    ErrorCode = "missing-doctype-system-identifier"
	ErrMissingEndTagName                                ErrorCode = "missing-end-tag-name"
	ErrMissingQuoteBeforeDoctypePublicIdentifier         ErrorCode = "missing-quote-before-doctype-public-identifier"
	ErrMissingQuoteBeforeDoctypeSystemIdentifier         ErrorCode = "missing-quote-before-doctype-system-identifier"
	ErrMissingSemicolonAfterCharacterReference            ErrorCode = "missing-semicolon-after-character-reference"
	ErrMissingWhitespaceAfterDoctypePublicKeyword         ErrorCode = "missing-whitespace-after-doctype-public-keyword"
	ErrMissingWhitespaceAfterDoctypeSystemKeyword         ErrorCode = "missing-whitespace-after-doctype-system-keyword"
	ErrMissingWhitespaceBeforeDoctypeName                 ErrorCode = "missing-whitespace-before-doctype-name"
	ErrMissingWhitespaceBetweenAttributes                 ErrorCode = "missing-whitespace-between-attributes"
	ErrMissingWhitespaceBetweenDoctypePublicAndSystemIDs  ErrorCode = "missing-whitespace-between-doctype-public-and-system-identifiers"
	ErrNestedComment                                     ErrorCode = "nested-comment"
	ErrNoncharacterCharacterReference                     ErrorCode = "noncharacter-character-reference"
	// ErrNonVoidHTMLElementStartTagWithTrailingSolidus is raised by tree
	// construction, not by the tokenizer: only the tree stage knows
	// whether the element is void. It is declared here so the taxonomy
	// is complete for consumers reporting both stages' errors.
	ErrNonVoidHTMLElementStartTagWithTrailingSolidus ErrorCode = "non-void-html-element-start-tag-with-trailing-solidus"
	ErrNullCharacterReference                            ErrorCode = "null-character-reference"
	ErrSurrogateCharacterReference                       ErrorCode = "surrogate-character-reference"
	ErrUnexpectedCharacterAfterDoctypeSystemIdentifier    ErrorCode = "unexpected-character-after-doctype-system-identifier"
	ErrUnexpectedCharacterInAttributeName                 ErrorCode = "unexpected-character-in-attribute-name"
	ErrUnexpectedCharacterInUnquotedAttributeValue        ErrorCode = "unexpected-character-in-unquoted-attribute-value"
	ErrUnexpectedEqualsSignBeforeAttributeName            ErrorCode = "unexpected-equals-sign-before-attribute-name"
	ErrUnexpectedNullCharacter                           ErrorCode = "unexpected-null-character"
	ErrUnexpectedQuestionMarkInsteadOfTagName             ErrorCode = "unexpected-question-mark-instead-of-tag-name"
	ErrUnexpectedSolidusInTag                            ErrorCode = "unexpected-solidus-in-tag"
	ErrUnknownNamedCharacterReference                     ErrorCode = "unknown-named-character-reference"
)

// ParseError is a single named tokenization error with the source position
// at which it was detected. ParseError implements error so that it can be
// returned directly from Tokenizer.Next, but — per the tokenization
// algorithm — a ParseError never aborts tokenization: it is purely
// informational, queued alongside the token stream in detection order.
type ParseError struct {
	Code ErrorCode
	Pos  Position
}

func (e ParseError) Error() string {
	return fmt.Sprintf("%s at %d:%d", e.Code, e.Pos.Line, e.Pos.Column)
}
