package tokenizer

import (
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stream is everything one tokenizer run produced, tokens and errors in
// their interleaved production order flattened into two slices.
type stream struct {
	tokens []Token
	errs   []ParseError
}

func collect(t *testing.T, input string, opts ...Option) stream {
	t.Helper()
	tok, err := NewTokenizer(strings.NewReader(input), opts...)
	require.NoError(t, err)

	var s stream
	for {
		tk, err := tok.Next()
		if pe, ok := err.(ParseError); ok {
			s.errs = append(s.errs, pe)
			continue
		}
		require.NoError(t, err)
		s.tokens = append(s.tokens, tk)
		if tk.Type == EndOfFileToken {
			return s
		}
	}
}

// chars concatenates the payloads of every Character token in the stream.
func (s stream) chars() string {
	var b strings.Builder
	for _, tk := range s.tokens {
		if tk.Type == CharacterToken {
			b.WriteRune(tk.Char)
		}
	}
	return b.String()
}

func (s stream) codes() []ErrorCode {
	var codes []ErrorCode
	for _, e := range s.errs {
		codes = append(codes, e.Code)
	}
	return codes
}

func character(r rune) Token { return Token{Type: CharacterToken, Char: r} }

func characters(text string) []Token {
	var toks []Token
	for _, r := range text {
		toks = append(toks, character(r))
	}
	return toks
}

func startTag(name string, selfClosing bool, attrs ...Attribute) Token {
	return Token{Type: StartTagToken, Name: name, SelfClosing: selfClosing, Attributes: attrs}
}

func endTag(name string) Token { return Token{Type: EndTagToken, Name: name} }

func comment(data string) Token { return Token{Type: CommentToken, Data: data} }

func doctype(name, publicID, systemID *string, forceQuirks bool) Token {
	return Token{Type: DoctypeToken, DoctypeName: name, PublicID: publicID, SystemID: systemID, ForceQuirks: forceQuirks}
}

func str(s string) *string { return &s }

func eofTok() Token { return Token{Type: EndOfFileToken} }

func TestScenarios(t *testing.T) {
	tests := []struct {
		input  string
		tokens []Token
		codes  []ErrorCode
	}{
		{
			input: "<h1>Hi</h1>",
			tokens: append(append([]Token{startTag("h1", false)},
				characters("Hi")...), endTag("h1"), eofTok()),
		},
		{
			input:  "<br/>",
			tokens: []Token{startTag("br", true), eofTok()},
		},
		{
			input: "<a b=c d>",
			tokens: []Token{
				startTag("a", false, Attribute{Name: "b", Value: "c"}, Attribute{Name: "d", Value: ""}),
				eofTok(),
			},
		},
		{
			input: "<a b=c b=d>",
			tokens: []Token{
				startTag("a", false, Attribute{Name: "b", Value: "c"}),
				eofTok(),
			},
			codes: []ErrorCode{ErrDuplicateAttribute},
		},
		{
			input:  "&amp;",
			tokens: []Token{character('&'), eofTok()},
		},
		{
			input:  "&amp",
			tokens: []Token{character('&'), eofTok()},
			codes:  []ErrorCode{ErrMissingSemicolonAfterCharacterReference},
		},
		{
			input:  "<!DOCTYPE html>",
			tokens: []Token{doctype(str("html"), nil, nil, false), eofTok()},
		},
		{
			input:  "<!-- a -- b -->",
			tokens: []Token{comment(" a -- b "), eofTok()},
		},
		{
			input:  "<?x>",
			tokens: []Token{comment("?x"), eofTok()},
			codes:  []ErrorCode{ErrUnexpectedQuestionMarkInsteadOfTagName},
		},
		{
			input:  "</>",
			tokens: []Token{eofTok()},
			codes:  []ErrorCode{ErrMissingEndTagName},
		},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			s := collect(t, tt.input)
			assert.Equal(t, tt.tokens, s.tokens)
			assert.Equal(t, tt.codes, s.codes())
		})
	}
}

func TestEmptyInput(t *testing.T) {
	s := collect(t, "")
	assert.Equal(t, []Token{eofTok()}, s.tokens)
	assert.Empty(t, s.errs)
}

func TestLoneLessThan(t *testing.T) {
	s := collect(t, "<")
	assert.Equal(t, []Token{character('<'), eofTok()}, s.tokens)
	assert.Equal(t, []ErrorCode{ErrEOFBeforeTagName}, s.codes())
}

func TestUnclosedComment(t *testing.T) {
	s := collect(t, "<!--")
	assert.Equal(t, []Token{comment(""), eofTok()}, s.tokens)
	assert.Equal(t, []ErrorCode{ErrEOFInComment}, s.codes())
}

func TestEndOfFileIsIdempotent(t *testing.T) {
	tok, err := NewTokenizer(strings.NewReader("x"))
	require.NoError(t, err)

	tk, err := tok.Next()
	require.NoError(t, err)
	require.Equal(t, CharacterToken, tk.Type)

	for i := 0; i < 5; i++ {
		tk, err = tok.Next()
		require.NoError(t, err)
		assert.Equal(t, EndOfFileToken, tk.Type, "call %d after exhaustion", i)
	}
}

func TestRunsAreReproducible(t *testing.T) {
	const input = `<!DOCTYPE html><p class="a">x &amp y</p><!--c--><a b=c b=d>`
	first := collect(t, input)
	second := collect(t, input)
	assert.Equal(t, first.tokens, second.tokens)
	assert.Equal(t, first.errs, second.errs)
}

func TestNumericCharacterReferences(t *testing.T) {
	tests := []struct {
		input string
		want  rune
		codes []ErrorCode
	}{
		{"&#65;", 'A', nil},
		{"&#x41;", 'A', nil},
		{"&#X41;", 'A', nil},
		{"&#65", 'A', []ErrorCode{ErrMissingSemicolonAfterCharacterReference}},
		{"&#0;", '�', []ErrorCode{ErrNullCharacterReference}},
		{"&#xD800;", '�', []ErrorCode{ErrSurrogateCharacterReference}},
		{"&#x110000;", '�', []ErrorCode{ErrCharacterReferenceOutsideUnicodeRange}},
		{"&#x80;", '€', []ErrorCode{ErrControlCharacterReference}},
		{"&#x81;", '\u0081', []ErrorCode{ErrControlCharacterReference}},
		{"&#xFDD0;", '﷐', []ErrorCode{ErrNoncharacterCharacterReference}},
		{"&#x10FFFF;", '\U0010FFFF', []ErrorCode{ErrNoncharacterCharacterReference}},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			s := collect(t, tt.input)
			require.Len(t, s.tokens, 2)
			assert.Equal(t, character(tt.want), s.tokens[0])
			assert.Equal(t, tt.codes, s.codes())
		})
	}
}

func TestNumericCharacterReferenceWithoutDigits(t *testing.T) {
	s := collect(t, "&#;")
	assert.Equal(t, append(characters("&#"), character(';'), eofTok()), s.tokens)
	assert.Equal(t, []ErrorCode{ErrAbsenceOfDigitsInNumericCharacterReference}, s.codes())

	s = collect(t, "&#x;")
	assert.Equal(t, append(characters("&#x"), character(';'), eofTok()), s.tokens)
	assert.Equal(t, []ErrorCode{ErrAbsenceOfDigitsInNumericCharacterReference}, s.codes())
}

func TestUnknownNamedReference(t *testing.T) {
	s := collect(t, "&zzyx;")
	assert.Equal(t, append(characters("&zzyx;"), eofTok()), s.tokens)
	assert.Equal(t, []ErrorCode{ErrUnknownNamedCharacterReference}, s.codes())
}

func TestNamedReferenceInAttributeValue(t *testing.T) {
	tests := []struct {
		input string
		value string
		codes []ErrorCode
	}{
		// Historical form: a bare legacy entity followed by '=' or an
		// alphanumeric is left alone inside attribute values.
		{`<a href="x&amp=y">`, "x&amp=y", nil},
		{`<a href="x&ampz">`, "x&ampz", nil},
		{`<a href="x&amp;y">`, "x&y", nil},
		{`<a href="x&amp y">`, "x& y", []ErrorCode{ErrMissingSemicolonAfterCharacterReference}},
		{`<a href="&unknown;">`, "&unknown;", []ErrorCode{ErrUnknownNamedCharacterReference}},
		{`<a href="&#65;">`, "A", nil},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			s := collect(t, tt.input)
			require.Len(t, s.tokens, 2)
			require.Equal(t, StartTagToken, s.tokens[0].Type)
			v, ok := s.tokens[0].Attr("href")
			require.True(t, ok)
			assert.Equal(t, tt.value, v)
			assert.Equal(t, tt.codes, s.codes())
		})
	}
}

func TestAttributeValueAfterSpacedEquals(t *testing.T) {
	tests := []struct {
		input string
		attrs []Attribute
		codes []ErrorCode
	}{
		{"<a b = c>", []Attribute{{Name: "b", Value: "c"}}, nil},
		{"<a b = 'c'>", []Attribute{{Name: "b", Value: "c"}}, nil},
		{`<a b = "c" d>`, []Attribute{{Name: "b", Value: "c"}, {Name: "d", Value: ""}}, nil},
		{"<a b c>", []Attribute{{Name: "b", Value: ""}, {Name: "c", Value: ""}}, nil},
		{"<a b b>", []Attribute{{Name: "b", Value: ""}}, []ErrorCode{ErrDuplicateAttribute}},
		{"<a b b = c>", []Attribute{{Name: "b", Value: ""}}, []ErrorCode{ErrDuplicateAttribute}},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			s := collect(t, tt.input)
			require.Len(t, s.tokens, 2)
			require.Equal(t, StartTagToken, s.tokens[0].Type)
			assert.Equal(t, tt.attrs, s.tokens[0].Attributes)
			assert.Equal(t, tt.codes, s.codes())
		})
	}
}

func TestDoctypeIdentifiers(t *testing.T) {
	tests := []struct {
		input string
		want  Token
		codes []ErrorCode
	}{
		{
			input: "<!DOCTYPE html>",
			want:  doctype(str("html"), nil, nil, false),
		},
		{
			input: "<!doctype HTML>",
			want:  doctype(str("html"), nil, nil, false),
		},
		{
			input: `<!DOCTYPE html PUBLIC "">`,
			want:  doctype(str("html"), str(""), nil, false),
		},
		{
			input: `<!DOCTYPE html PUBLIC "pub" "sys">`,
			want:  doctype(str("html"), str("pub"), str("sys"), false),
		},
		{
			input: `<!DOCTYPE html SYSTEM 'sys'>`,
			want:  doctype(str("html"), nil, str("sys"), false),
		},
		{
			input: "<!DOCTYPE>",
			want:  doctype(nil, nil, nil, true),
			codes: []ErrorCode{ErrMissingDoctypeName},
		},
		{
			input: "<!DOCTYPE html PUBLIC>",
			want:  doctype(str("html"), nil, nil, true),
			codes: []ErrorCode{ErrMissingDoctypePublicIdentifier},
		},
		{
			input: `<!DOCTYPE html PUBLIC "pub>`,
			want:  doctype(str("html"), str("pub"), nil, true),
			codes: []ErrorCode{ErrAbruptDoctypePublicIdentifier},
		},
		{
			input: "<!DOCTYPE html BOGUS>",
			want:  doctype(str("html"), nil, nil, true),
			codes: []ErrorCode{ErrInvalidCharacterSequenceAfterDoctypeName},
		},
		{
			input: "<!DOCTYPE ",
			want:  doctype(nil, nil, nil, true),
			codes: []ErrorCode{ErrEOFInDoctype},
		},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			s := collect(t, tt.input)
			require.NotEmpty(t, s.tokens)
			assert.Equal(t, tt.want, s.tokens[0])
			assert.Equal(t, tt.codes, s.codes())
		})
	}
}

func TestEndTagMalformations(t *testing.T) {
	s := collect(t, "</a/>")
	assert.Equal(t, []Token{endTag("a"), eofTok()}, s.tokens)
	assert.Equal(t, []ErrorCode{ErrEndTagWithTrailingSolidus}, s.codes())

	s = collect(t, "</a b=c>")
	require.Len(t, s.tokens, 2)
	assert.Equal(t, EndTagToken, s.tokens[0].Type)
	assert.Equal(t, []ErrorCode{ErrEndTagWithAttributes}, s.codes())
}

func TestRCDataAppropriateEndTag(t *testing.T) {
	s := collect(t, "foo</title>", WithInitialState("rcdata"), WithLastStartTag("title"))
	assert.Equal(t, append(characters("foo"), endTag("title"), eofTok()), s.tokens)
	assert.Empty(t, s.errs)
}

func TestRCDataEndTagFallback(t *testing.T) {
	// </span> does not match the last start tag, so the tokenizer must
	// re-emit "</" and the buffered letters as text, preserving case.
	s := collect(t, "</SpAn>x", WithInitialState("rcdata"), WithLastStartTag("title"))
	assert.Equal(t, append(characters("</SpAn>x"), eofTok()), s.tokens)
	assert.Empty(t, s.errs)
}

func TestRCDataCharacterReference(t *testing.T) {
	s := collect(t, "a&amp;b</textarea>", WithInitialState("rcdata"), WithLastStartTag("textarea"))
	assert.Equal(t, append(characters("a&b"), endTag("textarea"), eofTok()), s.tokens)
}

func TestRawtextDoesNotResolveReferences(t *testing.T) {
	s := collect(t, "a&amp;b</style>", WithInitialState("rawtext"), WithLastStartTag("style"))
	assert.Equal(t, append(characters("a&amp;b"), endTag("style"), eofTok()), s.tokens)
}

func TestScriptDataDoubleEscape(t *testing.T) {
	const input = "<!--<script>a</script>-->x"
	s := collect(t, input, WithInitialState("script-data"), WithLastStartTag("script"))
	assert.Equal(t, input, s.chars(), "every byte of escaped script text passes through as characters")
	assert.Empty(t, s.errs)
}

func TestScriptDataEscapedEOF(t *testing.T) {
	s := collect(t, "<!--x", WithInitialState("script-data"))
	assert.Equal(t, "<!--x", s.chars())
	assert.Equal(t, []ErrorCode{ErrEOFInScriptHTMLCommentLikeText}, s.codes())
}

func TestScriptDataEndTag(t *testing.T) {
	s := collect(t, "var x = 1;</script>", WithInitialState("script-data"), WithLastStartTag("script"))
	assert.Equal(t, append(characters("var x = 1;"), endTag("script"), eofTok()), s.tokens)
}

func TestPlaintextConsumesEverything(t *testing.T) {
	s := collect(t, "a</plaintext><b>", WithInitialState("plaintext"))
	assert.Equal(t, append(characters("a</plaintext><b>"), eofTok()), s.tokens)
	assert.Empty(t, s.errs)
}

func TestCDATASection(t *testing.T) {
	s := collect(t, "<![CDATA[a]]b]]>c", WithForeignContent(true))
	assert.Equal(t, append(characters("a]]bc"), eofTok()), s.tokens)
	assert.Empty(t, s.errs)
}

func TestCDATAInHTMLContentBecomesBogusComment(t *testing.T) {
	s := collect(t, "<![CDATA[x]]>")
	assert.Equal(t, []Token{comment("[CDATA[x]]"), eofTok()}, s.tokens)
	assert.Equal(t, []ErrorCode{ErrCDATAInHTMLContent}, s.codes())
}

func TestCDATAEOF(t *testing.T) {
	s := collect(t, "<![CDATA[x", WithForeignContent(true))
	assert.Equal(t, append(characters("x"), eofTok()), s.tokens)
	assert.Equal(t, []ErrorCode{ErrEOFInCDATA}, s.codes())
}

func TestIncorrectlyOpenedComment(t *testing.T) {
	s := collect(t, "<!x>")
	assert.Equal(t, []Token{comment("x"), eofTok()}, s.tokens)
	assert.Equal(t, []ErrorCode{ErrIncorrectlyOpenedComment}, s.codes())
}

func TestNestedCommentError(t *testing.T) {
	s := collect(t, "<!--a<!--b-->")
	assert.Equal(t, []Token{comment("a<!--b"), eofTok()}, s.tokens)
	assert.Equal(t, []ErrorCode{ErrNestedComment}, s.codes())
}

func TestNullCharacterHandling(t *testing.T) {
	// In the data state a NUL is reported but passed through unchanged;
	// everywhere else it is replaced with U+FFFD.
	s := collect(t, "\x00")
	assert.Equal(t, []Token{character('\x00'), eofTok()}, s.tokens)
	assert.Equal(t, []ErrorCode{ErrUnexpectedNullCharacter}, s.codes())

	s = collect(t, "\x00", WithInitialState("rcdata"))
	assert.Equal(t, []Token{character('�'), eofTok()}, s.tokens)
	assert.Equal(t, []ErrorCode{ErrUnexpectedNullCharacter}, s.codes())
}

func TestErrorPositions(t *testing.T) {
	tok, err := NewTokenizer(strings.NewReader("a\nb\x00"))
	require.NoError(t, err)

	var pe ParseError
	for {
		tk, err := tok.Next()
		if p, ok := err.(ParseError); ok {
			pe = p
			break
		}
		require.NoError(t, err)
		require.NotEqual(t, EndOfFileToken, tk.Type, "expected an error before end of input")
	}
	assert.Equal(t, ErrUnexpectedNullCharacter, pe.Code)
	assert.Equal(t, Position{Line: 2, Column: 2}, pe.Pos)
}

func TestSetStateBetweenTokens(t *testing.T) {
	tok, err := NewTokenizer(strings.NewReader("<title>a<b</title>"), WithLogger(logrus.StandardLogger()))
	require.NoError(t, err)

	tk, err := tok.Next()
	require.NoError(t, err)
	require.Equal(t, startTag("title", false), tk)

	// A tree constructor would do exactly this on seeing <title>.
	tok.SetState("rcdata")
	tok.SetLastStartTag("title")

	var got []Token
	for {
		tk, err := tok.Next()
		require.NoError(t, err)
		got = append(got, tk)
		if tk.Type == EndOfFileToken {
			break
		}
	}
	assert.Equal(t, append(characters("a<b"), endTag("title"), eofTok()), got)
}

func TestConcatenationAtTagBoundary(t *testing.T) {
	const a = "x<b>"
	const b = "<p>y</p>"

	streamA := collect(t, a)
	streamB := collect(t, b)
	combined := collect(t, a+b)

	var want []Token
	want = append(want, streamA.tokens[:len(streamA.tokens)-1]...)
	want = append(want, streamB.tokens...)
	assert.Equal(t, want, combined.tokens)
}

func TestSelfClosingNonVoidKeepsFlag(t *testing.T) {
	s := collect(t, "<div/>")
	assert.Equal(t, []Token{startTag("div", true), eofTok()}, s.tokens)
}

func TestUnexpectedSolidusInTag(t *testing.T) {
	s := collect(t, "<a / b>")
	assert.Equal(t, []Token{startTag("a", false, Attribute{Name: "b", Value: ""}), eofTok()}, s.tokens)
	assert.Equal(t, []ErrorCode{ErrUnexpectedSolidusInTag}, s.codes())
}

func TestEOFInTag(t *testing.T) {
	s := collect(t, "<a b=c")
	assert.Equal(t, []Token{eofTok()}, s.tokens)
	assert.Equal(t, []ErrorCode{ErrEOFInTag}, s.codes())
}
