package collaborator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arlowen/htmltokenizer/tokenizer"
)

func run(t *testing.T, input string) []Result {
	t.Helper()
	c, err := New(strings.NewReader(input))
	require.NoError(t, err)
	results, err := c.Run()
	require.NoError(t, err)
	return results
}

func tokens(results []Result) []tokenizer.Token {
	var toks []tokenizer.Token
	for _, r := range results {
		if r.Err == nil {
			toks = append(toks, r.Token)
		}
	}
	return toks
}

func chars(results []Result) string {
	var b strings.Builder
	for _, tok := range tokens(results) {
		if tok.Type == tokenizer.CharacterToken {
			b.WriteRune(tok.Char)
		}
	}
	return b.String()
}

func TestRunSwitchesContentModelForTitle(t *testing.T) {
	results := run(t, "<title><b></title>")

	toks := tokens(results)
	require.Len(t, toks, 6)
	assert.Equal(t, tokenizer.StartTagToken, toks[0].Type)
	assert.Equal(t, "title", toks[0].Name)
	// With the RCDATA content model active, <b> is text, not a tag.
	assert.Equal(t, "<b>", chars(results))
	assert.Equal(t, tokenizer.EndTagToken, toks[4].Type)
	assert.Equal(t, "title", toks[4].Name)
}

func TestRunSwitchesContentModelForScript(t *testing.T) {
	results := run(t, "<script>if (a < b) {}</script>")

	toks := tokens(results)
	assert.Equal(t, "if (a < b) {}", chars(results))
	assert.Equal(t, tokenizer.EndTagToken, toks[len(toks)-2].Type)
	assert.Equal(t, "script", toks[len(toks)-2].Name)
}

func TestRunRecognizesCDATAInForeignContent(t *testing.T) {
	results := run(t, "<svg><![CDATA[a & b]]></svg>")

	for _, r := range results {
		assert.Nil(t, r.Err, "CDATA inside svg is legal and must not raise %v", r.Err)
	}
	assert.Equal(t, "a & b", chars(results))
}

func TestRunRejectsCDATAInHTMLContent(t *testing.T) {
	results := run(t, "<div><![CDATA[x]]></div>")

	var codes []tokenizer.ErrorCode
	for _, r := range results {
		if r.Err != nil {
			codes = append(codes, r.Err.Code)
		}
	}
	assert.Equal(t, []tokenizer.ErrorCode{tokenizer.ErrCDATAInHTMLContent}, codes)

	var sawComment bool
	for _, tok := range tokens(results) {
		if tok.Type == tokenizer.CommentToken {
			sawComment = true
			assert.Equal(t, "[CDATA[x]]", tok.Data)
		}
	}
	assert.True(t, sawComment)
}

func TestRunLeavesForeignContentOnClose(t *testing.T) {
	results := run(t, "<svg></svg><![CDATA[x]]>")

	var codes []tokenizer.ErrorCode
	for _, r := range results {
		if r.Err != nil {
			codes = append(codes, r.Err.Code)
		}
	}
	assert.Equal(t, []tokenizer.ErrorCode{tokenizer.ErrCDATAInHTMLContent}, codes,
		"after </svg> the adjusted current node is HTML again")
}

func TestVoidElementsDoNotNest(t *testing.T) {
	results := run(t, "<br><img src=x><p>text</p>")

	var names []string
	for _, tok := range tokens(results) {
		if tok.Type == tokenizer.StartTagToken || tok.Type == tokenizer.EndTagToken {
			names = append(names, tok.Name)
		}
	}
	assert.Equal(t, []string{"br", "img", "p", "p"}, names)
	assert.Equal(t, "text", chars(results))
}

func TestRunCollectsParseErrorsInOrder(t *testing.T) {
	results := run(t, "<a b=1 b=2></a/>")

	var codes []tokenizer.ErrorCode
	for _, r := range results {
		if r.Err != nil {
			codes = append(codes, r.Err.Code)
		}
	}
	assert.Equal(t, []tokenizer.ErrorCode{
		tokenizer.ErrDuplicateAttribute,
		tokenizer.ErrEndTagWithTrailingSolidus,
	}, codes)
}
