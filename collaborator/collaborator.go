// Package collaborator is a minimal stand-in for the tree construction
// stage that normally drives an HTML tokenizer: it tracks just enough of
// the open-element stack to exercise the tokenizer's external
// collaborator hooks — switching content models for RAWTEXT/RCDATA/
// script-data elements, hinting the appropriate end tag for fragment-like
// parsing, and flagging foreign content so markup declarations resolve
// CDATA sections correctly — without building a DOM.
package collaborator

import (
	"io"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/arlowen/htmltokenizer/tokenizer"
)

// Node is the sliver of a DOM element collaborator needs: its name and
// the namespace it belongs to, which is all the tokenizer's CDATA
// handling cares about.
type Node struct {
	Name      string
	Namespace string
}

const (
	htmlNamespace = "html"
	svgNamespace  = "svg"
	mathNamespace = "math"
)

func (n *Node) foreign() bool {
	return n != nil && n.Namespace != "" && n.Namespace != htmlNamespace
}

// contentModels maps element names whose content model is not the
// ordinary data state to the initial state the tokenizer must switch
// into when tree construction opens one of them. plaintext elements are
// deliberately absent: PLAINTEXT has no end tag and is intended to be
// entered once, directly, rather than resumed into repeatedly.
var contentModels = map[string]string{
	"title":    "rcdata",
	"textarea": "rcdata",
	"style":    "rawtext",
	"xmp":      "rawtext",
	"iframe":   "rawtext",
	"noembed":  "rawtext",
	"noframes": "rawtext",
	"script":   "script-data",
}

var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"param": true, "source": true, "track": true, "wbr": true,
}

// Collaborator drives a tokenizer.Tokenizer and maintains the open
// element stack needed to keep the tokenizer's content model and foreign
// content hooks correct as elements are opened and closed.
type Collaborator struct {
	tok   *tokenizer.Tokenizer
	log   logrus.FieldLogger
	stack []*Node
}

// New wraps r in a tokenizer and returns a Collaborator ready to drive it.
func New(r io.Reader, opts ...tokenizer.Option) (*Collaborator, error) {
	tok, err := tokenizer.NewTokenizer(r, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "collaborator: constructing tokenizer")
	}
	return &Collaborator{tok: tok, log: logrus.StandardLogger()}, nil
}

// Result is one step of a collaborator run: either a finished Token or a
// ParseError observed along the way, in the order the tokenizer produced
// them.
type Result struct {
	Token Token
	Err   *tokenizer.ParseError
}

// Token re-exports tokenizer.Token so callers of this package don't need
// to import both.
type Token = tokenizer.Token

// Run drains the tokenizer to completion, applying the content-model and
// foreign-content hooks as it goes, and returns every token and parse
// error observed, in production order.
func (c *Collaborator) Run() ([]Result, error) {
	var results []Result
	for {
		tok, err := c.tok.Next()
		if pe, ok := err.(tokenizer.ParseError); ok {
			results = append(results, Result{Err: &pe})
			continue
		} else if err != nil {
			return results, err
		}

		c.observe(tok)
		results = append(results, Result{Token: tok})
		if tok.Type == tokenizer.EndOfFileToken {
			return results, nil
		}
	}
}

// observe updates the open-element stack for a single token and pushes
// the resulting content-model/foreign-content state back into the
// tokenizer, the way a tree constructor's ProcessToken step would.
func (c *Collaborator) observe(tok Token) {
	switch tok.Type {
	case tokenizer.StartTagToken:
		c.openElement(tok)
	case tokenizer.EndTagToken:
		c.closeElement(tok.Name)
	}
}

func (c *Collaborator) openElement(tok Token) {
	node := &Node{Name: tok.Name, Namespace: c.namespaceFor(tok.Name)}

	if model, ok := contentModels[tok.Name]; ok {
		c.log.WithFields(logrus.Fields{"element": tok.Name, "model": model}).Debug("collaborator: switching content model")
		c.tok.SetState(model)
		c.tok.SetLastStartTag(tok.Name)
	}

	if tok.SelfClosing || voidElements[tok.Name] {
		return
	}
	c.stack = append(c.stack, node)
	c.tok.SetForeignContent(c.currentForeign())
}

func (c *Collaborator) closeElement(name string) {
	for i := len(c.stack) - 1; i >= 0; i-- {
		if c.stack[i].Name == name {
			c.stack = c.stack[:i]
			break
		}
	}
	c.tok.SetForeignContent(c.currentForeign())
}

func (c *Collaborator) currentForeign() bool {
	if len(c.stack) == 0 {
		return false
	}
	return c.stack[len(c.stack)-1].foreign()
}

// namespaceFor guesses an element's namespace from its name the way a
// fuller tree constructor would from context: svg/math roots switch
// namespace for their own subtree, everything else inherits html.
func (c *Collaborator) namespaceFor(name string) string {
	switch name {
	case "svg":
		return svgNamespace
	case "math":
		return mathNamespace
	}
	if len(c.stack) > 0 {
		return c.stack[len(c.stack)-1].Namespace
	}
	return htmlNamespace
}
