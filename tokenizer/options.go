package tokenizer

import "github.com/sirupsen/logrus"

// Option configures a Tokenizer at construction time.
type Option func(*Tokenizer)

// WithInitialState starts the tokenizer in a named state other than data,
// equivalent to calling SetState immediately after NewTokenizer. Valid
// names are "data", "rcdata", "rawtext", "script-data", "plaintext" and
// "cdata", or their html5lib-tests spellings ("RCDATA state", ...).
func WithInitialState(name string) Option {
	return func(t *Tokenizer) {
		t.SetState(name)
	}
}

// WithLastStartTag primes the appropriate-end-tag check for a tokenizer
// that begins mid-document, e.g. in fragment parsing.
func WithLastStartTag(name string) Option {
	return func(t *Tokenizer) {
		t.lastStartTagName = name
	}
}

// WithLogger overrides the default logrus.StandardLogger() used for the
// tokenizer's state-transition trace logging.
func WithLogger(log logrus.FieldLogger) Option {
	return func(t *Tokenizer) {
		t.log = log
	}
}

// WithForeignContent marks the tokenizer as starting inside foreign
// content (SVG/MathML), which affects whether a CDATA section inside a
// markup declaration is recognized or treated as a bogus comment.
func WithForeignContent(foreign bool) Option {
	return func(t *Tokenizer) {
		t.cdataAllowed = foreign
	}
}
