package tokenizer

import "strings"

// tagKind distinguishes which tag Token a tokenBuilder currently in tag
// mode will eventually produce.
type tagKind uint8

const (
	noTag tagKind = iota
	startTagKind
	endTagKind
)

// tokenBuilder accumulates the partial fields of whichever token is
// currently under construction. At most one token is under construction
// at a time; reset is called whenever the state machine starts a new one.
// On completion, the *Token methods copy the builder's scratch buffer
// contents into a fresh Token; they do not clear the builder, whose
// buffers keep their contents until the next reset. The emitted Token
// owns its strings outright, and reset gives the builder a new attribute
// slice instead of reusing the one handed to the Token.
type tokenBuilder struct {
	tag tagKind

	name strings.Builder
	data strings.Builder

	tempBuffer []rune

	attrs          []Attribute
	attrIndex      map[string]int
	curAttrName    strings.Builder
	curAttrValue   strings.Builder
	curAttrDup     bool

	selfClosing bool

	forceQuirks    bool
	doctypeNameSet bool
	publicIDSet    bool
	systemIDSet    bool
	publicID       strings.Builder
	systemID       strings.Builder

	charRefCode int
}

func newTokenBuilder() *tokenBuilder {
	return &tokenBuilder{attrIndex: make(map[string]int)}
}

// reset discards any in-progress token and begins a new one of the given
// tag kind (noTag for comment/doctype/character builders, which use the
// name/data buffers directly without going through the tag-only fields).
func (b *tokenBuilder) reset(tag tagKind) {
	b.tag = tag
	b.name.Reset()
	b.data.Reset()
	b.attrs = nil
	b.attrIndex = make(map[string]int)
	b.curAttrName.Reset()
	b.curAttrValue.Reset()
	b.curAttrDup = false
	b.selfClosing = false
	b.forceQuirks = false
	b.doctypeNameSet = false
	b.publicIDSet = false
	b.systemIDSet = false
	b.publicID.Reset()
	b.systemID.Reset()
	b.charRefCode = 0
}

func (b *tokenBuilder) writeName(r rune) {
	b.name.WriteRune(r)
	b.doctypeNameSet = true
}

func (b *tokenBuilder) writeData(r rune) { b.data.WriteRune(r) }

func (b *tokenBuilder) resetTempBuffer() { b.tempBuffer = b.tempBuffer[:0] }
func (b *tokenBuilder) writeTempBuffer(r rune) {
	b.tempBuffer = append(b.tempBuffer, r)
}
func (b *tokenBuilder) tempBufferString() string { return string(b.tempBuffer) }

func (b *tokenBuilder) enableSelfClosing() { b.selfClosing = true }
func (b *tokenBuilder) enableForceQuirks() { b.forceQuirks = true }

func (b *tokenBuilder) writePublicIdentifierEmpty() { b.publicIDSet = true }
func (b *tokenBuilder) writeSystemIdentifierEmpty() { b.systemIDSet = true }
func (b *tokenBuilder) writePublicIdentifier(r rune) {
	b.publicIDSet = true
	b.publicID.WriteRune(r)
}
func (b *tokenBuilder) writeSystemIdentifier(r rune) {
	b.systemIDSet = true
	b.systemID.WriteRune(r)
}

func (b *tokenBuilder) writeAttributeName(r rune)  { b.curAttrName.WriteRune(r) }
func (b *tokenBuilder) writeAttributeValue(r rune) { b.curAttrValue.WriteRune(r) }

// finishAttributeName is called exactly once per attribute, at the moment
// the state machine leaves the attribute-name state. It reports whether
// the accumulated name duplicates one already committed to this tag, so
// the caller can raise ErrDuplicateAttribute at the right position.
func (b *tokenBuilder) finishAttributeName() (duplicate bool) {
	name := b.curAttrName.String()
	if name == "" {
		return false
	}
	_, exists := b.attrIndex[name]
	b.curAttrDup = exists
	return exists
}

// commitAttribute appends the current name/value pair to the tag's
// attribute list, unless the name is empty (no attribute was started) or
// finishAttributeName already flagged it as a duplicate, in which case
// the first occurrence's value is retained and this one is discarded.
// The state machine calls it when the next attribute starts or the tag
// is emitted — never on merely leaving the attribute-name state, since a
// later "=" can still attach a value to the current attribute.
func (b *tokenBuilder) commitAttribute() {
	name := b.curAttrName.String()
	if name != "" && !b.curAttrDup {
		b.attrIndex[name] = len(b.attrs)
		b.attrs = append(b.attrs, Attribute{Name: name, Value: b.curAttrValue.String()})
	}
	b.curAttrName.Reset()
	b.curAttrValue.Reset()
	b.curAttrDup = false
}

func (b *tokenBuilder) isAppropriateEndTag(lastStartTagName string) bool {
	return lastStartTagName != "" && b.name.String() == lastStartTagName
}

func (b *tokenBuilder) startTagToken() Token {
	return Token{
		Type:        StartTagToken,
		Name:        b.name.String(),
		SelfClosing: b.selfClosing,
		Attributes:  b.attrs,
	}
}

func (b *tokenBuilder) endTagToken() Token {
	return Token{
		Type:        EndTagToken,
		Name:        b.name.String(),
		SelfClosing: b.selfClosing,
		Attributes:  b.attrs,
	}
}

func (b *tokenBuilder) commentToken() Token {
	return Token{Type: CommentToken, Data: b.data.String()}
}

func (b *tokenBuilder) doctypeToken() Token {
	t := Token{
		Type:        DoctypeToken,
		ForceQuirks: b.forceQuirks,
	}
	if b.doctypeNameSet {
		name := b.name.String()
		t.DoctypeName = &name
	}
	if b.publicIDSet {
		id := b.publicID.String()
		t.PublicID = &id
	}
	if b.systemIDSet {
		id := b.systemID.String()
		t.SystemID = &id
	}
	return t
}

func characterToken(r rune) Token { return Token{Type: CharacterToken, Char: r} }
func endOfFileToken() Token       { return Token{Type: EndOfFileToken} }
