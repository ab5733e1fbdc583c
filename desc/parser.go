package desc

import (
	"bytes"
	"fmt"
	"strings"
)

// ---------------------------------------------------------------------------
// Grammar compiler: recursive descent over the description source
// ---------------------------------------------------------------------------

// DefaultVersion is the grammar version used when a description carries no
// version directive and the caller expresses no preference.
const DefaultVersion = 1

// maxNestingDepth bounds recursion through nested optional/first groups so
// that hostile input fails with an error instead of exhausting the stack.
const maxNestingDepth = 64

// Compile turns a format description into its compiled item sequence. The
// same algorithm serves the ahead-of-time path (via MustCompile or the
// generator) and dynamically supplied descriptions; they differ only in when
// they run.
//
// defaultVersion selects the grammar version (1 or 2) when the description
// has no leading `version = N` directive. Passing 0 means DefaultVersion.
func Compile(source string, defaultVersion int) ([]Item, error) {
	if defaultVersion == 0 {
		defaultVersion = DefaultVersion
	}
	if defaultVersion != 1 && defaultVersion != 2 {
		return nil, descErr(ErrInvalidVersion, 0, 0, fmt.Sprint(defaultVersion))
	}

	p := &parser{cur: NewCursor([]byte(source))}
	version, err := p.versionDirective(defaultVersion)
	if err != nil {
		return nil, err
	}
	p.version = version

	items, err := p.sequence(false)
	if err != nil {
		return nil, err
	}
	return items, nil
}

// MustCompile is Compile for descriptions fixed at build time; it panics on
// a malformed description.
func MustCompile(source string, defaultVersion int) []Item {
	items, err := Compile(source, defaultVersion)
	if err != nil {
		panic(fmt.Sprintf("desc: MustCompile(%q): %v", source, err))
	}
	return items
}

type parser struct {
	cur     Cursor
	version int
	depth   int
}

// versionDirective consumes a leading `version = N,` directive if one is
// present. A source that merely begins with the word "version" but never
// reaches an `=` is treated as literal text.
func (p *parser) versionDirective(def int) (int, *InvalidFormatDescription) {
	snap := p.cur
	if !p.cur.StripPrefix([]byte("version")) {
		return def, nil
	}
	p.skipSpaces()
	if b, ok := p.cur.Peek(); !ok || b != '=' {
		p.cur = snap
		return def, nil
	}
	p.cur.Advance()
	p.skipSpaces()

	start := p.cur.Offset()
	token := p.cur.TakeWhile(func(b byte) bool {
		return b != ',' && b != ' ' && b != '\t'
	})
	end := p.cur.Offset()
	if len(token) == 0 {
		return 0, descErr(ErrUnexpectedToken, start, end, "")
	}
	for _, b := range token {
		if b < '0' || b > '9' {
			return 0, descErr(ErrUnexpectedToken, start, end, string(token))
		}
	}
	switch string(token) {
	case "1", "2":
	default:
		return 0, descErr(ErrInvalidVersion, start, end, string(token))
	}

	p.skipSpaces()
	if b, ok := p.cur.Peek(); !ok || b != ',' {
		return 0, descErr(ErrUnexpectedToken, p.cur.Offset(), p.cur.Offset(), "")
	}
	p.cur.Advance()
	if b, ok := p.cur.Peek(); ok && b == ' ' {
		p.cur.Advance()
	}
	if token[0] == '2' {
		return 2, nil
	}
	return 1, nil
}

// sequence compiles items until end of input or, when inGroup is set, an
// unconsumed closing bracket.
func (p *parser) sequence(inGroup bool) ([]Item, *InvalidFormatDescription) {
	var items []Item
	var lit bytes.Buffer

	flush := func() {
		if lit.Len() > 0 {
			items = append(items, Literal{Text: append([]byte(nil), lit.Bytes()...)})
			lit.Reset()
		}
	}

	for {
		b, ok := p.cur.Peek()
		if !ok {
			break
		}
		switch {
		case b == '[':
			if next, ok := p.cur.PeekAt(1); ok && next == '[' {
				// Doubled bracket escapes to a literal bracket.
				p.cur.Skip(2)
				lit.WriteByte('[')
				continue
			}
			flush()
			item, err := p.bracketed()
			if err != nil {
				return nil, err
			}
			items = append(items, item)
		case b == ']' && inGroup:
			flush()
			return items, nil
		case b == '\\' && p.version == 2:
			off := p.cur.Offset()
			p.cur.Advance()
			esc, ok := p.cur.Peek()
			if !ok {
				return nil, descErr(ErrInvalidEscapeSequence, off, off+1, `\`)
			}
			switch esc {
			case '\\', '[', ']':
				p.cur.Advance()
				lit.WriteByte(esc)
			default:
				return nil, descErr(ErrInvalidEscapeSequence, off, off+2, `\`+string(esc))
			}
		default:
			p.cur.Advance()
			lit.WriteByte(b)
		}
	}
	flush()
	return items, nil
}

// bracketed compiles one bracketed construct. The cursor is on the opening
// bracket.
func (p *parser) bracketed() (Item, *InvalidFormatDescription) {
	open := p.cur.Offset()
	p.cur.Advance() // consume [
	p.skipSpaces()

	nameStart := p.cur.Offset()
	name := p.cur.TakeWhile(isNameByte)
	nameEnd := p.cur.Offset()
	if len(name) == 0 {
		return nil, descErr(ErrMissingComponentName, nameStart, nameStart, "")
	}

	if p.version == 2 {
		switch string(name) {
		case "optional":
			return p.optionalGroup(open)
		case "first":
			return p.firstGroup(open)
		}
	}
	return p.component(open, string(name), nameStart, nameEnd)
}

func (p *parser) optionalGroup(open int) (Item, *InvalidFormatDescription) {
	if b, ok := p.cur.Peek(); !ok || b != ' ' {
		return nil, descErr(ErrExpectedWhitespaceAfterOptional, p.cur.Offset(), p.cur.Offset(), "")
	}
	p.cur.Advance()

	items, err := p.nested()
	if err != nil {
		return nil, err
	}

	p.skipSpaces()
	if b, ok := p.cur.Peek(); !ok || b != ']' {
		return nil, descErr(ErrUnclosedBracket, open, open+1, "")
	}
	p.cur.Advance()
	return Optional{Items: items}, nil
}

func (p *parser) firstGroup(open int) (Item, *InvalidFormatDescription) {
	if b, ok := p.cur.Peek(); !ok || b != ' ' {
		return nil, descErr(ErrExpectedWhitespaceAfterFirst, p.cur.Offset(), p.cur.Offset(), "")
	}
	p.cur.Advance()

	var alts [][]Item
	for {
		items, err := p.nested()
		if err != nil {
			return nil, err
		}
		alts = append(alts, items)

		p.skipSpaces()
		b, ok := p.cur.Peek()
		if !ok {
			return nil, descErr(ErrUnclosedBracket, open, open+1, "")
		}
		if b == ']' {
			p.cur.Advance()
			return First{Alternatives: alts}, nil
		}
		// Next alternative; nested() insists on its opening bracket.
	}
}

// nested compiles one bracket-delimited sub-sequence of a group.
func (p *parser) nested() ([]Item, *InvalidFormatDescription) {
	b, ok := p.cur.Peek()
	if !ok || b != '[' {
		return nil, descErr(ErrExpectedOpeningBracket, p.cur.Offset(), p.cur.Offset(), "")
	}
	inner := p.cur.Offset()
	p.cur.Advance()

	if p.depth++; p.depth > maxNestingDepth {
		return nil, descErr(ErrNestingTooDeep, inner, inner+1, "")
	}
	items, err := p.sequence(true)
	p.depth--
	if err != nil {
		return nil, err
	}

	if b, ok := p.cur.Peek(); !ok || b != ']' {
		return nil, descErr(ErrUnclosedBracket, inner, inner+1, "")
	}
	p.cur.Advance()
	return items, nil
}

func (p *parser) component(open int, name string, nameStart, nameEnd int) (Item, *InvalidFormatDescription) {
	def, ok := lookupComponent(strings.ToLower(name))
	if !ok {
		return nil, descErr(ErrInvalidComponent, nameStart, nameEnd, name)
	}

	mods := Modifiers{}
	for {
		p.skipSpaces()
		b, ok := p.cur.Peek()
		if !ok {
			return nil, descErr(ErrUnclosedBracket, open, open+1, "")
		}
		if b == ']' {
			p.cur.Advance()
			break
		}
		if b == '[' {
			return nil, descErr(ErrUnclosedBracket, open, open+1, "")
		}

		tokStart := p.cur.Offset()
		token := p.cur.TakeWhile(isTokenByte)
		if len(token) == 0 {
			return nil, descErr(ErrUnexpectedToken, tokStart, tokStart+1, string(b))
		}
		colon := bytes.IndexByte(token, ':')
		if colon < 0 || colon == len(token)-1 {
			return nil, descErr(ErrExpectedModifierValue, tokStart, tokStart+len(token), string(token))
		}
		if colon == 0 {
			return nil, descErr(ErrInvalidModifierKey, tokStart, tokStart+len(token), string(token))
		}

		key := strings.ToLower(string(token[:colon]))
		value := strings.ToLower(string(token[colon+1:]))
		md, ok := def.mods[key]
		if !ok {
			return nil, descErr(ErrInvalidModifierKey, tokStart, tokStart+colon, string(token[:colon]))
		}
		if !md.accepts(value) {
			return nil, descErr(ErrInvalidModifierValue,
				tokStart+colon+1, tokStart+len(token), string(token[colon+1:]))
		}
		mods[key] = value
	}

	for key, md := range def.mods {
		if md.required {
			if _, ok := mods[key]; !ok {
				return nil, descErr(ErrMissingRequiredModifier, nameStart, nameEnd, key)
			}
		}
	}
	if len(mods) == 0 {
		mods = nil
	}
	return Component{Kind: def.kind, Mods: mods}, nil
}

func (p *parser) skipSpaces() {
	p.cur.TakeWhile(func(b byte) bool { return b == ' ' || b == '\t' })
}

func isNameByte(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}

func isTokenByte(b byte) bool {
	return b != ' ' && b != '\t' && b != '[' && b != ']'
}
