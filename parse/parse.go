// Package parse provides project file parsing support.
package parse

import (
	"errors"

	"github.com/signadot/xcproj/format"
	"github.com/signadot/xcproj/ir"
	"github.com/signadot/xcproj/token"
)

// Parse parses d into a value tree.  A block comment directly after a key
// or a string becomes its comment, comments before the root value become
// the root's Leading lines, and any other comment is dropped.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{format: format.PBXFormat, comments: true}
	for _, f := range opts {
		f(pOpts)
	}
	toks, err := token.Tokenize(nil, d, pOpts.TokenizeOpts()...)
	if err != nil {
		var te *token.TokenizeErr
		if errors.As(err, &te) {
			return nil, &ParseError{Err: te.Err, Pos: te.Pos}
		}
		return nil, err
	}
	p := &parser{toks: toks, opts: pOpts, doc: d}
	leading := p.leading()
	if p.i == len(toks) {
		return nil, &ParseError{Err: ErrEmptyDoc, Pos: *p.end()}
	}
	res, err := p.value()
	if err != nil {
		return nil, err
	}
	p.skipComments()
	if p.i < len(toks) {
		return nil, &ParseError{Err: ErrTrailing, Pos: *toks[p.i].Pos}
	}
	if pOpts.comments {
		res.Leading = leading
	}
	return res, nil
}

type parser struct {
	toks []token.Token
	i    int
	opts *parseOpts
	doc  []byte
}

func (p *parser) end() *token.Pos {
	return token.NewPosDoc(p.doc).End()
}

func (p *parser) cur() *token.Token {
	if p.i < len(p.toks) {
		return &p.toks[p.i]
	}
	return nil
}

func (p *parser) skipComments() {
	for p.i < len(p.toks) && p.toks[p.i].IsComment() {
		p.i++
	}
}

func (p *parser) leading() []string {
	var lns []string
	for p.i < len(p.toks) && p.toks[p.i].IsComment() {
		lns = append(lns, p.toks[p.i].String())
		p.i++
	}
	return lns
}

// lineComment consumes a block comment directly following the current
// position.
func (p *parser) lineComment() string {
	t := p.cur()
	if t == nil || t.Type != token.TComment {
		return ""
	}
	p.i++
	if !p.opts.comments {
		return ""
	}
	return t.CommentText()
}

func (p *parser) value() (*ir.Node, error) {
	p.skipComments()
	t := p.cur()
	if t == nil {
		return nil, parseErr(p.end(), "premature end of document")
	}
	json := p.opts.format.IsJSON()
	switch {
	case t.IsString():
		p.i++
		node := ir.FromString(t.String())
		node.Str.Comment = p.lineComment()
		return node, nil
	case t.Type == token.TLCurl:
		p.i++
		return p.object(t)
	case t.Type == token.TLParen && !json:
		p.i++
		return p.array(t, token.TRParen)
	case t.Type == token.TLSquare && json:
		p.i++
		return p.array(t, token.TRSquare)
	default:
		return nil, parseErr(t.Pos, "unexpected %s %q", t.Type, t.String())
	}
}

func (p *parser) object(open *token.Token) (*ir.Node, error) {
	json := p.opts.format.IsJSON()
	kvSep, entrySep := token.TEquals, token.TSemi
	if json {
		kvSep, entrySep = token.TColon, token.TComma
	}
	res := &ir.Node{Type: ir.ObjectType}
	for {
		p.skipComments()
		t := p.cur()
		if t == nil {
			return nil, parseErr(open.Pos, "unterminated object")
		}
		if t.Type == token.TRCurl {
			p.i++
			return res, nil
		}
		if !t.IsString() {
			return nil, parseErr(t.Pos, "expected key, got %s %q", t.Type, t.String())
		}
		p.i++
		key := ir.Commented(t.String(), p.lineComment())
		p.skipComments()
		sep := p.cur()
		if sep == nil {
			return nil, parseErr(p.end(), "premature end of object")
		}
		if sep.Type != kvSep {
			return nil, parseErr(sep.Pos, "expected %s after key %q, got %q", kvSep, key.String, sep.String())
		}
		p.i++
		val, err := p.value()
		if err != nil {
			return nil, err
		}
		res.Append(key, val)
		p.skipComments()
		term := p.cur()
		switch {
		case term == nil:
			return nil, parseErr(p.end(), "premature end of object")
		case term.Type == entrySep:
			p.i++
		case json && term.Type == token.TRCurl:
		default:
			return nil, parseErr(term.Pos, "expected %s after value of %q, got %q", entrySep, key.String, term.String())
		}
	}
}

func (p *parser) array(open *token.Token, closer token.TokenType) (*ir.Node, error) {
	res := &ir.Node{Type: ir.ArrayType, Values: []*ir.Node{}}
	for {
		p.skipComments()
		t := p.cur()
		if t == nil {
			return nil, parseErr(open.Pos, "unterminated array")
		}
		if t.Type == closer {
			p.i++
			return res, nil
		}
		val, err := p.value()
		if err != nil {
			return nil, err
		}
		val.Parent = res
		val.ParentIndex = len(res.Values)
		res.Values = append(res.Values, val)
		p.skipComments()
		sep := p.cur()
		switch {
		case sep == nil:
			return nil, parseErr(open.Pos, "unterminated array")
		case sep.Type == token.TComma:
			p.i++
		case sep.Type == closer:
		default:
			return nil, parseErr(sep.Pos, "expected , or %s in array, got %q", closer, sep.String())
		}
	}
}
