package token

import (
	"bytes"
	"unicode"
	"unicode/utf8"

	"github.com/signadot/xcproj/format"
)

type tkState struct {
	d    []byte
	i    int
	pd   *PosDoc
	json bool
}

// Tokenize appends the tokens of src to dst.
func Tokenize(dst []Token, src []byte, opts ...TokenOpt) ([]Token, error) {
	opt := &tokenOpts{format: format.PBXFormat}
	for _, o := range opts {
		o(opt)
	}
	ts := &tkState{
		d:    src,
		pd:   NewPosDoc(src),
		json: opt.format.IsJSON(),
	}
	for {
		tok, err := ts.next()
		if err != nil {
			return nil, err
		}
		if tok == nil {
			return dst, nil
		}
		dst = append(dst, *tok)
	}
}

func (ts *tkState) next() (*Token, error) {
	d := ts.d
	n := len(d)
	for ts.i < n {
		switch d[ts.i] {
		case ' ', '\t', '\n', '\r', '\f', '\v':
			ts.i++
			continue
		}
		break
	}
	if ts.i == n {
		return nil, nil
	}
	start := ts.i
	pos := ts.pd.Pos(start)
	punct := func(tt TokenType) (*Token, error) {
		ts.i++
		return &Token{Type: tt, Pos: pos, Bytes: d[start:ts.i]}, nil
	}
	c := d[start]
	switch c {
	case '{':
		return punct(TLCurl)
	case '}':
		return punct(TRCurl)
	case '(':
		return punct(TLParen)
	case ')':
		return punct(TRParen)
	case '=':
		return punct(TEquals)
	case ';':
		return punct(TSemi)
	case ',':
		return punct(TComma)
	case '"', '\'':
		return ts.quoted(c, pos)
	case '/':
		if start+1 < n {
			switch d[start+1] {
			case '*':
				end := bytes.Index(d[start+2:], []byte("*/"))
				if end == -1 {
					return nil, NewTokenizeErr(ErrUnterminated, pos)
				}
				ts.i = start + 2 + end + 2
				return &Token{Type: TComment, Pos: pos, Bytes: d[start:ts.i]}, nil
			case '/':
				end := bytes.IndexByte(d[start:], '\n')
				if end == -1 {
					ts.i = n
				} else {
					ts.i = start + end
				}
				return &Token{Type: TLineComment, Pos: pos, Bytes: bytes.TrimRight(d[start:ts.i], "\r")}, nil
			}
		}
	}
	if ts.json {
		switch c {
		case '[':
			return punct(TLSquare)
		case ']':
			return punct(TRSquare)
		case ':':
			return punct(TColon)
		}
	}
	return ts.unquoted(pos)
}

func (ts *tkState) unquoted(pos *Pos) (*Token, error) {
	d := ts.d
	start := ts.i
	for ts.i < len(d) {
		r, sz := utf8.DecodeRune(d[ts.i:])
		if r == utf8.RuneError && sz <= 1 {
			return nil, NewTokenizeErr(ErrBadUTF8, ts.pd.Pos(ts.i))
		}
		if !ts.isUnquoted(r) {
			break
		}
		if r == '/' && ts.i+1 < len(d) && (d[ts.i+1] == '*' || d[ts.i+1] == '/') {
			break
		}
		ts.i += sz
	}
	if ts.i == start {
		r, _ := utf8.DecodeRune(d[start:])
		return nil, UnexpectedErr(string(r), pos)
	}
	return &Token{Type: TString, Pos: pos, Bytes: d[start:ts.i]}, nil
}

func (ts *tkState) isUnquoted(r rune) bool {
	if r == ':' {
		return !ts.json
	}
	if r < utf8.RuneSelf {
		return isUnquotedASCII(byte(r))
	}
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

func isUnquotedASCII(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	switch c {
	case '_', '$', '/', ':', '.', '-':
		return true
	}
	return false
}

func (ts *tkState) quoted(q byte, pos *Pos) (*Token, error) {
	d := ts.d
	i := ts.i + 1
	for i < len(d) {
		switch d[i] {
		case '\\':
			i += 2
			continue
		case q:
			s, err := unquote(d[ts.i+1:i], ts.pd, ts.i+1)
			if err != nil {
				return nil, err
			}
			ts.i = i + 1
			return &Token{Type: TQuoted, Pos: pos, Bytes: s}, nil
		}
		i++
	}
	return nil, NewTokenizeErr(ErrUnterminated, pos)
}
