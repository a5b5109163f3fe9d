package token

import (
	"fmt"
	"strings"
)

type TokenType int

const (
	TString TokenType = iota
	TQuoted
	TComment
	TLineComment
	TLCurl
	TRCurl
	TLParen
	TRParen
	TLSquare
	TRSquare
	TEquals
	TColon
	TSemi
	TComma
)

func (t TokenType) String() string {
	return map[TokenType]string{
		TString:      "TString",
		TQuoted:      "TQuoted",
		TComment:     "TComment",
		TLineComment: "TLineComment",
		TLCurl:       "TLCurl",
		TRCurl:       "TRCurl",
		TLParen:      "TLParen",
		TRParen:      "TRParen",
		TLSquare:     "TLSquare",
		TRSquare:     "TRSquare",
		TEquals:      "TEquals",
		TColon:       "TColon",
		TSemi:        "TSemi",
		TComma:       "TComma",
	}[t]
}

// Token is a lexical item.  For TQuoted, Bytes holds the unescaped
// contents; for every other type it holds the source bytes.
type Token struct {
	Type  TokenType
	Pos   *Pos
	Bytes []byte
}

func (t *Token) Info() string {
	return fmt.Sprintf("%s %s", t.Type, t.Pos.String())
}

func (t *Token) String() string {
	return string(t.Bytes)
}

func (t *Token) IsString() bool {
	return t.Type == TString || t.Type == TQuoted
}

func (t *Token) IsComment() bool {
	return t.Type == TComment || t.Type == TLineComment
}

// CommentText returns the text of a comment token without its delimiters
// and surrounding space.
func (t *Token) CommentText() string {
	s := string(t.Bytes)
	switch t.Type {
	case TComment:
		s = strings.TrimSuffix(strings.TrimPrefix(s, "/*"), "*/")
	case TLineComment:
		s = strings.TrimPrefix(s, "//")
	}
	return strings.TrimSpace(s)
}
