package token

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// NeedsQuote reports whether v is written quoted.  Only letters, digits
// and "_$./" are written bare, a narrower set than the tokenizer reads
// bare, and strings holding "//" or "___" are quoted as well, as Xcode
// does.
func NeedsQuote(v string) bool {
	if v == "" {
		return true
	}
	for i := 0; i < len(v); i++ {
		if c := v[i]; c == '-' || c == ':' || !isUnquotedASCII(c) {
			return true
		}
	}
	return strings.Contains(v, "//") || strings.Contains(v, "___")
}

// QuoteIfNeeded returns v, quoted when NeedsQuote(v).
func QuoteIfNeeded(v string) string {
	if NeedsQuote(v) {
		return Quote(v)
	}
	return v
}

func Quote(v string) string {
	var b strings.Builder
	b.Grow(len(v) + 2)
	b.WriteByte('"')
	for _, r := range v {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '\a':
			b.WriteString(`\a`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		case '\v':
			b.WriteString(`\v`)
		default:
			if unicode.IsControl(r) {
				fmt.Fprintf(&b, `\U%04x`, r)
				continue
			}
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}

func QuoteJSON(v string) string {
	var b strings.Builder
	b.Grow(len(v) + 2)
	b.WriteByte('"')
	for _, r := range v {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		default:
			if r < 0x20 {
				fmt.Fprintf(&b, `\u%04x`, r)
				continue
			}
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}

// unquote decodes the escapes of a quoted string body starting at offset
// off of the document.
func unquote(body []byte, pd *PosDoc, off int) ([]byte, error) {
	if !utf8.Valid(body) {
		return nil, NewTokenizeErr(ErrBadUTF8, pd.Pos(off))
	}
	if strings.IndexByte(string(body), '\\') == -1 {
		return body, nil
	}
	res := make([]byte, 0, len(body))
	for i := 0; i < len(body); i++ {
		c := body[i]
		if c != '\\' {
			res = append(res, c)
			continue
		}
		epos := pd.Pos(off + i)
		i++
		if i == len(body) {
			return nil, NewTokenizeErr(ErrBadEscape, epos)
		}
		switch c := body[i]; c {
		case '\\', '"', '\'', '/':
			res = append(res, c)
		case 'n':
			res = append(res, '\n')
		case 't':
			res = append(res, '\t')
		case 'r':
			res = append(res, '\r')
		case 'a':
			res = append(res, '\a')
		case 'b':
			res = append(res, '\b')
		case 'f':
			res = append(res, '\f')
		case 'v':
			res = append(res, '\v')
		case 'u', 'U':
			if i+5 > len(body) {
				return nil, NewTokenizeErr(ErrBadUnicode, epos)
			}
			v, err := strconv.ParseUint(string(body[i+1:i+5]), 16, 32)
			if err != nil {
				return nil, NewTokenizeErr(ErrBadUnicode, epos)
			}
			res = utf8.AppendRune(res, rune(v))
			i += 4
		case '0', '1', '2', '3', '4', '5', '6', '7':
			j := i
			for j < len(body) && j < i+3 && '0' <= body[j] && body[j] <= '7' {
				j++
			}
			v, _ := strconv.ParseUint(string(body[i:j]), 8, 32)
			res = utf8.AppendRune(res, rune(v))
			i = j - 1
		default:
			return nil, NewTokenizeErr(fmt.Errorf("%w: \\%c", ErrBadEscape, c), epos)
		}
	}
	return res, nil
}
