package xcproj

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrMissingField  = errors.New("missing field")
	ErrInvalidField  = errors.New("invalid field")
	ErrInvalidRecord = errors.New("invalid record")
)

type ErrorKind int

const (
	MissingField ErrorKind = iota
	InvalidField
	InvalidRecord
)

func (k ErrorKind) String() string {
	switch k {
	case MissingField:
		return "MissingField"
	case InvalidField:
		return "InvalidField"
	case InvalidRecord:
		return "InvalidRecord"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

func (k ErrorKind) sentinel() error {
	switch k {
	case MissingField:
		return ErrMissingField
	case InvalidField:
		return ErrInvalidField
	default:
		return ErrInvalidRecord
	}
}

// DecodeError describes why one record could not be decoded.
type DecodeError struct {
	Kind      ErrorKind
	Reference string
	Isa       string
	Field     string
	// Path locates the offending node in the value tree, when known.
	Path   string
	Detail string
}

func (e *DecodeError) Error() string {
	var b strings.Builder
	b.WriteString(e.Kind.sentinel().Error())
	if e.Field != "" {
		fmt.Fprintf(&b, " %q", e.Field)
	}
	if e.Isa != "" {
		fmt.Fprintf(&b, " in %s", e.Isa)
	}
	if e.Reference != "" {
		fmt.Fprintf(&b, " %s", e.Reference)
	}
	if e.Path != "" {
		fmt.Fprintf(&b, " at %s", e.Path)
	}
	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}
	return b.String()
}

func (e *DecodeError) Unwrap() error {
	return e.Kind.sentinel()
}

// DecodeErrors collects the per-record failures of a decode which kept
// going past them.
type DecodeErrors []*DecodeError

func (es DecodeErrors) Error() string {
	switch len(es) {
	case 0:
		return "no decode errors"
	case 1:
		return es[0].Error()
	}
	lns := make([]string, len(es))
	for i, e := range es {
		lns[i] = e.Error()
	}
	return fmt.Sprintf("%d decode errors:\n\t%s", len(es), strings.Join(lns, "\n\t"))
}

func (es DecodeErrors) Unwrap() []error {
	res := make([]error, len(es))
	for i, e := range es {
		res[i] = e
	}
	return res
}

// References returns the references of the failed records.
func (es DecodeErrors) References() []string {
	res := make([]string, 0, len(es))
	for _, e := range es {
		res = append(res, e.Reference)
	}
	return res
}
