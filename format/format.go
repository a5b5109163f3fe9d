package format

import (
	"errors"
	"fmt"
)

type Format int

const (
	PBXFormat Format = iota
	JSONFormat
)

var ErrBadFormat = errors.New("bad format")

func ParseFormat(v string) (Format, error) {
	f, ok := map[string]Format{
		"p":        PBXFormat,
		"pbx":      PBXFormat,
		"pbxproj":  PBXFormat,
		"openstep": PBXFormat,
		"j":        JSONFormat,
		"json":     JSONFormat,
	}[v]
	if ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

func (f Format) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f Format) MarshalText() ([]byte, error) {
	switch f {
	case PBXFormat:
		return []byte("pbx"), nil
	case JSONFormat:
		return []byte("json"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a format>", f)
	}
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

func (f Format) IsJSON() bool { return f == JSONFormat }
func (f Format) IsPBX() bool  { return f == PBXFormat }

// AllFormats returns all supported formats in preference order.
func AllFormats() []Format {
	return []Format{PBXFormat, JSONFormat}
}
