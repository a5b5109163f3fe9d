package xcproj

import (
	"strconv"
	"strings"

	"github.com/signadot/xcproj/ir"
)

// field is one entry of a variant's rule table. decode receives nil
// when the record has no entry for key; encode reports false to omit
// the entry.
type field struct {
	key    string
	decode func(d *decodeCtx, n *ir.Node) error
	encode func(e *Encoder, owner Object) (*ir.Node, bool)
	// refs is set on reference fields.
	refs func() []string
}

// commentFunc derives the comment of a reference held by owner.
type commentFunc func(e *Encoder, owner Object, ref string) (string, bool)

type decodeCtx struct {
	ref string
	isa string
}

func (d *decodeCtx) missing(key string) error {
	return &DecodeError{Kind: MissingField, Reference: d.ref, Isa: d.isa, Field: key}
}

func (d *decodeCtx) invalid(key string, n *ir.Node, want ir.Type) error {
	return &DecodeError{
		Kind:      InvalidField,
		Reference: d.ref,
		Isa:       d.isa,
		Field:     key,
		Path:      n.Path(),
		Detail:    "expected " + want.String() + " got " + n.Type.String(),
	}
}

func (d *decodeCtx) str(key string, n *ir.Node) (string, error) {
	if n.Type != ir.StringType {
		return "", d.invalid(key, n, ir.StringType)
	}
	return n.Str.String, nil
}

func (d *decodeCtx) strs(key string, n *ir.Node) ([]string, error) {
	vs, ok := n.Strings()
	if !ok {
		return nil, d.invalid(key, n, ir.ArrayType)
	}
	return vs, nil
}

func requiredString(key string, p *string) field {
	return field{
		key: key,
		decode: func(d *decodeCtx, n *ir.Node) error {
			if n == nil {
				return d.missing(key)
			}
			v, err := d.str(key, n)
			*p = v
			return err
		},
		encode: func(*Encoder, Object) (*ir.Node, bool) {
			return ir.FromString(*p), true
		},
	}
}

func optionalString(key string, p **string) field {
	return field{
		key: key,
		decode: func(d *decodeCtx, n *ir.Node) error {
			*p = nil
			if n == nil {
				return nil
			}
			v, err := d.str(key, n)
			if err != nil {
				return err
			}
			*p = &v
			return nil
		},
		encode: func(*Encoder, Object) (*ir.Node, bool) {
			if *p == nil {
				return nil, false
			}
			return ir.FromString(**p), true
		},
	}
}

// defaultString decodes a missing entry as def and always encodes.
func defaultString(key string, p *string, def string) field {
	f := requiredString(key, p)
	decode := f.decode
	f.decode = func(d *decodeCtx, n *ir.Node) error {
		if n == nil {
			*p = def
			return nil
		}
		return decode(d, n)
	}
	return f
}

func stringList(key string, p *[]string) field {
	return field{
		key: key,
		decode: func(d *decodeCtx, n *ir.Node) error {
			*p = []string{}
			if n == nil {
				return nil
			}
			vs, err := d.strs(key, n)
			if err != nil {
				return err
			}
			*p = vs
			return nil
		},
		encode: func(*Encoder, Object) (*ir.Node, bool) {
			return ir.FromStrings(*p), true
		},
	}
}

func optionalStringList(key string, p *[]string) field {
	return field{
		key: key,
		decode: func(d *decodeCtx, n *ir.Node) error {
			*p = nil
			if n == nil {
				return nil
			}
			vs, err := d.strs(key, n)
			if err != nil {
				return err
			}
			*p = vs
			return nil
		},
		encode: func(*Encoder, Object) (*ir.Node, bool) {
			if *p == nil {
				return nil, false
			}
			return ir.FromStrings(*p), true
		},
	}
}

func reference(key string, p **string, c commentFunc) field {
	f := optionalString(key, p)
	f.encode = func(e *Encoder, owner Object) (*ir.Node, bool) {
		if *p == nil {
			return nil, false
		}
		return e.refNode(owner, key, **p, c), true
	}
	f.refs = func() []string {
		if *p == nil {
			return nil
		}
		return []string{**p}
	}
	return f
}

func requiredReference(key string, p *string, c commentFunc) field {
	f := requiredString(key, p)
	f.encode = func(e *Encoder, owner Object) (*ir.Node, bool) {
		return e.refNode(owner, key, *p, c), true
	}
	f.refs = func() []string { return []string{*p} }
	return f
}

func referenceList(key string, p *[]string, c commentFunc) field {
	f := stringList(key, p)
	f.encode = func(e *Encoder, owner Object) (*ir.Node, bool) {
		ns := make([]*ir.Node, len(*p))
		for i, ref := range *p {
			ns[i] = e.refNode(owner, key, ref, c)
		}
		return ir.FromSlice(ns), true
	}
	f.refs = func() []string { return *p }
	return f
}

// optionalReferenceList is a referenceList omitted when absent.
func optionalReferenceList(key string, p *[]string, c commentFunc) field {
	f := optionalStringList(key, p)
	f.encode = func(e *Encoder, owner Object) (*ir.Node, bool) {
		if *p == nil {
			return nil, false
		}
		ns := make([]*ir.Node, len(*p))
		for i, ref := range *p {
			ns[i] = e.refNode(owner, key, ref, c)
		}
		return ir.FromSlice(ns), true
	}
	f.refs = func() []string { return *p }
	return f
}

// parseUint reads a base-10 unsigned number with an optional leading
// plus sign.
func parseUint(s string) (uint, bool) {
	v, err := strconv.ParseUint(strings.TrimPrefix(s, "+"), 10, 0)
	if err != nil {
		return 0, false
	}
	return uint(v), true
}

func lenientUint(key string, p *uint, def uint) field {
	return field{
		key: key,
		decode: func(d *decodeCtx, n *ir.Node) error {
			*p = def
			if n == nil || n.Type != ir.StringType {
				return nil
			}
			if v, ok := parseUint(n.Str.String); ok {
				*p = v
			}
			return nil
		},
		encode: func(*Encoder, Object) (*ir.Node, bool) {
			return ir.FromString(strconv.FormatUint(uint64(*p), 10)), true
		},
	}
}

func optionalUint(key string, p **uint) field {
	return field{
		key: key,
		decode: func(d *decodeCtx, n *ir.Node) error {
			*p = nil
			if n == nil || n.Type != ir.StringType {
				return nil
			}
			if v, ok := parseUint(n.Str.String); ok {
				*p = &v
			}
			return nil
		},
		encode: func(*Encoder, Object) (*ir.Node, bool) {
			if *p == nil {
				return nil, false
			}
			return ir.FromString(strconv.FormatUint(uint64(**p), 10)), true
		},
	}
}

func sourceTree(key string, p **SourceTree) field {
	return field{
		key: key,
		decode: func(d *decodeCtx, n *ir.Node) error {
			*p = nil
			if n == nil {
				return nil
			}
			v, err := d.str(key, n)
			if err != nil {
				return err
			}
			*p = Ptr(SourceTree(v))
			return nil
		},
		encode: func(*Encoder, Object) (*ir.Node, bool) {
			if *p == nil {
				return nil, false
			}
			return ir.FromString(string(**p)), true
		},
	}
}

// dictionary keeps an object entry as its value tree.
func dictionary(key string, p **ir.Node) field {
	return field{
		key: key,
		decode: func(d *decodeCtx, n *ir.Node) error {
			*p = nil
			if n == nil {
				return nil
			}
			if n.Type != ir.ObjectType {
				return d.invalid(key, n, ir.ObjectType)
			}
			c := n.Clone()
			c.Parent = nil
			*p = c
			return nil
		},
		encode: func(*Encoder, Object) (*ir.Node, bool) {
			if *p == nil {
				return nil, false
			}
			return (*p).Clone(), true
		},
	}
}

// settings decodes a dictionary of settings into a map, encoded with
// sorted keys.
func settings(key string, p *map[string]*ir.Node) field {
	return field{
		key: key,
		decode: func(d *decodeCtx, n *ir.Node) error {
			*p = map[string]*ir.Node{}
			if n == nil {
				return nil
			}
			if n.Type != ir.ObjectType {
				return d.invalid(key, n, ir.ObjectType)
			}
			for k, v := range ir.ToMap(n) {
				c := v.Clone()
				c.Parent = nil
				(*p)[k] = c
			}
			return nil
		},
		encode: func(*Encoder, Object) (*ir.Node, bool) {
			m := make(map[string]*ir.Node, len(*p))
			for k, v := range *p {
				m[k] = v.Clone()
			}
			return ir.FromMap(m), true
		},
	}
}

// decodeFields applies the rule table of obj to rec. Entries of rec
// outside the table, other than isa, are kept in the object's extras.
func decodeFields(obj Object, rec *ir.Node) error {
	d := &decodeCtx{ref: obj.Reference(), isa: obj.Isa()}
	fs := obj.fields()
	known := make(map[string]bool, len(fs)+1)
	known["isa"] = true
	for i := range fs {
		f := &fs[i]
		known[f.key] = true
		if err := f.decode(d, ir.Get(rec, f.key)); err != nil {
			return err
		}
	}
	b := obj.base()
	b.Extra = nil
	for i, k := range rec.Fields {
		if known[k.String] {
			continue
		}
		if b.Extra == nil {
			b.Extra = Extras{}
		}
		c := rec.Values[i].Clone()
		c.Parent = nil
		b.Extra[k.String] = c
	}
	return nil
}
