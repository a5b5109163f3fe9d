package xcproj

import (
	"errors"

	"github.com/signadot/xcproj/debug"
	"github.com/signadot/xcproj/ir"
)

// DecodeObject decodes the record rec stored under ref. The isa entry
// selects the variant; isas without one decode to *Unknown.
//
// Any error is a *DecodeError.
func DecodeObject(ref string, rec *ir.Node) (Object, error) {
	if rec == nil || rec.Type != ir.ObjectType {
		de := &DecodeError{Kind: InvalidRecord, Reference: ref, Detail: "record is not an object"}
		if rec != nil {
			de.Path = rec.Path()
		}
		return nil, de
	}
	isaNode := ir.Get(rec, "isa")
	if isaNode == nil {
		return nil, &DecodeError{Kind: MissingField, Reference: ref, Field: "isa"}
	}
	if isaNode.Type != ir.StringType {
		return nil, (&decodeCtx{ref: ref}).invalid("isa", isaNode, ir.StringType)
	}
	isa := isaNode.Str.String
	if debug.Decode() {
		debug.Logf("decode %s %s\n", ref, isa)
	}
	mk, ok := variants[isa]
	if !ok {
		c := rec.Clone()
		c.Parent = nil
		return &Unknown{Base: Base{Ref: ref}, IsaName: isa, Record: c}, nil
	}
	obj := mk(ref)
	if err := decodeFields(obj, rec); err != nil {
		return nil, err
	}
	return obj, nil
}

// DecodeObjects decodes every record of the objects table into reg, in
// order. A record reusing the reference of an earlier one replaces it.
//
// Records which fail to decode are skipped and reported together as
// DecodeErrors once the table has been read.
func DecodeObjects(objects *ir.Node, reg *Registry, opts ...Option) error {
	return decodeObjects(objects, reg, newOptions(opts...))
}

func decodeObjects(objects *ir.Node, reg *Registry, o *options) error {
	if objects == nil || objects.Type != ir.ObjectType {
		de := &DecodeError{Kind: InvalidField, Field: "objects", Detail: "objects is not an object"}
		if objects != nil {
			de.Path = objects.Path()
		}
		return de
	}
	var errs DecodeErrors
	for i, key := range objects.Fields {
		obj, err := DecodeObject(key.String, objects.Values[i])
		if err != nil {
			var de *DecodeError
			if !errors.As(err, &de) {
				de = &DecodeError{Kind: InvalidRecord, Reference: key.String, Detail: err.Error()}
			}
			o.logger.Warn("skipping record", "reference", key.String, "error", de)
			errs = append(errs, de)
			continue
		}
		if u, ok := obj.(*Unknown); ok {
			u.KeyComment = key.Comment
		}
		if reg.Add(obj) {
			o.logger.Warn("duplicate reference", "reference", key.String, "isa", obj.Isa())
		}
	}
	if len(errs) != 0 {
		return errs
	}
	return nil
}
