package xcproj

import (
	"log/slog"
	"slices"
	"strings"

	"github.com/signadot/xcproj/debug"
	"github.com/signadot/xcproj/ir"
)

// Encoder produces the value trees of objects, deriving the comments
// of references from a Registry.
//
// Encoding never fails: a reference which does not resolve is written
// without a comment and reported to the logger.
type Encoder struct {
	reg         *Registry
	log         *slog.Logger
	projectName string

	batching bool
	idx      *index
}

// index holds the reverse lookups of comment derivation, built once
// per encoding call.
type index struct {
	phaseOf   map[string]buildPhase
	listOwner map[string]configurationListOwner
}

func NewEncoder(reg *Registry, opts ...Option) *Encoder {
	return newEncoder(reg, newOptions(opts...))
}

func newEncoder(reg *Registry, o *options) *Encoder {
	return &Encoder{reg: reg, log: o.logger, projectName: o.projectName}
}

// batch makes lookups share one index until the returned func is
// called. Nested calls share the outer index.
func (e *Encoder) batch() (end func()) {
	if e.batching {
		return func() {}
	}
	e.batching = true
	return func() {
		e.batching = false
		e.idx = nil
	}
}

func (e *Encoder) lookupIndex() *index {
	if e.idx != nil {
		return e.idx
	}
	idx := &index{
		phaseOf:   map[string]buildPhase{},
		listOwner: map[string]configurationListOwner{},
	}
	for _, obj := range e.reg.Objects() {
		if p, ok := obj.(buildPhase); ok {
			for _, f := range p.phaseFiles() {
				if _, dup := idx.phaseOf[f]; !dup {
					idx.phaseOf[f] = p
				}
			}
		}
		if o, ok := obj.(configurationListOwner); ok {
			if l, ok := o.configurationList(); ok {
				if _, dup := idx.listOwner[l]; !dup {
					idx.listOwner[l] = o
				}
			}
		}
	}
	if e.batching {
		e.idx = idx
	}
	return idx
}

// DisplayName returns the comment of obj's record key.
func (e *Encoder) DisplayName(obj Object) (string, bool) {
	defer e.batch()()
	return obj.displayName(e)
}

// EncodeObject returns the record key of obj, its reference commented
// with its display name, and the record.
func (e *Encoder) EncodeObject(obj Object) (ir.CommentedString, *ir.Node) {
	defer e.batch()()
	key := ir.CommentedString{String: obj.Reference()}
	if name, ok := obj.displayName(e); ok {
		key.Comment = name
	}
	if debug.Encode() {
		debug.Logf("encode %s %s %q\n", obj.Reference(), obj.Isa(), key.Comment)
	}
	if u, ok := obj.(*Unknown); ok {
		rec := u.Record.Clone()
		rec.Parent = nil
		return key, rec
	}
	rec := &ir.Node{Type: ir.ObjectType}
	rec.Append(ir.CommentedString{String: "isa"}, ir.FromString(obj.Isa()))
	e.appendFields(rec, obj, obj.fields(), obj.base().Extra)
	if _, ok := obj.(flowRecord); ok {
		rec.Flow = true
	}
	return key, rec
}

// appendFields appends the entries of fs in order, placing each extra
// entry before the first field whose key sorts after it.
func (e *Encoder) appendFields(rec *ir.Node, owner Object, fs []field, extra Extras) {
	known := make(map[string]bool, len(fs))
	for i := range fs {
		known[fs[i].key] = true
	}
	var xkeys []string
	for _, k := range extra.Keys() {
		if !known[k] && k != "isa" {
			xkeys = append(xkeys, k)
		}
	}
	for i := range fs {
		f := &fs[i]
		for len(xkeys) > 0 && xkeys[0] < f.key {
			rec.Append(ir.CommentedString{String: xkeys[0]}, extra[xkeys[0]].Clone())
			xkeys = xkeys[1:]
		}
		if v, ok := f.encode(e, owner); ok {
			rec.Append(ir.CommentedString{String: f.key}, v)
		}
	}
	for _, k := range xkeys {
		rec.Append(ir.CommentedString{String: k}, extra[k].Clone())
	}
}

// EncodeSection encodes objs, which should share one isa, as entries
// sorted by reference and delimited by section markers.
func (e *Encoder) EncodeSection(objs []Object) []ir.KeyVal {
	if len(objs) == 0 {
		return nil
	}
	defer e.batch()()
	objs = slices.Clone(objs)
	slices.SortFunc(objs, func(a, b Object) int {
		return strings.Compare(a.Reference(), b.Reference())
	})
	res := make([]ir.KeyVal, len(objs))
	for i, obj := range objs {
		k, v := e.EncodeObject(obj)
		res[i] = ir.KeyVal{Key: k, Val: v}
	}
	isa := objs[0].Isa()
	res[0].Val.Leading = []string{"", "/* Begin " + isa + " section */"}
	last := res[len(res)-1].Val
	last.Trailing = append(last.Trailing, "/* End "+isa+" section */")
	return res
}

// EncodeObjects encodes the whole registry as the objects table, one
// section per isa in isa order.
func (e *Encoder) EncodeObjects() *ir.Node {
	defer e.batch()()
	var kvs []ir.KeyVal
	for _, isa := range e.reg.Isas() {
		kvs = append(kvs, e.EncodeSection(e.reg.ByIsa(isa))...)
	}
	return ir.FromKeyVals(kvs)
}

func (e *Encoder) refNode(owner Object, key, ref string, c commentFunc) *ir.Node {
	n := ir.FromString(ref)
	if c == nil {
		return n
	}
	if comment, ok := c(e, owner, ref); ok {
		n.Str.Comment = comment
		return n
	}
	if _, ok := e.reg.Get(ref); !ok {
		attrs := []any{"reference", ref, "field", key}
		if owner != nil {
			attrs = append(attrs, "object", owner.Reference(), "isa", owner.Isa())
		}
		e.log.Warn("dangling reference", attrs...)
	}
	if debug.Lookup() {
		debug.Logf("no comment for %s in %s\n", ref, key)
	}
	return n
}

func (e *Encoder) buildFileName(b *BuildFile, p buildPhase) (string, bool) {
	var (
		file string
		ok   bool
	)
	if b.FileRef != nil {
		file, ok = e.reg.FileName(*b.FileRef)
	}
	if !ok && b.ProductRef != nil {
		file, ok = productNameComment(e, b, *b.ProductRef)
	}
	if !ok {
		return "", false
	}
	phase, ok := p.phaseName()
	if !ok {
		return "", false
	}
	return file + " in " + phase, true
}

func (e *Encoder) configurationListName(o configurationListOwner) (string, bool) {
	name, ok := o.ownerName(e)
	if !ok {
		return "", false
	}
	return configurationListName(o.Isa(), name), true
}

// references returns the references held by the fields of obj.
func (e *Encoder) references(obj Object) []string {
	var res []string
	for _, f := range obj.fields() {
		if f.refs != nil {
			res = append(res, f.refs()...)
		}
	}
	return res
}
