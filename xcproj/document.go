package xcproj

import (
	"bytes"
	"errors"
	"strings"

	"github.com/signadot/xcproj/encode"
	"github.com/signadot/xcproj/ir"
	"github.com/signadot/xcproj/parse"
)

// Header is the comment line starting every project file.
const Header = "// !$*UTF8*$!"

// Document is a whole project file.
type Document struct {
	ArchiveVersion uint
	Classes        *ir.Node
	ObjectVersion  uint
	Objects        *Registry
	RootObject     string
	Extra          Extras

	// Name is the project name. It is only recorded in comments, and
	// Decode recovers it from there.
	Name string
}

func NewDocument(name string) *Document {
	return &Document{
		ArchiveVersion: 1,
		Classes:        &ir.Node{Type: ir.ObjectType},
		ObjectVersion:  46,
		Objects:        NewRegistry(),
		Name:           name,
	}
}

// Project returns the root object.
func (d *Document) Project() (*Project, bool) {
	return Lookup[*Project](d.Objects, d.RootObject)
}

func (d *Document) fields(o *options) []field {
	objects := field{
		key: "objects",
		decode: func(dc *decodeCtx, n *ir.Node) error {
			if n == nil {
				return dc.missing("objects")
			}
			return decodeObjects(n, d.Objects, o)
		},
		encode: func(e *Encoder, _ Object) (*ir.Node, bool) {
			return e.EncodeObjects(), true
		},
	}
	return []field{
		lenientUint("archiveVersion", &d.ArchiveVersion, 1),
		dictionary("classes", &d.Classes),
		lenientUint("objectVersion", &d.ObjectVersion, 46),
		objects,
		requiredReference("rootObject", &d.RootObject, projectComment),
	}
}

// Decode decodes a parsed project file. Records of the objects table
// which fail to decode are reported as DecodeErrors along with the
// document holding the others. Other errors are *DecodeError and come
// with a nil document.
func Decode(root *ir.Node, opts ...Option) (*Document, error) {
	o := newOptions(opts...)
	if root == nil || root.Type != ir.ObjectType {
		return nil, &DecodeError{Kind: InvalidRecord, Detail: "document is not an object"}
	}
	doc := &Document{Objects: NewRegistry(), Name: o.projectName}
	dc := &decodeCtx{}
	fs := doc.fields(o)
	known := map[string]bool{}
	var recErrs DecodeErrors
	for i := range fs {
		f := &fs[i]
		known[f.key] = true
		err := f.decode(dc, ir.Get(root, f.key))
		var des DecodeErrors
		switch {
		case err == nil:
		case errors.As(err, &des):
			recErrs = append(recErrs, des...)
		default:
			return nil, err
		}
	}
	if doc.Classes == nil {
		doc.Classes = &ir.Node{Type: ir.ObjectType}
	}
	for i, k := range root.Fields {
		if known[k.String] {
			continue
		}
		if doc.Extra == nil {
			doc.Extra = Extras{}
		}
		c := root.Values[i].Clone()
		c.Parent = nil
		doc.Extra[k.String] = c
	}
	if doc.Name == "" {
		doc.Name = projectNameFrom(root, doc)
	}
	if len(recErrs) != 0 {
		return doc, recErrs
	}
	return doc, nil
}

// projectNameFrom reads the project name from the key comment of the
// project's configuration list.
func projectNameFrom(root *ir.Node, doc *Document) string {
	p, ok := doc.Project()
	if !ok || p.BuildConfigurationList == nil {
		return ""
	}
	objects := ir.Get(root, "objects")
	if objects == nil {
		return ""
	}
	prefix := configurationListPrefix + IsaProject + " "
	for _, k := range objects.Fields {
		if k.String != *p.BuildConfigurationList {
			continue
		}
		rest, ok := strings.CutPrefix(k.Comment, prefix)
		if !ok {
			return ""
		}
		if len(rest) < 2 || rest[0] != '"' || rest[len(rest)-1] != '"' {
			return ""
		}
		return rest[1 : len(rest)-1]
	}
	return ""
}

// Encode returns the value tree of doc with every comment derived from
// the current objects.
func Encode(doc *Document, opts ...Option) *ir.Node {
	o := newOptions(opts...)
	if o.projectName == "" {
		o.projectName = doc.Name
	}
	d := *doc
	if d.Classes == nil {
		d.Classes = &ir.Node{Type: ir.ObjectType}
	}
	if d.Objects == nil {
		d.Objects = NewRegistry()
	}
	e := newEncoder(d.Objects, o)
	defer e.batch()()
	root := &ir.Node{Type: ir.ObjectType, Leading: []string{Header}}
	e.appendFields(root, nil, d.fields(o), d.Extra)
	return root
}

// Marshal encodes doc as text.
func Marshal(doc *Document, opts ...Option) ([]byte, error) {
	o := newOptions(opts...)
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(Encode(doc, opts...), buf, encode.EncodeFormat(o.format)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal parses and decodes a project file. Parse failures are
// *parse.ParseError; see Decode for the others.
func Unmarshal(data []byte, opts ...Option) (*Document, error) {
	o := newOptions(opts...)
	root, err := parse.Parse(data, parse.ParseFormat(o.format))
	if err != nil {
		return nil, err
	}
	return Decode(root, opts...)
}
