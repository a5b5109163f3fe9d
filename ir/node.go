package ir

import (
	"maps"
	"slices"
)

type Node struct {
	Type        Type
	Parent      *Node
	ParentIndex int
	ParentField string
	Fields      []CommentedString
	Values      []*Node

	Str CommentedString

	// Flow asks encoders to render an object or array on a single line.
	Flow bool
	// Leading and Trailing hold whole comment lines placed before and
	// after an object entry, or around the document root.
	Leading  []string
	Trailing []string
}

func (y *Node) WithComment(c string) *Node {
	y.Str.Comment = c
	return y
}

func (y *Node) WithFlow(v bool) *Node {
	y.Flow = v
	return y
}

func (y *Node) Clone() *Node {
	res := &Node{}
	return y.CloneTo(res)
}

func (y *Node) CloneTo(dst *Node) *Node {
	dst.Parent = y.Parent
	dst.ParentIndex = y.ParentIndex
	dst.ParentField = y.ParentField
	dst.Type = y.Type
	dst.Str = y.Str
	dst.Flow = y.Flow
	dst.Leading = slices.Clone(y.Leading)
	dst.Trailing = slices.Clone(y.Trailing)
	dst.Fields = slices.Clone(y.Fields)
	if y.Values != nil {
		dst.Values = make([]*Node, len(y.Values))
	}
	for i, yv := range y.Values {
		dstI := &Node{}
		yv.CloneTo(dstI)
		dstI.Parent = dst
		dstI.ParentIndex = i
		dst.Values[i] = dstI
	}
	return dst
}

func FromString(v string) *Node {
	return FromStringAt(&Node{}, v)
}

func FromStringAt(p *Node, v string) *Node {
	p.Type = StringType
	p.Str = CommentedString{String: v}
	return p
}

func FromCommented(c CommentedString) *Node {
	return &Node{Type: StringType, Str: c}
}

func ToMap(node *Node) map[string]*Node {
	if node.Type != ObjectType {
		return nil
	}
	res := make(map[string]*Node, len(node.Fields))
	for i := range node.Fields {
		res[node.Fields[i].Key()] = node.Values[i]
	}
	return res
}

// FromMap builds an object whose keys are sorted, the order the
// project file uses for dictionaries such as buildSettings.
func FromMap(yMap map[string]*Node) *Node {
	keys := slices.Sorted(maps.Keys(yMap))
	kvs := make([]KeyVal, len(keys))
	for i, key := range keys {
		kvs[i] = KeyVal{Key: CommentedString{String: key}, Val: yMap[key]}
	}
	return FromKeyVals(kvs)
}

type KeyVal struct {
	Key CommentedString
	Val *Node
}

func FromKeyVals(kvs []KeyVal) *Node {
	res := &Node{}
	return FromKeyValsAt(res, kvs)
}

func FromKeyValsAt(res *Node, kvs []KeyVal) *Node {
	res.Type = ObjectType
	res.Fields = make([]CommentedString, len(kvs))
	res.Values = make([]*Node, len(kvs))
	for i := range kvs {
		kv := &kvs[i]
		kv.Val.Parent = res
		kv.Val.ParentIndex = i
		kv.Val.ParentField = kv.Key.String
		res.Fields[i] = kv.Key
		res.Values[i] = kv.Val
	}
	return res
}

func FromSlice(ySlice []*Node) *Node {
	res := &Node{
		Type: ArrayType,
	}
	res.Values = make([]*Node, len(ySlice))
	for i, y := range ySlice {
		res.Values[i] = y
		y.Parent = res
		y.ParentIndex = i
	}
	return res
}

// FromStrings builds an array of string leaves.
func FromStrings(vs []string) *Node {
	ns := make([]*Node, len(vs))
	for i, v := range vs {
		ns[i] = FromString(v)
	}
	return FromSlice(ns)
}

// Append adds an entry to the object y.
func (y *Node) Append(key CommentedString, val *Node) *Node {
	val.Parent = y
	val.ParentIndex = len(y.Values)
	val.ParentField = key.String
	y.Fields = append(y.Fields, key)
	y.Values = append(y.Values, val)
	return y
}

// Get returns the value of the last entry with the given key.
func Get(y *Node, field string) *Node {
	if y == nil || y.Type != ObjectType {
		return nil
	}
	for i := len(y.Fields) - 1; i >= 0; i-- {
		if y.Fields[i].String == field {
			return y.Values[i]
		}
	}
	return nil
}

// GetAll returns the values of every entry with the given key, in order.
func GetAll(y *Node, field string) []*Node {
	if y == nil || y.Type != ObjectType {
		return nil
	}
	var res []*Node
	for i := range y.Fields {
		if y.Fields[i].String == field {
			res = append(res, y.Values[i])
		}
	}
	return res
}

// Strings returns the string values of an array of leaves, and false
// if y is not such an array.
func (y *Node) Strings() ([]string, bool) {
	if y == nil || y.Type != ArrayType {
		return nil, false
	}
	res := make([]string, 0, len(y.Values))
	for _, v := range y.Values {
		if v.Type != StringType {
			return nil, false
		}
		res = append(res, v.Str.String)
	}
	return res, true
}

func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	dive, err := f(y, false)
	if err != nil {
		return err
	}
	if dive {
		for _, yy := range y.Values {
			if err := yy.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(y, true); err != nil {
		return err
	}
	return nil
}

func (y *Node) Root() *Node {
	res := y
	for res.Parent != nil {
		res = res.Parent
	}
	return res
}
