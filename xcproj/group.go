package xcproj

import "slices"

// VariantGroup groups the localized variants of one resource.
type VariantGroup struct {
	Base
	ContainerItem
	Children   []string
	Name       *string
	Path       *string
	SourceTree *SourceTree
}

func NewVariantGroup(ref string, children ...string) *VariantGroup {
	return &VariantGroup{Base: Base{Ref: ref}, Children: append([]string{}, children...)}
}

func (g *VariantGroup) Isa() string { return IsaVariantGroup }

func (g *VariantGroup) fields() []field {
	return groupFields(&g.ContainerItem, &g.Children, &g.Name, &g.Path, &g.SourceTree)
}

func (g *VariantGroup) displayName(*Encoder) (string, bool) {
	if g.Name == nil {
		return "", false
	}
	return *g.Name, true
}

func (g *VariantGroup) fileName() (string, bool) { return nameOrPath(g.Name, g.Path) }

func (g *VariantGroup) Equal(o *VariantGroup) bool {
	return g.base().equal(o.base()) &&
		g.ContainerItem.equal(&o.ContainerItem) &&
		slices.Equal(g.Children, o.Children) &&
		eqPtr(g.Name, o.Name) &&
		eqPtr(g.Path, o.Path) &&
		eqPtr(g.SourceTree, o.SourceTree)
}

// Group is a folder of the project navigator.
type Group struct {
	Base
	ContainerItem
	Children   []string
	Name       *string
	Path       *string
	SourceTree *SourceTree
}

func NewGroup(ref string, children ...string) *Group {
	return &Group{Base: Base{Ref: ref}, Children: append([]string{}, children...)}
}

func (g *Group) Isa() string { return IsaGroup }

func (g *Group) fields() []field {
	return groupFields(&g.ContainerItem, &g.Children, &g.Name, &g.Path, &g.SourceTree)
}

func (g *Group) displayName(*Encoder) (string, bool) { return nameOrPath(g.Name, g.Path) }

func (g *Group) fileName() (string, bool) { return nameOrPath(g.Name, g.Path) }

func (g *Group) Equal(o *Group) bool {
	return g.base().equal(o.base()) &&
		g.ContainerItem.equal(&o.ContainerItem) &&
		slices.Equal(g.Children, o.Children) &&
		eqPtr(g.Name, o.Name) &&
		eqPtr(g.Path, o.Path) &&
		eqPtr(g.SourceTree, o.SourceTree)
}

func groupFields(c *ContainerItem, children *[]string, name, path **string, st **SourceTree) []field {
	return []field{
		referenceList("children", children, fileNameComment),
		c.commentsField(),
		optionalString("name", name),
		optionalString("path", path),
		sourceTree("sourceTree", st),
	}
}

func nameOrPath(name, path *string) (string, bool) {
	switch {
	case name != nil:
		return *name, true
	case path != nil:
		return *path, true
	}
	return "", false
}
