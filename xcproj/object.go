package xcproj

import (
	"maps"
	"slices"

	"github.com/signadot/xcproj/ir"
)

const (
	IsaLegacyTarget          = "PBXLegacyTarget"
	IsaNativeTarget          = "PBXNativeTarget"
	IsaAggregateTarget       = "PBXAggregateTarget"
	IsaVariantGroup          = "PBXVariantGroup"
	IsaGroup                 = "PBXGroup"
	IsaFileReference         = "PBXFileReference"
	IsaBuildFile             = "PBXBuildFile"
	IsaSourcesBuildPhase     = "PBXSourcesBuildPhase"
	IsaFrameworksBuildPhase  = "PBXFrameworksBuildPhase"
	IsaResourcesBuildPhase   = "PBXResourcesBuildPhase"
	IsaHeadersBuildPhase     = "PBXHeadersBuildPhase"
	IsaShellScriptBuildPhase = "PBXShellScriptBuildPhase"
	IsaCopyFilesBuildPhase   = "PBXCopyFilesBuildPhase"
	IsaTargetDependency      = "PBXTargetDependency"
	IsaContainerItemProxy    = "PBXContainerItemProxy"
	IsaConfigurationList     = "XCConfigurationList"
	IsaBuildConfiguration    = "XCBuildConfiguration"
	IsaProject               = "PBXProject"
)

// Object is one record of the objects table.
type Object interface {
	Reference() string
	Isa() string

	base() *Base
	fields() []field
	// displayName is the comment of the record key.
	displayName(e *Encoder) (string, bool)
}

// Base carries the reference and the record entries no field of
// the variant describes.
type Base struct {
	Ref   string
	Extra Extras
}

func (b *Base) Reference() string { return b.Ref }

func (b *Base) base() *Base { return b }

func (b *Base) equal(o *Base) bool {
	return b.Ref == o.Ref && b.Extra.Equal(o.Extra)
}

// Extras maps record keys to their values as parsed.
type Extras map[string]*ir.Node

func (x Extras) Keys() []string {
	return slices.Sorted(maps.Keys(x))
}

func (x Extras) Equal(o Extras) bool {
	if len(x) != len(o) {
		return false
	}
	for k, v := range x {
		ov, ok := o[k]
		if !ok || !ir.Equal(v, ov) {
			return false
		}
	}
	return true
}

// flowRecord marks variants whose records are written on one line.
type flowRecord interface {
	flowRecord()
}

var variants = map[string]func(ref string) Object{
	IsaLegacyTarget:          func(ref string) Object { return &LegacyTarget{Base: Base{Ref: ref}} },
	IsaNativeTarget:          func(ref string) Object { return &NativeTarget{Base: Base{Ref: ref}} },
	IsaAggregateTarget:       func(ref string) Object { return &AggregateTarget{Base: Base{Ref: ref}} },
	IsaVariantGroup:          func(ref string) Object { return &VariantGroup{Base: Base{Ref: ref}} },
	IsaGroup:                 func(ref string) Object { return &Group{Base: Base{Ref: ref}} },
	IsaFileReference:         func(ref string) Object { return &FileReference{Base: Base{Ref: ref}} },
	IsaBuildFile:             func(ref string) Object { return &BuildFile{Base: Base{Ref: ref}} },
	IsaSourcesBuildPhase:     func(ref string) Object { return NewBuildPhase(IsaSourcesBuildPhase, ref) },
	IsaFrameworksBuildPhase:  func(ref string) Object { return NewBuildPhase(IsaFrameworksBuildPhase, ref) },
	IsaResourcesBuildPhase:   func(ref string) Object { return NewBuildPhase(IsaResourcesBuildPhase, ref) },
	IsaHeadersBuildPhase:     func(ref string) Object { return NewBuildPhase(IsaHeadersBuildPhase, ref) },
	IsaShellScriptBuildPhase: func(ref string) Object { return &ShellScriptBuildPhase{Base: Base{Ref: ref}} },
	IsaCopyFilesBuildPhase:   func(ref string) Object { return &CopyFilesBuildPhase{Base: Base{Ref: ref}} },
	IsaTargetDependency:      func(ref string) Object { return &TargetDependency{Base: Base{Ref: ref}} },
	IsaContainerItemProxy:    func(ref string) Object { return &ContainerItemProxy{Base: Base{Ref: ref}} },
	IsaConfigurationList:     func(ref string) Object { return &ConfigurationList{Base: Base{Ref: ref}} },
	IsaBuildConfiguration:    func(ref string) Object { return &BuildConfiguration{Base: Base{Ref: ref}} },
	IsaProject:               func(ref string) Object { return &Project{Base: Base{Ref: ref}} },
}

// Isas returns the discriminators with a typed variant, sorted.
func Isas() []string {
	return slices.Sorted(maps.Keys(variants))
}

// Modelled reports whether isa decodes to a typed variant rather than
// to Unknown.
func Modelled(isa string) bool {
	_, ok := variants[isa]
	return ok
}

// Ptr returns a pointer to v, for the optional fields of the variants.
func Ptr[T any](v T) *T { return &v }

func eqPtr[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func eqNode(a, b *ir.Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	return ir.Equal(a, b)
}

// eqOptional compares lists for which nil means absent.
func eqOptional(a, b []string) bool {
	return (a == nil) == (b == nil) && slices.Equal(a, b)
}

// Equal reports whether a and b are the same variant with equal
// fields, references included.
func Equal(a, b Object) bool {
	switch a := a.(type) {
	case *LegacyTarget:
		return eqAs(a, b)
	case *NativeTarget:
		return eqAs(a, b)
	case *AggregateTarget:
		return eqAs(a, b)
	case *VariantGroup:
		return eqAs(a, b)
	case *Group:
		return eqAs(a, b)
	case *FileReference:
		return eqAs(a, b)
	case *BuildFile:
		return eqAs(a, b)
	case *BuildPhase:
		return eqAs(a, b)
	case *ShellScriptBuildPhase:
		return eqAs(a, b)
	case *CopyFilesBuildPhase:
		return eqAs(a, b)
	case *TargetDependency:
		return eqAs(a, b)
	case *ContainerItemProxy:
		return eqAs(a, b)
	case *ConfigurationList:
		return eqAs(a, b)
	case *BuildConfiguration:
		return eqAs(a, b)
	case *Project:
		return eqAs(a, b)
	case *Unknown:
		return eqAs(a, b)
	}
	return false
}

func eqAs[T interface{ Equal(T) bool }](a T, b Object) bool {
	bt, ok := b.(T)
	return ok && a.Equal(bt)
}
