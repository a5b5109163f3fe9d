package xcproj

import "github.com/signadot/xcproj/ir"

// BuildFile places a file reference in a build phase.
type BuildFile struct {
	Base
	FileRef *string
	// ProductRef names a package product built in the place of a file.
	ProductRef *string
	Settings   *ir.Node
}

func NewBuildFile(ref, fileRef string) *BuildFile {
	return &BuildFile{Base: Base{Ref: ref}, FileRef: &fileRef}
}

func (b *BuildFile) Isa() string { return IsaBuildFile }

func (b *BuildFile) flowRecord() {}

func (b *BuildFile) fields() []field {
	return []field{
		reference("fileRef", &b.FileRef, fileNameComment),
		reference("productRef", &b.ProductRef, productNameComment),
		dictionary("settings", &b.Settings),
	}
}

// displayName is "<file> in <phase>", with phase the build phase
// listing b.
func (b *BuildFile) displayName(e *Encoder) (string, bool) {
	p, ok := e.lookupIndex().phaseOf[b.Ref]
	if !ok {
		return "", false
	}
	return e.buildFileName(b, p)
}

func (b *BuildFile) Equal(o *BuildFile) bool {
	return b.base().equal(o.base()) &&
		eqPtr(b.FileRef, o.FileRef) &&
		eqPtr(b.ProductRef, o.ProductRef) &&
		eqNode(b.Settings, o.Settings)
}
