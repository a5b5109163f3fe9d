package xcproj

// FileReference names a file of the project.
type FileReference struct {
	Base
	ContainerItem
	ExplicitFileType  *string
	FileEncoding      *uint
	IncludeInIndex    *uint
	LastKnownFileType *string
	Name              *string
	Path              *string
	SourceTree        *SourceTree
}

func NewFileReference(ref, path string, tree SourceTree) *FileReference {
	return &FileReference{Base: Base{Ref: ref}, Path: &path, SourceTree: &tree}
}

func (f *FileReference) Isa() string { return IsaFileReference }

func (f *FileReference) flowRecord() {}

func (f *FileReference) fields() []field {
	return []field{
		f.commentsField(),
		optionalString("explicitFileType", &f.ExplicitFileType),
		optionalUint("fileEncoding", &f.FileEncoding),
		optionalUint("includeInIndex", &f.IncludeInIndex),
		optionalString("lastKnownFileType", &f.LastKnownFileType),
		optionalString("name", &f.Name),
		optionalString("path", &f.Path),
		sourceTree("sourceTree", &f.SourceTree),
	}
}

func (f *FileReference) displayName(*Encoder) (string, bool) { return f.fileName() }

func (f *FileReference) fileName() (string, bool) { return nameOrPath(f.Name, f.Path) }

func (f *FileReference) Equal(o *FileReference) bool {
	return f.base().equal(o.base()) &&
		f.ContainerItem.equal(&o.ContainerItem) &&
		eqPtr(f.ExplicitFileType, o.ExplicitFileType) &&
		eqPtr(f.FileEncoding, o.FileEncoding) &&
		eqPtr(f.IncludeInIndex, o.IncludeInIndex) &&
		eqPtr(f.LastKnownFileType, o.LastKnownFileType) &&
		eqPtr(f.Name, o.Name) &&
		eqPtr(f.Path, o.Path) &&
		eqPtr(f.SourceTree, o.SourceTree)
}
