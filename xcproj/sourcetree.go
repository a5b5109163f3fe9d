package xcproj

// SourceTree names the location a file element path is relative to.
type SourceTree string

const (
	SourceTreeAbsolute      SourceTree = "<absolute>"
	SourceTreeGroup         SourceTree = "<group>"
	SourceTreeSourceRoot    SourceTree = "SOURCE_ROOT"
	SourceTreeBuiltProducts SourceTree = "BUILT_PRODUCTS_DIR"
	SourceTreeDeveloperDir  SourceTree = "DEVELOPER_DIR"
	SourceTreeSDKRoot       SourceTree = "SDKROOT"
)

// Known reports whether t is one of the source trees Xcode writes
// itself. Other values are build setting names and are kept as is.
func (t SourceTree) Known() bool {
	switch t {
	case SourceTreeAbsolute, SourceTreeGroup, SourceTreeSourceRoot,
		SourceTreeBuiltProducts, SourceTreeDeveloperDir, SourceTreeSDKRoot:
		return true
	}
	return false
}
