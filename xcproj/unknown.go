package xcproj

import (
	"strings"

	"github.com/signadot/xcproj/ir"
)

// Unknown holds a record whose isa has no typed variant. It is
// written back as it was read.
type Unknown struct {
	Base
	IsaName string
	// Record is the whole record, isa included.
	Record *ir.Node
	// KeyComment is the comment of the record key when read, used as
	// the display name when the record has no name or path.
	KeyComment string
}

func (u *Unknown) Isa() string { return u.IsaName }

func (u *Unknown) fields() []field { return nil }

func (u *Unknown) get(key string) (string, bool) {
	n := ir.Get(u.Record, key)
	if n == nil || n.Type != ir.StringType {
		return "", false
	}
	return n.Str.String, true
}

func (u *Unknown) displayName(*Encoder) (string, bool) {
	if name, ok := u.phaseName(); ok {
		return name, true
	}
	if name, ok := u.fileName(); ok {
		return name, true
	}
	return u.KeyComment, u.KeyComment != ""
}

func (u *Unknown) fileName() (string, bool) {
	if v, ok := u.get("name"); ok {
		return v, true
	}
	return u.get("path")
}

func (u *Unknown) phaseName() (string, bool) {
	if !isBuildPhaseIsa(u.IsaName) {
		return "", false
	}
	if v, ok := u.get("name"); ok {
		return v, true
	}
	return strings.TrimSuffix(strings.TrimPrefix(u.IsaName, "PBX"), "BuildPhase"), true
}

func (u *Unknown) phaseFiles() []string {
	if !isBuildPhaseIsa(u.IsaName) {
		return nil
	}
	vs, _ := ir.Get(u.Record, "files").Strings()
	return vs
}

func (u *Unknown) targetName() (string, bool) {
	if !strings.HasSuffix(u.IsaName, "Target") {
		return "", false
	}
	return u.get("name")
}

func (u *Unknown) configurationList() (string, bool) {
	return u.get("buildConfigurationList")
}

func (u *Unknown) ownerName(*Encoder) (string, bool) {
	return u.get("name")
}

func (u *Unknown) Equal(o *Unknown) bool {
	return u.base().equal(o.base()) &&
		u.IsaName == o.IsaName &&
		eqNode(u.Record, o.Record)
}
