package xcproj

import (
	"maps"
	"slices"
	"strings"
)

// Registry maps references to the objects of one project.
//
// A Registry may be read from several goroutines at once, but must not
// be written while it is read.
type Registry struct {
	objects map[string]Object
}

func NewRegistry(objs ...Object) *Registry {
	r := &Registry{objects: make(map[string]Object, len(objs))}
	for _, obj := range objs {
		r.Add(obj)
	}
	return r
}

// Add registers obj under its reference, replacing and reporting any
// object previously held there.
func (r *Registry) Add(obj Object) (replaced bool) {
	ref := obj.Reference()
	_, replaced = r.objects[ref]
	r.objects[ref] = obj
	return replaced
}

func (r *Registry) Get(ref string) (Object, bool) {
	obj, ok := r.objects[ref]
	return obj, ok
}

// Lookup returns the object at ref if it has type T.
func Lookup[T Object](r *Registry, ref string) (T, bool) {
	obj, ok := r.objects[ref]
	if !ok {
		var zero T
		return zero, false
	}
	t, ok := obj.(T)
	return t, ok
}

func (r *Registry) Remove(ref string) bool {
	_, ok := r.objects[ref]
	delete(r.objects, ref)
	return ok
}

func (r *Registry) Len() int {
	return len(r.objects)
}

// References returns every registered reference, sorted.
func (r *Registry) References() []string {
	return slices.Sorted(maps.Keys(r.objects))
}

// Objects returns every registered object sorted by reference.
func (r *Registry) Objects() []Object {
	refs := r.References()
	res := make([]Object, len(refs))
	for i, ref := range refs {
		res[i] = r.objects[ref]
	}
	return res
}

// ByIsa returns the objects with the given isa sorted by reference.
func (r *Registry) ByIsa(isa string) []Object {
	var res []Object
	for _, ref := range r.References() {
		if obj := r.objects[ref]; obj.Isa() == isa {
			res = append(res, obj)
		}
	}
	return res
}

// Isas returns the distinct isas of the registered objects, sorted.
func (r *Registry) Isas() []string {
	set := map[string]struct{}{}
	for _, obj := range r.objects {
		set[obj.Isa()] = struct{}{}
	}
	return slices.Sorted(maps.Keys(set))
}

func (r *Registry) Isa(ref string) (string, bool) {
	obj, ok := r.objects[ref]
	if !ok {
		return "", false
	}
	return obj.Isa(), true
}

// DisplayName returns the comment written after ref in the objects
// table, as the default Encoder derives it.
func (r *Registry) DisplayName(ref string) (string, bool) {
	obj, ok := r.objects[ref]
	if !ok {
		return "", false
	}
	return NewEncoder(r).DisplayName(obj)
}

type buildPhase interface {
	Object
	phaseName() (string, bool)
	phaseFiles() []string
}

type fileElement interface {
	Object
	fileName() (string, bool)
}

type target interface {
	Object
	targetName() (string, bool)
}

// configurationListOwner is implemented by the objects holding a
// buildConfigurationList reference.
type configurationListOwner interface {
	Object
	configurationList() (string, bool)
	ownerName(e *Encoder) (string, bool)
}

func (r *Registry) BuildPhaseName(ref string) (string, bool) {
	p, ok := Lookup[buildPhase](r, ref)
	if !ok {
		return "", false
	}
	return p.phaseName()
}

func (r *Registry) FileName(ref string) (string, bool) {
	f, ok := Lookup[fileElement](r, ref)
	if !ok {
		return "", false
	}
	return f.fileName()
}

func (r *Registry) TargetName(ref string) (string, bool) {
	t, ok := Lookup[target](r, ref)
	if !ok {
		return "", false
	}
	return t.targetName()
}

func (r *Registry) ConfigurationName(ref string) (string, bool) {
	c, ok := Lookup[*BuildConfiguration](r, ref)
	if !ok {
		return "", false
	}
	return c.Name, true
}

// Dangling returns, sorted, the references held by registered objects
// which do not resolve.
func (r *Registry) Dangling() []string {
	set := map[string]struct{}{}
	e := NewEncoder(r)
	for _, obj := range r.objects {
		for _, ref := range e.references(obj) {
			if _, ok := r.objects[ref]; !ok {
				set[ref] = struct{}{}
			}
		}
	}
	return slices.Sorted(maps.Keys(set))
}

func isBuildPhaseIsa(isa string) bool {
	return strings.HasPrefix(isa, "PBX") && strings.HasSuffix(isa, "BuildPhase")
}
