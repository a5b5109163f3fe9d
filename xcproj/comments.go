package xcproj

func fileNameComment(e *Encoder, _ Object, ref string) (string, bool) {
	return e.reg.FileName(ref)
}

func buildPhaseComment(e *Encoder, _ Object, ref string) (string, bool) {
	return e.reg.BuildPhaseName(ref)
}

func isaComment(e *Encoder, _ Object, ref string) (string, bool) {
	return e.reg.Isa(ref)
}

func targetNameComment(e *Encoder, _ Object, ref string) (string, bool) {
	return e.reg.TargetName(ref)
}

func configurationNameComment(e *Encoder, _ Object, ref string) (string, bool) {
	return e.reg.ConfigurationName(ref)
}

// projectComment names a container: this project, or the file
// reference of another one.
func projectComment(e *Encoder, _ Object, ref string) (string, bool) {
	if _, ok := Lookup[*Project](e.reg, ref); ok {
		return projectObject, true
	}
	return e.reg.FileName(ref)
}

func productNameComment(e *Encoder, _ Object, ref string) (string, bool) {
	u, ok := Lookup[*Unknown](e.reg, ref)
	if !ok {
		return "", false
	}
	return u.get("productName")
}

func buildFileComment(e *Encoder, owner Object, ref string) (string, bool) {
	b, ok := Lookup[*BuildFile](e.reg, ref)
	if !ok {
		return "", false
	}
	p, ok := owner.(buildPhase)
	if !ok {
		return "", false
	}
	return e.buildFileName(b, p)
}

// configurationListComment names owner, the object holding the
// reference, only when the list exists.
func configurationListComment(e *Encoder, owner Object, ref string) (string, bool) {
	if _, ok := Lookup[*ConfigurationList](e.reg, ref); !ok {
		return "", false
	}
	o, ok := owner.(configurationListOwner)
	if !ok {
		return "", false
	}
	return e.configurationListName(o)
}
