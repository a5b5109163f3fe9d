package xcproj

import (
	"slices"
	"strings"
)

// DefaultBuildActionMask is the buildActionMask of phases which run
// for every build action.
const DefaultBuildActionMask uint = 2147483647

// BuildPhase is a sources, frameworks, resources or headers phase.
// Kind holds the isa.
type BuildPhase struct {
	Base
	ContainerItem
	Kind                               string
	BuildActionMask                    uint
	Files                              []string
	RunOnlyForDeploymentPostprocessing uint
}

// NewBuildPhase returns a phase of the given kind, which should be one
// of the Isa*BuildPhase constants with a fixed name.
func NewBuildPhase(kind, ref string, files ...string) *BuildPhase {
	return &BuildPhase{
		Base:            Base{Ref: ref},
		Kind:            kind,
		BuildActionMask: DefaultBuildActionMask,
		Files:           append([]string{}, files...),
	}
}

func (p *BuildPhase) Isa() string { return p.Kind }

func (p *BuildPhase) fields() []field {
	return []field{
		lenientUint("buildActionMask", &p.BuildActionMask, DefaultBuildActionMask),
		p.commentsField(),
		referenceList("files", &p.Files, buildFileComment),
		lenientUint("runOnlyForDeploymentPostprocessing", &p.RunOnlyForDeploymentPostprocessing, 0),
	}
}

func (p *BuildPhase) phaseName() (string, bool) {
	return strings.TrimSuffix(strings.TrimPrefix(p.Kind, "PBX"), "BuildPhase"), true
}

func (p *BuildPhase) phaseFiles() []string { return p.Files }

func (p *BuildPhase) displayName(*Encoder) (string, bool) { return p.phaseName() }

func (p *BuildPhase) Equal(o *BuildPhase) bool {
	return p.base().equal(o.base()) &&
		p.ContainerItem.equal(&o.ContainerItem) &&
		p.Kind == o.Kind &&
		p.BuildActionMask == o.BuildActionMask &&
		slices.Equal(p.Files, o.Files) &&
		p.RunOnlyForDeploymentPostprocessing == o.RunOnlyForDeploymentPostprocessing
}

// ShellScriptBuildPhase runs a script.
type ShellScriptBuildPhase struct {
	Base
	ContainerItem
	BuildActionMask                    uint
	Files                              []string
	InputPaths                         []string
	Name                               *string
	OutputPaths                        []string
	RunOnlyForDeploymentPostprocessing uint
	ShellPath                          *string
	ShellScript                        *string
}

func NewShellScriptBuildPhase(ref, script string) *ShellScriptBuildPhase {
	return &ShellScriptBuildPhase{
		Base:            Base{Ref: ref},
		BuildActionMask: DefaultBuildActionMask,
		Files:           []string{},
		InputPaths:      []string{},
		OutputPaths:     []string{},
		ShellPath:       Ptr("/bin/sh"),
		ShellScript:     &script,
	}
}

func (p *ShellScriptBuildPhase) Isa() string { return IsaShellScriptBuildPhase }

func (p *ShellScriptBuildPhase) fields() []field {
	return []field{
		lenientUint("buildActionMask", &p.BuildActionMask, DefaultBuildActionMask),
		p.commentsField(),
		referenceList("files", &p.Files, buildFileComment),
		stringList("inputPaths", &p.InputPaths),
		optionalString("name", &p.Name),
		stringList("outputPaths", &p.OutputPaths),
		lenientUint("runOnlyForDeploymentPostprocessing", &p.RunOnlyForDeploymentPostprocessing, 0),
		optionalString("shellPath", &p.ShellPath),
		optionalString("shellScript", &p.ShellScript),
	}
}

func (p *ShellScriptBuildPhase) phaseName() (string, bool) {
	if p.Name != nil {
		return *p.Name, true
	}
	return "ShellScript", true
}

func (p *ShellScriptBuildPhase) phaseFiles() []string { return p.Files }

func (p *ShellScriptBuildPhase) displayName(*Encoder) (string, bool) { return p.phaseName() }

func (p *ShellScriptBuildPhase) Equal(o *ShellScriptBuildPhase) bool {
	return p.base().equal(o.base()) &&
		p.ContainerItem.equal(&o.ContainerItem) &&
		p.BuildActionMask == o.BuildActionMask &&
		slices.Equal(p.Files, o.Files) &&
		slices.Equal(p.InputPaths, o.InputPaths) &&
		eqPtr(p.Name, o.Name) &&
		slices.Equal(p.OutputPaths, o.OutputPaths) &&
		p.RunOnlyForDeploymentPostprocessing == o.RunOnlyForDeploymentPostprocessing &&
		eqPtr(p.ShellPath, o.ShellPath) &&
		eqPtr(p.ShellScript, o.ShellScript)
}

// CopyFilesBuildPhase copies its files to dstPath under the folder
// selected by DstSubfolderSpec.
type CopyFilesBuildPhase struct {
	Base
	ContainerItem
	BuildActionMask                    uint
	DstPath                            *string
	DstSubfolderSpec                   uint
	Files                              []string
	Name                               *string
	RunOnlyForDeploymentPostprocessing uint
}

func NewCopyFilesBuildPhase(ref string, files ...string) *CopyFilesBuildPhase {
	return &CopyFilesBuildPhase{
		Base:            Base{Ref: ref},
		BuildActionMask: DefaultBuildActionMask,
		Files:           append([]string{}, files...),
	}
}

func (p *CopyFilesBuildPhase) Isa() string { return IsaCopyFilesBuildPhase }

func (p *CopyFilesBuildPhase) fields() []field {
	return []field{
		lenientUint("buildActionMask", &p.BuildActionMask, DefaultBuildActionMask),
		p.commentsField(),
		optionalString("dstPath", &p.DstPath),
		lenientUint("dstSubfolderSpec", &p.DstSubfolderSpec, 0),
		referenceList("files", &p.Files, buildFileComment),
		optionalString("name", &p.Name),
		lenientUint("runOnlyForDeploymentPostprocessing", &p.RunOnlyForDeploymentPostprocessing, 0),
	}
}

func (p *CopyFilesBuildPhase) phaseName() (string, bool) {
	if p.Name != nil {
		return *p.Name, true
	}
	return "CopyFiles", true
}

func (p *CopyFilesBuildPhase) phaseFiles() []string { return p.Files }

func (p *CopyFilesBuildPhase) displayName(*Encoder) (string, bool) { return p.phaseName() }

func (p *CopyFilesBuildPhase) Equal(o *CopyFilesBuildPhase) bool {
	return p.base().equal(o.base()) &&
		p.ContainerItem.equal(&o.ContainerItem) &&
		p.BuildActionMask == o.BuildActionMask &&
		eqPtr(p.DstPath, o.DstPath) &&
		p.DstSubfolderSpec == o.DstSubfolderSpec &&
		slices.Equal(p.Files, o.Files) &&
		eqPtr(p.Name, o.Name) &&
		p.RunOnlyForDeploymentPostprocessing == o.RunOnlyForDeploymentPostprocessing
}
