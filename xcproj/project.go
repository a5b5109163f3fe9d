package xcproj

import (
	"slices"

	"github.com/signadot/xcproj/ir"
)

// Project is the root object of a project file.
type Project struct {
	Base
	Attributes             *ir.Node
	BuildConfigurationList *string
	CompatibilityVersion   *string
	DevelopmentRegion      *string
	HasScannedForEncodings uint
	KnownRegions           []string
	MainGroup              string
	ProductRefGroup        *string
	ProjectDirPath         string
	ProjectRoot            string
	Targets                []string
}

func NewProject(ref, mainGroup string) *Project {
	return &Project{Base: Base{Ref: ref}, MainGroup: mainGroup, Targets: []string{}}
}

func (p *Project) Isa() string { return IsaProject }

func (p *Project) fields() []field {
	return []field{
		dictionary("attributes", &p.Attributes),
		reference("buildConfigurationList", &p.BuildConfigurationList, configurationListComment),
		optionalString("compatibilityVersion", &p.CompatibilityVersion),
		optionalString("developmentRegion", &p.DevelopmentRegion),
		lenientUint("hasScannedForEncodings", &p.HasScannedForEncodings, 0),
		optionalStringList("knownRegions", &p.KnownRegions),
		requiredReference("mainGroup", &p.MainGroup, nil),
		reference("productRefGroup", &p.ProductRefGroup, fileNameComment),
		defaultString("projectDirPath", &p.ProjectDirPath, ""),
		defaultString("projectRoot", &p.ProjectRoot, ""),
		referenceList("targets", &p.Targets, targetNameComment),
	}
}

const projectObject = "Project object"

func (p *Project) displayName(*Encoder) (string, bool) { return projectObject, true }

func (p *Project) configurationList() (string, bool) {
	if p.BuildConfigurationList == nil {
		return "", false
	}
	return *p.BuildConfigurationList, true
}

// ownerName is the project name, which the file does not record
// outside of comments.
func (p *Project) ownerName(e *Encoder) (string, bool) {
	return e.projectName, e.projectName != ""
}

func (p *Project) Equal(o *Project) bool {
	return p.base().equal(o.base()) &&
		eqNode(p.Attributes, o.Attributes) &&
		eqPtr(p.BuildConfigurationList, o.BuildConfigurationList) &&
		eqPtr(p.CompatibilityVersion, o.CompatibilityVersion) &&
		eqPtr(p.DevelopmentRegion, o.DevelopmentRegion) &&
		p.HasScannedForEncodings == o.HasScannedForEncodings &&
		eqOptional(p.KnownRegions, o.KnownRegions) &&
		p.MainGroup == o.MainGroup &&
		eqPtr(p.ProductRefGroup, o.ProductRefGroup) &&
		p.ProjectDirPath == o.ProjectDirPath &&
		p.ProjectRoot == o.ProjectRoot &&
		slices.Equal(p.Targets, o.Targets)
}
