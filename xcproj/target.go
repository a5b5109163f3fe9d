package xcproj

import (
	"slices"
	"strings"
)

// TargetCommon holds the fields every kind of target has.
type TargetCommon struct {
	BuildConfigurationList *string
	BuildPhases            []string
	Dependencies           []string
	Name                   string
	ProductName            *string
}

func newTargetCommon(name string) TargetCommon {
	return TargetCommon{Name: name, BuildPhases: []string{}, Dependencies: []string{}}
}

// targetFields returns the shared fields together with those of one
// target kind, sorted by key.
func (t *TargetCommon) targetFields(kind ...field) []field {
	fs := append([]field{
		reference("buildConfigurationList", &t.BuildConfigurationList, configurationListComment),
		referenceList("buildPhases", &t.BuildPhases, buildPhaseComment),
		referenceList("dependencies", &t.Dependencies, isaComment),
		requiredString("name", &t.Name),
		optionalString("productName", &t.ProductName),
	}, kind...)
	slices.SortStableFunc(fs, func(a, b field) int { return strings.Compare(a.key, b.key) })
	return fs
}

func (t *TargetCommon) displayName(*Encoder) (string, bool) { return t.Name, true }

func (t *TargetCommon) targetName() (string, bool) { return t.Name, true }

func (t *TargetCommon) configurationList() (string, bool) {
	if t.BuildConfigurationList == nil {
		return "", false
	}
	return *t.BuildConfigurationList, true
}

func (t *TargetCommon) ownerName(*Encoder) (string, bool) { return t.Name, true }

func (t *TargetCommon) equalTarget(o *TargetCommon) bool {
	return eqPtr(t.BuildConfigurationList, o.BuildConfigurationList) &&
		slices.Equal(t.BuildPhases, o.BuildPhases) &&
		slices.Equal(t.Dependencies, o.Dependencies) &&
		t.Name == o.Name &&
		eqPtr(t.ProductName, o.ProductName)
}

// NativeTarget is a target built by Xcode from its build phases.
type NativeTarget struct {
	Base
	TargetCommon
	BuildRules                 []string
	PackageProductDependencies []string
	ProductReference           *string
	ProductType                *string
}

func NewNativeTarget(ref, name, productType string) *NativeTarget {
	return &NativeTarget{
		Base:         Base{Ref: ref},
		TargetCommon: newTargetCommon(name),
		BuildRules:   []string{},
		ProductType:  &productType,
	}
}

func (t *NativeTarget) Isa() string { return IsaNativeTarget }

func (t *NativeTarget) fields() []field {
	return t.targetFields(
		referenceList("buildRules", &t.BuildRules, isaComment),
		optionalReferenceList("packageProductDependencies", &t.PackageProductDependencies, productNameComment),
		reference("productReference", &t.ProductReference, fileNameComment),
		optionalString("productType", &t.ProductType),
	)
}

func (t *NativeTarget) Equal(o *NativeTarget) bool {
	return t.base().equal(o.base()) &&
		t.equalTarget(&o.TargetCommon) &&
		slices.Equal(t.BuildRules, o.BuildRules) &&
		eqOptional(t.PackageProductDependencies, o.PackageProductDependencies) &&
		eqPtr(t.ProductReference, o.ProductReference) &&
		eqPtr(t.ProductType, o.ProductType)
}

// AggregateTarget groups other targets and runs scripts; it builds no
// product of its own.
type AggregateTarget struct {
	Base
	TargetCommon
}

func NewAggregateTarget(ref, name string) *AggregateTarget {
	return &AggregateTarget{Base: Base{Ref: ref}, TargetCommon: newTargetCommon(name)}
}

func (t *AggregateTarget) Isa() string { return IsaAggregateTarget }

func (t *AggregateTarget) fields() []field { return t.targetFields() }

func (t *AggregateTarget) Equal(o *AggregateTarget) bool {
	return t.base().equal(o.base()) && t.equalTarget(&o.TargetCommon)
}
