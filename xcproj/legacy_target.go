package xcproj

// LegacyTarget is a target built by an external tool such as make.
type LegacyTarget struct {
	Base
	TargetCommon
	BuildArgumentsString           *string
	BuildToolPath                  *string
	BuildWorkingDirectory          *string
	PassBuildSettingsInEnvironment uint
}

func NewLegacyTarget(ref, name string) *LegacyTarget {
	return &LegacyTarget{Base: Base{Ref: ref}, TargetCommon: newTargetCommon(name)}
}

func (t *LegacyTarget) Isa() string { return IsaLegacyTarget }

func (t *LegacyTarget) fields() []field {
	return t.targetFields(
		optionalString("buildArgumentsString", &t.BuildArgumentsString),
		optionalString("buildToolPath", &t.BuildToolPath),
		optionalString("buildWorkingDirectory", &t.BuildWorkingDirectory),
		lenientUint("passBuildSettingsInEnvironment", &t.PassBuildSettingsInEnvironment, 0),
	)
}

func (t *LegacyTarget) Equal(o *LegacyTarget) bool {
	return t.base().equal(o.base()) &&
		t.equalTarget(&o.TargetCommon) &&
		eqPtr(t.BuildArgumentsString, o.BuildArgumentsString) &&
		eqPtr(t.BuildToolPath, o.BuildToolPath) &&
		eqPtr(t.BuildWorkingDirectory, o.BuildWorkingDirectory) &&
		t.PassBuildSettingsInEnvironment == o.PassBuildSettingsInEnvironment
}
