package xcproj

import (
	"fmt"
	"maps"
	"slices"

	"github.com/signadot/xcproj/ir"
)

// ConfigurationList lists the build configurations of a target or of
// the project.
type ConfigurationList struct {
	Base
	BuildConfigurations           []string
	DefaultConfigurationIsVisible uint
	DefaultConfigurationName      *string
}

func NewConfigurationList(ref string, configs ...string) *ConfigurationList {
	return &ConfigurationList{Base: Base{Ref: ref}, BuildConfigurations: append([]string{}, configs...)}
}

func (l *ConfigurationList) Isa() string { return IsaConfigurationList }

func (l *ConfigurationList) fields() []field {
	return []field{
		referenceList("buildConfigurations", &l.BuildConfigurations, configurationNameComment),
		lenientUint("defaultConfigurationIsVisible", &l.DefaultConfigurationIsVisible, 0),
		optionalString("defaultConfigurationName", &l.DefaultConfigurationName),
	}
}

// displayName names the owner of l, found by searching the registry.
func (l *ConfigurationList) displayName(e *Encoder) (string, bool) {
	owner, ok := e.lookupIndex().listOwner[l.Ref]
	if !ok {
		return "", false
	}
	return e.configurationListName(owner)
}

func (l *ConfigurationList) Equal(o *ConfigurationList) bool {
	return l.base().equal(o.base()) &&
		slices.Equal(l.BuildConfigurations, o.BuildConfigurations) &&
		l.DefaultConfigurationIsVisible == o.DefaultConfigurationIsVisible &&
		eqPtr(l.DefaultConfigurationName, o.DefaultConfigurationName)
}

const configurationListPrefix = "Build configuration list for "

func configurationListName(isa, owner string) string {
	return fmt.Sprintf("%s%s \"%s\"", configurationListPrefix, isa, owner)
}

// BuildConfiguration is a named set of build settings.
type BuildConfiguration struct {
	Base
	BaseConfigurationReference *string
	BuildSettings              map[string]*ir.Node
	Name                       string
}

func NewBuildConfiguration(ref, name string) *BuildConfiguration {
	return &BuildConfiguration{Base: Base{Ref: ref}, Name: name, BuildSettings: map[string]*ir.Node{}}
}

func (c *BuildConfiguration) Isa() string { return IsaBuildConfiguration }

func (c *BuildConfiguration) fields() []field {
	return []field{
		reference("baseConfigurationReference", &c.BaseConfigurationReference, fileNameComment),
		settings("buildSettings", &c.BuildSettings),
		requiredString("name", &c.Name),
	}
}

func (c *BuildConfiguration) displayName(*Encoder) (string, bool) { return c.Name, true }

// Setting returns a build setting holding a single string.
func (c *BuildConfiguration) Setting(key string) (string, bool) {
	n, ok := c.BuildSettings[key]
	if !ok || n.Type != ir.StringType {
		return "", false
	}
	return n.Str.String, true
}

// SetSetting sets a build setting to a string, or to a list when given
// several values.
func (c *BuildConfiguration) SetSetting(key string, vals ...string) {
	if c.BuildSettings == nil {
		c.BuildSettings = map[string]*ir.Node{}
	}
	if len(vals) == 1 {
		c.BuildSettings[key] = ir.FromString(vals[0])
		return
	}
	c.BuildSettings[key] = ir.FromStrings(vals)
}

func (c *BuildConfiguration) Equal(o *BuildConfiguration) bool {
	return c.base().equal(o.base()) &&
		eqPtr(c.BaseConfigurationReference, o.BaseConfigurationReference) &&
		maps.EqualFunc(c.BuildSettings, o.BuildSettings, ir.Equal) &&
		c.Name == o.Name
}
