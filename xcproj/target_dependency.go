package xcproj

// TargetDependency makes a target depend on another, possibly in a
// different project through TargetProxy.
type TargetDependency struct {
	Base
	Name        *string
	Target      *string
	TargetProxy *string
}

func (d *TargetDependency) Isa() string { return IsaTargetDependency }

func (d *TargetDependency) fields() []field {
	return []field{
		optionalString("name", &d.Name),
		reference("target", &d.Target, targetNameComment),
		reference("targetProxy", &d.TargetProxy, isaComment),
	}
}

func (d *TargetDependency) displayName(*Encoder) (string, bool) { return d.Isa(), true }

func (d *TargetDependency) Equal(o *TargetDependency) bool {
	return d.base().equal(o.base()) &&
		eqPtr(d.Name, o.Name) &&
		eqPtr(d.Target, o.Target) &&
		eqPtr(d.TargetProxy, o.TargetProxy)
}

// ContainerItemProxy points at an object of the project named by
// ContainerPortal.
type ContainerItemProxy struct {
	Base
	ContainerPortal      string
	ProxyType            uint
	RemoteGlobalIDString *string
	RemoteInfo           *string
}

func (p *ContainerItemProxy) Isa() string { return IsaContainerItemProxy }

func (p *ContainerItemProxy) fields() []field {
	return []field{
		requiredReference("containerPortal", &p.ContainerPortal, projectComment),
		lenientUint("proxyType", &p.ProxyType, 0),
		optionalString("remoteGlobalIDString", &p.RemoteGlobalIDString),
		optionalString("remoteInfo", &p.RemoteInfo),
	}
}

func (p *ContainerItemProxy) displayName(*Encoder) (string, bool) { return p.Isa(), true }

func (p *ContainerItemProxy) Equal(o *ContainerItemProxy) bool {
	return p.base().equal(o.base()) &&
		p.ContainerPortal == o.ContainerPortal &&
		p.ProxyType == o.ProxyType &&
		eqPtr(p.RemoteGlobalIDString, o.RemoteGlobalIDString) &&
		eqPtr(p.RemoteInfo, o.RemoteInfo)
}
