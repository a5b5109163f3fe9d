package xcproj

// ContainerItem is embedded by the elements that may contain others:
// groups, file references and build phases.
type ContainerItem struct {
	// Comments are user comments on the element.
	Comments *string
}

func (c *ContainerItem) commentsField() field {
	return optionalString("comments", &c.Comments)
}

func (c *ContainerItem) equal(o *ContainerItem) bool {
	return eqPtr(c.Comments, o.Comments)
}
