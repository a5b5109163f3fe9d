// Package xcproj holds the object model of Xcode project files.
//
// A project file is a dictionary whose objects entry maps references
// to records. Each record names its variant with an isa entry.
// [DecodeObject] turns a record into an [Object], and a [Registry]
// indexes the decoded objects by reference.
//
// Records are written back with an [Encoder], which regenerates the
// comments of references from the Registry, so a renamed target is
// renamed in every comment mentioning it.
//
//	doc, err := xcproj.Unmarshal(data)
//	...
//	out, err := xcproj.Marshal(doc)
//
// Variants are described by tables of field rules: a field is
// required, optional, lenient about numbers written as strings, or
// holds references. Record entries outside the table are kept and
// written back in key order. Records of an isa without a variant
// decode to [Unknown] and are written back as read.
package xcproj
