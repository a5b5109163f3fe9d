// Package format names the serializations of a project document.
//
// # Usage
//
//	f, err := format.ParseFormat("json")
//
// PBXFormat is the commented old-style property list the project file is
// normally stored in.  JSONFormat is the same value tree written as JSON,
// which the consuming tool also reads; it carries no comments.
//
// # Related Packages
//
//   - github.com/signadot/xcproj/parse - Parse text to IR
//   - github.com/signadot/xcproj/encode - Encode IR to text
package format
