// Package ir provides the value tree used between project file text and the
// typed object model.
//
// # Overview
//
// All project documents, whether parsed from text or produced by the object
// encoder, are represented as ir.Node trees.  The tree has no identity of its
// own: it is derived fresh from the object model on encode and discarded after
// decode.
//
// # Node Types
//
//   - StringType: a leaf, held in Str as a CommentedString
//   - ArrayType: ordered list of nodes in Values
//   - ObjectType: ordered key-value pairs, Fields[i] is the key of Values[i]
//
// Object keys keep insertion order and may repeat; consumers decide what a
// repeated key means.  Get returns the last entry for a key.
//
// # Comments
//
// Keys and leaves are CommentedStrings, rendered as
//
//	1D60589F0D05DD5A006BFB54 /* main.c */ = {
//
// Comments never take part in equality: Compare, Equal and Hash look at
// strings only.  Leading and Trailing hold whole comment lines, such as the
// section markers between groups of records, and the Flow flag asks encoders
// for single-line rendering.  These are layout hints and are not compared
// either.
//
// # Creating Nodes
//
//	leaf := ir.FromString("PBXLegacyTarget")
//	ref := ir.FromCommented(ir.Commented("1D60589F0D05DD5A006BFB54", "Tool"))
//	arr := ir.FromStrings([]string{"a", "b"})
//	obj := ir.FromKeyVals([]ir.KeyVal{
//	    {Key: ir.Commented("isa", ""), Val: leaf},
//	})
//
// # Thread Safety
//
// Node structures are not thread-safe.
//
// # Related Packages
//
//   - github.com/signadot/xcproj/parse - Parses text into IR nodes
//   - github.com/signadot/xcproj/encode - Encodes IR nodes to text
//   - github.com/signadot/xcproj/xcproj - Typed objects over IR nodes
package ir
