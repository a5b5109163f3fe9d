package ir

// CommentedString is a string with an optional trailing annotation, as in
//
//	1D60589F0D05DD5A006BFB54 /* main.c */
//
// An empty Comment means there is no annotation.  Comments are cosmetic:
// equality and hashing consider String only.
type CommentedString struct {
	String  string
	Comment string
}

func Commented(s, comment string) CommentedString {
	return CommentedString{String: s, Comment: comment}
}

func (c CommentedString) HasComment() bool {
	return c.Comment != ""
}

// Key returns the value used to identify c in maps.
func (c CommentedString) Key() string {
	return c.String
}

func (c CommentedString) Equal(o CommentedString) bool {
	return c.String == o.String
}

// WithComment returns a copy of c annotated with comment.
func (c CommentedString) WithComment(comment string) CommentedString {
	c.Comment = comment
	return c
}
