// Package token provides tokenization support for project files.
//
// [Tokenize] splits a document into strings, comments and punctuation, with
// positions.  Quoting helpers ([NeedsQuote], [Quote], [QuoteJSON]) produce
// strings the tokenizer reads back unchanged.
package token
