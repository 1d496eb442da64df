// Package dateform renders dates through %-directive templates.
//
// A template is literal text mixed with directives of the form
//
//	%[flags][width]code
//
// where flags are single non-letter characters and width is a decimal pad
// width. A Dialect supplies the grammar for code names, the table of codes
// and the table of flags. Codes produce text, a number, or a nested token
// sequence (an alias) that is rendered recursively against the same date.
//
// Formatting never fails. Unknown codes render as nothing, unknown flags are
// ignored, and a '%' that does not start a directive is literal text. A pad
// width only takes effect through a pad flag, either given in the directive
// or the code's default flag.
package dateform
