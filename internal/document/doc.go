// Package document models QMD documentation files as ordered segments of
// translatable prose and verbatim content. It splits a raw document into
// frontmatter, prose, code fence and verbatim segments, derives source and
// target languages from the filename convention (name.qmd is English,
// name.zh.qmd is Chinese), and reassembles translated output so that all
// non-translatable bytes are preserved exactly.
package document
