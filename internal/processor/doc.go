// Package processor contains the core pipeline for translating QMD files.
// For each input it checks the exclusion list, loads and segments the
// document, translates the translatable segments, reassembles the output and
// writes the counterpart file. A failed file leaves no output behind.
package processor
