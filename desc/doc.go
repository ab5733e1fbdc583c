// Package desc implements the format-description mini-language.
//
// This package contains:
//   - Byte-level cursor with snapshot/restore
//   - Static component and modifier tables
//   - Recursive descent grammar compiler (versions 1 and 2)
//   - The compiled format item tree shared by both interpreters
package desc
