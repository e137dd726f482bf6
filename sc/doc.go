// Package sc reads and writes storycode, the line-oriented markup used
// for presentation files.
//
// A tagged block is written \name[options]{contents}. Both the options
// and the contents are optional. Inside contents further blocks may
// nest. A backslash escapes \, { and }. At any level a newline ends a
// paragraph.
package sc
