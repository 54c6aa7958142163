// Package input reads the line and token oriented citypaths input protocol.
//
// The stream mixes two kinds of items:
//
//   - Tokens: whitespace-separated words (integers, query city names). Reading
//     a token skips any whitespace, newlines included.
//   - Lines: a city display name occupies the whole line after the previous
//     item, so names may contain spaces.
//
// [Reader] tracks the current line number. Every error it returns is a
// MALFORMED_INPUT error from the errors package carrying that line, so the
// CLI can point at the offending input.
package input
