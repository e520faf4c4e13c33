// Package sanitizer normalizes raw text input before it is validated.
//
// Transforms are plain func(string) string values, so they compose:
//
//	clean := sanitizer.Compose(sanitizer.StripControl, sanitizer.CollapseSpace)
//	name := clean(" Ada \t Lovelace\x00 ") // "Ada Lovelace"
package sanitizer
