// SPDX-License-Identifier: MPL-2.0

// Package vpath provides helpers for the virtual paths the generator
// operates on. Virtual paths are slash-delimited and relative to the
// project root on every platform; the empty string is the root itself.
// Centralizing the split/join rules here keeps the layout, locator and
// import-path logic agreeing on what a segment is.
package vpath

import "strings"

// Rel computes the relative import specifier from the directory fromDir to
// the path to. The shared leading segments are dropped, every remaining
// fromDir segment becomes a "..", and the remaining target segments follow.
// Results that do not climb out of fromDir carry a "./" prefix, so a target
// in fromDir itself comes back as "./<basename>". Trailing slashes on
// fromDir are ignored. Malformed inputs degrade to a best-effort result,
// never a panic.
func Rel(fromDir, to string) string {
	from := segments(fromDir)
	target := segments(to)

	shared := 0
	for shared < len(from) && shared < len(target) && from[shared] == target[shared] {
		shared++
	}

	parts := make([]string, 0, len(from)-shared+len(target)-shared)
	for range from[shared:] {
		parts = append(parts, "..")
	}
	parts = append(parts, target[shared:]...)

	rel := strings.Join(parts, "/")
	if !strings.HasPrefix(rel, "..") {
		rel = "./" + rel
	}
	return rel
}

// EnsureTrailingSlash appends a "/" to dir when one is missing. The empty
// string (the project root) is returned unchanged.
func EnsureTrailingSlash(dir string) string {
	if dir == "" || strings.HasSuffix(dir, "/") {
		return dir
	}
	return dir + "/"
}

// Parent returns the directory one level above p, or "" when p has at most
// one segment. Trailing slashes are ignored, so Parent("src/users/") is
// "src".
func Parent(p string) string {
	segs := segments(p)
	if len(segs) <= 1 {
		return ""
	}
	return strings.Join(segs[:len(segs)-1], "/")
}

// Base returns the final segment of p, or "" for the root.
func Base(p string) string {
	segs := segments(p)
	if len(segs) == 0 {
		return ""
	}
	return segs[len(segs)-1]
}

// Join joins any number of path fragments into a single normalized virtual
// path, discarding empty fragments and redundant separators.
func Join(fragments ...string) string {
	var segs []string
	for _, f := range fragments {
		segs = append(segs, segments(f)...)
	}
	return strings.Join(segs, "/")
}

// TrimExt removes the final extension from the basename of p, turning
// "src/impl/create-user.command.ts" into "src/impl/create-user.command".
// Paths whose basename has no extension are returned unchanged.
func TrimExt(p string) string {
	base := Base(p)
	dot := strings.LastIndex(base, ".")
	if dot <= 0 {
		return p
	}
	return p[:len(p)-(len(base)-dot)]
}

// segments splits p into its meaningful path segments, dropping empty
// fragments and "." components.
func segments(p string) []string {
	var segs []string
	for _, s := range strings.Split(p, "/") {
		if s == "" || s == "." {
			continue
		}
		segs = append(segs, s)
	}
	return segs
}
