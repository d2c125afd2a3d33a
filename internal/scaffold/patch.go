// SPDX-License-Identifier: MPL-2.0

package scaffold

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	// importLineRE matches one "import ... from '...'" statement line.
	// Side-effect imports without a from clause are deliberately not
	// matched; the new import goes after the last module import.
	importLineRE = regexp.MustCompile(`(?m)^[ \t]*import\s+.+?\s+from\s+(?:'[^']*'|"[^"]*")\s*;?[ \t]*\r?$`)

	// providersRE captures the inner content of the first providers array,
	// up to the first closing bracket.
	providersRE = regexp.MustCompile(`providers\s*:\s*\[([^\]]*)\]`)
)

// applyModulePatch registers handlerName in a module file: an import of
// importSpec goes after the last existing import statement (or at the top
// when there is none) and the bare identifier is appended to the providers
// array. All pre-existing lines survive in their original order.
//
// A handler already present in the providers array leaves content
// untouched, so applying the patch twice equals applying it once. Content
// without a providers array fails with ErrNoProvidersArray.
func applyModulePatch(content, handlerName, importSpec string) (string, error) {
	loc := providersRE.FindStringSubmatchIndex(content)
	if loc == nil {
		return "", ErrNoProvidersArray
	}
	if containsIdentifier(content[loc[2]:loc[3]], handlerName) {
		return content, nil
	}

	patched := insertImportLine(content, handlerName, importSpec)

	// The import insertion shifted all offsets; find the array again.
	loc = providersRE.FindStringSubmatchIndex(patched)
	inner := patched[loc[2]:loc[3]]
	entry := appendProviderEntry(inner, handlerName, markerIndent(patched, loc[0]))
	return patched[:loc[2]] + entry + patched[loc[3]:], nil
}

// insertImportLine places the handler import after the last import
// statement, preserving every existing byte. Content without imports gets
// the new line prepended. An existing import of the same identifier is
// kept as is.
func insertImportLine(content, handlerName, importSpec string) string {
	line := fmt.Sprintf("import { %s } from '%s';", handlerName, importSpec)

	locs := importLineRE.FindAllStringIndex(content, -1)
	for _, l := range locs {
		if containsIdentifier(content[l[0]:l[1]], handlerName) {
			return content
		}
	}
	if len(locs) == 0 {
		if content == "" {
			return line + "\n"
		}
		return line + "\n" + content
	}
	end := locs[len(locs)-1][1]
	return content[:end] + "\n" + line + content[end:]
}

// appendProviderEntry rebuilds the providers array inner content with the
// new entry on its own line before the closing bracket. A trailing comma
// is added after the last pre-existing entry only when missing.
func appendProviderEntry(inner, entry, markerIndent string) string {
	base := strings.TrimRight(inner, " \t\r\n")
	bracketPad := inner[len(base):]
	if !strings.Contains(bracketPad, "\n") {
		// Inline array: give the closing bracket its own line.
		bracketPad = "\n" + markerIndent
	}

	comma := ""
	if base != "" && !strings.HasSuffix(base, ",") {
		comma = ","
	}
	return base + comma + "\n" + entryIndent(base, markerIndent) + entry + "," + bracketPad
}

// entryIndent matches the indentation of the last existing entry, falling
// back to one level below the providers marker.
func entryIndent(base, markerIndent string) string {
	lastLine := base[strings.LastIndexByte(base, '\n')+1:]
	trimmed := strings.TrimLeft(lastLine, " \t")
	if trimmed != "" && len(lastLine) > len(trimmed) {
		return lastLine[:len(lastLine)-len(trimmed)]
	}
	return markerIndent + "  "
}

// markerIndent returns the leading whitespace of the line holding the
// providers marker, or two spaces when the marker shares its line with
// other content.
func markerIndent(content string, markerStart int) string {
	lineStart := strings.LastIndexByte(content[:markerStart], '\n') + 1
	prefix := content[lineStart:markerStart]
	if strings.TrimLeft(prefix, " \t") != "" {
		return "  "
	}
	return prefix
}

// containsIdentifier reports whether ident occurs in s as a whole
// identifier rather than as a substring of a longer one.
func containsIdentifier(s, ident string) bool {
	re := regexp.MustCompile(`\b` + regexp.QuoteMeta(ident) + `\b`)
	return re.MatchString(s)
}
