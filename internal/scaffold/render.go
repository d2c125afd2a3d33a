// SPDX-License-Identifier: MPL-2.0

package scaffold

import (
	"regexp"

	"github.com/cqrsgen/cqrsgen/pkg/naming"
)

// tokenRE matches the EJS-style name-transform tokens the templates use,
// e.g. "<%= classify(name) %>".
var tokenRE = regexp.MustCompile(`<%=\s*([a-zA-Z]+)\(name\)\s*%>`)

// importPathToken is substituted with the computed class import specifier
// before name-token rendering.
const importPathToken = "<%= importPath %>"

// renderName expands every recognized name-transform token in template
// with the transform applied to name. Tokens naming an unknown transform
// and malformed tokens pass through untouched.
func renderName(template, name string) string {
	return tokenRE.ReplaceAllStringFunc(template, func(token string) string {
		switch tokenRE.FindStringSubmatch(token)[1] {
		case "classify":
			return naming.Classify(name)
		case "dasherize":
			return naming.Dasherize(name)
		case "camelize":
			return naming.Camelize(name)
		default:
			return token
		}
	})
}
