// SPDX-License-Identifier: MPL-2.0

package main

import cmd "github.com/cqrsgen/cqrsgen/cmd/cqrsgen"

func main() {
	cmd.Execute()
}
