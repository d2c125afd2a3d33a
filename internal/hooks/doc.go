// SPDX-License-Identifier: MPL-2.0

// Package hooks runs the configured post-generation shell command. The
// command executes in mvdan.cc/sh's portable interpreter rather than the
// system shell, so hooks behave the same on every platform and need no
// /bin/sh on Windows checkouts.
package hooks
