// SPDX-License-Identifier: MPL-2.0

package platform

import "strings"

// WindowsReservedNames lists the device names Windows refuses as file names,
// regardless of extension. A generated artifact named after one of these
// would be uncreatable on Windows checkouts.
var WindowsReservedNames = map[string]bool{
	"CON": true, "PRN": true, "AUX": true, "NUL": true,
	"COM1": true, "COM2": true, "COM3": true, "COM4": true, "COM5": true,
	"COM6": true, "COM7": true, "COM8": true, "COM9": true,
	"LPT1": true, "LPT2": true, "LPT3": true, "LPT4": true, "LPT5": true,
	"LPT6": true, "LPT7": true, "LPT8": true, "LPT9": true,
}

// IsWindowsReservedName reports whether name collides with a Windows reserved
// device name. The comparison is case-insensitive and ignores everything after
// the first dot, because Windows reserves "con.txt" just like "con".
func IsWindowsReservedName(name string) bool {
	base := name
	if idx := strings.IndexByte(base, '.'); idx >= 0 {
		base = base[:idx]
	}
	return WindowsReservedNames[strings.ToUpper(base)]
}
