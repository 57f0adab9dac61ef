package lookup

import "strings"

// DefaultPath is where the JD syskey component lives in a SYSTEM hive.
var DefaultPath = []string{"CurrentControlSet", "Control", "Lsa"}

// DefaultValue is the value read under DefaultPath.
const DefaultValue = "JD"

var rootAliases = []string{
	"HKEY_LOCAL_MACHINE", "HKLM",
	"HKEY_CLASSES_ROOT", "HKCR",
	"HKEY_CURRENT_USER", "HKCU",
	"HKEY_USERS", "HKU",
	"HKEY_CURRENT_CONFIG", "HKCC",
}

// SplitPath turns a registry path into key name segments. Either slash
// works as a separator, empty segments are dropped, and a leading root
// alias such as HKLM and a leading SYSTEM hive name are stripped:
//
//	SplitPath(`HKLM\SYSTEM\CurrentControlSet\Control\Lsa`)
//	// [CurrentControlSet Control Lsa]
func SplitPath(path string) []string {
	path = strings.ReplaceAll(path, "/", `\`)
	var out []string
	for _, p := range strings.Split(path, `\`) {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) > 0 && isRootAlias(out[0]) {
		out = out[1:]
	}
	if len(out) > 0 && strings.EqualFold(out[0], "SYSTEM") {
		out = out[1:]
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func isRootAlias(s string) bool {
	for _, a := range rootAliases {
		if strings.EqualFold(s, a) {
			return true
		}
	}
	return false
}

// JoinPath renders segments the way Windows does.
func JoinPath(segments []string) string {
	return strings.Join(segments, `\`)
}
