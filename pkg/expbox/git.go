package expbox

import (
	"os/exec"
	"strings"
)

// gitCommit returns the HEAD commit hash of the work tree containing dir.
// Best effort: an empty string when git is absent or dir is not inside a
// repository. Overridable in tests.
var gitCommit = func(dir string) string {
	out, err := exec.Command("git", "-C", dir, "rev-parse", "HEAD").Output()
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(out))
}
