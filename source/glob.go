package source

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Expand evaluates arg as a glob pattern, including "doublestar" patterns
// such as `**/*.iso`, and returns the matching regular files sorted
// alphabetically. Arguments without glob meta characters, the Stdin token
// and URLs pass through unchanged. A pattern error or a pattern with no
// match also passes the argument through unchanged, leaving the failure to
// surface when the source is opened.
func Expand(arg string) []string {
	if arg == Stdin || (Source{ID: arg}).IsRemote() || !strings.ContainsAny(arg, "*?[{") {
		return []string{arg}
	}

	base, pattern := doublestar.SplitPattern(arg)
	matches, err := doublestar.Glob(os.DirFS(base), pattern)
	if err != nil || len(matches) == 0 {
		return []string{arg}
	}

	var files []string
	for _, match := range matches {
		path := filepath.Join(base, match)
		info, err := os.Stat(path)
		if err != nil || info.IsDir() {
			continue
		}
		files = append(files, path)
	}

	if len(files) == 0 {
		return []string{arg}
	}

	sort.Strings(files)

	return files
}
