package visuals

import "io/fs"
import "os"
import "path/filepath"
import "sort"
import "strings"

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// normalizeExts lowercases the extension filter and guarantees leading dots.
func normalizeExts(exts []string) map[string]bool {
	set := make(map[string]bool, len(exts))
	for _, e := range exts {
		e = strings.ToLower(strings.TrimSpace(e))
		if e == "" {
			continue
		}
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		set[e] = true
	}
	return set
}

// listAudioFiles walks root and returns matching files sorted, so batch
// runs are deterministic.
func listAudioFiles(root string, exts []string) ([]string, error) {
	set := normalizeExts(exts)
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if set[strings.ToLower(filepath.Ext(path))] {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}
