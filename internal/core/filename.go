package core

import (
	"path/filepath"
	"strings"

	"github.com/JonMunkholm/uniseparate/internal/usv"
)

// OutputFileName derives the name of a converted file. The last extension of
// name is replaced by target's; a name without one gets it appended, and an
// empty name becomes "untitled".
func OutputFileName(name string, target usv.Format) string {
	base := filepath.Base(strings.TrimSpace(name))
	if base == "." || base == string(filepath.Separator) {
		base = ""
	}

	ext := target.Ext()
	if base == "" {
		return "untitled" + ext
	}

	if old := filepath.Ext(base); old != "" && old != base {
		base = strings.TrimSuffix(base, old)
	}
	return base + ext
}
