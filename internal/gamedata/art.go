package gamedata

import (
	"strings"
	"sync"
)

var (
	artMu    sync.Mutex
	artCache = map[string][]string{}
)

// Art returns the terminal art for key, one string per row.
// The boolean is false when no art exists for the key; callers fall back to
// a placeholder.
func Art(key string) ([]string, bool) {
	if key == "" {
		return nil, false
	}

	artMu.Lock()
	defer artMu.Unlock()

	if rows, ok := artCache[key]; ok {
		return rows, rows != nil
	}

	content, err := dataFS.ReadFile("art/" + key + ".txt")
	if err != nil {
		artCache[key] = nil
		return nil, false
	}

	rows := strings.Split(strings.TrimRight(string(content), "\n"), "\n")
	artCache[key] = rows
	return rows, true
}
