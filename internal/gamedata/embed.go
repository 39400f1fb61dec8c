// Package gamedata provides embedded game data and utilities for loading it.
package gamedata

import "embed"

// dataFS embeds the content tables and terminal art at build time.
//
//go:embed *.json art/*.txt
var dataFS embed.FS
