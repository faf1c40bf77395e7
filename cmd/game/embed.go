package main

import "embed"

// gameFS carries the tuning files and the art so the binary runs from
// any directory.
//
//go:embed configs assets
var gameFS embed.FS
