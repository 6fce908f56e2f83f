// Encoding Converter v1.2.0
// Copyright (c) Encoding Converter developers
// Released under GPL-3.0-only
//
// Encoding Converter rewrites text files from their detected character
// encoding into a chosen target encoding:
//   - single file or recursive folder mode with a case-insensitive name mask
//   - detection with ICU-derived recognizers, decoding via golang.org/x/text
//   - optional <name>_backup copies, verified with BLAKE2b-256 on request
//
// Build modes:
//   - Default build: GUI + CLI (requires graphics libraries)
//   - CLI-only build: go build -tags cli (no graphics dependencies)

package main

// version is the application version displayed in the window title.
const version = "v1.2.0"

func main() {
	run()
}
