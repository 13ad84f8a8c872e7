package main

import "strings"

// deriveOutputPath replaces input's extension (the text after the last '.'
// that itself comes after the last path separator) with ".json"; if no such
// extension exists, ".json" is appended instead.
//
// Grounded on original_source/main.c's BEJ_decode: it compares the last '.'
// against the last '/' or '\\' to decide whether the dot belongs to the
// filename or a parent directory.
func deriveOutputPath(input string) string {
	lastDot := strings.LastIndexByte(input, '.')
	lastSlash := strings.LastIndexByte(input, '/')
	lastBackslash := strings.LastIndexByte(input, '\\')

	lastSeparator := lastSlash
	if lastBackslash > lastSeparator {
		lastSeparator = lastBackslash
	}

	if lastDot > lastSeparator {
		return input[:lastDot] + ".json"
	}
	return input + ".json"
}
