// Package main provides a script to clean up build and test artefacts.
package main

import (
	"fmt"
	"os"
	"path/filepath"
)

func main() {
	for _, dir := range []string{"bin", "dist"} {
		removePath(dir, os.RemoveAll)
	}

	files := []string{".vtag.log"}
	for _, pattern := range []string{"coverage*", "*.out", "*.test", "*.coverprofile"} {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			fmt.Printf("❌ Failed to glob pattern %s: %v\n", pattern, err)
			continue
		}
		files = append(files, matches...)
	}

	for _, file := range files {
		removePath(file, os.Remove)
	}
}

func removePath(path string, remove func(string) error) {
	if err := remove(path); err != nil {
		if os.IsNotExist(err) {
			return
		}
		fmt.Printf("❌ Failed to remove %s: %v\n", path, err)
		return
	}
	fmt.Printf("✅ Removed %s\n", path)
}
