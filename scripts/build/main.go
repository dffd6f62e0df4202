// Package main builds the vtag binary with the resolved version
// stamped into it.
package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

func main() {
	binaryName := "vtag"
	if runtime.GOOS == "windows" {
		binaryName += ".exe"
	}

	version := resolveVersion()
	ldflags := fmt.Sprintf("-X github.com/bitshepherds/vtag/internal/app.Version=%s", version)

	// Ensure bin directory exists
	if err := os.MkdirAll("bin", 0o755); err != nil {
		fmt.Printf("❌ Failed to create bin directory: %v\n", err)
		os.Exit(1)
	}

	outputPath := filepath.Join("bin", binaryName)
	fmt.Printf("Building %s...\n", version)

	cmd := exec.Command("go", "build", "-ldflags", ldflags, "-o", outputPath, "./cmd/vtag")
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		fmt.Printf("❌ Build failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✅ Build complete: %s\n", outputPath)
}

// resolveVersion asks scripts/version for the tag to stamp. An
// unresolvable version still produces a usable dev build.
func resolveVersion() string {
	out, err := exec.Command("go", "run", "./scripts/version").Output()
	version := strings.TrimSpace(string(out))
	if err != nil || version == "" {
		return "dev"
	}
	return version
}
