// Package main prints the version to stamp into a build: the current
// tag of this repository, resolved the same way the tool itself
// resolves it, so the stamped binary and a runtime vtag agree.
package main

import (
	"context"
	"fmt"
	"time"

	"github.com/bitshepherds/vtag/internal/repo"
)

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	gitter := repo.NewCLIGitter(".", nil)
	tag, err := gitter.DescribeTag(ctx, repo.DescribeOptions{})
	if err != nil {
		fmt.Print("dev")
		return
	}
	fmt.Print(tag)
}
