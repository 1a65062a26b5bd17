package main

import (
	"fmt"
	"os"

	"github.com/coopflow/coopflow/internal/demo"
)

func main() {
	if err := demo.NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
