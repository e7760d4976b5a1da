package main

import (
	"fmt"
	"os"

	"github.com/solarlune/quat/internal/cli"
	"k8s.io/klog/v2"
)

func main() {
	defer klog.Flush()

	if err := cli.NewCommand(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		klog.Flush()
		os.Exit(1)
	}
}
