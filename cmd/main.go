package main

import (
	"os"

	"k8s.io/klog/v2"

	"github.com/koskimas/deepmatch/internal/cmd"
)

func main() {
	defer klog.Flush()

	wd, err := os.Getwd()
	if err != nil {
		klog.ErrorS(err, "Failed to determine working directory")
		os.Exit(1)
	}

	s, err := cmd.LoadSettings(wd)
	if err != nil {
		klog.ErrorS(err, "Failed to load settings")
		os.Exit(1)
	}

	if err := cmd.NewRootCommand(s, os.Stdout).Execute(); err != nil {
		klog.ErrorS(err, "Command failed")
		klog.Flush()
		os.Exit(1)
	}
}
