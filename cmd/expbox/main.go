// Package main provides the expbox CLI, a thin layer over the lifecycle API
// in pkg/expbox for quick experiments and scripting.
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
