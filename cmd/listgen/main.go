package main

import (
	"log"
	"os"
)

func main() {
	if err := newRootCommand(newApp(os.Stdout, os.Stderr)).Execute(); err != nil {
		log.Fatalf("error during command execution: %v", err)
	}
}
