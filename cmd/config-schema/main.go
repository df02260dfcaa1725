package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/janhq/chat-server/internal/config"
)

func main() {
	outputDir := flag.String("output", "config", "directory the schema is written to")
	flag.Parse()

	path, err := config.WriteJSONSchema(*outputDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "generate schema: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("✓ Generated %s\n", path)
}
