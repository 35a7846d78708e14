// neograph serves and prints transaction graphs stored in Neo4j.
package main

import (
	"fmt"
	"os"

	"github.com/saulfrancisco-ruizacevedo/go-neograph/internal/config"
)

func main() {
	config.LoadEnv()

	cli := NewCLI()
	if err := cli.Execute(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
