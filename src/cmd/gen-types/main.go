// Command gen-types writes TypeScript declarations for the API payloads so the
// admin frontend can share them.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/coder/guts"
	"github.com/coder/guts/config"
)

var packages = []string{
	"github.com/shopworks/storefront-admin/src/internal/models",
	"github.com/shopworks/storefront-admin/src/internal/api",
}

func main() {
	out := flag.String("out", "", "Output file (default: stdout)")
	flag.Parse()

	output, err := generate()
	if err != nil {
		fmt.Fprintf(os.Stderr, "gen-types: %v\n", err)
		os.Exit(1)
	}

	if *out == "" {
		fmt.Print(output)
		return
	}
	if err := os.WriteFile(*out, []byte(output), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "gen-types: %v\n", err)
		os.Exit(1)
	}
}

func generate() (string, error) {
	golang, err := guts.NewGolangParser()
	if err != nil {
		return "", fmt.Errorf("new parser: %w", err)
	}

	golang.IncludeCustomDeclaration(config.StandardMappings())

	for _, pkg := range packages {
		if err := golang.IncludeGenerate(pkg); err != nil {
			return "", fmt.Errorf("include %s: %w", pkg, err)
		}
	}

	ts, err := golang.ToTypescript()
	if err != nil {
		return "", fmt.Errorf("convert to typescript: %w", err)
	}

	ts.ApplyMutations(
		config.EnumAsTypes,
		config.ExportTypes,
	)

	output, err := ts.Serialize()
	if err != nil {
		return "", fmt.Errorf("serialize: %w", err)
	}
	return output, nil
}
