// Package main provides the CLI entrypoint for lens-generator.
//
// lens-generator is a Go codegen tool that:
//   - Parses Go packages (go/types via x/tools) to model exported structs
//   - Reads generation targets from a lensgen.yaml config
//   - Emits one <type>_lenses.go file per struct, with a lens constructor
//     per exported field, built on the core lens package
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/davecgh/go-spew/spew"

	"lens-generator/internal/analyze"
	"lens-generator/internal/config"
	"lens-generator/internal/gen"
)

func main() {
	configPath := flag.String("config", "lensgen.yaml", "path to the generation config")
	debug := flag.Bool("debug", false, "dump the analyzed type graph to stderr")
	flag.Parse()

	if err := run(*configPath, *debug); err != nil {
		fmt.Fprintln(os.Stderr, "lens-generator:", err)
		os.Exit(1)
	}
}

func run(configPath string, debug bool) error {
	cfg, err := config.LoadFile(configPath)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config %s:\n%w", configPath, err)
	}

	for _, target := range cfg.Targets {
		if err := generateTarget(target, debug); err != nil {
			return fmt.Errorf("target %s: %w", target.Package, err)
		}
	}

	return nil
}

// generateTarget analyzes one target package and writes its lens files.
func generateTarget(target config.Target, debug bool) error {
	analyzer := analyze.NewAnalyzer()

	graph, err := analyzer.LoadPackages(target.Package)
	if err != nil {
		return err
	}

	if debug {
		spew.Fdump(os.Stderr, graph)
	}

	// A pattern may match several packages; generate for each in a
	// deterministic order.
	pkgPaths := make([]string, 0, len(graph.Packages))
	for pkgPath := range graph.Packages {
		pkgPaths = append(pkgPaths, pkgPath)
	}
	sort.Strings(pkgPaths)

	for _, pkgPath := range pkgPaths {
		if err := generatePackage(analyzer, graph.Packages[pkgPath], target); err != nil {
			return err
		}
	}

	return nil
}

func generatePackage(analyzer *analyze.Analyzer, pkg *analyze.PackageInfo, target config.Target) error {
	structs, err := selectStructs(analyzer, pkg, target.Types)
	if err != nil {
		return err
	}

	if len(structs) == 0 {
		fmt.Printf("no structs to generate for %s\n", pkg.Path)
		return nil
	}

	pkgName := target.OutputPackage
	if pkgName == "" {
		pkgName = pkg.Name
	}

	generator := gen.NewGenerator(gen.Config{
		PackageName:      pkgName,
		SourcePkgPath:    pkg.Path,
		SamePackage:      pkgName == pkg.Name,
		GenerateComments: true,
	})

	files, err := generator.Generate(structs)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(target.OutputDir, 0755); err != nil {
		return fmt.Errorf("creating output dir: %w", err)
	}

	for _, file := range files {
		path := filepath.Join(target.OutputDir, file.Filename)
		if err := os.WriteFile(path, file.Content, 0644); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}

		fmt.Printf("wrote %s\n", path)
	}

	return nil
}

// selectStructs returns the structs to generate lenses for: the ones named
// in the config, or every exported struct when none are named.
func selectStructs(analyzer *analyze.Analyzer, pkg *analyze.PackageInfo, typeNames []string) ([]*analyze.TypeInfo, error) {
	if len(typeNames) == 0 {
		return analyzer.StructsIn(pkg.Path)
	}

	structs := make([]*analyze.TypeInfo, 0, len(typeNames))
	for _, name := range typeNames {
		st, err := analyzer.GetStruct(pkg.Path, name)
		if err != nil {
			return nil, err
		}

		structs = append(structs, st)
	}

	return structs, nil
}
