package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/mickamy/entitymap/internal/gen"
)

var version = "dev"

func main() {
	typeName := flag.String("type", "", "entity type name (optional; all entities in $GOFILE if omitted)")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println("entitymap", version)
		return
	}

	goFile := os.Getenv("GOFILE")
	if goFile == "" {
		log.Fatal("GOFILE environment variable is not set (run via go:generate)")
	}

	infos, err := gen.Parse(goFile)
	if err != nil {
		log.Fatalf("parse: %v", err)
	}

	if *typeName != "" {
		infos = selectType(infos, *typeName)
		if len(infos) == 0 {
			log.Fatalf("no entity %s in %s", *typeName, goFile)
		}
	}
	if len(infos) == 0 {
		log.Fatalf("no entities in %s", goFile)
	}

	src, err := gen.RenderFile(infos)
	if err != nil {
		log.Fatalf("render: %v", err)
	}

	outPath := outputPath(goFile, *typeName)
	if err := os.WriteFile(outPath, src, 0o644); err != nil { //nolint:gosec // generated code should be world-readable
		log.Fatalf("write %s: %v", outPath, err)
	}

	fmt.Printf("entitymap: wrote %s\n", outPath)
}

func selectType(infos []*gen.StructInfo, name string) []*gen.StructInfo {
	for _, info := range infos {
		if info.Name == name {
			return []*gen.StructInfo{info}
		}
	}
	return nil
}

// outputPath returns "<type>_gen.go" for a single type, otherwise
// "<file>_gen.go", next to goFile.
func outputPath(goFile, typeName string) string {
	base := strings.TrimSuffix(filepath.Base(goFile), ".go")
	if typeName != "" {
		base = strings.ToLower(typeName)
	}
	return filepath.Join(filepath.Dir(goFile), base+"_gen.go")
}
