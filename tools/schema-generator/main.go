package main

import (
	"os"
	"path/filepath"

	"github.com/grovetools/viewpick/config"
	"github.com/grovetools/viewpick/logging"
)

func main() {
	log := logging.NewPrettyLogger()
	log.InfoPretty("Generating configuration schema")

	schemaBytes, err := config.GenerateSchema()
	if err != nil {
		log.ErrorPretty("Error generating schema", err)
		os.Exit(1)
	}

	outputDir := "schema/definitions"
	if len(os.Args) > 1 {
		outputDir = os.Args[1]
	}
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		log.ErrorPretty("Error creating schema directory", err)
		os.Exit(1)
	}

	outputPath := filepath.Join(outputDir, "viewpick.schema.json")
	if err := os.WriteFile(outputPath, schemaBytes, 0644); err != nil {
		log.ErrorPretty("Error writing schema file", err)
		os.Exit(1)
	}

	log.Path("Schema written", outputPath)
}
