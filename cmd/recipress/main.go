package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/recipress/recipress"
)

func main() {
	var (
		inputFile  string
		outputFile string
		templateID string
		photosDir  string
		letter     bool
		noPhotos   bool
		verbose    bool
	)

	flag.StringVar(&inputFile, "input", "", "Input recipe book JSON file path")
	flag.StringVar(&outputFile, "output", "", "Output PDF file path")
	flag.StringVar(&templateID, "template", "", "Override the book's template (minimalist, elegant, family, professional)")
	flag.StringVar(&photosDir, "photos", "", "Directory searched for photos stored as bare filenames")
	flag.BoolVar(&letter, "letter", false, "Use Letter pages instead of A4")
	flag.BoolVar(&noPhotos, "no-photos", false, "Skip photo acquisition and lay out text only")
	flag.BoolVar(&verbose, "verbose", false, "Enable verbose logging")
	flag.Parse()

	if inputFile == "" {
		fmt.Println("Error: input file is required")
		flag.Usage()
		os.Exit(1)
	}

	if outputFile == "" {
		ext := filepath.Ext(inputFile)
		outputFile = inputFile[:len(inputFile)-len(ext)] + ".pdf"
	}

	data, err := os.ReadFile(inputFile)
	if err != nil {
		fmt.Printf("Error reading input file: %v\n", err)
		os.Exit(1)
	}

	var book recipress.RecipeBook
	if err := json.Unmarshal(data, &book); err != nil {
		fmt.Printf("Error parsing recipe book: %v\n", err)
		os.Exit(1)
	}
	if templateID != "" {
		book.TemplateID = templateID
	}

	generator := recipress.New()

	if letter {
		generator = generator.WithOption(recipress.WithPageSizeLetter())
	}
	if noPhotos {
		generator = generator.WithOption(recipress.WithoutPhotos())
	}
	if photosDir != "" {
		generator = generator.AddResourcePath(photosDir)
	}
	if verbose {
		generator = generator.SetDebug(true)
	}

	result, err := generator.Generate(&book)
	if err != nil {
		fmt.Printf("Error generating book: %v\n", err)
		os.Exit(1)
	}
	for _, w := range result.Warnings {
		fmt.Printf("Warning: %s\n", w)
	}
	if err := os.WriteFile(outputFile, result.PDF, 0644); err != nil {
		fmt.Printf("Error writing output file: %v\n", err)
		os.Exit(1)
	}

	if verbose {
		fmt.Printf("Successfully generated %s (%d pages) from %s\n", outputFile, result.PageCount, inputFile)
	}
}
