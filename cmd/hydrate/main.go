package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"letter-drafting-be/pkg/letterdoc"
)

// Developer tool: hydrates a serialized letter fragment against a draft
// fixture and prints the result, without a database or a running server.
//
// Usage:
//
//	go run ./cmd/hydrate -html section.html -draft fixture.json
func main() {
	htmlPath := flag.String("html", "", "path to the serialized HTML fragment")
	draftPath := flag.String("draft", "", "path to the draft fixture JSON")
	sealURL := flag.String("seal", "/uploads/dhs-seal.png", "seal image URL")
	flag.Parse()

	if *htmlPath == "" || *draftPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	raw, err := os.ReadFile(*htmlPath)
	if err != nil {
		log.Fatalf("Error: failed to read HTML fragment: %v", err)
	}

	fixture, err := os.ReadFile(*draftPath)
	if err != nil {
		log.Fatalf("Error: failed to read draft fixture: %v", err)
	}

	var draft letterdoc.Draft
	if err := json.Unmarshal(fixture, &draft); err != nil {
		log.Fatalf("Error: failed to parse draft fixture: %v", err)
	}

	engine := letterdoc.NewEngine(*sealURL)
	out, err := engine.HydrateHTML(string(raw), &draft)
	if err != nil {
		log.Fatalf("Error: hydration failed: %v", err)
	}

	fmt.Println(out)
}
