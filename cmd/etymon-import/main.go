package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/cognicore/etymon/pkg/etymon/dataset"
)

func main() {
	var (
		dbPath = flag.String("db", "etymology_db.csv", "Word database CSV")
		inPath = flag.String("in", "", "CSV file to merge (required)")
		mode   = flag.String("mode", "append", "Merge mode: append or replace")
	)
	flag.Parse()

	if *inPath == "" {
		log.Fatal("--in required")
	}

	var mergeMode dataset.MergeMode
	switch *mode {
	case "append":
		mergeMode = dataset.Append
	case "replace":
		mergeMode = dataset.Replace
	default:
		log.Fatalf("unknown merge mode %q (want append or replace)", *mode)
	}

	existing, err := dataset.Load(*dbPath)
	if err != nil {
		log.Fatal(err)
	}

	incoming, err := dataset.Load(*inPath)
	if err != nil {
		log.Fatal(err)
	}
	if incoming.Len() == 0 {
		log.Fatalf("no usable rows in %s", *inPath)
	}

	merged := existing.Merge(incoming, mergeMode)
	if err := dataset.Save(*dbPath, merged); err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Merged %d rows (%s). Database now has %d entries.\n",
		incoming.Len(), *mode, merged.Len())
}
