package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/cognicore/etymon/pkg/etymon"
	"github.com/cognicore/etymon/pkg/etymon/config"
	"github.com/cognicore/etymon/pkg/etymon/dataset"
	"github.com/cognicore/etymon/pkg/etymon/game"
	"github.com/cognicore/etymon/pkg/etymon/roots"
	"github.com/cognicore/etymon/pkg/etymon/store/sqlite"
	"github.com/cognicore/etymon/pkg/etymon/wikt"
)

func main() {
	var (
		configPath = flag.String("config", "", "App config file (optional)")
		dbPath     = flag.String("db", "etymology_db.csv", "Word database CSV")
		rootsPath  = flag.String("roots", "", "Extra roots YAML (optional)")
		cachePath  = flag.String("cache", "", "SQLite lookup cache (optional)")
		apiURL     = flag.String("api", wikt.DefaultBaseURL, "Dictionary API endpoint")
		online     = flag.Bool("online", false, "Try remote lookup on local misses")
		word       = flag.String("word", "", "One-shot lookup (non-interactive mode)")
		timeout    = flag.Duration("timeout", wikt.DefaultTimeout, "Per-call remote timeout")
	)
	flag.Parse()

	ctx := context.Background()

	if *configPath != "" {
		app, err := config.Load(*configPath)
		if err != nil {
			log.Fatal(err)
		}
		applyConfig(app, dbPath, rootsPath, cachePath, online, timeout)
	}

	engine, cleanup, err := buildEngine(ctx, *dbPath, *rootsPath, *cachePath, *apiURL, *timeout)
	if err != nil {
		log.Fatal(err)
	}
	defer cleanup()

	// One-shot lookup mode
	if *word != "" {
		if err := resolveAndPrint(ctx, engine, *word, *online); err != nil {
			log.Fatal(err)
		}
		return
	}

	runInteractive(ctx, engine, *dbPath, *online)
}

// applyConfig fills flag values from the config file; flags passed on
// the command line keep their values only when the config leaves the
// field unset.
func applyConfig(app *config.App, dbPath, rootsPath, cachePath *string, online *bool, timeout *time.Duration) {
	if app.DatasetPath != "" {
		*dbPath = app.DatasetPath
	}
	if app.RootsPath != "" {
		*rootsPath = app.RootsPath
	}
	if app.CachePath != "" {
		*cachePath = app.CachePath
	}
	if app.Online {
		*online = true
	}
	if app.TimeoutSeconds > 0 {
		*timeout = time.Duration(app.TimeoutSeconds) * time.Second
	}
}

// buildEngine wires the engine from file paths. The returned cleanup
// closes the cache store.
func buildEngine(ctx context.Context, dbPath, rootsPath, cachePath, apiURL string, timeout time.Duration) (*etymon.Etymon, func(), error) {
	ds, err := dataset.Load(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("load dataset: %w", err)
	}

	lexicon := roots.Default()
	if rootsPath != "" {
		extra, err := config.LoadRoots(rootsPath)
		if err != nil {
			return nil, nil, fmt.Errorf("load roots: %w", err)
		}
		lexicon, err = roots.DefaultWith(extra)
		if err != nil {
			return nil, nil, fmt.Errorf("build lexicon: %w", err)
		}
	}

	opts := etymon.Options{
		Dataset: ds,
		Lexicon: lexicon,
		Remote: &wikt.Resolver{Client: &wikt.Client{
			BaseURL:    apiURL,
			HTTPClient: &http.Client{Timeout: timeout},
		}},
	}

	cleanup := func() {}
	if cachePath != "" {
		cache, err := sqlite.Open(ctx, cachePath)
		if err != nil {
			return nil, nil, fmt.Errorf("open cache: %w", err)
		}
		opts.Cache = cache
		cleanup = func() { cache.Close() }
	}

	return etymon.New(opts), cleanup, nil
}

func runInteractive(ctx context.Context, engine *etymon.Etymon, dbPath string, online bool) {
	session := game.NewSession(engine.Lexicon())

	fmt.Println("===========================================")
	fmt.Println("  Etymon CLI")
	fmt.Println("  Offline-first word origins")
	fmt.Println("===========================================")
	fmt.Println()
	fmt.Println("Type a word to look it up, or a command:")
	fmt.Println("  /guess <root>          play a root-guessing round")
	fmt.Println("  /score                 show the session score")
	fmt.Println("  /tag <tag>             list dataset words tagged in notes")
	fmt.Println("  /import <file> <mode>  merge a CSV (mode: append|replace)")
	fmt.Println("  /online                toggle remote lookup")
	fmt.Println("(Ctrl+D to exit)")
	fmt.Println()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "/") {
			online = runCommand(ctx, engine, session, dbPath, online, line)
			continue
		}

		if err := resolveAndPrint(ctx, engine, line, online); err != nil {
			fmt.Println("Error:", err)
		}
	}

	fmt.Println("\nGoodbye!")
}

// runCommand handles one slash command and returns the (possibly
// toggled) online flag.
func runCommand(ctx context.Context, engine *etymon.Etymon, session *game.Session, dbPath string, online bool, line string) bool {
	fields := strings.Fields(line)
	switch fields[0] {
	case "/guess":
		if len(fields) < 2 {
			fmt.Println("Usage: /guess <root>")
			return online
		}
		res := session.Check(fields[1])
		if res.Correct {
			fmt.Printf("Nice! %s -> %s\n", res.Guess, res.Explanation)
		} else {
			fmt.Printf("Good try! %q isn't in the cheat sheet. Try: pre, auto, geo, port, photo...\n", res.Guess)
		}
		fmt.Printf("Score: %d (rounds played: %d)\n", session.Score(), session.Rounds())

	case "/score":
		fmt.Printf("Session %s - score %d over %d rounds\n", session.ID(), session.Score(), session.Rounds())

	case "/tag":
		if len(fields) < 2 {
			fmt.Println("Usage: /tag <tag>")
			return online
		}
		words := engine.Dataset().FilterByNote(fields[1])
		if len(words) == 0 {
			fmt.Println("No words with that tag.")
			return online
		}
		for _, w := range words {
			fmt.Println("  -", w)
		}

	case "/import":
		if len(fields) < 3 {
			fmt.Println("Usage: /import <file> append|replace")
			return online
		}
		if err := importCSV(engine, dbPath, fields[1], fields[2]); err != nil {
			fmt.Println("Import failed:", err)
		}

	case "/online":
		online = !online
		if online {
			fmt.Println("Remote lookup enabled.")
		} else {
			fmt.Println("Remote lookup disabled.")
		}

	default:
		fmt.Println("Unknown command:", fields[0])
	}
	return online
}

// importCSV merges an uploaded CSV into the dataset and persists it.
func importCSV(engine *etymon.Etymon, dbPath, inPath, modeName string) error {
	var mode dataset.MergeMode
	switch modeName {
	case "append":
		mode = dataset.Append
	case "replace":
		mode = dataset.Replace
	default:
		return fmt.Errorf("unknown merge mode %q", modeName)
	}

	incoming, err := dataset.Load(inPath)
	if err != nil {
		return err
	}

	merged := engine.Dataset().Merge(incoming, mode)
	if err := dataset.Save(dbPath, merged); err != nil {
		return err
	}
	engine.SetDataset(merged)

	fmt.Printf("Imported %d rows. Database now has %d entries.\n", incoming.Len(), merged.Len())
	return nil
}

func resolveAndPrint(ctx context.Context, engine *etymon.Etymon, word string, online bool) error {
	res, err := engine.Resolve(ctx, word, online)
	if err != nil {
		return err
	}

	switch res.Outcome {
	case etymon.OutcomeFoundLocal:
		fmt.Println("Found in local database.")
		fmt.Printf("%s - %s\n", res.Entry.Word, res.Entry.Etymology)
		if res.Entry.Notes != "" {
			fmt.Println("Notes:", res.Entry.Notes)
		}

	case etymon.OutcomeHeuristicOnly:
		fmt.Println("Not in local database.")
		printRoots(engine, res.Roots)

	case etymon.OutcomeRemoteFound:
		printRoots(engine, res.Roots)
		if res.FromCache {
			fmt.Println("(answered from lookup cache)")
		}
		if !strings.EqualFold(res.Title, res.Word) {
			fmt.Printf("Showing results for %q\n", res.Title)
		}
		if len(res.Sections) == 0 {
			fmt.Println("No explicit Etymology section found on the page.")
			return nil
		}
		fmt.Printf("Found %d etymology section(s) online.\n", len(res.Sections))
		for _, sec := range res.Sections {
			fmt.Printf("\n%s\n%s\n", sec.Heading, sec.Body)
		}

	case etymon.OutcomeRemoteNotFound:
		printRoots(engine, res.Roots)
		fmt.Println("Online lookup failed (network/firewall or page not found).")
	}
	return nil
}

func printRoots(engine *etymon.Etymon, matches []string) {
	if len(matches) == 0 {
		fmt.Println("No obvious roots found. Try prefixes/suffixes like pre-, re-, -ology, -ist.")
		return
	}
	fmt.Println("Hints from common roots (offline):")
	for _, r := range matches {
		explanation, _ := engine.Lexicon().Explain(r)
		fmt.Printf("  - %s - %s\n", r, explanation)
	}
}
