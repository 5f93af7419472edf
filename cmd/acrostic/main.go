/*
Package main implements the acrostic command-line driver.

acrostic builds the offline artifacts (dictionary, unary/binary tries, the
quote corpus manifest) and drives individual puzzles through their stage
files:

	acrostic global {quotes|dict|trie|site|turtle}
	acrostic puzzle {quote|letters|answers|chat} <ids>
	acrostic serve

main() only parses arguments and calls into pkg/index, pkg/dictionary,
pkg/trietable, pkg/puzzle and pkg/server; it implements no algorithmic
logic of its own.
*/
package main

import (
	"encoding/csv"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"acrostic/internal/cli"
	"acrostic/internal/logger"
	"acrostic/internal/utils"
	"acrostic/pkg/config"
	"acrostic/pkg/dictionary"
	"acrostic/pkg/index"
	"acrostic/pkg/puzzle"
	"acrostic/pkg/search"
	"acrostic/pkg/server"
	"acrostic/pkg/trietable"

	"github.com/charmbracelet/log"
)

const (
	version = "0.1.0"
	appName = "acrostic"
	repo    = "https://github.com/acrostic/acrostic"
)

// sigHandler exits cleanly on Ctrl+C/SIGTERM.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

func main() {
	sigHandler()

	showVersion := flag.Bool("version", false, "Show current version")
	configFile := flag.String("config", "", "Path to custom config.toml file")
	buildDir := flag.String("build", "build/", "Directory holding build/ artifacts (dict.dat, unary/, binary/, quotes.json)")
	stageDir := flag.String("stages", "puzzles/", "Directory holding per-puzzle stage files")
	corpusFile := flag.String("corpus", "", "Path to a quote,source CSV corpus (for 'global quotes')")
	wordsFile := flag.String("words", "", "Path to a word<TAB>frequency source text file (for 'global dict')")
	maxWords := flag.Int("max-words", 0, "Cap on words loaded from the source text (0 = unlimited)")
	debugMode := flag.Bool("v", false, "Toggle verbose mode")
	baseSeed := flag.Uint64("seed", 1, "Local RNG seed for 'puzzle answers', combined with each puzzle's id")

	flag.Parse()

	if *showVersion {
		cli.PrintVersion(appName, version, repo)
		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.InfoLevel)
	}

	args := flag.Args()
	if len(args) == 0 {
		cli.Usage(appName)
		os.Exit(1)
	}

	clog := logger.Default(appName)
	cfg, cfgPath := config.LoadWithPriority(*configFile)
	clog.Debugf("using config at %q", cfgPath)

	resolvedBuildDir := *buildDir
	if !utils.FileExists(resolvedBuildDir) {
		if pr, err := utils.NewPathResolver(); err == nil && utils.FileExists(pr.DataDir()) {
			clog.Debugf("build dir %q not found, falling back to data dir %q", resolvedBuildDir, pr.DataDir())
			resolvedBuildDir = pr.DataDir()
		}
	}

	var err error
	switch args[0] {
	case "global":
		err = runGlobal(args[1:], resolvedBuildDir, *stageDir, *corpusFile, *wordsFile, *maxWords, cfg)
	case "puzzle":
		err = runPuzzle(args[1:], resolvedBuildDir, *stageDir, *baseSeed, cfg)
	case "serve":
		err = runServe(resolvedBuildDir, cfg)
	default:
		cli.Usage(appName)
		os.Exit(1)
	}

	if err != nil {
		log.Fatalf("%v", err)
		os.Exit(1)
	}
}

func runGlobal(args []string, buildDir, stageDir, corpusFile, wordsFile string, maxWords int, cfg *config.Config) error {
	if len(args) == 0 {
		return fmt.Errorf("global: expected one of quotes|dict|trie|site|turtle")
	}
	if err := os.MkdirAll(buildDir, 0755); err != nil {
		return fmt.Errorf("global: creating build dir: %w", err)
	}

	switch args[0] {
	case "quotes":
		return buildQuotes(buildDir, stageDir, corpusFile)
	case "dict":
		return buildDict(buildDir, wordsFile, maxWords)
	case "trie":
		return buildTrie(buildDir, &cfg.Build)
	case "site":
		log.Warn("global site: web front-end manifest is out of scope; writing a stub index.json")
		return os.WriteFile(filepath.Join(buildDir, "index.json"), []byte(`{"generated_by":"acrostic","puzzles":[]}`), 0644)
	case "turtle":
		log.Warn("global turtle: ontology graph is out of scope; writing an empty placeholder")
		return os.WriteFile(filepath.Join(buildDir, "turtle.json"), []byte(`{"nodes":[],"edges":[]}`), 0644)
	default:
		return fmt.Errorf("global: unknown op %q", args[0])
	}
}

// quoteEntry mirrors the build/quotes.json record shape consumed by the
// original puzzle-selection stage.
type quoteEntry struct {
	Quote  string `json:"quote"`
	Source string `json:"source"`
}

// buildQuotes reads a "quote,source" CSV corpus and writes build/quotes.json.
// Full quote-ingestion (deduplication, topic tagging, Unicode normalization
// of the raw corpus) is handled by an external collaborator; this is
// the thin CSV-to-manifest pass that's actually in scope.
func buildQuotes(buildDir, stageDir, corpusFile string) error {
	if corpusFile == "" {
		log.Warn("global quotes: no -corpus file given; writing an empty quotes.json")
		return writeJSON(filepath.Join(buildDir, "quotes.json"), []quoteEntry{})
	}
	f, err := os.Open(corpusFile)
	if err != nil {
		return fmt.Errorf("global quotes: opening corpus: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = 2
	var entries []quoteEntry
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("global quotes: reading corpus row: %w", err)
		}
		entries = append(entries, quoteEntry{Quote: record[0], Source: record[1]})
	}

	if err := writeJSON(filepath.Join(buildDir, "quotes.json"), entries); err != nil {
		return err
	}

	for i, e := range entries {
		p := &puzzle.Puzzle{Quote: e.Quote, Source: e.Source}
		if err := p.Write(stageDir, i, "stage0.json"); err != nil {
			return fmt.Errorf("global quotes: writing stage0 for puzzle %d: %w", i, err)
		}
	}
	log.Infof("global quotes: wrote %d quotes", len(entries))
	return nil
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func buildDict(buildDir, wordsFile string, maxWords int) error {
	if wordsFile == "" {
		return fmt.Errorf("global dict: -words is required")
	}
	f, err := os.Open(wordsFile)
	if err != nil {
		return fmt.Errorf("global dict: opening source text: %w", err)
	}
	defer f.Close()

	d, err := dictionary.LoadSourceText(f, maxWords)
	if err != nil {
		return fmt.Errorf("global dict: %w", err)
	}

	out, err := os.Create(filepath.Join(buildDir, "dict.dat"))
	if err != nil {
		return fmt.Errorf("global dict: creating dict.dat: %w", err)
	}
	defer out.Close()
	if err := d.Save(out); err != nil {
		return fmt.Errorf("global dict: saving: %w", err)
	}
	log.Infof("global dict: wrote %d words", len(d.Words))
	return nil
}

func buildTrie(buildDir string, buildCfg *config.BuildConfig) error {
	d, err := dictionary.LoadFile(filepath.Join(buildDir, "dict.dat"))
	if err != nil {
		return fmt.Errorf("global trie: loading dict.dat: %w", err)
	}
	if err := index.Build(buildDir, d, buildCfg); err != nil {
		return fmt.Errorf("global trie: %w", err)
	}
	log.Info("global trie: unary+binary tries written")
	return nil
}

func loadSearch(buildDir string, solverCfg *config.SolverConfig) (*search.Search, error) {
	table, err := trietable.New(buildDir)
	if err != nil {
		return nil, fmt.Errorf("loading trie table: %w", err)
	}
	d, err := dictionary.LoadFile(filepath.Join(buildDir, "dict.dat"))
	if err != nil {
		return nil, fmt.Errorf("loading dict.dat: %w", err)
	}
	return search.New(table, d, solverCfg), nil
}

func runPuzzle(args []string, buildDir, stageDir string, baseSeed uint64, cfg *config.Config) error {
	if len(args) < 2 {
		return fmt.Errorf("puzzle: expected an op (quote|letters|answers|chat) and at least one id")
	}
	op := args[0]
	ids, err := cli.ParseIDs(args[1:])
	if err != nil {
		return fmt.Errorf("puzzle: %w", err)
	}

	var s *search.Search
	if op == "answers" {
		s, err = loadSearch(buildDir, &cfg.Solver)
		if err != nil {
			return fmt.Errorf("puzzle answers: %w", err)
		}
	}

	for _, id := range ids {
		var runErr error
		switch op {
		case "quote":
			runErr = puzzle.RunQuote(stageDir, id)
		case "letters":
			runErr = puzzle.RunLetters(stageDir, id)
		case "answers":
			runErr = puzzle.RunAnswers(stageDir, id, s, baseSeed, cfg.Solver.Concurrency)
		case "chat":
			runErr = puzzle.RunChat(stageDir, id, func() {
				log.Warnf("puzzle %d: chat clue generation is out of scope; passing stage2 through unchanged", id)
			})
		default:
			return fmt.Errorf("puzzle: unknown op %q", op)
		}
		if runErr != nil {
			log.Errorf("puzzle %d: %v", id, runErr)
			continue
		}
		log.Infof("puzzle %d: %s complete", id, op)
	}
	return nil
}

func runServe(buildDir string, cfg *config.Config) error {
	table, err := trietable.New(buildDir)
	if err != nil {
		return fmt.Errorf("serve: loading trie table: %w", err)
	}
	d, err := dictionary.LoadFile(filepath.Join(buildDir, "dict.dat"))
	if err != nil {
		return fmt.Errorf("serve: loading dict.dat: %w", err)
	}
	srv := server.NewServer(table, d, cfg)
	log.Info("serve: msgpack solve daemon ready on stdin/stdout")
	return srv.Start()
}
