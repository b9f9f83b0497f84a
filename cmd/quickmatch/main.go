// Command quickmatch is a one-shot/batch CLI over a quickmatch.Engine,
// the Go-native replacement for the original Rust example's interactive
// stdin loop: load a corpus, build an engine, answer queries from flags
// or stdin instead of a bare REPL.
package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/avalonix/quickmatch"
	"github.com/avalonix/quickmatch/internal/corpus"
	"github.com/avalonix/quickmatch/internal/logging"
	"github.com/avalonix/quickmatch/internal/suggest"
)

func main() {
	app := &cli.App{
		Name:  "quickmatch",
		Usage: "fuzzy autocomplete over a fixed corpus",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "YAML config file with corpus items and tuning",
			},
			&cli.StringFlag{
				Name:  "corpus",
				Usage: "corpus file (newline-delimited or .yaml), overrides config's corpus",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Value: "info",
				Usage: "trace, debug, info, warn, error",
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "query",
				Usage: "answer a single query and exit",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "limit", Value: 0, Usage: "override result limit (0 = config default)"},
					&cli.BoolFlag{Name: "suggest", Usage: "offer did-you-mean suggestions on zero results"},
				},
				Action: runQuery,
			},
			{
				Name:   "repl",
				Usage:  "read queries from stdin, one per line, until EOF",
				Action: runRepl,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "quickmatch:", err)
		os.Exit(1)
	}
}

func loadEngine(c *cli.Context) (*quickmatch.Engine, *corpus.Config, error) {
	cfg := &corpus.Config{}
	if path := c.String("config"); path != "" {
		loaded, err := corpus.LoadConfig(path)
		if err != nil {
			return nil, nil, err
		}
		cfg = loaded
	}
	if corpusPath := c.String("corpus"); corpusPath != "" {
		cfg.CorpusFile = corpusPath
		cfg.Items = nil
	}

	items, err := cfg.Load()
	if err != nil {
		return nil, nil, err
	}

	buildCfg := cfg.BuildConfig()
	return quickmatch.Build(items, &buildCfg), cfg, nil
}

func runQuery(c *cli.Context) error {
	log := logging.New(logging.ParseLevel(c.String("log-level")))

	engine, cfg, err := loadEngine(c)
	if err != nil {
		return err
	}
	log.Info().Int("items", engine.Len()).Msg("corpus indexed")

	query := c.Args().First()
	if query == "" {
		return fmt.Errorf("query: missing query argument")
	}

	queryCfg := engine.Config()
	if limit := c.Int("limit"); limit > 0 {
		queryCfg = queryCfg.WithLimit(limit)
	}

	results := engine.QueryWith(query, queryCfg)
	printResults(results)

	if len(results) == 0 && c.Bool("suggest") {
		printSuggestions(cfg, query)
	}
	return nil
}

func runRepl(c *cli.Context) error {
	log := logging.New(logging.ParseLevel(c.String("log-level")))

	engine, _, err := loadEngine(c)
	if err != nil {
		return err
	}
	log.Info().Int("items", engine.Len()).Msg("corpus indexed")

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		query := scanner.Text()
		if query == "" {
			continue
		}
		printResults(engine.Query(query))
	}
	return scanner.Err()
}

func printResults(results []string) {
	if len(results) == 0 {
		fmt.Println("no matches")
		return
	}
	for _, item := range results {
		fmt.Println(item)
	}
}

func printSuggestions(cfg *corpus.Config, query string) {
	items, err := cfg.Load()
	if err != nil {
		return
	}
	matcher := suggest.NewMatcher(items, suggest.DefaultThreshold)
	for _, m := range matcher.Suggest(query, 3) {
		fmt.Printf("did you mean: %s (%.2f)\n", m.Item, m.Similarity)
	}
}
