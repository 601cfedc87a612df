package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/google/gops/agent"

	"github.com/doclens/doclens/analyzer"
	"github.com/doclens/doclens/analyzer/llm"
	"github.com/doclens/doclens/extractor"
	"github.com/doclens/doclens/matching"
	"github.com/doclens/doclens/service"
)

func main() {
	startGops()
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "search":
		searchCmd(os.Args[2:])
	case "extract":
		extractCmd(os.Args[2:])
	case "serve":
		serveCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: doclens <command> [options]")
	fmt.Fprintln(os.Stderr, "Commands:")
	fmt.Fprintln(os.Stderr, "  search   Search a folder of documents for a query")
	fmt.Fprintln(os.Stderr, "  extract  Extract plain text from a single document")
	fmt.Fprintln(os.Stderr, "  serve    Run the MCP server")
	fmt.Fprintf(os.Stderr, "Supported formats: %s\n", strings.Join(extractor.New().Extensions(), " "))
}

// parseMixed accepts flags and positional arguments in any order; the flag
// package alone stops at the first non-flag token, so parsing resumes
// whenever a flag token follows positional arguments.
func parseMixed(flags *flag.FlagSet, args []string) ([]string, error) {
	if err := flags.Parse(args); err != nil {
		return nil, err
	}
	var positional []string
	rest := flags.Args()
	for len(rest) > 0 {
		if strings.HasPrefix(rest[0], "-") && rest[0] != "-" {
			if err := flags.Parse(rest); err != nil {
				return nil, err
			}
			rest = flags.Args()
			continue
		}
		positional = append(positional, rest[0])
		rest = rest[1:]
	}
	return positional, nil
}

// applyPositionals fills folder and query from positional arguments when the
// corresponding flags were not set; remaining arguments join into the query.
func applyPositionals(positional []string, folder, query *string) {
	if *folder == "" && len(positional) > 0 {
		*folder = positional[0]
		positional = positional[1:]
	}
	if *query == "" && len(positional) > 0 {
		*query = strings.Join(positional, " ")
	}
}

func searchCmd(args []string) {
	flags := flag.NewFlagSet("search", flag.ExitOnError)
	folder := flags.String("folder", "", "folder to search (or first positional argument)")
	query := flags.String("query", "", "query text (or remaining positional arguments)")
	configPath := flags.String("config", "", "config yaml (optional, defaults to ~/doclens/config.yaml if present)")
	output := flags.String("o", "", "write Markdown report to file (default stdout)")
	batchSize := flags.Int("batch-size", 0, "documents per analysis batch")
	maxDocs := flags.Int("max-docs", 0, "max documents to scan")
	threshold := flags.Int("threshold", 0, "minimum relevance 0-100")
	maxChars := flags.Int("max-chars", 0, "per-document character cap")
	include := flags.String("include", "", "comma-separated include patterns")
	exclude := flags.String("exclude", "", "comma-separated exclude patterns")
	maxSize := flags.Int("max-size", 0, "max file size in bytes")
	analyzerURL := flags.String("analyzer-url", "", "OpenAI-compatible base URL (optional)")
	analyzerModel := flags.String("analyzer-model", "", "analyzer model name (optional)")
	analyzerKey := flags.String("analyzer-key", "", "analyzer API key (optional, defaults to OPENAI_API_KEY)")
	jsonOut := flags.Bool("json", false, "emit JSON instead of Markdown")
	quiet := flags.Bool("q", false, "suppress progress and prompt output")
	progress := flags.Bool("progress", false, "show extraction progress")
	positional, err := parseMixed(flags, args)
	if err != nil {
		os.Exit(2)
	}
	applyPositionals(positional, folder, query)

	if *folder == "" || *query == "" {
		flags.Usage()
		os.Exit(2)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg := loadConfig(*configPath)
	svc := buildService(cfg, buildOptions{
		maxChars:      *maxChars,
		include:       parseCSV(*include),
		exclude:       parseCSV(*exclude),
		maxSize:       *maxSize,
		analyzerURL:   *analyzerURL,
		analyzerModel: *analyzerModel,
		analyzerKey:   *analyzerKey,
	})

	req := service.SearchRequest{
		Folder:    *folder,
		Query:     *query,
		BatchSize: firstPositive(*batchSize, cfg.BatchSize),
		MaxDocs:   firstPositive(*maxDocs, cfg.MaxDocs),
		Threshold: firstPositive(*threshold, cfg.Threshold),
	}
	if !*quiet {
		req.Logf = log.Printf
		req.Progress = progressPrinter(*progress)
	}

	response, err := svc.Search(ctx, req)
	if err != nil {
		log.Fatalf("search: %v", err)
	}

	if *jsonOut {
		writeOutput(*output, marshalJSON(response))
	} else {
		writeOutput(*output, service.BuildReport(*query, *folder, response))
	}
	if !*quiet {
		for i, prompt := range response.Prompts {
			fmt.Fprintf(os.Stderr, "--- analysis prompt %d/%d ---\n%s\n", i+1, len(response.Prompts), prompt)
		}
	}
}

func extractCmd(args []string) {
	flags := flag.NewFlagSet("extract", flag.ExitOnError)
	location := flags.String("file", "", "document to extract (or first positional argument)")
	configPath := flags.String("config", "", "config yaml (optional)")
	maxChars := flags.Int("max-chars", 0, "character cap")
	output := flags.String("o", "", "write text to file (default stdout)")
	positional, err := parseMixed(flags, args)
	if err != nil {
		os.Exit(2)
	}
	if *location == "" && len(positional) > 0 {
		*location = positional[0]
	}

	if *location == "" {
		flags.Usage()
		os.Exit(2)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg := loadConfig(*configPath)
	svc := buildService(cfg, buildOptions{maxChars: *maxChars})

	response, err := svc.Extract(ctx, service.ExtractRequest{Location: *location})
	if err != nil {
		log.Fatalf("extract: %v", err)
	}
	writeOutput(*output, response.Content)
}

type buildOptions struct {
	maxChars      int
	include       []string
	exclude       []string
	maxSize       int
	analyzerURL   string
	analyzerModel string
	analyzerKey   string
}

func buildService(cfg *service.Config, opts buildOptions) *service.Service {
	extOpts := cfg.ExtractorOptions()
	if opts.maxChars > 0 {
		extOpts = append(extOpts, extractor.WithMaxChars(opts.maxChars))
	}
	matchCfg := *cfg
	if len(opts.include) > 0 {
		matchCfg.Include = opts.include
	}
	if len(opts.exclude) > 0 {
		matchCfg.Exclude = opts.exclude
	}
	if opts.maxSize > 0 {
		matchCfg.MaxFileSize = opts.maxSize
	}

	svcOpts := []service.Option{
		service.WithExtractor(extractor.New(extOpts...)),
		service.WithMatcher(matching.New(matchCfg.MatchingOptions()...)),
	}
	if a := buildAnalyzer(cfg, opts); a != nil {
		svcOpts = append(svcOpts, service.WithAnalyzer(a))
	}
	return service.New(svcOpts...)
}

func buildAnalyzer(cfg *service.Config, opts buildOptions) analyzer.Analyzer {
	llmCfg := cfg.Analyzer
	if opts.analyzerURL != "" {
		llmCfg.BaseURL = opts.analyzerURL
	}
	if opts.analyzerModel != "" {
		llmCfg.Model = opts.analyzerModel
	}
	if opts.analyzerKey != "" {
		llmCfg.APIKey = opts.analyzerKey
	}
	if llmCfg.APIKey == "" {
		llmCfg.APIKey = os.Getenv("OPENAI_API_KEY")
	}
	if llmCfg.Model == "" {
		return nil
	}
	a, err := llm.New(llmCfg)
	if err != nil {
		log.Fatalf("analyzer: %v", err)
	}
	return a
}

func loadConfig(path string) *service.Config {
	path = resolveConfigPath(path)
	if path == "" {
		return &service.Config{}
	}
	cfg, err := service.LoadConfig(path)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	return cfg
}

func resolveConfigPath(path string) string {
	if path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	candidate := home + "/doclens/config.yaml"
	if _, err := os.Stat(candidate); err != nil {
		return ""
	}
	return candidate
}

func writeOutput(path, content string) {
	if path == "" {
		fmt.Println(content)
		return
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		log.Fatalf("write %s: %v", path, err)
	}
	log.Printf("wrote %s", path)
}

func marshalJSON(v any) string {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		log.Fatalf("encode: %v", err)
	}
	return string(b)
}

func parseCSV(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func firstPositive(values ...int) int {
	for _, value := range values {
		if value > 0 {
			return value
		}
	}
	return 0
}

func progressPrinter(enabled bool) func(current, total int, path string) {
	if !enabled {
		return nil
	}
	lastLen := 0
	return func(current, total int, path string) {
		if total == 0 {
			return
		}
		if path == "" {
			path = "-"
		}
		line := fmt.Sprintf("reading %d/%d %s", current, total, path)
		if lastLen > len(line) {
			line = line + strings.Repeat(" ", lastLen-len(line))
		}
		lastLen = len(line)
		fmt.Fprintf(os.Stderr, "\r%s", line)
		if current == total {
			fmt.Fprintln(os.Stderr)
		}
	}
}

func startGops() {
	if err := agent.Listen(agent.Options{ShutdownCleanup: true}); err != nil {
		log.Printf("gops: %v", err)
	}
}
