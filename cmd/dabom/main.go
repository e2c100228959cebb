// Command dabom runs a single Dabom web search and prints the tool result
// as JSON.
//
// Usage:
//
//	dabom [flags] <query...>
//
// Search failures are printed as a JSON string, the same way the tool
// reports them to an agent, and do not change the exit status. Only flag and
// configuration-file errors exit non-zero.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/dabomai/dabom-aigo/internal/config"
	"github.com/dabomai/dabom-aigo/internal/utils"
	"github.com/dabomai/dabom-aigo/providers/observability"
	"github.com/dabomai/dabom-aigo/providers/tool"
	"github.com/dabomai/dabom-aigo/providers/tool/dabom"
)

const (
	exitOK    = 0
	exitUsage = 2
)

type options struct {
	apiKey     string
	configPath string
	envFile    string
	maxResults int
	timeout    time.Duration
	async      bool
	raw        bool
	markdown   bool
	query      string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		return exitUsage
	}

	cfg, err := config.Load(opts.configPath, opts.envFile)
	if err != nil {
		fmt.Fprintf(stderr, "dabom: %v\n", err)
		return exitUsage
	}
	applyFlags(cfg, opts)

	observer := cfg.Observer(stderr)

	var client *dabom.Client
	err = cfg.Validate()
	if err == nil {
		client, err = dabom.NewClient(cfg.APIKey, append(cfg.ClientOptions(), dabom.WithObserver(observer))...)
	}
	if err != nil {
		observer.Warn(ctx, "Search client unavailable", observability.Error(err))
	}

	var output any
	if opts.raw {
		output = rawSearch(ctx, client, err, opts.query, cfg.MaxResults, opts.async)
	} else {
		output = search(ctx, newSearchTool(client, err, cfg, opts), opts.query, opts.async)
	}

	fmt.Fprintln(stdout, utils.JSONToString(output, true))
	return exitOK
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options

	fs := flag.NewFlagSet("dabom", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: dabom [flags] <query...>")
		fs.PrintDefaults()
	}

	fs.StringVar(&opts.apiKey, "api-key", "", "Dabom API key (default $"+dabom.EnvAPIKey+")")
	fs.StringVar(&opts.configPath, "config", "", "path to a YAML config file")
	fs.StringVar(&opts.envFile, "env-file", config.DefaultEnvFile, "path to a .env file; ignored when missing")
	fs.IntVar(&opts.maxResults, "max-results", 0, "number of results to request (default from config, 5)")
	fs.DurationVar(&opts.timeout, "timeout", 0, "HTTP timeout (default from config, 30s)")
	fs.BoolVar(&opts.async, "async", false, "use the asynchronous search path")
	fs.BoolVar(&opts.raw, "raw", false, "print the unmodified service response")
	fs.BoolVar(&opts.markdown, "markdown", false, "convert HTML result content to Markdown")

	if err := fs.Parse(args); err != nil {
		return opts, err
	}

	opts.query = strings.TrimSpace(strings.Join(fs.Args(), " "))
	if opts.query == "" {
		fs.Usage()
		return opts, fmt.Errorf("missing query")
	}
	if opts.maxResults < 0 || opts.timeout < 0 {
		fmt.Fprintln(stderr, "dabom: -max-results and -timeout must not be negative")
		return opts, fmt.Errorf("negative flag value")
	}
	return opts, nil
}

func applyFlags(cfg *config.Config, opts options) {
	if opts.apiKey != "" {
		cfg.APIKey = opts.apiKey
	}
	if opts.maxResults > 0 {
		cfg.MaxResults = opts.maxResults
	}
	if opts.timeout > 0 {
		cfg.Timeout = opts.timeout
	}
}

func newSearchTool(client *dabom.Client, clientErr error, cfg *config.Config, opts options) *dabom.SearchTool {
	toolOpts := []dabom.SearchToolOption{dabom.WithMaxResults(cfg.MaxResults)}
	if opts.markdown {
		toolOpts = append(toolOpts, dabom.WithMarkdownContent())
	}
	if clientErr != nil {
		return dabom.NewSearchToolFromError(clientErr, toolOpts...)
	}
	return dabom.NewSearchTool(client, toolOpts...)
}

func search(ctx context.Context, searchTool *dabom.SearchTool, query string, async bool) tool.Result[[]dabom.CleanedResult] {
	if async {
		return <-searchTool.InvokeAsync(ctx, query)
	}
	return searchTool.Invoke(ctx, query)
}

func rawSearch(ctx context.Context, client *dabom.Client, clientErr error, query string, maxResults int, async bool) tool.Result[dabom.RawResponse] {
	if clientErr != nil {
		return tool.Err[dabom.RawResponse](clientErr)
	}

	var raw dabom.RawResponse
	var err error
	if async {
		outcome := <-client.RawSearchAsync(ctx, query, maxResults)
		raw, err = outcome.Response, outcome.Err
	} else {
		raw, err = client.RawSearch(ctx, query, maxResults)
	}
	if err != nil {
		return tool.Err[dabom.RawResponse](err)
	}
	return tool.Ok(raw)
}
