package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/fatih/color"

	neograph "github.com/saulfrancisco-ruizacevedo/go-neograph"
	"github.com/saulfrancisco-ruizacevedo/go-neograph/internal/config"
	"github.com/saulfrancisco-ruizacevedo/go-neograph/internal/logger"
	"github.com/saulfrancisco-ruizacevedo/go-neograph/internal/server"
	"github.com/saulfrancisco-ruizacevedo/go-neograph/models"
)

// Version is set at build time via ldflags.
var Version = "dev"

// dialer opens the query runner used by a command and returns its release function.
type dialer func(ctx context.Context, cfg neograph.Config) (neograph.DBRunner, func(), error)

func dialNeo4j(ctx context.Context, cfg neograph.Config) (neograph.DBRunner, func(), error) {
	e, err := neograph.Connect(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	return e, func() { _ = e.Close(context.Background()) }, nil
}

// CLI is the root command line of neograph.
type CLI struct {
	Config config.Config `embed:""`

	Version kong.VersionFlag `help:"Show version information"`
	Quiet   bool             `short:"q" help:"Suppress non-essential output"`

	Serve       ServeCmd       `cmd:"" help:"Serve the graph API over HTTP"`
	Graph       GraphCmd       `cmd:"" help:"Print the neighborhood graph of one or more accounts"`
	Account     AccountCmd     `cmd:"" help:"Print a single account node"`
	Degree      DegreeCmd      `cmd:"" help:"Rank accounts by degree centrality"`
	Betweenness BetweennessCmd `cmd:"" help:"Rank accounts by betweenness centrality (expensive)"`

	dial dialer    `kong:"-"`
	out  io.Writer `kong:"-"`
}

// NewCLI creates a new CLI instance that talks to Neo4j and writes to stdout.
func NewCLI() *CLI {
	return &CLI{dial: dialNeo4j, out: os.Stdout}
}

// Execute parses command-line arguments and executes the selected command.
func (c *CLI) Execute(args []string) error {
	parser, err := kong.New(c,
		kong.Name("neograph"),
		kong.Description("Transaction graph analytics on top of Neo4j"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
		kong.Vars{"version": Version},
	)
	if err != nil {
		return err
	}
	kctx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	return kctx.Run(c)
}

// withAnalyzer connects to the database, runs fn and releases the connection.
func (c *CLI) withAnalyzer(ctx context.Context, fn func(*neograph.Analyzer, *logger.Logger) error) error {
	log, err := logger.New(c.Config.LogMode)
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	defer log.Sync()

	runner, release, err := c.dial(ctx, c.Config.Neo4j.Executor())
	if err != nil {
		return err
	}
	defer release()
	log.Debug("connected to neo4j", "uri", c.Config.Neo4j.URI, "database", c.Config.Neo4j.Database)

	return fn(neograph.NewAnalyzer(runner, log), log)
}

func (c *CLI) printJSON(v any) error {
	enc := json.NewEncoder(c.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (c *CLI) notice(format string, args ...any) {
	if c.Quiet {
		return
	}
	color.New(color.FgGreen).Fprintf(os.Stderr, format+"\n", args...)
}

// ServeCmd starts the HTTP API.
type ServeCmd struct {
	Addr         string   `env:"HTTP_ADDR" default:":8080" help:"Listen address"`
	AllowOrigins []string `env:"CORS_ALLOW_ORIGINS" help:"Allowed CORS origins; empty allows all"`
}

// Run executes the serve command.
func (s *ServeCmd) Run(c *CLI) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return c.withAnalyzer(ctx, func(a *neograph.Analyzer, log *logger.Logger) error {
		c.notice("Serving on %s", s.Addr)
		srv := server.NewServer(server.RouterConfig{
			Service:      a,
			Log:          log.With("component", "HTTP"),
			AllowOrigins: s.AllowOrigins,
		})
		return srv.Run(ctx, s.Addr)
	})
}

// GraphCmd prints the graph of the given accounts.
type GraphCmd struct {
	Addresses []string `arg:"" help:"Account addresses"`
}

// Run executes the graph command.
func (g *GraphCmd) Run(c *CLI) error {
	ctx := context.Background()
	return c.withAnalyzer(ctx, func(a *neograph.Analyzer, _ *logger.Logger) error {
		var (
			graph *models.Graph
			err   error
		)
		if len(g.Addresses) == 1 {
			graph, err = a.GraphForAccount(ctx, g.Addresses[0])
		} else {
			graph, err = a.GraphForAddresses(ctx, g.Addresses)
		}
		if err != nil {
			return fmt.Errorf("building graph: %w", err)
		}
		return c.printJSON(graph)
	})
}

// AccountCmd prints one account.
type AccountCmd struct {
	Address string `arg:"" help:"Account address"`
}

// Run executes the account command.
func (ac *AccountCmd) Run(c *CLI) error {
	ctx := context.Background()
	return c.withAnalyzer(ctx, func(a *neograph.Analyzer, _ *logger.Logger) error {
		node, err := a.FindAccount(ctx, ac.Address)
		if err != nil {
			return fmt.Errorf("finding account %s: %w", ac.Address, err)
		}
		return c.printJSON(node)
	})
}

// DegreeCmd prints a degree centrality ranking.
type DegreeCmd struct {
	Category string `arg:"" optional:"" enum:"account,external,contract" default:"account" help:"Node category (account, external, contract)"`
}

// Run executes the degree command.
func (d *DegreeCmd) Run(c *CLI) error {
	ctx := context.Background()
	return c.withAnalyzer(ctx, func(a *neograph.Analyzer, _ *logger.Logger) error {
		scores, err := a.DegreeCentrality(ctx, d.Category)
		if err != nil {
			return fmt.Errorf("degree centrality: %w", err)
		}
		c.notice("Top %d %s nodes by degree", len(scores), d.Category)
		return c.printJSON(scores)
	})
}

// BetweennessCmd prints the betweenness centrality ranking.
type BetweennessCmd struct{}

// Run executes the betweenness command.
func (b *BetweennessCmd) Run(c *CLI) error {
	ctx := context.Background()
	return c.withAnalyzer(ctx, func(a *neograph.Analyzer, _ *logger.Logger) error {
		scores, err := a.BetweennessCentrality(ctx)
		if err != nil {
			return fmt.Errorf("betweenness centrality: %w", err)
		}
		return c.printJSON(scores)
	})
}
