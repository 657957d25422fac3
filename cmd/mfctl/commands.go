package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/subcommands"
	"gorm.io/gorm"

	"mf_backend/internal/app/di"
	"mf_backend/internal/feature/funds/domain/entity"
	fundsusecase "mf_backend/internal/feature/funds/usecase"
	infradb "mf_backend/internal/platform/db"
	"mf_backend/internal/shared/apperr"
)

func commands(out io.Writer) []subcommands.Command {
	return []subcommands.Command{
		&migrateCmd{},
		&searchCmd{out: out},
		&schemeCmd{out: out},
	}
}

// migrateCmd implements "mfctl migrate".
type migrateCmd struct{}

func (*migrateCmd) Name() string     { return "migrate" }
func (*migrateCmd) Synopsis() string { return "applies database migrations" }
func (*migrateCmd) Usage() string {
	return `migrate

Connects with the DB_* environment and brings the schema up to date.
PostgreSQL uses the embedded goose migrations; SQLite uses AutoMigrate.
`
}
func (*migrateCmd) SetFlags(*flag.FlagSet) {}

func (*migrateCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := infradb.LoadConfigFromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	cfg.RunMigrations = true
	db, err := infradb.Open(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: migrate: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(os.Stderr, "schema up to date (%s)\n", cfg.Driver)
	if err := closeDB(db); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// closeDB releases the connection pool. Tests replace it.
var closeDB = func(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("db handle: %w", err)
	}
	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("close db: %w", err)
	}
	return nil
}

// fundsLookup is the part of the funds usecase the lookup commands need.
type fundsLookup interface {
	Search(ctx context.Context, query string) ([]entity.SchemeSummary, error)
	GetScheme(ctx context.Context, schemeCode string) (*entity.Scheme, error)
}

// newLookup builds the funds usecase backed by the configured provider.
// Tests replace it to avoid the real network.
var newLookup = func() (fundsLookup, error) {
	provider, err := di.NewSchemeProvider()
	if err != nil {
		return nil, err
	}
	return fundsusecase.NewFundsUsecase(provider), nil
}

// searchCmd implements "mfctl search".
type searchCmd struct {
	out io.Writer
}

func (*searchCmd) Name() string     { return "search" }
func (*searchCmd) Synopsis() string { return "searches schemes by name" }
func (*searchCmd) Usage() string {
	return `search <query>

Prints matching scheme codes and names, one per line.
`
}
func (*searchCmd) SetFlags(*flag.FlagSet) {}

func (c *searchCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: search query is required")
		return subcommands.ExitUsageError
	}
	uc, err := newLookup()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	hits, err := uc.Search(ctx, strings.Join(f.Args(), " "))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", apperr.PublicMessage(err))
		return subcommands.ExitFailure
	}
	for _, h := range hits {
		fmt.Fprintf(c.out, "%-10s %s\n", h.SchemeCode, h.SchemeName)
	}
	return subcommands.ExitSuccess
}

// schemeCmd implements "mfctl scheme".
type schemeCmd struct {
	out  io.Writer
	days int
}

func (*schemeCmd) Name() string     { return "scheme" }
func (*schemeCmd) Synopsis() string { return "shows a scheme and its recent NAV" }
func (*schemeCmd) Usage() string {
	return `scheme [-n days] <scheme code>

Prints scheme metadata followed by the most recent NAV points.
`
}

func (c *schemeCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.days, "n", 5, "number of NAV points to print")
}

func (c *schemeCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one scheme code is required")
		return subcommands.ExitUsageError
	}
	uc, err := newLookup()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	s, err := uc.GetScheme(ctx, f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", apperr.PublicMessage(err))
		return subcommands.ExitFailure
	}
	fmt.Fprintf(c.out, "%s  %s\n", s.Meta.SchemeCode, s.Meta.SchemeName)
	fmt.Fprintf(c.out, "house:    %s\n", s.Meta.FundHouse)
	fmt.Fprintf(c.out, "category: %s\n", s.Meta.SchemeCategory)
	for i, p := range s.NAV {
		if i >= c.days {
			break
		}
		fmt.Fprintf(c.out, "%s %12s\n", p.Date.Format("2006-01-02"), p.NAV.StringFixed(4))
	}
	return subcommands.ExitSuccess
}
