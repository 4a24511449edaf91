package cmd

import (
	"context"
	"fmt"
	"io"

	"k8s.io/klog/v2"

	"github.com/koskimas/deepmatch/internal/config"
	"github.com/koskimas/deepmatch/internal/fixture"
	"github.com/koskimas/deepmatch/internal/gen"
	"github.com/koskimas/deepmatch/internal/match"
	"github.com/koskimas/deepmatch/internal/pg"
	"github.com/koskimas/deepmatch/internal/ref"
	"github.com/koskimas/deepmatch/internal/report"
)

// Check matches the actual value of every configured case against its
// expected fixture and writes the report to `out`. Every case is checked even
// if earlier ones fail.
func Check(ctx context.Context, s Settings, out io.Writer) error {
	cfg, err := config.Read(s.configPath())
	if err != nil {
		return err
	}

	if cfg.HasQueries() && s.DatabaseURL == "" {
		return fmt.Errorf(`cases with an actual query need a database url (DEEPMATCH_DATABASE_URL or --database-url)`)
	}

	cases := make([]report.Case, 0, len(cfg.Cases))

	for _, c := range cfg.Cases {
		klog.V(2).InfoS("Checking case", "case", c.Name)

		failures, err := checkCase(ctx, s, c)
		if err != nil {
			klog.V(2).InfoS("Case could not be checked", "case", c.Name, "err", err)
		}

		cases = append(cases, report.Case{
			Name:     c.Name,
			Failures: failures,
			Err:      err,
		})
	}

	if err := report.Write(out, cases, s.Diff); err != nil {
		return fmt.Errorf(`failed to write report: %w`, err)
	}

	if n := report.Failed(cases); n > 0 {
		return fmt.Errorf(`%d of %d cases failed`, n, len(cases))
	}

	return nil
}

func checkCase(ctx context.Context, s Settings, c config.Case) ([]error, error) {
	ignore, err := ref.ParseAll(c.Ignore)
	if err != nil {
		return nil, err
	}

	expected, err := fixture.Read(config.Resolve(s.WorkingDir, c.Expected))
	if err != nil {
		return nil, err
	}

	actual, err := readActual(ctx, s, c.Actual)
	if err != nil {
		return nil, err
	}

	rec := match.NewRecorder(c.Name)
	match.Assert(actual, expected, match.NewParams(rec,
		match.WithIgnore(ignore...),
		match.WithExtraMessage(c.Message),
	))

	return rec.Errors(), nil
}

func readActual(ctx context.Context, s Settings, a config.Actual) (any, error) {
	if a.Query != "" {
		ctx, cancel := context.WithTimeout(ctx, s.QueryTimeout)
		defer cancel()

		return pg.Query(ctx, s.DatabaseURL, a.Query)
	}

	return fixture.Read(config.Resolve(s.WorkingDir, a.File))
}

// Generate writes the expected fixtures of every configured case as Go source
// into the configured package.
func Generate(s Settings) error {
	cfg, err := config.Read(s.configPath())
	if err != nil {
		return err
	}

	if cfg.Package.Path == "" {
		return fmt.Errorf(`config file "%s" has no package.path to generate into`, s.configPath())
	}

	fixtures := make([]gen.Fixture, 0, len(cfg.Cases))

	for _, c := range cfg.Cases {
		v, err := fixture.Read(config.Resolve(s.WorkingDir, c.Expected))
		if err != nil {
			return fmt.Errorf(`in case "%s": %w`, c.Name, err)
		}

		fixtures = append(fixtures, gen.Fixture{Name: c.Name, Value: v})
	}

	klog.V(2).InfoS("Generating expected fixtures", "package", cfg.Package.Path, "count", len(fixtures))
	return gen.GenerateCode(*cfg, s.WorkingDir, fixtures)
}
