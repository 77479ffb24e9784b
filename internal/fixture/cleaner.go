package fixture

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
	"unicode/utf8"

	"fixclean/internal/config"
	"fixclean/internal/fileutil"
	"fixclean/internal/logging"
	"fixclean/internal/textutil"
)

const (
	phaseLoad      = "load"
	phaseFilter    = "filter"
	phaseReconcile = "reconcile"
)

// Options tunes a Cleaner.
type Options struct {
	UniversalNewlines bool
	Lock              bool
}

// OptionsFromConfig maps configuration onto cleaner options.
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		UniversalNewlines: cfg.Text.UniversalNewlines,
		Lock:              cfg.Lock.Enabled,
	}
}

// Cleaner executes the load, filter and reconcile phases for one Pair.
type Cleaner struct {
	pair   Pair
	opts   Options
	logger *slog.Logger
}

// New constructs a Cleaner. A nil logger discards output.
func New(pair Pair, opts Options, logger *slog.Logger) *Cleaner {
	return &Cleaner{
		pair:   pair,
		opts:   opts,
		logger: logging.NewComponentLogger(logger, "fixture"),
	}
}

type loaded struct {
	primary   string
	secondary string
}

// Run executes all three phases and persists their output. The returned
// Result is non-nil whenever both documents were loaded, including when a
// later phase fails, so callers can still report the original lengths.
func (c *Cleaner) Run(ctx context.Context) (*Result, error) {
	if err := c.pair.validate(); err != nil {
		return nil, err
	}
	start := time.Now()
	if c.opts.Lock {
		lock, err := acquireLock(c.pair.Dir())
		if err != nil {
			return nil, err
		}
		defer func() {
			if err := lock.Unlock(); err != nil {
				c.logger.Warn("release lock failed", logging.String("lock", lock.Path()), logging.Error(err))
			}
		}()
	}

	texts, result, err := c.load(ctx)
	if err != nil {
		return nil, err
	}

	primary, secondary, err := c.filter(ctx, texts, result)
	if err != nil {
		return result, err
	}
	if err := ctx.Err(); err != nil {
		return result, err
	}
	if err := c.persist(ctx, phaseFilter, result, c.pair.Primary, primary); err != nil {
		return result, err
	}
	if err := c.persist(ctx, phaseFilter, result, c.pair.Secondary, secondary); err != nil {
		return result, err
	}

	if err := ctx.Err(); err != nil {
		return result, err
	}
	reconciled, err := c.reconcile(ctx, primary, secondary, result)
	if err != nil {
		return result, err
	}
	if err := c.persist(ctx, phaseReconcile, result, c.pair.Secondary, string(reconciled)); err != nil {
		return result, err
	}

	logging.WithContext(ctx, c.logger).Info("fixture pair cleaned",
		logging.String("primary", c.pair.Primary),
		logging.String("secondary", c.pair.Secondary),
		logging.Int("quotes_replaced", result.Quotes.Replaced),
		logging.Int("mismatches_tolerated", result.Quotes.Tolerated),
		logging.Duration("elapsed", time.Since(start)),
	)
	return result, nil
}

// Check computes what Run would do without writing anything. A reconciliation
// length mismatch is reported through Result.Mismatch rather than as an error.
func (c *Cleaner) Check(ctx context.Context) (*Result, error) {
	if err := c.pair.validate(); err != nil {
		return nil, err
	}
	texts, result, err := c.load(ctx)
	if err != nil {
		return nil, err
	}
	primary, secondary, err := c.filter(ctx, texts, result)
	if err != nil {
		return result, err
	}
	if err := ctx.Err(); err != nil {
		return result, err
	}
	if _, err := c.reconcile(ctx, primary, secondary, result); err != nil {
		var mismatch *textutil.LengthMismatchError
		if !errors.As(err, &mismatch) {
			return result, err
		}
		result.Mismatch = mismatch
	}
	return result, nil
}

func (c *Cleaner) load(ctx context.Context) (loaded, *Result, error) {
	logger := logging.WithContext(logging.WithPhase(ctx, phaseLoad), c.logger)
	readOpts := fileutil.ReadOptions{UniversalNewlines: c.opts.UniversalNewlines}

	primaryDoc, err := fileutil.ReadText(c.pair.Primary, readOpts)
	if err != nil {
		return loaded{}, nil, fmt.Errorf("load primary: %w", err)
	}
	secondaryDoc, err := fileutil.ReadText(c.pair.Secondary, readOpts)
	if err != nil {
		return loaded{}, nil, fmt.Errorf("load secondary: %w", err)
	}

	texts := loaded{primary: primaryDoc.Text, secondary: secondaryDoc.Text}
	result := &Result{
		Primary: FileStats{
			Path:               c.pair.Primary,
			Original:           utf8.RuneCountInString(texts.primary),
			NewlinesTranslated: primaryDoc.NewlinesTranslated,
		},
		Secondary: FileStats{
			Path:               c.pair.Secondary,
			Original:           utf8.RuneCountInString(texts.secondary),
			NewlinesTranslated: secondaryDoc.NewlinesTranslated,
		},
	}
	logger.Debug("fixture pair loaded",
		logging.Int("primary_runes", result.Primary.Original),
		logging.Int("secondary_runes", result.Secondary.Original),
		logging.Bool("universal_newlines", c.opts.UniversalNewlines),
	)
	return texts, result, nil
}

func (c *Cleaner) filter(ctx context.Context, texts loaded, result *Result) (string, string, error) {
	logger := logging.WithContext(logging.WithPhase(ctx, phaseFilter), c.logger)

	primary, err := textutil.FilterPrintable(texts.primary)
	if err != nil {
		return "", "", fmt.Errorf("%s %s: %w", phaseFilter, c.pair.Primary, err)
	}
	secondary, err := textutil.FilterPrintable(texts.secondary)
	if err != nil {
		return "", "", fmt.Errorf("%s %s: %w", phaseFilter, c.pair.Secondary, err)
	}
	result.Primary.Filtered = utf8.RuneCountInString(primary)
	result.Secondary.Filtered = utf8.RuneCountInString(secondary)

	for _, stats := range []FileStats{result.Primary, result.Secondary} {
		if stats.Dropped() == 0 {
			continue
		}
		logger.Info("dropped non-printable runes",
			logging.String("file", stats.Path),
			logging.Int("dropped", stats.Dropped()),
			logging.Int("remaining", stats.Filtered),
		)
	}
	return primary, secondary, nil
}

func (c *Cleaner) reconcile(ctx context.Context, primary, secondary string, result *Result) ([]rune, error) {
	logger := logging.WithContext(logging.WithPhase(ctx, phaseReconcile), c.logger)

	reconciled, stats, err := textutil.ReconcileQuotes([]rune(primary), []rune(secondary))
	result.Quotes = stats
	if err != nil {
		logger.Warn("quote reconciliation aborted",
			logging.Int("primary_runes", result.Primary.Filtered),
			logging.Int("secondary_runes", result.Secondary.Filtered),
			logging.Error(err),
		)
		return nil, err
	}
	result.Reconciled = true
	if stats.Tolerated > 0 {
		logger.Debug("non-quote mismatches left unchanged", logging.Int("count", stats.Tolerated))
	}
	return reconciled, nil
}

func (c *Cleaner) persist(ctx context.Context, phase string, result *Result, path string, text string) error {
	if err := fileutil.WriteText(path, text); err != nil {
		return fmt.Errorf("%s: %w", phase, err)
	}
	result.Written = append(result.Written, path)
	logging.WithContext(logging.WithPhase(ctx, phase), c.logger).Debug("file written",
		logging.String("file", path),
		logging.Int("runes", utf8.RuneCountInString(text)),
	)
	return nil
}
