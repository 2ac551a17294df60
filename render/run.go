// Package render implements render command: it retrieves a source, resolves
// its styles and writes the styled tree out.
package render

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"
	"golang.org/x/text/encoding/ianaindex"

	"sonata/config"
	"sonata/fetch"
	"sonata/page"
	"sonata/state"
)

func Run(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("render")

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return errors.New("no input source has been specified")
	}

	dst := cmd.Args().Get(1)
	if len(dst) > 0 {
		if dst, err = filepath.Abs(dst); err != nil {
			return err
		}
	}
	if cmd.Args().Len() > 2 {
		log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}

	env.Format = env.Cfg.Render.OutputFormat
	if cmd.IsSet("to") {
		format, err := config.ParseOutputFmt(cmd.String("to"))
		if err != nil {
			log.Warn("Unknown output format requested, using configured one", zap.Error(err), zap.Stringer("format", env.Format))
		} else {
			env.Format = format
		}
	}
	env.Overwrite = cmd.Bool("overwrite")

	if err := prepareStylesheets(env, cmd.Bool("no-defaults"), cmd.String("css")); err != nil {
		return err
	}
	prepareCharset(env, log)

	log.Info("Processing starting", zap.String("source", src), zap.String("destination", dst), zap.Stringer("format", env.Format))
	defer func(start time.Time) {
		log.Info("Processing completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	return process(ctx, src, dst, os.Stdout, log)
}

// prepareStylesheets loads user agent and user style sheets into env.
func prepareStylesheets(env *state.LocalEnv, noDefaults bool, extra string) error {
	env.DefaultStyle = nil
	if env.Cfg.Render.DefaultStylesheet && !noDefaults {
		env.DefaultStyle = page.DefaultStylesheet()
		if path := env.Cfg.Render.StylesheetPath; path != "" {
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("unable to read default stylesheet from %q: %w", path, err)
			}
			env.DefaultStyle = data
		}
	}

	env.ExtraStyle = nil
	if extra != "" {
		data, err := os.ReadFile(extra)
		if err != nil {
			return fmt.Errorf("unable to read stylesheet from %q: %w", extra, err)
		}
		env.ExtraStyle = data
		if err := env.Rpt.StoreCopy("css/"+filepath.Base(extra), extra); err != nil {
			env.Log.Warn("Unable to store stylesheet in report", zap.Error(err))
		}
	}
	return nil
}

// prepareCharset resolves configured fallback charset for sources which do
// not declare their own.
func prepareCharset(env *state.LocalEnv, log *zap.Logger) {
	cs := env.Cfg.Fetch.DefaultCharset
	if len(cs) == 0 {
		return
	}
	enc, err := ianaindex.IANA.Encoding(cs)
	if err != nil || enc == nil {
		log.Warn("Unknown character set specification. Ignoring...", zap.String("charset", cs), zap.Error(err))
		return
	}
	env.Charset = enc
	n, _ := ianaindex.IANA.Name(enc)
	log.Debug("Using fallback character set for undeclared sources", zap.String("charset", n))
}

// process handles rendering independently of CLI framework. When dst is
// empty result goes to stdout.
func process(ctx context.Context, src, dst string, stdout io.Writer, log *zap.Logger) error {
	env := state.EnvFromContext(ctx)

	retriever := fetch.NewRetriever(env.Cfg.Fetch,
		fetch.WithLogger(log), fetch.WithReport(env.Rpt), fetch.WithCharset(env.Charset))
	text := retriever.Get(ctx, src)
	if err := ctx.Err(); err != nil {
		return err
	}

	opts := []page.Option{page.WithLogger(log), page.WithDefaultStylesheet(env.DefaultStyle)}
	if len(env.ExtraStyle) > 0 {
		opts = append(opts, page.WithExtraStylesheet("user", env.ExtraStyle))
	}
	p, err := page.Load(text, opts...)
	if err != nil {
		return fmt.Errorf("unable to process source (%s): %w", src, err)
	}
	env.Rpt.StoreData("css/effective.css", []byte(p.Stylesheet.String()))

	if len(dst) == 0 {
		return Write(stdout, p, env.Format)
	}

	outputName := buildOutputPath(p, src, dst, env)
	if err := prepareOutput(outputName, env.Overwrite, log); err != nil {
		return err
	}
	if err := writeFile(outputName, p, env.Format); err != nil {
		return err
	}
	log.Info("Styled tree written", zap.String("to", outputName), zap.Int("nodes", p.Nodes()))

	// Store result for debugging
	env.Rpt.Store(fmt.Sprintf("result/%s", filepath.Base(outputName)), outputName)
	return nil
}

func prepareOutput(outputName string, overwrite bool, log *zap.Logger) error {
	if _, err := os.Stat(outputName); err == nil {
		if !overwrite {
			return fmt.Errorf("output file already exists: %s", outputName)
		}
		log.Warn("Overwriting existing file", zap.String("file", outputName))
		return os.Remove(outputName)
	} else if !os.IsNotExist(err) {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(outputName), 0755); err != nil {
		return fmt.Errorf("unable to create output directory: %w", err)
	}
	return nil
}

func writeFile(outputName string, p *page.Page, format config.OutputFmt) (err error) {
	f, err := os.Create(outputName)
	if err != nil {
		return fmt.Errorf("unable to create output file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("unable to close output file: %w", cerr)
		}
	}()
	if err := Write(f, p, format); err != nil {
		return fmt.Errorf("unable to write output: %w", err)
	}
	return nil
}
