// Package cli provides the command-line interface for bddconv.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v2"

	apperrors "github.com/bddtools/bddconv/internal/errors"
	"github.com/bddtools/bddconv/internal/feature"
	"github.com/bddtools/bddconv/internal/output"
	"github.com/bddtools/bddconv/internal/suite"
)

// Version is set at build time.
var Version = "dev"

// documentFileName is the name of the JSON conversion document written
// into the output directory with --json.
const documentFileName = "bddconv.json"

// out is the shared output writer for CLI commands.
var out = output.New()

func init() {
	// urfave/cli registers -v as a version shorthand by default, which
	// collides with the --verbose alias; keep --version long-form only.
	cli.VersionFlag = &cli.BoolFlag{Name: "version", Usage: "print the version"}
}

// Run executes the CLI with the given arguments and returns an exit code.
func Run(args []string) int {
	app := newApp()

	argv := append([]string{app.Name}, args...)
	if err := app.Run(argv); err != nil {
		out.ErrorPrefix("%v", err)
		return apperrors.GetExitCode(err)
	}
	return apperrors.ExitSuccess
}

func newApp() *cli.App {
	return &cli.App{
		Name:            "bddconv",
		Version:         Version,
		Usage:           "convert test-suite documents into feature-style text reports",
		ArgsUsage:       "<datasource>... <outdir>",
		HideHelpCommand: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "title",
				Usage: "conversion document title (underscores are shown as spaces)",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: fmt.Sprintf("write the conversion document to <outdir>/%s", documentFileName),
			},
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"q"},
				Usage:   "minimal output (errors only)",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "maximum detail",
			},
		},
		Action: runConvert,
		// Exit codes are mapped in Run; keep urfave/cli from calling
		// os.Exit on its own.
		ExitErrHandler: func(*cli.Context, error) {},
	}
}

func runConvert(c *cli.Context) error {
	out.SetQuiet(c.Bool("quiet"))
	out.SetVerbose(c.Bool("verbose"))

	args := c.Args().Slice()
	if len(args) < 2 {
		return apperrors.Usage("expected at least one data source followed by an output directory")
	}

	outdir, err := filepath.Abs(args[len(args)-1])
	if err != nil {
		return apperrors.Wrap(err, "resolve output directory")
	}
	sources := args[:len(args)-1]

	root, err := suite.LoadAll(sources)
	if err != nil {
		return err
	}
	out.Detail("loaded %d tests from %d data source(s)", root.TestCount, len(sources))

	conv := feature.NewConverter(outdir, c.String("title"))
	doc, err := conv.Convert(root)
	if err != nil {
		return apperrors.Wrap(err, "conversion failed")
	}

	if c.Bool("json") {
		if err := os.MkdirAll(outdir, 0755); err != nil {
			return apperrors.Wrap(err, "create output directory")
		}
		path := filepath.Join(outdir, documentFileName)
		if err := feature.WriteDocument(path, doc); err != nil {
			return apperrors.Wrap(err, "write conversion document")
		}
		out.Detail("wrote %s", path)
	}

	emitted := conv.Emitted()
	if len(emitted) == 0 {
		out.Warning("no suite with direct tests found; no feature files written")
	} else {
		out.Print("%s", renderSummary(doc.Title, emitted))
	}
	out.Println("%s", outdir)

	return nil
}
