package cmd

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/ardanlabs/glwrapgen/config"
	"github.com/ardanlabs/glwrapgen/generator"
	"github.com/ardanlabs/glwrapgen/parser"
)

// Options are the inputs of a single generation run.
type Options struct {
	Source  string
	Header  string
	Output  string
	Profile config.Profile
}

func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}

// Run extracts names from the source, resolves them against the header and
// writes the wrapper file. An existing output file is left as is.
func Run(opts Options, log *slog.Logger) error {
	names, err := parser.ExtractNamesFile(opts.Source, opts.Profile)
	if err != nil {
		return err
	}
	log.Debug("extracted function names", "source", opts.Source, "count", len(names))

	protos, err := parser.ResolvePrototypesFile(names, opts.Header, opts.Profile)
	if err != nil {
		return err
	}

	for _, name := range names {
		if !protos.Has(name) {
			log.Debug("no prototype found", "name", name, "header", opts.Header)
		}
	}

	gen := generator.New(opts.Profile)

	written, err := generator.Emit(opts.Output, func(w io.Writer) error {
		return gen.Render(w, protos)
	})
	if err != nil {
		return err
	}

	if !written {
		log.Debug("output exists, skipping", "output", opts.Output)
		return nil
	}
	log.Debug("generated wrappers", "output", opts.Output, "count", protos.Len())

	return nil
}

func NewCLI() *cobra.Command {
	var (
		profilePath string
		verbose     bool
	)

	rootCmd := &cobra.Command{
		Use:   "glwrapgen SOURCE HEADER OUTPUT",
		Short: "Generate OpenGL wrapper macro invocations",
		Long: "Reads PULSE_OPENGL_FUNCTION declarations from SOURCE, resolves their\n" +
			"prototypes from HEADER and writes PULSE_OPENGL_WRAPPER lines to OUTPUT.\n" +
			"OUTPUT is never overwritten.",
		Args:          cobra.ExactArgs(3),
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Disable usage printing on errors
			cmd.SilenceUsage = true
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelWarn
			if verbose {
				level = slog.LevelDebug
			}
			log := NewLogger(cmd.ErrOrStderr(), level)

			profile := config.Default()
			if profilePath != "" {
				p, err := config.Load(profilePath)
				if err != nil {
					return err
				}
				profile = p
				log.Debug("loaded profile", "path", profilePath)
			}

			return Run(Options{
				Source:  args[0],
				Header:  args[1],
				Output:  args[2],
				Profile: profile,
			}, log)
		},
	}

	rootCmd.Flags().StringVar(&profilePath, "profile", "", "TOML file overriding macro names, device type and banner")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log dropped names and skipped output to stderr")

	return rootCmd
}
