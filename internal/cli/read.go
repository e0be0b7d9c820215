package cli

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yaklabco/bioread/internal/configloader"
	"github.com/yaklabco/bioread/internal/logging"
	"github.com/yaklabco/bioread/internal/ui/pretty"
	"github.com/yaklabco/bioread/pkg/bioread"
	"github.com/yaklabco/bioread/pkg/config"
	"github.com/yaklabco/bioread/pkg/fsutil"
	"github.com/yaklabco/bioread/pkg/markdown"
)

type readFlags struct {
	fixationPoint int
	emphasize     string
	deEmphasize   string
	format        string
	output        string
	backup        bool
}

func addReadFlags(cmd *cobra.Command, flags *readFlags) {
	cmd.Flags().IntVarP(&flags.fixationPoint, "fixation-point", "f", bioread.DefaultFixationPoint,
		"fixation point: 1 (most emphasis) to 5 (least)")
	cmd.Flags().StringVarP(&flags.emphasize, "emphasize", "e", "",
		`emphasis marker template, {} marks the word part (default terminal bold)`)
	cmd.Flags().StringVarP(&flags.deEmphasize, "de-emphasize", "d", "",
		`de-emphasis marker template, {} marks the word part (default terminal faint)`)
	cmd.Flags().StringVar(&flags.format, "format", "",
		"input format: auto, text, markdown")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "",
		"write output to a file instead of stdout")
	cmd.Flags().BoolVar(&flags.backup, "backup", false,
		"keep a sidecar .bioread.bak copy before overwriting the output file")
}

// cliConfigFromFlags builds the CLI config layer. Only flags the user
// actually set are carried over, so config files and environment
// variables keep their say for everything else.
func cliConfigFromFlags(cmd *cobra.Command, args []string, flags *readFlags) *config.Config {
	cfg := &config.Config{}

	if cmd.Flags().Changed("fixation-point") {
		cfg.FixationPoint = flags.fixationPoint
	}
	if cmd.Flags().Changed("emphasize") {
		cfg.Emphasize = flags.emphasize
	}
	if cmd.Flags().Changed("de-emphasize") {
		cfg.DeEmphasize = flags.deEmphasize
	}
	if cmd.Flags().Changed("format") {
		cfg.Format = config.Format(flags.format)
	}
	if cmd.Flags().Changed("color") {
		colorMode, err := cmd.Flags().GetString("color")
		if err == nil {
			cfg.Color = config.ColorMode(colorMode)
		}
	}
	if cmd.Flags().Changed("backup") {
		cfg.Backup = flags.backup
	}

	cfg.Inputs = args
	cfg.Output = flags.output

	return cfg
}

func runRead(cmd *cobra.Command, args []string, flags *readFlags) error {
	logger := logging.Default()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = logging.WithLogger(ctx, logger)

	// An out-of-range flag value is command-line misuse; out-of-range
	// values from config files surface as data errors during Load.
	if cmd.Flags().Changed("fixation-point") {
		if flags.fixationPoint < bioread.MinFixationPoint || flags.fixationPoint > bioread.MaxFixationPoint {
			return &UsageError{Err: fmt.Errorf("fixation point must be in range [%d, %d], got %d",
				bioread.MinFixationPoint, bioread.MaxFixationPoint, flags.fixationPoint)}
		}
	}

	// Get the explicit config path from the root command's persistent flag.
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	loadOpts := configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		CLIConfig:    cliConfigFromFlags(cmd, args, flags),
	}

	loadResult, err := configloader.Load(ctx, loadOpts)
	if err != nil {
		return &ConfigError{Err: err}
	}

	finalCfg := loadResult.Config

	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}

	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration from", "files", loadResult.LoadedFrom)
	}

	logger.Debug("configuration loaded",
		"fixation_point", finalCfg.FixationPoint,
		"format", finalCfg.Format,
		"color", finalCfg.Color,
		"inputs", len(finalCfg.Inputs),
	)

	// File output is buffered and written atomically at the end, so a
	// failed render never leaves a half-written destination behind.
	var dst io.Writer = cmd.OutOrStdout()
	var outBuf *bytes.Buffer
	if finalCfg.Output != "" {
		outBuf = &bytes.Buffer{}
		dst = outBuf
	}

	reader, err := newReader(finalCfg, dst)
	if err != nil {
		return &ConfigError{Err: err}
	}

	if len(finalCfg.Inputs) == 0 {
		if err := renderStdin(ctx, cmd, reader, finalCfg.Format, dst); err != nil {
			return err
		}
		return writeOutput(ctx, finalCfg, outBuf, nil)
	}

	md := markdown.NewRenderer(reader)
	inputInfos := make(map[string]*fsutil.FileInfo, len(finalCfg.Inputs))

	for _, path := range finalCfg.Inputs {
		// A lone dash names stdin, the usual Unix convention.
		if path == "-" {
			if err := renderStdin(ctx, cmd, reader, finalCfg.Format, dst); err != nil {
				return err
			}
			continue
		}

		info, err := renderFile(ctx, reader, md, resolveFormat(finalCfg.Format, path), dst, path)
		if err != nil {
			return err
		}
		inputInfos[filepath.Clean(path)] = info
	}

	return writeOutput(ctx, finalCfg, outBuf, inputInfos)
}

// newReader builds the core reader for the merged configuration. Marker
// templates win over terminal styling; without templates the markers come
// from the destination's color capability, so piped output stays clean.
func newReader(cfg *config.Config, dst io.Writer) (*bioread.Reader, error) {
	colorEnabled := pretty.IsColorEnabled(string(cfg.Color), dst)
	styles := pretty.NewStyles(colorEnabled, dst)

	emphasis := styles.EmphasisMarkers()
	if cfg.Emphasize != "" {
		markers, err := config.ParseMarkerTemplate(cfg.Emphasize)
		if err != nil {
			return nil, fmt.Errorf("emphasize: %w", err)
		}
		emphasis = markers
	}

	deEmphasis := styles.DeEmphasisMarkers()
	if cfg.DeEmphasize != "" {
		markers, err := config.ParseMarkerTemplate(cfg.DeEmphasize)
		if err != nil {
			return nil, fmt.Errorf("de-emphasize: %w", err)
		}
		deEmphasis = markers
	}

	return bioread.New(bioread.Options{
		FixationPoint: cfg.FixationPoint,
		Emphasis:      emphasis,
		DeEmphasis:    deEmphasis,
	})
}

// resolveFormat maps FormatAuto to a concrete format using the input's
// file extension.
func resolveFormat(format config.Format, path string) config.Format {
	if format != "" && format != config.FormatAuto {
		return format
	}

	ext := strings.ToLower(filepath.Ext(path))
	for _, mdExt := range config.MarkdownExtensions {
		if ext == mdExt {
			return config.FormatMarkdown
		}
	}

	return config.FormatText
}

// renderStdin renders standard input. Text streams through incrementally;
// Markdown has to be read whole because structure spans the document.
// FormatAuto means text here since there is no file name to sniff.
func renderStdin(ctx context.Context, cmd *cobra.Command, reader *bioread.Reader, format config.Format, dst io.Writer) error {
	in := cmd.InOrStdin()

	// An interactive terminal with no piped input usually means a
	// forgotten argument. Hint instead of blocking silently.
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		logging.Default().Info("reading from terminal, press Ctrl-D when done")
	}

	if format == config.FormatMarkdown {
		src, err := io.ReadAll(in)
		if err != nil {
			return &IOError{Err: fmt.Errorf("read stdin: %w", err)}
		}
		if err := markdown.NewRenderer(reader).Render(ctx, dst, src); err != nil {
			return &IOError{Err: fmt.Errorf("render stdin: %w", err)}
		}
		return nil
	}

	if err := reader.Stream(dst, in); err != nil {
		return &IOError{Err: fmt.Errorf("render stdin: %w", err)}
	}

	return nil
}

// renderFile renders one input file to dst and returns its FileInfo for
// later modification checks when the output overwrites an input.
func renderFile(ctx context.Context, reader *bioread.Reader, md *markdown.Renderer, format config.Format, dst io.Writer, path string) (*fsutil.FileInfo, error) {
	logging.FromContext(ctx).Debug("rendering",
		logging.FieldPath, path,
		logging.FieldFormat, format,
	)

	content, info, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		return nil, &IOError{Err: err}
	}

	if format == config.FormatMarkdown {
		if err := md.Render(ctx, dst, content); err != nil {
			return nil, &IOError{Err: fmt.Errorf("render %s: %w", path, err)}
		}
		return info, nil
	}

	if _, err := io.WriteString(dst, reader.Text(string(content))); err != nil {
		return nil, &IOError{Err: fmt.Errorf("write output: %w", err)}
	}

	return info, nil
}

// writeOutput flushes the buffered render to the output path. Rendering
// in place is allowed, but only if the input has not changed under us
// since it was read.
func writeOutput(ctx context.Context, cfg *config.Config, outBuf *bytes.Buffer, inputInfos map[string]*fsutil.FileInfo) error {
	if cfg.Output == "" {
		return nil
	}

	mode := os.FileMode(0)
	if info, ok := inputInfos[filepath.Clean(cfg.Output)]; ok {
		modified, err := fsutil.CheckModified(ctx, info)
		if err != nil {
			return &IOError{Err: err}
		}
		if modified {
			return &IOError{Err: fmt.Errorf("refusing to overwrite %s: file changed since it was read", cfg.Output)}
		}
		mode = info.Mode
	}

	if cfg.Backup {
		created, err := fsutil.CreateBackup(ctx, cfg.Output)
		if err != nil {
			return &IOError{Err: err}
		}
		if created {
			logging.FromContext(ctx).Debug("created backup",
				logging.FieldPath, fsutil.BackupPath(cfg.Output))
		}
	}

	if err := fsutil.WriteAtomic(ctx, cfg.Output, outBuf.Bytes(), mode); err != nil {
		return &IOError{Err: err}
	}

	return nil
}
