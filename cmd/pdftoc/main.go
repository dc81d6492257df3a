package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/ebronstein/pdftoc/internal/config"
	"github.com/ebronstein/pdftoc/internal/detect"
	"github.com/ebronstein/pdftoc/internal/editor"
	"github.com/ebronstein/pdftoc/internal/outline"
	"github.com/ebronstein/pdftoc/internal/source"
	"github.com/ebronstein/pdftoc/internal/toctext"
	"github.com/ebronstein/pdftoc/internal/writer"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

type options struct {
	input    string
	output   string
	preview  bool
	maxLevel int
	replace  bool
	debug    bool
	edit     bool
	tocFile  string
}

func parseFlags(args []string) (options, error) {
	var opts options
	fs := flag.NewFlagSet("pdftoc", flag.ContinueOnError)
	fs.StringVar(&opts.output, "o", "", "output PDF path")
	fs.StringVar(&opts.output, "output", "", "output PDF path")
	fs.BoolVar(&opts.preview, "preview", false, "print detected TOC to stdout without writing a file")
	fs.IntVar(&opts.maxLevel, "max-level", 0, "maximum heading depth to include (0 = unlimited)")
	fs.BoolVar(&opts.replace, "replace", false, "overwrite the input file instead of creating a new one")
	fs.BoolVar(&opts.debug, "debug", false, "log font histogram and detection details to stderr")
	fs.BoolVar(&opts.edit, "edit", false, "open detected TOC in $EDITOR for manual editing before writing")
	fs.StringVar(&opts.tocFile, "toc", "", "import TOC from a text file instead of auto-detecting")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: pdftoc <input> [flags]\n\nInfer a document's table of contents from font sizes and write it as PDF bookmarks.\n\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return opts, fmt.Errorf("expected exactly one input file")
	}
	opts.input = fs.Arg(0)

	if opts.edit && opts.tocFile != "" {
		return opts, fmt.Errorf("--edit and --toc are mutually exclusive")
	}
	if opts.preview && opts.edit {
		return opts, fmt.Errorf("--preview and --edit are mutually exclusive")
	}
	if opts.preview && opts.tocFile != "" {
		return opts, fmt.Errorf("--preview and --toc are mutually exclusive")
	}
	return opts, nil
}

func run(args []string) int {
	opts, err := parseFlags(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}

	level := slog.LevelInfo
	if opts.debug {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	cfg := config.Load()
	if opts.maxLevel == 0 {
		opts.maxLevel = cfg.MaxLevel
	}

	if _, err := os.Stat(opts.input); err != nil {
		log.Error("file not found", "path", opts.input)
		return 1
	}

	isPDF := strings.EqualFold(filepath.Ext(opts.input), ".pdf")

	outputPath := ""
	if !opts.preview {
		switch {
		case opts.replace:
			outputPath = opts.input
		case opts.output != "":
			outputPath = opts.output
		default:
			ext := filepath.Ext(opts.input)
			outputPath = strings.TrimSuffix(opts.input, ext) + "_toc" + ext
		}
		if !isPDF {
			log.Error("bookmarks can only be written to PDF input; use --preview for other formats")
			return 1
		}
	}

	detectOpts := detect.Options{
		MaxLevel:        opts.maxLevel,
		MinCharCount:    cfg.MinCharCount,
		ZoneFraction:    cfg.ZoneFraction,
		RepeatThreshold: cfg.RepeatThreshold,
		Logger:          log,
	}

	entries, pageCount, code := loadEntries(log, opts, detectOpts)
	if entries == nil {
		return code
	}

	if opts.preview {
		fmt.Print(toctext.Serialize(entries))
		return 0
	}

	if opts.edit {
		edited, err := editor.Edit(cfg.Editor, toctext.Serialize(entries))
		if err != nil {
			log.Error("edit failed", "error", err)
			return 1
		}
		entries, err = toctext.Parse(edited)
		if errors.Is(err, toctext.ErrEmptyTOC) {
			fmt.Fprintln(os.Stderr, "No headings after editing. Aborted.")
			return 0
		}
		if err != nil {
			log.Error("edited TOC is invalid", "error", err)
			return 1
		}
	}

	// Refuse an existing output before any write happens.
	if !opts.replace {
		if _, err := os.Stat(outputPath); err == nil {
			log.Error("output already exists; pass --replace or choose another -o", "path", outputPath)
			return 1
		}
	}

	if pageCount == 0 {
		pageCount, err = writer.PageCount(opts.input)
		if err != nil {
			log.Error("cannot read input document", "error", err)
			return 1
		}
	}
	if err := writer.ValidatePages(entries, pageCount); err != nil {
		log.Error("invalid TOC", "error", err)
		return 1
	}

	if err := writer.Write(opts.input, outputPath, entries, opts.replace); err != nil {
		log.Error("write failed", "error", err)
		return 1
	}

	fmt.Printf("Wrote %d bookmarks -> %s\n", outline.Count(entries), outputPath)
	return 0
}

// loadEntries produces the outline from a TOC text file or by detection.
// A nil forest with code 0 means detection legitimately found nothing.
func loadEntries(log *slog.Logger, opts options, detectOpts detect.Options) ([]*outline.Entry, int, int) {
	if opts.tocFile != "" {
		text, err := os.ReadFile(opts.tocFile)
		if err != nil {
			log.Error("cannot read TOC file", "path", opts.tocFile, "error", err)
			return nil, 0, 1
		}
		entries, err := toctext.Parse(string(text))
		if errors.Is(err, toctext.ErrEmptyTOC) {
			log.Error("TOC file contains no headings", "path", opts.tocFile)
			return nil, 0, 1
		}
		if err != nil {
			log.Error("TOC file is invalid", "error", err)
			return nil, 0, 1
		}
		return entries, 0, 0
	}

	var (
		res *source.Result
		err error
	)
	if strings.EqualFold(filepath.Ext(opts.input), ".pdf") {
		// The file is already on disk; skip the temp-file copy.
		res, err = source.OutlinePDFFile(opts.input, detectOpts)
	} else {
		var src source.Source
		src, err = source.ForFile(opts.input)
		if err != nil {
			log.Error("unsupported input", "error", err)
			return nil, 0, 1
		}
		var f *os.File
		f, err = os.Open(opts.input)
		if err != nil {
			log.Error("cannot open input", "error", err)
			return nil, 0, 1
		}
		defer f.Close()
		res, err = src.Outline(f, filepath.Base(opts.input), detectOpts)
	}
	if err != nil {
		log.Error("detection failed", "error", err)
		return nil, 0, 1
	}
	if len(res.Entries) == 0 {
		fmt.Fprintln(os.Stderr, "No headings detected.")
		return nil, 0, 0
	}
	return res.Entries, res.PageCount, 0
}
