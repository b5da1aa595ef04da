// seehuhn.de/go/docrender - convert documents to PDF and page images
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.


// Command docrender converts a document into a PDF file, a ZIP archive
// of page images, or the JSON form of the document model.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"golang.org/x/term"
	"pkt.systems/version"

	"seehuhn.de/go/docrender"
	"seehuhn.de/go/docrender/ir"
	"seehuhn.de/go/docrender/raster"
)

type options struct {
	output      string
	format      string
	dpi         float64
	background  string
	fonts       []string
	builtinFont string
	workers     int
	verbose     bool
}

var errUsage = errors.New("usage error")

func main() {
	var (
		opts        options
		showVersion bool
	)

	flags := pflag.NewFlagSet("docrender", pflag.ExitOnError)
	flags.StringVarP(&opts.output, "output", "o", "", "Output file instead of stdout")
	flags.StringVarP(&opts.format, "format", "f", "", "Output format: pdf|zip|json (default from output name, else pdf)")
	flags.Float64Var(&opts.dpi, "dpi", raster.DefaultDPI, "Resolution of page images")
	flags.StringVar(&opts.background, "background", "ffffff", "Background color of page images, RRGGBB[AA]")
	flags.StringArrayVar(&opts.fonts, "font", nil, "External font as name=path (repeatable)")
	flags.StringVar(&opts.builtinFont, "builtin-font", "", "TTF/OTF path of the builtin font (default Go Regular)")
	flags.IntVar(&opts.workers, "workers", 1, "Number of pages rendered in parallel")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Log debug messages")
	flags.BoolVar(&showVersion, "version", false, "Print version and exit")
	flags.Usage = func() {
		fmt.Fprintln(os.Stderr, version.Module(), version.Current())
		fmt.Fprintf(os.Stderr, "Usage: docrender [flags] input\n")
		fmt.Fprintln(os.Stderr, "\nFlags:")
		flags.PrintDefaults()
	}
	if err := flags.Parse(os.Args[1:]); err != nil {
		os.Exit(2)
	}

	if showVersion {
		fmt.Println(docrender.Version())
		return
	}

	level := slog.LevelInfo
	if opts.verbose {
		level = slog.LevelDebug
	}
	docrender.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if flags.NArg() != 1 {
		flags.Usage()
		os.Exit(2)
	}

	if err := run(flags.Arg(0), opts, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "docrender: %v\n", err)
		if errors.Is(err, errUsage) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func run(input string, opts options, stdout io.Writer) error {
	format, err := resolveFormat(opts.format, opts.output)
	if err != nil {
		return err
	}

	c, err := newConverter(opts)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(input)
	if err != nil {
		return err
	}
	name := filepath.Base(input)

	var out []byte
	switch format {
	case "pdf":
		out, err = c.ConvertToPDF(name, data)
	case "zip":
		out, err = c.ConvertToImagesZip(name, data, opts.dpi)
	case "json":
		var s string
		s, err = c.ConvertToJSON(name, data)
		out = []byte(s + "\n")
	}
	if err != nil {
		return err
	}

	if opts.output == "" {
		if format != "json" && isTerminal(stdout) {
			return fmt.Errorf("%w: refusing to write %s to terminal; use -o/--output", errUsage, format)
		}
		_, err = stdout.Write(out)
		return err
	}
	return os.WriteFile(opts.output, out, 0o644)
}

// resolveFormat returns the output format.  Without an explicit format,
// the extension of the output file name is used.
func resolveFormat(format, output string) (string, error) {
	if format == "" {
		switch strings.ToLower(filepath.Ext(output)) {
		case ".zip":
			return "zip", nil
		case ".json":
			return "json", nil
		default:
			return "pdf", nil
		}
	}
	switch f := strings.ToLower(format); f {
	case "pdf", "zip", "json":
		return f, nil
	case "images_zip":
		return "zip", nil
	}
	return "", fmt.Errorf("%w: unknown format %q", errUsage, format)
}

func newConverter(opts options) (*docrender.Converter, error) {
	var c *docrender.Converter
	if opts.builtinFont != "" {
		data, err := os.ReadFile(opts.builtinFont)
		if err != nil {
			return nil, fmt.Errorf("builtin font: %w", err)
		}
		name := strings.TrimSuffix(filepath.Base(opts.builtinFont), filepath.Ext(opts.builtinFont))
		c = docrender.NewConverter(name, data)
	} else {
		c = docrender.DefaultConverter()
	}

	for _, arg := range opts.fonts {
		name, path, err := parseFontFlag(arg)
		if err != nil {
			return nil, err
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("font %q: %w", name, err)
		}
		c.AddFont(name, data)
	}

	bg, err := ir.ParseHex(opts.background)
	if err != nil {
		return nil, fmt.Errorf("%w: --background: %v", errUsage, err)
	}
	c.Raster.Background = bg
	c.Raster.Workers = opts.workers
	return c, nil
}

// parseFontFlag splits a --font value of the form name=path.
func parseFontFlag(arg string) (name, path string, err error) {
	name, path, ok := strings.Cut(arg, "=")
	name = strings.TrimSpace(name)
	if !ok || name == "" || path == "" {
		return "", "", fmt.Errorf("%w: --font %q: expected name=path", errUsage, arg)
	}
	return name, path, nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
