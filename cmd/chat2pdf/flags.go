package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// outputFlags holds output destination flags.
type outputFlags struct {
	dir  string
	name string
}

// layoutFlags holds page and pagination flags.
type layoutFlags struct {
	size        string
	orientation string
	maxPages    int
}

// renderFlags holds all flags of the CLI.
type renderFlags struct {
	config  string
	images  string
	quiet   bool
	verbose bool
	version bool
	shell   string
	output  outputFlags
	layout  layoutFlags
}

// addOutputFlags adds output flags to a FlagSet.
func addOutputFlags(fs *flag.FlagSet, f *outputFlags) {
	fs.StringVarP(&f.dir, "output", "o", "", "output directory")
	fs.StringVarP(&f.name, "name", "n", "", "output file stem (\"auto\" = from input file name)")
}

// addLayoutFlags adds page and pagination flags to a FlagSet.
func addLayoutFlags(fs *flag.FlagSet, f *layoutFlags) {
	fs.StringVarP(&f.size, "page-size", "p", "", "page size: letter, a4, legal")
	fs.StringVar(&f.orientation, "orientation", "", "page orientation: portrait, landscape")
	fs.IntVar(&f.maxPages, "max-pages", 0, "pages per output document before rotating")
}

// addRenderFlags registers every CLI flag. Completion scripts are generated
// from the same FlagSet.
func addRenderFlags(fs *flag.FlagSet, f *renderFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.StringVarP(&f.images, "images", "i", "", "image directory")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show warnings and errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show per-message progress")
	fs.BoolVar(&f.version, "version", false, "show version information")
	fs.StringVar(&f.shell, "completion", "", "print a completion script: bash, zsh, fish, powershell")
	addOutputFlags(fs, &f.output)
	addLayoutFlags(fs, &f.layout)
}

// parseFlags parses CLI flags and returns positional args.
// Usage goes to w when -h/--help is given or parsing fails.
func parseFlags(args []string, w io.Writer) (*renderFlags, []string, error) {
	fs := flag.NewFlagSet("chat2pdf", flag.ContinueOnError)
	f := &renderFlags{}
	addRenderFlags(fs, f)

	fs.SetOutput(w)
	fs.Usage = func() { printUsage(w) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
