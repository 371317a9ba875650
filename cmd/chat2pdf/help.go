package main

import (
	"fmt"
	"io"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: chat2pdf [flags] [input.json]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render a JSON chat export into paginated PDF files.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    Chat export (default: input.path from config, or chats.json)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <dir>        Output directory (default: current)")
	fmt.Fprintln(w, "  -n, --name <s>            Output file stem (default: output)")
	fmt.Fprintln(w, "                            \"auto\" = derived from the input file name")
	fmt.Fprintln(w, "  -i, --images <dir>        Image directory (default: images)")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Page:")
	fmt.Fprintln(w, "  -p, --page-size <s>       Page size: letter, a4, legal")
	fmt.Fprintln(w, "      --orientation <s>     Orientation: portrait, landscape")
	fmt.Fprintln(w, "      --max-pages <n>       Pages per file before starting the next (default: 100)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show warnings and errors")
	fmt.Fprintln(w, "  -v, --verbose             Show per-message progress")
	fmt.Fprintln(w, "      --version             Show version information")
	fmt.Fprintln(w, "      --completion <shell>  Print a completion script (bash, zsh, fish, powershell)")
	fmt.Fprintln(w, "  -h, --help                Show this help")
}
