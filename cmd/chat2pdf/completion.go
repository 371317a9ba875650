package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	flag "github.com/spf13/pflag"

	chat2pdf "github.com/alnah/go-chat2pdf"
)

// Shell represents a supported shell for completion generation.
type Shell string

// Supported shells for completion.
const (
	ShellBash       Shell = "bash"
	ShellZsh        Shell = "zsh"
	ShellFish       Shell = "fish"
	ShellPowerShell Shell = "powershell"
)

// ErrUnsupportedShell is returned when an unknown shell is requested.
var ErrUnsupportedShell = errors.New("unsupported shell")

// flagType represents the completion type for a flag.
type flagType int

const (
	flagString flagType = iota // default
	flagBool
	flagInt
	flagEnum // has predefined values
	flagFile // file with glob pattern
	flagDir  // directory
)

// flagDef describes a flag for completion purposes.
type flagDef struct {
	Long     string   // --output
	Short    string   // -o (empty if none)
	Type     flagType // completion type
	Desc     string   // help text
	Values   []string // for enum flags
	FileGlob []string // for file flags
}

// completionMeta holds completion hints that the FlagSet does not carry.
type completionMeta struct {
	Values   []string
	FileGlob []string
	IsDir    bool
}

// flagCompletionMeta maps flag names to their completion metadata.
var flagCompletionMeta = map[string]completionMeta{
	"page-size":   {Values: pageSizeNames()},
	"orientation": {Values: []string{chat2pdf.OrientationPortrait, chat2pdf.OrientationLandscape}},
	"completion":  {Values: []string{string(ShellBash), string(ShellZsh), string(ShellFish), string(ShellPowerShell)}},

	"config": {FileGlob: []string{"*.yaml", "*.yml"}},

	"output": {IsDir: true},
	"images": {IsDir: true},
}

// inputGlob is the pattern offered for the positional chat export.
const inputGlob = "*.json"

func pageSizeNames() []string {
	return []string{chat2pdf.PageSizeLetter, chat2pdf.PageSizeA4, chat2pdf.PageSizeLegal}
}

// completionFlags extracts flag definitions from the CLI FlagSet and enriches
// them with flagCompletionMeta.
func completionFlags() []flagDef {
	fs := flag.NewFlagSet("chat2pdf", flag.ContinueOnError)
	addRenderFlags(fs, &renderFlags{})

	var flags []flagDef
	fs.VisitAll(func(f *flag.Flag) {
		fd := flagDef{Long: f.Name, Short: f.Shorthand, Desc: f.Usage}
		switch f.Value.Type() {
		case "bool":
			fd.Type = flagBool
		case "int":
			fd.Type = flagInt
		default:
			fd.Type = flagString
		}
		if meta, ok := flagCompletionMeta[f.Name]; ok {
			switch {
			case len(meta.Values) > 0:
				fd.Type = flagEnum
				fd.Values = meta.Values
			case len(meta.FileGlob) > 0:
				fd.Type = flagFile
				fd.FileGlob = meta.FileGlob
			case meta.IsDir:
				fd.Type = flagDir
			}
		}
		flags = append(flags, fd)
	})
	return flags
}

// GenerateCompletion writes a shell completion script to w.
func GenerateCompletion(w io.Writer, shell Shell) error {
	flags := completionFlags()
	var script string
	switch shell {
	case ShellBash:
		script = bashScript(flags)
	case ShellZsh:
		script = zshScript(flags)
	case ShellFish:
		script = fishScript(flags)
	case ShellPowerShell:
		script = powerShellScript(flags)
	default:
		return fmt.Errorf("%w: %q (supported: bash, zsh, fish, powershell)", ErrUnsupportedShell, shell)
	}
	_, err := io.WriteString(w, script)
	return err
}

// names returns the spellings of a flag as typed on the command line.
func (fd flagDef) names() []string {
	if fd.Short == "" {
		return []string{"--" + fd.Long}
	}
	return []string{"-" + fd.Short, "--" + fd.Long}
}

func bashScript(flags []flagDef) string {
	var b strings.Builder
	var all []string
	b.WriteString("# bash completion for chat2pdf\n")
	b.WriteString("_chat2pdf_completions() {\n")
	b.WriteString("    local cur prev\n")
	b.WriteString("    cur=\"${COMP_WORDS[COMP_CWORD]}\"\n")
	b.WriteString("    prev=\"${COMP_WORDS[COMP_CWORD-1]}\"\n")
	b.WriteString("    case \"$prev\" in\n")
	for _, fd := range flags {
		all = append(all, fd.names()...)
		pattern := strings.Join(fd.names(), "|")
		switch fd.Type {
		case flagEnum:
			fmt.Fprintf(&b, "        %s)\n            COMPREPLY=($(compgen -W \"%s\" -- \"$cur\"))\n            return ;;\n",
				pattern, strings.Join(fd.Values, " "))
		case flagDir:
			fmt.Fprintf(&b, "        %s)\n            COMPREPLY=($(compgen -d -- \"$cur\"))\n            return ;;\n", pattern)
		case flagFile:
			fmt.Fprintf(&b, "        %s)\n            COMPREPLY=($(compgen -f -X '!@(%s)' -- \"$cur\"))\n            return ;;\n",
				pattern, strings.Join(fd.FileGlob, "|"))
		case flagString, flagInt:
			fmt.Fprintf(&b, "        %s)\n            return ;;\n", pattern)
		}
	}
	b.WriteString("    esac\n")
	b.WriteString("    if [[ \"$cur\" == -* ]]; then\n")
	fmt.Fprintf(&b, "        COMPREPLY=($(compgen -W \"%s\" -- \"$cur\"))\n", strings.Join(all, " "))
	b.WriteString("        return\n")
	b.WriteString("    fi\n")
	fmt.Fprintf(&b, "    COMPREPLY=($(compgen -f -X '!%s' -- \"$cur\"))\n", inputGlob)
	b.WriteString("}\n")
	b.WriteString("shopt -s extglob\n")
	b.WriteString("complete -o filenames -o plusdirs -F _chat2pdf_completions chat2pdf\n")
	return b.String()
}

func zshScript(flags []flagDef) string {
	var b strings.Builder
	b.WriteString("#compdef chat2pdf\n\n")
	b.WriteString("_chat2pdf() {\n")
	b.WriteString("    _arguments -s \\\n")
	for _, fd := range flags {
		desc := zshEscape(fd.Desc)
		var spec string
		if fd.Short == "" {
			spec = fmt.Sprintf("'--%s[%s]", fd.Long, desc)
		} else {
			spec = fmt.Sprintf("'(-%s --%s)'{-%s,--%s}'[%s]", fd.Short, fd.Long, fd.Short, fd.Long, desc)
		}
		switch fd.Type {
		case flagEnum:
			spec += fmt.Sprintf(":value:(%s)", strings.Join(fd.Values, " "))
		case flagDir:
			spec += ":directory:_files -/"
		case flagFile:
			spec += fmt.Sprintf(":file:_files -g \"%s\"", strings.Join(fd.FileGlob, " "))
		case flagString, flagInt:
			spec += ":value:"
		}
		fmt.Fprintf(&b, "        %s' \\\n", spec)
	}
	fmt.Fprintf(&b, "        '1:chat export:_files -g \"%s\"'\n", inputGlob)
	b.WriteString("}\n\n")
	b.WriteString("_chat2pdf \"$@\"\n")
	return b.String()
}

func zshEscape(s string) string {
	return strings.NewReplacer("'", `'\''`, "[", `\[`, "]", `\]`, ":", `\:`).Replace(s)
}

func fishScript(flags []flagDef) string {
	var b strings.Builder
	b.WriteString("# fish completion for chat2pdf\n")
	b.WriteString("complete -c chat2pdf -f\n")
	for _, fd := range flags {
		line := "complete -c chat2pdf"
		if fd.Short != "" {
			line += " -s " + fd.Short
		}
		line += fmt.Sprintf(" -l %s -d '%s'", fd.Long, fishEscape(fd.Desc))
		switch fd.Type {
		case flagEnum:
			line += fmt.Sprintf(" -x -a '%s'", strings.Join(fd.Values, " "))
		case flagDir:
			line += " -x -a '(__fish_complete_directories)'"
		case flagFile:
			line += " -r -F"
		case flagString, flagInt:
			line += " -x"
		}
		b.WriteString(line + "\n")
	}
	fmt.Fprintf(&b, "complete -c chat2pdf -k -a '(__fish_complete_suffix %s)'\n", strings.TrimPrefix(inputGlob, "*"))
	return b.String()
}

func fishEscape(s string) string {
	return strings.NewReplacer(`\`, `\\`, "'", `\'`).Replace(s)
}

func powerShellScript(flags []flagDef) string {
	var b strings.Builder
	b.WriteString("# PowerShell completion for chat2pdf\n")
	b.WriteString("Register-ArgumentCompleter -Native -CommandName chat2pdf -ScriptBlock {\n")
	b.WriteString("    param($wordToComplete, $commandAst, $cursorPosition)\n\n")
	b.WriteString("    $flags = @(\n")
	for _, fd := range flags {
		for _, name := range fd.names() {
			fmt.Fprintf(&b, "        @{ Name = '%s'; Desc = '%s' }\n", name, psEscape(fd.Desc))
		}
	}
	b.WriteString("    )\n")
	b.WriteString("    $values = @{\n")
	for _, fd := range flags {
		if fd.Type != flagEnum {
			continue
		}
		quoted := make([]string, len(fd.Values))
		for i, v := range fd.Values {
			quoted[i] = "'" + psEscape(v) + "'"
		}
		for _, name := range fd.names() {
			fmt.Fprintf(&b, "        '%s' = @(%s)\n", name, strings.Join(quoted, ", "))
		}
	}
	b.WriteString("    }\n\n")
	b.WriteString("    $words = @($commandAst.CommandElements | ForEach-Object { $_.ToString() })\n")
	b.WriteString("    $prev = if ($wordToComplete) { $words[-2] } else { $words[-1] }\n")
	b.WriteString("    if ($prev -and $values.ContainsKey($prev)) {\n")
	b.WriteString("        $values[$prev] | Where-Object { $_ -like \"$wordToComplete*\" } | ForEach-Object {\n")
	b.WriteString("            [System.Management.Automation.CompletionResult]::new($_, $_, 'ParameterValue', $_)\n")
	b.WriteString("        }\n")
	b.WriteString("        return\n")
	b.WriteString("    }\n")
	b.WriteString("    if ($wordToComplete -like '-*') {\n")
	b.WriteString("        $flags | Where-Object { $_.Name -like \"$wordToComplete*\" } | ForEach-Object {\n")
	b.WriteString("            [System.Management.Automation.CompletionResult]::new($_.Name, $_.Name, 'ParameterName', $_.Desc)\n")
	b.WriteString("        }\n")
	b.WriteString("        return\n")
	b.WriteString("    }\n")
	fmt.Fprintf(&b, "    Get-ChildItem -Filter '%s' -Name | Where-Object { $_ -like \"$wordToComplete*\" } | ForEach-Object {\n", inputGlob)
	b.WriteString("        [System.Management.Automation.CompletionResult]::new($_, $_, 'ProviderItem', $_)\n")
	b.WriteString("    }\n")
	b.WriteString("}\n")
	return b.String()
}

func psEscape(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}
