package main

// Notes:
// - GenerateCompletion: we test that scripts carry the expected markers and
//   flag values. We do not run them in the target shells.

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestGenerateCompletion_SupportedShells - Shell completion script generation
// ---------------------------------------------------------------------------

func TestGenerateCompletion_SupportedShells(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		shell        Shell
		wantContains []string
	}{
		{
			name:  "bash",
			shell: ShellBash,
			wantContains: []string{
				"_chat2pdf_completions",
				"complete -o filenames -o plusdirs -F _chat2pdf_completions chat2pdf",
				"-p|--page-size)",
				`compgen -W "letter a4 legal"`,
				`compgen -W "portrait landscape"`,
				"-o|--output)",
				"compgen -d",
				"'!@(*.yaml|*.yml)'",
				"'!*.json'",
			},
		},
		{
			name:  "zsh",
			shell: ShellZsh,
			wantContains: []string{
				"#compdef chat2pdf",
				"_arguments",
				"'(-p --page-size)'{-p,--page-size}",
				":value:(letter a4 legal)",
				"'--orientation[",
				":value:(portrait landscape)",
				":directory:_files -/",
				`_files -g "*.json"`,
			},
		},
		{
			name:  "fish",
			shell: ShellFish,
			wantContains: []string{
				"complete -c chat2pdf -f",
				"-s p -l page-size",
				"-x -a 'letter a4 legal'",
				"-l orientation",
				"-x -a 'portrait landscape'",
				"__fish_complete_directories",
				"__fish_complete_suffix .json",
			},
		},
		{
			name:  "powershell",
			shell: ShellPowerShell,
			wantContains: []string{
				"Register-ArgumentCompleter -Native -CommandName chat2pdf",
				"CompletionResult",
				"'--page-size' = @('letter', 'a4', 'legal')",
				"'-p' = @('letter', 'a4', 'legal')",
				"'--orientation' = @('portrait', 'landscape')",
				"@{ Name = '--output'",
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			if err := GenerateCompletion(&buf, tt.shell); err != nil {
				t.Fatalf("GenerateCompletion(%q) error = %v", tt.shell, err)
			}
			out := buf.String()
			for _, want := range tt.wantContains {
				if !strings.Contains(out, want) {
					t.Errorf("output missing %q", want)
				}
			}
			// Every registered flag is offered.
			for _, fd := range completionFlags() {
				if !strings.Contains(out, fd.Long) {
					t.Errorf("output missing flag %q", fd.Long)
				}
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestGenerateCompletion_UnsupportedShell - Error handling for unknown shells
// ---------------------------------------------------------------------------

func TestGenerateCompletion_UnsupportedShell(t *testing.T) {
	t.Parallel()

	for _, shell := range []Shell{"", "sh", "ksh"} {
		shell := shell
		t.Run(string(shell), func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			err := GenerateCompletion(&buf, shell)
			if !errors.Is(err, ErrUnsupportedShell) {
				t.Fatalf("error = %v, want ErrUnsupportedShell", err)
			}
			if buf.Len() != 0 {
				t.Errorf("wrote %q on error", buf.String())
			}
			if exitCodeFor(err) != ExitUsage {
				t.Errorf("exitCodeFor() = %d, want %d", exitCodeFor(err), ExitUsage)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestCompletionFlags - Flag metadata extracted from the CLI FlagSet
// ---------------------------------------------------------------------------

func TestCompletionFlags(t *testing.T) {
	t.Parallel()

	want := map[string]flagType{
		"page-size":   flagEnum,
		"orientation": flagEnum,
		"completion":  flagEnum,
		"config":      flagFile,
		"output":      flagDir,
		"images":      flagDir,
		"name":        flagString,
		"max-pages":   flagInt,
		"quiet":       flagBool,
		"verbose":     flagBool,
		"version":     flagBool,
	}

	got := make(map[string]flagDef)
	for _, fd := range completionFlags() {
		got[fd.Long] = fd
	}
	if len(got) != len(want) {
		t.Errorf("got %d flags, want %d", len(got), len(want))
	}
	for name, typ := range want {
		fd, ok := got[name]
		if !ok {
			t.Errorf("flag %q missing", name)
			continue
		}
		if fd.Type != typ {
			t.Errorf("flag %q type = %d, want %d", name, fd.Type, typ)
		}
	}
	if got["page-size"].Short != "p" {
		t.Errorf("page-size short = %q, want p", got["page-size"].Short)
	}
}
