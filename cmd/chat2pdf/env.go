package main

import (
	"io"
	"os"

	chat2pdf "github.com/alnah/go-chat2pdf"
)

// Environment holds injectable dependencies for testability.
type Environment struct {
	Stdout io.Writer
	Stderr io.Writer
	Opener chat2pdf.SurfaceOpener // nil = PDF files on disk
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}
