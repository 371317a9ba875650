package chat2pdf_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	chat2pdf "github.com/alnah/go-chat2pdf"
)

// Example renders a small export into a temporary directory.
func Example() {
	dir, err := os.MkdirTemp("", "chat2pdf-example")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	defer os.RemoveAll(dir)

	records, err := chat2pdf.ParseRecords([]byte(`[
		{"author": "Alice", "timestamp": "2024-01-01 10:00", "content": {"Message": "Hello"}},
		{"author": "Bob", "timestamp": "2024-01-01 10:01", "content": {"Message": "mxc://server/abc123"}}
	]`))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	r, err := chat2pdf.NewRenderer(
		chat2pdf.WithImageDir(filepath.Join(dir, "images")),
		chat2pdf.WithOutputDir(dir),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	result, err := r.Render(context.Background(), records)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for _, doc := range result.Documents {
		fmt.Println(filepath.Base(doc.Path), doc.Pages)
	}
	fmt.Println(result.Placeholders[0])
	// Output:
	// output.pdf 1
	// [Image not found for reference: mxc://server/abc123]
}

// ExampleParseRecords shows the defaults applied to incomplete records.
func ExampleParseRecords() {
	records, err := chat2pdf.ParseRecords([]byte(`[{"content": {"Message": "hi"}}]`))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("%q\n", records[0].Header())
	// Output: " - Unknown:"
}

// ExampleScaleImage fits a wide image into the 300 point box.
func ExampleScaleImage() {
	w, h := chat2pdf.ScaleImage(1200, 600, 300, 300, 692)
	fmt.Println(w, h)
	// Output: 300 150
}
