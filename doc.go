// Package chat2pdf renders chat exports into paginated PDF documents.
//
// # Quick Start
//
// Load the records, build a renderer and render:
//
//	records, err := chat2pdf.LoadRecords("chats.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	r, err := chat2pdf.NewRenderer(
//	    chat2pdf.WithImageDir("images"),
//	    chat2pdf.WithOutputDir("out"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := r.Render(ctx, records)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, doc := range result.Documents {
//	    fmt.Println(doc.Path, doc.Pages)
//	}
//
// # Input
//
// The export is a JSON list of objects:
//
//	[{"author": "Alice", "timestamp": "t1", "content": {"Message": "Hello"}}]
//
// A message starting with "mxc://" is an image reference. Its last path
// segment is the identifier looked up in the image directory as
// "<id>.<any extension>".
//
// # Layout
//
// Records flow top to bottom. Each gets a bold "<timestamp> - <author>:"
// header, then its text wrapped at 80 columns or its image scaled into a
// 300x300 box. A new page starts when less than 40 points remain before a
// header or when an image does not fit. Every page carries a "Page N"
// footer. After MaxPagesPerDocument pages the document is closed and the
// next one is opened: output.pdf, output_2.pdf, output_3.pdf, ...
//
// Missing or broken images never stop a run: a bracketed placeholder line
// takes their place so the gap is visible in the PDF itself.
//
// # Logging
//
// Progress is reported through a *zap.Logger set with WithLogger. The
// default logger discards everything.
package chat2pdf
