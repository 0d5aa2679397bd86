package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/galvamailru/chandra/pkg/client"
)

func main() {
	urlFlag := flag.String("url", "http://localhost:8000", "server url")
	tokenFlag := flag.String("token", "", "server token")
	rangeFlag := flag.String("page-range", "", "page range for PDFs, e.g. 1-5,7,9-12")
	htmlFlag := flag.Bool("html", false, "print html instead of markdown")

	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: client [flags] <file>")
		os.Exit(2)
	}

	path := flag.Arg(0)

	data, err := os.ReadFile(path)

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	options := []client.RequestOption{}

	if *tokenFlag != "" {
		options = append(options, client.WithToken(*tokenFlag))
	}

	c := client.New(*urlFlag, options...)

	result, err := c.Parses.New(context.Background(), client.ParseRequest{
		Name:    filepath.Base(path),
		Content: data,

		PageRange: *rangeFlag,
	})

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	for _, page := range result.Pages {
		if page.Error != "" {
			fmt.Fprintf(os.Stderr, "page %d: %s\n", page.Page, page.Error)
		}
	}

	if *htmlFlag {
		fmt.Println(result.HTML)
		return
	}

	fmt.Println(result.Markdown)
}
