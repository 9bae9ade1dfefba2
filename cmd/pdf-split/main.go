// seehuhn.de/go/pdfsplit - split a PDF file into chapters
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

// Pdf-split splits a PDF file into one file per chapter, using the document
// outline (bookmarks) to determine chapter boundaries.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/outline"
	"seehuhn.de/go/pdf/pagetree"

	"seehuhn.de/go/pdfsplit/chapters"
	"seehuhn.de/go/pdfsplit/internal/buildinfo"
	"seehuhn.de/go/pdfsplit/internal/profile"
	"seehuhn.de/go/pdfsplit/split"
)

// config holds all command-line flag values.
type config struct {
	outDir   string
	level    int
	force    bool
	listOnly bool
}

func main() {
	cpuprofile := flag.String("cpuprofile", "", "write cpu profile to `file`")
	memprofile := flag.String("memprofile", "", "write memory profile to `file`")

	var cfg config
	flag.StringVar(&cfg.outDir, "o", "chapters_output", "directory for the chapter files")
	flag.IntVar(&cfg.level, "l", 0, "outline nesting level to treat as chapter level (0 = top level)")
	flag.BoolVar(&cfg.force, "f", false, "overwrite existing output files")
	flag.BoolVar(&cfg.listOnly, "n", false, "list chapters without writing any files")
	help := flag.Bool("help", false, "show help information")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "pdf-split \u2014 split a PDF file into chapters\n")
		fmt.Fprintf(os.Stderr, "%s\n\n", buildinfo.Short("pdf-split"))
		fmt.Fprintf(os.Stderr, "Usage:\n")
		fmt.Fprintf(os.Stderr, "  pdf-split [options] <file.pdf>\n\n")
		fmt.Fprintf(os.Stderr, "Chapter boundaries are taken from the document outline (bookmarks):\n")
		fmt.Fprintf(os.Stderr, "every outline entry at the chosen nesting level starts a new chapter.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  pdf-split book.pdf\n")
		fmt.Fprintf(os.Stderr, "  pdf-split -l 1 -o parts book.pdf\n")
		fmt.Fprintf(os.Stderr, "  pdf-split -n book.pdf\n")
	}

	flag.Parse()

	if *help {
		flag.Usage()
		return
	}
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}

	if err := run(cfg, flag.Arg(0), *cpuprofile, *memprofile); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cfg config, filename, cpuprofile, memprofile string) error {
	stop, err := profile.Start(cpuprofile, memprofile)
	if err != nil {
		return err
	}
	defer stop()

	doc, err := pdf.Open(filename, nil)
	if err != nil {
		return fmt.Errorf("failed to open PDF: %w", err)
	}
	defer doc.Close()

	numPages, err := pagetree.NumPages(doc)
	if err != nil {
		return fmt.Errorf("failed to read page tree: %w", err)
	}

	tree, err := outline.Read(doc)
	if err != nil {
		return fmt.Errorf("failed to read outline: %w", err)
	}

	page := chapters.NewPageFunc(doc)

	markers, err := chapters.Find(tree, page, cfg.level)
	if errors.Is(err, chapters.ErrNoOutline) {
		return fmt.Errorf("%s has no outline, cannot determine chapter boundaries", filename)
	} else if err != nil {
		return err
	}

	if len(markers) == 0 {
		depths := chapters.Depths(tree, page)
		if len(depths) == 0 {
			fmt.Println("No page-linking bookmarks found in the document.")
		} else {
			fmt.Printf("No chapter bookmarks at level %d.\n", cfg.level)
			fmt.Printf("Bookmarks found at levels %s; try one of these with -l.\n",
				levelList(depths))
		}
		return nil
	}

	ranges, skipped, err := chapters.Segment(markers, numPages)
	if err != nil {
		return err
	}
	for _, m := range skipped {
		fmt.Fprintf(os.Stderr, "warning: skipping chapter %q (start page %d does not give a valid range in a document with %d pages)\n",
			m.Title, m.Page+1, numPages)
	}
	if len(ranges) == 0 {
		return fmt.Errorf("no usable chapters at level %d", cfg.level)
	}

	if cfg.listOnly {
		for i, ch := range ranges {
			fmt.Printf("%3d  pages %d-%d  %s\n", i+1, ch.First+1, ch.Last+1, ch.Title)
		}
		return nil
	}

	if err := os.MkdirAll(cfg.outDir, 0755); err != nil {
		return err
	}

	for i, ch := range ranges {
		name := split.Filename(i+1, ch.Title)
		path := filepath.Join(cfg.outDir, name)

		if err := writeFile(doc, ch, path, cfg.force); err != nil {
			return err
		}
		fmt.Printf("wrote %s (pages %d-%d)\n", path, ch.First+1, ch.Last+1)
	}

	fmt.Printf("split %s into %d chapters in %s\n", filename, len(ranges), cfg.outDir)
	return nil
}

// writeFile writes one chapter to path, refusing to overwrite existing
// files unless force is set.  A partially written file is removed on error.
func writeFile(doc pdf.Getter, ch chapters.Range, path string, force bool) error {
	flags := os.O_WRONLY | os.O_CREATE
	if force {
		flags |= os.O_TRUNC
	} else {
		flags |= os.O_EXCL
	}
	f, err := os.OpenFile(path, flags, 0666)
	if err != nil {
		if os.IsExist(err) {
			return fmt.Errorf("file %s already exists (use -f to overwrite)", path)
		}
		return err
	}

	if err := split.WriteChapter(doc, ch, f); err != nil {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return f.Close()
}

func levelList(depths []int) string {
	parts := make([]string, len(depths))
	for i, d := range depths {
		parts[i] = strconv.Itoa(d)
	}
	return strings.Join(parts, ", ")
}
