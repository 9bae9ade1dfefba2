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

// Package chapters locates chapter boundaries in a PDF document outline.
//
// Every outline entry at a chosen nesting level is treated as the start of a
// chapter.  [Find] collects these entries as [Marker] values, and [Segment]
// turns the markers into inclusive page ranges, one per chapter.
package chapters

import (
	"errors"
	"fmt"
	"slices"

	"seehuhn.de/go/pdf/outline"
)

// ErrNoOutline indicates that the document contains no outline at all.
// This is distinct from an outline which has no entries at the
// requested level.
var ErrNoOutline = errors.New("document has no outline")

// Marker is a candidate chapter start found in the document outline.
type Marker struct {
	// Title is the outline entry's title, unmodified.
	Title string

	// Page is the zero-based page number the entry's destination points to.
	Page int

	// Depth is the entry's nesting depth in the outline tree.
	// Top-level entries have depth 0.
	Depth int
}

// PageFunc resolves an outline item's destination to a zero-based page
// number.  The second return value is false if the item has no destination
// or the destination cannot be resolved to a page of the document.
//
// Outline entries without page destinations are normal (section headings
// which only group their children, for example), so a PageFunc must not be
// treated as failing when it returns false.
type PageFunc func(item *outline.Item) (int, bool)

// Find returns the chapter markers at the given outline nesting level,
// in the order the entries appear in the outline.
//
// Entries at the requested level whose destination does not resolve are
// silently omitted.  Children are visited regardless of the current level,
// so chapter entries are found even in irregular outlines where the parent
// levels vary.
//
// A nil tree returns [ErrNoOutline].  An outline with no resolvable entries
// at the requested level returns an empty slice and no error.
func Find(tree *outline.Outline, page PageFunc, level int) ([]Marker, error) {
	if tree == nil {
		return nil, ErrNoOutline
	}
	if level < 0 {
		return nil, fmt.Errorf("invalid chapter level %d", level)
	}

	var markers []Marker
	collect(tree.Items, page, level, 0, &markers)
	return markers, nil
}

func collect(items []*outline.Item, page PageFunc, level, depth int, markers *[]Marker) {
	for _, item := range items {
		if item == nil {
			continue
		}
		if depth == level {
			if pageNo, ok := page(item); ok {
				*markers = append(*markers, Marker{
					Title: item.Title,
					Page:  pageNo,
					Depth: depth,
				})
			}
		}
		collect(item.Children, page, level, depth+1, markers)
	}
}

// Depths returns the sorted list of nesting levels at which the outline
// contains at least one entry with a resolvable page destination.  This can
// be used to suggest alternative levels when [Find] comes back empty.
//
// A nil tree returns nil.
func Depths(tree *outline.Outline, page PageFunc) []int {
	if tree == nil {
		return nil
	}

	seen := make(map[int]bool)
	scanDepths(tree.Items, page, 0, seen)

	depths := make([]int, 0, len(seen))
	for d := range seen {
		depths = append(depths, d)
	}
	slices.Sort(depths)
	return depths
}

func scanDepths(items []*outline.Item, page PageFunc, depth int, seen map[int]bool) {
	for _, item := range items {
		if item == nil {
			continue
		}
		if _, ok := page(item); ok {
			seen[depth] = true
		}
		scanDepths(item.Children, page, depth+1, seen)
	}
}
