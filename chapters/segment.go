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

package chapters

import (
	"fmt"
	"slices"
)

// Range is one chapter's contiguous span of pages.
// First and Last are zero-based and inclusive.
type Range struct {
	Title string
	First int
	Last  int
}

// NumPages returns the number of pages in the range.
func (r Range) NumPages() int {
	return r.Last - r.First + 1
}

// Segment converts chapter markers into page ranges.  Each chapter extends
// from its marker's page to the page before the next chapter's first page;
// the last chapter extends to the end of the document.
//
// Markers are sorted by page first.  The sort is stable, so of several
// markers pointing to the same page the one appearing first in the outline
// wins and the others are dropped (a chapter heading and its first section
// often share a page; they must not produce an empty chapter).  Markers
// pointing outside the document are removed before chapter boundaries are
// computed and returned in skipped.  After deduplication and this filtering
// the remaining pages are strictly increasing within the document, so every
// surviving marker yields a non-empty, in-bounds chapter.
//
// The returned ranges are sorted by page and do not overlap.  numPages must
// be at least 1.
func Segment(markers []Marker, numPages int) (ranges []Range, skipped []Marker, err error) {
	if numPages < 1 {
		return nil, nil, fmt.Errorf("invalid page count %d", numPages)
	}

	ms := slices.Clone(markers)
	slices.SortStableFunc(ms, func(a, b Marker) int {
		return a.Page - b.Page
	})
	ms = slices.CompactFunc(ms, func(a, b Marker) bool {
		return a.Page == b.Page
	})

	valid := ms[:0]
	for _, m := range ms {
		if m.Page < 0 || m.Page >= numPages {
			skipped = append(skipped, m)
			continue
		}
		valid = append(valid, m)
	}
	ms = valid

	for i, m := range ms {
		last := numPages - 1
		if i+1 < len(ms) {
			last = ms[i+1].Page - 1
		}
		ranges = append(ranges, Range{
			Title: m.Title,
			First: m.Page,
			Last:  last,
		})
	}
	return ranges, skipped, nil
}
