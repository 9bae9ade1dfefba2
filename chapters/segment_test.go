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
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSegment(t *testing.T) {
	type testCase struct {
		name        string
		markers     []Marker
		numPages    int
		want        []Range
		wantSkipped []Marker
	}
	cases := []testCase{
		{
			name: "three chapters",
			markers: []Marker{
				{Title: "Intro", Page: 0},
				{Title: "Ch1", Page: 5},
				{Title: "Ch2", Page: 12},
			},
			numPages: 20,
			want: []Range{
				{Title: "Intro", First: 0, Last: 4},
				{Title: "Ch1", First: 5, Last: 11},
				{Title: "Ch2", First: 12, Last: 19},
			},
		},
		{
			name:     "single chapter",
			markers:  []Marker{{Title: "All", Page: 3}},
			numPages: 10,
			want:     []Range{{Title: "All", First: 3, Last: 9}},
		},
		{
			name: "duplicate pages keep first",
			markers: []Marker{
				{Title: "A", Page: 3},
				{Title: "B", Page: 3},
				{Title: "C", Page: 3},
			},
			numPages: 10,
			want:     []Range{{Title: "A", First: 3, Last: 9}},
		},
		{
			name: "unsorted input",
			markers: []Marker{
				{Title: "Ch2", Page: 12},
				{Title: "Intro", Page: 0},
				{Title: "Ch1", Page: 5},
			},
			numPages: 20,
			want: []Range{
				{Title: "Intro", First: 0, Last: 4},
				{Title: "Ch1", First: 5, Last: 11},
				{Title: "Ch2", First: 12, Last: 19},
			},
		},
		{
			name: "stable tie break",
			// X appears before Y in the outline; after sorting, X must
			// still come first and survive deduplication.
			markers: []Marker{
				{Title: "B", Page: 7},
				{Title: "X", Page: 5},
				{Title: "Y", Page: 5},
			},
			numPages: 10,
			want: []Range{
				{Title: "X", First: 5, Last: 6},
				{Title: "B", First: 7, Last: 9},
			},
		},
		{
			name: "start page beyond document",
			markers: []Marker{
				{Title: "X", Page: 0},
				{Title: "Y", Page: 50},
			},
			numPages:    30,
			want:        []Range{{Title: "X", First: 0, Last: 29}},
			wantSkipped: []Marker{{Title: "Y", Page: 50}},
		},
		{
			name: "negative start page",
			markers: []Marker{
				{Title: "Bad", Page: -2},
				{Title: "Good", Page: 1},
			},
			numPages:    5,
			want:        []Range{{Title: "Good", First: 1, Last: 4}},
			wantSkipped: []Marker{{Title: "Bad", Page: -2}},
		},
		{
			name:     "no markers",
			markers:  nil,
			numPages: 7,
			want:     nil,
		},
		{
			name: "duplicate page directly before next chapter",
			markers: []Marker{
				{Title: "A", Page: 4},
				{Title: "B", Page: 4},
				{Title: "C", Page: 5},
			},
			numPages: 6,
			want: []Range{
				{Title: "A", First: 4, Last: 4},
				{Title: "C", First: 5, Last: 5},
			},
		},
		{
			name: "one chapter per page",
			markers: []Marker{
				{Title: "A", Page: 0},
				{Title: "B", Page: 1},
				{Title: "C", Page: 2},
			},
			numPages: 3,
			want: []Range{
				{Title: "A", First: 0, Last: 0},
				{Title: "B", First: 1, Last: 1},
				{Title: "C", First: 2, Last: 2},
			},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			ranges, skipped, err := Segment(c.markers, c.numPages)
			if err != nil {
				t.Fatal(err)
			}
			if d := cmp.Diff(c.want, ranges); d != "" {
				t.Errorf("ranges mismatch (-want +got):\n%s", d)
			}
			if d := cmp.Diff(c.wantSkipped, skipped); d != "" {
				t.Errorf("skipped mismatch (-want +got):\n%s", d)
			}
		})
	}
}

// TestSegmentContiguous checks that the returned ranges tile the page space:
// sorted, non-overlapping, each chapter ending directly before the next one,
// and the last chapter ending on the last page.
func TestSegmentContiguous(t *testing.T) {
	markers := []Marker{
		{Title: "D", Page: 17},
		{Title: "A", Page: 2},
		{Title: "C", Page: 9},
		{Title: "B", Page: 9},
		{Title: "E", Page: 4},
	}
	const numPages = 25

	ranges, _, err := Segment(markers, numPages)
	if err != nil {
		t.Fatal(err)
	}
	if len(ranges) == 0 {
		t.Fatal("expected ranges")
	}

	for i, r := range ranges {
		if r.First > r.Last {
			t.Errorf("range %d is empty: %+v", i, r)
		}
		if i > 0 && r.First != ranges[i-1].Last+1 {
			t.Errorf("gap between range %d and %d: %+v, %+v",
				i-1, i, ranges[i-1], r)
		}
	}
	if last := ranges[len(ranges)-1]; last.Last != numPages-1 {
		t.Errorf("last chapter ends on page %d, expected %d",
			last.Last, numPages-1)
	}
}

func TestSegmentInvalidPageCount(t *testing.T) {
	for _, numPages := range []int{0, -5} {
		_, _, err := Segment([]Marker{{Title: "A", Page: 0}}, numPages)
		if err == nil {
			t.Errorf("expected error for numPages=%d, got nil", numPages)
		}
	}
}

func TestSegmentLeavesInputUnchanged(t *testing.T) {
	markers := []Marker{
		{Title: "C", Page: 9},
		{Title: "A", Page: 1},
		{Title: "B", Page: 4},
	}
	orig := slices.Clone(markers)

	_, _, err := Segment(markers, 12)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(orig, markers); d != "" {
		t.Errorf("input slice was modified (-want +got):\n%s", d)
	}
}
