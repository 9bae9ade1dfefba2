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
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/action"
	"seehuhn.de/go/pdf/destination"
	"seehuhn.de/go/pdf/outline"
	"seehuhn.de/go/pdf/pagetree"
)

// NewPageFunc returns a PageFunc which resolves outline destinations in r
// to zero-based page numbers.
func NewPageFunc(r pdf.Getter) PageFunc {
	// map page dictionary references to page numbers
	pageNumbers := make(map[pdf.Reference]int)
	pageNo := 0
	for ref := range pagetree.NewIterator(r).All() {
		pageNumbers[ref] = pageNo
		pageNo++
	}

	return func(item *outline.Item) (int, bool) {
		return destinationPage(pageNumbers, item)
	}
}

// destinationPage extracts the target page number from an outline item's
// destination or GoTo action.
func destinationPage(pageNumbers map[pdf.Reference]int, item *outline.Item) (int, bool) {
	var dest destination.Destination
	if item.Destination != nil {
		dest = item.Destination
	} else if goTo, ok := item.Action.(*action.GoTo); ok {
		dest = goTo.Dest
	}
	if dest == nil {
		return 0, false
	}

	var target destination.Target
	switch d := dest.(type) {
	case *destination.XYZ:
		target = d.Page
	case *destination.Fit:
		target = d.Page
	case *destination.FitH:
		target = d.Page
	case *destination.FitV:
		target = d.Page
	case *destination.FitR:
		target = d.Page
	case *destination.FitB:
		target = d.Page
	case *destination.FitBH:
		target = d.Page
	case *destination.FitBV:
		target = d.Page
	default:
		// named destinations are not resolved
		return 0, false
	}

	ref, ok := target.(pdf.Reference)
	if !ok {
		return 0, false
	}
	pageNo, ok := pageNumbers[ref]
	return pageNo, ok
}
