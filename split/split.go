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

// Package split copies chapter page ranges into new PDF documents.
package split

import (
	"fmt"
	"io"

	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/pagetree"

	"seehuhn.de/go/pdfsplit/chapters"
)

// WriteChapter copies the pages of one chapter from doc into a new PDF
// document written to w.  The new document uses the PDF version of the
// input and carries over its Info dictionary.
func WriteChapter(doc pdf.Getter, ch chapters.Range, w io.Writer) error {
	metaIn := doc.GetMeta()

	out, err := pdf.NewWriter(w, metaIn.Version, nil)
	if err != nil {
		return fmt.Errorf("failed to create PDF writer: %w", err)
	}

	rm := pdf.NewResourceManager(out)
	pageTreeOut := pagetree.NewWriter(out, rm)
	copier := pdf.NewCopier(out, doc)

	for pageNo := ch.First; pageNo <= ch.Last; pageNo++ {
		refIn, pageIn, err := pagetree.GetPage(doc, pageNo)
		if err != nil {
			return fmt.Errorf("failed to get page %d: %w", pageNo+1, err)
		}

		// remove annotations to avoid dangling references into the
		// original document
		delete(pageIn, "Annots")

		pageOut, err := copier.CopyDict(pageIn)
		if err != nil {
			return fmt.Errorf("failed to copy page %d: %w", pageNo+1, err)
		}

		refOut := out.Alloc()
		if refIn != 0 {
			copier.Redirect(refIn, refOut)
		}

		if err := pageTreeOut.AppendPageDict(refOut, pageOut); err != nil {
			return fmt.Errorf("failed to append page %d: %w", pageNo+1, err)
		}
	}

	treeRef, err := pageTreeOut.Close()
	if err != nil {
		return fmt.Errorf("failed to close page tree: %w", err)
	}
	if err := rm.Close(); err != nil {
		return fmt.Errorf("failed to close resource manager: %w", err)
	}

	metaOut := out.GetMeta()
	metaOut.Catalog.Pages = treeRef
	metaOut.Info = metaIn.Info

	return out.Close()
}
