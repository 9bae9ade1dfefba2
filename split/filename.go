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

package split

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// maxTitleLen limits the length of the title part of generated file names,
// in runes.
const maxTitleLen = 150

var invalidChars = regexp.MustCompile(`[<>:"/\\|?*\x00-\x1f]`)

// Filename returns the output file name for the chapter with the given
// title and 1-based ordinal, for example "003_Advanced Topics.pdf".
// The ordinal prefix keeps the files sorted in reading order.
func Filename(ordinal int, title string) string {
	return fmt.Sprintf("%03d_%s.pdf", ordinal, sanitizeTitle(title))
}

// sanitizeTitle turns an outline title into a string that can be used in a
// file name on common filesystems.  Runs of whitespace are collapsed into
// single spaces, characters which are invalid in Windows file names and the
// remaining control characters are replaced by underscores, and overlong
// titles are truncated.
func sanitizeTitle(title string) string {
	s := norm.NFC.String(title)

	// collapse whitespace before the character replacement, so that tabs
	// and newlines become spaces rather than underscores
	s = strings.Join(strings.Fields(s), " ")
	s = invalidChars.ReplaceAllString(s, "_")

	if runes := []rune(s); len(runes) > maxTitleLen {
		s = strings.TrimSpace(string(runes[:maxTitleLen]))
	}

	if s == "" {
		return "untitled"
	}
	return s
}
