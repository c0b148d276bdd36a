// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package termio

import (
	"fmt"
	"strings"

	"golang.org/x/term"
)

// Colour identifies one of the eight standard terminal colours.
type Colour uint

const (
	// BLACK represents black
	BLACK Colour = iota
	// RED represents red
	RED
	// GREEN represents green
	GREEN
	// YELLOW represents yellow
	YELLOW
	// BLUE represents blue
	BLUE
	// MAGENTA represents magenta
	MAGENTA
	// CYAN represents cyan
	CYAN
	// WHITE represents white
	WHITE
)

// AnsiEscape represents an ANSI escape code used for formatting text in a
// terminal, as a sequence of numeric attributes.
type AnsiEscape struct {
	codes []uint
}

// NewAnsiEscape construct an empty escape
func NewAnsiEscape() AnsiEscape {
	return AnsiEscape{nil}
}

// Bold adds the bold attribute.
func (p AnsiEscape) Bold() AnsiEscape {
	return p.with(1)
}

// Underline adds the underline attribute.
func (p AnsiEscape) Underline() AnsiEscape {
	return p.with(4)
}

// FgColour sets the foreground colour
func (p AnsiEscape) FgColour(col Colour) AnsiEscape {
	return p.with(30 + uint(col))
}

// BgColour sets the background colour
func (p AnsiEscape) BgColour(col Colour) AnsiEscape {
	return p.with(40 + uint(col))
}

// Build constructs the final escape
func (p AnsiEscape) Build() string {
	codes := make([]string, len(p.codes))
	//
	for i, c := range p.codes {
		codes[i] = fmt.Sprintf("%d", c)
	}
	//
	return fmt.Sprintf("\033[%sm", strings.Join(codes, ";"))
}

func (p AnsiEscape) with(code uint) AnsiEscape {
	codes := make([]uint, len(p.codes), len(p.codes)+1)
	copy(codes, p.codes)
	//
	return AnsiEscape{append(codes, code)}
}

// RESET is the escape which clears all attributes.
const RESET = "\033[0m"

// Highlighter applies escapes to text, but only when enabled.  This is
// typically determined by whether or not output goes to a terminal.
type Highlighter struct {
	enabled bool
}

// NewHighlighter constructs a highlighter which is enabled only if the given
// file descriptor refers to a terminal.
func NewHighlighter(fd int) Highlighter {
	return Highlighter{term.IsTerminal(fd)}
}

// NewFixedHighlighter constructs a highlighter which is explicitly enabled or
// disabled.
func NewFixedHighlighter(enabled bool) Highlighter {
	return Highlighter{enabled}
}

// Apply a given escape to some text.
func (h Highlighter) Apply(text string, escape AnsiEscape) string {
	if !h.enabled {
		return text
	}
	//
	return escape.Build() + text + RESET
}
