/*
 * read.go, part of gocrys.
 *
 * Copyright 2024 rmeraaatacademicosdotutadotcl
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 * goCrys is developed at Universidad de Tarapaca (UTA)
 *
 */

package cif

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Read parses one CIF data_ block from r. The block must carry the six cell
// constant tags, the space group name and International Tables number, and a
// symmetry loop with at least one row; an atom-site loop is optional and may
// have zero rows. On error no partial Structure is returned, and the error
// is one of FormatError, MissingFieldError, MalformedValueError or
// RowArityError.
func Read(r io.Reader) (*Structure, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, &FormatError{msg: fmt.Sprintf("reading input: %v", err)}
	}
	p := &parser{lines: lines, scalars: make(map[string]scalarValue)}
	if err := p.parse(); err != nil {
		return nil, err
	}
	return p.finish()
}

// Parse is Read on an in-memory string.
func Parse(text string) (*Structure, error) {
	return Read(strings.NewReader(text))
}

// scalarValue is a raw scalar tag value together with the line it came from.
type scalarValue struct {
	raw  string
	line int
}

// parser is a line cursor over the input. Line numbers reported in errors
// are 1-based, so the line at lines[i] is line i+1.
type parser struct {
	lines   []string
	i       int
	name    string
	haveBlk bool
	scalars map[string]scalarValue
	symOps  []SymmetryOp
	haveSym bool
	sites   []Site
}

func (p *parser) parse() error {
	for p.i < len(p.lines) {
		line := strings.TrimSpace(p.lines[p.i])
		lineno := p.i + 1
		p.i++
		switch {
		case line == "" || strings.HasPrefix(line, "#"):
			continue
		case strings.HasPrefix(line, "data_"):
			if p.haveBlk {
				return &FormatError{Line: lineno, msg: "more than one data_ block"}
			}
			p.haveBlk = true
			p.name = strings.TrimPrefix(line, "data_")
		case !p.haveBlk:
			return &FormatError{Line: lineno, msg: "content before the data_ block"}
		case line == "loop_":
			if err := p.parseLoop(lineno); err != nil {
				return err
			}
		case strings.HasPrefix(line, "_"):
			if err := p.parseScalar(line, lineno); err != nil {
				return err
			}
		default:
			return &FormatError{Line: lineno, msg: fmt.Sprintf("unexpected content %q", line)}
		}
	}
	return nil
}

func (p *parser) parseScalar(line string, lineno int) error {
	tag := line
	var raw string
	if cut := strings.IndexAny(line, " \t"); cut >= 0 {
		tag = line[:cut]
		raw = strings.TrimSpace(line[cut:])
	}
	if prev, dup := p.scalars[tag]; dup {
		return &FormatError{Line: lineno, msg: fmt.Sprintf("tag %s repeated, first seen on line %d", tag, prev.line)}
	}
	if raw == "" {
		return &MalformedValueError{Line: lineno, Tag: tag, msg: "tag carries no value"}
	}
	p.scalars[tag] = scalarValue{raw: unquote(raw), line: lineno}
	return nil
}

// parseLoop consumes a full loop_ construct, the cursor sitting just past
// the loop_ line. The row sequence ends at a blank line, a new tag, another
// loop_ or a data_ line. Loops other than the symmetry and atom-site ones
// are consumed and dropped.
func (p *parser) parseLoop(loopLine int) error {
	var cols []string
	for p.i < len(p.lines) {
		line := strings.TrimSpace(p.lines[p.i])
		if !strings.HasPrefix(line, "_") {
			break
		}
		cols = append(cols, line)
		p.i++
	}
	if len(cols) == 0 {
		return &FormatError{Line: loopLine, msg: "loop_ with no column tags"}
	}
	var rows []string
	var rowLines []int
	for p.i < len(p.lines) {
		line := strings.TrimSpace(p.lines[p.i])
		if line == "" {
			p.i++
			break
		}
		if strings.HasPrefix(line, "_") || line == "loop_" || strings.HasPrefix(line, "data_") {
			break
		}
		if strings.HasPrefix(line, "#") {
			p.i++
			continue
		}
		rows = append(rows, line)
		rowLines = append(rowLines, p.i+1)
		p.i++
	}
	switch {
	case contains(cols, TagSymEquivPos):
		return p.symLoop(cols, rows, rowLines)
	case contains(cols, TagSiteLabel):
		return p.siteLoop(cols, rows, rowLines)
	}
	return nil
}

func (p *parser) symLoop(cols, rows []string, rowLines []int) error {
	p.haveSym = true
	pos := index(cols, TagSymEquivPos)
	for k, row := range rows {
		// in the single-column loop the whole row is one operation string;
		// unquoted "x, y, z" rows have whitespace inside the value, so they
		// must not be tokenized
		op := unquote(row)
		if len(cols) > 1 {
			tokens := splitFields(row)
			if len(tokens) != len(cols) {
				return &RowArityError{Line: rowLines[k], Loop: TagSymEquivPos, Want: len(cols), Got: len(tokens)}
			}
			op = tokens[pos]
		}
		comps := strings.Split(op, ",")
		if len(comps) != 3 {
			return &MalformedValueError{Line: rowLines[k], Tag: TagSymEquivPos, Value: op,
				msg: fmt.Sprintf("want 3 comma-separated components, have %d", len(comps))}
		}
		p.symOps = append(p.symOps, SymmetryOp{
			X: strings.TrimSpace(comps[0]),
			Y: strings.TrimSpace(comps[1]),
			Z: strings.TrimSpace(comps[2]),
		})
	}
	return nil
}

func (p *parser) siteLoop(cols, rows []string, rowLines []int) error {
	want := []string{TagSiteLabel, TagSiteFractX, TagSiteFractY, TagSiteFractZ, TagSiteTypeSymbol}
	idx := make(map[string]int, len(want))
	for _, tag := range want {
		j := index(cols, tag)
		if j < 0 {
			return &MissingFieldError{Tag: tag}
		}
		idx[tag] = j
	}
	for k, row := range rows {
		tokens := splitFields(row)
		if len(tokens) != len(cols) {
			return &RowArityError{Line: rowLines[k], Loop: TagSiteLabel, Want: len(cols), Got: len(tokens)}
		}
		site := Site{
			Label:  tokens[idx[TagSiteLabel]],
			Symbol: tokens[idx[TagSiteTypeSymbol]],
		}
		var err error
		for _, f := range []struct {
			tag string
			dst *float64
		}{
			{TagSiteFractX, &site.FracX},
			{TagSiteFractY, &site.FracY},
			{TagSiteFractZ, &site.FracZ},
		} {
			*f.dst, err = strconv.ParseFloat(tokens[idx[f.tag]], 64)
			if err != nil {
				return &MalformedValueError{Line: rowLines[k], Tag: f.tag, Value: tokens[idx[f.tag]],
					msg: "not a float"}
			}
		}
		p.sites = append(p.sites, site)
	}
	return nil
}

// finish validates the collected pieces and assembles the Structure.
func (p *parser) finish() (*Structure, error) {
	if !p.haveBlk {
		return nil, &FormatError{msg: "no data_ block"}
	}
	st := &Structure{Name: p.name, SymOps: p.symOps, Sites: p.sites}
	for _, f := range []struct {
		tag string
		dst *float64
	}{
		{TagCellLengthA, &st.Cell.A},
		{TagCellLengthB, &st.Cell.B},
		{TagCellLengthC, &st.Cell.C},
		{TagCellAngleAlpha, &st.Cell.Alpha},
		{TagCellAngleBeta, &st.Cell.Beta},
		{TagCellAngleGamma, &st.Cell.Gamma},
	} {
		v, ok := p.scalars[f.tag]
		if !ok {
			return nil, &MissingFieldError{Tag: f.tag}
		}
		x, err := strconv.ParseFloat(v.raw, 64)
		if err != nil {
			return nil, &MalformedValueError{Line: v.line, Tag: f.tag, Value: v.raw, msg: "not a float"}
		}
		*f.dst = x
	}
	hm, ok := p.scalars[TagSpaceGroupHM]
	if !ok {
		return nil, &MissingFieldError{Tag: TagSpaceGroupHM}
	}
	st.Group.HMName = hm.raw
	itn, ok := p.scalars[TagSpaceGroupITN]
	if !ok {
		return nil, &MissingFieldError{Tag: TagSpaceGroupITN}
	}
	n, err := strconv.Atoi(itn.raw)
	if err != nil {
		return nil, &MalformedValueError{Line: itn.line, Tag: TagSpaceGroupITN, Value: itn.raw, msg: "not an integer"}
	}
	if n < 1 || n > 230 {
		return nil, &MalformedValueError{Line: itn.line, Tag: TagSpaceGroupITN, Value: itn.raw,
			msg: "International Tables numbers run from 1 to 230"}
	}
	st.Group.Number = n
	if len(st.SymOps) == 0 {
		return nil, &MissingFieldError{Tag: TagSymEquivPos}
	}
	return st, nil
}

// unquote strips one level of CIF single quotes, if present.
func unquote(s string) string {
	if len(s) >= 2 && s[0] == '\'' && s[len(s)-1] == '\'' {
		return s[1 : len(s)-1]
	}
	return s
}

// splitFields tokenizes a loop row: whitespace-separated tokens, with
// single-quoted tokens allowed to contain whitespace.
func splitFields(s string) []string {
	var out []string
	i := 0
	for i < len(s) {
		for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
			i++
		}
		if i >= len(s) {
			break
		}
		if s[i] == '\'' {
			j := strings.IndexByte(s[i+1:], '\'')
			if j < 0 {
				out = append(out, s[i+1:])
				return out
			}
			out = append(out, s[i+1:i+1+j])
			i += j + 2
			continue
		}
		j := i
		for j < len(s) && s[j] != ' ' && s[j] != '\t' {
			j++
		}
		out = append(out, s[i:j])
		i = j
	}
	return out
}

func contains(ss []string, s string) bool { return index(ss, s) >= 0 }

func index(ss []string, s string) int {
	for i, v := range ss {
		if v == s {
			return i
		}
	}
	return -1
}
