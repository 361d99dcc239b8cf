// Copyright 2025 Sonic Labs
// This file is part of Aida Testing Infrastructure for Sonic
//
// Aida is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Aida is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with Aida. If not, see <http://www.gnu.org/licenses/>.

package vcd

import (
	"bytes"
	"io"

	"github.com/0xsoniclabs/vcd-toggle/logger"
	"github.com/0xsoniclabs/vcd-toggle/tracer"
	"github.com/cockroachdb/errors"
)

const (
	// MaxPathLength bounds a composed qualified signal name in bytes.
	MaxPathLength = 1024
	// MaxScopeDepth bounds the nesting of $scope sections.
	MaxScopeDepth = 100
)

// ParseHeader reads the declaration section of a dump up to and including
// the $enddefinitions keyword, builds the signal catalog and its index.
// The reader is left positioned at the first line of the value changes.
func ParseHeader(reader tracer.LineReader, log logger.Logger) (*Header, error) {
	p := &headerParser{
		reader: reader,
		log:    log,
		names:  newNameArena(),
		path:   make([]byte, 0, MaxPathLength),
		segs:   make([]int, 0, MaxScopeDepth),
	}
	if err := p.parse(); err != nil {
		return nil, err
	}

	catalog, conflicts := newCatalog(p.names)
	for _, err := range conflicts {
		p.log.Errorf("%s ERROR  %v", reader.Name(), err)
	}
	return &Header{
		Catalog:   catalog,
		Index:     NewIndex(catalog),
		Lines:     reader.Line(),
		Conflicts: conflicts,
	}, nil
}

type headerParser struct {
	reader tracer.LineReader
	log    logger.Logger
	names  *NameArena

	tokens [][]byte // remaining tokens of the current line
	path   []byte   // qualified prefix of the current scope, "a.b."
	segs   []int    // bytes pushed onto path per open scope
}

func (p *headerParser) parse() error {
	for {
		tok, err := p.next()
		if err != nil {
			return err
		}
		switch string(tok) {
		case "$enddefinitions":
			// the body starts on the next line
			p.tokens = nil
			return nil
		case "$scope":
			if err := p.scope(); err != nil {
				return err
			}
		case "$upscope":
			p.upscope()
			if err := p.skipToEnd(); err != nil {
				return err
			}
		case "$var":
			if err := p.variable(); err != nil {
				return err
			}
		default:
			if tok[0] == '$' && !bytes.Equal(tok, endKeyword) {
				if err := p.skipToEnd(); err != nil {
					return err
				}
			}
		}
	}
}

var endKeyword = []byte("$end")

// next returns the next token of the header, reading further lines as
// needed. Tokens are only valid until the next line is read.
func (p *headerParser) next() ([]byte, error) {
	for len(p.tokens) == 0 {
		line, err := p.reader.ReadLine()
		if errors.Is(err, io.EOF) {
			return nil, p.fail(ErrUnexpectedEOF)
		}
		if err != nil {
			return nil, err
		}
		p.tokens = bytes.Fields(line)
	}
	tok := p.tokens[0]
	p.tokens = p.tokens[1:]
	return tok, nil
}

// collect returns copies of all tokens up to the next $end.
func (p *headerParser) collect() ([]string, error) {
	var res []string
	for {
		tok, err := p.next()
		if err != nil {
			return nil, err
		}
		if bytes.Equal(tok, endKeyword) {
			return res, nil
		}
		res = append(res, string(tok))
	}
}

func (p *headerParser) skipToEnd() error {
	for {
		tok, err := p.next()
		if err != nil {
			return err
		}
		if bytes.Equal(tok, endKeyword) {
			return nil
		}
	}
}

// scope handles "$scope <type> <name> $end".
func (p *headerParser) scope() error {
	args, err := p.collect()
	if err != nil {
		return err
	}
	if len(p.segs) >= MaxScopeDepth {
		return p.fail(ErrScopeTooDeep)
	}
	if len(args) < 2 {
		// keeps the path; the matching $upscope pops nothing
		p.log.Warningf("%s:%d scope without a name ignored", p.reader.Name(), p.reader.Line())
		p.segs = append(p.segs, 0)
		return nil
	}
	name := args[1]
	if len(p.path)+len(name)+1 >= MaxPathLength {
		return p.fail(ErrPathTooLong)
	}
	p.segs = append(p.segs, len(name)+1)
	p.path = append(p.path, name...)
	p.path = append(p.path, '.')
	return nil
}

func (p *headerParser) upscope() {
	n := len(p.segs)
	if n == 0 {
		return
	}
	p.path = p.path[:len(p.path)-p.segs[n-1]]
	p.segs = p.segs[:n-1]
}

// variable handles "$var <type> <width> <id> <name> [<range>] $end".
func (p *headerParser) variable() error {
	args, err := p.collect()
	if err != nil {
		return err
	}
	if len(args) < 4 {
		p.log.Errorf("%s:%d ERROR  %v", p.reader.Name(), p.reader.Line(),
			errors.Wrapf(ErrDeclaration, "$var %v", args))
		return nil
	}
	width := parseWidth([]byte(args[1]))
	id := args[2]

	name := p.path
	for _, part := range args[3:] {
		if len(name)+len(part) >= MaxPathLength {
			return p.fail(ErrPathTooLong)
		}
		name = append(name, part...)
	}
	p.names.Append([]byte(id), width, name)
	// drop the variable name again, keeping the scope prefix
	p.path = name[:len(p.path)]
	return nil
}

func (p *headerParser) fail(err error) error {
	return errors.Wrapf(err, "%s:%d parse error", p.reader.Name(), p.reader.Line())
}
