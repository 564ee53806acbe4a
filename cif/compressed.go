/*
 * compressed.go, part of gocrys.
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
	"compress/flate"
	"compress/gzip"
	"io"
	"log"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"
)

// DecodeReader wraps r so the CIF text can be read regardless of
// compression. The format string is a file extension without the dot: gz,
// zst, xz or flate. Structure databases ship their CIF entries gzipped more
// often than not, hence the special handling. An unrecognized format is
// logged and the stream is passed through as plain text, so an actual CIF
// file with a strange name still reads fine. When the returned reader is
// also an io.Closer the caller must close it; the zstd decoder in
// particular keeps worker goroutines alive until closed.
func DecodeReader(format string, r io.Reader) (io.Reader, error) {
	switch strings.ToLower(format) {
	case "gz", "gzip":
		return gzip.NewReader(r)
	case "zst", "zstd":
		dec, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		return dec.IOReadCloser(), nil
	case "xz":
		return xz.NewReader(r)
	case "flate":
		return flate.NewReader(r), nil
	case "", "cif", "txt":
		return r, nil
	}
	log.Printf("Format %s not supported, the stream will be assumed to be plain CIF text", format)
	return r, nil
}

// OpenFile reads one structure from the named file, decompressing it first
// if the file extension says so (name.cif.gz and the like).
func OpenFile(name string) (*Structure, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	parts := strings.Split(name, ".")
	ext := strings.ToLower(parts[len(parts)-1])
	r, err := DecodeReader(ext, bufio.NewReader(f))
	if err != nil {
		return nil, err
	}
	if c, ok := r.(io.Closer); ok {
		defer c.Close()
	}
	return Read(r)
}
