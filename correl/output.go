/*
 * output.go, part of charmminglib.
 *
 * Copyright 2026 The charmminglib Authors
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
 */

package correl

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/edsrzf/mmap-go"
	chm "github.com/joshuasmock/charmminglib"
)

var fortranExp = strings.NewReplacer("D", "E", "d", "e")

//LoadOutput reads the correl output filename, which should contain expected values.
//If the file doesn't exist, the error is a chm.ErrMissingResult, if it can't be parsed
//or the number of values is wrong, a chm.ErrMalformedResult. Any other problem
//opening the file is returned as it comes.
func LoadOutput(filename string, expected int) ([]float64, error) {
	f, err := os.Open(filename)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, chm.NewError(chm.ErrMissingResult, filename, "", false, err, "LoadOutput")
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()
	info, err := f.Stat()
	if err != nil {
		return nil, err
	}
	if info.Size() == 0 {
		return nil, chm.NewError(chm.ErrMalformedResult, filename, "empty file", false, nil, "LoadOutput")
	}
	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, err
	}
	defer m.Unmap()
	ret, msg, err := parseOutput(m, expected)
	if msg != "" {
		return nil, chm.NewError(chm.ErrMalformedResult, filename, msg, false, err, "LoadOutput")
	}
	return ret, nil
}

//ParseOutput parses the series written by "write ... card" for a correl series.
//Title lines (starting with '*') and blank lines are skipped. Each other line
//has the time and the value of the series. A line with only one field is taken
//as a value. Any problem is a chm.ErrMalformedResult.
func ParseOutput(data []byte, expected int) ([]float64, error) {
	ret, msg, err := parseOutput(data, expected)
	if msg != "" {
		return nil, chm.NewError(chm.ErrMalformedResult, "", msg, false, err, "ParseOutput")
	}
	return ret, nil
}

//parseOutput returns a non-empty message, and possibly an error, when data is malformed.
func parseOutput(data []byte, expected int) ([]float64, string, error) {
	ret := make([]float64, 0, expected)
	s := bufio.NewScanner(bytes.NewReader(data))
	linenu := 0
	for s.Scan() {
		linenu++
		line := strings.TrimSpace(s.Text())
		if line == "" || line[0] == '*' {
			continue
		}
		fields := strings.Fields(line)
		field := fields[0]
		if len(fields) > 1 {
			field = fields[1]
		}
		v, err := strconv.ParseFloat(fortranExp.Replace(field), 64)
		if err != nil {
			return nil, fmt.Sprintf("line %d", linenu), err
		}
		ret = append(ret, v)
	}
	if err := s.Err(); err != nil {
		return nil, "can't read", err
	}
	if len(ret) != expected {
		return nil, fmt.Sprintf("%d values, %d expected", len(ret), expected), nil
	}
	return ret, "", nil
}
