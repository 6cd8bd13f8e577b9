/*
 * paths.go, part of charmminglib.
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

package chm

import (
	"os"
	"path/filepath"
	"strings"
)

//ExpandPath expands a leading ~ to the user's home and makes the path absolute.
//Empty paths are not allowed.
func ExpandPath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", InvalidConfig("empty path", "ExpandPath")
	}
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", NewError(ErrInvalidConfig, path, "can't expand ~", true, err, "ExpandPath")
		}
		path = filepath.Join(home, path[1:])
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", NewError(ErrInvalidConfig, path, "can't make path absolute", true, err, "ExpandPath")
	}
	return abs, nil
}

//Mkdir creates the directory dir and any missing parent. It is not an
//error if dir already exists. Any failure is an ErrInvalidConfig.
func Mkdir(dir string) error {
	if dir == "" {
		return InvalidConfig("no directory specified", "Mkdir")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return NewError(ErrInvalidConfig, dir, "can't create directory", true, err, "Mkdir")
	}
	return nil
}
