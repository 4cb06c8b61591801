/*
 * files.go, part of gosasa.
 *
 * Copyright 2025 The gosasa developers
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

package sasa

import (
	"io"
	"os"
)

//FileRange is a byte range in a file, to be used with Seek by format
//readers that only need to visit part of a file.
type FileRange struct {
	Begin int64
	End   int64
}

//WholeFile returns the FileRange covering all of the already-open file f.
//The file position is restored before returning.
func WholeFile(f *os.File) (FileRange, error) {
	pos, err := f.Seek(0, io.SeekCurrent)
	if err != nil {
		return FileRange{}, err
	}
	end, err := f.Seek(0, io.SeekEnd)
	if err != nil {
		return FileRange{}, err
	}
	if _, err = f.Seek(pos, io.SeekStart); err != nil {
		return FileRange{}, err
	}
	return FileRange{Begin: 0, End: end}, nil
}
