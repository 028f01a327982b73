/*
 * fnames.go, part of frettchen.
 *
 * Copyright 2020 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

//Package fnames builds the names of the files written by frettchen, and writes them
//so that a failed run never leaves a partial file behind.
package fnames

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/renameio/v2"
)

//DateFormat is the layout of the date stamp in output names (YYMMDD).
const DateFormat = "060102"

//Name holds the parts of an output file name:
//<Folder>/<Base>_<Tag>_<Date>.<Suffix>
type Name struct {
	Folder string
	Base   string
	Tag    string
	Date   string
	Suffix string
}

//Split takes the folder, base name and suffix from the path of an input file.
//Only the last extension is taken as suffix.
func Split(path string) Name {
	file := filepath.Base(path)
	ext := filepath.Ext(file)
	return Name{
		Folder: filepath.Dir(path),
		Base:   strings.TrimSuffix(file, ext),
		Suffix: strings.TrimPrefix(ext, "."),
	}
}

//WithTag returns a copy of N with the tag replaced.
func (N Name) WithTag(tag string) Name {
	N.Tag = tag
	return N
}

//WithSuffix returns a copy of N with the suffix replaced.
func (N Name) WithSuffix(suffix string) Name {
	N.Suffix = strings.TrimPrefix(suffix, ".")
	return N
}

//WithDate returns a copy of N with the date stamp of t.
func (N Name) WithDate(t time.Time) Name {
	N.Date = t.Format(DateFormat)
	return N
}

//WithFolder returns a copy of N that will be placed in folder.
func (N Name) WithFolder(folder string) Name {
	N.Folder = folder
	return N
}

//String returns the full path. Empty parts are left out together with their separator.
func (N Name) String() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{N.Base, N.Tag, N.Date} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	file := strings.Join(parts, "_")
	if N.Suffix != "" {
		file += "." + N.Suffix
	}
	return filepath.Join(N.Folder, file)
}

//Perm is the permission of the files written.
const Perm = 0o644

//WriteAtomic writes a file with the given name through write. The data goes first to a
//temporary file in the same folder, which replaces name only if write succeeds. On error,
//nothing is left on disk.
func WriteAtomic(name string, write func(io.Writer) error) error {
	t, err := renameio.NewPendingFile(name, renameio.WithPermissions(Perm))
	if err != nil {
		return fmt.Errorf("fnames.WriteAtomic: %w", err)
	}
	defer t.Cleanup()
	if err := write(t); err != nil {
		return fmt.Errorf("fnames.WriteAtomic: writing %s: %w", name, err)
	}
	if err := t.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("fnames.WriteAtomic: %w", err)
	}
	return nil
}

//File is a named, fully rendered output.
type File struct {
	Name string
	Data []byte
}

//WriteAll writes all the files, or none of them. Every file is first written to a
//temporary file next to its destination. Only when all the temporary files are in place
//are they renamed, and if a rename fails, the files already renamed are removed.
func WriteAll(files []File) error {
	pending := make([]*renameio.PendingFile, 0, len(files))
	defer func() {
		for _, t := range pending {
			t.Cleanup()
		}
	}()
	for _, f := range files {
		t, err := renameio.NewPendingFile(f.Name, renameio.WithPermissions(Perm))
		if err != nil {
			return fmt.Errorf("fnames.WriteAll: %w", err)
		}
		pending = append(pending, t)
		if _, err := t.Write(f.Data); err != nil {
			return fmt.Errorf("fnames.WriteAll: writing %s: %w", f.Name, err)
		}
	}
	for i, t := range pending {
		if err := t.CloseAtomicallyReplace(); err != nil {
			for _, done := range files[:i] {
				os.Remove(done.Name)
			}
			return fmt.Errorf("fnames.WriteAll: %w", err)
		}
	}
	return nil
}
