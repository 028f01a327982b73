/*
 * errors.go, part of frettchen.
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

package fret

import (
	"errors"
	"fmt"
	"strings"
)

//Kind classifies the errors produced by this library.
type Kind int

const (
	//InvalidConfig: a parameter is missing or outside its physical range.
	InvalidConfig Kind = iota
	//MalformedInput: the spectral table is missing columns or is ill-formed.
	MalformedInput
	//Degenerate: a numerical step can't produce a finite result (zero area, zero reference absorption, negative radicand).
	Degenerate
	//NotFitted: a derived quantity was requested before the pair was fitted.
	NotFitted
)

func (k Kind) String() string {
	switch k {
	case InvalidConfig:
		return "invalid configuration"
	case MalformedInput:
		return "malformed input"
	case Degenerate:
		return "numerical degeneracy"
	case NotFitted:
		return "not yet computed"
	default:
		return "unknown"
	}
}

//Error is the error type for all the frettchen packages. Like goChem errors, it
//carries a "decoration" slice with the functions it went through on its way up.
type Error struct {
	message string
	kind    Kind
	deco    []string
}

//NewError returns a new *Error of the given kind. The caller's name is
//used as the first decoration.
func NewError(kind Kind, caller, format string, args ...interface{}) *Error {
	err := &Error{message: fmt.Sprintf(format, args...), kind: kind}
	if caller != "" {
		err.deco = []string{caller}
	}
	return err
}

func (err *Error) Error() string {
	if len(err.deco) == 0 {
		return fmt.Sprintf("%s: %s", err.kind, err.message)
	}
	return fmt.Sprintf("%s: %s (%s)", err.kind, err.message, strings.Join(err.deco, " <- "))
}

//Kind returns the class of the error.
func (err *Error) Kind() Kind { return err.kind }

//Decorate adds dec to the decoration slice of the error and returns the result.
//An empty string just returns the current decorations.
func (err *Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//IsKind reports whether err, or any error it wraps, is an *Error of kind k.
func IsKind(err error, k Kind) bool {
	var ferr *Error
	if errors.As(err, &ferr) {
		return ferr.kind == k
	}
	return false
}

//errDecorate decorates err with the caller's name if it is an *Error,
//and returns it. Other errors are returned unchanged.
func errDecorate(err error, caller string) error {
	var ferr *Error
	if errors.As(err, &ferr) {
		ferr.Decorate(caller)
	}
	return err
}
