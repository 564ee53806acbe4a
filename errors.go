/*
 * errors.go, part of gocrys.
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

package crys

// Error is the interface for errors that all packages in this library
// implement. The Decorate method allows to add and retrieve info from the
// error, without changing its type or wrapping it around something else.
// The decoration slice should contain a list of functions in the calling
// stack plus, for each function, any relevant information, in the format
// "FunctionName: Extra info".
type Error interface {
	Error() string
	Decorate(string) []string
}

// CError is the concrete error type of the crys package.
type CError struct {
	msg  string
	deco []string
}

func (err CError) Error() string { return err.msg }

// Decorate adds the dec string to the decoration slice of strings of the
// error, and returns the resulting slice. If dec is empty, it just returns
// the current slice.
func (err CError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

// errDecorate asserts that err implements crys.Error and decorates it with
// the caller's name before returning it. Calling it on an error that does not
// implement crys.Error is a bug, and causes a panic.
func errDecorate(err error, caller string) error {
	err2 := err.(Error)
	err2.Decorate(caller)
	return err2
}

// PanicMsg is a message used for panics, even though it does satisfy the
// error interface. For errors use Error.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrNilData          = PanicMsg("goCrys: Nil data given")
	ErrCellNot3x3       = PanicMsg("goCrys: A unit cell must be a 3x3 matrix")
	ErrAtomOutOfRange   = PanicMsg("goCrys: Requested atom out of range")
	ErrInconsistentData = PanicMsg("goCrys: Inconsistent coordinates/atoms")
)
