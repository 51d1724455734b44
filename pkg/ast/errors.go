// Copyright 2021 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ast

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by Append.
var (
	// ErrSealed is returned when appending to a statement whose scope
	// has been closed.
	ErrSealed = errors.New("statement is sealed")
	// ErrHasParent is returned when appending a statement that already
	// belongs to a tree.
	ErrHasParent = errors.New("statement already has a parent")
)

// An ArgumentError reports a missing, unexpected, or malformed
// statement argument.
type ArgumentError struct {
	Keyword  string
	Argument string
	Reason   error
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("invalid argument: %v", e.Reason)
}

func (e *ArgumentError) Unwrap() error { return e.Reason }

// A NestingError reports a child keyword that is never permitted under
// its would-be parent.
type NestingError struct {
	Parent, Child string
}

func (e *NestingError) Error() string {
	return fmt.Sprintf("%s cannot appear under %s", e.Child, e.Parent)
}

// A CardinalityError reports an append that would exceed the permitted
// number of occurrences of a child keyword under its parent.
type CardinalityError struct {
	Parent, Child string
	Max           int
}

func (e *CardinalityError) Error() string {
	return fmt.Sprintf("at most %d %s permitted under %s", e.Max, e.Child, e.Parent)
}
