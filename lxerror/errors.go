// Copyright 2024 Tomas Machalek <tomas.machalek@gmail.com>
// Copyright 2024 Institute of the Czech National Corpus,
//                Faculty of Arts, Charles University
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package lxerror

import (
	"encoding/json"
	"fmt"
)

// DialectError means a caller provided a dialect or region identifier
// not covered by the dialect enumeration or the loaded dataset.
type DialectError struct {
	Msg string
}

func (err DialectError) Error() string {
	return err.Msg
}

func (err DialectError) MarshalJSON() ([]byte, error) {
	if err.Msg != "" {
		return json.Marshal(err.Msg)
	}
	return json.Marshal(nil)
}

// UnsupportedDialect creates a DialectError for the provided identifier.
func UnsupportedDialect(v string) DialectError {
	return DialectError{Msg: fmt.Sprintf("unsupported dialect: %s", v)}
}

// ----------------------------

// ResourceError means a required data file was missing or unreadable
// at (possibly lazy) load time.
type ResourceError struct {
	Msg  string
	Path string
}

func (err ResourceError) Error() string {
	return err.Msg
}

func (err ResourceError) MarshalJSON() ([]byte, error) {
	if err.Msg != "" {
		return json.Marshal(err.Msg)
	}
	return json.Marshal(nil)
}

// ResourceNotFound creates a ResourceError for a missing file path.
func ResourceNotFound(path string) ResourceError {
	return ResourceError{
		Msg:  fmt.Sprintf("resource not found: %s", path),
		Path: path,
	}
}
