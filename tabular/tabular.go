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

// Package tabular provides parsing of the semi-structured comma-delimited
// tables tugalex data files are distributed in. The format is simpler than
// full CSV - there is no escaping, a double quote is noise to be removed
// and a row either has the expected number of fields or it is dropped.
package tabular

import "strings"

// Records splits raw table text into rows of fields. Each line is split
// on a comma into at most fieldLimit fields so a trailing free-text field
// keeps its embedded commas. Double quotes are stripped wherever they
// occur. Rows with fewer than minFields fields (incl. empty lines) are
// silently dropped - the source datasets are large imports and minor
// formatting irregularities must not abort a load. With skipHeader, the
// first line is never treated as data.
//
// No case folding happens here; loaders which need lowercased values
// apply it themselves.
func Records(src string, fieldLimit, minFields int, skipHeader bool) [][]string {
	lines := strings.Split(src, "\n")
	if skipHeader && len(lines) > 0 {
		lines = lines[1:]
	}
	ans := make([][]string, 0, len(lines))
	for _, line := range lines {
		line = strings.ReplaceAll(line, "\"", "")
		if !strings.Contains(line, ",") {
			continue
		}
		fields := strings.SplitN(line, ",", fieldLimit)
		if len(fields) < minFields {
			continue
		}
		ans = append(ans, fields)
	}
	return ans
}
