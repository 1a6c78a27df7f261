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

package lexicon

import "strings"

// NormalizeAO1990 rewrites a sentence to post-agreement spelling.
// Tokens are whitespace-separated; a token present in the combined
// agreement table is replaced by its canonical (first listed) modern
// form, anything else passes through unchanged. The original
// whitespace structure is not preserved - tokens rejoin with single
// spaces.
func (lx *Lexicon) NormalizeAO1990(sentence string) string {
	ao := lx.AO1990()
	tokens := strings.Fields(sentence)
	for i, tok := range tokens {
		if repl, ok := ao[tok]; ok && len(repl) > 0 {
			tokens[i] = repl[0]
		}
	}
	return strings.Join(tokens, " ")
}

// reverseTable inverts a forward agreement table. A post-agreement
// spelling shared by multiple pre-agreement entries keeps whichever
// old spelling the iteration visits last; the source data leaves
// this ambiguity unresolved and so do we.
func reverseTable(ao map[string][]string) map[string]string {
	ans := make(map[string]string, len(ao))
	for old, repl := range ao {
		for _, modern := range repl {
			ans[modern] = old
		}
	}
	return ans
}

func (lx *Lexicon) reverseAO(reverse map[string]string, sentence string) string {
	tokens := strings.Fields(sentence)
	for i, tok := range tokens {
		if old, ok := reverse[tok]; ok {
			tokens[i] = old
		}
	}
	return strings.Join(tokens, " ")
}

// ReverseAO1990PT rewrites a sentence back to pre-agreement European
// Portuguese spelling.
func (lx *Lexicon) ReverseAO1990PT(sentence string) string {
	lx.revPTOnce.Do(func() {
		lx.revPT = reverseTable(lx.aoPT)
	})
	return lx.reverseAO(lx.revPT, sentence)
}

// ReverseAO1990BR rewrites a sentence back to pre-agreement Brazilian
// Portuguese spelling.
func (lx *Lexicon) ReverseAO1990BR(sentence string) string {
	lx.revBROnce.Do(func() {
		lx.revBR = reverseTable(lx.aoBR)
	})
	return lx.reverseAO(lx.revBR, sentence)
}
