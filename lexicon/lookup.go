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

import (
	"sort"
	"strings"

	"tugalex/lxerror"
)

// Entry combines the two per-word views a single lookup can answer.
type Entry struct {
	Syllables []string `json:"syllables"`
	Phonemes  string   `json:"phonemes"`
}

// RegionForDialect translates an ISO dialect code (e.g. "pt-PT")
// to the internal dataset region code (e.g. "lbx"). Unknown codes
// produce a lxerror.DialectError.
func (lx *Lexicon) RegionForDialect(lang string) (string, error) {
	region, ok := DialectRegions[lang]
	if !ok {
		return "", lxerror.UnsupportedDialect(lang)
	}
	return region, nil
}

// Phonemes resolves a word to its phoneme transcription for the given
// POS and region. The resolution chain is fixed: an archaic spelling
// is first replaced by its modern equivalent, then the homograph
// override table applies (it wins even over existing base entries)
// and only then the base IPA table. Missing vocabulary is a routine
// condition, not an error: the second return value is false and no
// validation of the region argument takes place. The returned error
// concerns solely a failed lazy load of the dictionary.
func (lx *Lexicon) Phonemes(word, pos, region string) (string, bool, error) {
	if err := lx.ensureDict(); err != nil {
		return "", false, err
	}
	w := strings.ToLower(strings.TrimSpace(word))
	if modern, ok := lx.archaisms[w]; ok {
		w = modern
	}
	if variants, ok := lx.homographs[w]; ok {
		if phonemes, ok := variants[pos]; ok {
			return phonemes, true, nil
		}
	}
	phonemes, ok := lx.ipa[region][w][pos]
	return phonemes, ok, nil
}

// Syllables resolves a word to its syllable segments within a region.
// Unlike Phonemes, the region is validated against the loaded dataset
// (lxerror.DialectError for unknown ones) and an absent word yields
// an empty, non-nil slice.
func (lx *Lexicon) Syllables(word, region string) ([]string, error) {
	if err := lx.ensureDict(); err != nil {
		return nil, err
	}
	words, ok := lx.syllables[region]
	if !ok {
		return nil, lxerror.UnsupportedDialect(region)
	}
	syl, ok := words[strings.ToLower(strings.TrimSpace(word))]
	if !ok {
		return []string{}, nil
	}
	return syl, nil
}

// Get answers both syllable segmentation and phoneme transcription
// in one record. An unknown region fails the same way Syllables
// does; an unknown word leaves the respective fields empty.
func (lx *Lexicon) Get(word, pos, region string) (Entry, error) {
	syl, err := lx.Syllables(word, region)
	if err != nil {
		return Entry{}, err
	}
	phonemes, _, err := lx.Phonemes(word, pos, region)
	if err != nil {
		return Entry{}, err
	}
	return Entry{Syllables: syl, Phonemes: phonemes}, nil
}

// Wordlist provides all words of a region in ascending lexicographic
// order.
func (lx *Lexicon) Wordlist(region string) ([]string, error) {
	if err := lx.ensureDict(); err != nil {
		return nil, err
	}
	words, ok := lx.syllables[region]
	if !ok {
		return nil, lxerror.UnsupportedDialect(region)
	}
	ans := make([]string, 0, len(words))
	for word := range words {
		ans = append(ans, word)
	}
	sort.Strings(ans)
	return ans, nil
}

// IPAMapFor flattens the region's IPA table for a single POS into a
// word -> phonemes map, with homograph entries overriding base ones.
func (lx *Lexicon) IPAMapFor(pos, region string) (map[string]string, error) {
	if err := lx.ensureDict(); err != nil {
		return nil, err
	}
	words, ok := lx.ipa[region]
	if !ok {
		return nil, lxerror.UnsupportedDialect(region)
	}
	ans := make(map[string]string)
	for word, variants := range words {
		if phonemes, ok := variants[pos]; ok {
			ans[word] = phonemes
		}
	}
	for word, variants := range lx.homographs {
		if phonemes, ok := variants[pos]; ok {
			ans[word] = phonemes
		}
	}
	return ans, nil
}
