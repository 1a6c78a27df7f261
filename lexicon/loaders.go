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
	"os"
	"strings"

	"github.com/czcorpus/cnc-gokit/collections"
	"github.com/czcorpus/cnc-gokit/fs"
	"github.com/rs/zerolog/log"

	"tugalex/lxerror"
	"tugalex/tabular"
)

const (
	// rawPhonemeSeparator separates syllables inside phoneme strings
	// as found in the source dataset
	rawPhonemeSeparator = "|"

	// SyllableSeparator is the canonical syllable mark tugalex
	// exposes in phoneme transcriptions
	SyllableSeparator = "·"
)

func readSource(path string) (string, error) {
	isFile, err := fs.IsFile(path)
	if err != nil {
		return "", err
	}
	if !isFile {
		return "", lxerror.ResourceNotFound(path)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// loadAgreement reads a single orthographic agreement table. Each row
// is `old_spelling,new_spellings` where the second field is a
// comma-and-space joined list of accepted post-agreement forms, the
// first of them being the canonical one.
func loadAgreement(path string) (map[string][]string, error) {
	src, err := readSource(path)
	if err != nil {
		return nil, err
	}
	ans := make(map[string][]string)
	for _, row := range tabular.Records(src, 2, 2, false) {
		ans[row[0]] = strings.Split(row[1], ", ")
	}
	log.Debug().
		Int("numEntries", len(ans)).
		Str("file", path).
		Msg("loaded orthographic agreement table")
	return ans, nil
}

// loadHomographs reads the heterophonic homograph table
// (`word,pos,ipa` rows, header skipped). POS variants of the same
// word merge across rows.
func loadHomographs(path string) (map[string]map[string]string, error) {
	src, err := readSource(path)
	if err != nil {
		return nil, err
	}
	ans := make(map[string]map[string]string)
	for _, row := range tabular.Records(src, 3, 3, true) {
		word := strings.ToLower(row[0])
		pos := strings.ToUpper(row[1])
		if _, ok := ans[word]; !ok {
			ans[word] = make(map[string]string)
		}
		ans[word][pos] = row[2]
	}
	log.Debug().
		Int("numEntries", len(ans)).
		Str("file", path).
		Msg("loaded heterophonic homographs")
	return ans, nil
}

// loadArchaisms reads the archaism table (`old,new,source` rows,
// header skipped). The third field carries provenance metadata and
// is ignored.
func loadArchaisms(path string) (map[string]string, error) {
	src, err := readSource(path)
	if err != nil {
		return nil, err
	}
	ans := make(map[string]string)
	for _, row := range tabular.Records(src, 3, 3, true) {
		ans[strings.ToLower(row[0])] = strings.ToLower(row[1])
	}
	log.Debug().
		Int("numEntries", len(ans)).
		Str("file", path).
		Msg("loaded archaisms")
	return ans, nil
}

// loadRegionalDict reads the main dataset into the IPA table, the
// syllable table and the set of encountered region codes. Expected
// row format: `id,word,pos,freq,phonemes,syllables,region` (header
// skipped). The whole line is lowercased before splitting which also
// normalizes word and region values. Rows with fewer than 7 fields
// are dropped; a file with just a header yields empty (non-nil)
// structures.
func loadRegionalDict(path string) (IPAMap, SyllableMap, *collections.Set[string], error) {
	ipa := make(IPAMap)
	syllables := make(SyllableMap)
	regions := collections.NewSet[string]()

	src, err := readSource(path)
	if err != nil {
		return nil, nil, nil, err
	}
	for _, row := range tabular.Records(strings.ToLower(src), 7, 7, true) {
		word := strings.TrimSpace(row[1])
		pos := strings.ToUpper(row[2])
		phonemes := strings.TrimSpace(
			strings.ReplaceAll(row[4], rawPhonemeSeparator, SyllableSeparator))
		syl := strings.ReplaceAll(strings.TrimSpace(row[5]), " ", rawPhonemeSeparator)
		region := strings.TrimSpace(row[6])
		regions.Add(region)

		if _, ok := syllables[region]; !ok {
			syllables[region] = make(map[string][]string)
		}
		if _, ok := ipa[region]; !ok {
			ipa[region] = make(map[string]map[string]string)
		}
		if _, ok := ipa[region][word]; !ok {
			ipa[region][word] = make(map[string]string)
		}
		syllables[region][word] = strings.Split(syl, rawPhonemeSeparator)
		ipa[region][word][pos] = phonemes
	}
	log.Info().
		Int("numRegions", regions.Size()).
		Str("file", path).
		Msg("loaded regional dictionary")
	return ipa, syllables, regions, nil
}
