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

package main

import (
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"

	"tugalex/lexicon"
)

func mustRegion(lx *lexicon.Lexicon, dialect string) string {
	region, err := lx.RegionForDialect(dialect)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to resolve dialect")
	}
	return region
}

func runLookup(lx *lexicon.Lexicon, word, pos, dialect string) {
	region := mustRegion(lx, dialect)
	entry, err := lx.Get(word, pos, region)
	if err != nil {
		log.Fatal().Err(err).Msg("Lookup failed")
		return
	}
	ans, err := json.Marshal(entry)
	if err != nil {
		log.Fatal().Err(err).Msg("Lookup failed")
		return
	}
	fmt.Println(string(ans))
}

func runSyllables(lx *lexicon.Lexicon, word, dialect string) {
	region := mustRegion(lx, dialect)
	syl, err := lx.Syllables(word, region)
	if err != nil {
		log.Fatal().Err(err).Msg("Syllable lookup failed")
		return
	}
	ans, err := json.Marshal(syl)
	if err != nil {
		log.Fatal().Err(err).Msg("Syllable lookup failed")
		return
	}
	fmt.Println(string(ans))
}

func runWordlist(lx *lexicon.Lexicon, dialect string) {
	region := mustRegion(lx, dialect)
	words, err := lx.Wordlist(region)
	if err != nil {
		log.Fatal().Err(err).Msg("Wordlist failed")
		return
	}
	for _, word := range words {
		fmt.Println(word)
	}
}

func runRegions(lx *lexicon.Lexicon) {
	regions, err := lx.Regions()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load regions")
		return
	}
	for _, region := range regions.ToOrderedSlice() {
		fmt.Println(region)
	}
}
