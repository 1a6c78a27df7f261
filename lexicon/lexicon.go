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

// Package lexicon implements the tugalex core: loading of the regional
// Portuguese lexicon tables into memory and the lookup operations over
// them (phoneme transcriptions, syllable segmentations, AO1990 spelling
// normalization). All structures are immutable once loaded; lookups
// never write.
package lexicon

import (
	"sort"
	"strings"
	"sync"

	"github.com/czcorpus/cnc-gokit/collections"
)

// IPAMap maps region -> word -> POS -> phoneme transcription
type IPAMap map[string]map[string]map[string]string

// SyllableMap maps region -> word -> ordered syllable segments
type SyllableMap map[string]map[string][]string

// DialectRegions enumerates supported ISO dialect codes and the
// dataset region partitions they resolve to.
var DialectRegions = map[string]string{
	"pt-PT": "lbx",
	"pt-BR": "rjx",
	"pt-AO": "lda",
	"pt-MZ": "mpx",
	"pt-TL": "dli",
}

func regionDialects() map[string]string {
	ans := make(map[string]string, len(DialectRegions))
	for dialect, region := range DialectRegions {
		ans[region] = dialect
	}
	return ans
}

// silentConsonantClusters are the pre-AO1990 consonant groups with a
// mute `p` (e.g. perempção -> perenção)
var silentConsonantClusters = []string{"mpc", "mpç", "mpt"}

// Lexicon is a read-only view of the regional lexicon dataset. The
// two agreement tables, homographs and archaisms load eagerly in
// Open; the large regional dictionary (IPA + syllables + regions)
// loads lazily and exactly once, on the first operation that needs
// it or via Preload. Derived views are memoized - they are pure
// functions of already loaded state.
//
// A Lexicon is safe for concurrent readers; the compute-once guards
// make even the first (loading) access race-free.
type Lexicon struct {
	conf *SourcesSetup

	aoPT       map[string][]string
	aoBR       map[string][]string
	homographs map[string]map[string]string
	archaisms  map[string]string

	dictOnce  sync.Once
	dictErr   error
	ipa       IPAMap
	syllables SyllableMap
	regions   *collections.Set[string]

	ao1990Once sync.Once
	ao1990     map[string][]string

	posTagsOnce sync.Once
	posTags     map[string][]string
	posTagsErr  error

	silentOnce sync.Once
	silent     *collections.Set[string]

	diaeresisOnce sync.Once
	diaeresis     *collections.Set[string]

	revPTOnce sync.Once
	revPT     map[string]string

	revBROnce sync.Once
	revBR     map[string]string
}

// Open creates a Lexicon over the configured data files. The
// agreement, homograph and archaism tables load immediately; a
// missing file produces a lxerror.ResourceError. The regional
// dictionary is only checked once actually needed (see Preload).
func Open(conf *SourcesSetup) (*Lexicon, error) {
	aoPT, err := loadAgreement(conf.AgreementPTPath)
	if err != nil {
		return nil, err
	}
	aoBR, err := loadAgreement(conf.AgreementBRPath)
	if err != nil {
		return nil, err
	}
	homographs, err := loadHomographs(conf.HomographsPath)
	if err != nil {
		return nil, err
	}
	archaisms, err := loadArchaisms(conf.ArchaismsPath)
	if err != nil {
		return nil, err
	}
	return &Lexicon{
		conf:       conf,
		aoPT:       aoPT,
		aoBR:       aoBR,
		homographs: homographs,
		archaisms:  archaisms,
	}, nil
}

func (lx *Lexicon) ensureDict() error {
	lx.dictOnce.Do(func() {
		lx.ipa, lx.syllables, lx.regions, lx.dictErr = loadRegionalDict(lx.conf.DictionaryPath)
	})
	return lx.dictErr
}

// Preload forces the lazy part of the dataset in. Calling it is
// optional - any lookup needing the data triggers the same load.
func (lx *Lexicon) Preload() error {
	return lx.ensureDict()
}

// Regions provides all region codes found in the regional dictionary.
// This is a superset of the codes reachable via DialectRegions.
func (lx *Lexicon) Regions() (*collections.Set[string], error) {
	if err := lx.ensureDict(); err != nil {
		return nil, err
	}
	return lx.regions, nil
}

// AO1990 provides the combined old -> new spelling table for both
// dialect families. On a shared old spelling, the Brazilian entry
// wins.
func (lx *Lexicon) AO1990() map[string][]string {
	lx.ao1990Once.Do(func() {
		merged := make(map[string][]string, len(lx.aoPT)+len(lx.aoBR))
		for old, repl := range lx.aoPT {
			merged[old] = repl
		}
		for old, repl := range lx.aoBR {
			merged[old] = repl
		}
		lx.ao1990 = merged
	})
	return lx.ao1990
}

// PossiblePOSTags provides, for each word of the base region's IPA
// table and each homograph, the POS tags it has entries for. For a
// word present in both sources the homograph tags replace the base
// ones entirely. Tags are sorted for stable output.
func (lx *Lexicon) PossiblePOSTags() (map[string][]string, error) {
	lx.posTagsOnce.Do(func() {
		if lx.posTagsErr = lx.ensureDict(); lx.posTagsErr != nil {
			return
		}
		ans := make(map[string][]string)
		for word, variants := range lx.ipa[lx.conf.BaseRegion] {
			ans[word] = posTagList(variants)
		}
		for word, variants := range lx.homographs {
			ans[word] = posTagList(variants)
		}
		lx.posTags = ans
	})
	return lx.posTags, lx.posTagsErr
}

func posTagList(variants map[string]string) []string {
	tags := make([]string, 0, len(variants))
	for pos := range variants {
		tags = append(tags, pos)
	}
	sort.Strings(tags)
	return tags
}

// SilentConsonantWords provides the pre-agreement spellings in which
// one of the mpc/mpç/mpt clusters lost its `p` in at least one
// accepted post-agreement form. Note the asymmetry with
// DiaeresisWords: here the *old* spellings are wanted, as the usual
// application is detecting archaic consonants in historical text.
func (lx *Lexicon) SilentConsonantWords() *collections.Set[string] {
	lx.silentOnce.Do(func() {
		ans := collections.NewSet[string]()
		for old, repl := range lx.AO1990() {
			for _, cluster := range silentConsonantClusters {
				if !strings.Contains(old, cluster) {
					continue
				}
				for _, modern := range repl {
					if !strings.Contains(modern, cluster) {
						ans.Add(old)
					}
				}
			}
		}
		lx.silent = ans
	})
	return lx.silent
}

// DiaeresisWords provides the *modern* spellings of words whose
// pre-agreement Brazilian spelling carried a `ü` (voiced u in
// gue/gui/que/qui groups). Only the BR table is consulted - the
// diaeresis never existed under the European orthography.
func (lx *Lexicon) DiaeresisWords() *collections.Set[string] {
	lx.diaeresisOnce.Do(func() {
		ans := collections.NewSet[string]()
		for old, repl := range lx.aoBR {
			if !strings.Contains(old, "ü") {
				continue
			}
			for _, modern := range repl {
				ans.Add(modern)
			}
		}
		lx.diaeresis = ans
	})
	return lx.diaeresis
}
