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
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
)

const (
	// DictPathEnvVar overrides the regional dictionary path no matter
	// what the configuration says. Mostly for experiments with
	// alternative dataset builds.
	DictPathEnvVar = "TUGALEX_DICT_PATH"

	DfltBaseRegion = "lbx"

	dfltDictionaryFile  = "regional_dict.csv"
	dfltAgreementPTFile = "acordo_ortografico_pt_PT.csv"
	dfltAgreementBRFile = "acordo_ortografico_pt_BR.csv"
	dfltHomographsFile  = "heterophonic_homographs.csv"
	dfltArchaismsFile   = "archaisms.csv"
)

// SourcesSetup defines where the five lexicon data files live. Any
// path left empty is resolved against a data directory using the
// bundled file names.
type SourcesSetup struct {
	DictionaryPath  string `json:"dictionaryPath"`
	AgreementPTPath string `json:"agreementPtPath"`
	AgreementBRPath string `json:"agreementBrPath"`
	HomographsPath  string `json:"homographsPath"`
	ArchaismsPath   string `json:"archaismsPath"`

	// BaseRegion is the region whose IPA entries seed word-level
	// views not scoped to a caller-provided region (POS inventory).
	BaseRegion string `json:"baseRegion"`
}

// ValidateAndDefaults resolves unset paths against dataDir and fills
// in default values. It must be called before the setup is passed
// to Open.
func (ss *SourcesSetup) ValidateAndDefaults(dataDir string) error {
	if ss.DictionaryPath == "" {
		ss.DictionaryPath = filepath.Join(dataDir, dfltDictionaryFile)
	}
	if v := os.Getenv(DictPathEnvVar); v != "" {
		log.Info().
			Str("path", v).
			Msgf("applying dictionary path from %s", DictPathEnvVar)
		ss.DictionaryPath = v
	}
	if ss.AgreementPTPath == "" {
		ss.AgreementPTPath = filepath.Join(dataDir, dfltAgreementPTFile)
	}
	if ss.AgreementBRPath == "" {
		ss.AgreementBRPath = filepath.Join(dataDir, dfltAgreementBRFile)
	}
	if ss.HomographsPath == "" {
		ss.HomographsPath = filepath.Join(dataDir, dfltHomographsFile)
	}
	if ss.ArchaismsPath == "" {
		ss.ArchaismsPath = filepath.Join(dataDir, dfltArchaismsFile)
	}
	if ss.BaseRegion == "" {
		log.Warn().
			Str("value", DfltBaseRegion).
			Msg("baseRegion not set, using default")
		ss.BaseRegion = DfltBaseRegion
	}
	if _, ok := regionDialects()[ss.BaseRegion]; !ok {
		return fmt.Errorf("baseRegion `%s` is not a known region code", ss.BaseRegion)
	}
	return nil
}
