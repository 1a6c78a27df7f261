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

package cnf

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/czcorpus/cnc-gokit/logging"
	"github.com/rs/zerolog/log"

	"tugalex/lexicon"
)

const (
	dfltDataDir = "./data"
	dfltDialect = "pt-PT"
)

// Conf is a global configuration of the app
type Conf struct {
	DataDir        string                `json:"dataDir"`
	Lexicon        *lexicon.SourcesSetup `json:"lexicon"`
	DefaultDialect string                `json:"defaultDialect"`
	LogFile        string                `json:"logFile"`
	LogLevel       logging.LogLevel      `json:"logLevel"`

	srcPath string
}

func (conf *Conf) IsDebugMode() bool {
	return conf.LogLevel == "debug"
}

// GetSourcePath returns an absolute path of a file
// the config was loaded from.
func (conf *Conf) GetSourcePath() string {
	if filepath.IsAbs(conf.srcPath) {
		return conf.srcPath
	}
	var cwd string
	cwd, err := os.Getwd()
	if err != nil {
		cwd = "[failed to get working dir]"
	}
	return filepath.Join(cwd, conf.srcPath)
}

func LoadConfig(path string) *Conf {
	if path == "" {
		log.Fatal().Msg("Cannot load config - path not specified")
	}
	rawData, err := os.ReadFile(path)
	if err != nil {
		log.Fatal().Err(err).Msg("Cannot load config")
	}
	var conf Conf
	conf.srcPath = path
	err = json.Unmarshal(rawData, &conf)
	if err != nil {
		log.Fatal().Err(err).Msg("Cannot load config")
	}
	return &conf
}

func ValidateAndDefaults(conf *Conf) {
	if conf.DataDir == "" {
		conf.DataDir = dfltDataDir
		log.Warn().
			Str("value", dfltDataDir).
			Msg("dataDir not specified, using default")
	}
	if conf.Lexicon == nil {
		conf.Lexicon = &lexicon.SourcesSetup{}
	}
	if err := conf.Lexicon.ValidateAndDefaults(conf.DataDir); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	if conf.DefaultDialect == "" {
		conf.DefaultDialect = dfltDialect
		log.Warn().
			Str("value", dfltDialect).
			Msg("defaultDialect not specified, using default")
	}
	if _, ok := lexicon.DialectRegions[conf.DefaultDialect]; !ok {
		log.Fatal().
			Str("value", conf.DefaultDialect).
			Msg("defaultDialect is not a supported dialect")
	}
}
