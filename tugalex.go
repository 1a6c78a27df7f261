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
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/czcorpus/cnc-gokit/collections"
	"github.com/czcorpus/cnc-gokit/logging"
	"github.com/rs/zerolog/log"

	"tugalex/cnf"
	"tugalex/lexicon"
)

var (
	version   string
	buildDate string
	gitCommit string
)

var knownActions = []string{
	"lookup", "syllables", "wordlist", "normalize",
	"reverse-pt", "reverse-br", "regions", "test",
}

func cleanVersionInfo(v string) string {
	return strings.TrimLeft(strings.Trim(v, "'"), "v")
}

func main() {
	dialect := flag.String("dialect", "", "ISO dialect code (e.g. pt-PT); empty = config default")
	pos := flag.String("pos", "NOUN", "part-of-speech tag for phoneme lookups")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "TUGALEX - a regional Portuguese lexicon lookup utility\n\n")
		fmt.Fprintf(os.Stderr, "Usage:\n\t%s [options] lookup [config.json] [word]\n\t", filepath.Base(os.Args[0]))
		fmt.Fprintf(os.Stderr, "%s [options] syllables [config.json] [word]\n\t", filepath.Base(os.Args[0]))
		fmt.Fprintf(os.Stderr, "%s [options] wordlist [config.json]\n\t", filepath.Base(os.Args[0]))
		fmt.Fprintf(os.Stderr, "%s [options] normalize [config.json] [sentence]\n\t", filepath.Base(os.Args[0]))
		fmt.Fprintf(os.Stderr, "%s [options] reverse-pt|reverse-br [config.json] [sentence]\n\t", filepath.Base(os.Args[0]))
		fmt.Fprintf(os.Stderr, "%s [options] regions [config.json]\n\t", filepath.Base(os.Args[0]))
		fmt.Fprintf(os.Stderr, "%s [options] version\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	flag.Parse()
	action := flag.Arg(0)
	if action == "version" {
		fmt.Printf(
			"tugalex %s\nbuild date: %s\nlast commit: %s\n",
			cleanVersionInfo(version), cleanVersionInfo(buildDate), cleanVersionInfo(gitCommit),
		)
		return
	}
	if !collections.SliceContains(knownActions, action) {
		log.Fatal().Msgf("Unknown action %s", action)
		return
	}
	conf := cnf.LoadConfig(flag.Arg(1))
	logging.SetupLogging(conf.LogFile, conf.LogLevel)
	cnf.ValidateAndDefaults(conf)
	if action == "test" {
		log.Info().Msg("config OK")
		return
	}
	if *dialect == "" {
		*dialect = conf.DefaultDialect
	}

	lx, err := lexicon.Open(conf.Lexicon)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open lexicon")
		return
	}

	switch action {
	case "lookup":
		runLookup(lx, flag.Arg(2), *pos, *dialect)
	case "syllables":
		runSyllables(lx, flag.Arg(2), *dialect)
	case "wordlist":
		runWordlist(lx, *dialect)
	case "normalize":
		fmt.Println(lx.NormalizeAO1990(joinedArgs(2)))
	case "reverse-pt":
		fmt.Println(lx.ReverseAO1990PT(joinedArgs(2)))
	case "reverse-br":
		fmt.Println(lx.ReverseAO1990BR(joinedArgs(2)))
	case "regions":
		runRegions(lx)
	}
}

func joinedArgs(fromIdx int) string {
	return strings.Join(flag.Args()[fromIdx:], " ")
}
