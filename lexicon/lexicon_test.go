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
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// the malformed `praia` row (4 of 7 fields) must not contribute
// any entries
const testDict = `id,word,pos,freq,phonemes,syllables,region
1,casa,NOUN,812,ˈka|zɐ,ka za,lbx
2,casa,VERB,101,ˈka|zɐ,ka za,lbx
3,cidade,NOUN,540,si|ˈda|dɨ,ci da de,lbx
4,cidade,NOUN,533,si|ˈda|dʒi,ci da de,rjx
5,farmácia,NOUN,97,fɐɾ|ˈma|sjɐ,far má cia,lbx
6,gosto,NOUN,131,ˈgoʃ|tu,gos to,lbx
7,praia,NOUN
8,bola,NOUN,77,ˈbɔ|lɐ,bo la,lbx
9,coisa,NOUN,488,ˈkoj|zɐ,coi sa,lbx
`

const testHomographs = `word,pos,ipa
gosto,NOUN,ˈgoʃ·tu
gosto,VERB,ˈgɔʃ·tu
farmácia,NOUN,/fɐɾ.ˈma.sjɐ/
`

const testArchaisms = `old,new,source
pharmacia,farmácia,pre-1911 orthography
cousa,coisa,archaic variant
`

const testAOPT = `acção,ação
óptimo,ótimo
peremptório,perentório
consumpção,consunção
pharmácia,"farmácia, pharmácia"
sector,"setor, sector"
`

const testAOBR = `tranqüilo,tranquilo
freqüência,frequência
idéia,ideia
sector,setor
`

func writeSource(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func testSetup(t *testing.T) *SourcesSetup {
	t.Helper()
	dir := t.TempDir()
	return &SourcesSetup{
		DictionaryPath:  writeSource(t, dir, "regional_dict.csv", testDict),
		AgreementPTPath: writeSource(t, dir, "acordo_ortografico_pt_PT.csv", testAOPT),
		AgreementBRPath: writeSource(t, dir, "acordo_ortografico_pt_BR.csv", testAOBR),
		HomographsPath:  writeSource(t, dir, "heterophonic_homographs.csv", testHomographs),
		ArchaismsPath:   writeSource(t, dir, "archaisms.csv", testArchaisms),
		BaseRegion:      "lbx",
	}
}

func testLexicon(t *testing.T) *Lexicon {
	t.Helper()
	lx, err := Open(testSetup(t))
	require.NoError(t, err)
	return lx
}

func TestOpenFailsOnMissingAgreementTable(t *testing.T) {
	conf := testSetup(t)
	conf.AgreementPTPath = filepath.Join(t.TempDir(), "no-such-file.csv")
	_, err := Open(conf)
	assert.Error(t, err)
}

func TestPreload(t *testing.T) {
	lx := testLexicon(t)
	assert.NoError(t, lx.Preload())
	regions, err := lx.Regions()
	assert.NoError(t, err)
	assert.Equal(t, 2, regions.Size())
	assert.True(t, regions.Contains("lbx"))
	assert.True(t, regions.Contains("rjx"))
}

func TestLazyLoadErrorPropagates(t *testing.T) {
	conf := testSetup(t)
	conf.DictionaryPath = filepath.Join(t.TempDir(), "no-such-file.csv")
	lx, err := Open(conf)
	require.NoError(t, err) // the dictionary is not touched yet
	_, _, err = lx.Phonemes("casa", "NOUN", "lbx")
	assert.Error(t, err)
}

func TestAO1990MergesBothFamilies(t *testing.T) {
	lx := testLexicon(t)
	ao := lx.AO1990()
	assert.Equal(t, []string{"ação"}, ao["acção"])
	assert.Equal(t, []string{"ideia"}, ao["idéia"])
}

func TestAO1990BRWinsOnCollision(t *testing.T) {
	lx := testLexicon(t)
	assert.Equal(t, []string{"setor"}, lx.AO1990()["sector"])
}

func TestPossiblePOSTags(t *testing.T) {
	lx := testLexicon(t)
	tags, err := lx.PossiblePOSTags()
	assert.NoError(t, err)
	assert.Equal(t, []string{"NOUN", "VERB"}, tags["casa"])
	assert.Equal(t, []string{"NOUN"}, tags["bola"])
	// the homograph table contributes words of its own...
	assert.Equal(t, []string{"NOUN", "VERB"}, tags["gosto"])
	// ...and replaces base entries wholesale
	assert.Equal(t, []string{"NOUN"}, tags["farmácia"])
}

func TestSilentConsonantWordsReturnsOldSpellings(t *testing.T) {
	lx := testLexicon(t)
	words := lx.SilentConsonantWords()
	assert.Equal(t, 2, words.Size())
	assert.True(t, words.Contains("peremptório"))
	assert.True(t, words.Contains("consumpção"))
}

func TestDiaeresisWordsReturnsNewSpellings(t *testing.T) {
	lx := testLexicon(t)
	words := lx.DiaeresisWords()
	assert.Equal(t, 2, words.Size())
	assert.True(t, words.Contains("tranquilo"))
	assert.True(t, words.Contains("frequência"))
	assert.False(t, words.Contains("tranqüilo"))
}

func TestSourcesSetupDefaults(t *testing.T) {
	var ss SourcesSetup
	err := ss.ValidateAndDefaults("/tmp/tugalex-data")
	assert.NoError(t, err)
	assert.Equal(t, filepath.Join("/tmp/tugalex-data", "regional_dict.csv"), ss.DictionaryPath)
	assert.Equal(t, filepath.Join("/tmp/tugalex-data", "archaisms.csv"), ss.ArchaismsPath)
	assert.Equal(t, DfltBaseRegion, ss.BaseRegion)
}

func TestSourcesSetupEnvOverride(t *testing.T) {
	t.Setenv(DictPathEnvVar, "/elsewhere/dict.csv")
	var ss SourcesSetup
	err := ss.ValidateAndDefaults("/tmp/tugalex-data")
	assert.NoError(t, err)
	assert.Equal(t, "/elsewhere/dict.csv", ss.DictionaryPath)
}

func TestSourcesSetupRejectsUnknownBaseRegion(t *testing.T) {
	ss := SourcesSetup{BaseRegion: "xxx"}
	assert.Error(t, ss.ValidateAndDefaults("/tmp/tugalex-data"))
}
