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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeAO1990(t *testing.T) {
	lx := testLexicon(t)
	assert.Equal(t, "uma ação", lx.NormalizeAO1990("uma acção"))
}

func TestNormalizeAO1990PicksCanonicalForm(t *testing.T) {
	lx := testLexicon(t)
	// `pharmácia` lists two accepted forms; the first one wins
	assert.Equal(t, "farmácia", lx.NormalizeAO1990("pharmácia"))
}

func TestNormalizeAO1990CollapsesWhitespace(t *testing.T) {
	lx := testLexicon(t)
	assert.Equal(t, "uma ação ótimo", lx.NormalizeAO1990("uma   acção\nóptimo"))
}

func TestNormalizeAO1990UnknownTokensPassThrough(t *testing.T) {
	lx := testLexicon(t)
	assert.Equal(t, "isto fica igual", lx.NormalizeAO1990("isto fica igual"))
}

func TestReverseAO1990PT(t *testing.T) {
	lx := testLexicon(t)
	assert.Equal(t, "pharmácia", lx.ReverseAO1990PT("farmácia"))
	assert.Equal(t, "uma acção", lx.ReverseAO1990PT("uma ação"))
}

func TestReverseAO1990PTMapsEveryAcceptedForm(t *testing.T) {
	lx := testLexicon(t)
	// both accepted modern forms of `sector` lead back to it
	assert.Equal(t, "sector", lx.ReverseAO1990PT("setor"))
	assert.Equal(t, "sector", lx.ReverseAO1990PT("sector"))
}

func TestReverseAO1990BR(t *testing.T) {
	lx := testLexicon(t)
	assert.Equal(t, "idéia tranqüila?", lx.ReverseAO1990BR("ideia tranqüila?"))
	assert.Equal(t, "freqüência", lx.ReverseAO1990BR("frequência"))
}

func TestReverseAO1990FamiliesAreIndependent(t *testing.T) {
	lx := testLexicon(t)
	// `acção` belongs to the PT table only
	assert.Equal(t, "ação", lx.ReverseAO1990BR("ação"))
	assert.Equal(t, "acção", lx.ReverseAO1990PT("ação"))
}

func TestForwardReverseRoundTrip(t *testing.T) {
	lx := testLexicon(t)
	// every word is a canonical (first listed) form in the PT table
	// and none of the modern forms is shared by multiple old entries
	original := "acção óptimo consumpção"
	assert.Equal(t, original, lx.ReverseAO1990PT(lx.NormalizeAO1990(original)))
}
