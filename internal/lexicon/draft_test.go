package lexicon

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/samudra/internal/annotate"
)

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()
	nama, err := NewWordClass("nama", "kata nama", "")
	require.NoError(t, err)
	kk, err := NewWordClass("KK", "kata kerja", "")
	require.NoError(t, err)
	reg, err := NewRegistry(nama, kk)
	require.NoError(t, err)
	return reg
}

func TestBuilder_ParseDraft(t *testing.T) {
	// --- Arrange ---
	builder := NewBuilder(nil, newTestRegistry(t))
	body := "Ini adalah konsep cubaan #tag_1 #tag-2 {lang.ms:konsep} {lang.en:concept} {lang.en:test} {meta.gol:nama}"

	// --- Act ---
	draft, err := builder.ParseDraft("  cubaan ", body)

	// --- Assert ---
	require.NoError(t, err)
	expected := &KonsepDraft{
		Lemma:      "cubaan",
		Keterangan: "Ini adalah konsep cubaan",
		Golongan:   "NAMA",
		Cakupan:    []string{"tag 1", "tag-2"},
		KataAsing: []KataAsing{
			{Nama: "concept", Bahasa: "en"},
			{Nama: "test", Bahasa: "en"},
			{Nama: "konsep", Bahasa: "ms"},
		},
	}
	if diff := cmp.Diff(expected, draft); diff != "" {
		t.Errorf("draft mismatch (-want +got):\n%s", diff)
	}
}

func TestBuilder_Draft_NoForeignWords(t *testing.T) {
	builder := NewBuilder(nil, nil)

	draft, err := builder.ParseDraft("ujian", "Proses menilai {meta.gol:KK}")
	require.NoError(t, err)
	assert.Equal(t, "KK", draft.Golongan)
	assert.Empty(t, draft.Cakupan)
	assert.NotNil(t, draft.KataAsing)
	assert.Empty(t, draft.KataAsing)
}

func TestBuilder_Draft_Failures(t *testing.T) {
	builder := NewBuilder(nil, newTestRegistry(t))

	testCases := []struct {
		name        string
		lemma       string
		body        string
		expectedErr error
	}{
		{name: "blank lemma", lemma: "  ", body: "konsep {meta.gol:NAMA}", expectedErr: ErrBlankLemma},
		{name: "missing word class", lemma: "ujian", body: "konsep {lang.en:test}", expectedErr: ErrMissingWordClass},
		{name: "unregistered word class", lemma: "ujian", body: "konsep {meta.gol:ADJ}", expectedErr: ErrUnknownWordClass},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			draft, err := builder.ParseDraft(tc.lemma, tc.body)
			assert.Nil(t, draft)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.expectedErr), "expected %v, got %v", tc.expectedErr, err)
			assert.True(t, errors.Is(err, ErrInvalidDraft))
		})
	}
}

func TestBuilder_ParseDraft_PropagatesMalformedInput(t *testing.T) {
	builder := NewBuilder(nil, nil)

	_, err := builder.ParseDraft("ujian", "Ini adalah # konsep cubaan")
	require.ErrorIs(t, err, annotate.ErrAmbiguousContent)
	assert.False(t, errors.Is(err, ErrInvalidDraft))
}

func TestBuilder_Draft_RepeatableWordClass(t *testing.T) {
	parser := annotate.NewParser(annotate.WithSchema(annotate.MustSchema(
		annotate.Namespace{Name: "meta", Kind: annotate.Repeatable, Subkeys: []string{"gol"}},
	)))
	builder := NewBuilder(parser, nil)

	draft, err := builder.ParseDraft("ujian", "konsep {meta.gol:kk}")
	require.NoError(t, err)
	assert.Equal(t, "KK", draft.Golongan)

	_, err = builder.ParseDraft("ujian", "konsep {meta.gol:KK} {meta.gol:NAMA}")
	assert.True(t, errors.Is(err, ErrMissingWordClass))
}
