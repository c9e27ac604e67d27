package geodata

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadTrimsAndDropsIncompleteRows(t *testing.T) {
	entries, err := Load(filepath.Join("testdata", "algeria_cities.json"))
	require.NoError(t, err)

	// One row has a blank daira and must be dropped.
	require.Len(t, entries, 6)
	for _, e := range entries {
		for _, name := range []string{e.WilayaName, e.DairaName, e.CommuneName} {
			require.NotEmpty(t, name)
			require.Equal(t, strings.TrimSpace(name), name)
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join("testdata", "nope.json"))
	require.Error(t, err)
}

func TestGroupBuildsDeduplicatedTree(t *testing.T) {
	entries, err := Load(filepath.Join("testdata", "algeria_cities.json"))
	require.NoError(t, err)

	tree := Group(entries)
	require.Len(t, tree, 3)

	require.Equal(t, "Alger", tree[0].Name)
	require.Len(t, tree[0].Dairas, 2)
	require.Equal(t, []string{"Bab El Oued", "Casbah"}, tree[0].Dairas[0].Communes)

	// Padded and clean "Blida" rows collapse into one wilaya and one daira.
	require.Equal(t, "Blida", tree[1].Name)
	require.Len(t, tree[1].Dairas, 1)
	require.Equal(t, []string{"Soumaa", "Boufarik"}, tree[1].Dairas[0].Communes)

	require.Equal(t, "Oran", tree[2].Name)
}

func TestGroupDairaNamesCollideAcrossWilayas(t *testing.T) {
	// Two wilayas can each have a daira with the same name; they must stay
	// separate subtrees.
	entries := []Entry{
		{WilayaName: "Adrar", DairaName: "Centre", CommuneName: "A"},
		{WilayaName: "Oran", DairaName: "Centre", CommuneName: "B"},
	}
	tree := Group(entries)
	require.Len(t, tree, 2)
	require.Equal(t, []string{"A"}, tree[0].Dairas[0].Communes)
	require.Equal(t, []string{"B"}, tree[1].Dairas[0].Communes)
}
