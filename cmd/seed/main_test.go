package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

func TestReadBranches(t *testing.T) {
	in := "\ufeffName,address,name_ar\nNorte,Calle 1,الشمال\nSur, Calle 2 \n"
	rows, err := readBranches(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Norte", rows[0].Name)
	assert.Equal(t, "الشمال", rows[0].NameAr)
	assert.Equal(t, "Calle 2", rows[1].Address)
	assert.Empty(t, rows[1].NameAr)
}

func TestReadBranches_FaltaColumna(t *testing.T) {
	_, err := readBranches(strings.NewReader("name\nNorte\n"))
	assert.ErrorContains(t, err, "address")
}

func TestReadBranches_Latin1(t *testing.T) {
	latin, err := charmap.ISO8859_1.NewEncoder().String("name,address\nBogotá,Cañón 5\n")
	require.NoError(t, err)
	rows, err := readBranches(transform.NewReader(strings.NewReader(latin), charmap.ISO8859_1.NewDecoder()))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Bogotá", rows[0].Name)
	assert.Equal(t, "Cañón 5", rows[0].Address)
}
