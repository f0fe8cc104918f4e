package difficulty

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vancomm/minefield/internal/minefield"
)

func TestPresets(t *testing.T) {
	tests := []struct {
		d      *Difficulty
		params minefield.Params
		mines  int
	}{
		{Easy(), minefield.Params{Rows: 8, Columns: 8, MinesPercent: 16}, 10},
		{Experienced(), minefield.Params{Rows: 16, Columns: 16, MinesPercent: 16}, 40},
		{Expert(), minefield.Params{Rows: 30, Columns: 16, MinesPercent: 21}, 100},
	}
	for _, test := range tests {
		t.Run(test.d.Name(), func(t *testing.T) {
			assert.False(t, test.d.Editable())
			assert.Equal(t, test.params, test.d.Params())
			assert.Equal(t, test.mines, test.d.Params().TotalMines())
		})
	}
}

func TestPresetsNotEditable(t *testing.T) {
	d := Expert()
	assert.ErrorIs(t, d.SetRows(10), ErrNotEditable)
	assert.ErrorIs(t, d.SetColumns(10), ErrNotEditable)
	assert.ErrorIs(t, d.SetMinesPercent(50), ErrNotEditable)
	assert.Equal(t, Expert().Params(), d.Params())
}

func TestCustomClamps(t *testing.T) {
	tests := []struct {
		name                   string
		rows, columns, percent int
		want                   minefield.Params
	}{
		{"in range", 10, 12, 20, minefield.Params{Rows: 10, Columns: 12, MinesPercent: 20}},
		{"too small", 1, 2, 3, minefield.Params{Rows: 8, Columns: 8, MinesPercent: 16}},
		{"too large", 100, 100, 100, minefield.Params{Rows: 30, Columns: 24, MinesPercent: 93}},
		{"negative", -5, -5, -5, minefield.Params{Rows: 8, Columns: 8, MinesPercent: 16}},
		{"bounds", 30, 24, 93, minefield.Params{Rows: 30, Columns: 24, MinesPercent: 93}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			d := Custom(test.rows, test.columns, test.percent)
			assert.True(t, d.Editable())
			assert.Equal(t, test.want, d.Params())
		})
	}
}

func TestCustomSetters(t *testing.T) {
	d := Custom(8, 8, 16)
	require.NoError(t, d.SetRows(31))
	require.NoError(t, d.SetColumns(7))
	require.NoError(t, d.SetMinesPercent(50))
	assert.Equal(t, 30, d.Rows())
	assert.Equal(t, 8, d.Columns())
	assert.Equal(t, 50, d.MinesPercent())
	assert.Equal(t, "custom 30x8@50%", d.String())
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 8, Clamp(3, 8, 30))
	assert.Equal(t, 30, Clamp(31, 8, 30))
	assert.Equal(t, 12, Clamp(12, 8, 30))
}

func TestParse(t *testing.T) {
	for name, want := range map[string]string{
		"easy":         "easy",
		"Beginner":     "easy",
		" EXPERIENCED": "experienced",
		"intermediate": "experienced",
		"expert":       "expert",
		"custom":       "custom",
	} {
		d, err := Parse(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, d.Name())
	}

	_, err := Parse("nightmare")
	assert.Error(t, err)
}

func TestCreator(t *testing.T) {
	c := NewCreator(NewRand(1))
	assert.Equal(t, "easy", c.Current().Name())

	m, err := c.Create()
	require.NoError(t, err)
	rows, columns := m.Dimensions()
	assert.Equal(t, 8, rows)
	assert.Equal(t, 8, columns)
	assert.Equal(t, 10, m.TotalMines())

	c.SetDifficulty(Expert())
	m, err = c.Create()
	require.NoError(t, err)
	assert.Equal(t, 100, m.TotalMines())

	c.SetDifficulty(nil)
	assert.Equal(t, "easy", c.Current().Name())

	m, err = c.NewCustomGame(100, 3, 50)
	require.NoError(t, err)
	assert.Equal(t, 30, m.Rows())
	assert.Equal(t, 8, m.Columns())
	assert.Equal(t, 120, m.TotalMines())

	for _, create := range []func() (*minefield.Minefield, error){
		c.NewBeginnerGame, c.NewExperiencedGame, c.NewExpertGame,
	} {
		m, err := create()
		require.NoError(t, err)
		assert.False(t, m.IsGameOver())
	}
}

func TestNewRandSeeded(t *testing.T) {
	a, b := NewRand(7), NewRand(7)
	assert.Equal(t, a.Uint64(), b.Uint64())
	assert.NotNil(t, NewRand(0))
}
