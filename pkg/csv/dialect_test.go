package csv_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/csvdoc/csvdoc/pkg/csv"
)

func TestDialectValidate(t *testing.T) {
	valid := []csv.Dialect{
		csv.DefaultDialect(),
		{Separator: ';', Escaper: '\''},
		{Separator: '\t', Escaper: '"'},
		{Separator: '|', Escaper: '`'},
	}
	for _, d := range valid {
		assert.NoError(t, d.Validate(), "dialect %+v", d)
	}

	invalid := []csv.Dialect{
		{},
		{Separator: ','},
		{Escaper: '"'},
		{Separator: 'x', Escaper: 'x'},
		{Separator: '\n', Escaper: '"'},
		{Separator: '\r', Escaper: '"'},
		{Separator: ',', Escaper: '\n'},
		{Separator: ',', Escaper: '\r'},
	}
	for _, d := range invalid {
		err := d.Validate()
		assert.ErrorIs(t, err, csv.ErrInvalidDialect, "dialect %+v", d)
		assert.True(t, csv.IsInvalidDialect(err))
	}
}

func TestDialectErrorMessage(t *testing.T) {
	err := csv.Dialect{Separator: 'x', Escaper: 'x'}.Validate()

	var derr *csv.DialectError
	assert.ErrorAs(t, err, &derr)
	assert.Equal(t, 'x', derr.Separator)
	assert.Equal(t, 'x', derr.Escaper)
	assert.Equal(t, `invalid dialect (separator 'x', escaper 'x'): separator and escaper must differ`, err.Error())
}

func TestOptionsCompose(t *testing.T) {
	t.Run("later options win", func(t *testing.T) {
		doc, err := csv.ParseString("a;b", csv.WithSeparator('|'), csv.WithSeparator(';'))
		assert.NoError(t, err)
		assert.Equal(t, [][]string{{"a", "b"}}, doc.Values())
	})

	t.Run("WithDialect replaces both characters", func(t *testing.T) {
		doc, err := csv.ParseString("a;'b;c'", csv.WithDialect(csv.Dialect{Separator: ';', Escaper: '\''}))
		assert.NoError(t, err)
		assert.Equal(t, [][]string{{"a", "b;c"}}, doc.Values())
	})

	t.Run("nil options are ignored", func(t *testing.T) {
		doc, err := csv.ParseString("a,b", nil, csv.WithSeparator(','))
		assert.NoError(t, err)
		assert.Equal(t, [][]string{{"a", "b"}}, doc.Values())
	})
}
