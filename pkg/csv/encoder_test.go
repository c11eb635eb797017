package csv_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/csvdoc/csvdoc/pkg/csv"
)

func TestEncodeValue(t *testing.T) {
	tests := []struct {
		name  string
		value string
		opts  []csv.Option
		want  string
	}{
		{
			name:  "plain value stays bare",
			value: "abc",
			want:  "abc",
		},
		{
			name:  "empty value stays empty",
			value: "",
			want:  "",
		},
		{
			name:  "whitespace is preserved verbatim",
			value: "  a\t",
			want:  "  a\t",
		},
		{
			name:  "separator forces quoting",
			value: "a,b",
			want:  `"a,b"`,
		},
		{
			name:  "escaper forces quoting and doubling",
			value: `a"b`,
			want:  `"a""b"`,
		},
		{
			name:  "line feed forces quoting",
			value: "a\nb",
			want:  "\"a\nb\"",
		},
		{
			name:  "carriage return forces quoting",
			value: "a\rb",
			want:  "\"a\rb\"",
		},
		{
			name:  "value of escapers only",
			value: `""`,
			want:  `""""""`,
		},
		{
			name:  "custom dialect",
			value: "a;b",
			opts:  []csv.Option{csv.WithSeparator(';'), csv.WithEscaper('\'')},
			want:  "'a;b'",
		},
		{
			name:  "default separator is plain under custom dialect",
			value: "a,b",
			opts:  []csv.Option{csv.WithSeparator(';'), csv.WithEscaper('\'')},
			want:  "a,b",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := csv.EncodeValue(tt.value, tt.opts...)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEncode(t *testing.T) {
	tests := []struct {
		name string
		rows [][]string
		want string
	}{
		{
			name: "no rows",
			rows: nil,
			want: "",
		},
		{
			name: "single row has no terminator",
			rows: [][]string{{"a", "b"}},
			want: "a,b",
		},
		{
			name: "rows joined by line feed",
			rows: [][]string{{"a", "b"}, {"c", "d"}},
			want: "a,b\nc,d",
		},
		{
			name: "empty values keep their separators",
			rows: [][]string{{"a", "", "b"}, {"", ""}},
			want: "a,,b\n,",
		},
		{
			name: "ragged rows encode as-is",
			rows: [][]string{{"a"}, {"b", "c", "d"}},
			want: "a\nb,c,d",
		},
		{
			name: "quoting applies per value",
			rows: [][]string{{"a,b", `c"d`, "plain"}},
			want: `"a,b","c""d",plain`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := csv.Encode(tt.rows)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEncodeRejectsInvalidDialect(t *testing.T) {
	_, err := csv.Encode([][]string{{"a"}}, csv.WithSeparator('x'), csv.WithEscaper('x'))
	assert.ErrorIs(t, err, csv.ErrInvalidDialect)

	_, err = csv.EncodeValue("a", csv.WithSeparator('\n'))
	assert.ErrorIs(t, err, csv.ErrInvalidDialect)
}

// Values that exercise every quoting decision must survive an encode/parse
// round trip unchanged.
func TestEncodeParseRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		rows [][]string
	}{
		{
			name: "plain grid",
			rows: [][]string{{"a", "b"}, {"c", "d"}},
		},
		{
			name: "embedded separators and escapers",
			rows: [][]string{{"a,b", `c"d`, `"`}, {`""`, "x"}},
		},
		{
			name: "embedded line breaks",
			rows: [][]string{{"a\nb", "c\r\nd", "e\rf"}},
		},
		{
			name: "whitespace-heavy values",
			rows: [][]string{{"  lead", "trail  ", "\tboth\t", "  "}},
		},
		{
			name: "empty values inside rows",
			rows: [][]string{{"", "a", ""}, {"", ""}},
		},
		{
			name: "multi-byte values",
			rows: [][]string{{"héllo", "日本語", "a😀b"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, err := csv.Encode(tt.rows)
			require.NoError(t, err)

			doc, err := csv.ParseString(text)
			require.NoError(t, err)

			assert.Equal(t, tt.rows, doc.Values())
		})
	}
}

func TestEncodeValueParsesBack(t *testing.T) {
	values := []string{
		"plain",
		"a,b",
		`a"b`,
		"a\nb",
		"a\rb",
		`",`,
		"  spaced  ",
	}

	for _, v := range values {
		encoded, err := csv.EncodeValue(v)
		require.NoError(t, err)

		doc, err := csv.ParseString(encoded)
		require.NoError(t, err)

		require.Equal(t, 1, doc.Len(), "value %q", v)
		row, err := doc.Row(0)
		require.NoError(t, err)
		assert.Equal(t, []string{v}, row.Values(), "value %q", v)
	}
}

func TestEncoderWriteRow(t *testing.T) {
	rows := [][]string{{"a", "b"}, {"c,d", `e"f`}, {"g"}}

	var buf bytes.Buffer
	enc, err := csv.NewEncoder(&buf)
	require.NoError(t, err)

	for _, row := range rows {
		require.NoError(t, enc.WriteRow(row...))
	}
	require.NoError(t, enc.Flush())

	want, err := csv.Encode(rows)
	require.NoError(t, err)
	assert.Equal(t, want, buf.String(), "streamed output matches Encode")
}

func TestEncoderWriteDocument(t *testing.T) {
	doc := buildDocument(t, []string{"h1", "h2"}, []string{"v1", "v,2"})

	var buf bytes.Buffer
	enc, err := csv.NewEncoder(&buf, csv.WithSeparator(';'))
	require.NoError(t, err)

	require.NoError(t, enc.WriteDocument(doc))
	require.NoError(t, enc.Flush())

	assert.Equal(t, "h1;h2\nv1;v,2", buf.String())
}

func TestEncoderRejectsInvalidDialect(t *testing.T) {
	_, err := csv.NewEncoder(&bytes.Buffer{}, csv.WithEscaper(0))
	assert.ErrorIs(t, err, csv.ErrInvalidDialect)
}

func TestEncoderWriteFailure(t *testing.T) {
	enc, err := csv.NewEncoder(failingWriter{})
	require.NoError(t, err)

	t.Run("flush reports the sink error", func(t *testing.T) {
		require.NoError(t, enc.WriteRow("a"))
		assert.ErrorContains(t, enc.Flush(), "flush output")
	})

	t.Run("large row reports the sink error", func(t *testing.T) {
		err := enc.WriteRow(strings.Repeat("x", 64*1024))
		assert.ErrorContains(t, err, "write row")
	})
}

func TestDocumentEncode(t *testing.T) {
	doc := buildDocument(t, []string{"a", "b,c"}, []string{"d"})

	t.Run("default dialect", func(t *testing.T) {
		got, err := doc.Encode()
		require.NoError(t, err)
		assert.Equal(t, "a,\"b,c\"\nd", got)
	})

	t.Run("custom dialect", func(t *testing.T) {
		got, err := doc.Encode(csv.WithSeparator('|'))
		require.NoError(t, err)
		assert.Equal(t, "a|b,c\nd", got)
	})

	t.Run("String matches Encode", func(t *testing.T) {
		want, err := doc.Encode()
		require.NoError(t, err)
		assert.Equal(t, want, doc.String())
	})
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("sink closed")
}

func BenchmarkEncode(b *testing.B) {
	rows := make([][]string, 0, 200)
	for i := 0; i < 200; i++ {
		rows = append(rows, []string{"plain", "needs,quoting", `has"escaper`, "last"})
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := csv.Encode(rows); err != nil {
			b.Fatal(err)
		}
	}
}
