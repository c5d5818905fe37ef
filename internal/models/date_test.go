package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Date
		wantErr bool
	}{
		{name: "plain date", input: "2024-01-15", want: NewDate(2024, time.January, 15)},
		{name: "leap day", input: "2024-02-29", want: NewDate(2024, time.February, 29)},
		{name: "non leap year", input: "2023-02-29", wantErr: true},
		{name: "time of day", input: "2024-01-15T10:00:00Z", wantErr: true},
		{name: "slashes", input: "2024/01/15", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidDate)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %s", got)
		})
	}
}

func TestDate_AddMonthsClamped(t *testing.T) {
	tests := []struct {
		name   string
		start  string
		months int
		want   string
	}{
		{name: "regular day", start: "2024-01-15", months: 1, want: "2024-02-15"},
		{name: "jan 31 in leap year", start: "2024-01-31", months: 1, want: "2024-02-29"},
		{name: "jan 31 in common year", start: "2023-01-31", months: 1, want: "2023-02-28"},
		{name: "mar 31 to apr", start: "2024-03-31", months: 1, want: "2024-04-30"},
		{name: "year rollover", start: "2024-11-30", months: 3, want: "2025-02-28"},
		{name: "leap day plus a year", start: "2024-02-29", months: 12, want: "2025-02-28"},
		{name: "aug 31 plus six", start: "2024-08-31", months: 6, want: "2025-02-28"},
		{name: "backwards", start: "2024-03-31", months: -1, want: "2024-02-29"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MustParseDate(tt.start).AddMonthsClamped(tt.months)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestDate_JSON(t *testing.T) {
	type payload struct {
		Start Date  `json:"start"`
		End   *Date `json:"end"`
	}

	in := payload{Start: NewDate(2024, time.March, 1)}
	raw, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"start":"2024-03-01","end":null}`, string(raw))

	var out payload
	require.NoError(t, json.Unmarshal([]byte(`{"start":"2024-12-31","end":"2025-01-31"}`), &out))
	assert.Equal(t, "2024-12-31", out.Start.String())
	require.NotNil(t, out.End)
	assert.Equal(t, "2025-01-31", out.End.String())

	err = json.Unmarshal([]byte(`{"start":"31/12/2024"}`), &out)
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestDate_ValueAndScan(t *testing.T) {
	d := NewDate(2024, time.July, 4)

	v, err := d.Value()
	require.NoError(t, err)
	assert.Equal(t, "2024-07-04", v)

	zero, err := Date{}.Value()
	require.NoError(t, err)
	assert.Nil(t, zero)

	sources := []interface{}{
		time.Date(2024, time.July, 4, 0, 0, 0, 0, time.UTC),
		"2024-07-04",
		[]byte("2024-07-04"),
		"2024-07-04T00:00:00Z",
	}
	for _, src := range sources {
		var scanned Date
		require.NoError(t, scanned.Scan(src))
		assert.True(t, d.Equal(scanned), "source %T", src)
	}

	var nullDate Date
	require.NoError(t, nullDate.Scan(nil))
	assert.True(t, nullDate.IsZero())

	assert.Error(t, nullDate.Scan(42))
}

func TestDate_MinMax(t *testing.T) {
	a := MustParseDate("2024-01-01")
	b := MustParseDate("2024-06-01")

	assert.Equal(t, a, MinDate(a, b))
	assert.Equal(t, a, MinDate(b, a))
	assert.Equal(t, b, MaxDate(a, b))
	assert.Equal(t, b, MaxDate(b, a))
}
