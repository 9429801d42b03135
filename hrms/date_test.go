package hrms_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NikitaKarmakarP/rolewise-zenith/hrms"
)

func TestParseDate(t *testing.T) {
	d, err := hrms.ParseDate("2024-12-23")
	require.NoError(t, err)
	assert.Equal(t, hrms.NewDate(2024, time.December, 23), d)
	assert.Equal(t, "2024-12-23", d.String())

	_, err = hrms.ParseDate("23/12/2024")
	assert.Error(t, err)
}

func TestInclusiveDays(t *testing.T) {
	start := hrms.MustParseDate("2024-12-23")

	assert.Equal(t, 1, hrms.InclusiveDays(start, start))
	assert.Equal(t, 5, hrms.InclusiveDays(start, hrms.MustParseDate("2024-12-27")))
	assert.Equal(t, 10, hrms.InclusiveDays(start, hrms.MustParseDate("2025-01-01")))
	assert.Equal(t, 0, hrms.InclusiveDays(start, hrms.MustParseDate("2024-12-22")))
}

func TestDateOf_TruncatesToUTCDay(t *testing.T) {
	ts := time.Date(2024, time.December, 11, 23, 59, 0, 0, time.UTC)
	assert.True(t, hrms.DateOf(ts).Equal(hrms.NewDate(2024, time.December, 11)))
}

func TestDate_SameMonth(t *testing.T) {
	d := hrms.MustParseDate("2024-12-02")
	assert.True(t, d.SameMonth(hrms.MustParseDate("2024-12-31")))
	assert.False(t, d.SameMonth(hrms.MustParseDate("2023-12-02")))
	assert.False(t, d.SameMonth(hrms.MustParseDate("2024-11-30")))
}

func TestDate_JSON(t *testing.T) {
	type wrapper struct {
		D hrms.Date `json:"d"`
	}

	out, err := json.Marshal(wrapper{D: hrms.MustParseDate("2021-04-12")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"d":"2021-04-12"}`, string(out))

	var w wrapper
	require.NoError(t, json.Unmarshal([]byte(`{"d":"2019-03-15"}`), &w))
	assert.Equal(t, "2019-03-15", w.D.String())

	require.NoError(t, json.Unmarshal([]byte(`{"d":""}`), &w))
	assert.True(t, w.D.IsZero())

	assert.Error(t, json.Unmarshal([]byte(`{"d":"March 15"}`), &w))
}
