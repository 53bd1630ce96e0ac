package projects_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/projectinsights/internal/projects"
)

const sampleJSON = `[
  {
    "s.no": 0,
    "amt.pledged": 15823,
    "blurb": "'Catalysts, Explorers & Secret Keepers: Women of Science Fiction' is a take-home exhibit & anthology by the Museum of Science Fiction.",
    "by": "Museum of Science Fiction",
    "country": "US",
    "currency": "usd",
    "end.time": "2016-11-01T23:59:00-04:00",
    "location": "Washington, DC",
    "percentage.funded": 186,
    "num.backers": "219382",
    "state": "DC",
    "title": "Catalysts, Explorers & Secret Keepers: Women of SF",
    "type": "Town",
    "url": "/projects/1608905146/catalysts-explorers-and-secret-keepers-women-of-sf?ref=discovery"
  },
  {
    "s.no": 1,
    "amt.pledged": 6859,
    "percentage.funded": 8,
    "num.backers": 79
  }
]`

func TestProject_DecodeDataSet(t *testing.T) {
	var list []projects.Project
	require.NoError(t, json.Unmarshal([]byte(sampleJSON), &list))
	require.Len(t, list, 2)

	first := list[0]
	assert.Equal(t, 0, first.SerialNo)
	assert.InDelta(t, 15823.0, first.AmountPledged, 0.001)
	assert.InDelta(t, 186.0, first.PercentageFunded, 0.001)
	assert.Equal(t, "Museum of Science Fiction", first.By)
	assert.Equal(t, "Washington, DC", first.Location)
	assert.Equal(t, int64(219382), first.Backers())

	second := list[1]
	assert.Equal(t, 1, second.SerialNo)
	assert.Equal(t, int64(79), second.Backers())
	assert.Empty(t, second.Title)
}

func TestProject_Backers(t *testing.T) {
	tests := []struct {
		name string
		raw  json.Number
		want int64
	}{
		{name: "missing", raw: "", want: 0},
		{name: "integer", raw: "42", want: 42},
		{name: "fractional", raw: "42.9", want: 42},
		{name: "garbage", raw: "n/a", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := projects.Project{NumBackers: tt.raw}
			assert.Equal(t, tt.want, p.Backers())
		})
	}
}

func TestNewRows(t *testing.T) {
	list := []projects.Project{{SerialNo: 7}, {SerialNo: 3}, {SerialNo: 9}}
	rows := projects.NewRows(list)

	require.Len(t, rows, 3)
	for i, r := range rows {
		assert.Equal(t, i+1, r.Position)
		assert.Equal(t, list[i].SerialNo, r.SerialNo)
	}
	assert.Empty(t, projects.NewRows(nil))
}
