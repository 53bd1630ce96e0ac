// Package projects defines the crowdfunding project records shown by
// projectinsights and how they map onto table rows.
package projects

import (
	"encoding/json"
	"strconv"
)

// Project is one record of the Kickstarter projects data set. Field names
// follow the data set's dotted JSON keys.
type Project struct {
	SerialNo         int         `json:"s.no"`
	AmountPledged    float64     `json:"amt.pledged"`
	PercentageFunded float64     `json:"percentage.funded"`
	Title            string      `json:"title,omitempty"`
	By               string      `json:"by,omitempty"`
	Blurb            string      `json:"blurb,omitempty"`
	Country          string      `json:"country,omitempty"`
	Currency         string      `json:"currency,omitempty"`
	EndTime          string      `json:"end.time,omitempty"`
	Location         string      `json:"location,omitempty"`
	NumBackers       json.Number `json:"num.backers,omitempty"`
	State            string      `json:"state,omitempty"`
	Type             string      `json:"type,omitempty"`
	URL              string      `json:"url,omitempty"`
}

// Backers returns the backer count, or 0 when the data set omits it or
// holds a non-numeric value.
func (p Project) Backers() int64 {
	if p.NumBackers == "" {
		return 0
	}
	n, err := p.NumBackers.Int64()
	if err != nil {
		f, ferr := strconv.ParseFloat(string(p.NumBackers), 64)
		if ferr != nil {
			return 0
		}
		return int64(f)
	}
	return n
}

// Row is a project at its 1-based position in the displayed ordering.
// Position drives the "S.No." column, so it is assigned after sorting.
type Row struct {
	Position int `json:"position"`
	Project
}

// NewRows wraps projects in Rows numbered from 1 in slice order.
func NewRows(list []Project) []Row {
	rows := make([]Row, len(list))
	for i, p := range list {
		rows[i] = Row{Position: i + 1, Project: p}
	}
	return rows
}
