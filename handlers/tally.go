// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"math/big"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/chainvote/models"
)

// buildTally formats the candidate counts for display: humanized
// totals plus an integer percent for the progress bars. Counts are
// uint64 all the way through, so formatting and the percent math must
// not pass through int64 or a uint64 multiply.
func buildTally(candidates []models.Candidate) models.TallyResponse {
	var total uint64
	for _, c := range candidates {
		total += c.Votes
	}

	rows := make([]models.TallyRow, 0, len(candidates))
	for _, c := range candidates {
		percent := 0
		if total > 0 {
			percent = int(float64(c.Votes) / float64(total) * 100)
		}
		rows = append(rows, models.TallyRow{
			Name:    c.Name,
			Votes:   commaUint(c.Votes),
			Percent: percent,
		})
	}

	return models.TallyResponse{
		TotalVotes: commaUint(total),
		Rows:       rows,
		ComputedAt: time.Now(),
	}
}

func commaUint(v uint64) string {
	return humanize.BigComma(new(big.Int).SetUint64(v))
}
