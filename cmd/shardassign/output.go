package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	shardassign "github.com/birchmd/bp-shard-assign-poc"
	"github.com/birchmd/bp-shard-assign-poc/balance"
)

type shardJSON struct {
	Shard      int      `json:"shard"`
	Validators []string `json:"validators"`
	Count      int      `json:"count"`
	Stake      string   `json:"stake"`
}

type balanceJSON struct {
	StakeMin      string  `json:"stakeMin"`
	StakeMax      string  `json:"stakeMax"`
	StakeSpread   string  `json:"stakeSpread"`
	StakeMean     float64 `json:"stakeMean"`
	StakeVariance float64 `json:"stakeVariance"`
	// StakeVarianceExact is S² times the population variance as an exact decimal.
	StakeVarianceExact string  `json:"stakeVarianceExact"`
	CountMin           int     `json:"countMin"`
	CountMax           int     `json:"countMax"`
	CountSpread        int     `json:"countSpread"`
	CountMean          float64 `json:"countMean"`
	CountVariance      float64 `json:"countVariance"`
}

// assignmentJSON is the JSON rendering of an Outcome. Stakes are decimal strings
// since they may exceed the range of JSON numbers.
type assignmentJSON struct {
	Strategy    string      `json:"strategy"`
	Fingerprint string      `json:"fingerprint"`
	TotalStake  string      `json:"totalStake"`
	Shards      []shardJSON `json:"shards"`
	Balance     balanceJSON `json:"balance"`
}

func fingerprintHex(result *shardassign.AssignmentResult) string {
	return fmt.Sprintf("%016x", result.Fingerprint())
}

func newAssignmentJSON(o *shardassign.Outcome) assignmentJSON {
	r, b := o.Result, o.Balance

	shards := make([]shardJSON, 0, r.NumShards())
	for _, s := range r.Shards {
		shards = append(shards, shardJSON{
			Shard:      s.Shard,
			Validators: s.IDs(),
			Count:      s.Count(),
			Stake:      s.Stake.Dec(),
		})
	}

	return assignmentJSON{
		Strategy:    r.Strategy,
		Fingerprint: fingerprintHex(r),
		TotalStake:  r.TotalStake.Dec(),
		Shards:      shards,
		Balance: balanceJSON{
			StakeMin:           b.Stake.Min.Dec(),
			StakeMax:           b.Stake.Max.Dec(),
			StakeSpread:        b.Stake.Spread.Dec(),
			StakeMean:          b.Stake.Mean,
			StakeVariance:      b.Stake.Variance,
			StakeVarianceExact: balance.StakeVariance(r).String(),
			CountMin:           b.Count.Min,
			CountMax:           b.Count.Max,
			CountSpread:        b.Count.Spread,
			CountMean:          b.Count.Mean,
			CountVariance:      b.Count.Variance,
		},
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', 2, 64)
}

func writeText(w io.Writer, o *shardassign.Outcome) error {
	r := o.Result

	fmt.Fprintf(w, "Strategy:    %s\n", r.Strategy)
	fmt.Fprintf(w, "Fingerprint: %s\n", fingerprintHex(r))
	fmt.Fprintf(w, "Total stake: %s\n\n", r.TotalStake.Dec())

	shards := tablewriter.NewWriter(w)
	shards.Header("Shard", "Count", "Stake", "Validators")
	for _, s := range r.Shards {
		err := shards.Append([]string{
			strconv.Itoa(s.Shard),
			strconv.Itoa(s.Count()),
			s.Stake.Dec(),
			strings.Join(s.IDs(), " "),
		})
		if err != nil {
			return err
		}
	}
	if err := shards.Render(); err != nil {
		return err
	}

	fmt.Fprintln(w)

	return writeBalance(w, []*shardassign.Outcome{o})
}

func writeComparison(w io.Writer, outcomes []*shardassign.Outcome) error {
	return writeBalance(w, outcomes)
}

// writeBalance prints one row per outcome. The exact variance column is
// S·Σx² − (Σx)², which ranks strategies without floating point.
func writeBalance(w io.Writer, outcomes []*shardassign.Outcome) error {
	table := tablewriter.NewWriter(w)
	table.Header("Strategy", "Stake min", "Stake max", "Stake spread", "Stake mean", "Stake variance",
		"Stake variance x S^2", "Count min", "Count max", "Count variance")

	for _, o := range outcomes {
		b := o.Balance
		err := table.Append([]string{
			o.Result.Strategy,
			b.Stake.Min.Dec(),
			b.Stake.Max.Dec(),
			b.Stake.Spread.Dec(),
			formatFloat(b.Stake.Mean),
			formatFloat(b.Stake.Variance),
			balance.StakeVariance(o.Result).String(),
			strconv.Itoa(b.Count.Min),
			strconv.Itoa(b.Count.Max),
			formatFloat(b.Count.Variance),
		})
		if err != nil {
			return err
		}
	}

	return table.Render()
}
