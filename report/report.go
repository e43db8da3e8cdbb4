// Package report serialises stress results and derives stable identifiers
// for them.
package report

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/sugawarayuuta/sonnet"
	"golang.org/x/crypto/sha3"

	"atomics/stress"
)

var ErrEmptyReport = errors.New("report: no results")

// Fingerprint is the hex SHA3-256 of cfg's JSON encoding.  Runs with the
// same scenario, sizing and order share a fingerprint.
func Fingerprint(cfg stress.Config) (string, error) {
	raw, err := sonnet.Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("report: encode config: %w", err)
	}
	sum := sha3.Sum256(raw)
	return hex.EncodeToString(sum[:]), nil
}

// RunID names one run: a fingerprint prefix plus the start time in base 36.
func RunID(res stress.Result) (string, error) {
	fp, err := Fingerprint(res.Config)
	if err != nil {
		return "", err
	}
	return fp[:16] + "-" + strconv.FormatInt(res.Started.UnixNano(), 36), nil
}

// Encode writes results as one JSON array followed by a newline.
func Encode(w io.Writer, results []stress.Result) error {
	raw, err := sonnet.Marshal(results)
	if err != nil {
		return fmt.Errorf("report: encode: %w", err)
	}
	raw = append(raw, '\n')
	_, err = w.Write(raw)
	return err
}

// Decode reads what Encode wrote.
func Decode(r io.Reader) ([]stress.Result, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var results []stress.Result
	if err := sonnet.Unmarshal(raw, &results); err != nil {
		return nil, fmt.Errorf("report: decode: %w", err)
	}
	if len(results) == 0 {
		return nil, ErrEmptyReport
	}
	return results, nil
}

// Line renders one result for terminal output.
func Line(res stress.Result) string {
	status := "ok"
	if !res.OK() {
		status = "FAIL"
	}
	return fmt.Sprintf("%-12s %-7v %-6s %-7s trials=%d ops=%d violations=%d mean=%.2fns p50=%.2fns p99=%.2fns sd=%.2fns %s",
		res.Config.Scenario, res.Config.Order, res.Model, res.Arch,
		len(res.Trials), res.Ops, res.Violations,
		res.Stats.MeanNs, res.Stats.P50Ns, res.Stats.P99Ns, res.Stats.StdDevNs, status)
}
