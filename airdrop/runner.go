package airdrop

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// Runner triggers the distribution and then reports the contract state.
// The two steps are independent: a failed trigger never skips the report.
type Runner struct {
	client ContractClient
	out    io.Writer
	errOut io.Writer
}

func NewRunner(client ContractClient, out io.Writer, errOut io.Writer) *Runner {
	return &Runner{
		client: client,
		out:    out,
		errOut: errOut,
	}
}

// Run executes both steps and returns IncompleteRunErr if any failed.
func (r *Runner) Run() error {
	failures := 0

	err := r.triggerDistribution()
	if err != nil {
		failures++
		fmt.Fprintf(r.errOut, "Airdrop failed: %v\n", err)
		log.Debug("airdrop trigger failed", "err", err.Error())
	}

	err = r.reportStatus()
	if err != nil {
		failures++
		fmt.Fprintf(r.errOut, "Status fetch failed: %v\n", err)
		log.Debug("status fetch failed", "err", err.Error())
	}

	if failures > 0 {
		return errors.Wrapf(IncompleteRunErr, "%d of 2 steps failed", failures)
	}
	return nil
}

func (r *Runner) triggerDistribution() error {
	txHash, err := r.client.TriggerDistribution()
	if err != nil {
		return err
	}
	fmt.Fprintf(r.out, "Monthly airdrop triggered! Transaction: %s\n", txHash)
	return nil
}

func (r *Runner) reportStatus() error {
	treasury, err := r.client.Treasury()
	if err != nil {
		return err
	}
	participants, err := r.client.Participants()
	if err != nil {
		return err
	}

	fmt.Fprintf(r.out, "Treasury: %s\n", treasury.String())
	fmt.Fprintf(r.out, "Participants: %v\n", participants)
	return nil
}
