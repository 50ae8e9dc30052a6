package governance

import (
	"fmt"
	"io"

	"github.com/cloudstrikethunderbeing/bear/config"
	"github.com/cloudstrikethunderbeing/bear/interaction"
	"github.com/pkg/errors"
)

// Runner loads the project document, builds the proposal and submits it
// once. Local configuration problems stop it before any remote call.
type Runner struct {
	submitter ProposalSubmitter
	endpoint  string
	out       io.Writer
	errOut    io.Writer
	dryRun    bool
}

// NewRunner builds a runner for proposals sent to the governance endpoint.
// The endpoint is only used to render the call data of a dry run.
func NewRunner(submitter ProposalSubmitter, endpoint string, out io.Writer, errOut io.Writer, dryRun bool) *Runner {
	return &Runner{
		submitter: submitter,
		endpoint:  endpoint,
		out:       out,
		errOut:    errOut,
		dryRun:    dryRun,
	}
}

func (r *Runner) Run(projectPath string) error {
	doc, err := config.LoadProjectDocument(projectPath)
	if err != nil {
		fmt.Fprintf(r.errOut, "Error loading project config: %v\n", err)
		return err
	}

	payload, err := BuildProposal(doc)
	if err != nil {
		fmt.Fprintf(r.errOut, "Error building proposal: %v\n", err)
		return err
	}

	if r.dryRun {
		r.printPayload(payload)
		return nil
	}

	result, err := r.submitter.SubmitProposal(payload)
	if err != nil {
		fmt.Fprintf(r.errOut, "Error submitting proposal: %v\n", err)
		log.Debug("proposal submission failed", "err", err.Error())
		return errors.Wrap(err, "submitting proposal")
	}

	fmt.Fprintf(r.out, "Proposal submitted! Result: %s\n", result)
	return nil
}

func (r *Runner) printPayload(payload ProposalPayload) {
	fmt.Fprintln(r.out, "Proposal payload (dry run, not submitted):")
	fmt.Fprintf(r.out, "  title: %q\n", payload.Title)
	fmt.Fprintf(r.out, "  summary: %q\n", payload.Summary)
	fmt.Fprintf(r.out, "  url: %q\n", payload.URL)
	fmt.Fprintf(r.out, "  logo: %q\n", payload.Logo)
	fmt.Fprintf(r.out, "  target_icp_e8s: %d\n", payload.TargetIcpE8s)
	fmt.Fprintf(r.out, "  call data: %s\n", interaction.BuildCallData(r.endpoint, payload.Args()...))
}
