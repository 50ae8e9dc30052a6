package governance

import (
	"encoding/json"
	"math/big"

	"github.com/cloudstrikethunderbeing/bear/config"
)

// E8sPerIcp is the number of base units in one whole token.
const E8sPerIcp = 100000000

// Project document fields read by BuildProposal.
const (
	FieldName        = "name"
	FieldDescription = "description"
	FieldWebsite     = "website"
	FieldLogoUrl     = "logo_url"
	FieldIcpTarget   = "icp_target"
)

const websitePrefix = "\nWebsite: "

// ProposalPayload is the request sent to the governance contract.
type ProposalPayload struct {
	Title        string `json:"title"`
	Summary      string `json:"summary"`
	URL          string `json:"url"`
	Logo         string `json:"logo"`
	TargetIcpE8s uint64 `json:"target_icp_e8s"`
}

// BuildProposal maps the project document onto a proposal payload. Every
// field is checked for presence and type before any conversion happens.
func BuildProposal(doc config.ProjectDocument) (ProposalPayload, error) {
	name, err := doc.Text(FieldName)
	if err != nil {
		return ProposalPayload{}, err
	}
	description, err := doc.Text(FieldDescription)
	if err != nil {
		return ProposalPayload{}, err
	}
	website, err := doc.Text(FieldWebsite)
	if err != nil {
		return ProposalPayload{}, err
	}
	logo, err := doc.Text(FieldLogoUrl)
	if err != nil {
		return ProposalPayload{}, err
	}
	target, err := doc.Number(FieldIcpTarget)
	if err != nil {
		return ProposalPayload{}, err
	}

	targetE8s, err := IcpToE8s(target)
	if err != nil {
		return ProposalPayload{}, config.NewConfigurationError(FieldIcpTarget, string(target), err)
	}

	return ProposalPayload{
		Title:        name,
		Summary:      description + websitePrefix + website,
		URL:          website,
		Logo:         logo,
		TargetIcpE8s: targetE8s,
	}, nil
}

// IcpToE8s converts a decimal amount of whole tokens into base units
// without going through floating point.
func IcpToE8s(amount json.Number) (uint64, error) {
	value, ok := new(big.Rat).SetString(string(amount))
	if !ok {
		return 0, config.ErrWrongType
	}
	if value.Sign() < 0 {
		return 0, NegativeTargetErr
	}

	value.Mul(value, new(big.Rat).SetInt64(E8sPerIcp))
	if !value.IsInt() {
		return 0, FractionalBaseUnitsErr
	}
	if !value.Num().IsUint64() {
		return 0, TargetOverflowErr
	}

	return value.Num().Uint64(), nil
}

// Args returns the call arguments in endpoint order:
// title, summary, url, logo, target in base units.
func (pp ProposalPayload) Args() [][]byte {
	return [][]byte{
		[]byte(pp.Title),
		[]byte(pp.Summary),
		[]byte(pp.URL),
		[]byte(pp.Logo),
		new(big.Int).SetUint64(pp.TargetIcpE8s).Bytes(),
	}
}
