package config

import (
	"net/url"
	"strings"
)

func (bi BlockchainInformation) Validate() error {
	if strings.TrimSpace(bi.ProxyUrl) == "" {
		return NewConfigurationError("Blockchain.ProxyUrl", "", ErrMissingValue)
	}
	parsed, err := url.ParseRequestURI(bi.ProxyUrl)
	if err != nil {
		return NewConfigurationError("Blockchain.ProxyUrl", "invalid url", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return NewConfigurationError("Blockchain.ProxyUrl", "scheme must be http or https", nil)
	}
	if parsed.Host == "" {
		return NewConfigurationError("Blockchain.ProxyUrl", "missing host", nil)
	}
	if strings.TrimSpace(bi.ChainID) == "" {
		return NewConfigurationError("Blockchain.ChainID", "", ErrMissingValue)
	}
	if strings.TrimSpace(bi.PemPath) == "" {
		return NewConfigurationError("Blockchain.PemPath", "a signing identity is required", ErrMissingValue)
	}
	return nil
}

func (ac AirdropConfig) Validate() error {
	return validateAddress("Airdrop.Address", ac.Address, AirdropAddressPlaceholder)
}

func (gc GovernanceConfig) Validate() error {
	return validateAddress("Governance.Address", gc.Address, GovernanceAddressPlaceholder)
}

func validateAddress(field, address, placeholder string) error {
	trimmed := strings.TrimSpace(address)
	if trimmed == "" {
		return NewConfigurationError(field, "", ErrMissingValue)
	}
	if trimmed == placeholder {
		return NewConfigurationError(field, trimmed, ErrPlaceholderValue)
	}
	return nil
}
