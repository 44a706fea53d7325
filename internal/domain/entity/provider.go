// Package entity contains the core domain objects of the service.
package entity

import (
	"github.com/pkg/errors"
)

// Provider identifies an upstream health-data platform.
type Provider string

const (
	ProviderWhoop    Provider = "whoop"
	ProviderWithings Provider = "withings"
)

// ErrUnknownProvider is returned by ParseProvider for unsupported values.
var ErrUnknownProvider = errors.New("unknown provider")

// AllProviders lists every supported provider in a stable order.
func AllProviders() []Provider {
	return []Provider{ProviderWhoop, ProviderWithings}
}

// ParseProvider converts a path or config value into a Provider.
func ParseProvider(s string) (Provider, error) {
	switch Provider(s) {
	case ProviderWhoop, ProviderWithings:
		return Provider(s), nil
	default:
		return "", errors.Wrapf(ErrUnknownProvider, "%q", s)
	}
}

func (p Provider) String() string {
	return string(p)
}
