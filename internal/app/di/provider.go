// Package di provides dependency injection factories for creating application components.
package di

import (
	"mf_backend/internal/platform/externalapi/mfapi"
	infrahttp "mf_backend/internal/platform/http"
)

// NewSchemeProvider creates a fully configured mfapi client with its own HTTP client.
func NewSchemeProvider() (*mfapi.Client, error) {
	cfg, err := mfapi.LoadConfig()
	if err != nil {
		return nil, err
	}
	httpClient := infrahttp.NewHTTPClient(cfg.Timeout)
	return mfapi.NewClient(cfg, httpClient), nil
}
