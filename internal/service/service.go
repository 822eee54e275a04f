// Package service implements the application service layer.
package service

import (
	"github.com/browsearcher/backend/internal/config"
	"github.com/browsearcher/backend/internal/registry"
)

// Service exposes session operations to the transport layer.
type Service struct {
	registry *registry.Registry
	config   *config.Config
}

// New creates a new service.
func New(reg *registry.Registry, cfg *config.Config) *Service {
	return &Service{
		registry: reg,
		config:   cfg,
	}
}
