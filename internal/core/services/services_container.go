package services

import (
	portsrepo "github.com/bistrobooks/backoffice/internal/core/ports/repositories"
	portssvc "github.com/bistrobooks/backoffice/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Statement = NewStatementService(repos.Ledger, repos.Operations)

	return container
}
