package services

import (
	"log/slog"

	"github.com/ebanking/portal_backend/internal/core/ports/gateways"
	portsrepo "github.com/ebanking/portal_backend/internal/core/ports/repositories"
	portssvc "github.com/ebanking/portal_backend/internal/core/ports/services"
	"github.com/ebanking/portal_backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
func NewServiceContainer(
	cfg *config.Config,
	repos portsrepo.RepositoryProvider,
	rateSource gateways.RateSource,
	publisher gateways.TransactionPublisher,
	logger *slog.Logger,
) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Customer = NewCustomerService(repos.CustomerRepo)
	container.Account = NewAccountService(repos.AccountRepo)
	container.Token = NewTokenService(cfg)
	container.Converter = NewExchangeRateService(rateSource, cfg.ExchangeRateTimeout, logger)
	container.Transaction = NewTransactionService(
		repos.TransactionRepo,
		repos.AccountRepo,
		container.Converter,
		publisher,
		logger,
	)

	return container
}
