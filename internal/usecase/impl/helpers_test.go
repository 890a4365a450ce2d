package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"shopradar/internal/domain/repository"
	mockRepo "shopradar/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// txRepos are the repositories handed out inside a mocked transaction.
type txRepos struct {
	factory *mockRepo.MockRepositoryFactory
	vendors *mockRepo.MockVendorRepository
	shops   *mockRepo.MockShopRepository
}

func newTxRepos(t *testing.T) txRepos {
	repos := txRepos{
		factory: mockRepo.NewMockRepositoryFactory(t),
		vendors: mockRepo.NewMockVendorRepository(t),
		shops:   mockRepo.NewMockShopRepository(t),
	}
	repos.factory.EXPECT().VendorRepo().Return(repos.vendors).Maybe()
	repos.factory.EXPECT().ShopRepo().Return(repos.shops).Maybe()

	return repos
}

// expectTransaction makes txManager run the callback once against repos and
// return whatever the callback returns.
func expectTransaction(txManager *mockRepo.MockTransactionManager, repos txRepos) {
	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(repos.factory)
		}).
		Once()
}
