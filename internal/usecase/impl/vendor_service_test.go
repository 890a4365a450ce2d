package impl

import (
	"context"
	"testing"
	"time"

	"shopradar/internal/domain/entity"
	domainerrors "shopradar/internal/domain/errors"
	"shopradar/internal/domain/repository"
	mockRepo "shopradar/internal/mocks/repository"
	mockSvc "shopradar/internal/mocks/service"
	"shopradar/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type vendorServiceFixtures struct {
	service      usecase.VendorUsecase
	txManager    *mockRepo.MockTransactionManager
	vendorRepo   *mockRepo.MockVendorRepository
	tx           txRepos
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestVendorService(t *testing.T) vendorServiceFixtures {
	f := vendorServiceFixtures{
		txManager:    mockRepo.NewMockTransactionManager(t),
		vendorRepo:   mockRepo.NewMockVendorRepository(t),
		tx:           newTxRepos(t),
		hasher:       mockSvc.NewMockPasswordHasher(t),
		tokenService: mockSvc.NewMockTokenService(t),
	}
	f.service = NewVendorService(VendorServiceParams{
		TxManager:    f.txManager,
		VendorRepo:   f.vendorRepo,
		Hasher:       f.hasher,
		TokenService: f.tokenService,
		Logger:       newDiscardLogger(),
	})

	return f
}

func registerInput() *usecase.RegisterVendorInput {
	return &usecase.RegisterVendorInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "s3cret-pass",
	}
}

func TestVendorService_Register_Success(t *testing.T) {
	f := createTestVendorService(t)
	ctx := context.Background()
	input := registerInput()

	f.hasher.EXPECT().Hash(input.Password).Return("hashed", nil)
	expectTransaction(f.txManager, f.tx)
	f.tx.vendors.EXPECT().ExistsByUsernameOrEmail(ctx, "alice", "alice@example.com").Return(false, nil)
	f.tx.vendors.EXPECT().
		Create(ctx, mock.MatchedBy(func(v *entity.Vendor) bool {
			return v.Username == "alice" && v.Email == "alice@example.com" && v.HashedPassword == "hashed"
		})).
		Run(func(_ context.Context, v *entity.Vendor) { v.ID = 7 }).
		Return(nil)

	vendor, err := f.service.Register(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, int64(7), vendor.ID)
	assert.Equal(t, "alice", vendor.Username)
	assert.NotEqual(t, input.Password, vendor.HashedPassword)
}

func TestVendorService_Register_IdentityTaken(t *testing.T) {
	f := createTestVendorService(t)
	ctx := context.Background()
	input := registerInput()

	f.hasher.EXPECT().Hash(input.Password).Return("hashed", nil)
	expectTransaction(f.txManager, f.tx)
	f.tx.vendors.EXPECT().ExistsByUsernameOrEmail(ctx, input.Username, input.Email).Return(true, nil)

	vendor, err := f.service.Register(ctx, input)

	require.Error(t, err)
	assert.Nil(t, vendor)
	assert.ErrorIs(t, err, domainerrors.ErrVendorAlreadyExists)
}

func TestVendorService_Register_InsertRaceIsConflict(t *testing.T) {
	f := createTestVendorService(t)
	ctx := context.Background()
	input := registerInput()

	f.hasher.EXPECT().Hash(input.Password).Return("hashed", nil)
	expectTransaction(f.txManager, f.tx)
	f.tx.vendors.EXPECT().ExistsByUsernameOrEmail(ctx, input.Username, input.Email).Return(false, nil)
	f.tx.vendors.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Vendor")).
		Return(domainerrors.ErrVendorAlreadyExists.WrapMessage("duplicate key"))

	_, err := f.service.Register(ctx, input)

	assert.ErrorIs(t, err, domainerrors.ErrVendorAlreadyExists)
}

func TestVendorService_Register_HashFailure(t *testing.T) {
	f := createTestVendorService(t)
	input := registerInput()

	f.hasher.EXPECT().Hash(input.Password).Return("", errors.New("password too long"))

	_, err := f.service.Register(context.Background(), input)

	assert.ErrorIs(t, err, domainerrors.ErrPasswordHashFailed)
}

func TestVendorService_Register_StoreFailure(t *testing.T) {
	f := createTestVendorService(t)
	ctx := context.Background()
	input := registerInput()
	dbErr := errors.New("connection reset")

	f.hasher.EXPECT().Hash(input.Password).Return("hashed", nil)
	expectTransaction(f.txManager, f.tx)
	f.tx.vendors.EXPECT().ExistsByUsernameOrEmail(ctx, input.Username, input.Email).Return(false, dbErr)

	_, err := f.service.Register(ctx, input)

	require.Error(t, err)
	assert.ErrorIs(t, err, dbErr)
	assert.NotErrorIs(t, err, domainerrors.ErrVendorAlreadyExists)
}

func TestVendorService_Login_Success(t *testing.T) {
	f := createTestVendorService(t)
	ctx := context.Background()
	vendor := &entity.Vendor{ID: 7, Username: "alice", HashedPassword: "hashed"}
	token := &entity.AccessToken{Token: "jwt", TokenType: "bearer", ExpiresAt: time.Now().Add(time.Hour)}

	f.vendorRepo.EXPECT().FindByUsername(ctx, "alice").Return(vendor, nil)
	f.hasher.EXPECT().Check("s3cret-pass", "hashed").Return(true)
	f.tokenService.EXPECT().GenerateAccessToken(vendor).Return(token, nil)

	got, err := f.service.Login(ctx, &usecase.LoginInput{Username: "alice", Password: "s3cret-pass"})

	require.NoError(t, err)
	assert.Equal(t, token, got)
}

func TestVendorService_Login_Failures(t *testing.T) {
	vendor := &entity.Vendor{ID: 7, Username: "alice", HashedPassword: "hashed"}

	tests := []struct {
		name    string
		setup   func(f vendorServiceFixtures)
		wantErr error
	}{
		{
			name: "unknown username",
			setup: func(f vendorServiceFixtures) {
				f.vendorRepo.EXPECT().FindByUsername(mock.Anything, "alice").Return(nil, repository.ErrVendorNotFound)
			},
			wantErr: domainerrors.ErrInvalidCredentials,
		},
		{
			name: "wrong password",
			setup: func(f vendorServiceFixtures) {
				f.vendorRepo.EXPECT().FindByUsername(mock.Anything, "alice").Return(vendor, nil)
				f.hasher.EXPECT().Check("s3cret-pass", "hashed").Return(false)
			},
			wantErr: domainerrors.ErrInvalidCredentials,
		},
		{
			name: "token signing fails",
			setup: func(f vendorServiceFixtures) {
				f.vendorRepo.EXPECT().FindByUsername(mock.Anything, "alice").Return(vendor, nil)
				f.hasher.EXPECT().Check("s3cret-pass", "hashed").Return(true)
				f.tokenService.EXPECT().GenerateAccessToken(vendor).Return(nil, errors.New("no key"))
			},
			wantErr: domainerrors.ErrTokenIssueFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := createTestVendorService(t)
			tt.setup(f)

			token, err := f.service.Login(context.Background(), &usecase.LoginInput{Username: "alice", Password: "s3cret-pass"})

			assert.Nil(t, token)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestVendorService_Login_StoreFailureIsNotCredentialError(t *testing.T) {
	f := createTestVendorService(t)
	dbErr := errors.New("connection reset")

	f.vendorRepo.EXPECT().FindByUsername(mock.Anything, "alice").Return(nil, dbErr)

	_, err := f.service.Login(context.Background(), &usecase.LoginInput{Username: "alice", Password: "x"})

	require.Error(t, err)
	assert.ErrorIs(t, err, dbErr)
	assert.NotErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}
