package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/yigit/student-api/internal/app/models"
	"github.com/yigit/student-api/internal/app/repositories"
	"github.com/yigit/student-api/internal/app/services/mocks"
	"github.com/yigit/student-api/internal/pkg/apperrors"
)

func TestRegisterUser(t *testing.T) {
	ctx := context.Background()

	t.Run("precheck conflict stops the insert", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := mocks.NewMockUserStore(ctrl)
		store.EXPECT().FindConflict(ctx, "ann", "ann@example.com").Return(repositories.ErrEmailTaken)

		_, err := NewUserService(store, Options{ConflictPrecheck: true}).
			RegisterUser(ctx, &models.User{Username: "ann", Email: " ann@example.com "})
		assert.ErrorIs(t, err, apperrors.ErrConflict)
		assert.Equal(t, "email already exists", err.Error())
	})

	t.Run("creates when free", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := mocks.NewMockUserStore(ctrl)
		gomock.InOrder(
			store.EXPECT().FindConflict(ctx, "ann", "ann@example.com").Return(nil),
			store.EXPECT().Create(ctx, gomock.Any()).Return(&models.User{ID: 1, Username: "ann"}, nil),
		)

		user, err := NewUserService(store, Options{ConflictPrecheck: true}).
			RegisterUser(ctx, &models.User{Username: "ann", Email: "ann@example.com"})
		require.NoError(t, err)
		assert.Equal(t, int64(1), user.ID)
	})

	t.Run("missing email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := mocks.NewMockUserStore(ctrl)

		_, err := NewUserService(store, Options{}).RegisterUser(ctx, &models.User{Username: "ann"})
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	})
}

func TestCreateMarketNormalisesOptionalFields(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	store := mocks.NewMockMarketStore(ctrl)
	blank := "  "

	store.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, m *models.Market) (*models.Market, error) {
			assert.Nil(t, m.Description)
			assert.Equal(t, "Harbour", m.Label)
			return m, nil
		})

	_, err := NewMarketService(store).CreateMarket(ctx, &models.Market{ImageLink: "img", Label: " Harbour ", Description: &blank})
	require.NoError(t, err)

	_, err = NewMarketService(store).CreateMarket(ctx, &models.Market{ImageLink: "img"})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = NewMarketService(store).GetMarket(ctx, 0)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestCreateVendorDefaultsLists(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	store := mocks.NewMockVendorStore(ctrl)

	store.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, v *models.Vendor) (*models.Vendor, error) {
			assert.NotNil(t, v.Markets)
			assert.NotNil(t, v.Products)
			return v, nil
		})

	_, err := NewVendorService(store).CreateVendor(ctx, &models.Vendor{ImageLink: "img", Name: "Green Acres"})
	require.NoError(t, err)

	_, err = NewVendorService(store).CreateVendor(ctx, &models.Vendor{Name: "No Image"})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestCreateArticle(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	store := mocks.NewMockArticleStore(ctrl)
	svc := NewArticleService(store)

	store.EXPECT().Create(ctx, gomock.Any()).Return(nil, repositories.ErrUnknownUser)
	_, err := svc.CreateArticle(ctx, &models.Article{UserID: 999, Title: "Hello", Content: "World"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidReference)

	_, err = svc.CreateArticle(ctx, &models.Article{UserID: 1, Title: "Hello"})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	zero := int64(0)
	_, err = svc.CreateArticle(ctx, &models.Article{UserID: 1, MarketID: &zero, Title: "Hello", Content: "World"})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}
