package service_test

import (
	"testing"

	"vaultcraft/internal/db/models/postgres/public/model"
	"vaultcraft/internal/domain"
	mock_repository "vaultcraft/internal/repository/mocks"
	"vaultcraft/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestPositionService_Burn(t *testing.T) {
	const positionID = int64(7)

	t.Run("partial burn keeps the position", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		positionRepository := mock_repository.NewMockPositionRepository(ctrl)
		handler := service.NewPositionService(positionRepository)

		held := decimal.NewFromInt(100)
		burn := decimal.NewFromInt(40)

		positionRepository.EXPECT().
			Get(gomock.Nil(), positionID).
			Return(&model.Position{
				PositionID:   positionID,
				OwnerAccount: "alice",
				Shares:       held,
			}, nil)
		positionRepository.EXPECT().
			UpdateShares(gomock.Nil(), positionID, held.Sub(burn)).
			Return(nil)

		remaining, err := handler.Burn(nil, "alice", positionID, burn)
		require.NoError(t, err)
		require.True(t, remaining.Equal(decimal.NewFromInt(60)))
	})

	t.Run("full burn deletes the position", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		positionRepository := mock_repository.NewMockPositionRepository(ctrl)
		handler := service.NewPositionService(positionRepository)

		held := decimal.NewFromInt(100)

		positionRepository.EXPECT().
			Get(gomock.Nil(), positionID).
			Return(&model.Position{
				PositionID:   positionID,
				OwnerAccount: "alice",
				Shares:       held,
			}, nil)
		positionRepository.EXPECT().
			Delete(gomock.Nil(), positionID).
			Return(nil)

		remaining, err := handler.Burn(nil, "alice", positionID, held)
		require.NoError(t, err)
		require.True(t, remaining.IsZero())
	})

	t.Run("only the owner can burn", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		positionRepository := mock_repository.NewMockPositionRepository(ctrl)
		handler := service.NewPositionService(positionRepository)

		positionRepository.EXPECT().
			Get(gomock.Nil(), positionID).
			Return(&model.Position{
				PositionID:   positionID,
				OwnerAccount: "alice",
				Shares:       decimal.NewFromInt(100),
			}, nil)

		_, err := handler.Burn(nil, "mallory", positionID, decimal.NewFromInt(40))
		require.ErrorIs(t, err, domain.ErrNotOwner)
	})

	t.Run("cannot burn more than held", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		positionRepository := mock_repository.NewMockPositionRepository(ctrl)
		handler := service.NewPositionService(positionRepository)

		positionRepository.EXPECT().
			Get(gomock.Nil(), positionID).
			Return(&model.Position{
				PositionID:   positionID,
				OwnerAccount: "alice",
				Shares:       decimal.NewFromInt(100),
			}, nil)

		_, err := handler.Burn(nil, "alice", positionID, decimal.NewFromInt(101))
		require.ErrorIs(t, err, domain.ErrInsufficientShares)
	})
}

func TestPositionService_Mint(t *testing.T) {
	t.Run("rejects non-positive and fractional shares", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		positionRepository := mock_repository.NewMockPositionRepository(ctrl)
		handler := service.NewPositionService(positionRepository)

		vaultID := uuid.New()

		_, err := handler.Mint(nil, "alice", vaultID, decimal.Zero)
		require.ErrorIs(t, err, domain.ErrInvalidAmount)

		_, err = handler.Mint(nil, "alice", vaultID, decimal.RequireFromString("1.5"))
		require.ErrorIs(t, err, domain.ErrInvalidAmount)
	})
}
