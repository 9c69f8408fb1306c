package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/iho/ohadacore/internal/chart"
	"github.com/iho/ohadacore/internal/domain"
	"github.com/iho/ohadacore/internal/money"
	"github.com/iho/ohadacore/internal/usecase"
	"github.com/iho/ohadacore/internal/usecase/mocks"
)

type provisionFixture struct {
	entries    *mocks.MockEntryRepository
	parties    *mocks.MockThirdPartyRepository
	provisions *mocks.MockProvisionRepository
	ids        *mocks.MockIDGenerator
	tx         *mocks.MockTransactor
	uc         *usecase.ProvisionUseCase
}

func newProvisionFixture(t *testing.T) provisionFixture {
	ctrl := gomock.NewController(t)
	f := provisionFixture{
		entries:    mocks.NewMockEntryRepository(ctrl),
		parties:    mocks.NewMockThirdPartyRepository(ctrl),
		provisions: mocks.NewMockProvisionRepository(ctrl),
		ids:        mocks.NewMockIDGenerator(ctrl),
		tx:         mocks.NewMockTransactor(ctrl),
	}
	f.entries.EXPECT().GetAll(gomock.Any()).Return(receivables(), nil).AnyTimes()
	f.parties.EXPECT().GetAll(gomock.Any()).Return(customers(), nil).AnyTimes()
	f.tx.EXPECT().RunInTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error { return fn(ctx) }).AnyTimes()

	agingUC := usecase.NewAgingUseCase(f.entries, f.parties, chart.Default(), usecase.Options{}, nil)
	f.uc = usecase.NewProvisionUseCase(agingUC, f.provisions, f.tx, f.ids, nil)
	return f
}

var closing = day(2024, time.June, 1)

func TestProvisionUseCase_Calculate(t *testing.T) {
	f := newProvisionFixture(t)

	summary, err := f.uc.Calculate(testCtx(), closing)
	require.NoError(t, err)

	require.Len(t, summary.Provisions, 1)
	assert.Equal(t, "c-1", summary.Provisions[0].ThirdPartyID)
	assert.True(t, summary.TotalProvision.Equal(money.MustOf("500000")), "got %s", summary.TotalProvision)
}

func TestProvisionUseCase_Compare(t *testing.T) {
	t.Run("gap against recorded", func(t *testing.T) {
		f := newProvisionFixture(t)
		f.provisions.EXPECT().GetBySession(gomock.Any(), "close-2024").Return([]domain.ProvisionRecord{
			{ID: "p-1", SessionID: "close-2024", ThirdPartyID: "c-1", Amount: money.MustOf("300000")},
		}, nil)

		cmp, err := f.uc.Compare(testCtx(), usecase.CompareInput{SessionID: "close-2024", AsOf: closing})
		require.NoError(t, err)
		assert.True(t, cmp.TotalCalculated.Equal(money.MustOf("500000")))
		assert.True(t, cmp.TotalRecorded.Equal(money.MustOf("300000")))
		assert.True(t, cmp.Gap.Equal(money.MustOf("200000")), "got %s", cmp.Gap)
	})

	t.Run("session required", func(t *testing.T) {
		f := newProvisionFixture(t)
		_, err := f.uc.Compare(testCtx(), usecase.CompareInput{AsOf: closing})
		require.ErrorIs(t, err, domain.ErrMalformedRecord)
	})
}

func TestProvisionUseCase_Record(t *testing.T) {
	t.Run("creates new records", func(t *testing.T) {
		f := newProvisionFixture(t)
		f.provisions.EXPECT().GetBySession(gomock.Any(), "close-2024").Return(nil, nil)
		f.ids.EXPECT().Generate().Return("01HZX0000000000000000000P1")
		f.provisions.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, r *domain.ProvisionRecord) error {
				assert.Equal(t, "c-1", r.ThirdPartyID)
				assert.Equal(t, "close-2024", r.SessionID)
				assert.True(t, r.Amount.Equal(money.MustOf("500000")))
				return nil
			})

		records, err := f.uc.Record(testCtx(), usecase.RecordInput{SessionID: "close-2024", AsOf: closing})
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "01HZX0000000000000000000P1", records[0].ID)
	})

	t.Run("updates changed records and zeroes stale ones", func(t *testing.T) {
		f := newProvisionFixture(t)
		f.provisions.EXPECT().GetBySession(gomock.Any(), "close-2024").Return([]domain.ProvisionRecord{
			{ID: "p-1", SessionID: "close-2024", ThirdPartyID: "c-1", Amount: money.MustOf("300000")},
			{ID: "p-2", SessionID: "close-2024", ThirdPartyID: "c-9", Amount: money.MustOf("40000")},
		}, nil)
		f.provisions.EXPECT().Update(gomock.Any(), "p-1", gomock.Any()).DoAndReturn(
			func(_ any, _ string, patch domain.ProvisionPatch) error {
				require.NotNil(t, patch.Amount)
				assert.True(t, patch.Amount.Equal(money.MustOf("500000")))
				return nil
			})
		f.provisions.EXPECT().Update(gomock.Any(), "p-2", gomock.Any()).DoAndReturn(
			func(_ any, _ string, patch domain.ProvisionPatch) error {
				require.NotNil(t, patch.Amount)
				assert.True(t, patch.Amount.IsZero())
				return nil
			})

		records, err := f.uc.Record(testCtx(), usecase.RecordInput{SessionID: "close-2024", AsOf: closing})
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.True(t, records[0].Amount.Equal(money.MustOf("500000")))
		assert.True(t, records[1].Amount.IsZero())
	})

	t.Run("unchanged records are left alone", func(t *testing.T) {
		f := newProvisionFixture(t)
		f.provisions.EXPECT().GetBySession(gomock.Any(), "close-2024").Return([]domain.ProvisionRecord{
			{ID: "p-1", SessionID: "close-2024", ThirdPartyID: "c-1", Amount: money.MustOf("500000.00")},
		}, nil)

		records, err := f.uc.Record(testCtx(), usecase.RecordInput{SessionID: "close-2024", AsOf: closing})
		require.NoError(t, err)
		require.Len(t, records, 1)
	})
}

func TestProvisionUseCase_RecordRollsBackOnFailure(t *testing.T) {
	f := newProvisionFixture(t)
	f.provisions.EXPECT().GetBySession(gomock.Any(), "close-2024").Return(nil, nil)
	f.ids.EXPECT().Generate().Return("01HZX0000000000000000000P1")
	f.provisions.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("unique violation"))

	records, err := f.uc.Record(testCtx(), usecase.RecordInput{SessionID: "close-2024", AsOf: closing})
	require.Error(t, err)
	assert.Nil(t, records)
}

func TestProvisionUseCase_Recorded(t *testing.T) {
	f := newProvisionFixture(t)
	stored := []domain.ProvisionRecord{{ID: "p-1", SessionID: "close-2024", ThirdPartyID: "c-1", Amount: money.MustOf("300000")}}

	f.provisions.EXPECT().GetBySession(gomock.Any(), "close-2024").Return(stored, nil)
	records, err := f.uc.Recorded(testCtx(), "close-2024")
	require.NoError(t, err)
	assert.Equal(t, stored, records)

	f.provisions.EXPECT().GetAll(gomock.Any()).Return(nil, nil)
	records, err = f.uc.Recorded(testCtx(), "")
	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)

	f.provisions.EXPECT().GetAll(gomock.Any()).Return(nil, errors.New("broken pipe"))
	_, err = f.uc.Recorded(testCtx(), "")
	assert.ErrorIs(t, err, domain.ErrRepositoryUnavailable)
}
