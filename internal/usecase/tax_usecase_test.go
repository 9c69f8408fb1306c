package usecase_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/iho/ohadacore/internal/domain"
	"github.com/iho/ohadacore/internal/money"
	"github.com/iho/ohadacore/internal/tax"
	"github.com/iho/ohadacore/internal/usecase"
	"github.com/iho/ohadacore/internal/usecase/mocks"
)

func purchaseEntry() domain.JournalEntry {
	e := posted("ent-1", day(2024, 3, 10),
		mv{code: "601100", debit: "100000"},
		mv{code: "445200", debit: "18000"},
		mv{code: "401000", credit: "118000"},
	)
	e.Lines[1].Tax = &domain.TaxInfo{
		Pretax: money.MustOf("100000"),
		Tax:    money.MustOf("18000"),
		Rate:   money.MustOf("18"),
	}
	return e
}

func TestTaxUseCase_ValidateEntry(t *testing.T) {
	tests := []struct {
		name      string
		setup     func(repo *mocks.MockEntryRepository)
		wantErr   error
		wantValid bool
	}{
		{
			name: "valid purchase",
			setup: func(repo *mocks.MockEntryRepository) {
				e := purchaseEntry()
				repo.EXPECT().GetByID(gomock.Any(), "ent-1").Return(&e, nil)
			},
			wantValid: true,
		},
		{
			name: "deductible VAT on the credit side",
			setup: func(repo *mocks.MockEntryRepository) {
				e := purchaseEntry()
				e.Lines[1].Debit, e.Lines[1].Credit = money.Zero, money.MustOf("18000")
				repo.EXPECT().GetByID(gomock.Any(), "ent-1").Return(&e, nil)
			},
			wantValid: false,
		},
		{
			name: "unknown entry",
			setup: func(repo *mocks.MockEntryRepository) {
				repo.EXPECT().GetByID(gomock.Any(), "ent-1").Return(nil, domain.ErrEntryNotFound)
			},
			wantErr: domain.ErrNotFound,
		},
		{
			name: "repository down",
			setup: func(repo *mocks.MockEntryRepository) {
				repo.EXPECT().GetByID(gomock.Any(), "ent-1").Return(nil, errors.New("connection refused"))
			},
			wantErr: domain.ErrRepositoryUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mocks.NewMockEntryRepository(ctrl)
			tt.setup(repo)

			uc := usecase.NewTaxUseCase(repo, tax.DefaultRules(), nil)
			got, err := uc.ValidateEntry(testCtx(), "ent-1")

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "ent-1", got.EntryID)
			assert.Equal(t, "validated", got.Status)
			assert.Equal(t, tt.wantValid, got.Report.IsValid)
		})
	}
}

func TestTaxUseCase_ValidateLines(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := usecase.NewTaxUseCase(mocks.NewMockEntryRepository(ctrl), tax.DefaultRules(), nil)

	t.Run("reports findings", func(t *testing.T) {
		lines := purchaseEntry().Lines
		lines[1].Tax.Tax = money.MustOf("17000")

		rep, err := uc.ValidateLines(testCtx(), lines)
		require.NoError(t, err)
		assert.False(t, rep.IsValid)
		assert.NotEmpty(t, rep.Errors)
	})

	t.Run("rejects malformed lines", func(t *testing.T) {
		_, err := uc.ValidateLines(testCtx(), []domain.EntryLine{{AccountCode: ""}})
		require.ErrorIs(t, err, domain.ErrMalformedRecord)
	})
}
