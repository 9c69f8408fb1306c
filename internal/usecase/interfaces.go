package usecase

import (
	"context"
	"time"

	"github.com/iho/ohadacore/internal/domain"
)

// EntryRepository defines read access to journal entries.
type EntryRepository interface {
	GetAll(ctx context.Context) ([]domain.JournalEntry, error)
	GetByID(ctx context.Context, id string) (*domain.JournalEntry, error)
	ListByPeriod(ctx context.Context, period domain.Period) ([]domain.JournalEntry, error)
}

// ThirdPartyRepository defines read access to customers and suppliers.
type ThirdPartyRepository interface {
	GetAll(ctx context.Context) ([]domain.ThirdParty, error)
	GetByID(ctx context.Context, id string) (*domain.ThirdParty, error)
}

// AssetRepository defines read access to fixed assets.
type AssetRepository interface {
	GetAll(ctx context.Context) ([]domain.FixedAsset, error)
}

// ProvisionRepository defines data access for recorded provisions.
type ProvisionRepository interface {
	GetAll(ctx context.Context) ([]domain.ProvisionRecord, error)
	GetBySession(ctx context.Context, sessionID string) ([]domain.ProvisionRecord, error)
	Create(ctx context.Context, record *domain.ProvisionRecord) error
	Update(ctx context.Context, id string, patch domain.ProvisionPatch) error
}

// FiscalRepository defines read access to fiscal years and their periods.
type FiscalRepository interface {
	GetYearByID(ctx context.Context, id string) (*domain.FiscalYear, error)
	GetYears(ctx context.Context) ([]domain.FiscalYear, error)
	GetPeriods(ctx context.Context, fiscalYearID string) ([]domain.FiscalPeriod, error)
}

// Transactor runs fn atomically. Repository calls made with the ctx handed
// to fn take part in the transaction.
type Transactor interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// ReportCache stores serialized reports. Get reports a miss with found=false
// and a nil error.
type ReportCache interface {
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
