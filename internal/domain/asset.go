package domain

import (
	"time"

	"github.com/iho/ohadacore/internal/money"
)

// DepreciationMethod names how an asset is depreciated.
type DepreciationMethod string

const (
	MethodLinear    DepreciationMethod = "linear"
	MethodDeclining DepreciationMethod = "declining"
)

// AssetStatus is the lifecycle state of a fixed asset.
type AssetStatus string

const (
	AssetActive   AssetStatus = "active"
	AssetDisposed AssetStatus = "disposed"
	AssetScrapped AssetStatus = "scrapped"
)

// FixedAsset is an immobilisation carried on a class-2 account.
type FixedAsset struct {
	ID               string             `json:"id"                validate:"required"`
	Label            string             `json:"label,omitempty"`
	AccountCode      string             `json:"account_code"      validate:"required,alphanum"`
	AcquisitionDate  time.Time          `json:"acquisition_date"`
	AcquisitionValue money.Amount       `json:"acquisition_value"`
	ResidualValue    money.Amount       `json:"residual_value"`
	UsefulLifeYears  int                `json:"useful_life_years" validate:"gte=0"`
	Method           DepreciationMethod `json:"method"            validate:"required"`
	Status           AssetStatus        `json:"status"            validate:"oneof=active disposed scrapped"`
}

// Active reports whether the asset is still in service.
func (a *FixedAsset) Active() bool {
	return a.Status == AssetActive
}

// DepreciableBase is acquisition value minus residual value.
func (a *FixedAsset) DepreciableBase() money.Amount {
	return a.AcquisitionValue.Sub(a.ResidualValue)
}

// LifeEnd is the first day after the useful life.
func (a *FixedAsset) LifeEnd() time.Time {
	return DateOf(a.AcquisitionDate).AddDate(a.UsefulLifeYears, 0, 0)
}

// DepreciatingIn reports whether the asset should carry depreciation during
// month m: active, acquired by the end of the month and not past its life.
func (a *FixedAsset) DepreciatingIn(m Month) bool {
	if !a.Active() || a.UsefulLifeYears <= 0 {
		return false
	}
	if DateOf(a.AcquisitionDate).After(m.Last()) {
		return false
	}
	return a.LifeEnd().After(m.First())
}
