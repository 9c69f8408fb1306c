package postgres

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"

	"github.com/iho/ohadacore/internal/domain"
	"github.com/iho/ohadacore/internal/money"
)

// Type conversion helpers.
func amountToNumeric(a money.Amount) pgtype.Numeric {
	var n pgtype.Numeric

	_ = n.Scan(a.String())

	return n
}

func numericToAmount(n pgtype.Numeric) money.Amount {
	if !n.Valid || n.NaN || n.InfinityModifier != pgtype.Finite || n.Int == nil {
		return money.Zero
	}

	return money.FromDecimal(decimal.NewFromBigInt(n.Int, n.Exp))
}

func dateToPg(t time.Time) pgtype.Date {
	return pgtype.Date{Time: domain.DateOf(t), Valid: true}
}

func pgDateToTime(d pgtype.Date) time.Time {
	if !d.Valid {
		return time.Time{}
	}
	return domain.DateOf(d.Time)
}

func pgDateToPtr(d pgtype.Date) *time.Time {
	if !d.Valid {
		return nil
	}
	t := domain.DateOf(d.Time)
	return &t
}

func timeToPgTimestamptz(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}

func textOrNull(s string) pgtype.Text {
	return pgtype.Text{String: s, Valid: s != ""}
}

// taxInfo rebuilds the VAT metadata of a line. The schema keeps the three
// columns all null or all set.
func taxInfo(pretax, tax, rate pgtype.Numeric) *domain.TaxInfo {
	if !pretax.Valid || !tax.Valid || !rate.Valid {
		return nil
	}
	return &domain.TaxInfo{
		Pretax: numericToAmount(pretax),
		Tax:    numericToAmount(tax),
		Rate:   numericToAmount(rate),
	}
}
