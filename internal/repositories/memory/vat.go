package memory

import (
	"context"
	"sort"
	"time"

	"github.com/SscSPs/bookkeeping_core/internal/apperrors"
	"github.com/SscSPs/bookkeeping_core/internal/core/domain"
)

func (s *Store) FindVatPeriods(ctx context.Context, companyID string, year int, periodType domain.VatPeriodType) ([]domain.VatPeriod, error) {
	periods := make([]domain.VatPeriod, 0)
	s.read(func(st *state) {
		for k, p := range st.vatPeriods {
			if k.companyID == companyID && k.year == year && k.periodType == periodType {
				periods = append(periods, p)
			}
		}
	})
	sort.Slice(periods, func(i, j int) bool { return periods[i].Period < periods[j].Period })
	return periods, nil
}

func (s *Store) FindVatPeriod(ctx context.Context, companyID string, year, period int, periodType domain.VatPeriodType) (found *domain.VatPeriod, err error) {
	s.read(func(st *state) {
		p, ok := st.vatPeriods[vatKey{companyID, year, period, periodType}]
		if !ok {
			err = apperrors.ErrNotFound
			return
		}
		found = &p
	})
	return found, err
}

func (s *Store) UpsertVatPeriod(ctx context.Context, period domain.VatPeriod) error {
	return s.write(func(st *state) error {
		st.vatPeriods[vatKey{period.CompanyID, period.Year, period.Period, period.PeriodType}] = period
		return nil
	})
}

func (s *Store) ClearVatPayment(ctx context.Context, companyID string, year, period int, periodType domain.VatPeriodType, userID string, now time.Time) error {
	return s.write(func(st *state) error {
		key := vatKey{companyID, year, period, periodType}
		p, ok := st.vatPeriods[key]
		if !ok {
			return apperrors.ErrNotFound
		}
		p.VatPayment = domain.VatPayment{}
		p.LastUpdatedAt = now
		p.LastUpdatedBy = userID
		st.vatPeriods[key] = p
		return nil
	})
}
