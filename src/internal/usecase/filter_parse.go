package usecase

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

const filterDateLayout = "2006-01-02"

// filterParser accumulates field-keyed parse errors so every bad filter in a
// request is reported at once instead of one per round trip.
type filterParser struct {
	fields map[string]string
}

func newFilterParser() *filterParser {
	return &filterParser{fields: map[string]string{}}
}

func (p *filterParser) Uint(field, value string) *uint64 {
	if value == "" {
		return nil
	}
	id, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		p.fields[field] = "must be a positive integer"
		return nil
	}
	return &id
}

func (p *filterParser) Date(field, value string) *time.Time {
	if value == "" {
		return nil
	}
	t, err := time.Parse(filterDateLayout, value)
	if err != nil {
		p.fields[field] = "must be a date in YYYY-MM-DD format"
		return nil
	}
	return &t
}

// DateEnd parses an upper-bound date and pushes it to the end of that day so
// date_to is inclusive.
func (p *filterParser) DateEnd(field, value string) *time.Time {
	t := p.Date(field, value)
	if t == nil {
		return nil
	}
	end := t.Add(24*time.Hour - time.Second)
	return &end
}

func (p *filterParser) Decimal(field, value string) *decimal.Decimal {
	if value == "" {
		return nil
	}
	d, err := decimal.NewFromString(value)
	if err != nil {
		p.fields[field] = "must be a decimal number"
		return nil
	}
	return &d
}

func (p *filterParser) Err() map[string]string {
	if len(p.fields) == 0 {
		return nil
	}
	return p.fields
}
