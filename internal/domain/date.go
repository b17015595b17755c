package domain

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

const (
	DateLayout        = time.DateOnly
	DisplayDateLayout = "02.01.2006"
)

// Date é uma data de calendário sem horário, serializada como YYYY-MM-DD
type Date struct {
	time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf descarta o horário e o fuso de t
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

func ParseDate(value string) (Date, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(value))
	if err != nil {
		return Date{}, err
	}
	return Date{Time: t}, nil
}

// ParseOptionalDate converte YYYY-MM-DD; string vazia retorna nil
func ParseOptionalDate(value string) (*Date, error) {
	if value == "" {
		return nil, nil
	}

	date, err := ParseDate(value)
	if err != nil {
		return nil, err
	}

	return &date, nil
}

func (d Date) String() string {
	return d.Format(DateLayout)
}

// Display formata a data como dd.mm.yyyy
func (d Date) Display() string {
	return d.Format(DisplayDateLayout)
}

func (d Date) AddDays(days int) Date {
	return Date{Time: d.Time.AddDate(0, 0, days)}
}

func (d Date) Before(other Date) bool {
	return d.Time.Before(other.Time)
}

func (d Date) Equal(other Date) bool {
	return d.Time.Equal(other.Time)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*d = Date{}
		return nil
	}

	value := strings.Trim(string(data), `"`)
	if value == "" {
		return fmt.Errorf("data vazia, formato esperado YYYY-MM-DD")
	}

	parsed, err := ParseDate(value)
	if err != nil {
		return fmt.Errorf("data inválida %q, formato esperado YYYY-MM-DD", value)
	}

	*d = parsed
	return nil
}

func (d *Date) Scan(src interface{}) error {
	switch v := src.(type) {
	case time.Time:
		*d = DateOf(v)
		return nil
	case string:
		return d.scanString(v)
	case []byte:
		return d.scanString(string(v))
	case nil:
		*d = Date{}
		return nil
	default:
		return fmt.Errorf("domain.Date: tipo não suportado %T", src)
	}
}

func (d *Date) scanString(value string) error {
	if len(value) > len(DateLayout) {
		value = value[:len(DateLayout)]
	}

	parsed, err := ParseDate(value)
	if err != nil {
		return err
	}

	*d = parsed
	return nil
}

func (d Date) Value() (driver.Value, error) {
	return d.String(), nil
}
