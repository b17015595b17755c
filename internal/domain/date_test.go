package domain

import (
	"testing"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func TestDate_JSON(t *testing.T) {
	week := Week{ID: 1, StartDate: NewDate(2024, time.May, 29), EndDate: NewDate(2024, time.June, 4)}

	data, err := json.Marshal(week)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":1,"start_date":"2024-05-29","end_date":"2024-06-04"}`, string(data))

	var decoded WeekRequest
	require.NoError(t, json.Unmarshal([]byte(`{"start_date":"2024-06-05","end_date":"2024-06-11"}`), &decoded))
	require.NotNil(t, decoded.StartDate)
	assert.True(t, decoded.StartDate.Equal(NewDate(2024, time.June, 5)))
	assert.True(t, decoded.EndDate.Equal(NewDate(2024, time.June, 11)))

	assert.Error(t, json.Unmarshal([]byte(`{"start_date":"05/06/2024"}`), &decoded))
}

func TestDate_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		validate func(t *testing.T, request WeekRequest, err error)
	}{
		{
			name: "String vazia é rejeitada",
			body: `{"start_date":"","end_date":"2024-06-11"}`,
			validate: func(t *testing.T, request WeekRequest, err error) {
				assert.Error(t, err)
			},
		},
		{
			name: "Null deixa o campo ausente",
			body: `{"start_date":null,"end_date":"2024-06-11"}`,
			validate: func(t *testing.T, request WeekRequest, err error) {
				require.NoError(t, err)
				assert.Nil(t, request.StartDate)
				require.NotNil(t, request.EndDate)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var request WeekRequest
			err := json.Unmarshal([]byte(tt.body), &request)
			tt.validate(t, request, err)
		})
	}

	var d Date
	assert.Error(t, d.UnmarshalJSON([]byte(`""`)))
	require.NoError(t, d.UnmarshalJSON([]byte(`null`)))
	assert.True(t, d.IsZero())
}

func TestParseOptionalDate(t *testing.T) {
	date, err := ParseOptionalDate("")
	require.NoError(t, err)
	assert.Nil(t, date)

	date, err = ParseOptionalDate("2024-06-05")
	require.NoError(t, err)
	require.NotNil(t, date)
	assert.Equal(t, 2024, date.Year())
	assert.Equal(t, time.June, date.Month())
	assert.Equal(t, 5, date.Day())

	_, err = ParseOptionalDate("05.06.2024")
	assert.Error(t, err)
}

func TestDate_Scan(t *testing.T) {
	tests := []struct {
		name string
		src  interface{}
		want Date
	}{
		{name: "time.Time com horário", src: time.Date(2024, 6, 12, 15, 4, 5, 0, time.Local), want: NewDate(2024, time.June, 12)},
		{name: "string", src: "2024-06-19", want: NewDate(2024, time.June, 19)},
		{name: "bytes com timestamp", src: []byte("2024-06-26T00:00:00Z"), want: NewDate(2024, time.June, 26)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Date
			require.NoError(t, d.Scan(tt.src))
			assert.True(t, d.Equal(tt.want), "got %s", d)
		})
	}

	var d Date
	assert.Error(t, d.Scan(42))
}

func TestDate_Display(t *testing.T) {
	d := NewDate(2024, time.July, 3)
	assert.Equal(t, "03.07.2024", d.Display())
	assert.Equal(t, "2024-07-03", d.String())
	assert.Equal(t, "2024-07-10", d.AddDays(7).String())

	value, err := d.Value()
	require.NoError(t, err)
	assert.Equal(t, "2024-07-03", value)
}

func TestPricingType_IsValid(t *testing.T) {
	assert.True(t, PricingTypeTotalDivided.IsValid())
	assert.True(t, PricingTypeFixedPerLead.IsValid())
	assert.False(t, PricingType("per_click").IsValid())
}
