package seed

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/lead-dashboard-api/internal/config"
	"github.com/vfg2006/lead-dashboard-api/internal/domain"
)

func TestSeedWeeks(t *testing.T) {
	weeks := SeedWeeks()
	require.Len(t, weeks, weeksCount)

	assert.Equal(t, "2024-05-29", weeks[0].StartDate.String())
	assert.Equal(t, "2024-06-04", weeks[0].EndDate.String())
	assert.Equal(t, "2024-07-17", weeks[7].StartDate.String())
	assert.Equal(t, "2024-07-23", weeks[7].EndDate.String())

	for _, week := range weeks {
		assert.Equal(t, time.Wednesday, week.StartDate.Weekday())
		assert.Equal(t, time.Tuesday, week.EndDate.Weekday())
	}
}

func TestPricingTypeFor(t *testing.T) {
	assert.Equal(t, domain.PricingTypeFixedPerLead, PricingTypeFor("Flocktory"))
	assert.Equal(t, domain.PricingTypeTotalDivided, PricingTypeFor("TG ADS"))
}

func TestSourceInserts(t *testing.T) {
	inserts := sourceInserts()
	require.Len(t, inserts, len(SourceNames))

	query, args, err := inserts[4].ToSql()
	require.NoError(t, err)

	assert.Equal(t, "INSERT INTO sources (name,pricing_type) VALUES ($1,$2) ON CONFLICT (name) DO NOTHING", query)
	assert.Equal(t, []interface{}{"Flocktory", "fixed_per_lead"}, args)
}

func TestCategoryInserts(t *testing.T) {
	inserts := categoryInserts()
	require.Len(t, inserts, len(CategoryNames))

	query, args, err := inserts[0].ToSql()
	require.NoError(t, err)

	assert.Equal(t, "INSERT INTO categories (name) VALUES ($1) ON CONFLICT (name) DO NOTHING", query)
	assert.Equal(t, []interface{}{"Москва"}, args)
}

func TestLeadMetricInsert(t *testing.T) {
	s := &Seeder{rnd: rand.New(rand.NewSource(42))}

	query, args, err := s.leadMetricInsert(1, 2, 3).ToSql()
	require.NoError(t, err)

	assert.Equal(t, "INSERT INTO lead_metrics (amount,leads_count,category_id,source_id,week_id) VALUES ($1,$2,$3,$4,$5) "+
		"ON CONFLICT ON CONSTRAINT lead_metrics_category_source_week_key DO NOTHING", query)
	require.Len(t, args, 5)
	assert.Equal(t, []interface{}{1, 2, 3}, args[2:])
}

func TestRandomMetric_RespeitaIntervalos(t *testing.T) {
	s := &Seeder{rnd: rand.New(rand.NewSource(7))}

	for i := 0; i < 1000; i++ {
		amount, leads := s.randomMetric()
		assert.GreaterOrEqual(t, amount, minAmount)
		assert.LessOrEqual(t, amount, maxAmount)
		assert.GreaterOrEqual(t, leads, minLeads)
		assert.LessOrEqual(t, leads, maxLeads)
	}
}

func TestNew_SementeFixaGeraMesmosValores(t *testing.T) {
	first := New(nil, config.Seed{RandSeed: 99})
	second := New(nil, config.Seed{RandSeed: 99})

	for i := 0; i < 10; i++ {
		a1, l1 := first.randomMetric()
		a2, l2 := second.randomMetric()
		assert.Equal(t, a1, a2)
		assert.Equal(t, l1, l2)
	}
}
