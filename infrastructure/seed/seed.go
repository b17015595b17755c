package seed

import (
	"context"
	"math/rand"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/lead-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/lead-dashboard-api/internal/config"
	"github.com/vfg2006/lead-dashboard-api/internal/domain"
)

const (
	weeksCount = 8

	minAmount = 5000
	maxAmount = 100000
	minLeads  = 1
	maxLeads  = 100
)

var (
	CategoryNames = []string{
		"Москва", "Абакан", "М+Р",
		"Зеленоград", "Адлер", "Барнаул",
		"Брянск", "Казань",
	}

	SourceNames = []string{
		"Яндекс.Поиск", "Таргет Вконтакте",
		"Посевы Telegram", "Яндекс Карты МСК",
		"Flocktory", "TG ADS",
	}

	FirstWeekStart = domain.NewDate(2024, time.May, 29)
)

// Result conta as linhas inseridas por tabela. Linhas já existentes não entram na contagem.
type Result struct {
	Categories  int `json:"categories"`
	Sources     int `json:"sources"`
	Weeks       int `json:"weeks"`
	LeadMetrics int `json:"lead_metrics"`
}

type Seeder struct {
	conn *postgres.Connection
	rnd  *rand.Rand
}

// New cria o seeder. RandSeed zero usa o relógio como semente.
func New(conn *postgres.Connection, cfg config.Seed) *Seeder {
	randSeed := cfg.RandSeed
	if randSeed == 0 {
		randSeed = time.Now().UnixNano()
	}

	return &Seeder{
		conn: conn,
		rnd:  rand.New(rand.NewSource(randSeed)),
	}
}

// Run insere os dados iniciais em uma única transação
func (s *Seeder) Run(ctx context.Context) (*Result, error) {
	result := &Result{}

	err := s.conn.RunInTransaction(ctx, func(tx *sqlx.Tx) error {
		var err error

		if result.Categories, err = insertAll(ctx, tx, categoryInserts()); err != nil {
			return errors.Wrap(err, "seed categories")
		}

		if result.Sources, err = insertAll(ctx, tx, sourceInserts()); err != nil {
			return errors.Wrap(err, "seed sources")
		}

		if result.Weeks, err = seedWeeks(ctx, tx); err != nil {
			return errors.Wrap(err, "seed weeks")
		}

		if result.LeadMetrics, err = s.seedLeadMetrics(ctx, tx); err != nil {
			return errors.Wrap(err, "seed lead metrics")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"categories":   result.Categories,
		"sources":      result.Sources,
		"weeks":        result.Weeks,
		"lead_metrics": result.LeadMetrics,
	}).Info("Seed concluído")

	return result, nil
}

func categoryInserts() []squirrel.Sqlizer {
	inserts := make([]squirrel.Sqlizer, 0, len(CategoryNames))
	for _, name := range CategoryNames {
		inserts = append(inserts, squirrel.
			Insert("categories").
			Columns("name").
			Values(name).
			Suffix("ON CONFLICT (name) DO NOTHING").
			PlaceholderFormat(squirrel.Dollar))
	}
	return inserts
}

// PricingTypeFor retorna o tipo de precificação usado no seed para a fonte
func PricingTypeFor(name string) domain.PricingType {
	if name == "Flocktory" {
		return domain.PricingTypeFixedPerLead
	}
	return domain.PricingTypeTotalDivided
}

func sourceInserts() []squirrel.Sqlizer {
	inserts := make([]squirrel.Sqlizer, 0, len(SourceNames))
	for _, name := range SourceNames {
		inserts = append(inserts, squirrel.
			Insert("sources").
			Columns("name", "pricing_type").
			Values(name, string(PricingTypeFor(name))).
			Suffix("ON CONFLICT (name) DO NOTHING").
			PlaceholderFormat(squirrel.Dollar))
	}
	return inserts
}

// SeedWeeks gera semanas consecutivas de quarta a terça a partir de FirstWeekStart
func SeedWeeks() []domain.Week {
	weeks := make([]domain.Week, 0, weeksCount)
	for i := 0; i < weeksCount; i++ {
		start := FirstWeekStart.AddDays(7 * i)
		weeks = append(weeks, domain.Week{StartDate: start, EndDate: start.AddDays(6)})
	}
	return weeks
}

func insertAll(ctx context.Context, q postgres.Queryer, inserts []squirrel.Sqlizer) (int, error) {
	inserted := 0
	for _, insert := range inserts {
		n, err := exec(ctx, q, insert)
		if err != nil {
			return inserted, err
		}
		inserted += n
	}
	return inserted, nil
}

func exec(ctx context.Context, q postgres.Queryer, builder squirrel.Sqlizer) (int, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return 0, errors.Wrap(err, "failed to build query")
	}

	res, err := q.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, errors.Wrap(err, "error getting rows affected")
	}

	return int(affected), nil
}

// semanas não têm constraint única, então a existência é verificada antes da inserção
func seedWeeks(ctx context.Context, q postgres.Queryer) (int, error) {
	inserted := 0
	for _, week := range SeedWeeks() {
		var count int
		query, args, err := squirrel.
			Select("COUNT(*)").
			From("weeks").
			Where(squirrel.Eq{"start_date": week.StartDate, "end_date": week.EndDate}).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return inserted, errors.Wrap(err, "failed to build query")
		}

		if err := q.GetContext(ctx, &count, query, args...); err != nil {
			return inserted, err
		}

		if count > 0 {
			continue
		}

		n, err := exec(ctx, q, squirrel.
			Insert("weeks").
			Columns("start_date", "end_date").
			Values(week.StartDate, week.EndDate).
			PlaceholderFormat(squirrel.Dollar))
		if err != nil {
			return inserted, err
		}
		inserted += n
	}
	return inserted, nil
}

func selectIDs(ctx context.Context, q postgres.Queryer, table string) ([]int, error) {
	query, args, err := squirrel.Select("id").From(table).OrderBy("id ASC").ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "failed to build query")
	}

	ids := make([]int, 0)
	if err := q.SelectContext(ctx, &ids, query, args...); err != nil {
		return nil, err
	}
	return ids, nil
}

// randomMetric sorteia valor e leads dentro dos intervalos fechados do seed
func (s *Seeder) randomMetric() (amount, leads int) {
	amount = minAmount + s.rnd.Intn(maxAmount-minAmount+1)
	leads = minLeads + s.rnd.Intn(maxLeads-minLeads+1)
	return amount, leads
}

func (s *Seeder) leadMetricInsert(categoryID, sourceID, weekID int) squirrel.InsertBuilder {
	amount, leads := s.randomMetric()
	return squirrel.
		Insert("lead_metrics").
		Columns("amount", "leads_count", "category_id", "source_id", "week_id").
		Values(amount, leads, categoryID, sourceID, weekID).
		Suffix("ON CONFLICT ON CONSTRAINT lead_metrics_category_source_week_key DO NOTHING").
		PlaceholderFormat(squirrel.Dollar)
}

func (s *Seeder) seedLeadMetrics(ctx context.Context, q postgres.Queryer) (int, error) {
	categoryIDs, err := selectIDs(ctx, q, "categories")
	if err != nil {
		return 0, err
	}

	sourceIDs, err := selectIDs(ctx, q, "sources")
	if err != nil {
		return 0, err
	}

	weekIDs, err := selectIDs(ctx, q, "weeks")
	if err != nil {
		return 0, err
	}

	inserts := make([]squirrel.Sqlizer, 0, len(categoryIDs)*len(sourceIDs)*len(weekIDs))
	for _, categoryID := range categoryIDs {
		for _, sourceID := range sourceIDs {
			for _, weekID := range weekIDs {
				inserts = append(inserts, s.leadMetricInsert(categoryID, sourceID, weekID))
			}
		}
	}

	return insertAll(ctx, q, inserts)
}
