package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/mvcarvalho/sales-target-api/infrastructure/database/postgres"
	"github.com/mvcarvalho/sales-target-api/internal/domain"
)

const (
	achievementSnapshotsTable = "achievement_snapshots s"
)

type AchievementSnapshotRepository interface {
	GetByBusinessAndPeriod(businessID, period string) (*domain.AchievementSnapshot, error)
	SaveOrUpdate(snapshot *domain.AchievementSnapshot) error
	GetAllPeriods() ([]string, error)
}

type achievementSnapshotRepository struct {
	conn *postgres.Connection
}

func NewAchievementSnapshotRepository(conn *postgres.Connection) AchievementSnapshotRepository {
	return &achievementSnapshotRepository{
		conn: conn,
	}
}

func (r *achievementSnapshotRepository) GetByBusinessAndPeriod(businessID, period string) (*domain.AchievementSnapshot, error) {
	query, args, err := squirrel.
		Select("s.id, s.business_id, s.period, s.report").
		From(achievementSnapshotsTable).
		Where(squirrel.Eq{"s.business_id": businessID, "s.period": period}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	snapshot := &domain.AchievementSnapshot{}
	var reportJSON []byte

	err = r.conn.QueryRow(query, args...).Scan(
		&snapshot.ID,
		&snapshot.BusinessID,
		&snapshot.Period,
		&reportJSON,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear snapshot: %w", err)
	}

	if reportJSON != nil {
		report := &domain.TeamAchievementReport{}
		if err := json.Unmarshal(reportJSON, report); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON de report: %w", err)
		}
		snapshot.Report = report
	}

	return snapshot, nil
}

func (r *achievementSnapshotRepository) SaveOrUpdate(snapshot *domain.AchievementSnapshot) error {
	var reportJSON []byte
	var err error

	if snapshot.Report != nil {
		reportJSON, err = json.Marshal(snapshot.Report)
		if err != nil {
			return fmt.Errorf("erro ao serializar Report para JSON: %w", err)
		}
	}

	query, args, err := squirrel.StatementBuilder.
		Insert("achievement_snapshots").
		Columns("business_id", "period", "report").
		Values(snapshot.BusinessID, snapshot.Period, reportJSON).
		Suffix(`
			ON CONFLICT (business_id, period) DO UPDATE SET
				report = EXCLUDED.report,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

// GetAllPeriods retorna os períodos (mm-yyyy) com snapshot consolidado
func (r *achievementSnapshotRepository) GetAllPeriods() ([]string, error) {
	query, args, err := squirrel.
		Select("DISTINCT s.period").
		From(achievementSnapshotsTable).
		OrderBy("s.period ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	periods := make([]string, 0)
	for rows.Next() {
		var period string
		if err := rows.Scan(&period); err != nil {
			return nil, fmt.Errorf("erro ao escanear período: %w", err)
		}
		periods = append(periods, period)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return periods, nil
}
