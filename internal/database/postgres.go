package database

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"real-estate-intelligence/internal/models"
)

type PostgresStore struct {
	conn *sql.DB
}

func NewPostgresStore(host string, port int, user, password, dbname, sslmode string) (*PostgresStore, error) {
	if sslmode == "" {
		sslmode = "disable"
	}
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, password, dbname, sslmode)

	conn, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, err
	}

	if err := conn.Ping(); err != nil {
		return nil, err
	}

	return &PostgresStore{conn: conn}, nil
}

func (s *PostgresStore) Close() error {
	return s.conn.Close()
}

// InitSchema creates the analysis tables if they don't exist
func (s *PostgresStore) InitSchema() error {
	query := `
	CREATE TABLE IF NOT EXISTS analyses (
		id VARCHAR(36) PRIMARY KEY,
		property_address VARCHAR(500) NOT NULL,
		estimated_value DECIMAL(14, 2) NOT NULL,
		price_per_sqft DECIMAL(10, 2),
		investment_score INTEGER,
		roi_percentage DECIMAL(6, 2),
		recommendation TEXT,
		overall_risk VARCHAR(20),
		enriched BOOLEAN DEFAULT FALSE,
		payload TEXT,
		analyzed_at TIMESTAMP NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT NOW()
	);

	CREATE INDEX IF NOT EXISTS idx_analyses_address ON analyses(property_address);
	CREATE INDEX IF NOT EXISTS idx_analyses_analyzed_at ON analyses(analyzed_at DESC);
	CREATE INDEX IF NOT EXISTS idx_analyses_score ON analyses(investment_score);

	CREATE TABLE IF NOT EXISTS valuation_changes (
		id SERIAL PRIMARY KEY,
		property_address VARCHAR(500) NOT NULL,
		analysis_id VARCHAR(36) NOT NULL,
		old_value DECIMAL(14, 2),
		new_value DECIMAL(14, 2),
		change_percent DECIMAL(6, 2),
		detected_at TIMESTAMP NOT NULL DEFAULT NOW()
	);

	CREATE INDEX IF NOT EXISTS idx_changes_address ON valuation_changes(property_address);

	CREATE TABLE IF NOT EXISTS delete_logs (
		id SERIAL PRIMARY KEY,
		analysis_id VARCHAR(36) NOT NULL,
		property_address TEXT,
		analyzed_at TIMESTAMP,
		deleted_at TIMESTAMP NOT NULL DEFAULT NOW(),
		reason VARCHAR(50) NOT NULL
	);
	`
	_, err := s.conn.Exec(query)
	return err
}

// SaveAnalysis upserts an analysis row by id
func (s *PostgresStore) SaveAnalysis(row *models.AnalysisRow) error {
	if row.AnalyzedAt.IsZero() {
		row.AnalyzedAt = time.Now()
	}

	query := `
	INSERT INTO analyses (
		id, property_address, estimated_value, price_per_sqft,
		investment_score, roi_percentage, recommendation, overall_risk,
		enriched, payload, analyzed_at, created_at
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	ON CONFLICT (id) DO UPDATE SET
		property_address = EXCLUDED.property_address,
		estimated_value = EXCLUDED.estimated_value,
		price_per_sqft = EXCLUDED.price_per_sqft,
		investment_score = EXCLUDED.investment_score,
		roi_percentage = EXCLUDED.roi_percentage,
		recommendation = EXCLUDED.recommendation,
		overall_risk = EXCLUDED.overall_risk,
		enriched = EXCLUDED.enriched,
		payload = EXCLUDED.payload,
		analyzed_at = EXCLUDED.analyzed_at
	`
	_, err := s.conn.Exec(query,
		row.ID, row.PropertyAddress, row.EstimatedValue, row.PricePerSqft,
		row.InvestmentScore, row.ROIPercentage, row.Recommendation, row.OverallRisk,
		row.Enriched, row.Payload, row.AnalyzedAt, time.Now())
	return err
}

const analysisColumns = `id, property_address, estimated_value, price_per_sqft,
	investment_score, roi_percentage, recommendation, overall_risk,
	enriched, payload, analyzed_at, created_at`

func scanAnalysis(scanner interface{ Scan(...interface{}) error }) (models.AnalysisRow, error) {
	var row models.AnalysisRow
	err := scanner.Scan(
		&row.ID, &row.PropertyAddress, &row.EstimatedValue, &row.PricePerSqft,
		&row.InvestmentScore, &row.ROIPercentage, &row.Recommendation, &row.OverallRisk,
		&row.Enriched, &row.Payload, &row.AnalyzedAt, &row.CreatedAt,
	)
	return row, err
}

func (s *PostgresStore) queryAnalyses(query string, args ...interface{}) ([]models.AnalysisRow, error) {
	rows, err := s.conn.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.AnalysisRow
	for rows.Next() {
		row, err := scanAnalysis(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

func (s *PostgresStore) GetAnalysisByID(id string) (*models.AnalysisRow, error) {
	query := fmt.Sprintf(`SELECT %s FROM analyses WHERE id = $1`, analysisColumns)
	row, err := scanAnalysis(s.conn.QueryRow(query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &row, nil
}

func (s *PostgresStore) GetRecentAnalyses(limit int) ([]models.AnalysisRow, error) {
	if limit <= 0 {
		limit = 50
	}
	query := fmt.Sprintf(`SELECT %s FROM analyses ORDER BY analyzed_at DESC LIMIT $1`, analysisColumns)
	return s.queryAnalyses(query, limit)
}

func (s *PostgresStore) GetAnalysesForAddress(address string, limit int) ([]models.AnalysisRow, error) {
	if limit <= 0 {
		limit = 20
	}
	query := fmt.Sprintf(`SELECT %s FROM analyses WHERE property_address = $1 ORDER BY analyzed_at DESC LIMIT $2`, analysisColumns)
	return s.queryAnalyses(query, address, limit)
}

func (s *PostgresStore) GetLatestForAddress(address string) (*models.AnalysisRow, error) {
	query := fmt.Sprintf(`SELECT %s FROM analyses WHERE property_address = $1 ORDER BY analyzed_at DESC LIMIT 1`, analysisColumns)
	row, err := scanAnalysis(s.conn.QueryRow(query, address))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &row, nil
}

func (s *PostgresStore) GetAnalysesOlderThan(cutoff time.Time) ([]models.AnalysisRow, error) {
	query := fmt.Sprintf(`SELECT %s FROM analyses WHERE analyzed_at < $1 ORDER BY analyzed_at ASC`, analysisColumns)
	return s.queryAnalyses(query, cutoff)
}

func (s *PostgresStore) GetAllAnalyses() ([]models.AnalysisRow, error) {
	query := fmt.Sprintf(`SELECT %s FROM analyses ORDER BY analyzed_at DESC`, analysisColumns)
	return s.queryAnalyses(query)
}

func (s *PostgresStore) DeleteAnalyses(ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	query := `DELETE FROM analyses WHERE id = ANY($1)`
	_, err := s.conn.Exec(query, pq.Array(ids))
	return err
}

func (s *PostgresStore) CountAnalyses() (int64, error) {
	var count int64
	err := s.conn.QueryRow(`SELECT COUNT(*) FROM analyses`).Scan(&count)
	return count, err
}

func (s *PostgresStore) SaveValuationChange(change *models.ValuationChange) error {
	query := `
	INSERT INTO valuation_changes (property_address, analysis_id, old_value, new_value, change_percent, detected_at)
	VALUES ($1, $2, $3, $4, $5, $6)
	`
	detectedAt := change.DetectedAt
	if detectedAt.IsZero() {
		detectedAt = time.Now()
	}
	_, err := s.conn.Exec(query,
		change.PropertyAddress, change.AnalysisID,
		change.OldValue, change.NewValue, change.ChangePercent, detectedAt)
	return err
}

func (s *PostgresStore) GetValuationChanges(address string, limit int) ([]models.ValuationChange, error) {
	if limit <= 0 {
		limit = 20
	}
	query := `
	SELECT id, property_address, analysis_id, old_value, new_value, change_percent, detected_at
	FROM valuation_changes
	WHERE property_address = $1
	ORDER BY detected_at DESC
	LIMIT $2
	`
	rows, err := s.conn.Query(query, address, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.ValuationChange
	for rows.Next() {
		var c models.ValuationChange
		if err := rows.Scan(&c.ID, &c.PropertyAddress, &c.AnalysisID,
			&c.OldValue, &c.NewValue, &c.ChangePercent, &c.DetectedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (s *PostgresStore) LogDeletions(entries []models.DeleteLog) error {
	if len(entries) == 0 {
		return nil
	}
	query := `
	INSERT INTO delete_logs (analysis_id, property_address, analyzed_at, deleted_at, reason)
	VALUES ($1, $2, $3, $4, $5)
	`
	for _, e := range entries {
		deletedAt := e.DeletedAt
		if deletedAt.IsZero() {
			deletedAt = time.Now()
		}
		if _, err := s.conn.Exec(query, e.AnalysisID, e.PropertyAddress, e.AnalyzedAt, deletedAt, e.Reason); err != nil {
			return err
		}
	}
	return nil
}

func (s *PostgresStore) GetRecentDeleteLogs(limit int) ([]models.DeleteLog, error) {
	if limit <= 0 {
		limit = 100
	}
	query := `
	SELECT id, analysis_id, property_address, analyzed_at, deleted_at, reason
	FROM delete_logs
	ORDER BY deleted_at DESC
	LIMIT $1
	`
	rows, err := s.conn.Query(query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.DeleteLog
	for rows.Next() {
		var l models.DeleteLog
		if err := rows.Scan(&l.ID, &l.AnalysisID, &l.PropertyAddress,
			&l.AnalyzedAt, &l.DeletedAt, &l.Reason); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

func (s *PostgresStore) CountDeleteLogs() (int64, error) {
	var count int64
	err := s.conn.QueryRow(`SELECT COUNT(*) FROM delete_logs`).Scan(&count)
	return count, err
}
