package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"airjustice/models"

	"github.com/go-sql-driver/mysql"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// MySQL ER_DUP_ENTRY
const mysqlDuplicateEntry = 1062

// ComplaintRepository is the SQL-backed ledger (MySQL in production, SQLite locally).
// The full record is stored as JSON next to the columns used for lookup and ordering;
// current_status is the authoritative cache column and overrides the JSON copy.
type ComplaintRepository struct {
	db *sql.DB
}

// NewComplaintRepository creates a new complaint repository. The schema must already exist
// (see schema.InitializeDatabase).
func NewComplaintRepository(db *sql.DB) *ComplaintRepository {
	return &ComplaintRepository{db: db}
}

// Record inserts a complaint
func (r *ComplaintRepository) Record(ctx context.Context, complaint *models.Complaint) error {
	if complaint == nil {
		return fmt.Errorf("failed to record complaint: nil complaint")
	}
	recordJSON, err := json.Marshal(complaint)
	if err != nil {
		return fmt.Errorf("failed to encode complaint %s: %w", complaint.ID, err)
	}

	query := `
		INSERT INTO air_complaints (
			complaint_id, filed_at_ns, current_status, aqi,
			latitude, longitude, history_offset_hours, record_json
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err = r.db.ExecContext(ctx, query,
		complaint.ID,
		complaint.Timestamp.UnixNano(),
		string(complaint.Status),
		complaint.Violation.Aqi,
		complaint.Violation.Location.Lat,
		complaint.Violation.Location.Lon,
		complaint.HistoryOffsetHours,
		string(recordJSON),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %s", ErrDuplicateComplaintID, complaint.ID)
		}
		return fmt.Errorf("failed to create complaint %s: %w", complaint.ID, err)
	}
	return nil
}

// Find retrieves a complaint by id
func (r *ComplaintRepository) Find(ctx context.Context, id string) (*models.Complaint, error) {
	query := `
		SELECT current_status, history_offset_hours, record_json
		FROM air_complaints
		WHERE complaint_id = ?
	`
	row := r.db.QueryRowContext(ctx, query, id)
	c, err := scanComplaint(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrComplaintNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get complaint %s: %w", id, err)
	}
	return c, nil
}

// AdvanceStatus moves current_status forward. The WHERE clause carries the expected old value,
// so a concurrent writer that already advanced the row makes this a no-op.
func (r *ComplaintRepository) AdvanceStatus(ctx context.Context, id string, from, to models.ComplaintStatus) (bool, error) {
	if to.Index() <= from.Index() {
		return false, r.ensureExists(ctx, id)
	}
	query := `UPDATE air_complaints SET current_status = ? WHERE complaint_id = ? AND current_status = ?`
	result, err := r.db.ExecContext(ctx, query, string(to), id, string(from))
	if err != nil {
		return false, fmt.Errorf("failed to update status of %s: %w", id, err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to update status of %s: %w", id, err)
	}
	if n == 0 {
		return false, r.ensureExists(ctx, id)
	}
	return true, nil
}

func (r *ComplaintRepository) ensureExists(ctx context.Context, id string) error {
	var exists int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM air_complaints WHERE complaint_id = ?`, id).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to verify complaint %s: %w", id, err)
	}
	if exists == 0 {
		return fmt.Errorf("%w: %s", ErrComplaintNotFound, id)
	}
	return nil
}

// List returns every complaint in filing order
func (r *ComplaintRepository) List(ctx context.Context) ([]models.Complaint, error) {
	query := `
		SELECT current_status, history_offset_hours, record_json
		FROM air_complaints
		ORDER BY id ASC
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list complaints: %w", err)
	}
	defer rows.Close()

	var complaints []models.Complaint
	for rows.Next() {
		c, err := scanComplaint(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan complaint: %w", err)
		}
		complaints = append(complaints, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list complaints: %w", err)
	}
	return complaints, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanComplaint(row rowScanner) (*models.Complaint, error) {
	var (
		status     string
		offset     int
		recordJSON string
	)
	if err := row.Scan(&status, &offset, &recordJSON); err != nil {
		return nil, err
	}
	var c models.Complaint
	if err := json.Unmarshal([]byte(recordJSON), &c); err != nil {
		return nil, fmt.Errorf("failed to decode complaint record: %w", err)
	}
	c.Status = models.ComplaintStatus(status)
	c.HistoryOffsetHours = offset
	return &c, nil
}

func isUniqueViolation(err error) bool {
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Number == mysqlDuplicateEntry
	}
	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		code := liteErr.Code()
		return code == sqlite3.SQLITE_CONSTRAINT_UNIQUE ||
			(code&0xff == sqlite3.SQLITE_CONSTRAINT && strings.Contains(liteErr.Error(), "UNIQUE"))
	}
	return false
}
