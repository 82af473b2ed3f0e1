package store

import "fmt"

// ConversionLog 一次文件转换的记录
type ConversionLog struct {
	ID           int64  `json:"id"`
	Filename     string `json:"filename"`
	FileSize     int64  `json:"fileSize"`
	FileHash     string `json:"fileHash"`
	DetectedType string `json:"detectedType"`
	TablesCount  int    `json:"tablesCount"`
	Status       string `json:"status"`
	Message      string `json:"message"`
	CreatedAt    string `json:"createdAt"`
}

// CreateConversionLog 创建转换日志，返回 id
func (s *Store) CreateConversionLog(filename string, fileSize int64, fileHash string) (int64, error) {
	res, err := s.db.Exec(`
		INSERT INTO conversion_logs (filename, file_size, file_hash, status)
		VALUES (?, ?, ?, 'processing')
	`, filename, fileSize, fileHash)
	if err != nil {
		return 0, fmt.Errorf("failed to create conversion log: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get conversion log id: %w", err)
	}
	return id, nil
}

// CompleteConversionLog 完成转换日志更新
func (s *Store) CompleteConversionLog(id int64, detectedType string, tablesCount int, status, message string) error {
	_, err := s.db.Exec(`
		UPDATE conversion_logs SET
			detected_type = ?,
			tables_count = ?,
			status = ?,
			message = ?,
			completed_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`, detectedType, tablesCount, status, message, id)
	if err != nil {
		return fmt.Errorf("failed to complete conversion log: %w", err)
	}
	return nil
}

// RecentConversionLogs 最近的转换记录，limit <= 0 时取 50 条
func (s *Store) RecentConversionLogs(limit int) ([]ConversionLog, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.Query(`
		SELECT id, filename, file_size, file_hash, detected_type, tables_count, status, message, created_at
		FROM conversion_logs
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query conversion logs: %w", err)
	}
	defer rows.Close()

	var logs []ConversionLog
	for rows.Next() {
		var l ConversionLog
		if err := rows.Scan(&l.ID, &l.Filename, &l.FileSize, &l.FileHash, &l.DetectedType, &l.TablesCount, &l.Status, &l.Message, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan conversion log: %w", err)
		}
		logs = append(logs, l)
	}
	return logs, rows.Err()
}
