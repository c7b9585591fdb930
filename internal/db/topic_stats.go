package db

import (
	"context"

	"topiclens/internal/models"
)

// IncrementTopicStat upserts a per-topic extraction count by outcome.
func (d *DB) IncrementTopicStat(ctx context.Context, topic, outcome string) error {
	_, err := d.Pool.Exec(ctx, `
		INSERT INTO topic_stats (topic, outcome, count, last_seen_at)
		VALUES ($1, $2, 1, NOW())
		ON CONFLICT (topic, outcome) DO UPDATE
		SET count = topic_stats.count + 1, last_seen_at = NOW()
	`, topic, outcome)
	return err
}

// GetAllTopicStats returns all topic stat rows for metrics export.
func (d *DB) GetAllTopicStats(ctx context.Context) ([]models.TopicStat, error) {
	rows, err := d.Pool.Query(ctx, `SELECT topic, outcome, count, last_seen_at FROM topic_stats`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stats []models.TopicStat
	for rows.Next() {
		var s models.TopicStat
		if err := rows.Scan(&s.Topic, &s.Outcome, &s.Count, &s.LastSeenAt); err != nil {
			return nil, err
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}
