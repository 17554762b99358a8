package database

import (
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"livescore-service/models"
)

// MatchRepository matches / match_events 表的读写封装
type MatchRepository struct {
	db *sql.DB
}

// NewMatchRepository 创建 MatchRepository
func NewMatchRepository(db *sql.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

// LoadAll 加载全部比赛及其事件, 按 ID 升序
func (r *MatchRepository) LoadAll() ([]models.Match, error) {
	rows, err := r.db.Query(`
		SELECT id, league, home_team, away_team, home_roster, away_roster,
		       home_score, away_score, kickoff_time, status
		FROM matches
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query matches: %w", err)
	}
	defer rows.Close()

	var matches []models.Match
	for rows.Next() {
		var m models.Match
		var status string
		if err := rows.Scan(
			&m.ID,
			&m.League,
			&m.HomeTeam,
			&m.AwayTeam,
			pq.Array(&m.HomeRoster),
			pq.Array(&m.AwayRoster),
			&m.HomeScore,
			&m.AwayScore,
			&m.KickoffTime,
			&status,
		); err != nil {
			return nil, fmt.Errorf("failed to scan match: %w", err)
		}
		m.Status = models.MatchStatus(status)
		m.NormalizeKickoff()
		matches = append(matches, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read matches: %w", err)
	}

	for i := range matches {
		events, err := r.loadEvents(matches[i].ID)
		if err != nil {
			return nil, err
		}
		matches[i].Events = events
	}

	return matches, nil
}

func (r *MatchRepository) loadEvents(matchID int) ([]models.MatchEvent, error) {
	rows, err := r.db.Query(`
		SELECT minute, team, player, event_type, sub_in
		FROM match_events
		WHERE match_id = $1
		ORDER BY seq ASC
	`, matchID)
	if err != nil {
		return nil, fmt.Errorf("failed to query events for match %d: %w", matchID, err)
	}
	defer rows.Close()

	events := []models.MatchEvent{}
	for rows.Next() {
		var e models.MatchEvent
		var eventType string
		if err := rows.Scan(&e.Minute, &e.Team, &e.Player, &eventType, &e.SubIn); err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		e.Type = models.EventType(eventType)
		events = append(events, e)
	}
	return events, rows.Err()
}

// SaveMatch 在一个事务中持久化一次生成周期的结果:
// 更新比分和状态, 追加 firstSeq 起的新事件。任一步失败整体回滚。
func (r *MatchRepository) SaveMatch(m models.Match, newEvents []models.MatchEvent, firstSeq int) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		UPDATE matches
		SET home_score = $1, away_score = $2, status = $3, updated_at = CURRENT_TIMESTAMP
		WHERE id = $4
	`, m.HomeScore, m.AwayScore, string(m.Status), m.ID)
	if err != nil {
		return fmt.Errorf("failed to update match %d: %w", m.ID, err)
	}

	for i, e := range newEvents {
		_, err = tx.Exec(`
			INSERT INTO match_events (match_id, seq, minute, team, player, event_type, sub_in)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		`, m.ID, firstSeq+i, e.Minute, e.Team, e.Player, string(e.Type), e.SubIn)
		if err != nil {
			return fmt.Errorf("failed to insert event for match %d: %w", m.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit match %d: %w", m.ID, err)
	}
	return nil
}

// InsertMatch 插入一条完整的比赛记录 (种子数据用)
func (r *MatchRepository) InsertMatch(m models.Match) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		INSERT INTO matches (id, league, home_team, away_team, home_roster, away_roster,
		                     home_score, away_score, kickoff_time, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`, m.ID, m.League, m.HomeTeam, m.AwayTeam,
		pq.Array(m.HomeRoster), pq.Array(m.AwayRoster),
		m.HomeScore, m.AwayScore, m.KickoffTime.UTC(), string(m.Status))
	if err != nil {
		return fmt.Errorf("failed to insert match %d: %w", m.ID, err)
	}

	for i, e := range m.Events {
		_, err = tx.Exec(`
			INSERT INTO match_events (match_id, seq, minute, team, player, event_type, sub_in)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		`, m.ID, i, e.Minute, e.Team, e.Player, string(e.Type), e.SubIn)
		if err != nil {
			return fmt.Errorf("failed to insert event for match %d: %w", m.ID, err)
		}
	}

	return tx.Commit()
}

// Truncate 清空比赛数据 (种子数据用)
func (r *MatchRepository) Truncate() error {
	if _, err := r.db.Exec(`TRUNCATE match_events, matches`); err != nil {
		return fmt.Errorf("failed to truncate tables: %w", err)
	}
	return nil
}
