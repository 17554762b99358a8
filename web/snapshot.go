package web

import (
	"time"

	"livescore-service/models"
	"livescore-service/services"
)

// MatchSnapshot 比赛对外快照
type MatchSnapshot struct {
	ID            int             `json:"id"`
	League        string          `json:"league"`
	HomeTeam      string          `json:"home_team"`
	AwayTeam      string          `json:"away_team"`
	HomeScore     int             `json:"home_score"`
	AwayScore     int             `json:"away_score"`
	KickoffTime   time.Time       `json:"kickoff_time"`
	Status        string          `json:"status"`
	CurrentMinute *int            `json:"current_minute"`
	Events        []EventSnapshot `json:"events"`
}

// EventSnapshot 事件对外快照
type EventSnapshot struct {
	Minute int     `json:"minute"`
	Team   string  `json:"team"`
	Player string  `json:"player"`
	Type   string  `json:"type"`
	SubIn  *string `json:"sub_in"`
}

// NewMatchSnapshot 把比赛记录投影为对外快照。相同的状态和请求时间
// 总是得到相同的快照; current_minute 只在 live 状态下有值。
func NewMatchSnapshot(m models.Match, now time.Time) MatchSnapshot {
	snapshot := MatchSnapshot{
		ID:          m.ID,
		League:      m.League,
		HomeTeam:    m.HomeTeam,
		AwayTeam:    m.AwayTeam,
		HomeScore:   m.HomeScore,
		AwayScore:   m.AwayScore,
		KickoffTime: m.KickoffTime.UTC(),
		Status:      string(m.Status),
		Events:      make([]EventSnapshot, 0, len(m.Events)),
	}

	if m.Status == models.StatusLive {
		minute := services.DerivedMinute(m.KickoffTime, now)
		snapshot.CurrentMinute = &minute
	}

	for _, e := range m.Events {
		snapshot.Events = append(snapshot.Events, EventSnapshot{
			Minute: e.Minute,
			Team:   e.Team,
			Player: e.Player,
			Type:   string(e.Type),
			SubIn:  e.SubIn,
		})
	}

	return snapshot
}

// NewSnapshotList 把比赛列表投影为快照列表, 保持输入顺序
func NewSnapshotList(matches []models.Match, now time.Time) []MatchSnapshot {
	snapshots := make([]MatchSnapshot, 0, len(matches))
	for _, m := range matches {
		snapshots = append(snapshots, NewMatchSnapshot(m, now))
	}
	return snapshots
}
