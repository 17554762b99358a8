package models

import "time"

// MatchStatus 比赛状态
type MatchStatus string

const (
	StatusScheduled MatchStatus = "scheduled"
	StatusLive      MatchStatus = "live"
	StatusFinished  MatchStatus = "finished"
)

// EventType 比赛事件类型
type EventType string

const (
	EventGoal          EventType = "goal"
	EventOwnGoal       EventType = "own_goal"
	EventYellowCard    EventType = "yellow_card"
	EventRedCard       EventType = "red_card"
	EventSubstitution  EventType = "substitution"
	EventCorner        EventType = "corner"
	EventOffside       EventType = "offside"
	EventFoul          EventType = "foul"
	EventHandball      EventType = "handball"
	EventInjury        EventType = "injury"
	EventVARCheck      EventType = "var_check"
	EventVAROverturned EventType = "var_overturned"
	EventPenaltySaved  EventType = "penalty_saved"
	EventGoalKick      EventType = "goal_kick"
	EventThrowIn       EventType = "throw_in"
	EventFreeKick      EventType = "free_kick"
)

// EventCatalog 事件生成器可选的全部事件类型
var EventCatalog = []EventType{
	EventGoal,
	EventOwnGoal,
	EventYellowCard,
	EventRedCard,
	EventSubstitution,
	EventCorner,
	EventOffside,
	EventFoul,
	EventHandball,
	EventInjury,
	EventVARCheck,
	EventVAROverturned,
	EventPenaltySaved,
	EventGoalKick,
	EventThrowIn,
	EventFreeKick,
}

// MatchEvent 单条比赛事件。事件一经创建不可变更；SubIn 仅换人事件携带,
// 通过 NewEvent / NewSubstitution 构造保证。
type MatchEvent struct {
	Minute int       `json:"minute"`
	Team   string    `json:"team"`
	Player string    `json:"player"`
	Type   EventType `json:"type"`
	SubIn  *string   `json:"sub_in"`
}

// NewEvent 创建普通事件 (非换人)
func NewEvent(minute int, team, player string, eventType EventType) MatchEvent {
	return MatchEvent{
		Minute: minute,
		Team:   team,
		Player: player,
		Type:   eventType,
	}
}

// NewSubstitution 创建换人事件, subIn 为替补上场球员
func NewSubstitution(minute int, team, playerOut, subIn string) MatchEvent {
	return MatchEvent{
		Minute: minute,
		Team:   team,
		Player: playerOut,
		Type:   EventSubstitution,
		SubIn:  &subIn,
	}
}

// Match 比赛的权威记录。KickoffTime 统一规范化为 UTC。
type Match struct {
	ID          int
	League      string
	HomeTeam    string
	AwayTeam    string
	HomeRoster  []string
	AwayRoster  []string
	HomeScore   int
	AwayScore   int
	KickoffTime time.Time
	Status      MatchStatus
	Events      []MatchEvent
}

// NormalizeKickoff 将开球时间规范化为 UTC,所有时间比较前必须调用
func (m *Match) NormalizeKickoff() {
	m.KickoffTime = m.KickoffTime.UTC()
}

// ApplyEvent 把事件追加到比赛并应用其比分效果。
// goal 记入进球方; own_goal 记入对方 (乌龙球受益的是对手,
// 不是踢球者所在队)。比分和事件表的变更必须由调用方整体提交。
func (m *Match) ApplyEvent(e MatchEvent) {
	switch e.Type {
	case EventGoal:
		if e.Team == m.HomeTeam {
			m.HomeScore++
		} else {
			m.AwayScore++
		}
	case EventOwnGoal:
		if e.Team == m.HomeTeam {
			m.AwayScore++
		} else {
			m.HomeScore++
		}
	}
	m.Events = append(m.Events, e)
}

// Clone 返回比赛记录的深拷贝,读取方持有的快照不受后续变更影响
func (m Match) Clone() Match {
	c := m
	c.HomeRoster = append([]string(nil), m.HomeRoster...)
	c.AwayRoster = append([]string(nil), m.AwayRoster...)
	c.Events = append([]MatchEvent(nil), m.Events...)
	return c
}

// CountGoalsCredited 统计记入 team 名下的进球数:
// 本方 goal 事件 + 对方 own_goal 事件
func (m Match) CountGoalsCredited(team, opponent string) int {
	count := 0
	for _, e := range m.Events {
		switch e.Type {
		case EventGoal:
			if e.Team == team {
				count++
			}
		case EventOwnGoal:
			if e.Team == opponent {
				count++
			}
		}
	}
	return count
}
