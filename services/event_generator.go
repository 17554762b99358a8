package services

import (
	"math/rand"
	"sync"
	"time"

	"livescore-service/models"
)

// UnknownPlayer 阵容为空时使用的占位球员名
const UnknownPlayer = "Unknown Player"

// EventGenerator 为进行中的比赛按概率生成事件。
// 随机源是注入的, 测试可以用固定种子断言生成序列。
type EventGenerator struct {
	mu          sync.Mutex
	rng         *rand.Rand
	probability float64
}

// NewEventGenerator 创建事件生成器。probability 是每个周期触发新事件的
// 概率, 正常运行使用 config 中的统一常量, 测试可传 1.0 获得确定性行为。
func NewEventGenerator(rng *rand.Rand, probability float64) *EventGenerator {
	return &EventGenerator{
		rng:         rng,
		probability: probability,
	}
}

// Cycle 对一场比赛执行一次生成周期, 直接修改 m。
// 状态流转: scheduled 到点自动开赛; live 到 90 分钟自动完赛, 完赛后不再
// 产生任何变更。返回本周期新生成的事件, 没有则返回 nil。
// 比分变更和事件追加由调用方作为一个整体提交。
func (g *EventGenerator) Cycle(m *models.Match, now time.Time) *models.MatchEvent {
	// 开赛激活
	if m.Status == models.StatusScheduled {
		if now.UTC().Before(m.KickoffTime.UTC()) {
			return nil
		}
		m.Status = models.StatusLive
	}

	if m.Status != models.StatusLive {
		return nil
	}

	minute := DerivedMinute(m.KickoffTime, now)
	if minute >= MatchDurationMinutes {
		m.Status = models.StatusFinished
		return nil
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	// Bernoulli 抽样决定本周期是否有事件
	if g.rng.Float64() >= g.probability {
		return nil
	}

	eventType := models.EventCatalog[g.rng.Intn(len(models.EventCatalog))]
	team, roster := g.pickTeam(m)
	player, playerIdx := g.pickPlayer(roster)

	var event models.MatchEvent
	if eventType == models.EventSubstitution {
		event = models.NewSubstitution(minute, team, player, g.pickSubstitute(roster, playerIdx))
	} else {
		event = models.NewEvent(minute, team, player, eventType)
	}

	m.ApplyEvent(event)
	return &event
}

// pickTeam 按阵容人数加权选择事件归属方, 双方阵容都为空时均匀选择
func (g *EventGenerator) pickTeam(m *models.Match) (team string, roster []string) {
	total := len(m.HomeRoster) + len(m.AwayRoster)
	home := false
	if total == 0 {
		home = g.rng.Intn(2) == 0
	} else {
		home = g.rng.Intn(total) < len(m.HomeRoster)
	}
	if home {
		return m.HomeTeam, m.HomeRoster
	}
	return m.AwayTeam, m.AwayRoster
}

// pickPlayer 从阵容中均匀选择球员, 阵容为空时返回占位球员
func (g *EventGenerator) pickPlayer(roster []string) (string, int) {
	if len(roster) == 0 {
		return UnknownPlayer, -1
	}
	idx := g.rng.Intn(len(roster))
	return roster[idx], idx
}

// pickSubstitute 选择替补上场球员, 阵容允许时保证与下场球员不同
func (g *EventGenerator) pickSubstitute(roster []string, outIdx int) string {
	if len(roster) == 0 {
		return UnknownPlayer
	}
	if len(roster) == 1 || outIdx < 0 {
		return roster[g.rng.Intn(len(roster))]
	}
	idx := g.rng.Intn(len(roster) - 1)
	if idx >= outIdx {
		idx++
	}
	return roster[idx]
}

// NewRand 创建一个独立的随机源, seed 为 0 时使用当前时间
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
