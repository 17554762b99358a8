package services

import (
	"fmt"
	"sync"
	"time"

	"livescore-service/logger"
	"livescore-service/models"
)

// EventPublisher 把新生成的事件发布到外部系统 (如 AMQP), 可选
type EventPublisher interface {
	PublishEvent(matchID int, event models.MatchEvent) error
}

// Simulator 模拟驱动器: 后台定时器按固定周期为所有未完赛的比赛
// 执行一次生成周期, 拉取请求也可以触发同一路径。同一场比赛在一个
// 周期窗口内最多生成一次, 定时器和并发拉取不会重复生成。
type Simulator struct {
	store        MatchStore
	generator    *EventGenerator
	now          func() time.Time
	tickInterval time.Duration
	publisher    EventPublisher

	mu      sync.Mutex
	runners map[int]*matchRunner
	started bool

	startOnce sync.Once
	stopOnce  sync.Once
	stop      chan struct{}
	done      chan struct{}
}

// matchRunner 单场比赛的生成状态, 锁保证同一场比赛的生成不重叠
type matchRunner struct {
	mu      sync.Mutex
	lastGen time.Time
}

// NewSimulator 创建模拟驱动器。now 是可注入的时钟源, publisher 可为 nil。
func NewSimulator(store MatchStore, generator *EventGenerator, tickInterval time.Duration, now func() time.Time, publisher EventPublisher) *Simulator {
	if now == nil {
		now = time.Now
	}
	return &Simulator{
		store:        store,
		generator:    generator,
		now:          now,
		tickInterval: tickInterval,
		publisher:    publisher,
		runners:      make(map[int]*matchRunner),
		stop:         make(chan struct{}),
		done:         make(chan struct{}),
	}
}

// Start 启动后台定时循环, 无论是否有消费者连接都持续推进模拟。
// 重复调用只启动一次。
func (s *Simulator) Start() {
	s.startOnce.Do(s.start)
}

func (s *Simulator) start() {
	s.mu.Lock()
	s.started = true
	s.mu.Unlock()

	go func() {
		defer close(s.done)

		ticker := time.NewTicker(s.tickInterval)
		defer ticker.Stop()

		logger.Printf("[Simulator] Started (tick interval: %v)", s.tickInterval)

		for {
			select {
			case <-ticker.C:
				// 落库失败不中断循环, 状态是时间推导的, 下个周期自然补上
				if err := s.RunDueCycles(); err != nil {
					logger.Errorf("[Simulator] Tick failed: %v", err)
				}
			case <-s.stop:
				logger.Println("[Simulator] Stopped")
				return
			}
		}
	}()
}

// Stop 停止后台循环并等待退出, 幂等。未启动时直接返回。
func (s *Simulator) Stop() {
	s.stopOnce.Do(func() {
		close(s.stop)
	})

	s.mu.Lock()
	started := s.started
	s.mu.Unlock()
	if started {
		<-s.done
	}
}

// RunDueCycles 为所有到期的比赛各执行一次生成周期。
// 定时器和拉取请求都走这条路径; 同一场比赛距上次生成不足一个
// 周期时跳过, 并发调用由每场比赛的锁串行化。
// 返回第一个提交失败的错误, 调用方决定如何上报。
func (s *Simulator) RunDueCycles() error {
	now := s.now()

	var firstErr error
	for _, m := range s.store.List() {
		if m.Status == models.StatusFinished {
			continue
		}
		if err := s.runMatchCycle(m.ID, now); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (s *Simulator) runMatchCycle(id int, now time.Time) error {
	runner := s.runner(id)

	runner.mu.Lock()
	defer runner.mu.Unlock()

	// 窗口内已生成过, 跳过
	if !runner.lastGen.IsZero() && now.Sub(runner.lastGen) < s.tickInterval {
		return nil
	}
	prev := runner.lastGen
	runner.lastGen = now

	var generated *models.MatchEvent
	err := s.store.Update(id, func(m *models.Match) error {
		generated = s.generator.Cycle(m, now)
		return nil
	})
	if err != nil {
		// 提交失败没有产生可见变更, 不占用本窗口, 下次调用重试
		runner.lastGen = prev
		return fmt.Errorf("match %d: %w", id, err)
	}

	if generated != nil {
		logger.Printf("[Simulator] Match %d: %s at minute %d (%s, %s)",
			id, generated.Type, generated.Minute, generated.Team, generated.Player)

		if s.publisher != nil {
			if err := s.publisher.PublishEvent(id, *generated); err != nil {
				logger.Errorf("[Simulator] Failed to publish event for match %d: %v", id, err)
			}
		}
	}
	return nil
}

func (s *Simulator) runner(id int) *matchRunner {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.runners[id]
	if !ok {
		r = &matchRunner{}
		s.runners[id] = r
	}
	return r
}
