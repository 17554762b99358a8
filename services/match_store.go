package services

import (
	"fmt"
	"sort"
	"sync"

	"livescore-service/models"
)

// MatchStore 比赛状态的权威存储。读取返回深拷贝,
// 变更只能通过 Update 提交, 读取方永远看不到半更新状态。
type MatchStore interface {
	// List 返回全部比赛快照, 按 ID 升序
	List() []models.Match

	// Get 返回单场比赛快照, 不存在时返回 ErrMatchNotFound
	Get(id int) (models.Match, error)

	// Update 对单场比赛执行原子变更: fn 作用在记录副本上,
	// fn 返回错误则放弃整次变更, 否则比分和事件表作为一个整体提交
	Update(id int, fn func(*models.Match) error) error
}

type matchRecord struct {
	mu    sync.RWMutex
	match models.Match
}

// MemoryStore MatchStore 的内存实现。比赛集合在构造后固定,
// 每场比赛有独立的锁, 互不影响。onCommit 非空时 (写穿模式),
// 变更先持久化成功再对读取方可见。
type MemoryStore struct {
	records  map[int]*matchRecord
	ids      []int // 升序
	onCommit func(prev, updated models.Match) error
}

// NewMemoryStore 根据初始比赛集合创建内存存储
func NewMemoryStore(matches []models.Match) *MemoryStore {
	s := &MemoryStore{
		records: make(map[int]*matchRecord, len(matches)),
	}
	for _, m := range matches {
		m.NormalizeKickoff()
		s.records[m.ID] = &matchRecord{match: m.Clone()}
		s.ids = append(s.ids, m.ID)
	}
	sort.Ints(s.ids)
	return s
}

// List 实现 MatchStore 接口
func (s *MemoryStore) List() []models.Match {
	matches := make([]models.Match, 0, len(s.ids))
	for _, id := range s.ids {
		rec := s.records[id]
		rec.mu.RLock()
		matches = append(matches, rec.match.Clone())
		rec.mu.RUnlock()
	}
	return matches
}

// Get 实现 MatchStore 接口
func (s *MemoryStore) Get(id int) (models.Match, error) {
	rec, ok := s.records[id]
	if !ok {
		return models.Match{}, ErrMatchNotFound
	}
	rec.mu.RLock()
	defer rec.mu.RUnlock()
	return rec.match.Clone(), nil
}

// Update 实现 MatchStore 接口
func (s *MemoryStore) Update(id int, fn func(*models.Match) error) error {
	rec, ok := s.records[id]
	if !ok {
		return ErrMatchNotFound
	}
	rec.mu.Lock()
	defer rec.mu.Unlock()

	updated := rec.match.Clone()
	if err := fn(&updated); err != nil {
		return err
	}

	if s.onCommit != nil {
		if err := s.onCommit(rec.match, updated); err != nil {
			return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
		}
	}

	rec.match = updated
	return nil
}
