package services

import (
	"fmt"

	"livescore-service/models"
)

// MatchRepository 持久化层需要实现的接口 (由 database 包提供)
type MatchRepository interface {
	// LoadAll 加载全部比赛, 按 ID 升序
	LoadAll() ([]models.Match, error)

	// SaveMatch 在一个事务中保存比分/状态变更和 firstSeq 起的新事件
	SaveMatch(m models.Match, newEvents []models.MatchEvent, firstSeq int) error
}

// NewPersistentStore 创建写穿模式的存储: 启动时从仓库加载全部比赛,
// 之后每次变更先在一个事务里落库, 落库失败变更对读取方不可见,
// 错误包装为 ErrStoreUnavailable 向上传递。
func NewPersistentStore(repo MatchRepository) (*MemoryStore, error) {
	matches, err := repo.LoadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	store := NewMemoryStore(matches)
	store.onCommit = func(prev, updated models.Match) error {
		newEvents := updated.Events[len(prev.Events):]
		return repo.SaveMatch(updated, newEvents, len(prev.Events))
	}
	return store, nil
}
