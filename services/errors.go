package services

import "errors"

var (
	// ErrMatchNotFound 比赛不存在
	ErrMatchNotFound = errors.New("match not found")

	// ErrStoreUnavailable 状态存储读写失败
	ErrStoreUnavailable = errors.New("store unavailable")
)
