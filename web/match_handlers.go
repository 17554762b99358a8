package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"livescore-service/logger"
	"livescore-service/services"
)

// handleHealth 健康检查
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status": "ok",
		"time":   time.Now().Unix(),
	})
}

// handleListMatches 获取全部比赛快照。拉取请求先触发一轮到期的
// 生成周期, 同一窗口内的并发请求不会重复生成。
func (s *Server) handleListMatches(w http.ResponseWriter, r *http.Request) {
	if err := s.simulator.RunDueCycles(); err != nil {
		logger.Errorf("[API] Generation cycle failed: %v", err)
		http.Error(w, "Store unavailable", http.StatusServiceUnavailable)
		return
	}

	snapshots := NewSnapshotList(s.store.List(), time.Now())

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(snapshots)
}

// handleGetMatch 获取单场比赛快照。未知 id 先行返回 404,
// 不触发任何生成周期。
func (s *Server) handleGetMatch(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		http.Error(w, "Invalid match id", http.StatusBadRequest)
		return
	}

	if _, err := s.store.Get(id); err != nil {
		if errors.Is(err, services.ErrMatchNotFound) {
			http.Error(w, "Match not found", http.StatusNotFound)
			return
		}
		logger.Errorf("[API] Failed to read match %d: %v", id, err)
		http.Error(w, "Store unavailable", http.StatusServiceUnavailable)
		return
	}

	if err := s.simulator.RunDueCycles(); err != nil {
		logger.Errorf("[API] Generation cycle failed: %v", err)
		http.Error(w, "Store unavailable", http.StatusServiceUnavailable)
		return
	}

	match, err := s.store.Get(id)
	if errors.Is(err, services.ErrMatchNotFound) {
		http.Error(w, "Match not found", http.StatusNotFound)
		return
	}
	if err != nil {
		logger.Errorf("[API] Failed to read match %d: %v", id, err)
		http.Error(w, "Store unavailable", http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(NewMatchSnapshot(match, time.Now()))
}
