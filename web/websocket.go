package web

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"livescore-service/logger"
	"livescore-service/services"
)

// Hub 登记所有推送订阅者, 服务关闭时统一断开。
// 订阅者之间完全独立, 每个订阅者有自己的推送循环。
type Hub struct {
	mu      sync.Mutex
	clients map[*Client]bool
}

// NewHub 创建新的Hub
func NewHub() *Hub {
	return &Hub{
		clients: make(map[*Client]bool),
	}
}

func (h *Hub) register(client *Client) {
	h.mu.Lock()
	h.clients[client] = true
	total := len(h.clients)
	h.mu.Unlock()

	logger.Printf("[WS] Client %s connected. Total clients: %d", client.id, total)
}

func (h *Hub) unregister(client *Client) {
	h.mu.Lock()
	delete(h.clients, client)
	total := len(h.clients)
	h.mu.Unlock()

	logger.Printf("[WS] Client %s disconnected. Total clients: %d", client.id, total)
}

// ClientCount 当前订阅者数量
func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// CloseAll 断开所有订阅者 (服务关闭时调用)
func (h *Hub) CloseAll() {
	h.mu.Lock()
	clients := make([]*Client, 0, len(h.clients))
	for c := range h.clients {
		clients = append(clients, c)
	}
	h.mu.Unlock()

	for _, c := range clients {
		c.teardown()
	}
}

// Client 一个推送订阅者。writePump 按固定周期推送全量快照,
// readPump 只负责发现断连; 断连只结束这个订阅者自己的循环。
type Client struct {
	id       string
	hub      *Hub
	conn     *websocket.Conn
	store    services.MatchStore
	interval time.Duration
	done     chan struct{}
	once     sync.Once
}

// handleWebSocket 把连接升级为 WebSocket 推送订阅
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Errorf("[WS] Upgrade failed: %v", err)
		return
	}

	client := &Client{
		id:       uuid.New().String(),
		hub:      s.wsHub,
		conn:     conn,
		store:    s.store,
		interval: s.config.PushInterval,
		done:     make(chan struct{}),
	}

	s.wsHub.register(client)

	go client.writePump()
	go client.readPump()
}

// teardown 结束该订阅者的循环并释放连接, 幂等
func (c *Client) teardown() {
	c.once.Do(func() {
		close(c.done)
		c.conn.Close()
		c.hub.unregister(c)
	})
}

// readPump 读取并丢弃客户端消息, 用于发现断连
func (c *Client) readPump() {
	defer c.teardown()

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure, websocket.CloseAbnormalClosure) {
				logger.Errorf("[WS] Client %s read error: %v", c.id, err)
			}
			return
		}
	}
}

// writePump 按推送周期发送全量比赛快照, 连接建立后立即推送第一帧
func (c *Client) writePump() {
	defer c.teardown()

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	if err := c.sendSnapshot(); err != nil {
		return
	}

	for {
		select {
		case <-ticker.C:
			if err := c.sendSnapshot(); err != nil {
				return
			}
		case <-c.done:
			c.conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		}
	}
}

func (c *Client) sendSnapshot() error {
	snapshots := NewSnapshotList(c.store.List(), time.Now())

	data, err := json.Marshal(snapshots)
	if err != nil {
		logger.Errorf("[WS] Failed to marshal snapshot: %v", err)
		return err
	}

	return c.conn.WriteMessage(websocket.TextMessage, data)
}
