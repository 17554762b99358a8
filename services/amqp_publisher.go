package services

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/streadway/amqp"

	"livescore-service/logger"
	"livescore-service/models"
)

// AMQPPublisher 把生成的比赛事件发布到 topic exchange,
// 下游系统可以按 match.{id}.{type} 路由键订阅事件流。
type AMQPPublisher struct {
	url      string
	exchange string

	mu      sync.Mutex
	conn    *amqp.Connection
	channel *amqp.Channel
}

// publishedEvent AMQP 消息体
type publishedEvent struct {
	MatchID   int     `json:"match_id"`
	Minute    int     `json:"minute"`
	Team      string  `json:"team"`
	Player    string  `json:"player"`
	Type      string  `json:"type"`
	SubIn     *string `json:"sub_in,omitempty"`
	Timestamp int64   `json:"timestamp"`
}

// NewAMQPPublisher 创建事件发布器
func NewAMQPPublisher(url, exchange string) *AMQPPublisher {
	return &AMQPPublisher{
		url:      url,
		exchange: exchange,
	}
}

// Connect 建立 AMQP 连接并声明 exchange
func (p *AMQPPublisher) Connect() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	config := amqp.Config{
		Heartbeat: 60 * time.Second,
		Locale:    "en_US",
	}

	conn, err := amqp.DialConfig(p.url, config)
	if err != nil {
		return fmt.Errorf("failed to connect to AMQP: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return fmt.Errorf("failed to open channel: %w", err)
	}

	if err := channel.ExchangeDeclare(
		p.exchange,
		"topic",
		true,  // durable
		false, // auto-delete
		false, // internal
		false, // no-wait
		nil,
	); err != nil {
		channel.Close()
		conn.Close()
		return fmt.Errorf("failed to declare exchange: %w", err)
	}

	p.conn = conn
	p.channel = channel

	logger.Printf("[AMQP] Connected, publishing to exchange %s", p.exchange)
	return nil
}

// PublishEvent 实现 EventPublisher 接口
func (p *AMQPPublisher) PublishEvent(matchID int, event models.MatchEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.channel == nil {
		return fmt.Errorf("amqp publisher not connected")
	}

	body, err := json.Marshal(publishedEvent{
		MatchID:   matchID,
		Minute:    event.Minute,
		Team:      event.Team,
		Player:    event.Player,
		Type:      string(event.Type),
		SubIn:     event.SubIn,
		Timestamp: time.Now().Unix(),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	routingKey := fmt.Sprintf("match.%d.%s", matchID, event.Type)

	return p.channel.Publish(
		p.exchange,
		routingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
			Timestamp:   time.Now(),
		},
	)
}

// Close 关闭连接
func (p *AMQPPublisher) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.channel != nil {
		p.channel.Close()
		p.channel = nil
	}
	if p.conn != nil {
		p.conn.Close()
		p.conn = nil
	}

	logger.Println("[AMQP] Publisher closed")
}
