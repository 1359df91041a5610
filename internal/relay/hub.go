package relay

import (
	"encoding/json"
	"sync"
)

// 预览同步事件类型
const (
	KindSyncTheme    = "SYNC_THEME"
	KindSyncBlocks   = "SYNC_BLOCKS"
	KindSyncGifts    = "SYNC_GIFTS"
	KindSyncMessages = "SYNC_MESSAGES"
	KindRequestSync  = "REQUEST_SYNC"
)

// Envelope 预览通道上的消息封包
type Envelope struct {
	Kind    string          `json:"kind"`
	Payload json.RawMessage `json:"payload"`
}

// Hub 预览同步中枢：同一用户的编辑端与预览端共享一个房间，
// 编辑端发布的最新快照会被缓存，供后加入的预览端 REQUEST_SYNC 补发。
type Hub struct {
	mu     sync.RWMutex
	rooms  map[uint]map[*Client]bool
	latest map[uint]map[string]json.RawMessage
}

// NewHub 创建预览中枢
func NewHub() *Hub {
	return &Hub{
		rooms:  make(map[uint]map[*Client]bool),
		latest: make(map[uint]map[string]json.RawMessage),
	}
}

func (h *Hub) register(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	room, ok := h.rooms[client.userID]
	if !ok {
		room = make(map[*Client]bool)
		h.rooms[client.userID] = room
	}
	room[client] = true
}

func (h *Hub) unregister(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	room, ok := h.rooms[client.userID]
	if !ok {
		return
	}
	if _, member := room[client]; member {
		delete(room, client)
		close(client.send)
	}
	if len(room) == 0 {
		delete(h.rooms, client.userID)
		delete(h.latest, client.userID)
	}
}

// Publish 处理一条来自客户端的消息：同步类事件缓存最新快照并广播给
// 房间内其他成员，REQUEST_SYNC 则把缓存补发给请求方。
func (h *Hub) Publish(sender *Client, envelope Envelope) {
	switch envelope.Kind {
	case KindSyncTheme, KindSyncBlocks, KindSyncGifts, KindSyncMessages:
		h.storeAndBroadcast(sender.userID, sender, envelope)
	case KindRequestSync:
		h.replay(sender)
	}
}

// PublishServer 服务端落库成功后向整个房间广播最新文档
func (h *Hub) PublishServer(userID uint, envelope Envelope) {
	switch envelope.Kind {
	case KindSyncTheme, KindSyncBlocks, KindSyncGifts, KindSyncMessages:
		h.storeAndBroadcast(userID, nil, envelope)
	}
}

func (h *Hub) storeAndBroadcast(userID uint, sender *Client, envelope Envelope) {
	data, err := json.Marshal(envelope)
	if err != nil {
		return
	}

	h.mu.Lock()
	snapshots, ok := h.latest[userID]
	if !ok {
		snapshots = make(map[string]json.RawMessage)
		h.latest[userID] = snapshots
	}
	snapshots[envelope.Kind] = append(json.RawMessage(nil), envelope.Payload...)

	room := h.rooms[userID]
	for client := range room {
		if client == sender {
			continue
		}
		select {
		case client.send <- data:
		default:
			delete(room, client)
			close(client.send)
		}
	}
	h.mu.Unlock()
}

func (h *Hub) replay(requester *Client) {
	h.mu.RLock()
	snapshots := h.latest[requester.userID]
	pending := make([][]byte, 0, len(snapshots))
	for kind, payload := range snapshots {
		data, err := json.Marshal(Envelope{Kind: kind, Payload: payload})
		if err != nil {
			continue
		}
		pending = append(pending, data)
	}
	h.mu.RUnlock()

	for _, data := range pending {
		select {
		case requester.send <- data:
		default:
			return
		}
	}
}

// Snapshot 返回某用户房间当前缓存的某类快照，不存在返回 nil
func (h *Hub) Snapshot(userID uint, kind string) json.RawMessage {
	h.mu.RLock()
	defer h.mu.RUnlock()
	snapshots, ok := h.latest[userID]
	if !ok {
		return nil
	}
	return snapshots[kind]
}

// RoomSize 返回某用户房间当前在线连接数
func (h *Hub) RoomSize(userID uint) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[userID])
}
