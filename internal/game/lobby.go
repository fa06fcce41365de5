package game

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

const PING_INTERVAL = time.Second * 30

// Lobby owns the live rooms. Rooms are created lazily on first access and
// release themselves once they stay empty past the grace period.
type Lobby struct {
	locker     sync.RWMutex
	rooms      map[string]*Room
	sched      Scheduler
	evictGrace time.Duration
	log        zerolog.Logger
}

func NewLobby(sched Scheduler, evictGrace time.Duration, logger zerolog.Logger) *Lobby {
	return &Lobby{
		rooms:      make(map[string]*Room),
		sched:      sched,
		evictGrace: evictGrace,
		log:        logger,
	}
}

// Attach resolves the room for roomId, creating it on first access, and
// hands it the connection. Retries when it races a room shutting itself
// down.
func (l *Lobby) Attach(roomId string, p Player) *Room {
	for {
		room := l.getOrCreate(roomId)
		if room.Attach(p) {
			return room
		}
	}
}

func (l *Lobby) getOrCreate(roomId string) *Room {
	l.locker.RLock()
	room, exists := l.rooms[roomId]
	l.locker.RUnlock()
	if exists {
		return room
	}

	l.locker.Lock()
	defer l.locker.Unlock()
	if room, exists := l.rooms[roomId]; exists {
		return room
	}

	room = NewRoom(roomId, l, l.sched, l.evictGrace, l.log)
	l.rooms[roomId] = room
	go room.GameLoop()
	l.log.Info().Str("room", roomId).Msg("room created")
	return room
}

// release is called by a room evicting itself. The instance check guards
// against removing a newer room that reused the same id.
func (l *Lobby) release(roomId string, r *Room) {
	l.locker.Lock()
	defer l.locker.Unlock()
	if l.rooms[roomId] == r {
		delete(l.rooms, roomId)
		l.log.Info().Str("room", roomId).Msg("room released")
	}
}

func (l *Lobby) RoomCount() int {
	l.locker.RLock()
	defer l.locker.RUnlock()
	return len(l.rooms)
}

// RunPingLoop keeps websocket connections alive across idle lobbies.
// Blocks until ctx is cancelled.
func (l *Lobby) RunPingLoop(ctx context.Context) {
	ticker := time.NewTicker(PING_INTERVAL)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			l.locker.RLock()
			rooms := make([]*Room, 0, len(l.rooms))
			for _, room := range l.rooms {
				rooms = append(rooms, room)
			}
			l.locker.RUnlock()

			for _, room := range rooms {
				room.PingPlayers()
			}
		case <-ctx.Done():
			return
		}
	}
}
