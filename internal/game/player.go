package game

import (
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

// playerConn binds one network session to a room. Two pump goroutines per
// connection: the read pump feeds the room mailbox, the write pump drains
// the outbound queue.
type playerConn struct {
	id        string
	socket    NetworkSession
	limiter   *rate.Limiter
	writeChan chan []byte
	pingChan  chan struct{}
	done      chan struct{}
	closeOnce sync.Once
	log       zerolog.Logger
}

func NewPlayer(id string, socket NetworkSession, logger zerolog.Logger) *playerConn {
	return &playerConn{
		id:        id,
		socket:    socket,
		limiter:   rate.NewLimiter(10, 20),
		writeChan: make(chan []byte, 256),
		pingChan:  make(chan struct{}, 1),
		done:      make(chan struct{}),
		log:       logger.With().Str("player", id).Logger(),
	}
}

func (p *playerConn) Id() string { return p.id }

// Send enqueues one frame. Drops when the client cannot keep up; snapshots
// are full-state so a dropped one is corrected by the next.
func (p *playerConn) Send(data []byte) {
	select {
	case p.writeChan <- data:
	default:
		p.log.Warn().Msg("write queue full, dropping frame")
	}
}

func (p *playerConn) Ping() {
	select {
	case p.pingChan <- struct{}{}:
	default:
	}
}

// CancelAndRelease tears the connection down. Safe to call more than once.
func (p *playerConn) CancelAndRelease() {
	p.closeOnce.Do(func() {
		close(p.done)
		p.socket.Close("")
	})
}

// ReadPump forwards inbound frames to the room until the connection drops,
// then detaches. Clients flooding past the rate limit lose their frames
// silently, the connection stays up.
func (p *playerConn) ReadPump(room *Room) {
	defer room.Detach(p)

	for {
		data, err := p.socket.Read()
		if err != nil {
			return
		}
		if !p.limiter.Allow() {
			p.log.Debug().Msg("rate limit exceeded, dropping frame")
			continue
		}
		room.Deliver(p.id, data)
	}
}

func (p *playerConn) WritePump() {
	for {
		select {
		case data := <-p.writeChan:
			if err := p.socket.Write(data); err != nil {
				return
			}
		case <-p.pingChan:
			if err := p.socket.Ping(); err != nil {
				return
			}
		case <-p.done:
			return
		}
	}
}
