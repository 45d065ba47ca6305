package handler

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/gofiber/contrib/websocket"
)

// DeskEvent is pushed to every front-desk screen watching a property.
type DeskEvent struct {
	Type          string    `json:"type"`
	PropertyRef   uint      `json:"propertyRef"`
	ReservationId uint      `json:"reservationId,omitempty"`
	LicenseId     uint      `json:"licenseId,omitempty"`
	RoomRef       uint      `json:"roomRef,omitempty"`
	At            time.Time `json:"at"`
}

const (
	DeskEventCheckIn        = "CHECK_IN"
	DeskEventCheckOut       = "CHECK_OUT"
	DeskEventRoomAssigned   = "ROOM_ASSIGNED"
	DeskEventRoomUnassigned = "ROOM_UNASSIGNED"
	DeskEventReservation    = "RESERVATION_CREATED"
	DeskEventCancellation   = "RESERVATION_CANCELLED"
	DeskEventPayment        = "PAYMENT_RECORDED"
)

// DeskHub fans desk events out to websocket clients grouped per property.
type DeskHub struct {
	mu      sync.Mutex
	clients map[uint]map[*websocket.Conn]bool
}

func NewDeskHub() *DeskHub {
	return &DeskHub{clients: make(map[uint]map[*websocket.Conn]bool)}
}

// Serve registers the connection under the property in the path and blocks
// reading until the peer goes away.
func (hub *DeskHub) Serve(c *websocket.Conn) {
	propertyId, _ := c.Locals("propertyId").(uint)

	defer func() {
		hub.mu.Lock()
		if hub.clients[propertyId] != nil {
			delete(hub.clients[propertyId], c)
		}
		hub.mu.Unlock()
		c.Close()
	}()

	hub.mu.Lock()
	if hub.clients[propertyId] == nil {
		hub.clients[propertyId] = make(map[*websocket.Conn]bool)
	}
	hub.clients[propertyId][c] = true
	hub.mu.Unlock()

	for {
		if _, _, err := c.ReadMessage(); err != nil {
			return
		}
	}
}

// Broadcast sends the event to every client watching its property. Dead
// connections are dropped on write failure.
func (hub *DeskHub) Broadcast(event DeskEvent) {
	event.At = time.Now().UTC()
	payload, err := json.Marshal(event)
	if err != nil {
		log.Printf("desk event marshal failed: %v", err)
		return
	}

	hub.mu.Lock()
	defer hub.mu.Unlock()
	for conn := range hub.clients[event.PropertyRef] {
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			conn.Close()
			delete(hub.clients[event.PropertyRef], conn)
		}
	}
}
