package ws

import (
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"eats-backend/entity"
	"eats-backend/pkg/resp"
	"eats-backend/services"
	"eats-backend/utils"
)

// OrderHub pushes order changes to restaurant dashboards. One room per
// restaurant; every open dashboard connection of the owner is a client.
type OrderHub struct {
	clients    map[uint]map[*websocket.Conn]bool // restaurantID -> set of clients
	broadcast  chan OrderEvent
	register   chan subscription
	unregister chan subscription
	mu         sync.Mutex

	rests *services.RestaurantService
}

type subscription struct {
	Conn         *websocket.Conn
	RestaurantID uint
}

// OrderEvent is what the dashboard receives on every order change.
type OrderEvent struct {
	RestaurantID uint               `json:"-"`
	OrderID      uint               `json:"orderId"`
	Status       entity.OrderStatus `json:"status"`
	TotalAmount  int64              `json:"totalAmount"`
	UpdatedAt    time.Time          `json:"updatedAt"`
}

func NewOrderHub(rests *services.RestaurantService) *OrderHub {
	return &OrderHub{
		clients:    make(map[uint]map[*websocket.Conn]bool),
		broadcast:  make(chan OrderEvent, 64),
		register:   make(chan subscription),
		unregister: make(chan subscription),
		rests:      rests,
	}
}

func (h *OrderHub) Run() {
	for {
		select {
		case sub := <-h.register:
			h.mu.Lock()
			if h.clients[sub.RestaurantID] == nil {
				h.clients[sub.RestaurantID] = make(map[*websocket.Conn]bool)
			}
			h.clients[sub.RestaurantID][sub.Conn] = true
			h.mu.Unlock()

		case sub := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[sub.RestaurantID][sub.Conn]; ok {
				delete(h.clients[sub.RestaurantID], sub.Conn)
				sub.Conn.Close()
			}
			h.mu.Unlock()

		case ev := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients[ev.RestaurantID] {
				if err := conn.WriteJSON(ev); err != nil {
					log.Printf("ws write error: %v", err)
					conn.Close()
					delete(h.clients[ev.RestaurantID], conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

// OrderChanged implements services.OrderNotifier. It must not block the
// request path, so a full buffer drops the event; the dashboard refetches
// on reconnect anyway.
func (h *OrderHub) OrderChanged(o *entity.Order) {
	ev := OrderEvent{
		RestaurantID: o.RestaurantID,
		OrderID:      o.ID,
		Status:       o.Status,
		TotalAmount:  o.TotalAmount,
		UpdatedAt:    o.UpdatedAt,
	}
	select {
	case h.broadcast <- ev:
	default:
		log.Printf("ws: dropping order event for restaurant %d", o.RestaurantID)
	}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// GET /api/my/restaurant/order/ws
func (h *OrderHub) Serve(c *gin.Context) {
	if utils.CurrentRole(c) != "owner" {
		resp.Forbidden(c, "owner role required")
		return
	}

	rest, err := h.rests.GetMyRestaurant(utils.CurrentUserID(c))
	if err != nil {
		resp.NotFound(c, "restaurant not found")
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}

	sub := subscription{Conn: conn, RestaurantID: rest.ID}
	h.register <- sub

	// read loop only to observe the close; the dashboard never sends
	go func() {
		defer func() { h.unregister <- sub }()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
