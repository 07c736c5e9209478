package deps

import (
	"github.com/bartrekker/bartrekker_api/config"
	"github.com/bartrekker/bartrekker_api/internal/db"
	"github.com/bartrekker/bartrekker_api/util/websockets"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
)

type Dependencies struct {
	DB        *db.DB
	WebSocket *websockets.WebSocketManager
}

func New(cfg *config.Config) *Dependencies {
	database, err := db.New(cfg.Dsn)
	if err != nil {
		logrus.Panicln("failed to connect to database", "error", err)
	}

	websocket := websockets.NewWebSocketManager()

	deps := Dependencies{
		DB:        database,
		WebSocket: websocket,
	}
	return &deps
}

func (d *Dependencies) Pool() *pgxpool.Pool {
	return d.DB.Pool()
}
