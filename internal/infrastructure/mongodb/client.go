package mongodb

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/jhoicas/museum-portal/pkg/config"
	"github.com/jhoicas/museum-portal/pkg/logger"
)

// Client envuelve la conexión a MongoDB y su estado de disponibilidad.
//
// mongo.Connect es perezoso: el driver no contacta al servidor hasta la
// primera operación. Ready solo pasa a true tras un ping exitoso y la
// creación de índices/validadores, de modo que el middleware HTTP pueda
// responder 503 mientras el store no esté establecido.
type Client struct {
	mc    *mongo.Client
	db    *mongo.Database
	ready atomic.Bool
}

// Connect crea el cliente con timeout de selección de servidor acotado.
func Connect(ctx context.Context, cfg config.MongoConfig) (*Client, error) {
	opts := options.Client().
		ApplyURI(cfg.URI).
		SetServerSelectionTimeout(time.Duration(cfg.SelectTimeoutSeconds) * time.Second)
	mc, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("conectar a MongoDB: %w", err)
	}
	return &Client{mc: mc, db: mc.Database(cfg.Database)}, nil
}

// Database devuelve la base de datos del portal.
func (c *Client) Database() *mongo.Database { return c.db }

// Ready indica si la conexión ya fue verificada.
func (c *Client) Ready() bool { return c.ready.Load() }

// WaitReady hace ping al servidor en bucle hasta lograr conexión, prepara
// índices y validadores, y marca el cliente como disponible. Pensado para
// correr en una goroutine: el servidor HTTP arranca de inmediato y las rutas
// /api responden 503 hasta que esto termina.
func (c *Client) WaitReady(ctx context.Context, log *logger.Logger, retry time.Duration) {
	for {
		err := c.mc.Ping(ctx, readpref.Primary())
		if err == nil {
			if schemaErr := EnsureSchema(ctx, c.db); schemaErr != nil {
				log.Error().Err(schemaErr).Msg("preparar esquema de MongoDB")
			}
			c.ready.Store(true)
			log.Info().Str("database", c.db.Name()).Msg("MongoDB conectado")
			return
		}
		log.Warn().Err(err).Dur("retry", retry).Msg("MongoDB no disponible, reintentando")
		select {
		case <-ctx.Done():
			return
		case <-time.After(retry):
		}
	}
}

// Close cierra la conexión.
func (c *Client) Close(ctx context.Context) error {
	c.ready.Store(false)
	return c.mc.Disconnect(ctx)
}
