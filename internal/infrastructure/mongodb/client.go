package mongodb

import (
	"context"
	"fmt"
	"time"

	"github.com/fatec-votorantim/api-prestadores/pkg/config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Connect abre a conexão com o MongoDB usando a configuração da aplicação e valida
// com um ping. O client devolvido é seguro para uso concorrente e deve ser fechado
// com Disconnect no shutdown (ciclo de vida explícito: abre no startup, fecha no fim).
func Connect(ctx context.Context, cfg config.DBConfig) (*mongo.Client, error) {
	serverAPI := options.ServerAPI(options.ServerAPIVersion1)
	opts := options.Client().
		ApplyURI(cfg.URI).
		SetServerAPIOptions(serverAPI).
		SetConnectTimeout(10 * time.Second)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("conectar ao MongoDB: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping MongoDB: %w", err)
	}
	return client, nil
}

// Database devolve o handle do banco configurado, injetado nos repositórios no startup.
func Database(client *mongo.Client, cfg config.DBConfig) *mongo.Database {
	return client.Database(cfg.DBName)
}
