package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// setupPostgresContainer starts a throwaway Postgres instance with the full
// application schema and returns a connected handle plus a teardown func.
func setupPostgresContainer(t *testing.T) (*sqlx.DB, func()) {
	t.Helper()

	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}

	container, err := tc.GenericContainer(context.Background(), tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)

	host, _ := container.Host(context.Background())
	port, _ := container.MappedPort(context.Background(), "5432")

	dsn := fmt.Sprintf("postgres://postgres:password@%s:%d/testdb?sslmode=disable", host, port.Int())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	assert.NoError(t, err)

	schema := `
	CREATE TABLE IF NOT EXISTS users (
		user_id UUID PRIMARY KEY,
		first_name VARCHAR(100) NOT NULL,
		last_name VARCHAR(100) NOT NULL,
		username VARCHAR(50) NOT NULL UNIQUE,
		birth_date VARCHAR(10) NOT NULL,
		email VARCHAR(100) NOT NULL UNIQUE,
		avatar VARCHAR(255) NOT NULL,
		password_hash VARCHAR(255) NOT NULL,
		reset_token VARCHAR(512),
		reset_expires TIMESTAMP,
		created_at TIMESTAMP NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMP NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS movies (
		media_id BIGINT PRIMARY KEY,
		title VARCHAR(255) NOT NULL,
		genres TEXT[] NOT NULL DEFAULT '{}',
		api_rating DOUBLE PRECISION NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMP NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS series (
		media_id BIGINT PRIMARY KEY,
		title VARCHAR(255) NOT NULL,
		genres TEXT[] NOT NULL DEFAULT '{}',
		api_rating DOUBLE PRECISION NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMP NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS user_movies (
		id UUID PRIMARY KEY,
		user_id UUID NOT NULL,
		media_id BIGINT NOT NULL,
		watched BOOLEAN NOT NULL DEFAULT FALSE,
		watchlisted BOOLEAN NOT NULL DEFAULT FALSE,
		rating DOUBLE PRECISION,
		comment TEXT,
		comment_at TIMESTAMP,
		created_at TIMESTAMP NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMP NOT NULL DEFAULT NOW(),
		UNIQUE (user_id, media_id)
	);

	CREATE TABLE IF NOT EXISTS user_series (
		id UUID PRIMARY KEY,
		user_id UUID NOT NULL,
		media_id BIGINT NOT NULL,
		watched BOOLEAN NOT NULL DEFAULT FALSE,
		watchlisted BOOLEAN NOT NULL DEFAULT FALSE,
		rating DOUBLE PRECISION,
		comment TEXT,
		comment_at TIMESTAMP,
		created_at TIMESTAMP NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMP NOT NULL DEFAULT NOW(),
		UNIQUE (user_id, media_id)
	);
	`
	_, err = db.Exec(schema)
	assert.NoError(t, err)

	teardown := func() {
		db.Close()
		container.Terminate(context.Background())
	}

	return db, teardown
}
