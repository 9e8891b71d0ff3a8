package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

var _ fiber.Storage = (*SessionStorage)(nil)

const (
	defaultTable = "web_sessions"
	opTimeout    = 5 * time.Second
)

// SessionStorage implementa fiber.Storage sobre una tabla clave/valor.
// e es el vencimiento en segundos Unix; 0 = sin vencimiento.
type SessionStorage struct {
	pool  *pgxpool.Pool
	table string
	log   zerolog.Logger
	done  chan struct{}
}

// NewSessionStorage crea la tabla si no existe y arranca la limpieza periódica de vencidos.
// gcInterval <= 0 desactiva la limpieza.
func NewSessionStorage(ctx context.Context, pool *pgxpool.Pool, gcInterval time.Duration, log zerolog.Logger) (*SessionStorage, error) {
	s := &SessionStorage{pool: pool, table: defaultTable, log: log, done: make(chan struct{})}
	ddl := `CREATE TABLE IF NOT EXISTS ` + s.table + ` (
		k VARCHAR(64) PRIMARY KEY,
		v BYTEA NOT NULL,
		e BIGINT NOT NULL DEFAULT 0
	)`
	if _, err := pool.Exec(ctx, ddl); err != nil {
		return nil, fmt.Errorf("crear tabla de sesiones: %w", err)
	}
	if gcInterval > 0 {
		go s.gc(gcInterval)
	}
	return s, nil
}

// Get devuelve nil, nil si la clave no existe o venció.
func (s *SessionStorage) Get(key string) ([]byte, error) {
	if key == "" {
		return nil, nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	var (
		val []byte
		exp int64
	)
	err := s.pool.QueryRow(ctx, `SELECT v, e FROM `+s.table+` WHERE k = $1`, key).Scan(&val, &exp)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("leer sesión: %w", err)
	}
	if exp != 0 && exp <= time.Now().Unix() {
		return nil, nil
	}
	return val, nil
}

// Set inserta o reemplaza la clave.
func (s *SessionStorage) Set(key string, val []byte, exp time.Duration) error {
	if key == "" || len(val) == 0 {
		return nil
	}
	var expAt int64
	if exp > 0 {
		expAt = time.Now().Add(exp).Unix()
	}
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	query := `
		INSERT INTO ` + s.table + ` (k, v, e) VALUES ($1, $2, $3)
		ON CONFLICT (k) DO UPDATE SET v = EXCLUDED.v, e = EXCLUDED.e`
	if _, err := s.pool.Exec(ctx, query, key, val, expAt); err != nil {
		return fmt.Errorf("guardar sesión: %w", err)
	}
	return nil
}

// Delete borra la clave.
func (s *SessionStorage) Delete(key string) error {
	if key == "" {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()
	if _, err := s.pool.Exec(ctx, `DELETE FROM `+s.table+` WHERE k = $1`, key); err != nil {
		return fmt.Errorf("borrar sesión: %w", err)
	}
	return nil
}

// Reset borra todas las sesiones.
func (s *SessionStorage) Reset() error {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()
	if _, err := s.pool.Exec(ctx, `DELETE FROM `+s.table); err != nil {
		return fmt.Errorf("vaciar sesiones: %w", err)
	}
	return nil
}

// Close detiene la limpieza. El pool lo cierra quien lo creó.
func (s *SessionStorage) Close() error {
	select {
	case <-s.done:
	default:
		close(s.done)
	}
	return nil
}

func (s *SessionStorage) gc(every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			if n, err := s.deleteExpired(); err != nil {
				s.log.Warn().Err(err).Msg("limpieza de sesiones vencidas")
			} else if n > 0 {
				s.log.Debug().Int64("borradas", n).Msg("sesiones vencidas")
			}
		}
	}
}

func (s *SessionStorage) deleteExpired() (int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()
	tag, err := s.pool.Exec(ctx, `DELETE FROM `+s.table+` WHERE e <> 0 AND e <= $1`, time.Now().Unix())
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
