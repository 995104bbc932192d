package session

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Akshayathangaraj/InsurAI-Infosys/internal/domain"
	"github.com/Akshayathangaraj/InsurAI-Infosys/internal/domain/entity"
	"github.com/Akshayathangaraj/InsurAI-Infosys/pkg/config"
)

// Field names inside a session hash. One hash per session id holds exactly
// the persisted client state: token, username, role, userId and, for
// employees, employeeId.
const (
	fieldToken      = "token"
	fieldUsername   = "username"
	fieldRole       = "role"
	fieldUserID     = "userId"
	fieldEmployeeID = "employeeId"
)

// Store persists sessions in Redis. The token is stored as-is; it is already
// an opaque credential the backend alone can validate.
type Store struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewClient builds the Redis client for the configured address.
func NewClient(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:         cfg.Address,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})
}

// New builds a session store. Sessions expire after ttl; zero keeps them
// until logout.
func New(rdb *redis.Client, ttl time.Duration) *Store {
	return &Store{rdb: rdb, ttl: ttl}
}

func key(sid string) string { return "session:" + sid }

// Set writes the whole session, replacing any previous hash under the same
// id. The delete-first write is what drops a stale employeeId when a
// non-employee logs in over an old session.
func (s *Store) Set(ctx context.Context, sid string, sess entity.Session) error {
	fields := map[string]any{
		fieldToken:    sess.Token,
		fieldUsername: sess.Username,
		fieldRole:     string(sess.Role),
		fieldUserID:   strconv.FormatInt(sess.UserID, 10),
	}
	if sess.EmployeeID != nil {
		fields[fieldEmployeeID] = strconv.FormatInt(*sess.EmployeeID, 10)
	}

	pipe := s.rdb.TxPipeline()
	pipe.Del(ctx, key(sid))
	pipe.HSet(ctx, key(sid), fields)
	if s.ttl > 0 {
		pipe.Expire(ctx, key(sid), s.ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("session set: %w", err)
	}
	return nil
}

// Get loads a session. A missing or empty hash answers domain.ErrNotFound.
func (s *Store) Get(ctx context.Context, sid string) (*entity.Session, error) {
	fields, err := s.rdb.HGetAll(ctx, key(sid)).Result()
	if err != nil {
		return nil, fmt.Errorf("session get: %w", err)
	}
	if len(fields) == 0 {
		return nil, domain.ErrNotFound
	}

	userID, _ := strconv.ParseInt(fields[fieldUserID], 10, 64)
	sess := &entity.Session{
		Token:    fields[fieldToken],
		Username: fields[fieldUsername],
		Role:     entity.Role(fields[fieldRole]),
		UserID:   userID,
	}
	if raw, ok := fields[fieldEmployeeID]; ok {
		if id, err := strconv.ParseInt(raw, 10, 64); err == nil {
			sess.EmployeeID = &id
		}
	}
	return sess, nil
}

// Clear removes the session. Logout is the only teardown path.
func (s *Store) Clear(ctx context.Context, sid string) error {
	if err := s.rdb.Del(ctx, key(sid)).Err(); err != nil {
		return fmt.Errorf("session clear: %w", err)
	}
	return nil
}

// Ping verifies the Redis connection at startup.
func (s *Store) Ping(ctx context.Context) error {
	if err := s.rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}
