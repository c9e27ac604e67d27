// Package session keeps the per-visitor cart in Redis, keyed by a cookie
// session id. The store is an explicit handle threaded through the cart and
// checkout handlers; nothing reads it ambiently.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Abdessamed08/boutique-api/models"
)

type Store struct {
	cache        *redis.Client
	ttl          time.Duration
	secureCookie bool
}

func NewStore(cache *redis.Client, ttl time.Duration, secureCookie bool) *Store {
	return &Store{cache: cache, ttl: ttl, secureCookie: secureCookie}
}

func cartKey(sessionID string) string {
	return fmt.Sprintf("cart:%s", sessionID)
}

// Cart loads the session's cart. A missing key is an empty cart, not an
// error; the cart is a convenience cache, not a source of truth.
func (s *Store) Cart(ctx context.Context, sessionID string) (models.Cart, error) {
	payload, err := s.cache.Get(ctx, cartKey(sessionID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return models.Cart{}, nil
		}
		return nil, fmt.Errorf("load cart: %w", err)
	}

	var cart models.Cart
	if err := json.Unmarshal([]byte(payload), &cart); err != nil {
		// Corrupt session payload: start the visitor over rather than
		// failing every cart request for the rest of the session.
		return models.Cart{}, nil
	}
	return cart, nil
}

// SaveCart writes the cart back and refreshes its TTL. An empty cart is
// deleted outright so abandoned sessions leave nothing behind.
func (s *Store) SaveCart(ctx context.Context, sessionID string, cart models.Cart) error {
	if cart.IsEmpty() {
		return s.ClearCart(ctx, sessionID)
	}
	payload, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("marshal cart: %w", err)
	}
	if err := s.cache.Set(ctx, cartKey(sessionID), payload, s.ttl).Err(); err != nil {
		return fmt.Errorf("save cart: %w", err)
	}
	return nil
}

// ClearCart drops the session's cart entirely.
func (s *Store) ClearCart(ctx context.Context, sessionID string) error {
	if err := s.cache.Del(ctx, cartKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	return nil
}
