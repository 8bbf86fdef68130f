package redis

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/SyntalysTech/glow-aesthetic-web-sub000/booking"
)

// Abandoned carts expire on their own after a week.
const cartTTL = 7 * 24 * time.Hour

// CartStore persists session carts as whole-value JSON blobs under
// cart:<session>. Implements booking.CartStore.
type CartStore struct {
	client *redis.Client
}

func NewCartStore(client *redis.Client) *CartStore {
	return &CartStore{client: client}
}

func (s *CartStore) Get(session string) ([]booking.CartLine, error) {
	val, err := s.client.Get(Ctx, cartKey(session)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var lines []booking.CartLine
	if err := json.Unmarshal([]byte(val), &lines); err != nil {
		return nil, err
	}
	return lines, nil
}

func (s *CartStore) Put(session string, lines []booking.CartLine) error {
	data, err := json.Marshal(lines)
	if err != nil {
		return err
	}
	return s.client.Set(Ctx, cartKey(session), data, cartTTL).Err()
}

func (s *CartStore) Clear(session string) error {
	return s.client.Del(Ctx, cartKey(session)).Err()
}

func cartKey(session string) string {
	return "cart:" + session
}
