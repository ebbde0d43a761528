// Package client holds the browser-side state of the shop: the auth session
// and the cart, persisted as JSON the way the SPA mirrors them into local
// storage, plus the handful of computations the pages do on top of them.
package client

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
)

const (
	cartFile = "cart.json"
	authFile = "auth.json"
)

type CartItem struct {
	ID          uint    `json:"_id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

type AuthState struct {
	User  *AuthUser `json:"user"`
	Token string    `json:"token"`
}

type AuthUser struct {
	ID      uint   `json:"_id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Role    int    `json:"role"`
}

// SearchState is in-memory only; it is never persisted.
type SearchState struct {
	Keyword string
	Results []CartItem
}

// Store persists the auth and cart entries under a directory, one JSON file
// per entry.
type Store struct {
	dir string
}

func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// LoadCart reads the persisted cart. Corrupt data is logged and replaced by
// an empty cart instead of propagating the error.
func (s *Store) LoadCart() []CartItem {
	data, err := os.ReadFile(filepath.Join(s.dir, cartFile))
	if err != nil {
		return []CartItem{}
	}

	var items []CartItem
	if err := json.Unmarshal(data, &items); err != nil {
		log.Printf("corrupt cart state, resetting: %v", err)
		return []CartItem{}
	}
	return items
}

func (s *Store) SaveCart(items []CartItem) error {
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(s.dir, cartFile), data, 0644)
}

// LoadAuth reads the persisted session, recovering to a signed-out state on
// corrupt data.
func (s *Store) LoadAuth() AuthState {
	data, err := os.ReadFile(filepath.Join(s.dir, authFile))
	if err != nil {
		return AuthState{}
	}

	var auth AuthState
	if err := json.Unmarshal(data, &auth); err != nil {
		log.Printf("corrupt auth state, resetting: %v", err)
		return AuthState{}
	}
	return auth
}

func (s *Store) SaveAuth(auth AuthState) error {
	data, err := json.Marshal(auth)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(s.dir, authFile), data, 0644)
}

func (s *Store) ClearAuth() error {
	err := os.Remove(filepath.Join(s.dir, authFile))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
