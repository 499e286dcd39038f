package services

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrStaleResult signale une réponse arrivée après qu'une recherche plus
// récente a été émise : elle ne doit jamais écraser des résultats plus frais.
var ErrStaleResult = errors.New("résultat de recherche périmé")

// DebounceDelay est la période de silence avant d'émettre une recherche au
// fil de la frappe.
const DebounceDelay = 300 * time.Millisecond

type searchFunc func(ctx context.Context, query string, limit int) ([]map[string]interface{}, error)

// SearchSession sérialise les recherches d'un même client : chaque requête
// reçoit un numéro de séquence monotone, la requête en vol précédente est
// annulée via son contexte, et une réponse est jetée (ErrStaleResult) si une
// requête plus récente a été émise entre-temps.
type SearchSession struct {
	mu     sync.Mutex
	seq    uint64
	cancel context.CancelFunc
	search searchFunc
}

func NewSearchSession() *SearchSession {
	return &SearchSession{search: SearchProducts}
}

// Do lance une recherche et retourne ses résultats, sauf si elle a été
// dépassée par une recherche plus récente pendant qu'elle était en vol.
func (s *SearchSession) Do(ctx context.Context, query string, limit int) ([]map[string]interface{}, error) {
	s.mu.Lock()
	s.seq++
	seq := s.seq
	if s.cancel != nil {
		s.cancel()
	}
	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.mu.Unlock()

	results, err := s.search(ctx, query, limit)

	s.mu.Lock()
	latest := seq == s.seq
	if latest {
		cancel()
		s.cancel = nil
	}
	s.mu.Unlock()

	if !latest {
		return nil, ErrStaleResult
	}
	return results, err
}

// Debouncer retarde une action jusqu'à une période de silence depuis le
// dernier déclenchement, pour éviter une requête par frappe.
type Debouncer struct {
	mu    sync.Mutex
	delay time.Duration
	timer *time.Timer
}

func NewDebouncer(delay time.Duration) *Debouncer {
	if delay <= 0 {
		delay = DebounceDelay
	}
	return &Debouncer{delay: delay}
}

// Trigger (re)arme le délai ; seule la dernière action déclenchée s'exécute.
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, fn)
}

// Stop annule l'action en attente, s'il y en a une.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
