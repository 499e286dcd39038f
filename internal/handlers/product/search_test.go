package product

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetSearchSessions() {
	searchSessionsMu.Lock()
	searchSessions = make(map[string]*clientSearchSession)
	searchSessionsMu.Unlock()
}

func TestSessionForReusesClientSession(t *testing.T) {
	resetSearchSessions()

	first := sessionFor("client-1")
	assert.Same(t, first, sessionFor("client-1"))
	assert.NotSame(t, first, sessionFor("client-2"))
}

// La table des sessions reste bornée : un client par visiteur, pour toujours,
// serait une fuite mémoire lente.
func TestSessionTableEvictsOldestWhenFull(t *testing.T) {
	resetSearchSessions()

	for i := 0; i < maxSearchSessions; i++ {
		sessionFor(fmt.Sprintf("client-%d", i))
	}

	// client-0 est le plus ancien, client-1 vient d'être revu.
	searchSessionsMu.Lock()
	searchSessions["client-0"].lastSeen = time.Now().Add(-time.Hour)
	searchSessionsMu.Unlock()
	kept := sessionFor("client-1")

	sessionFor("client-new")

	searchSessionsMu.Lock()
	defer searchSessionsMu.Unlock()
	require.LessOrEqual(t, len(searchSessions), maxSearchSessions)
	assert.NotContains(t, searchSessions, "client-0")
	assert.Contains(t, searchSessions, "client-new")
	assert.Same(t, kept, searchSessions["client-1"].session)
}
