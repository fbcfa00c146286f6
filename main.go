package main

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/jsnanigans/phonefield/pkg/phonefield"
)

// EditRequest defines the structure for incoming JSON requests: one
// whole-buffer update for a session. The server derives the edit itself
// by diffing against the session's last committed buffer.
type EditRequest struct {
	Session string `json:"session"`
	Text    string `json:"text"`
}

// EditResponse is the committed state after the edit was applied.
type EditResponse struct {
	Text   string `json:"text"`
	Cursor int    `json:"cursor"`
	Valid  bool   `json:"valid"`
}

// session pairs a field with its last observed validity signal.
type session struct {
	field *phonefield.Field
	valid bool
}

var (
	// sessions stores the field state for each editing session.
	sessions = make(map[string]*session)
	// sessionsMutex protects concurrent access to sessions.
	sessionsMutex sync.Mutex
)

// getSession returns the session for id, creating it on first use.
// Callers must hold sessionsMutex.
func getSession(id string) *session {
	s, exists := sessions[id]
	if !exists {
		s = &session{}
		s.field = phonefield.NewField(phonefield.LibFormatter{}, phonefield.LibParser{}, phonefield.Config{
			Region:        "US",
			WithPrefix:    true,
			FormatEnabled: true,
		})
		s.field.OnValidityChanged = func(valid bool) { s.valid = valid }
		sessions[id] = s
	}
	return s
}

// diffEdit finds the single replacement turning oldStr into newStr by
// trimming the longest common prefix and suffix. Offsets are rune
// offsets, matching the field API.
func diffEdit(oldStr, newStr string) (start, length int, replacement string) {
	oldRunes := []rune(oldStr)
	newRunes := []rune(newStr)

	prefixLen := 0
	for prefixLen < len(oldRunes) && prefixLen < len(newRunes) && oldRunes[prefixLen] == newRunes[prefixLen] {
		prefixLen++
	}

	suffixLen := 0
	for suffixLen < len(oldRunes)-prefixLen && suffixLen < len(newRunes)-prefixLen &&
		oldRunes[len(oldRunes)-1-suffixLen] == newRunes[len(newRunes)-1-suffixLen] {
		suffixLen++
	}

	return prefixLen, len(oldRunes) - prefixLen - suffixLen, string(newRunes[prefixLen : len(newRunes)-suffixLen])
}

// editHandler handles incoming buffer updates and responds with the
// committed buffer, cursor, and validity for the session.
func editHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Only POST method is allowed", http.StatusMethodNotAllowed)
		return
	}

	var req EditRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	if req.Session == "" {
		http.Error(w, "Session cannot be empty", http.StatusBadRequest)
		return
	}

	sessionsMutex.Lock()
	s := getSession(req.Session)

	start, length, replacement := diffEdit(s.field.Text(), req.Text)
	if length > 0 || replacement != "" {
		// Place the cursor at the end of the replaced range, where a
		// typing or backspacing cursor sits right before the edit.
		s.field.SetCursor(start + length)
		accepted := s.field.ApplyEdit(start, length, replacement)
		log.Printf("DEBUG: session %s edit [%d,+%d) -> %q accepted=%v", req.Session, start, length, replacement, accepted)
	} else {
		log.Printf("DEBUG: no change detected for session %s", req.Session)
	}

	resp := EditResponse{Text: s.field.Text(), Cursor: s.field.Cursor(), Valid: s.valid}
	sessionsMutex.Unlock()

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Printf("WARN: failed to encode response for session %s: %v", req.Session, err)
	}
}

func main() {
	http.HandleFunc("/edit", editHandler)

	port := "8080"
	log.Printf("Starting server on localhost:%s", port)
	log.Fatal(http.ListenAndServe(":"+port, nil))
}
