package server

import (
	"encoding/json"
	"net/http"
	"regexp"

	"github.com/gorilla/mux"
	"github.com/travis-g/diceroll"
)

// validQueryRegex is a coarse shape check on a dice notation query,
// rejecting anything outside the character set the grammar can ever
// accept before handing it to the parser. It exists to keep obviously
// garbage input from generating a GrammarError round-trip on every
// request; the parser itself remains the source of truth for validity.
var validQueryRegex = regexp.MustCompile(`^[0-9A-Za-z \t!<>=\^\+\-\*/\(\)\[\],\.:#]+$`)

func respondWithJSON(w http.ResponseWriter, status int, data interface{}) {
	response, err := json.Marshal(data)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(response)
}

func respondWithError(w http.ResponseWriter, code int, err string) {
	respondWithJSON(w, code, map[string]string{"error": err})
}

func isValidQuery(s string, debugMode bool) bool {
	if debugMode {
		return true
	}
	return validQueryRegex.MatchString(s)
}

type rollResponse struct {
	Query  string  `json:"query"`
	Result string  `json:"result"`
	Total  float64 `json:"total,omitempty"`
	Reason string  `json:"reason,omitempty"`
}

func solveAndRespond(w http.ResponseWriter, query string) {
	solver := diceroll.NewSolver(query)
	result, err := solver.Solve()
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	resp := rollResponse{Query: query, Result: result.String(), Reason: result.Reason}
	if single := result.AsSingle(); single != nil {
		resp.Total = single.Total
	}
	respondWithJSON(w, http.StatusOK, resp)
}

// RollHandler handles `GET /{roll}` and `GET /v1/roll/{roll}`.
func RollHandler(debugMode bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := mux.Vars(r)["roll"]
		if !isValidQuery(query, debugMode) {
			respondWithError(w, http.StatusBadRequest, "invalid dice query")
			return
		}
		solveAndRespond(w, query)
	}
}

// RollPostHandler handles `POST /v1/roll` with a JSON body of the form
// `{"roll": "2d6 + 6"}`.
func RollPostHandler(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Roll string `json:"roll"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	solveAndRespond(w, body.Roll)
}

// RootHandler handles requests to the base server.
func RootHandler(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"prompt": "You approach the server.",
	})
}

// NotFoundHandler responds 404 for unmatched routes.
func NotFoundHandler(w http.ResponseWriter, r *http.Request) {
	respondWithError(w, http.StatusNotFound, "not found")
}
