package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/ccollicutt/recipemd/pkg/importer"
	"github.com/ccollicutt/recipemd/pkg/recipemd"
	"github.com/ccollicutt/recipemd/pkg/source"
)

// requestDocument is the source name used for request bodies.
const requestDocument = "request"

// ParseResponse is the body returned by POST /v1/parse.
type ParseResponse struct {
	Recipes  []recipemd.ParsedRecipe `json:"recipes"`
	Rejected []importer.Rejected     `json:"rejected"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	doc, ok := s.readDocument(w, r)
	if !ok {
		return
	}

	dr := importer.ImportDocument(doc)
	status := http.StatusOK
	if len(dr.Recipes) == 0 {
		status = http.StatusUnprocessableEntity
	}
	s.writeJSON(w, status, ParseResponse{Recipes: dr.Recipes, Rejected: dr.Rejected})
}

func (s *Server) handleFormat(w http.ResponseWriter, r *http.Request) {
	doc, ok := s.readDocument(w, r)
	if !ok {
		return
	}

	recipes := recipemd.ParseDocument(doc.Text)
	if len(recipes) == 0 {
		s.writeError(w, http.StatusUnprocessableEntity, importer.ErrNoRecipes.Error())
		return
	}
	s.writeText(w, http.StatusOK, recipemd.SerializeAll(recipes))
}

func (s *Server) handleSerialize(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		s.writeReadError(w, err)
		return
	}

	recipes, err := decodeRecipes(body)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	for i, recipe := range recipes {
		if err := recipe.Validate(); err != nil {
			s.writeError(w, http.StatusUnprocessableEntity, fmt.Sprintf("recipe %d: %v", i, err))
			return
		}
	}
	s.writeText(w, http.StatusOK, recipemd.SerializeAll(recipes))
}

// decodeRecipes accepts a single recipe object or an array of them.
func decodeRecipes(body []byte) ([]recipemd.ParsedRecipe, error) {
	trimmed := strings.TrimSpace(string(body))
	if trimmed == "" {
		return nil, errors.New("empty request body")
	}

	if strings.HasPrefix(trimmed, "[") {
		var recipes []recipemd.ParsedRecipe
		if err := json.Unmarshal(body, &recipes); err != nil {
			return nil, errors.New("invalid recipe list: " + err.Error())
		}
		if len(recipes) == 0 {
			return nil, errors.New("empty recipe list")
		}
		return recipes, nil
	}

	var recipe recipemd.ParsedRecipe
	if err := json.Unmarshal(body, &recipe); err != nil {
		return nil, errors.New("invalid recipe: " + err.Error())
	}
	return []recipemd.ParsedRecipe{recipe}, nil
}

func (s *Server) readDocument(w http.ResponseWriter, r *http.Request) (*source.Document, bool) {
	doc, err := source.NewReaderSource(requestDocument, r.Body).Next(r.Context())
	if err != nil {
		s.writeReadError(w, err)
		return nil, false
	}
	return doc, true
}

func (s *Server) writeReadError(w http.ResponseWriter, err error) {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		s.writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
		return
	}
	s.writeError(w, http.StatusBadRequest, "reading request body: "+err.Error())
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Warn("write error", zap.Error(err))
	}
}

func (s *Server) writeText(w http.ResponseWriter, status int, text string) {
	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	w.WriteHeader(status)
	if _, err := io.WriteString(w, text); err != nil {
		s.log.Warn("write error", zap.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, errorResponse{Error: msg})
}
