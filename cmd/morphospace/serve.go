package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"sync"

	"github.com/rs/cors"
	"github.com/spf13/cobra"

	"github.com/ttm-morphology/morphospace"
	"github.com/ttm-morphology/morphospace/analyzer"
	"github.com/ttm-morphology/morphospace/store"
)

// ---- JSON response types ------------------------------------------------

type parseResponse struct {
	Morpheme morphospace.Morpheme `json:"morpheme"`
}

type coordsJSON struct {
	X int `json:"x"`
	Y int `json:"y"`
	Z int `json:"z"`
}

type neighborJSON struct {
	Morpheme morphospace.Morpheme `json:"morpheme"`
	Distance float64              `json:"distance"`
}

type nearestResponse struct {
	Form      string         `json:"form"`
	K         int            `json:"k"`
	Neighbors []neighborJSON `json:"neighbors"`
}

type rangeResponse struct {
	Center  coordsJSON             `json:"center"`
	Radius  float64                `json:"radius"`
	Count   int                    `json:"count"`
	Members []morphospace.Morpheme `json:"members"`
}

type addRequest struct {
	Morphemes []morphospace.Morpheme `json:"morphemes"`
}

type addResponse struct {
	Added int      `json:"added"`
	IDs   []string `json:"ids,omitempty"`
}

type languagesResponse struct {
	Languages map[string]string `json:"languages"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// ---- helpers ------------------------------------------------------------

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode error: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// ---- server state -------------------------------------------------------

// server holds the shared space behind a lock: MorphemeSpace is not
// safe for concurrent use, so queries take a read lock and adds a
// write lock.
type server struct {
	mu        sync.RWMutex
	space     *morphospace.MorphemeSpace
	analyzers map[morphospace.Language]analyzer.Analyzer
	db        *store.SQLite
}

func (s *server) analyzer(code string) (analyzer.Analyzer, error) {
	lang, err := morphospace.ParseLanguage(code)
	if err != nil {
		return nil, err
	}
	a, ok := s.analyzers[lang]
	if !ok {
		return nil, fmt.Errorf("%w: %s", analyzer.ErrUnsupported, lang)
	}
	return a, nil
}

// ---- handlers -----------------------------------------------------------

func handleParse(srv *server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		form := r.URL.Query().Get("form")
		if form == "" {
			writeError(w, http.StatusBadRequest, "missing 'form' query parameter")
			return
		}
		a, err := srv.analyzer(r.URL.Query().Get("lang"))
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		if context := r.URL.Query().Get("context"); context != "" {
			form = a.Disambiguate(form, context)
		}

		m, err := a.ParseMorpheme(form)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, parseResponse{Morpheme: m})
	}
}

func handleRootFamily(srv *server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		root := r.URL.Query().Get("root")
		if root == "" {
			writeError(w, http.StatusBadRequest, "missing 'root' query parameter")
			return
		}
		a, err := srv.analyzer(r.URL.Query().Get("lang"))
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		family, err := a.AnalyzeRoot(root)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		status := http.StatusOK
		members := family.Morphemes()
		if len(members) == 0 {
			status = http.StatusNotFound
			members = []morphospace.Morpheme{}
		}
		writeJSON(w, status, familyJSON{
			Root:     family.Root(),
			Language: family.Language().Code(),
			Count:    family.Len(),
			Members:  members,
		})
	}
}

func handleNearest(srv *server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		form := r.URL.Query().Get("form")
		if form == "" {
			writeError(w, http.StatusBadRequest, "missing 'form' query parameter")
			return
		}
		a, err := srv.analyzer(r.URL.Query().Get("lang"))
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		k := 5
		if kq := r.URL.Query().Get("k"); kq != "" {
			if k, err = strconv.Atoi(kq); err != nil {
				writeError(w, http.StatusBadRequest, "invalid 'k' query parameter")
				return
			}
		}

		m, err := a.ParseMorpheme(form)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		srv.mu.RLock()
		neighbors := srv.space.FindNearest(m, k)
		srv.mu.RUnlock()

		out := make([]neighborJSON, 0, len(neighbors))
		for _, n := range neighbors {
			out = append(out, neighborJSON{Morpheme: n.Morpheme, Distance: n.Distance})
		}
		writeJSON(w, http.StatusOK, nearestResponse{Form: form, K: k, Neighbors: out})
	}
}

func handleRange(srv *server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		q := r.URL.Query()
		var center coordsJSON
		var err error
		if center.X, err = strconv.Atoi(q.Get("x")); err != nil {
			writeError(w, http.StatusBadRequest, "invalid 'x' query parameter")
			return
		}
		if center.Y, err = strconv.Atoi(q.Get("y")); err != nil {
			writeError(w, http.StatusBadRequest, "invalid 'y' query parameter")
			return
		}
		if center.Z, err = strconv.Atoi(q.Get("z")); err != nil {
			writeError(w, http.StatusBadRequest, "invalid 'z' query parameter")
			return
		}
		radius, err := strconv.ParseFloat(q.Get("radius"), 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid 'radius' query parameter")
			return
		}
		sorted, _ := strconv.ParseBool(q.Get("sorted"))

		c := morphospace.Coordinates{X: center.X, Y: center.Y, Z: center.Z}
		srv.mu.RLock()
		var members []morphospace.Morpheme
		if sorted {
			members = srv.space.InRangeByDistance(c, radius)
		} else {
			members = srv.space.InRange(c, radius)
		}
		srv.mu.RUnlock()
		if members == nil {
			members = []morphospace.Morpheme{}
		}

		writeJSON(w, http.StatusOK, rangeResponse{
			Center:  center,
			Radius:  radius,
			Count:   len(members),
			Members: members,
		})
	}
}

func handleStats(srv *server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		srv.mu.RLock()
		st := srv.space.Stats()
		srv.mu.RUnlock()
		writeJSON(w, http.StatusOK, toStatsJSON(st))
	}
}

func handleLanguages(srv *server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		languages := make(map[string]string, len(srv.analyzers))
		for lang := range srv.analyzers {
			languages[lang.Code()] = lang.String()
		}
		writeJSON(w, http.StatusOK, languagesResponse{Languages: languages})
	}
}

func handleAddMorphemes(srv *server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "POST required")
			return
		}
		var body addRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		if len(body.Morphemes) == 0 {
			writeError(w, http.StatusBadRequest, "body must be JSON with a non-empty 'morphemes' array")
			return
		}
		for _, m := range body.Morphemes {
			if err := m.Validate(); err != nil {
				writeError(w, http.StatusBadRequest, err.Error())
				return
			}
		}

		var ids []string
		if srv.db != nil {
			var err error
			ids, err = srv.db.PutBatch(r.Context(), body.Morphemes)
			if err != nil {
				writeError(w, http.StatusInternalServerError, err.Error())
				return
			}
		}

		srv.mu.Lock()
		for _, m := range body.Morphemes {
			if err := srv.space.Add(m); err != nil {
				srv.mu.Unlock()
				writeError(w, http.StatusInternalServerError, err.Error())
				return
			}
		}
		srv.mu.Unlock()

		writeJSON(w, http.StatusOK, addResponse{Added: len(body.Morphemes), IDs: ids})
	}
}

// ---- command ------------------------------------------------------------

var (
	serveAddr       string
	serveOrigins    []string
	serveConfigPath string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the morpheme space as a JSON REST API",
	Long: `Serve exposes analysis and spatial queries over HTTP:

	GET  /api/parse?form=<form>&lang=<code>[&context=<phrase>]
	GET  /api/root?root=<root>&lang=<code>
	GET  /api/nearest?form=<form>&lang=<code>[&k=5]
	GET  /api/range?x=<x>&y=<y>&z=<z>&radius=<r>[&sorted=true]
	GET  /api/stats
	GET  /api/languages
	POST /api/morphemes   body: {"morphemes":[...]}

With --db, the space is loaded from the database at startup and POSTed
morphemes are persisted to it.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := defaultServerConfig()
	if serveConfigPath != "" {
		var err error
		if cfg, err = loadServerConfig(serveConfigPath); err != nil {
			return err
		}
	}
	flags := cmd.Flags()
	if flags.Changed("addr") {
		cfg.Addr = serveAddr
	}
	if flags.Changed("origins") {
		cfg.AllowedOrigins = serveOrigins
	}
	if flags.Changed("db") {
		cfg.DBPath = dbPath
	}
	if flags.Changed("lexicon-dir") {
		cfg.LexiconDir = lexiconDir
	}
	if flags.Changed("strategy") {
		cfg.Strategy = strategyName
	}

	analyzers, err := newAnalyzers(cfg.LexiconDir)
	if err != nil {
		return err
	}
	st, err := morphospace.ParseStrategy(cfg.Strategy)
	if err != nil {
		return err
	}
	spaceCfg := morphospace.Config{Strategy: st}

	srv := &server{analyzers: analyzers}
	if cfg.DBPath != "" {
		db, err := store.NewSQLite(cfg.DBPath)
		if err != nil {
			return err
		}
		defer db.Close()
		srv.db = db
		if srv.space, err = store.LoadSpace(cmd.Context(), db, spaceCfg); err != nil {
			return err
		}
		log.Printf("loaded %d morphemes from %s", srv.space.Len(), cfg.DBPath)
	} else {
		if srv.space, err = morphospace.NewWithConfig(spaceCfg); err != nil {
			return err
		}
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/parse", handleParse(srv))
	mux.HandleFunc("/api/root", handleRootFamily(srv))
	mux.HandleFunc("/api/nearest", handleNearest(srv))
	mux.HandleFunc("/api/range", handleRange(srv))
	mux.HandleFunc("/api/stats", handleStats(srv))
	mux.HandleFunc("/api/languages", handleLanguages(srv))
	mux.HandleFunc("/api/morphemes", handleAddMorphemes(srv))

	c := cors.New(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type"},
	})

	log.Printf("listening on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, c.Handler(mux)); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "listen address")
	serveCmd.Flags().StringSliceVar(&serveOrigins, "origins", []string{"*"}, "allowed CORS origins")
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "YAML config file")
	rootCmd.AddCommand(serveCmd)
}
