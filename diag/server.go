// Package diag provides read-only introspection for a routing engine:
// an ASCII-grid route viewer and an HTTP dashboard serving the live
// constraints grid as JSON, grounded on monitoring/monitor.go's use of
// gorilla/mux + syifan/goseth + pkg/browser to expose a live component
// graph.
package diag

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"runtime/pprof"
	"time"

	"github.com/aie-routing/routectl/routing"
	"github.com/google/pprof/profile"
	"github.com/gorilla/mux"
	"github.com/pkg/browser"
	"github.com/syifan/goseth"
)

// Server is a read-only HTTP dashboard over a routing.Instance.
type Server struct {
	inst   *routing.Instance
	router *mux.Router
	logger *log.Logger
}

// NewServer builds a Server bound to inst. logger may be nil.
func NewServer(inst *routing.Instance, logger *log.Logger) *Server {
	if logger == nil {
		logger = inst.Logger()
	}

	s := &Server{inst: inst, router: mux.NewRouter(), logger: logger}

	s.router.HandleFunc("/constraints", s.handleConstraints).Methods(http.MethodGet)
	s.router.HandleFunc("/tile/{col}/{row}", s.handleTile).Methods(http.MethodGet)
	s.router.HandleFunc("/state", s.handleState).Methods(http.MethodGet)
	s.router.HandleFunc("/profile", s.handleProfile).Methods(http.MethodGet)

	return s
}

// ServeHTTP makes Server an http.Handler directly, so callers can
// mount it under their own mux or drive it from httptest without a
// real listener.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe starts the dashboard on addr and blocks.
func (s *Server) ListenAndServe(addr string) error {
	s.logger.Printf("diag: dashboard listening on %s", addr)
	return http.ListenAndServe(addr, s.router)
}

// Open starts the dashboard on addr in the background and opens it in
// the local browser via github.com/pkg/browser, matching daisen's use
// of the same package to launch its waveform viewer.
func (s *Server) Open(addr string) error {
	go func() {
		if err := s.ListenAndServe(addr); err != nil {
			s.logger.Printf("diag: dashboard stopped: %v", err)
		}
	}()
	return browser.OpenURL(fmt.Sprintf("http://%s/constraints", addr))
}

func (s *Server) handleConstraints(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(s.inst.DumpConstraintsJSON()); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (s *Server) handleTile(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	var col, row int
	if _, err := fmt.Sscanf(vars["col"], "%d", &col); err != nil {
		http.Error(w, "bad col", http.StatusBadRequest)
		return
	}
	if _, err := fmt.Sscanf(vars["row"], "%d", &row); err != nil {
		http.Error(w, "bad row", http.StatusBadRequest)
		return
	}

	dump, err := s.inst.DumpTileConstraintJSON(routing.TileLoc{Col: col, Row: row})
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(dump)
}

// handleState serializes the instance's object graph with goseth,
// with the maximum depth set to 2, the same depth-limited dump
// monitoring/monitor.go exposes for a live simulation's component
// tree.
func (s *Server) handleState(w http.ResponseWriter, _ *http.Request) {
	serializer := goseth.NewSerializer()
	serializer.SetRoot(s.inst)
	serializer.SetMaxDepth(2)

	w.Header().Set("Content-Type", "application/json")
	if err := serializer.Serialize(w); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// handleProfile samples a one-second CPU profile and returns it as
// JSON, grounded on monitoring/monitor.go's collectProfile: capture
// with runtime/pprof, then decode the result with
// github.com/google/pprof/profile so callers get a JSON document
// instead of the raw pprof wire format.
func (s *Server) handleProfile(w http.ResponseWriter, _ *http.Request) {
	buf := bytes.NewBuffer(nil)

	if err := pprof.StartCPUProfile(buf); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	time.Sleep(time.Second)
	pprof.StopCPUProfile()

	prof, err := profile.ParseData(buf.Bytes())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(prof); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
