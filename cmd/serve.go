package cmd

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rdevries/modechord/chord"
	"github.com/rdevries/modechord/model"
	"github.com/rdevries/modechord/scale"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
)

var serveAddr string

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "listen address")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the catalog over HTTP",
	Long:  `Serves the chord catalog as JSON over HTTP`,
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

func writeError(w http.ResponseWriter, code int, detail string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: detail})
}

// HandleCatalog computes the catalog for a posted key/mode/sizes request.
// Exported so the end-to-end tests can hit it without a listener.
func HandleCatalog(w http.ResponseWriter, r *http.Request) {
	var input model.CatalogRequestBody
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "could not parse request body: "+err.Error())
		return
	}

	sizes := input.Sizes
	if len(sizes) == 0 {
		sizes = []int{3, 4}
	}

	modeScale, _, err := scale.Resolve(input.Key, input.Mode)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	catalog, err := chord.Enumerate(input.Key, input.Mode, sizes)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(model.CatalogResponse{
		Key:     input.Key,
		Mode:    input.Mode,
		Scale:   modeScale,
		Catalog: catalog,
	})
}

func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.New().String()
		log.Printf("%v %v %v", id, r.Method, r.URL.Path)
		w.Header().Set("X-Request-Id", id)
		next.ServeHTTP(w, r)
	})
}

func serve() {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/catalog", HandleCatalog).Methods("POST")
	router.Use(requestID)

	log.Printf("listening on %v", serveAddr)
	log.Fatal(http.ListenAndServe(serveAddr, cors.Default().Handler(router)))
}
