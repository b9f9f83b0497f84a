// Command quickmatch-server exposes a quickmatch.Engine over HTTP: the
// kind of wire protocol the engine itself deliberately has none of
// (spec §6), built here as a consumer on top of the library.
package main

import (
	"flag"
	"fmt"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/avalonix/quickmatch"
	"github.com/avalonix/quickmatch/internal/corpus"
	"github.com/avalonix/quickmatch/internal/logging"
	"github.com/avalonix/quickmatch/internal/suggest"
)

var (
	configPath = flag.String("config", "", "YAML config file with corpus items and tuning")
	corpusPath = flag.String("corpus", "", "corpus file, overrides config's corpus")
	addr       = flag.String("addr", ":8080", "listen address")
	logLevel   = flag.String("log-level", "info", "trace, debug, info, warn, error")
)

// server holds the live engine and the suggestion matcher behind atomic
// pointers, so reload can swap both in without locking readers. reload
// rebuilds unconditionally; it does not compare corpus fingerprints.
type server struct {
	cfg    *corpus.Config
	engine atomic.Pointer[quickmatch.Engine]
	sugg   atomic.Pointer[suggest.Matcher]
}

func newServer(cfg *corpus.Config) (*server, error) {
	s := &server{cfg: cfg}
	if err := s.reload(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *server) reload() error {
	items, err := s.cfg.Load()
	if err != nil {
		return fmt.Errorf("loading corpus: %w", err)
	}

	buildCfg := s.cfg.BuildConfig()
	s.engine.Store(quickmatch.Build(items, &buildCfg))
	s.sugg.Store(suggest.NewMatcher(items, suggest.DefaultThreshold))
	return nil
}

func main() {
	flag.Parse()

	log := logging.NewJSON(logging.ParseLevel(*logLevel))

	cfg := &corpus.Config{}
	if *configPath != "" {
		loaded, err := corpus.LoadConfig(*configPath)
		if err != nil {
			log.Fatal().Err(err).Msg("loading config")
		}
		cfg = loaded
	}
	if *corpusPath != "" {
		cfg.CorpusFile = *corpusPath
		cfg.Items = nil
	}

	srv, err := newServer(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("building engine")
	}
	log.Info().
		Int("items", srv.engine.Load().Len()).
		Uint64("fingerprint", srv.engine.Load().Fingerprint()).
		Msg("corpus indexed")

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestLogger(log))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "items": srv.engine.Load().Len()})
	})

	r.GET("/query", func(c *gin.Context) {
		handleQuery(c, srv)
	})

	log.Info().Str("addr", *addr).Msg("listening")
	if err := r.Run(*addr); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

type queryResponse struct {
	Results     []string `json:"results"`
	Suggestions []string `json:"suggestions,omitempty"`
}

func handleQuery(c *gin.Context, srv *server) {
	q := c.Query("q")
	if q == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing q parameter"})
		return
	}

	engine := srv.engine.Load()
	results := engine.Query(q)

	resp := queryResponse{Results: results}
	if len(results) == 0 {
		matches := srv.sugg.Load().Suggest(q, 3)
		for _, m := range matches {
			resp.Suggestions = append(resp.Suggestions, m.Item)
		}
	}

	c.JSON(http.StatusOK, resp)
}

// requestLogger stamps every request with a correlation ID and logs its
// latency, mirroring the request-middleware shape used across the
// reference stack's gRPC/HTTP servers.
func requestLogger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := uuid.NewString()
		c.Set("request_id", requestID)
		c.Writer.Header().Set("X-Request-Id", requestID)

		start := time.Now()
		c.Next()

		log.Info().
			Str("request_id", requestID).
			Str("path", c.Request.URL.Path).
			Dur("latency", time.Since(start)).
			Int("status", c.Writer.Status()).
			Msg("request handled")
	}
}
