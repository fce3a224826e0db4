package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/baditaflorin/l"
	"github.com/valyala/fasthttp"

	namesimilarity "github.com/textmatch/go_name_similarity"
)

// Default configuration
const (
	DefaultPort           = 8080
	DefaultReadTimeout    = 30 * time.Second
	DefaultWriteTimeout   = 30 * time.Second
	DefaultMaxRequestSize = 1 * 1024 * 1024 // 1MB; requests carry two strings
)

var (
	// Shared comparator instance; safe for concurrent requests.
	matcher *namesimilarity.NameSimilarity

	// Logger instance
	logger l.Logger

	// Transport-owned shutdown trigger for POST /shutdown.
	shutdownOnce sync.Once
	shutdownCh   = make(chan struct{})
)

// Request represents a comparison request.
type Request struct {
	String1 string `json:"string1"`
	String2 string `json:"string2"`
}

// Study carries every metric of the comparison bundle.
type Study struct {
	Normalized1        string  `json:"normalized1"`
	Normalized2        string  `json:"normalized2"`
	Original1          string  `json:"original1"`
	Original2          string  `json:"original2"`
	Phonetic           string  `json:"phonetic"`
	Ratio              float64 `json:"ratio"`
	DamerauLevenshtein float64 `json:"damerau_levenshtein"`
	JaroWinkler        float64 `json:"jaro_winkler"`
	WeightedSimilarity float64 `json:"weighted_similarity"`
	QuickSimilarity    float64 `json:"quick_similarity"`
	MetaScore          float64 `json:"meta_score"`
	OriginalSimilarity float64 `json:"original_similarity"`
}

// Response represents a comparison response.
type Response struct {
	Study             Study   `json:"study"`
	ComparisonSummary string  `json:"comparison_summary"`
	FinalScore        float64 `json:"final_score"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

func main() {
	port := flag.Int("port", DefaultPort, "HTTP server port")
	readTimeout := flag.Duration("read-timeout", DefaultReadTimeout, "HTTP read timeout")
	writeTimeout := flag.Duration("write-timeout", DefaultWriteTimeout, "HTTP write timeout")
	maxRequestSize := flag.Int("max-request-size", DefaultMaxRequestSize, "Maximum request size in bytes")
	warmUp := flag.Bool("warm-up", true, "Perform system warm-up on startup")
	logFile := flag.String("log-file", "", "Log file path (empty = stdout)")
	flag.Parse()

	var err error
	logger, err = createLogger(*logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Close()

	logger.Info("Starting name similarity HTTP server",
		"port", *port,
		"read_timeout", *readTimeout,
		"write_timeout", *writeTimeout,
		"max_request_size", *maxRequestSize,
	)

	initMatcher(*warmUp)

	server := &fasthttp.Server{
		Handler:            requestHandler,
		ReadTimeout:        *readTimeout,
		WriteTimeout:       *writeTimeout,
		MaxRequestBodySize: *maxRequestSize,
		DisableKeepalive:   false,
		TCPKeepalive:       true,
		TCPKeepalivePeriod: 3 * time.Minute,
	}

	// Graceful shutdown on SIGINT/SIGTERM or POST /shutdown.
	idleConnsClosed := make(chan struct{})
	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, os.Interrupt, syscall.SIGTERM)
		select {
		case <-sigint:
		case <-shutdownCh:
		}

		logger.Info("Shutting down server...")
		if err := server.Shutdown(); err != nil {
			logger.Error("Error during server shutdown", "error", err)
		}
		close(idleConnsClosed)
	}()

	logger.Info("Server listening", "address", fmt.Sprintf(":%d", *port))
	if err := server.ListenAndServe(fmt.Sprintf(":%d", *port)); err != nil {
		logger.Error("Server error", "error", err)
	}

	<-idleConnsClosed
	logger.Info("Server stopped")
}

// initMatcher initializes the shared comparator.
func initMatcher(warmUp bool) {
	opts := []namesimilarity.Option{
		namesimilarity.WithLogger(logger),
	}
	if warmUp {
		opts = append(opts, namesimilarity.WithWarmUp(true))
	}

	var err error
	matcher, err = namesimilarity.New(opts...)
	if err != nil {
		logger.Error("Failed to initialize name similarity", "error", err)
		os.Exit(1)
	}

	logger.Info("Name similarity comparator initialized", "warm_up", warmUp)
}

// requestHandler is the main fasthttp request handler.
func requestHandler(ctx *fasthttp.RequestCtx) {
	startTime := time.Now()

	ctx.Response.Header.Set("Content-Type", "application/json")
	ctx.Response.Header.Set("Server", "NameSimilarityServer")

	switch string(ctx.Path()) {
	case "/":
		handleUsage(ctx)
	case "/match":
		handleMatch(ctx)
	case "/health":
		handleHealthCheck(ctx)
	case "/shutdown":
		handleShutdown(ctx)
	case "/favicon.ico":
		ctx.SetStatusCode(fasthttp.StatusNoContent)
	default:
		ctx.SetStatusCode(fasthttp.StatusNotFound)
		writeJSONError(ctx, "Not found")
	}

	duration := time.Since(startTime)
	logger.Info("Request processed",
		"method", string(ctx.Method()),
		"path", string(ctx.Path()),
		"status", ctx.Response.StatusCode(),
		"ip", ctx.RemoteIP().String(),
		"duration", duration,
	)
}

// handleUsage describes the service.
func handleUsage(ctx *fasthttp.RequestCtx) {
	ctx.SetStatusCode(fasthttp.StatusOK)
	response := map[string]interface{}{
		"message":   "Program to intelligently compare two strings and output the similarity percent between those two",
		"/match":    "POST JSON -> 'string1': str, 'string2': str",
		"/shutdown": "POST query to kill the procedure",
	}
	writeJSONResponse(ctx, response)
}

// handleHealthCheck responds to health check requests.
func handleHealthCheck(ctx *fasthttp.RequestCtx) {
	ctx.SetStatusCode(fasthttp.StatusOK)
	response := map[string]interface{}{
		"status": "ok",
		"time":   time.Now().Format(time.RFC3339),
	}
	writeJSONResponse(ctx, response)
}

// handleMatch handles comparison requests.
func handleMatch(ctx *fasthttp.RequestCtx) {
	if !ctx.IsPost() {
		ctx.SetStatusCode(fasthttp.StatusMethodNotAllowed)
		writeJSONError(ctx, "Method not allowed")
		return
	}

	var req Request
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		ctx.SetStatusCode(fasthttp.StatusBadRequest)
		writeJSONError(ctx, "Invalid request: "+err.Error())
		return
	}

	// Empty strings are legal inputs to the core.
	c, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	result := matcher.Compare(c, req.String1, req.String2)

	response := Response{
		Study: Study{
			Normalized1:        result.Normalized1,
			Normalized2:        result.Normalized2,
			Original1:          result.Original1,
			Original2:          result.Original2,
			Phonetic:           result.Phonetic.String(),
			Ratio:              result.Ratio,
			DamerauLevenshtein: result.DamerauLevenshtein,
			JaroWinkler:        result.JaroWinkler,
			WeightedSimilarity: result.WeightedSimilarity,
			QuickSimilarity:    result.QuickSimilarity,
			MetaScore:          result.MetaScore,
			OriginalSimilarity: result.OriginalSimilarity,
		},
		ComparisonSummary: result.Summary,
		FinalScore:        result.FinalScore,
	}

	ctx.SetStatusCode(fasthttp.StatusOK)
	writeJSONResponse(ctx, response)
}

// handleShutdown triggers a graceful stop of the process. The scoring core
// never terminates anything itself; this is transport-owned.
func handleShutdown(ctx *fasthttp.RequestCtx) {
	if !ctx.IsPost() {
		ctx.SetStatusCode(fasthttp.StatusMethodNotAllowed)
		writeJSONError(ctx, "Method not allowed")
		return
	}

	shutdownOnce.Do(func() {
		close(shutdownCh)
	})

	ctx.SetStatusCode(fasthttp.StatusOK)
	writeJSONResponse(ctx, map[string]interface{}{
		"message": "Server shutting down...",
	})
}

// Helper functions

// writeJSONResponse writes a JSON response to the context.
func writeJSONResponse(ctx *fasthttp.RequestCtx, data interface{}) {
	response, err := json.Marshal(data)
	if err != nil {
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
		logger.Error("Error marshaling JSON response", "error", err)
		writeJSONError(ctx, "Internal server error")
		return
	}

	ctx.SetBody(response)
}

// writeJSONError writes a JSON error response to the context.
func writeJSONError(ctx *fasthttp.RequestCtx, message string) {
	errResponse := ErrorResponse{
		Error: message,
	}

	response, err := json.Marshal(errResponse)
	if err != nil {
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
		logger.Error("Error marshaling JSON error response", "error", err)
		ctx.SetBodyString(`{"error":"Internal server error"}`)
		return
	}

	ctx.SetBody(response)
}

// createLogger creates and configures a logger.
func createLogger(logFile string) (l.Logger, error) {
	factory := l.NewStandardFactory()

	var output io.Writer = os.Stdout
	if logFile != "" {
		file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		output = file
	}

	logger, err := factory.CreateLogger(l.Config{
		Output:      output,
		JsonFormat:  true,
		AsyncWrite:  true,
		BufferSize:  1024 * 1024,       // 1MB
		MaxFileSize: 100 * 1024 * 1024, // 100MB
		MaxBackups:  5,
		AddSource:   true,
		Metrics:     true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	return logger, nil
}
