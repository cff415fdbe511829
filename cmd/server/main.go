package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/baditaflorin/l"
	"github.com/valyala/fasthttp"

	"github.com/baditaflorin/go_comment_cleaner/internal/core/domain"
	"github.com/baditaflorin/go_comment_cleaner/pkg/batch"
	"github.com/baditaflorin/go_comment_cleaner/pkg/cleaner"
)

// Default configuration
const (
	DefaultPort           = 8080
	DefaultReadTimeout    = 30 * time.Second
	DefaultWriteTimeout   = 30 * time.Second
	DefaultMaxRequestSize = 10 * 1024 * 1024 // 10MB
	DefaultConcurrency    = 0                // 0 means use GOMAXPROCS
)

var (
	// Default cleaner, shared by /clean and /compare
	defaultCleaner *cleaner.Cleaner

	// Cleaner that keeps the original casing
	preserveCaseCleaner *cleaner.Cleaner

	// Batch processor for /batch
	batchProcessor *batch.Processor

	// Logger instance
	logger l.Logger
)

// CleanRequest represents a single-comment cleaning request
type CleanRequest struct {
	Text         string `json:"text"`
	PreserveCase bool   `json:"preserve_case,omitempty"`
	Trace        bool   `json:"trace,omitempty"`
}

// CompareRequest represents a metrics-only request over an existing pair
type CompareRequest struct {
	Original string `json:"original"`
	Cleaned  string `json:"cleaned"`
}

// BatchRequest represents a batch cleaning request
type BatchRequest struct {
	Rows []string `json:"rows"`
}

// MetricsResponse mirrors domain.Metrics on the wire
type MetricsResponse struct {
	OriginalWords  int     `json:"original_words"`
	CleanedWords   int     `json:"cleaned_words"`
	WordsRemoved   int     `json:"words_removed"`
	ReductionRatio float64 `json:"reduction_ratio"`
}

// StageTraceResponse is one entry of a per-stage trace
type StageTraceResponse struct {
	Stage  string `json:"stage"`
	Output string `json:"output"`
}

// CleanResponse represents a single-comment cleaning response
type CleanResponse struct {
	Original string               `json:"original"`
	Cleaned  string               `json:"cleaned"`
	Success  bool                 `json:"success"`
	Metrics  MetricsResponse      `json:"metrics"`
	Trace    []StageTraceResponse `json:"trace,omitempty"`
}

// RecordResponse is one cleaned row of a batch response
type RecordResponse struct {
	ID       string          `json:"id"`
	Original string          `json:"original"`
	Cleaned  string          `json:"cleaned"`
	Success  bool            `json:"success"`
	Metrics  MetricsResponse `json:"metrics"`
}

// SummaryResponse is the batch-level aggregate
type SummaryResponse struct {
	TotalComments         int     `json:"total_comments"`
	Succeeded             int     `json:"succeeded"`
	Failed                int     `json:"failed"`
	TotalOriginalWords    int     `json:"total_original_words"`
	TotalCleanedWords     int     `json:"total_cleaned_words"`
	TotalWordsRemoved     int     `json:"total_words_removed"`
	AverageReductionRatio float64 `json:"average_reduction_ratio"`
}

// BatchResponse represents a batch cleaning response
type BatchResponse struct {
	Records []RecordResponse `json:"records"`
	Summary SummaryResponse  `json:"summary"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

func main() {
	// Parse command-line flags
	port := flag.Int("port", DefaultPort, "HTTP server port")
	readTimeout := flag.Duration("read-timeout", DefaultReadTimeout, "HTTP read timeout")
	writeTimeout := flag.Duration("write-timeout", DefaultWriteTimeout, "HTTP write timeout")
	maxRequestSize := flag.Int("max-request-size", DefaultMaxRequestSize, "Maximum request size in bytes")
	concurrency := flag.Int("concurrency", DefaultConcurrency, "Maximum number of concurrent requests (0 = GOMAXPROCS)")
	warmUp := flag.Bool("warm-up", true, "Perform system warm-up on startup")
	lexiconFile := flag.String("lexicon", "", "Lexicon YAML file (empty = embedded default)")
	logFile := flag.String("log-file", "", "Log file path (empty = stdout)")
	flag.Parse()

	// Set up logger
	var err error
	logger, err = createLogger(*logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Close()

	logger.Info("Starting comment cleaning HTTP server",
		"port", *port,
		"read_timeout", *readTimeout,
		"write_timeout", *writeTimeout,
		"max_request_size", *maxRequestSize,
		"concurrency", *concurrency,
	)

	// A broken lexicon is a configuration error: refuse to serve.
	initCleaners(*lexiconFile, *warmUp)

	// Create HTTP server with fasthttp
	server := &fasthttp.Server{
		Handler:               requestHandler,
		ReadTimeout:           *readTimeout,
		WriteTimeout:          *writeTimeout,
		MaxRequestBodySize:    *maxRequestSize,
		Concurrency:           *concurrency,
		DisableKeepalive:      false,
		TCPKeepalive:          true,
		TCPKeepalivePeriod:    3 * time.Minute,
		MaxIdleWorkerDuration: 10 * time.Second,
		Logger:                nil, // we handle logging ourselves
	}

	// Set up graceful shutdown
	idleConnsClosed := make(chan struct{})
	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, os.Interrupt, syscall.SIGTERM)
		<-sigint

		logger.Info("Shutting down server...")
		if err := server.Shutdown(); err != nil {
			logger.Error("Error during server shutdown", "error", err)
		}
		close(idleConnsClosed)
	}()

	// Start server
	logger.Info("Server listening", "address", fmt.Sprintf(":%d", *port))
	if err := server.ListenAndServe(fmt.Sprintf(":%d", *port)); err != nil {
		logger.Error("Server error", "error", err)
	}

	<-idleConnsClosed
	logger.Info("Server stopped")
}

// initCleaners builds the cleaners and the batch processor, exiting on any
// configuration error.
func initCleaners(lexiconFile string, warmUp bool) {
	opts := []cleaner.Option{cleaner.WithLogger(logger)}
	if lexiconFile != "" {
		opts = append(opts, cleaner.WithLexiconFile(lexiconFile))
	}
	if warmUp {
		opts = append(opts, cleaner.WithWarmUp(true))
	}

	var err error
	defaultCleaner, err = cleaner.New(opts...)
	if err != nil {
		logger.Error("Failed to initialize cleaner", "error", err)
		os.Exit(1)
	}

	pcOpts := append([]cleaner.Option{}, opts...)
	pcOpts = append(pcOpts, cleaner.WithPreserveCase())
	preserveCaseCleaner, err = cleaner.New(pcOpts...)
	if err != nil {
		logger.Error("Failed to initialize preserve-case cleaner", "error", err)
		os.Exit(1)
	}

	batchProcessor, err = batch.New(
		batch.WithLogger(logger),
		batch.WithCleanerOptions(opts...),
	)
	if err != nil {
		logger.Error("Failed to initialize batch processor", "error", err)
		os.Exit(1)
	}

	logger.Info("Cleaning pipeline initialized", "warm_up", warmUp)
}

// requestHandler is the main fasthttp request handler
func requestHandler(ctx *fasthttp.RequestCtx) {
	startTime := time.Now()

	ctx.Response.Header.Set("Content-Type", "application/json")
	ctx.Response.Header.Set("Server", "CommentCleanerServer")

	switch string(ctx.Path()) {
	case "/health":
		handleHealthCheck(ctx)
	case "/clean":
		handleClean(ctx)
	case "/compare":
		handleCompare(ctx)
	case "/batch":
		handleBatch(ctx)
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

// handleHealthCheck responds to health check requests
func handleHealthCheck(ctx *fasthttp.RequestCtx) {
	ctx.SetStatusCode(fasthttp.StatusOK)
	response := map[string]interface{}{
		"status": "ok",
		"time":   time.Now().Format(time.RFC3339),
	}
	writeJSONResponse(ctx, response)
}

// handleClean cleans a single comment
func handleClean(ctx *fasthttp.RequestCtx) {
	if !ctx.IsPost() {
		ctx.SetStatusCode(fasthttp.StatusMethodNotAllowed)
		writeJSONError(ctx, "Method not allowed")
		return
	}

	var req CleanRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		ctx.SetStatusCode(fasthttp.StatusBadRequest)
		writeJSONError(ctx, "Invalid request: "+err.Error())
		return
	}

	// An empty text is valid input and degrades to empty cleaned output.
	c := defaultCleaner
	if req.PreserveCase {
		c = preserveCaseCleaner
	}

	reqCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	response := CleanResponse{}
	if req.Trace {
		result, trace := c.CleanWithTrace(reqCtx, req.Text)
		response = toCleanResponse(result)
		for _, t := range trace {
			response.Trace = append(response.Trace, StageTraceResponse{Stage: t.Stage, Output: t.Output})
		}
	} else {
		response = toCleanResponse(c.Clean(reqCtx, req.Text))
	}

	ctx.SetStatusCode(fasthttp.StatusOK)
	writeJSONResponse(ctx, response)
}

// handleCompare computes metrics over an already-cleaned pair
func handleCompare(ctx *fasthttp.RequestCtx) {
	if !ctx.IsPost() {
		ctx.SetStatusCode(fasthttp.StatusMethodNotAllowed)
		writeJSONError(ctx, "Method not allowed")
		return
	}

	var req CompareRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		ctx.SetStatusCode(fasthttp.StatusBadRequest)
		writeJSONError(ctx, "Invalid request: "+err.Error())
		return
	}

	m := defaultCleaner.Compare(req.Original, req.Cleaned)
	ctx.SetStatusCode(fasthttp.StatusOK)
	writeJSONResponse(ctx, MetricsResponse{
		OriginalWords:  m.OriginalWords,
		CleanedWords:   m.CleanedWords,
		WordsRemoved:   m.WordsRemoved,
		ReductionRatio: m.ReductionRatio,
	})
}

// handleBatch cleans a batch of rows
func handleBatch(ctx *fasthttp.RequestCtx) {
	if !ctx.IsPost() {
		ctx.SetStatusCode(fasthttp.StatusMethodNotAllowed)
		writeJSONError(ctx, "Method not allowed")
		return
	}

	var req BatchRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		ctx.SetStatusCode(fasthttp.StatusBadRequest)
		writeJSONError(ctx, "Invalid request: "+err.Error())
		return
	}
	if len(req.Rows) == 0 {
		ctx.SetStatusCode(fasthttp.StatusBadRequest)
		writeJSONError(ctx, "rows must not be empty")
		return
	}

	reqCtx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	records, summary, err := batchProcessor.Process(reqCtx, req.Rows)
	if err != nil {
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
		writeJSONError(ctx, "Batch processing failed: "+err.Error())
		return
	}

	response := BatchResponse{
		Records: make([]RecordResponse, 0, len(records)),
		Summary: SummaryResponse{
			TotalComments:         summary.TotalComments,
			Succeeded:             summary.Succeeded,
			Failed:                summary.Failed,
			TotalOriginalWords:    summary.TotalOriginalWords,
			TotalCleanedWords:     summary.TotalCleanedWords,
			TotalWordsRemoved:     summary.TotalWordsRemoved,
			AverageReductionRatio: summary.AverageReductionRatio,
		},
	}
	for _, r := range records {
		response.Records = append(response.Records, RecordResponse{
			ID:       r.ID,
			Original: r.Original,
			Cleaned:  r.Cleaned,
			Success:  r.Success,
			Metrics: MetricsResponse{
				OriginalWords:  r.Metrics.OriginalWords,
				CleanedWords:   r.Metrics.CleanedWords,
				WordsRemoved:   r.Metrics.WordsRemoved,
				ReductionRatio: r.Metrics.ReductionRatio,
			},
		})
	}

	ctx.SetStatusCode(fasthttp.StatusOK)
	writeJSONResponse(ctx, response)
}

// Helper functions

func toCleanResponse(result domain.Result) CleanResponse {
	return CleanResponse{
		Original: result.Original,
		Cleaned:  result.Cleaned,
		Success:  result.Success,
		Metrics: MetricsResponse{
			OriginalWords:  result.Metrics.OriginalWords,
			CleanedWords:   result.Metrics.CleanedWords,
			WordsRemoved:   result.Metrics.WordsRemoved,
			ReductionRatio: result.Metrics.ReductionRatio,
		},
	}
}

// writeJSONResponse writes a JSON response to the context
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

// writeJSONError writes a JSON error response to the context
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

// createLogger creates and configures a logger
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
