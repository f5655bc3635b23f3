package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pratiks183/Trust-Signal-Based-Resume-Verification-System/internal/model"
	"github.com/pratiks183/Trust-Signal-Based-Resume-Verification-System/internal/search"
)

// Verifier is the core capability the HTTP layer exposes
type Verifier interface {
	VerifyInternships(ctx context.Context, claims []model.ClaimedInternship) (map[string]model.VerificationResult, error)
}

// verifyRequest is the inbound payload
type verifyRequest struct {
	Internships []model.ClaimedInternship `json:"internships" binding:"required,min=1"`
}

// verifyResponse is the outbound payload
type verifyResponse struct {
	VerificationResults map[string]model.VerificationResult `json:"verification_results"`
}

// New builds the HTTP router around a verifier
func New(verifier Verifier, log *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	g := gin.New()
	g.Use(requestLogger(log), gin.Recovery())

	g.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	g.POST("/verify", handleVerify(verifier, log))

	return g
}

func handleVerify(verifier Verifier, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req verifyRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
			return
		}

		results, err := verifier.VerifyInternships(c.Request.Context(), req.Internships)
		if err != nil {
			// Quota exhaustion is the one failure the caller can act on:
			// back off and retry later. Everything else is opaque.
			if errors.Is(err, search.ErrQuotaExceeded) {
				log.Warn("verification rejected, search quota exceeded", zap.Error(err))
				c.JSON(http.StatusTooManyRequests, gin.H{
					"detail": "Daily API quota exceeded. Please try again later.",
				})
				return
			}

			log.Error("verification failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
			return
		}

		c.JSON(http.StatusOK, verifyResponse{VerificationResults: results})
	}
}

// requestLogger logs one line per request
func requestLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info("http request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}

// Run serves the API until ctx is canceled, then shuts down gracefully
func Run(ctx context.Context, addr string, handler http.Handler, log *zap.Logger) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 5 * time.Minute, // batches can be slow against a rate-limited upstream
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("http server listening", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutCtx)
	}
}
