/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Command example runs a small orders service demonstrating the full drest
// pipeline: correlation resolution, error shaping, validation, authorization
// outcomes, pagination, and logging scope.
//
// Try it:
//
//	go run ./example
//	curl -H 'X-Correlation-Id: abc-123' localhost:8080/orders
//	curl localhost:8080/orders/missing
//	curl -X POST localhost:8080/orders -d '{}'
package main

import (
	"context"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"dirpx.dev/drest"
	"dirpx.dev/drest/config"
	"dirpx.dev/drest/ginx"
	"dirpx.dev/drest/kind"
	"dirpx.dev/drest/logging"
	"dirpx.dev/drest/page"
)

type order struct {
	ID     string `json:"id"`
	Item   string `json:"item"`
	Amount int    `json:"amount"`
}

type createOrderRequest struct {
	Item   string `json:"item" binding:"required"`
	Amount int    `json:"amount" binding:"required,min=1"`
}

var orders = map[string]order{
	"1": {ID: "1", Item: "teapot", Amount: 2},
	"2": {ID: "2", Item: "kettle", Amount: 1},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Exit(1)
	}

	logger := logging.New(cfg.Logging, os.Stdout)

	// Span IDs from this provider feed correlation-ID generation and the
	// traceId field of error responses.
	tp := sdktrace.NewTracerProvider()
	defer func() { _ = tp.Shutdown(context.Background()) }()
	otel.SetTracerProvider(tp)

	r := gin.New()
	if cfg.Correlation.Enabled {
		r.Use(ginx.Correlation(ginx.CorrelationConfig{
			Header:   cfg.Correlation.Header,
			Generate: cfg.Correlation.Generate,
			Echo:     cfg.Correlation.Echo,
			Logger:   &logger,
		}))
	}
	if cfg.Errors.Enabled {
		r.Use(ginx.ErrorHandler(ginx.ErrorHandlerConfig{
			Logger:       &logger,
			ShowDetails:  cfg.Errors.ShowDetails,
			Production:   cfg.IsProduction(),
			IncludeTrace: cfg.Errors.IncludeTrace,
		}))
	}
	if cfg.Scope.Enabled {
		r.Use(ginx.LoggingScope(logger, nil))
	}

	r.GET("/orders", listOrders)
	r.GET("/orders/:id", getOrder)
	r.POST("/orders", createOrder)

	admin := r.Group("/admin", ginx.Authorize(adminOnly, ginx.AuthConfig{}))
	admin.GET("/orders", listOrders)

	srv := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
	if err := srv.ListenAndServe(); err != nil {
		logger.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
}

func listOrders(c *gin.Context) {
	req := page.Parse(c.Query("page"), c.Query("size"))

	all := make([]order, 0, len(orders))
	for _, o := range orders {
		all = append(all, o)
	}
	ginx.OK(c, page.New(window(all, req), req, int64(len(all))))
}

func getOrder(c *gin.Context) {
	o, ok := orders[c.Param("id")]
	if !ok {
		ginx.Fail(c, drest.E(kind.NotFound, "no such order"))
		return
	}
	ginx.OK(c, o)
}

func createOrder(c *gin.Context) {
	req, ok := ginx.BindJSON[createOrderRequest](c)
	if !ok {
		return
	}
	o := order{ID: "3", Item: req.Item, Amount: req.Amount}
	ginx.Created(c, o)
}

// adminOnly forbids everyone; a real service would consult its policy layer.
func adminOnly(c *gin.Context) ginx.Decision {
	if _, ok := ginx.PrincipalFrom(c); ok {
		return ginx.DecisionForbid
	}
	return ginx.DecisionChallenge
}

func window(items []order, req page.Request) []order {
	start := req.Skip()
	if start >= len(items) {
		return nil
	}
	end := start + req.Size
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
