package main

import (
	"context"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	"go.uber.org/zap"

	internalaws "github.com/pagecraft/go-ai-website-builder/internal/aws"
	"github.com/pagecraft/go-ai-website-builder/internal/generator"
	"github.com/pagecraft/go-ai-website-builder/internal/handlers"
	"github.com/pagecraft/go-ai-website-builder/internal/records"
)

func main() {
	runLocal := os.Getenv("RUN_LOCAL") == "true"

	logger := newLogger(runLocal)
	defer logger.Sync()

	ctx := context.Background()

	clients, err := internalaws.NewAWSClients(ctx)
	if err != nil {
		logger.Fatal("failed to init aws clients", zap.Error(err))
	}

	gen, err := generator.NewClient(ctx, os.Getenv("GEMINI_API_KEY"), os.Getenv("GEMINI_MODEL"))
	if err != nil {
		logger.Fatal("failed to init gemini client", zap.Error(err))
	}

	cfg := handlers.HandlerConfig{
		Generator:    gen,
		Generations:  records.NewGenerationStore(clients.DynamoDB, envOr("GENERATIONS_TABLE", "generations")),
		StatusChecks: records.NewStatusStore(clients.DynamoDB, envOr("STATUS_CHECKS_TABLE", "status-checks")),
		Metrics:      internalaws.NewMetricsPublisher(clients.CloudWatch, envOr("METRICS_NAMESPACE", "WebsiteBuilder")),
		Logger:       logger,
		AllowOrigin:  os.Getenv("CORS_ORIGIN"),
	}

	r := handlers.NewRouter(cfg)

	// if environment variable RUN_LOCAL is set to "true", run a local HTTP server for development.
	if runLocal {
		addr := ":" + envOr("PORT", "8080")
		logger.Info("running local server", zap.String("addr", addr))
		if err := r.Run(addr); err != nil {
			logger.Fatal("failed to run local server", zap.Error(err))
		}
		return
	}

	// lambda adapter
	adapter := ginadapter.New(r)

	lambda.Start(func(ctx context.Context, req events.APIGatewayProxyRequest) (interface{}, error) {
		return adapter.ProxyWithContext(ctx, req)
	})
}

func newLogger(runLocal bool) *zap.Logger {
	if runLocal {
		return zap.Must(zap.NewDevelopment())
	}
	return zap.Must(zap.NewProduction())
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
