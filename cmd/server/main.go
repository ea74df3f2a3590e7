package main

import (
	"context"
	"flag"
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/reflection"

	grpcadapter "github.com/harborfund/vault-backend/internal/adapter/grpc"
	vaultv1 "github.com/harborfund/vault-backend/internal/adapter/grpc/vault/v1"
	"github.com/harborfund/vault-backend/internal/adapter/repository/postgres"
	"github.com/harborfund/vault-backend/internal/config"
	"github.com/harborfund/vault-backend/internal/domain"
	"github.com/harborfund/vault-backend/internal/observability"
	"github.com/harborfund/vault-backend/internal/usecase/access"
	"github.com/harborfund/vault-backend/internal/usecase/admin"
	"github.com/harborfund/vault-backend/internal/usecase/operation"
	"github.com/harborfund/vault-backend/internal/usecase/oracle"
	"github.com/harborfund/vault-backend/internal/usecase/shares"
	"github.com/harborfund/vault-backend/internal/usecase/valuation"
)

func main() {
	configPath := flag.String("config", "config.toml", "path to the TOML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := observability.InitLogger("vault-backend")

	// 1. Setup Database
	db, err := postgres.NewDB(cfg.ConnString())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	ctx := context.Background()
	if err := db.Migrate(ctx); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// 2. Initialize Repositories
	vaultRepo := postgres.NewVaultRepository(db)
	feedRepo := postgres.NewPriceFeedRepository(db)
	tokenRepo := postgres.NewTokenRepository(db)

	// Seed the vault aggregate on first start
	maxLossFraction, err := decimal.NewFromString(cfg.Vault.MaxLossFraction)
	if err != nil {
		log.Fatalf("Invalid max_loss_fraction: %v", err)
	}
	seed := domain.NewVault(cfg.StalenessWindow(), maxLossFraction)
	seed.UpdatedAt = time.Now()
	if err := vaultRepo.Seed(ctx, seed); err != nil {
		log.Fatalf("Failed to seed vault: %v", err)
	}

	// 3. Initialize Services (Use Cases)
	accessService := access.NewService(tokenRepo, logger)
	if cfg.AdminToken != "" {
		adminID, err := uuid.Parse(cfg.AdminToken)
		if err != nil {
			log.Fatalf("Invalid admin token: %v", err)
		}
		if err := accessService.Bootstrap(ctx, adminID); err != nil {
			log.Fatalf("Failed to bootstrap admin token: %v", err)
		}
	}

	// The oracle reads the staleness window live from the aggregate so
	// an admin change applies without a restart.
	maxAge := func() time.Duration {
		vault, err := vaultRepo.Get(ctx)
		if err != nil {
			return cfg.StalenessWindow()
		}
		return vault.StalenessWindow
	}
	oracleService := oracle.NewService(feedRepo, maxAge, logger)
	if err := oracleService.Load(ctx); err != nil {
		log.Fatalf("Failed to load price feeds: %v", err)
	}

	valuationService := valuation.NewService(vaultRepo, logger)
	shareService := shares.NewService(vaultRepo, logger)
	adminService := admin.NewService(vaultRepo, accessService, logger)
	operationService := operation.NewService(
		vaultRepo,
		accessService,
		logger,
		cfg.LossPeriod(),
		cfg.AbandonTimeout(),
	)

	// 4. Start gRPC Server
	grpcServer := grpclib.NewServer(
		grpclib.UnaryInterceptor(grpcadapter.AuthInterceptor(accessService)),
	)

	grpcAdapter := grpcadapter.NewServer(
		vaultRepo,
		accessService,
		adminService,
		oracleService,
		valuationService,
		shareService,
		operationService,
	)
	vaultv1.RegisterVaultServiceServer(grpcServer, grpcAdapter)

	reflection.Register(grpcServer)

	lis, err := net.Listen("tcp", cfg.ListenAddr)
	if err != nil {
		log.Fatalf("Failed to listen on %s: %v", cfg.ListenAddr, err)
	}

	go func() {
		logger.Info().Str("addr", cfg.ListenAddr).Msg("gRPC server listening")
		if err := grpcServer.Serve(lis); err != nil {
			log.Fatalf("Failed to serve gRPC server: %v", err)
		}
	}()

	waitForShutdown(grpcServer)
}

// waitForShutdown waits for SIGTERM or SIGINT and gracefully shuts down the server
func waitForShutdown(grpcServer *grpclib.Server) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	sig := <-sigChan
	log.Printf("Received signal: %v. Shutting down gracefully...", sig)

	grpcServer.GracefulStop()
	log.Println("gRPC server stopped")
}
