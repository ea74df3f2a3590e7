package grpc

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	vaultv1 "github.com/harborfund/vault-backend/internal/adapter/grpc/vault/v1"
	"github.com/harborfund/vault-backend/internal/domain"
	"github.com/harborfund/vault-backend/internal/usecase/access"
	"github.com/harborfund/vault-backend/internal/usecase/admin"
	"github.com/harborfund/vault-backend/internal/usecase/operation"
	"github.com/harborfund/vault-backend/internal/usecase/oracle"
	"github.com/harborfund/vault-backend/internal/usecase/shares"
	"github.com/harborfund/vault-backend/internal/usecase/valuation"
)

// Server implements the VaultService gRPC server
type Server struct {
	vaultv1.UnimplementedVaultServiceServer

	VaultRepo        domain.VaultRepository
	AccessService    *access.Service
	AdminService     *admin.Service
	OracleService    *oracle.Service
	ValuationService *valuation.Service
	ShareService     *shares.Service
	OperationService *operation.Service
}

// NewServer creates a new gRPC server instance
func NewServer(
	vaultRepo domain.VaultRepository,
	accessService *access.Service,
	adminService *admin.Service,
	oracleService *oracle.Service,
	valuationService *valuation.Service,
	shareService *shares.Service,
	operationService *operation.Service,
) *Server {
	return &Server{
		VaultRepo:        vaultRepo,
		AccessService:    accessService,
		AdminService:     adminService,
		OracleService:    oracleService,
		ValuationService: valuationService,
		ShareService:     shareService,
		OperationService: operationService,
	}
}

// Deposit handles the Deposit RPC on behalf of the external request queue
func (s *Server) Deposit(ctx context.Context, req *vaultv1.DepositRequest) (*vaultv1.DepositResponse, error) {
	holderID, err := uuid.Parse(req.HolderId)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid holder_id format: %v", err)
	}
	requestID, err := uuid.Parse(req.RequestId)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid request_id format: %v", err)
	}
	amount, err := decimal.NewFromString(req.UsdAmount)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid usd_amount format: %v", err)
	}
	minShares, err := parseOptionalDecimal(req.MinShares)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid min_shares format: %v", err)
	}

	issued, err := s.ShareService.Issue(ctx, shares.IssueInput{
		HolderID:  holderID,
		RequestID: requestID,
		USDAmount: amount,
		MinShares: minShares,
	})
	if err != nil {
		return nil, mapError(err)
	}

	return &vaultv1.DepositResponse{
		SharesIssued: issued.String(),
		CreatedAt:    timestamppb.New(time.Now()),
	}, nil
}

// Withdraw handles the Withdraw RPC on behalf of the external request queue
func (s *Server) Withdraw(ctx context.Context, req *vaultv1.WithdrawRequest) (*vaultv1.WithdrawResponse, error) {
	holderID, err := uuid.Parse(req.HolderId)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid holder_id format: %v", err)
	}
	requestID, err := uuid.Parse(req.RequestId)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid request_id format: %v", err)
	}
	shareAmount, err := decimal.NewFromString(req.Shares)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid shares format: %v", err)
	}
	minUSD, err := parseOptionalDecimal(req.MinUsd)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid min_usd format: %v", err)
	}

	payout, err := s.ShareService.Redeem(ctx, shares.RedeemInput{
		HolderID:  holderID,
		RequestID: requestID,
		Shares:    shareAmount,
		MinUSD:    minUSD,
	})
	if err != nil {
		return nil, mapError(err)
	}

	return &vaultv1.WithdrawResponse{
		UsdPaid:   payout.String(),
		CreatedAt: timestamppb.New(time.Now()),
	}, nil
}

// GetVaultStatus handles the GetVaultStatus RPC
func (s *Server) GetVaultStatus(ctx context.Context, _ *vaultv1.GetVaultStatusRequest) (*vaultv1.GetVaultStatusResponse, error) {
	vault, err := s.VaultRepo.Get(ctx)
	if err != nil {
		return nil, mapError(err)
	}

	resp := &vaultv1.GetVaultStatusResponse{
		Status:          string(vault.Status),
		TotalShares:     vault.TotalShares.String(),
		Principal:       vault.Principal.String(),
		AccumulatedLoss: vault.Loss.Accumulated.String(),
		OperationActive: vault.Recon != nil,
	}
	if vault.Recon != nil {
		for key := range vault.Recon.Borrowed {
			resp.BorrowedKeys = append(resp.BorrowedKeys, key)
		}
	}
	return resp, nil
}

// StartOperation handles the StartOperation RPC
func (s *Server) StartOperation(ctx context.Context, req *vaultv1.StartOperationRequest) (*vaultv1.StartOperationResponse, error) {
	tokenID, ok := TokenFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "missing capability token")
	}

	records, cont, err := s.OperationService.Start(ctx, tokenID, req.AssetKeys)
	if err != nil {
		return nil, mapError(err)
	}

	resp := &vaultv1.StartOperationResponse{
		Continuation: &vaultv1.Continuation{
			AssetKeys:         cont.AssetKeys,
			TotalValueBefore:  cont.TotalValueBefore.String(),
			TotalSharesBefore: cont.TotalSharesBefore.String(),
		},
	}
	for _, record := range records {
		resp.Records = append(resp.Records, assetRecordToProto(record))
	}
	return resp, nil
}

// FinishCheckin handles the FinishCheckin RPC
func (s *Server) FinishCheckin(ctx context.Context, req *vaultv1.FinishCheckinRequest) (*vaultv1.FinishCheckinResponse, error) {
	tokenID, ok := TokenFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "missing capability token")
	}

	records := make([]*domain.AssetRecord, 0, len(req.Records))
	for _, pb := range req.Records {
		record, err := protoToAssetRecord(pb)
		if err != nil {
			return nil, status.Errorf(codes.InvalidArgument, "invalid asset record: %v", err)
		}
		records = append(records, record)
	}

	if err := s.OperationService.FinishCheckin(ctx, tokenID, records); err != nil {
		return nil, mapError(err)
	}
	return &vaultv1.FinishCheckinResponse{}, nil
}

// RevalueAsset handles the RevalueAsset RPC. This is the single write
// path feeding the valuation cache from valuation callbacks.
func (s *Server) RevalueAsset(ctx context.Context, req *vaultv1.RevalueAssetRequest) (*vaultv1.RevalueAssetResponse, error) {
	usdValue, err := decimal.NewFromString(req.UsdValue)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid usd_value format: %v", err)
	}

	if err := s.ValuationService.Revalue(ctx, req.AssetKey, usdValue); err != nil {
		return nil, mapError(err)
	}
	return &vaultv1.RevalueAssetResponse{}, nil
}

// FinishReconcile handles the FinishReconcile RPC
func (s *Server) FinishReconcile(ctx context.Context, _ *vaultv1.FinishReconcileRequest) (*vaultv1.FinishReconcileResponse, error) {
	tokenID, ok := TokenFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "missing capability token")
	}

	if err := s.OperationService.FinishReconcile(ctx, tokenID); err != nil {
		return nil, mapError(err)
	}
	return &vaultv1.FinishReconcileResponse{}, nil
}

// ForceAbandon handles the ForceAbandon RPC
func (s *Server) ForceAbandon(ctx context.Context, _ *vaultv1.ForceAbandonRequest) (*vaultv1.ForceAbandonResponse, error) {
	tokenID, ok := TokenFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "missing capability token")
	}

	if err := s.OperationService.ForceAbandon(ctx, tokenID); err != nil {
		return nil, mapError(err)
	}
	return &vaultv1.ForceAbandonResponse{}, nil
}

// RegisterFeed handles the RegisterFeed RPC
func (s *Server) RegisterFeed(ctx context.Context, req *vaultv1.RegisterFeedRequest) (*vaultv1.RegisterFeedResponse, error) {
	err := s.OracleService.RegisterFeed(ctx, req.AssetKey, oracle.FeedConfig{
		Primary:   domain.SourceID(req.PrimarySource),
		Secondary: domain.SourceID(req.SecondarySource),
	})
	if err != nil {
		return nil, mapError(err)
	}
	return &vaultv1.RegisterFeedResponse{}, nil
}

// RefreshPrice handles the RefreshPrice RPC from feed ingestion
func (s *Server) RefreshPrice(ctx context.Context, req *vaultv1.RefreshPriceRequest) (*vaultv1.RefreshPriceResponse, error) {
	price, err := decimal.NewFromString(req.Price)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid price format: %v", err)
	}
	if req.Timestamp == nil {
		return nil, status.Error(codes.InvalidArgument, "missing reading timestamp")
	}

	err = s.OracleService.Refresh(ctx, domain.Reading{
		AssetKey:  req.AssetKey,
		SourceID:  domain.SourceID(req.SourceId),
		Price:     price,
		Decimals:  req.Decimals,
		Timestamp: req.Timestamp.AsTime(),
	})
	if err != nil {
		return nil, mapError(err)
	}
	return &vaultv1.RefreshPriceResponse{}, nil
}

// GetPrice handles the GetPrice RPC
func (s *Server) GetPrice(ctx context.Context, req *vaultv1.GetPriceRequest) (*vaultv1.GetPriceResponse, error) {
	quote, err := s.OracleService.GetPrice(ctx, req.AssetKey, time.Now())
	if err != nil {
		return nil, mapError(err)
	}

	return &vaultv1.GetPriceResponse{
		Price:     quote.Price.String(),
		Decimals:  quote.Decimals,
		SourceId:  string(quote.SourceID),
		Degraded:  quote.Degraded,
		UpdatedAt: timestamppb.New(quote.UpdatedAt),
	}, nil
}

// AddAsset handles the AddAsset RPC
func (s *Server) AddAsset(ctx context.Context, req *vaultv1.AddAssetRequest) (*vaultv1.AddAssetResponse, error) {
	tokenID, ok := TokenFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "missing capability token")
	}
	record, err := protoToAssetRecord(req.Record)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid asset record: %v", err)
	}

	if err := s.AdminService.AddAsset(ctx, tokenID, record); err != nil {
		return nil, mapError(err)
	}
	return &vaultv1.AddAssetResponse{}, nil
}

// SetLossFraction handles the SetLossFraction RPC
func (s *Server) SetLossFraction(ctx context.Context, req *vaultv1.SetLossFractionRequest) (*vaultv1.SetLossFractionResponse, error) {
	tokenID, ok := TokenFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "missing capability token")
	}
	fraction, err := decimal.NewFromString(req.Fraction)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid fraction format: %v", err)
	}

	if err := s.AdminService.SetLossFraction(ctx, tokenID, fraction); err != nil {
		return nil, mapError(err)
	}
	return &vaultv1.SetLossFractionResponse{}, nil
}

// SetStalenessWindow handles the SetStalenessWindow RPC
func (s *Server) SetStalenessWindow(ctx context.Context, req *vaultv1.SetStalenessWindowRequest) (*vaultv1.SetStalenessWindowResponse, error) {
	tokenID, ok := TokenFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "missing capability token")
	}

	window := time.Duration(req.Seconds) * time.Second
	if err := s.AdminService.SetStalenessWindow(ctx, tokenID, window); err != nil {
		return nil, mapError(err)
	}
	return &vaultv1.SetStalenessWindowResponse{}, nil
}

// SetDisabled handles the SetDisabled RPC
func (s *Server) SetDisabled(ctx context.Context, req *vaultv1.SetDisabledRequest) (*vaultv1.SetDisabledResponse, error) {
	tokenID, ok := TokenFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "missing capability token")
	}

	if err := s.AdminService.SetDisabled(ctx, tokenID, req.Disabled); err != nil {
		return nil, mapError(err)
	}
	return &vaultv1.SetDisabledResponse{}, nil
}

// GrantToken handles the GrantToken RPC
func (s *Server) GrantToken(ctx context.Context, req *vaultv1.GrantTokenRequest) (*vaultv1.GrantTokenResponse, error) {
	tokenID, ok := TokenFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "missing capability token")
	}

	token, err := s.AccessService.Grant(ctx, tokenID, domain.Role(req.Role))
	if err != nil {
		return nil, mapError(err)
	}
	return &vaultv1.GrantTokenResponse{TokenId: token.ID.String()}, nil
}

// RevokeToken handles the RevokeToken RPC
func (s *Server) RevokeToken(ctx context.Context, req *vaultv1.RevokeTokenRequest) (*vaultv1.RevokeTokenResponse, error) {
	tokenID, ok := TokenFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "missing capability token")
	}
	target, err := uuid.Parse(req.TokenId)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid token_id format: %v", err)
	}

	if err := s.AccessService.Revoke(ctx, tokenID, target); err != nil {
		return nil, mapError(err)
	}
	return &vaultv1.RevokeTokenResponse{}, nil
}

// SetFrozen handles the SetFrozen RPC
func (s *Server) SetFrozen(ctx context.Context, req *vaultv1.SetFrozenRequest) (*vaultv1.SetFrozenResponse, error) {
	tokenID, ok := TokenFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "missing capability token")
	}
	target, err := uuid.Parse(req.TokenId)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid token_id format: %v", err)
	}

	if err := s.AccessService.SetFrozen(ctx, tokenID, target, req.Frozen); err != nil {
		return nil, mapError(err)
	}
	return &vaultv1.SetFrozenResponse{}, nil
}

// parseOptionalDecimal treats an empty string as zero
func parseOptionalDecimal(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(s)
}

// assetRecordToProto converts a domain asset record to its proto form
func assetRecordToProto(record *domain.AssetRecord) *vaultv1.AssetRecord {
	pb := &vaultv1.AssetRecord{
		Key:            record.Key,
		Balance:        record.Balance.String(),
		Decimals:       record.Decimals,
		PositionHandle: record.PositionHandle,
	}
	switch record.Kind {
	case domain.AssetKindBalance:
		pb.Kind = vaultv1.AssetKind_ASSET_KIND_BALANCE
	case domain.AssetKindPosition:
		pb.Kind = vaultv1.AssetKind_ASSET_KIND_POSITION
	}
	return pb
}

// protoToAssetRecord converts a proto asset record to its domain form
func protoToAssetRecord(pb *vaultv1.AssetRecord) (*domain.AssetRecord, error) {
	if pb == nil {
		return nil, errors.New("asset record is required")
	}

	record := &domain.AssetRecord{
		Key:            pb.Key,
		Decimals:       pb.Decimals,
		PositionHandle: pb.PositionHandle,
	}
	switch pb.Kind {
	case vaultv1.AssetKind_ASSET_KIND_BALANCE:
		record.Kind = domain.AssetKindBalance
	case vaultv1.AssetKind_ASSET_KIND_POSITION:
		record.Kind = domain.AssetKindPosition
	default:
		return nil, errors.New("asset kind is required")
	}

	if pb.Balance == "" {
		record.Balance = decimal.Zero
	} else {
		balance, err := decimal.NewFromString(pb.Balance)
		if err != nil {
			return nil, err
		}
		record.Balance = balance
	}
	return record, nil
}

// mapError converts domain errors to gRPC status errors
func mapError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		return status.Error(codes.PermissionDenied, err.Error())
	case errors.Is(err, domain.ErrStale), errors.Is(err, domain.ErrUnavailable):
		return status.Error(codes.Unavailable, err.Error())
	case errors.Is(err, domain.ErrInvalidReading):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, domain.ErrVaultBusy),
		errors.Is(err, domain.ErrAssetsNotReturned),
		errors.Is(err, domain.ErrValueNotUpdated),
		errors.Is(err, domain.ErrLossLimitExceeded),
		errors.Is(err, domain.ErrDoubleCheckout),
		errors.Is(err, domain.ErrDoubleCheckin),
		errors.Is(err, domain.ErrReconcileNotArmed),
		errors.Is(err, domain.ErrAbandonTooEarly),
		errors.Is(err, domain.ErrInsufficientLiquidity),
		errors.Is(err, domain.ErrSlippageExceeded):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, domain.ErrAssetNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, domain.ErrAssetExists):
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.Is(err, domain.ErrOverflow), errors.Is(err, domain.ErrDivisionByZero):
		return status.Error(codes.Internal, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
